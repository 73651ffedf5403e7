package reservation

import (
	"errors"
	"time"

	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrNoItems       = errors.New("reservation needs at least one line item")
	ErrInvalidStatus = errors.New("reservation status does not allow this transition")
	ErrMissingPolicy = errors.New("reservation requires a cancellation policy")
)

// LineItem is one bed held for one date range. Items created from a
// whole-room package share the same package id; the availability logic
// treats both variants uniformly.
type LineItem struct {
	id        uuid.UUID
	bedID     uuid.UUID
	stayRange stay.StayRange
	price     stay.Money
	packageID *uuid.UUID
}

func NewLineItem(bedID uuid.UUID, r stay.StayRange, price stay.Money, packageID *uuid.UUID) LineItem {
	return LineItem{
		id:        uuid.New(),
		bedID:     bedID,
		stayRange: r,
		price:     price,
		packageID: packageID,
	}
}

func ReconstructLineItem(id, bedID uuid.UUID, r stay.StayRange, price stay.Money, packageID *uuid.UUID) LineItem {
	return LineItem{id: id, bedID: bedID, stayRange: r, price: price, packageID: packageID}
}

func (li LineItem) ID() uuid.UUID             { return li.id }
func (li LineItem) BedID() uuid.UUID          { return li.bedID }
func (li LineItem) StayRange() stay.StayRange { return li.stayRange }
func (li LineItem) Price() stay.Money         { return li.price }
func (li LineItem) PackageID() *uuid.UUID     { return li.packageID }

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	code      string
	status    Status
	items     []LineItem
	total     stay.Money
	policyID  uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a pendente reservation from committed cart
// holds. The total is the exact sum of the line item prices.
func NewReservation(userID uuid.UUID, items []LineItem, policyID uuid.UUID) (*Reservation, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if policyID == uuid.Nil {
		return nil, ErrMissingPolicy
	}

	code, err := NewCode()
	if err != nil {
		return nil, err
	}

	total := stay.NewMoney(0)
	for _, li := range items {
		total = total.Add(li.Price())
	}

	return &Reservation{
		id:       uuid.New(),
		userID:   userID,
		code:     code,
		status:   StatusPendente,
		items:    items,
		total:    total,
		policyID: policyID,
	}, nil
}

func ReconstructReservation(id, userID uuid.UUID, code string, status Status, items []LineItem, total stay.Money, policyID uuid.UUID, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		code:      code,
		status:    status,
		items:     items,
		total:     total,
		policyID:  policyID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Code() string         { return r.code }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Items() []LineItem    { return r.items }
func (r *Reservation) Total() stay.Money    { return r.total }
func (r *Reservation) PolicyID() uuid.UUID  { return r.policyID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// FirstCheckin is the earliest checkin across the line items; fee
// brackets count days against it.
func (r *Reservation) FirstCheckin() time.Time {
	first := r.items[0].stayRange.Checkin()
	for _, li := range r.items[1:] {
		if li.stayRange.Checkin().Before(first) {
			first = li.stayRange.Checkin()
		}
	}
	return first
}

// Cancel validates eligibility, computes the policy fee and transitions
// the status. The caller persists the transition atomically together
// with releasing the holds.
func (r *Reservation) Cancel(policy *CancellationPolicy, now time.Time) (stay.Money, error) {
	if !r.status.Cancellable() {
		return stay.Money{}, ErrInvalidStatus
	}

	days := int(r.FirstCheckin().Sub(stay.TruncateToDate(now)).Hours() / 24)
	fee := policy.FeeFor(r.total, days)

	r.status = StatusCancelada
	return fee, nil
}

// Confirm marks a pendente reservation as confirmada, e.g. once payment
// clears.
func (r *Reservation) Confirm() error {
	if r.status != StatusPendente {
		return ErrInvalidStatus
	}
	r.status = StatusConfirmada
	return nil
}

// CompleteCheckout closes a confirmada reservation after the stay.
func (r *Reservation) CompleteCheckout() error {
	if r.status != StatusConfirmada {
		return ErrInvalidStatus
	}
	r.status = StatusCheckout
	return nil
}
