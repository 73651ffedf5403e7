package cart

import (
	"errors"
	"time"

	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var ErrMissingBed = errors.New("cart item requires a bed")

// Item is a temporary hold on a bed for a date range. Items created from
// a whole-room package carry the package id and a fixed price share so
// they are committed and cancelled as one unit.
type Item struct {
	id        uuid.UUID
	userID    uuid.UUID
	bedID     uuid.UUID
	stayRange stay.StayRange
	// packageID is nil for an individually booked bed.
	packageID *uuid.UUID
	// fixedPrice overrides nightly pricing; set for package shares.
	fixedPrice *stay.Money
	createdAt  time.Time
}

func NewItem(userID, bedID uuid.UUID, r stay.StayRange) (*Item, error) {
	if bedID == uuid.Nil {
		return nil, ErrMissingBed
	}
	return &Item{
		id:        uuid.New(),
		userID:    userID,
		bedID:     bedID,
		stayRange: r,
	}, nil
}

func NewPackageItem(userID, bedID, packageID uuid.UUID, r stay.StayRange, share stay.Money) (*Item, error) {
	item, err := NewItem(userID, bedID, r)
	if err != nil {
		return nil, err
	}
	item.packageID = &packageID
	item.fixedPrice = &share
	return item, nil
}

func ReconstructItem(id, userID, bedID uuid.UUID, r stay.StayRange, packageID *uuid.UUID, fixedPrice *stay.Money, createdAt time.Time) *Item {
	return &Item{
		id:         id,
		userID:     userID,
		bedID:      bedID,
		stayRange:  r,
		packageID:  packageID,
		fixedPrice: fixedPrice,
		createdAt:  createdAt,
	}
}

func (i *Item) ID() uuid.UUID             { return i.id }
func (i *Item) UserID() uuid.UUID         { return i.userID }
func (i *Item) BedID() uuid.UUID          { return i.bedID }
func (i *Item) StayRange() stay.StayRange { return i.stayRange }
func (i *Item) PackageID() *uuid.UUID     { return i.packageID }
func (i *Item) FixedPrice() *stay.Money   { return i.fixedPrice }
func (i *Item) CreatedAt() time.Time      { return i.createdAt }

func (i *Item) IsPackageShare() bool { return i.packageID != nil }

// Price resolves the item's total price: the fixed package share when
// present, otherwise the nightly rate times the number of nights.
func (i *Item) Price(nightly stay.Money) stay.Money {
	if i.fixedPrice != nil {
		return *i.fixedPrice
	}
	return stay.TotalPrice(nightly, i.stayRange.Nights())
}

// ConflictsWith reports whether two holds claim the same bed for
// overlapping nights.
func (i *Item) ConflictsWith(other *Item) bool {
	return i.bedID == other.bedID && i.stayRange.Overlaps(other.stayRange)
}

// IsDuplicateOf reports an identical hold by the same user, used to make
// add-to-cart idempotent.
func (i *Item) IsDuplicateOf(other *Item) bool {
	return i.userID == other.userID && i.bedID == other.bedID && i.stayRange.Equal(other.stayRange)
}
