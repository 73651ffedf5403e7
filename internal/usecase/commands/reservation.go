package commands

import (
	"context"

	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/domain/stay"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTermsNotAccepted    = errs.New("terms must be accepted")
	ErrEmptyCart           = errs.New("cart is empty")
	ErrPolicyNotFound      = errs.New("cancellation policy not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrNotReservationOwner = errs.New("reservation belongs to another user")
	ErrNotCancellable      = errs.New("reservation cannot be cancelled in its current status")
	ErrInvalidTransition   = errs.New("reservation status does not allow this transition")
	ErrDomainValidation    = errs.New("domain validation error")
)

type CommitResult struct {
	ReservationID uuid.UUID
	Code          string
	Status        string
	TotalCents    int64
}

type CancelResult struct {
	ReservationID uuid.UUID
	FeeCents      int64
	RefundCents   int64
}

type ReservationCommands interface {
	// CommitReservation converts the user's whole cart into one
	// reservation, atomically. Either every held bed becomes a
	// reservation item and the cart is drained, or nothing changes.
	CommitReservation(ctx context.Context, userID uuid.UUID, acceptedTerms bool) (*CommitResult, error)
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*CancelResult, error)

	// ConfirmReservation and CheckoutReservation are front-desk
	// transitions on the staff surface; ownership is not checked.
	ConfirmReservation(ctx context.Context, reservationID uuid.UUID) error
	CheckoutReservation(ctx context.Context, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow               shared.UnitOfWork
	clock             clock.Clock
	defaultPolicyName string
}

func NewReservationCommands(uow shared.UnitOfWork, clock clock.Clock, defaultPolicyName string) ReservationCommands {
	return &reservationCommandsImpl{
		uow:               uow,
		clock:             clock,
		defaultPolicyName: defaultPolicyName,
	}
}

func (r *reservationCommandsImpl) CommitReservation(ctx context.Context, userID uuid.UUID, acceptedTerms bool) (*CommitResult, error) {
	if !acceptedTerms {
		return nil, ErrTermsNotAccepted
	}

	var result *CommitResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		items, err := reads.CartItemsByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		bedIDs := uniqueBedIDs(items)

		// Lock first, then re-check. Another transaction committing
		// the same beds blocks here until our commit or rollback.
		if err := reads.LockBeds(ctx, bedIDs); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBedNotFound)
			}
			return err
		}

		for _, item := range items {
			held, err := reads.OverlappingHoldExists(ctx, []uuid.UUID{item.BedID}, item.Checkin, item.Checkout, &userID)
			if err != nil {
				return err
			}
			if held {
				return ErrBedUnavailable
			}
		}

		policy, err := reads.PolicyByName(ctx, r.defaultPolicyName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPolicyNotFound)
			}
			return err
		}

		lineItems, err := r.buildLineItems(ctx, reads, items)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(userID, lineItems, policy.ID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if _, err := tx.Carts().DeleteByUser(ctx, userID); err != nil {
			return err
		}

		result = &CommitResult{
			ReservationID: res.ID(),
			Code:          res.Code(),
			Status:        res.Status().String(),
			TotalCents:    res.Total().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reservationCommandsImpl) buildLineItems(ctx context.Context, reads shared.CommandReads, items []shared.CartItemSnapshot) ([]reservation.LineItem, error) {
	lineItems := make([]reservation.LineItem, 0, len(items))
	for _, item := range items {
		stayRange := stay.ReconstructStayRange(item.Checkin, item.Checkout)

		var price stay.Money
		if item.FixedPriceCents != nil {
			price = stay.NewMoney(*item.FixedPriceCents)
		} else {
			bed, err := reads.BedByID(ctx, item.BedID)
			if err != nil {
				return nil, err
			}
			room, err := reads.RoomByID(ctx, bed.RoomID)
			if err != nil {
				return nil, err
			}
			price = stay.TotalPrice(stay.NewMoney(bed.NightlyPriceCents(*room)), stayRange.Nights())
		}

		lineItems = append(lineItems, reservation.NewLineItem(item.BedID, stayRange, price, item.PackageID))
	}
	return lineItems, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*CancelResult, error) {
	var result *CancelResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		res := reconstructReservation(snap)
		if !res.IsOwnedBy(userID) {
			return ErrNotReservationOwner
		}

		policySnap, err := reads.PolicyByID(ctx, snap.PolicyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPolicyNotFound)
			}
			return err
		}
		policy, err := reservation.NewCancellationPolicy(policySnap.ID, policySnap.Name, policySnap.Brackets)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		fee, err := res.Cancel(policy, r.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrNotCancellable)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return err
		}

		result = &CancelResult{
			ReservationID: res.ID(),
			FeeCents:      fee.Cents(),
			RefundCents:   res.Total().Cents() - fee.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reservationCommandsImpl) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) error {
	return r.transitionStatus(ctx, reservationID, (*reservation.Reservation).Confirm)
}

func (r *reservationCommandsImpl) CheckoutReservation(ctx context.Context, reservationID uuid.UUID) error {
	return r.transitionStatus(ctx, reservationID, (*reservation.Reservation).CompleteCheckout)
}

func (r *reservationCommandsImpl) transitionStatus(ctx context.Context, reservationID uuid.UUID, apply func(*reservation.Reservation) error) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		res := reconstructReservation(snap)
		if err := apply(res); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		return tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status())
	})
}

func reconstructReservation(snap *shared.ReservationSnapshot) *reservation.Reservation {
	items := make([]reservation.LineItem, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = reservation.ReconstructLineItem(item.ID, item.BedID,
			stay.ReconstructStayRange(item.Checkin, item.Checkout),
			stay.NewMoney(item.PriceCents), item.PackageID)
	}
	return reservation.ReconstructReservation(snap.ID, snap.UserID, snap.Code,
		reservation.Status(snap.Status), items, stay.NewMoney(snap.TotalCents),
		snap.PolicyID, snap.CreatedAt, snap.UpdatedAt)
}

func uniqueBedIDs(items []shared.CartItemSnapshot) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.BedID]; ok {
			continue
		}
		seen[item.BedID] = struct{}{}
		ids = append(ids, item.BedID)
	}
	return ids
}
