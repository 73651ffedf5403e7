package commands

import (
	"context"

	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/domain/review"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotEligibleForReview = errs.New("reservation is not eligible for review")
	ErrReviewAlreadyExists  = errs.New("reservation already has a review")
	ErrInvalidReview        = errs.New("invalid review")
)

type ReviewCommands interface {
	// CreateReview records a review for a completed stay. Only the
	// guest who stayed, and only after checkout, may review, and at
	// most once per reservation.
	CreateReview(ctx context.Context, userID, reservationID uuid.UUID, rating int, comment string) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clock clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clock}
}

func (r *reviewCommandsImpl) CreateReview(ctx context.Context, userID, reservationID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	var reviewID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}
		if snap.UserID != userID {
			return ErrNotReservationOwner
		}
		if !reservation.Status(snap.Status).Reviewable() {
			return ErrNotEligibleForReview
		}
		if len(snap.Items) == 0 {
			return ErrNotEligibleForReview
		}

		bed, err := reads.BedByID(ctx, snap.Items[0].BedID)
		if err != nil {
			return err
		}

		rev, err := review.NewReview(userID, bed.RoomID, reservationID, rating, comment, r.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidReview)
		}

		id, err := tx.Reviews().Create(ctx, rev)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrReviewAlreadyExists)
			}
			return err
		}
		reviewID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}
