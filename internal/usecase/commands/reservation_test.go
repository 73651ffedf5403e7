//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/shared"
	sharedmock "hostel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultBrackets = []reservation.FeeBracket{
	{DaysBefore: 2, FeePercent: 50},
	{DaysBefore: 7, FeePercent: 20},
}

type reservationFixture struct {
	uow    *sharedmock.FakeUoW
	svc    commands.ReservationCommands
	userID uuid.UUID
	roomID uuid.UUID
	beds   []uuid.UUID
	policy shared.PolicySnapshot
}

func newReservationFixture(now time.Time) *reservationFixture {
	f := &reservationFixture{
		uow:    sharedmock.NewFakeUoW(),
		userID: uuid.New(),
		roomID: uuid.New(),
		beds:   []uuid.UUID{uuid.New(), uuid.New()},
		policy: shared.PolicySnapshot{ID: uuid.New(), Name: "padrao", Brackets: defaultBrackets},
	}
	f.svc = commands.NewReservationCommands(f.uow, clock.NewMockClock(now), "padrao")

	reads := f.uow.Tx.CommandReads
	reads.CartItemsByUserFn = func(_ context.Context, _ uuid.UUID) ([]shared.CartItemSnapshot, error) {
		return []shared.CartItemSnapshot{
			{ID: uuid.New(), UserID: f.userID, BedID: f.beds[0], Checkin: date("2026-10-01"), Checkout: date("2026-10-04")},
			{ID: uuid.New(), UserID: f.userID, BedID: f.beds[1], Checkin: date("2026-10-01"), Checkout: date("2026-10-04")},
		}, nil
	}
	reads.PolicyByNameFn = func(_ context.Context, name string) (*shared.PolicySnapshot, error) {
		if name != "padrao" {
			return nil, notFoundErr()
		}
		return &f.policy, nil
	}
	reads.BedByIDFn = func(_ context.Context, id uuid.UUID) (*shared.BedSnapshot, error) {
		return &shared.BedSnapshot{ID: id, RoomID: f.roomID, BedType: "single", Position: 1}, nil
	}
	reads.RoomByIDFn = func(_ context.Context, _ uuid.UUID) (*shared.RoomSnapshot, error) {
		return &shared.RoomSnapshot{ID: f.roomID, Name: "Quarto Azul", Capacity: 4, BasePriceCents: 10000, Active: true}, nil
	}
	return f
}

func TestCommitReservation(t *testing.T) {
	ctx := context.Background()
	now := date("2026-09-01")

	t.Run("converts the whole cart into one pendente reservation", func(t *testing.T) {
		f := newReservationFixture(now)

		var drainedUser uuid.UUID
		f.uow.Tx.CartRepo.DeleteByUserFn = func(_ context.Context, userID uuid.UUID) (int64, error) {
			drainedUser = userID
			return 2, nil
		}

		result, err := f.svc.CommitReservation(ctx, f.userID, true)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, result.ReservationID)
		assert.NotEmpty(t, result.Code)
		assert.Equal(t, "pendente", result.Status)
		// 3 nights, 2 beds, 2500/night each (10000 base over capacity 4).
		assert.Equal(t, int64(15000), result.TotalCents)

		require.Len(t, f.uow.Tx.ReservationRepo.Created, 1)
		created := f.uow.Tx.ReservationRepo.Created[0]
		assert.Len(t, created.Items(), 2)
		assert.Equal(t, f.policy.ID, created.PolicyID())

		// Beds were locked before the availability re-check, and the
		// cart was drained in the same transaction.
		assert.ElementsMatch(t, f.beds, f.uow.Tx.CommandReads.LockedBedIDs)
		assert.Equal(t, f.userID, drainedUser)
	})

	t.Run("package shares keep their fixed price", func(t *testing.T) {
		f := newReservationFixture(now)
		packageID := uuid.New()
		fixed := int64(3334)
		f.uow.Tx.CommandReads.CartItemsByUserFn = func(_ context.Context, _ uuid.UUID) ([]shared.CartItemSnapshot, error) {
			return []shared.CartItemSnapshot{
				{ID: uuid.New(), UserID: f.userID, BedID: f.beds[0], Checkin: date("2026-12-28"), Checkout: date("2027-01-02"), PackageID: &packageID, FixedPriceCents: &fixed},
			}, nil
		}

		result, err := f.svc.CommitReservation(ctx, f.userID, true)
		require.NoError(t, err)
		assert.Equal(t, fixed, result.TotalCents)
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		f := newReservationFixture(now)

		_, err := f.svc.CommitReservation(ctx, f.userID, false)
		assert.ErrorIs(t, err, commands.ErrTermsNotAccepted)
		assert.Empty(t, f.uow.Tx.ReservationRepo.Created)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newReservationFixture(now)
		f.uow.Tx.CommandReads.CartItemsByUserFn = func(_ context.Context, _ uuid.UUID) ([]shared.CartItemSnapshot, error) {
			return nil, nil
		}

		_, err := f.svc.CommitReservation(ctx, f.userID, true)
		assert.ErrorIs(t, err, commands.ErrEmptyCart)
	})

	t.Run("a hold that appeared since the cart was filled aborts the commit", func(t *testing.T) {
		f := newReservationFixture(now)
		f.uow.Tx.CommandReads.OverlapFn = func(_ context.Context, _ []uuid.UUID, _, _ time.Time, excludeUser *uuid.UUID) (bool, error) {
			require.NotNil(t, excludeUser)
			assert.Equal(t, f.userID, *excludeUser)
			return true, nil
		}

		_, err := f.svc.CommitReservation(ctx, f.userID, true)
		assert.ErrorIs(t, err, commands.ErrBedUnavailable)
		assert.Empty(t, f.uow.Tx.ReservationRepo.Created)
	})

	t.Run("missing default policy", func(t *testing.T) {
		f := newReservationFixture(now)
		f.uow.Tx.CommandReads.PolicyByNameFn = func(_ context.Context, _ string) (*shared.PolicySnapshot, error) {
			return nil, notFoundErr()
		}

		_, err := f.svc.CommitReservation(ctx, f.userID, true)
		assert.ErrorIs(t, err, commands.ErrPolicyNotFound)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	setup := func(now time.Time, status string, ownedByCaller bool) (*reservationFixture, uuid.UUID) {
		f := newReservationFixture(now)
		reservationID := uuid.New()
		owner := f.userID
		if !ownedByCaller {
			owner = uuid.New()
		}

		f.uow.Tx.CommandReads.ReservationByIDFn = func(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
			if id != reservationID {
				return nil, notFoundErr()
			}
			return &shared.ReservationSnapshot{
				ID:         reservationID,
				UserID:     owner,
				Code:       "HB-20260901-TEST",
				Status:     status,
				TotalCents: 10000,
				PolicyID:   f.policy.ID,
				Items: []shared.ReservationItemSnapshot{
					{ID: uuid.New(), BedID: f.beds[0], Checkin: date("2026-10-01"), Checkout: date("2026-10-04"), PriceCents: 10000},
				},
			}, nil
		}
		f.uow.Tx.CommandReads.PolicyByIDFn = func(_ context.Context, id uuid.UUID) (*shared.PolicySnapshot, error) {
			if id != f.policy.ID {
				return nil, notFoundErr()
			}
			return &f.policy, nil
		}
		return f, reservationID
	}

	t.Run("inside the outer bracket charges 20 percent", func(t *testing.T) {
		// 5 days before checkin: within 7 days, outside 2 days.
		f, id := setup(date("2026-09-26"), "confirmada", true)

		result, err := f.svc.CancelReservation(ctx, f.userID, id)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), result.FeeCents)
		assert.Equal(t, int64(8000), result.RefundCents)
		assert.Equal(t, reservation.StatusCancelada, f.uow.Tx.ReservationRepo.StatusesUpdated[id])
	})

	t.Run("inside the tight bracket charges 50 percent", func(t *testing.T) {
		f, id := setup(date("2026-09-30"), "confirmada", true)

		result, err := f.svc.CancelReservation(ctx, f.userID, id)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.FeeCents)
		assert.Equal(t, int64(5000), result.RefundCents)
	})

	t.Run("outside every bracket is free", func(t *testing.T) {
		f, id := setup(date("2026-09-01"), "pendente", true)

		result, err := f.svc.CancelReservation(ctx, f.userID, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.FeeCents)
		assert.Equal(t, int64(10000), result.RefundCents)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		f, id := setup(date("2026-09-01"), "confirmada", false)

		_, err := f.svc.CancelReservation(ctx, f.userID, id)
		assert.ErrorIs(t, err, commands.ErrNotReservationOwner)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f, id := setup(date("2026-09-01"), "cancelada", true)

		_, err := f.svc.CancelReservation(ctx, f.userID, id)
		assert.ErrorIs(t, err, commands.ErrNotCancellable)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f, _ := setup(date("2026-09-01"), "confirmada", true)

		_, err := f.svc.CancelReservation(ctx, f.userID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	setup := func(status string) (*reservationFixture, uuid.UUID) {
		f := newReservationFixture(date("2026-09-01"))
		reservationID := uuid.New()

		f.uow.Tx.CommandReads.ReservationByIDFn = func(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
			if id != reservationID {
				return nil, notFoundErr()
			}
			return &shared.ReservationSnapshot{
				ID:         reservationID,
				UserID:     f.userID,
				Code:       "HB-20260901-TEST",
				Status:     status,
				TotalCents: 10000,
				PolicyID:   f.policy.ID,
				Items: []shared.ReservationItemSnapshot{
					{ID: uuid.New(), BedID: f.beds[0], Checkin: date("2026-10-01"), Checkout: date("2026-10-04"), PriceCents: 10000},
				},
			}, nil
		}
		return f, reservationID
	}

	t.Run("confirm moves pendente to confirmada", func(t *testing.T) {
		f, id := setup("pendente")

		err := f.svc.ConfirmReservation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmada, f.uow.Tx.ReservationRepo.StatusesUpdated[id])
	})

	t.Run("confirm rejects any other status", func(t *testing.T) {
		for _, status := range []string{"confirmada", "cancelada", "checkout"} {
			f, id := setup(status)

			err := f.svc.ConfirmReservation(ctx, id)
			assert.ErrorIs(t, err, commands.ErrInvalidTransition, "status %s", status)
		}
	})

	t.Run("checkout moves confirmada to checkout", func(t *testing.T) {
		f, id := setup("confirmada")

		err := f.svc.CheckoutReservation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckout, f.uow.Tx.ReservationRepo.StatusesUpdated[id])
	})

	t.Run("checkout requires a confirmed reservation", func(t *testing.T) {
		f, id := setup("pendente")

		err := f.svc.CheckoutReservation(ctx, id)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f, _ := setup("pendente")

		err := f.svc.ConfirmReservation(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
