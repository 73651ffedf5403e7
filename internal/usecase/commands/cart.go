package commands

import (
	"context"
	"time"

	"hostel-booking/internal/domain/cart"
	"hostel-booking/internal/domain/stay"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBedNotFound          = errs.New("bed not found")
	ErrRoomNotFound         = errs.New("room not found")
	ErrRoomInactive         = errs.New("room is not active")
	ErrPackageNotFound      = errs.New("package not found")
	ErrInvalidStayRange     = errs.New("invalid stay range")
	ErrBedUnavailable       = errs.New("bed unavailable for the requested dates")
	ErrDuplicateCartItem    = errs.New("cart already holds this bed for these dates")
	ErrCartConflict         = errs.New("cart holds a conflicting stay on this bed")
	ErrPackageRangeMismatch = errs.New("requested dates do not match the package dates")
	ErrUnsupportedPackage   = errs.New("package does not close the whole room")
	ErrPackageWithoutBeds   = errs.New("package room has no beds")
)

type CartCommands interface {
	AddToCart(ctx context.Context, userID, bedID uuid.UUID, checkin, checkout time.Time) (uuid.UUID, error)
	AddPackageToCart(ctx context.Context, userID, packageID uuid.UUID, checkin, checkout time.Time) ([]uuid.UUID, error)
	RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clock clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clock}
}

func (c *cartCommandsImpl) AddToCart(ctx context.Context, userID, bedID uuid.UUID, checkin, checkout time.Time) (uuid.UUID, error) {
	stayRange, err := stay.NewStayRange(checkin, checkout, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidStayRange)
	}

	var itemID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		bed, err := reads.BedByID(ctx, bedID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBedNotFound)
			}
			return err
		}

		room, err := reads.RoomByID(ctx, bed.RoomID)
		if err != nil {
			return err
		}
		if !room.Active {
			return ErrRoomInactive
		}

		item, err := cart.NewItem(userID, bedID, stayRange)
		if err != nil {
			return errs.Mark(err, ErrInvalidStayRange)
		}

		if err := c.checkOwnCart(ctx, reads, userID, item); err != nil {
			return err
		}

		// Hold the bed row until commit so a concurrent add for the same
		// bed serializes behind this transaction instead of passing the
		// overlap check on a stale read.
		if err := reads.LockBeds(ctx, []uuid.UUID{bedID}); err != nil {
			return err
		}

		held, err := reads.OverlappingHoldExists(ctx, []uuid.UUID{bedID}, stayRange.Checkin(), stayRange.Checkout(), &userID)
		if err != nil {
			return err
		}
		if held {
			return ErrBedUnavailable
		}

		if err := tx.Carts().Insert(ctx, item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCartItem)
			}
			return err
		}
		itemID = item.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (c *cartCommandsImpl) AddPackageToCart(ctx context.Context, userID, packageID uuid.UUID, checkin, checkout time.Time) ([]uuid.UUID, error) {
	requested := stay.ReconstructStayRange(stay.TruncateToDate(checkin), stay.TruncateToDate(checkout))

	var itemIDs []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		pkg, err := reads.PackageByID(ctx, packageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPackageNotFound)
			}
			return err
		}
		if !pkg.CloseWholeRoom {
			return ErrUnsupportedPackage
		}

		fixed, err := stay.NewStayRange(pkg.Checkin, pkg.Checkout, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidStayRange)
		}
		if !fixed.Equal(requested) {
			return ErrPackageRangeMismatch
		}

		room, err := reads.RoomByID(ctx, pkg.RoomID)
		if err != nil {
			return err
		}
		if !room.Active {
			return ErrRoomInactive
		}

		beds, err := reads.BedsByRoomID(ctx, pkg.RoomID)
		if err != nil {
			return err
		}
		if len(beds) == 0 {
			return ErrPackageWithoutBeds
		}

		bedIDs := make([]uuid.UUID, len(beds))
		for i, bed := range beds {
			bedIDs[i] = bed.ID
		}

		// Same serialization as the single-bed path: lock every room bed
		// before checking, so a whole-room add cannot race a concurrent
		// hold on any member bed.
		if err := reads.LockBeds(ctx, bedIDs); err != nil {
			return err
		}

		held, err := reads.OverlappingHoldExists(ctx, bedIDs, fixed.Checkin(), fixed.Checkout(), &userID)
		if err != nil {
			return err
		}
		if held {
			return ErrBedUnavailable
		}

		shares := stay.NewMoney(pkg.TotalPriceCents).SplitEvenly(len(beds))
		items := make([]*cart.Item, len(beds))
		for i, bed := range beds {
			item, err := cart.NewPackageItem(userID, bed.ID, packageID, fixed, shares[i])
			if err != nil {
				return err
			}
			if err := c.checkOwnCart(ctx, reads, userID, item); err != nil {
				return err
			}
			items[i] = item
		}

		if err := tx.Carts().InsertAll(ctx, items); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCartItem)
			}
			return err
		}
		for _, item := range items {
			itemIDs = append(itemIDs, item.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return itemIDs, nil
}

// checkOwnCart rejects exact duplicates and overlapping holds the user
// already has on the same bed.
func (c *cartCommandsImpl) checkOwnCart(ctx context.Context, reads shared.CommandReads, userID uuid.UUID, candidate *cart.Item) error {
	existing, err := reads.CartItemsByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, snap := range existing {
		held := cart.ReconstructItem(snap.ID, snap.UserID, snap.BedID,
			stay.ReconstructStayRange(snap.Checkin, snap.Checkout),
			snap.PackageID, moneyPtr(snap.FixedPriceCents), snap.CreatedAt)
		if candidate.IsDuplicateOf(held) {
			return ErrDuplicateCartItem
		}
		if candidate.ConflictsWith(held) {
			return ErrCartConflict
		}
	}
	return nil
}

// RemoveFromCart is a silent no-op when the item does not exist or
// belongs to another user.
func (c *cartCommandsImpl) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Carts().DeleteOwned(ctx, userID, itemID)
		return err
	})
}

func (c *cartCommandsImpl) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Carts().DeleteByUser(ctx, userID)
		return err
	})
}

func moneyPtr(cents *int64) *stay.Money {
	if cents == nil {
		return nil
	}
	m := stay.NewMoney(*cents)
	return &m
}
