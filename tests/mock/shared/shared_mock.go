//go:build unit

// In-memory fakes for the unit of work and its transaction-scoped
// collaborators. FakeUoW runs the callback directly against the
// configured stubs, so command tests exercise real transaction
// bodies without a database.
package sharedmock

import (
	"context"
	"time"

	"hostel-booking/internal/domain/cart"
	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/domain/review"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FakeUoW struct {
	Tx *FakeTx
	// WithinErr short-circuits Within before the callback runs.
	WithinErr error
}

var _ shared.UnitOfWork = (*FakeUoW)(nil)

func NewFakeUoW() *FakeUoW {
	return &FakeUoW{
		Tx: &FakeTx{
			CartRepo:        &CartRepositoryStub{},
			ReservationRepo: &ReservationRepositoryStub{},
			ReviewRepo:      &ReviewRepositoryStub{},
			CommandReads:    &CommandReadsStub{},
		},
	}
}

func (u *FakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type FakeTx struct {
	CartRepo        *CartRepositoryStub
	ReservationRepo *ReservationRepositoryStub
	ReviewRepo      *ReviewRepositoryStub
	CommandReads    *CommandReadsStub
}

var _ shared.Tx = (*FakeTx)(nil)

func (t *FakeTx) Carts() shared.CartRepository               { return t.CartRepo }
func (t *FakeTx) Reservations() shared.ReservationRepository { return t.ReservationRepo }
func (t *FakeTx) Reviews() shared.ReviewRepository           { return t.ReviewRepo }
func (t *FakeTx) Reads() shared.CommandReads                 { return t.CommandReads }
func (t *FakeTx) DB() db.DBTX                                { return nil }

type CartRepositoryStub struct {
	InsertFn       func(ctx context.Context, item *cart.Item) error
	InsertAllFn    func(ctx context.Context, items []*cart.Item) error
	DeleteOwnedFn  func(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
	DeleteByUserFn func(ctx context.Context, userID uuid.UUID) (int64, error)

	Inserted []*cart.Item
}

var _ shared.CartRepository = (*CartRepositoryStub)(nil)

func (s *CartRepositoryStub) Insert(ctx context.Context, item *cart.Item) error {
	s.Inserted = append(s.Inserted, item)
	if s.InsertFn == nil {
		return nil
	}
	return s.InsertFn(ctx, item)
}

func (s *CartRepositoryStub) InsertAll(ctx context.Context, items []*cart.Item) error {
	s.Inserted = append(s.Inserted, items...)
	if s.InsertAllFn == nil {
		return nil
	}
	return s.InsertAllFn(ctx, items)
}

func (s *CartRepositoryStub) DeleteOwned(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	if s.DeleteOwnedFn == nil {
		return 1, nil
	}
	return s.DeleteOwnedFn(ctx, userID, itemID)
}

func (s *CartRepositoryStub) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.DeleteByUserFn == nil {
		return 0, nil
	}
	return s.DeleteByUserFn(ctx, userID)
}

type ReservationRepositoryStub struct {
	CreateFn       func(ctx context.Context, res *reservation.Reservation) error
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status reservation.Status) error

	Created         []*reservation.Reservation
	StatusesUpdated map[uuid.UUID]reservation.Status
}

var _ shared.ReservationRepository = (*ReservationRepositoryStub)(nil)

func (s *ReservationRepositoryStub) Create(ctx context.Context, res *reservation.Reservation) error {
	s.Created = append(s.Created, res)
	if s.CreateFn == nil {
		return nil
	}
	return s.CreateFn(ctx, res)
}

func (s *ReservationRepositoryStub) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	if s.StatusesUpdated == nil {
		s.StatusesUpdated = make(map[uuid.UUID]reservation.Status)
	}
	s.StatusesUpdated[id] = status
	if s.UpdateStatusFn == nil {
		return nil
	}
	return s.UpdateStatusFn(ctx, id, status)
}

type ReviewRepositoryStub struct {
	CreateFn func(ctx context.Context, rev *review.Review) (uuid.UUID, error)

	Created []*review.Review
}

var _ shared.ReviewRepository = (*ReviewRepositoryStub)(nil)

func (s *ReviewRepositoryStub) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	s.Created = append(s.Created, rev)
	if s.CreateFn == nil {
		return rev.ID(), nil
	}
	return s.CreateFn(ctx, rev)
}

type CommandReadsStub struct {
	RoomByIDFn        func(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error)
	BedByIDFn         func(ctx context.Context, id uuid.UUID) (*shared.BedSnapshot, error)
	BedsByRoomIDFn    func(ctx context.Context, roomID uuid.UUID) ([]shared.BedSnapshot, error)
	PackageByIDFn     func(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error)
	PolicyByNameFn    func(ctx context.Context, name string) (*shared.PolicySnapshot, error)
	PolicyByIDFn      func(ctx context.Context, id uuid.UUID) (*shared.PolicySnapshot, error)
	CartItemsByUserFn func(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error)
	ReservationByIDFn func(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error)
	LockBedsFn        func(ctx context.Context, bedIDs []uuid.UUID) error
	OverlapFn         func(ctx context.Context, bedIDs []uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error)

	LockedBedIDs []uuid.UUID
}

var _ shared.CommandReads = (*CommandReadsStub)(nil)

func (s *CommandReadsStub) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	if s.RoomByIDFn == nil {
		panic("CommandReadsStub.RoomByID called without stub")
	}
	return s.RoomByIDFn(ctx, id)
}

func (s *CommandReadsStub) BedByID(ctx context.Context, id uuid.UUID) (*shared.BedSnapshot, error) {
	if s.BedByIDFn == nil {
		panic("CommandReadsStub.BedByID called without stub")
	}
	return s.BedByIDFn(ctx, id)
}

func (s *CommandReadsStub) BedsByRoomID(ctx context.Context, roomID uuid.UUID) ([]shared.BedSnapshot, error) {
	if s.BedsByRoomIDFn == nil {
		panic("CommandReadsStub.BedsByRoomID called without stub")
	}
	return s.BedsByRoomIDFn(ctx, roomID)
}

func (s *CommandReadsStub) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	if s.PackageByIDFn == nil {
		panic("CommandReadsStub.PackageByID called without stub")
	}
	return s.PackageByIDFn(ctx, id)
}

func (s *CommandReadsStub) PolicyByName(ctx context.Context, name string) (*shared.PolicySnapshot, error) {
	if s.PolicyByNameFn == nil {
		panic("CommandReadsStub.PolicyByName called without stub")
	}
	return s.PolicyByNameFn(ctx, name)
}

func (s *CommandReadsStub) PolicyByID(ctx context.Context, id uuid.UUID) (*shared.PolicySnapshot, error) {
	if s.PolicyByIDFn == nil {
		panic("CommandReadsStub.PolicyByID called without stub")
	}
	return s.PolicyByIDFn(ctx, id)
}

func (s *CommandReadsStub) CartItemsByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	if s.CartItemsByUserFn == nil {
		panic("CommandReadsStub.CartItemsByUser called without stub")
	}
	return s.CartItemsByUserFn(ctx, userID)
}

func (s *CommandReadsStub) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if s.ReservationByIDFn == nil {
		panic("CommandReadsStub.ReservationByID called without stub")
	}
	return s.ReservationByIDFn(ctx, id)
}

func (s *CommandReadsStub) LockBeds(ctx context.Context, bedIDs []uuid.UUID) error {
	s.LockedBedIDs = append(s.LockedBedIDs, bedIDs...)
	if s.LockBedsFn == nil {
		return nil
	}
	return s.LockBedsFn(ctx, bedIDs)
}

func (s *CommandReadsStub) OverlappingHoldExists(ctx context.Context, bedIDs []uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error) {
	if s.OverlapFn == nil {
		return false, nil
	}
	return s.OverlapFn(ctx, bedIDs, checkin, checkout, excludeUser)
}
