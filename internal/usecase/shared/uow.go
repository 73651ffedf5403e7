package shared

import (
	"context"
	"time"

	"hostel-booking/internal/domain/cart"
	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/domain/review"
	"hostel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic.
	// Every availability-then-mutate sequence runs inside one Within
	// call so the check and the write cannot be split by a concurrent
	// request.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Carts() CartRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the transaction-scoped reads the commands validate
// against before writing.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BedByID(ctx context.Context, id uuid.UUID) (*BedSnapshot, error)
	BedsByRoomID(ctx context.Context, roomID uuid.UUID) ([]BedSnapshot, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	PolicyByName(ctx context.Context, name string) (*PolicySnapshot, error)
	PolicyByID(ctx context.Context, id uuid.UUID) (*PolicySnapshot, error)
	CartItemsByUser(ctx context.Context, userID uuid.UUID) ([]CartItemSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)

	// LockBeds takes row locks on the beds, serializing concurrent
	// availability checks for the same beds until commit.
	LockBeds(ctx context.Context, bedIDs []uuid.UUID) error
	// OverlappingHoldExists reports whether any confirmed/pendente
	// reservation item or any cart hold overlaps the candidate range on
	// any of the beds. excludeUser ignores that user's own cart holds.
	OverlappingHoldExists(ctx context.Context, bedIDs []uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error)
}

type CartRepository interface {
	Insert(ctx context.Context, item *cart.Item) error
	InsertAll(ctx context.Context, items []*cart.Item) error
	// DeleteOwned removes the item only when it belongs to the user;
	// returns the number of rows removed.
	DeleteOwned(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
}
