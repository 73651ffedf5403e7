package shared

import (
	"time"

	"hostel-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. Query-side views live in
// usecase/queries.

type RoomSnapshot struct {
	ID             uuid.UUID
	Name           string
	Capacity       int
	BasePriceCents int64
	Active         bool
}

type BedSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	BedType    string
	Position   int
	PriceCents *int64
}

// NightlyPriceCents resolves the effective rate the same way the domain
// does: explicit bed price, else room base price over capacity.
func (b BedSnapshot) NightlyPriceCents(room RoomSnapshot) int64 {
	if b.PriceCents != nil {
		return *b.PriceCents
	}
	return room.BasePriceCents / int64(room.Capacity)
}

type PackageSnapshot struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	Name            string
	Checkin         time.Time
	Checkout        time.Time
	TotalPriceCents int64
	CloseWholeRoom  bool
}

type PolicySnapshot struct {
	ID       uuid.UUID
	Name     string
	Brackets []reservation.FeeBracket
}

type CartItemSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BedID           uuid.UUID
	Checkin         time.Time
	Checkout        time.Time
	PackageID       *uuid.UUID
	FixedPriceCents *int64
	CreatedAt       time.Time
}

type ReservationItemSnapshot struct {
	ID         uuid.UUID
	BedID      uuid.UUID
	Checkin    time.Time
	Checkout   time.Time
	PriceCents int64
	PackageID  *uuid.UUID
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Code       string
	Status     string
	TotalCents int64
	PolicyID   uuid.UUID
	Items      []ReservationItemSnapshot
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
