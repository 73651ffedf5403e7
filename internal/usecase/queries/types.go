package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomListItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	BasePriceCents int64     `json:"base_price_cents"`
	Active         bool      `json:"active"`
	AvgRating      *float64  `json:"avg_rating,omitempty"`
	ReviewCount    int64     `json:"review_count"`
}

type BedView struct {
	ID                uuid.UUID `json:"id"`
	RoomID            uuid.UUID `json:"room_id"`
	BedType           string    `json:"bed_type"`
	Position          int       `json:"position"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
}

type PackageView struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	Name            string    `json:"name"`
	Checkin         time.Time `json:"checkin"`
	Checkout        time.Time `json:"checkout"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CloseWholeRoom  bool      `json:"close_whole_room"`
}

type RoomView struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Capacity       int           `json:"capacity"`
	BasePriceCents int64         `json:"base_price_cents"`
	Active         bool          `json:"active"`
	Beds           []BedView     `json:"beds"`
	Packages       []PackageView `json:"packages"`
}

type CartItemView struct {
	ID              uuid.UUID  `json:"id"`
	BedID           uuid.UUID  `json:"bed_id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomName        string     `json:"room_name"`
	BedPosition     int        `json:"bed_position"`
	Checkin         time.Time  `json:"checkin"`
	Checkout        time.Time  `json:"checkout"`
	Nights          int        `json:"nights"`
	PackageID       *uuid.UUID `json:"package_id,omitempty"`
	TotalPriceCents int64      `json:"total_price_cents"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReservationItemView struct {
	ID          uuid.UUID  `json:"id"`
	BedID       uuid.UUID  `json:"bed_id"`
	RoomName    string     `json:"room_name"`
	BedPosition int        `json:"bed_position"`
	Checkin     time.Time  `json:"checkin"`
	Checkout    time.Time  `json:"checkout"`
	PriceCents  int64      `json:"price_cents"`
	PackageID   *uuid.UUID `json:"package_id,omitempty"`
}

type ReservationView struct {
	ID         uuid.UUID             `json:"id"`
	UserID     uuid.UUID             `json:"user_id"`
	Code       string                `json:"code"`
	Status     string                `json:"status"`
	TotalCents int64                 `json:"total_cents"`
	Items      []ReservationItemView `json:"items"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int64     `json:"item_count"`
	Checkin    time.Time `json:"checkin"`
	Checkout   time.Time `json:"checkout"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomOccupancy struct {
	RoomID            uuid.UUID `json:"room_id"`
	RoomName          string    `json:"room_name"`
	Capacity          int       `json:"capacity"`
	OccupiedBedNights int64     `json:"occupied_bed_nights"`
	TotalBedNights    int64     `json:"total_bed_nights"`
	OccupancyRate     float64   `json:"occupancy_rate"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoomID    uuid.UUID `json:"room_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomRatingStats struct {
	RoomID      uuid.UUID `json:"room_id"`
	AvgRating   *float64  `json:"avg_rating,omitempty"`
	ReviewCount int64     `json:"review_count"`
}
