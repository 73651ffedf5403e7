package room

import (
	"errors"
	"strings"
	"time"

	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName    = errors.New("room name cannot be empty")
	ErrRoomNameTooLong  = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity  = errors.New("room capacity must be positive")
	ErrNegativePrice    = errors.New("room base price cannot be negative")
	ErrInvalidBedType   = errors.New("invalid bed type")
	ErrInvalidPosition  = errors.New("bed position must be positive")
	ErrBedOutsideRoom   = errors.New("bed does not belong to this room")
)

const MaxRoomNameLength = 255

type Room struct {
	id         uuid.UUID
	name       string
	capacity   int
	basePrice  stay.Money
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoom(id uuid.UUID, name string, capacity int, basePriceCents int64, active bool) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		basePrice: stay.NewMoney(basePriceCents),
		active:    active,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, capacity int, basePrice stay.Money, active bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		basePrice: basePrice,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Name() string          { return r.name }
func (r *Room) Capacity() int         { return r.capacity }
func (r *Room) BasePrice() stay.Money { return r.basePrice }
func (r *Room) IsActive() bool        { return r.active }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }

// DefaultBedPrice derives a nightly bed price from the room base price
// divided by capacity. Beds may override it with an explicit price.
func (r *Room) DefaultBedPrice() stay.Money {
	return stay.NewMoney(r.basePrice.Cents() / int64(r.capacity))
}

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeBunk   BedType = "bunk"
	BedTypeDouble BedType = "double"
)

func (t BedType) IsValid() bool {
	switch t {
	case BedTypeSingle, BedTypeBunk, BedTypeDouble:
		return true
	default:
		return false
	}
}

type Bed struct {
	id       uuid.UUID
	roomID   uuid.UUID
	bedType  BedType
	position int
	// price is nil when the bed inherits the room's derived price.
	price *stay.Money
}

func NewBed(id, roomID uuid.UUID, bedType BedType, position int, priceCents *int64) (*Bed, error) {
	if !bedType.IsValid() {
		return nil, ErrInvalidBedType
	}
	if position <= 0 {
		return nil, ErrInvalidPosition
	}

	b := &Bed{
		id:       id,
		roomID:   roomID,
		bedType:  bedType,
		position: position,
	}
	if priceCents != nil {
		if *priceCents < 0 {
			return nil, ErrNegativePrice
		}
		p := stay.NewMoney(*priceCents)
		b.price = &p
	}
	return b, nil
}

func (b *Bed) ID() uuid.UUID     { return b.id }
func (b *Bed) RoomID() uuid.UUID { return b.roomID }
func (b *Bed) Type() BedType     { return b.bedType }
func (b *Bed) Position() int     { return b.position }

// NightlyPrice resolves the bed's effective nightly rate within its room.
func (b *Bed) NightlyPrice(r *Room) (stay.Money, error) {
	if b.roomID != r.ID() {
		return stay.Money{}, ErrBedOutsideRoom
	}
	if b.price != nil {
		return *b.price, nil
	}
	return r.DefaultBedPrice(), nil
}
