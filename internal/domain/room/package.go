package room

import (
	"errors"
	"strings"
	"time"

	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrEmptyPackageName       = errors.New("package name cannot be empty")
	ErrPackageRangeMismatch   = errors.New("requested range does not match the package range")
	ErrPackageNotWholeRoom    = errors.New("package does not close the whole room")
	ErrPackageWithoutBeds     = errors.New("package room has no beds")
)

// Package is a fixed-price, fixed-date offer bound to a Room. When
// closeWholeRoom is set, all beds in the room are booked together as one
// unit.
type Package struct {
	id            uuid.UUID
	roomID        uuid.UUID
	name          string
	fixedRange    stay.StayRange
	totalPrice    stay.Money
	closeWholeRoom bool
	createdAt     time.Time
}

func NewPackage(id, roomID uuid.UUID, name string, fixedRange stay.StayRange, totalPriceCents int64, closeWholeRoom bool) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPackageName
	}
	if totalPriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Package{
		id:             id,
		roomID:         roomID,
		name:           name,
		fixedRange:     fixedRange,
		totalPrice:     stay.NewMoney(totalPriceCents),
		closeWholeRoom: closeWholeRoom,
	}, nil
}

func ReconstructPackage(id, roomID uuid.UUID, name string, fixedRange stay.StayRange, totalPrice stay.Money, closeWholeRoom bool, createdAt time.Time) *Package {
	return &Package{
		id:             id,
		roomID:         roomID,
		name:           name,
		fixedRange:     fixedRange,
		totalPrice:     totalPrice,
		closeWholeRoom: closeWholeRoom,
		createdAt:      createdAt,
	}
}

func (p *Package) ID() uuid.UUID             { return p.id }
func (p *Package) RoomID() uuid.UUID         { return p.roomID }
func (p *Package) Name() string              { return p.name }
func (p *Package) FixedRange() stay.StayRange { return p.fixedRange }
func (p *Package) TotalPrice() stay.Money    { return p.totalPrice }
func (p *Package) ClosesWholeRoom() bool     { return p.closeWholeRoom }
func (p *Package) CreatedAt() time.Time      { return p.createdAt }

// ValidateBooking checks that a cart request may book this package: the
// requested range must equal the fixed range and the package must close
// the whole room.
func (p *Package) ValidateBooking(requested stay.StayRange) error {
	if !p.closeWholeRoom {
		return ErrPackageNotWholeRoom
	}
	if !p.fixedRange.Equal(requested) {
		return ErrPackageRangeMismatch
	}
	return nil
}

// SplitPrice distributes the package total equally across the room's
// beds. Remainder cents land on the first beds so the shares sum back to
// the package total.
func (p *Package) SplitPrice(bedCount int) ([]stay.Money, error) {
	if bedCount <= 0 {
		return nil, ErrPackageWithoutBeds
	}
	return p.totalPrice.SplitEvenly(bedCount), nil
}
