package queries

import (
	"context"
	"time"

	"hostel-booking/internal/domain/stay"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidSearchRange = errs.New("invalid search range")

type RoomAvailabilityView struct {
	RoomID            uuid.UUID     `json:"room_id"`
	RoomName          string        `json:"room_name"`
	Capacity          int           `json:"capacity"`
	AvailableBeds     []BedView     `json:"available_beds"`
	AvailablePackages []PackageView `json:"available_packages,omitempty"`
}

type AvailabilityQueries interface {
	// Search lists rooms with their free beds for the requested
	// half-open range. The requester's own cart holds, if any, do not
	// count against availability.
	Search(ctx context.Context, checkin, checkout time.Time, roomID, requester *uuid.UUID) ([]*RoomAvailabilityView, error)
}

type AvailabilityViewRepo interface {
	FindAvailableRooms(ctx context.Context, checkin, checkout time.Time, roomID, excludeUser *uuid.UUID) ([]*RoomAvailabilityView, error)
	BedFree(ctx context.Context, bedID uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error)
}

type availabilityQueriesImpl struct {
	repo  AvailabilityViewRepo
	clock clock.Clock
}

func NewAvailabilityQueries(repo AvailabilityViewRepo, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clock}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, checkin, checkout time.Time, roomID, requester *uuid.UUID) ([]*RoomAvailabilityView, error) {
	r, err := stay.NewStayRange(checkin, checkout, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchRange)
	}
	return q.repo.FindAvailableRooms(ctx, r.Checkin(), r.Checkout(), roomID, requester)
}
