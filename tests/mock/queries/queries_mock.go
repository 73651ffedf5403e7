//go:build unit

// Hand-written stubs for the query services.
package queriesmock

import (
	"context"
	"time"

	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQueriesStub struct {
	SearchFn func(ctx context.Context, checkin, checkout time.Time, roomID, requester *uuid.UUID) ([]*queries.RoomAvailabilityView, error)
}

var _ queries.AvailabilityQueries = (*AvailabilityQueriesStub)(nil)

func (s *AvailabilityQueriesStub) Search(ctx context.Context, checkin, checkout time.Time, roomID, requester *uuid.UUID) ([]*queries.RoomAvailabilityView, error) {
	if s.SearchFn == nil {
		panic("AvailabilityQueriesStub.Search called without stub")
	}
	return s.SearchFn(ctx, checkin, checkout, roomID, requester)
}

type RoomQueriesStub struct {
	ListFn    func(ctx context.Context) ([]*queries.RoomListItem, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*queries.RoomView, error)
}

var _ queries.RoomQueries = (*RoomQueriesStub)(nil)

func (s *RoomQueriesStub) List(ctx context.Context) ([]*queries.RoomListItem, error) {
	if s.ListFn == nil {
		panic("RoomQueriesStub.List called without stub")
	}
	return s.ListFn(ctx)
}

func (s *RoomQueriesStub) GetByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	if s.GetByIDFn == nil {
		panic("RoomQueriesStub.GetByID called without stub")
	}
	return s.GetByIDFn(ctx, id)
}

type CartQueriesStub struct {
	GetCartFn func(ctx context.Context, userID uuid.UUID) (*queries.CartSummary, error)
}

var _ queries.CartQueries = (*CartQueriesStub)(nil)

func (s *CartQueriesStub) GetCart(ctx context.Context, userID uuid.UUID) (*queries.CartSummary, error) {
	if s.GetCartFn == nil {
		panic("CartQueriesStub.GetCart called without stub")
	}
	return s.GetCartFn(ctx, userID)
}

type ReservationQueriesStub struct {
	GetByIDFn    func(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.ReservationView, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error)
}

var _ queries.ReservationQueries = (*ReservationQueriesStub)(nil)

func (s *ReservationQueriesStub) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.ReservationView, error) {
	if s.GetByIDFn == nil {
		panic("ReservationQueriesStub.GetByID called without stub")
	}
	return s.GetByIDFn(ctx, actor, id)
}

func (s *ReservationQueriesStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	if s.ListByUserFn == nil {
		panic("ReservationQueriesStub.ListByUser called without stub")
	}
	return s.ListByUserFn(ctx, userID)
}

type OccupancyQueriesStub struct {
	ReportFn func(ctx context.Context, from, to time.Time) ([]*queries.RoomOccupancy, error)
}

var _ queries.OccupancyQueries = (*OccupancyQueriesStub)(nil)

func (s *OccupancyQueriesStub) Report(ctx context.Context, from, to time.Time) ([]*queries.RoomOccupancy, error) {
	if s.ReportFn == nil {
		panic("OccupancyQueriesStub.Report called without stub")
	}
	return s.ReportFn(ctx, from, to)
}

type ReviewQueriesStub struct {
	ListByRoomFn  func(ctx context.Context, roomID uuid.UUID) ([]*queries.ReviewView, error)
	RatingStatsFn func(ctx context.Context, roomID uuid.UUID) (*queries.RoomRatingStats, error)
}

var _ queries.ReviewQueries = (*ReviewQueriesStub)(nil)

func (s *ReviewQueriesStub) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.ReviewView, error) {
	if s.ListByRoomFn == nil {
		panic("ReviewQueriesStub.ListByRoom called without stub")
	}
	return s.ListByRoomFn(ctx, roomID)
}

func (s *ReviewQueriesStub) RatingStats(ctx context.Context, roomID uuid.UUID) (*queries.RoomRatingStats, error) {
	if s.RatingStatsFn == nil {
		panic("ReviewQueriesStub.RatingStats called without stub")
	}
	return s.RatingStatsFn(ctx, roomID)
}
