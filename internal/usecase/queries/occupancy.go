package queries

import (
	"context"
	"time"

	"hostel-booking/internal/pkg/errs"
)

var ErrInvalidReportWindow = errs.New("invalid report window")

type OccupancyQueries interface {
	// Report aggregates occupied bed-nights per room over [from, to).
	Report(ctx context.Context, from, to time.Time) ([]*RoomOccupancy, error)
}

type OccupancyViewRepo interface {
	OccupancyByRoom(ctx context.Context, from, to time.Time) ([]*RoomOccupancy, error)
}

type occupancyQueriesImpl struct {
	repo OccupancyViewRepo
}

func NewOccupancyQueries(repo OccupancyViewRepo) OccupancyQueries {
	return &occupancyQueriesImpl{repo: repo}
}

func (q *occupancyQueriesImpl) Report(ctx context.Context, from, to time.Time) ([]*RoomOccupancy, error) {
	if !from.Before(to) {
		return nil, ErrInvalidReportWindow
	}
	return q.repo.OccupancyByRoom(ctx, from, to)
}
