package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error)
	RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error)
}

type ReviewViewRepo interface {
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error)
	RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByRoomID(ctx, roomID)
}

func (q *reviewQueriesImpl) RatingStats(ctx context.Context, roomID uuid.UUID) (*RoomRatingStats, error) {
	return q.repo.RatingStats(ctx, roomID)
}
