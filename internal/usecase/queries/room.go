package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context) ([]*RoomListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomListItem, error) {
	return q.repo.FindAll(ctx)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}
