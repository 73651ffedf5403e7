package repository

import (
	"context"

	"hostel-booking/internal/domain/review"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/infra/psqlbuilder"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

var _ shared.ReviewRepository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	query, args, err := psqlbuilder.Insert("reviews").
		Columns("id", "user_id", "room_id", "reservation_id", "rating", "comment", "created_at", "updated_at").
		Values(rev.ID(), rev.UserID(), rev.RoomID(), rev.ReservationID(),
			rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(), rev.UpdatedAt()).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build review insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert review", err, classifyPgErr(err)...)
	}
	return rev.ID(), nil
}
