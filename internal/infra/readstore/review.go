package readstore

import (
	"context"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/infra/psqlbuilder"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomRatingStatsSQL = `
SELECT room_id, AVG(rating)::float8 AS avg_rating, COUNT(id) AS review_count
FROM reviews
WHERE room_id = $1
GROUP BY room_id`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

var _ queries.ReviewViewRepo = (*ReviewReadStore)(nil)

func (r *ReviewReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReviewView, error) {
	query, args, err := psqlbuilder.Select("id", "user_id", "room_id", "rating", "comment", "created_at").
		From("reviews").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reviews query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view      queries.ReviewView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.UserID, &view.RoomID, &view.Rating, &view.Comment, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

func (r *ReviewReadStore) RatingStats(ctx context.Context, roomID uuid.UUID) (*queries.RoomRatingStats, error) {
	var (
		stats queries.RoomRatingStats
		avg   pgtype.Float8
	)
	err := r.db.QueryRow(ctx, roomRatingStatsSQL, roomID).Scan(&stats.RoomID, &avg, &stats.ReviewCount)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.RoomRatingStats{RoomID: roomID}, nil
		}
		return nil, infra.WrapRepoErr("failed to query rating stats", err)
	}
	if avg.Valid {
		stats.AvgRating = &avg.Float64
	}
	return &stats, nil
}
