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

const roomListSQL = `
SELECT r.id, r.name, r.capacity, r.base_price_cents, r.active,
       AVG(rv.rating)::float8 AS avg_rating,
       COUNT(rv.id) AS review_count
FROM rooms r
LEFT JOIN reviews rv ON rv.room_id = r.id
WHERE r.active
GROUP BY r.id
ORDER BY r.name`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

var _ queries.RoomViewRepo = (*RoomReadStore)(nil)

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomListItem, error) {
	rows, err := r.db.Query(ctx, roomListSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var (
			item      queries.RoomListItem
			avgRating pgtype.Float8
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Capacity, &item.BasePriceCents, &item.Active, &avgRating, &item.ReviewCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		if avgRating.Valid {
			item.AvgRating = &avgRating.Float64
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query, args, err := psqlbuilder.Select("id", "name", "capacity", "base_price_cents", "active").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	var view queries.RoomView
	err = r.db.QueryRow(ctx, query, args...).Scan(&view.ID, &view.Name, &view.Capacity, &view.BasePriceCents, &view.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}

	beds, err := r.bedViews(ctx, id, view.BasePriceCents, view.Capacity)
	if err != nil {
		return nil, err
	}
	view.Beds = beds

	pkgs, err := r.packageViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Packages = pkgs

	return &view, nil
}

func (r *RoomReadStore) bedViews(ctx context.Context, roomID uuid.UUID, basePriceCents int64, capacity int) ([]queries.BedView, error) {
	query, args, err := psqlbuilder.Select("id", "room_id", "bed_type", "position", "price_cents").
		From("beds").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beds query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list beds", err)
	}
	defer rows.Close()

	var beds []queries.BedView
	for rows.Next() {
		var (
			bed   queries.BedView
			price pgtype.Int8
		)
		if err := rows.Scan(&bed.ID, &bed.RoomID, &bed.BedType, &bed.Position, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bed row", err)
		}
		if price.Valid {
			bed.NightlyPriceCents = price.Int64
		} else {
			bed.NightlyPriceCents = basePriceCents / int64(capacity)
		}
		beds = append(beds, bed)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bed rows", err)
	}
	return beds, nil
}

func (r *RoomReadStore) packageViews(ctx context.Context, roomID uuid.UUID) ([]queries.PackageView, error) {
	query, args, err := psqlbuilder.Select("id", "room_id", "name", "checkin", "checkout", "total_price_cents", "close_whole_room").
		From("room_packages").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("checkin").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build packages query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	var pkgs []queries.PackageView
	for rows.Next() {
		var (
			pkg      queries.PackageView
			checkin  pgtype.Date
			checkout pgtype.Date
		)
		if err := rows.Scan(&pkg.ID, &pkg.RoomID, &pkg.Name, &checkin, &checkout, &pkg.TotalPriceCents, &pkg.CloseWholeRoom); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		pkg.Checkin = pgconv.DateFromPgtype(checkin)
		pkg.Checkout = pgconv.DateFromPgtype(checkout)
		pkgs = append(pkgs, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package rows", err)
	}
	return pkgs, nil
}
