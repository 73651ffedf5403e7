package readstore

import (
	"context"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationByIDSQL = `
SELECT id, user_id, code, status, total_cents, created_at, updated_at
FROM reservations
WHERE id = $1`

const reservationItemsSQL = `
SELECT ri.id, ri.bed_id, r.name, b.position, ri.checkin, ri.checkout, ri.price_cents, ri.package_id
FROM reservation_items ri
JOIN beds b ON b.id = ri.bed_id
JOIN rooms r ON r.id = b.room_id
WHERE ri.reservation_id = $1
ORDER BY r.name, b.position`

const reservationsByUserSQL = `
SELECT res.id, res.code, res.status, res.total_cents,
       COUNT(ri.id) AS item_count,
       MIN(ri.checkin) AS checkin,
       MAX(ri.checkout) AS checkout,
       res.created_at
FROM reservations res
JOIN reservation_items ri ON ri.reservation_id = res.id
WHERE res.user_id = $1
GROUP BY res.id
ORDER BY res.created_at DESC, res.id DESC`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

var _ queries.ReservationViewRepo = (*ReservationReadStore)(nil)

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, reservationByIDSQL, id).
		Scan(&view.ID, &view.UserID, &view.Code, &view.Status, &view.TotalCents, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	rows, err := r.db.Query(ctx, reservationItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      queries.ReservationItemView
			checkin   pgtype.Date
			checkout  pgtype.Date
			packageID pgtype.UUID
		)
		if err := rows.Scan(&item.ID, &item.BedID, &item.RoomName, &item.BedPosition,
			&checkin, &checkout, &item.PriceCents, &packageID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation item row", err)
		}
		item.Checkin = pgconv.DateFromPgtype(checkin)
		item.Checkout = pgconv.DateFromPgtype(checkout)
		item.PackageID = pgconv.UUIDPtrFromPgtype(packageID)
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation item rows", err)
	}

	return &view, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			checkin   pgtype.Date
			checkout  pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Code, &item.Status, &item.TotalCents,
			&item.ItemCount, &checkin, &checkout, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list row", err)
		}
		item.Checkin = pgconv.DateFromPgtype(checkin)
		item.Checkout = pgconv.DateFromPgtype(checkout)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation list rows", err)
	}
	return result, nil
}
