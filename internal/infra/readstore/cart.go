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

// Package items carry their fixed share; regular items price as
// nightly rate times nights, with the nightly rate resolved the same
// way the domain resolves it.
const cartItemsSQL = `
SELECT ci.id, ci.bed_id, b.room_id, r.name, b.position,
       ci.checkin, ci.checkout,
       (ci.checkout - ci.checkin) AS nights,
       ci.package_id,
       COALESCE(
           ci.fixed_price_cents,
           COALESCE(b.price_cents, r.base_price_cents / r.capacity) * (ci.checkout - ci.checkin)
       ) AS total_price_cents,
       ci.created_at
FROM cart_items ci
JOIN beds b ON b.id = ci.bed_id
JOIN rooms r ON r.id = b.room_id
WHERE ci.user_id = $1
ORDER BY ci.created_at, ci.id`

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

var _ queries.CartViewRepo = (*CartReadStore)(nil)

func (c *CartReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.CartItemView, error) {
	rows, err := c.db.Query(ctx, cartItemsSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var items []*queries.CartItemView
	for rows.Next() {
		var (
			item      queries.CartItemView
			checkin   pgtype.Date
			checkout  pgtype.Date
			packageID pgtype.UUID
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.BedID, &item.RoomID, &item.RoomName, &item.BedPosition,
			&checkin, &checkout, &item.Nights, &packageID, &item.TotalPriceCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		item.Checkin = pgconv.DateFromPgtype(checkin)
		item.Checkout = pgconv.DateFromPgtype(checkout)
		item.PackageID = pgconv.UUIDPtrFromPgtype(packageID)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}
	return items, nil
}
