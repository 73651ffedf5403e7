package readstore

import (
	"context"
	"time"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// A bed is free for [checkin, checkout) when no pendente/confirmada
// reservation item and no other user's cart item overlaps it. The
// requesting user's own cart holds do not block them.
const availableBedsSQL = `
SELECT r.id, r.name, r.capacity,
       b.id, b.bed_type, b.position,
       COALESCE(b.price_cents, r.base_price_cents / r.capacity) AS nightly_price_cents
FROM beds b
JOIN rooms r ON r.id = b.room_id
WHERE r.active
  AND ($3::uuid IS NULL OR r.id = $3)
  AND NOT EXISTS (
      SELECT 1
      FROM reservation_items ri
      JOIN reservations res ON res.id = ri.reservation_id
      WHERE ri.bed_id = b.id
        AND res.status IN ('pendente', 'confirmada')
        AND ri.checkin < $2
        AND ri.checkout > $1
  )
  AND NOT EXISTS (
      SELECT 1
      FROM cart_items ci
      WHERE ci.bed_id = b.id
        AND ci.checkin < $2
        AND ci.checkout > $1
        AND ($4::uuid IS NULL OR ci.user_id <> $4)
  )
ORDER BY r.name, b.position`

// A package is offered only when its room has beds and its fixed range
// is fully free on every one of them. A bedless room can never satisfy
// a whole-room package, so it must not be listed.
const availablePackagesSQL = `
SELECT p.id, p.room_id, p.name, p.checkin, p.checkout, p.total_price_cents, p.close_whole_room
FROM room_packages p
JOIN rooms r ON r.id = p.room_id
WHERE r.active
  AND ($1::uuid IS NULL OR p.room_id = $1)
  AND EXISTS (
      SELECT 1
      FROM beds b
      WHERE b.room_id = p.room_id
  )
  AND NOT EXISTS (
      SELECT 1
      FROM beds b
      WHERE b.room_id = p.room_id
        AND (EXISTS (
            SELECT 1
            FROM reservation_items ri
            JOIN reservations res ON res.id = ri.reservation_id
            WHERE ri.bed_id = b.id
              AND res.status IN ('pendente', 'confirmada')
              AND ri.checkin < p.checkout
              AND ri.checkout > p.checkin
        ) OR EXISTS (
            SELECT 1
            FROM cart_items ci
            WHERE ci.bed_id = b.id
              AND ci.checkin < p.checkout
              AND ci.checkout > p.checkin
              AND ($2::uuid IS NULL OR ci.user_id <> $2)
        ))
  )
ORDER BY p.checkin`

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

var _ queries.AvailabilityViewRepo = (*AvailabilityReadStore)(nil)

func (a *AvailabilityReadStore) FindAvailableRooms(ctx context.Context, checkin, checkout time.Time, roomID, excludeUser *uuid.UUID) ([]*queries.RoomAvailabilityView, error) {
	rows, err := a.db.Query(ctx, availableBedsSQL, checkin, checkout, roomID, excludeUser)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available beds", err)
	}
	defer rows.Close()

	var (
		result  []*queries.RoomAvailabilityView
		indexOf = map[uuid.UUID]int{}
	)
	for rows.Next() {
		var (
			rID      uuid.UUID
			rName    string
			capacity int
			bed      queries.BedView
		)
		if err := rows.Scan(&rID, &rName, &capacity, &bed.ID, &bed.BedType, &bed.Position, &bed.NightlyPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available bed row", err)
		}
		bed.RoomID = rID

		idx, ok := indexOf[rID]
		if !ok {
			idx = len(result)
			indexOf[rID] = idx
			result = append(result, &queries.RoomAvailabilityView{
				RoomID:   rID,
				RoomName: rName,
				Capacity: capacity,
			})
		}
		result[idx].AvailableBeds = append(result[idx].AvailableBeds, bed)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available bed rows", err)
	}

	pkgs, err := a.availablePackages(ctx, roomID, excludeUser)
	if err != nil {
		return nil, err
	}
	for _, pkg := range pkgs {
		if idx, ok := indexOf[pkg.RoomID]; ok {
			result[idx].AvailablePackages = append(result[idx].AvailablePackages, pkg)
		}
	}

	return result, nil
}

func (a *AvailabilityReadStore) availablePackages(ctx context.Context, roomID, excludeUser *uuid.UUID) ([]queries.PackageView, error) {
	rows, err := a.db.Query(ctx, availablePackagesSQL, roomID, excludeUser)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available packages", err)
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
			return nil, infra.WrapRepoErr("failed to scan available package row", err)
		}
		pkg.Checkin = pgconv.DateFromPgtype(checkin)
		pkg.Checkout = pgconv.DateFromPgtype(checkout)
		pkgs = append(pkgs, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available package rows", err)
	}
	return pkgs, nil
}

// BedFree reports the same availability check for a single bed,
// used by the read path before a cart add.
func (a *AvailabilityReadStore) BedFree(ctx context.Context, bedID uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error) {
	held, err := overlappingHoldExists(ctx, a.db, []uuid.UUID{bedID}, checkin, checkout, excludeUser)
	if err != nil {
		return false, err
	}
	return !held, nil
}
