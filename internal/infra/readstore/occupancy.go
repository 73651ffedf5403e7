package readstore

import (
	"context"
	"time"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/queries"
)

// Occupied bed-nights clip each stay to the report window. Total
// bed-nights is capacity times the window length, so the rate is
// comparable across rooms of different sizes.
const occupancySQL = `
SELECT r.id, r.name, r.capacity,
       COALESCE(SUM(
           GREATEST(LEAST(ri.checkout, $2::date) - GREATEST(ri.checkin, $1::date), 0)
       ), 0) AS occupied_bed_nights,
       r.capacity * ($2::date - $1::date) AS total_bed_nights
FROM rooms r
LEFT JOIN beds b ON b.room_id = r.id
LEFT JOIN reservation_items ri ON ri.bed_id = b.id
    AND ri.checkin < $2
    AND ri.checkout > $1
    AND EXISTS (
        SELECT 1 FROM reservations res
        WHERE res.id = ri.reservation_id
          AND res.status IN ('pendente', 'confirmada', 'checkout')
    )
WHERE r.active
GROUP BY r.id
ORDER BY r.name`

type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(dbtx db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: dbtx}
}

var _ queries.OccupancyViewRepo = (*OccupancyReadStore)(nil)

func (o *OccupancyReadStore) OccupancyByRoom(ctx context.Context, from, to time.Time) ([]*queries.RoomOccupancy, error) {
	rows, err := o.db.Query(ctx, occupancySQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupancy", err)
	}
	defer rows.Close()

	var result []*queries.RoomOccupancy
	for rows.Next() {
		var row queries.RoomOccupancy
		if err := rows.Scan(&row.RoomID, &row.RoomName, &row.Capacity, &row.OccupiedBedNights, &row.TotalBedNights); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		if row.TotalBedNights > 0 {
			row.OccupancyRate = float64(row.OccupiedBedNights) / float64(row.TotalBedNights)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancy rows", err)
	}
	return result, nil
}
