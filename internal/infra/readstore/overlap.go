package readstore

import (
	"context"
	"time"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"

	"github.com/google/uuid"
)

// Half-open date ranges [checkin, checkout) overlap when each one
// starts before the other ends. Both holds are counted: committed
// reservations that still occupy the bed and cart items of other
// users.
const overlappingHoldSQL = `
SELECT EXISTS (
    SELECT 1
    FROM reservation_items ri
    JOIN reservations r ON r.id = ri.reservation_id
    WHERE ri.bed_id = ANY($1)
      AND r.status IN ('pendente', 'confirmada')
      AND ri.checkin < $3
      AND ri.checkout > $2
) OR EXISTS (
    SELECT 1
    FROM cart_items ci
    WHERE ci.bed_id = ANY($1)
      AND ci.checkin < $3
      AND ci.checkout > $2
      AND ($4::uuid IS NULL OR ci.user_id <> $4)
)`

func overlappingHoldExists(ctx context.Context, dbtx db.DBTX, bedIDs []uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error) {
	if len(bedIDs) == 0 {
		return false, nil
	}

	var exists bool
	err := dbtx.QueryRow(ctx, overlappingHoldSQL, bedIDs, checkin, checkout, excludeUser).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping holds", err)
	}
	return exists, nil
}
