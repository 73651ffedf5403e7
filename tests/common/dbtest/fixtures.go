//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixture helpers insert rows directly so tests can arrange state
// without going through the HTTP surface.

type RoomFixture struct {
	ID             uuid.UUID
	Name           string
	Capacity       int
	BasePriceCents int64
	BedIDs         []uuid.UUID
}

func CreateRoom(t *testing.T, db DBLike, name string, capacity int, basePriceCents int64) *RoomFixture {
	t.Helper()
	ctx := context.Background()

	var roomID uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO rooms (name, capacity, base_price_cents) VALUES ($1, $2, $3) RETURNING id`,
		name, capacity, basePriceCents,
	).Scan(&roomID)
	require.NoError(t, err)

	bedIDs := make([]uuid.UUID, 0, capacity)
	for pos := 1; pos <= capacity; pos++ {
		var bedID uuid.UUID
		err := db.QueryRow(ctx,
			`INSERT INTO beds (room_id, bed_type, position) VALUES ($1, 'single', $2) RETURNING id`,
			roomID, pos,
		).Scan(&bedID)
		require.NoError(t, err)
		bedIDs = append(bedIDs, bedID)
	}

	return &RoomFixture{
		ID:             roomID,
		Name:           name,
		Capacity:       capacity,
		BasePriceCents: basePriceCents,
		BedIDs:         bedIDs,
	}
}

func CreatePackage(t *testing.T, db DBLike, roomID uuid.UUID, name string, checkin, checkout time.Time, totalPriceCents int64, closeWholeRoom bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO room_packages (room_id, name, checkin, checkout, total_price_cents, close_whole_room)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		roomID, name, checkin, checkout, totalPriceCents, closeWholeRoom,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func DefaultPolicyID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`SELECT id FROM cancellation_policies WHERE name = 'padrao'`,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateReservation inserts a reservation with one item per bed, bypassing
// the commit flow. Useful for arranging cancellation and review scenarios.
func CreateReservation(t *testing.T, db DBLike, userID uuid.UUID, status string, bedIDs []uuid.UUID, checkin, checkout time.Time, pricePerBedCents int64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	reservationID := uuid.New()
	code := "HB-TEST-" + reservationID.String()[:8]
	total := pricePerBedCents * int64(len(bedIDs))
	policyID := DefaultPolicyID(t, db)

	_, err := db.Exec(ctx,
		`INSERT INTO reservations (id, user_id, code, status, total_cents, policy_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reservationID, userID, code, status, total, policyID,
	)
	require.NoError(t, err)

	for _, bedID := range bedIDs {
		_, err := db.Exec(ctx,
			`INSERT INTO reservation_items (id, reservation_id, bed_id, checkin, checkout, price_cents)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), reservationID, bedID, checkin, checkout, pricePerBedCents,
		)
		require.NoError(t, err)
	}

	return reservationID
}

// CreateCartHold places a hold directly, bypassing the availability
// check. Lets tests stage the race where two carts hold the same bed.
func CreateCartHold(t *testing.T, db DBLike, userID, bedID uuid.UUID, checkin, checkout time.Time) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO cart_items (id, user_id, bed_id, checkin, checkout)
		 VALUES ($1, $2, $3, $4, $5)`,
		itemID, userID, bedID, checkin, checkout,
	)
	require.NoError(t, err)
	return itemID
}

func CleanupAll(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`TRUNCATE reviews, reservation_items, reservations, cart_items, room_packages, beds, rooms CASCADE`,
	)
	require.NoError(t, err)
}
