//go:build unit

package cart_test

import (
	"testing"
	"time"

	"hostel-booking/internal/domain/cart"
	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(stay.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, checkin, checkout string) stay.StayRange {
	t.Helper()
	r, err := stay.NewStayRange(date(checkin), date(checkout), date("2024-01-01"))
	require.NoError(t, err)
	return r
}

func TestNewItem(t *testing.T) {
	r := mustRange(t, "2024-12-10", "2024-12-15")

	t.Run("valid item", func(t *testing.T) {
		item, err := cart.NewItem(uuid.New(), uuid.New(), r)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, item.ID())
		assert.False(t, item.IsPackageShare())
		assert.Nil(t, item.FixedPrice())
	})

	t.Run("missing bed", func(t *testing.T) {
		_, err := cart.NewItem(uuid.New(), uuid.Nil, r)
		assert.ErrorIs(t, err, cart.ErrMissingBed)
	})
}

func TestItemPrice(t *testing.T) {
	r := mustRange(t, "2024-12-10", "2024-12-15") // 5 nights
	nightly := stay.NewMoney(5000)

	t.Run("individual bed uses nightly rate", func(t *testing.T) {
		item, err := cart.NewItem(uuid.New(), uuid.New(), r)
		require.NoError(t, err)
		assert.Equal(t, int64(25000), item.Price(nightly).Cents())
	})

	t.Run("package share uses the fixed price", func(t *testing.T) {
		share := stay.NewMoney(33334)
		item, err := cart.NewPackageItem(uuid.New(), uuid.New(), uuid.New(), r, share)
		require.NoError(t, err)
		assert.True(t, item.IsPackageShare())
		assert.Equal(t, share, item.Price(nightly))
	})
}

func TestItemConflictsWith(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	bed := uuid.New()

	a, err := cart.NewItem(userA, bed, mustRange(t, "2024-12-10", "2024-12-15"))
	require.NoError(t, err)

	t.Run("same bed overlapping range conflicts regardless of user", func(t *testing.T) {
		b, err := cart.NewItem(userB, bed, mustRange(t, "2024-12-12", "2024-12-18"))
		require.NoError(t, err)
		assert.True(t, a.ConflictsWith(b))
		assert.True(t, b.ConflictsWith(a))
	})

	t.Run("touching boundary does not conflict", func(t *testing.T) {
		b, err := cart.NewItem(userB, bed, mustRange(t, "2024-12-15", "2024-12-18"))
		require.NoError(t, err)
		assert.False(t, a.ConflictsWith(b))
	})

	t.Run("different bed never conflicts", func(t *testing.T) {
		b, err := cart.NewItem(userB, uuid.New(), mustRange(t, "2024-12-10", "2024-12-15"))
		require.NoError(t, err)
		assert.False(t, a.ConflictsWith(b))
	})
}

func TestItemIsDuplicateOf(t *testing.T) {
	user := uuid.New()
	bed := uuid.New()
	r := mustRange(t, "2024-12-10", "2024-12-15")

	a, err := cart.NewItem(user, bed, r)
	require.NoError(t, err)

	same, err := cart.NewItem(user, bed, r)
	require.NoError(t, err)
	assert.True(t, a.IsDuplicateOf(same))

	otherUser, err := cart.NewItem(uuid.New(), bed, r)
	require.NoError(t, err)
	assert.False(t, a.IsDuplicateOf(otherUser))

	otherRange, err := cart.NewItem(user, bed, mustRange(t, "2024-12-10", "2024-12-16"))
	require.NoError(t, err)
	assert.False(t, a.IsDuplicateOf(otherRange))
}
