//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hostel-booking/internal/domain/reservation"
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

func defaultPolicy(t *testing.T) *reservation.CancellationPolicy {
	t.Helper()
	p, err := reservation.NewCancellationPolicy(uuid.New(), "padrao", []reservation.FeeBracket{
		{DaysBefore: 2, FeePercent: 50},
		{DaysBefore: 7, FeePercent: 20},
	})
	require.NoError(t, err)
	return p
}

func lineItems(t *testing.T, n int) []reservation.LineItem {
	t.Helper()
	items := make([]reservation.LineItem, n)
	for i := range items {
		items[i] = reservation.NewLineItem(uuid.New(), mustRange(t, "2024-12-10", "2024-12-15"), stay.NewMoney(25000), nil)
	}
	return items
}

func TestNewReservation(t *testing.T) {
	t.Run("sums line item prices and starts pendente", func(t *testing.T) {
		res, err := reservation.NewReservation(uuid.New(), lineItems(t, 3), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPendente, res.Status())
		assert.Equal(t, int64(75000), res.Total().Cents())
		assert.True(t, reservation.IsValidCode(res.Code()))
	})

	t.Run("empty items rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), nil, uuid.New())
		assert.ErrorIs(t, err, reservation.ErrNoItems)
	})

	t.Run("missing policy rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), lineItems(t, 1), uuid.Nil)
		assert.ErrorIs(t, err, reservation.ErrMissingPolicy)
	})
}

func TestReservationCancel(t *testing.T) {
	policy := defaultPolicy(t)

	build := func(t *testing.T, status reservation.Status) *reservation.Reservation {
		return reservation.ReconstructReservation(
			uuid.New(), uuid.New(), "HB-ABCD2345", status,
			lineItems(t, 1), stay.NewMoney(25000), policy.ID(),
			time.Now(), time.Now(),
		)
	}

	t.Run("pendente cancels with bracket fee", func(t *testing.T) {
		res := build(t, reservation.StatusPendente)

		// One day before checkin: inside the 50% bracket.
		fee, err := res.Cancel(policy, date("2024-12-09"))
		require.NoError(t, err)
		assert.Equal(t, int64(12500), fee.Cents())
		assert.Equal(t, reservation.StatusCancelada, res.Status())
	})

	t.Run("confirmada cancels free outside every bracket", func(t *testing.T) {
		res := build(t, reservation.StatusConfirmada)

		fee, err := res.Cancel(policy, date("2024-11-01"))
		require.NoError(t, err)
		assert.Equal(t, int64(0), fee.Cents())
	})

	t.Run("cancelada cannot cancel again", func(t *testing.T) {
		res := build(t, reservation.StatusCancelada)
		_, err := res.Cancel(policy, date("2024-12-01"))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("checkout cannot cancel", func(t *testing.T) {
		res := build(t, reservation.StatusCheckout)
		_, err := res.Cancel(policy, date("2024-12-01"))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestStatusTransitions(t *testing.T) {
	res, err := reservation.NewReservation(uuid.New(), lineItems(t, 1), uuid.New())
	require.NoError(t, err)

	require.NoError(t, res.Confirm())
	assert.Equal(t, reservation.StatusConfirmada, res.Status())
	assert.ErrorIs(t, res.Confirm(), reservation.ErrInvalidStatus)

	require.NoError(t, res.CompleteCheckout())
	assert.Equal(t, reservation.StatusCheckout, res.Status())
	assert.True(t, res.Status().Reviewable())
	assert.False(t, res.Status().Holds())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, reservation.StatusPendente.Holds())
	assert.True(t, reservation.StatusConfirmada.Holds())
	assert.False(t, reservation.StatusCancelada.Holds())
	assert.False(t, reservation.StatusCheckout.Holds())

	assert.False(t, reservation.Status("whatever").IsValid())
	assert.True(t, reservation.StatusCheckout.IsValid())
}

func TestCancellationPolicyFeeFor(t *testing.T) {
	policy := defaultPolicy(t)
	total := stay.NewMoney(100000)

	tests := []struct {
		name string
		days int
		want int64
	}{
		{name: "inside tightest bracket", days: 1, want: 50000},
		{name: "bracket boundary inclusive", days: 2, want: 50000},
		{name: "middle bracket", days: 5, want: 20000},
		{name: "outside every bracket", days: 10, want: 0},
		{name: "after checkin still charges tightest bracket", days: -1, want: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.FeeFor(total, tt.days).Cents())
		})
	}
}

func TestNewCancellationPolicyValidation(t *testing.T) {
	_, err := reservation.NewCancellationPolicy(uuid.New(), "vazia", nil)
	assert.ErrorIs(t, err, reservation.ErrEmptyPolicy)

	_, err = reservation.NewCancellationPolicy(uuid.New(), "ruim", []reservation.FeeBracket{{DaysBefore: 2, FeePercent: 101}})
	assert.ErrorIs(t, err, reservation.ErrInvalidFeePercent)

	_, err = reservation.NewCancellationPolicy(uuid.New(), "ruim", []reservation.FeeBracket{{DaysBefore: -1, FeePercent: 10}})
	assert.ErrorIs(t, err, reservation.ErrNegativeBracketDays)
}

func TestNewCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		code, err := reservation.NewCode()
		require.NoError(t, err)
		assert.True(t, reservation.IsValidCode(code), "unexpected code format: %s", code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45, "codes should be effectively unique")
}
