//go:build unit

package stay_test

import (
	"testing"

	"hostel-booking/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPrice(t *testing.T) {
	nightly := stay.NewMoney(4550) // R$45.50

	assert.Equal(t, int64(4550), stay.TotalPrice(nightly, 1).Cents())
	assert.Equal(t, int64(22750), stay.TotalPrice(nightly, 5).Cents())
	assert.Equal(t, int64(0), stay.TotalPrice(nightly, 0).Cents())

	t.Run("round trip from the same stored values is exact", func(t *testing.T) {
		r := mustRange(t, "2024-12-10", "2024-12-15")
		first := stay.TotalPrice(nightly, r.Nights())
		second := stay.TotalPrice(nightly, r.Nights())
		assert.Equal(t, first, second)
	})
}

func TestMoneySplitEvenly(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		n     int
		want  []int64
	}{
		{name: "exact division", cents: 9000, n: 3, want: []int64{3000, 3000, 3000}},
		{name: "remainder goes to first shares", cents: 10000, n: 3, want: []int64{3334, 3333, 3333}},
		{name: "single share", cents: 1234, n: 1, want: []int64{1234}},
		{name: "more shares than cents", cents: 2, n: 4, want: []int64{1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := stay.NewMoney(tt.cents).SplitEvenly(tt.n)
			require.Len(t, shares, tt.n)

			var sum int64
			got := make([]int64, len(shares))
			for i, s := range shares {
				got[i] = s.Cents()
				sum += s.Cents()
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.cents, sum, "shares must sum back to the total")
		})
	}

	t.Run("non-positive share count yields nil", func(t *testing.T) {
		assert.Nil(t, stay.NewMoney(100).SplitEvenly(0))
	})
}

func TestMoneyPercentOf(t *testing.T) {
	assert.Equal(t, int64(2500), stay.NewMoney(10000).PercentOf(25).Cents())
	assert.Equal(t, int64(0), stay.NewMoney(10000).PercentOf(0).Cents())
	assert.Equal(t, int64(10000), stay.NewMoney(10000).PercentOf(100).Cents())
	// Rounds down to the cent.
	assert.Equal(t, int64(33), stay.NewMoney(101).PercentOf(33).Cents())
}

func TestNewMoneyNonNegative(t *testing.T) {
	_, err := stay.NewMoneyNonNegative(-1)
	assert.ErrorIs(t, err, stay.ErrNegativeMoney)

	m, err := stay.NewMoneyNonNegative(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cents())
}
