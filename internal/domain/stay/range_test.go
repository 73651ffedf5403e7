//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hostel-booking/internal/domain/stay"

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

func TestNewStayRange(t *testing.T) {
	today := date("2024-12-01")

	tests := []struct {
		name     string
		checkin  string
		checkout string
		errIs    error
	}{
		{name: "valid future range", checkin: "2024-12-10", checkout: "2024-12-15"},
		{name: "checkin today is allowed", checkin: "2024-12-01", checkout: "2024-12-02"},
		{name: "checkin before today", checkin: "2024-11-30", checkout: "2024-12-15", errIs: stay.ErrPastStartDate},
		{name: "checkin equals checkout", checkin: "2024-12-10", checkout: "2024-12-10", errIs: stay.ErrStartNotBeforeEnd},
		{name: "checkin after checkout", checkin: "2024-12-15", checkout: "2024-12-10", errIs: stay.ErrStartNotBeforeEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := stay.NewStayRange(date(tt.checkin), date(tt.checkout), today)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date(tt.checkin), r.Checkin())
			assert.Equal(t, date(tt.checkout), r.Checkout())
		})
	}

	t.Run("time of day is truncated before the past check", func(t *testing.T) {
		now := time.Date(2024, 12, 1, 23, 45, 0, 0, time.UTC)
		_, err := stay.NewStayRange(date("2024-12-01"), date("2024-12-02"), now)
		assert.NoError(t, err)
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "fully contained", a: [2]string{"2024-12-10", "2024-12-15"}, b: [2]string{"2024-12-05", "2024-12-20"}, want: true},
		{name: "disjoint before", a: [2]string{"2024-12-05", "2024-12-08"}, b: [2]string{"2024-12-10", "2024-12-15"}, want: false},
		{name: "touching boundary, exclusive end", a: [2]string{"2024-12-10", "2024-12-15"}, b: [2]string{"2024-12-05", "2024-12-10"}, want: false},
		{name: "touching boundary, other side", a: [2]string{"2024-12-05", "2024-12-10"}, b: [2]string{"2024-12-10", "2024-12-15"}, want: false},
		{name: "partial overlap", a: [2]string{"2024-12-08", "2024-12-12"}, b: [2]string{"2024-12-10", "2024-12-15"}, want: true},
		{name: "identical ranges", a: [2]string{"2024-12-10", "2024-12-15"}, b: [2]string{"2024-12-10", "2024-12-15"}, want: true},
		{name: "single shared night", a: [2]string{"2024-12-09", "2024-12-11"}, b: [2]string{"2024-12-10", "2024-12-12"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a[0], tt.a[1])
			b := mustRange(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestStayRangeNights(t *testing.T) {
	assert.Equal(t, 1, mustRange(t, "2024-12-10", "2024-12-11").Nights())
	assert.Equal(t, 30, mustRange(t, "2024-12-01", "2024-12-31").Nights())
	assert.Equal(t, 5, mustRange(t, "2024-12-10", "2024-12-15").Nights())
}

func TestStayRangeDaysUntilCheckin(t *testing.T) {
	r := mustRange(t, "2024-12-10", "2024-12-15")

	assert.Equal(t, 9, r.DaysUntilCheckin(date("2024-12-01")))
	assert.Equal(t, 0, r.DaysUntilCheckin(date("2024-12-10")))
	assert.Equal(t, -2, r.DaysUntilCheckin(date("2024-12-12")))
}

func TestStayRangeString(t *testing.T) {
	r := mustRange(t, "2024-12-10", "2024-12-15")
	assert.Equal(t, "[2024-12-10,2024-12-15)", r.String())
}
