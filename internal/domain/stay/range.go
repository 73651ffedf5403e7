package stay

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPastStartDate     = errors.New("start date cannot be in the past")
	ErrStartNotBeforeEnd = errors.New("start date must be before end date")
)

// StayRange is a half-open date interval [checkin, checkout).
// A checkout on day D and a checkin on day D do not conflict.
type StayRange struct {
	checkin  time.Time
	checkout time.Time
}

// NewStayRange validates a candidate range against today. Both dates are
// truncated to midnight UTC before comparison, so a booking made at 23:00
// for the same calendar day is still accepted.
func NewStayRange(checkin, checkout, today time.Time) (StayRange, error) {
	checkin = TruncateToDate(checkin)
	checkout = TruncateToDate(checkout)

	if !checkin.Before(checkout) {
		return StayRange{}, ErrStartNotBeforeEnd
	}
	if checkin.Before(TruncateToDate(today)) {
		return StayRange{}, ErrPastStartDate
	}

	return StayRange{checkin: checkin, checkout: checkout}, nil
}

// ReconstructStayRange rebuilds a range from storage without the
// today-check; persisted reservations legitimately start in the past.
func ReconstructStayRange(checkin, checkout time.Time) StayRange {
	return StayRange{
		checkin:  TruncateToDate(checkin),
		checkout: TruncateToDate(checkout),
	}
}

func (r StayRange) Checkin() time.Time  { return r.checkin }
func (r StayRange) Checkout() time.Time { return r.checkout }

// Overlaps reports whether the two ranges share at least one night.
// Exclusive-end semantics: touching boundaries do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return !(r.checkout.Compare(other.checkin) <= 0 || r.checkin.Compare(other.checkout) >= 0)
}

// Nights is the number of whole nights between checkin and checkout.
func (r StayRange) Nights() int {
	return int(r.checkout.Sub(r.checkin).Hours() / 24)
}

func (r StayRange) Equal(other StayRange) bool {
	return r.checkin.Equal(other.checkin) && r.checkout.Equal(other.checkout)
}

func (r StayRange) IsZero() bool {
	return r.checkin.IsZero() && r.checkout.IsZero()
}

// DaysUntilCheckin is the number of whole days from now until checkin,
// negative once the stay has started. Used by cancellation fee brackets.
func (r StayRange) DaysUntilCheckin(now time.Time) int {
	return int(r.checkin.Sub(TruncateToDate(now)).Hours() / 24)
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkin.Format(DateFormat), r.checkout.Format(DateFormat))
}

const DateFormat = "2006-01-02"

func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
