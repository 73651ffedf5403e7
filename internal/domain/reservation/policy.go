package reservation

import (
	"errors"
	"sort"

	"hostel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrEmptyPolicy         = errors.New("cancellation policy needs at least one bracket")
	ErrInvalidFeePercent   = errors.New("fee percent must be between 0 and 100")
	ErrNegativeBracketDays = errors.New("bracket days cannot be negative")
)

// FeeBracket charges FeePercent of the reservation total when the
// cancellation happens DaysBefore days or fewer before checkin.
type FeeBracket struct {
	DaysBefore int `json:"days_before"`
	FeePercent int `json:"fee_percent"`
}

// CancellationPolicy is a fee schedule keyed on days-before-checkin.
// Brackets are evaluated from the tightest window outward.
type CancellationPolicy struct {
	id       uuid.UUID
	name     string
	brackets []FeeBracket
}

func NewCancellationPolicy(id uuid.UUID, name string, brackets []FeeBracket) (*CancellationPolicy, error) {
	if len(brackets) == 0 {
		return nil, ErrEmptyPolicy
	}
	for _, b := range brackets {
		if b.FeePercent < 0 || b.FeePercent > 100 {
			return nil, ErrInvalidFeePercent
		}
		if b.DaysBefore < 0 {
			return nil, ErrNegativeBracketDays
		}
	}

	sorted := make([]FeeBracket, len(brackets))
	copy(sorted, brackets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DaysBefore < sorted[j].DaysBefore })

	return &CancellationPolicy{id: id, name: name, brackets: sorted}, nil
}

func (p *CancellationPolicy) ID() uuid.UUID          { return p.id }
func (p *CancellationPolicy) Name() string           { return p.name }
func (p *CancellationPolicy) Brackets() []FeeBracket { return p.brackets }

// FeeFor returns the cancellation fee for a reservation total when the
// guest cancels daysBeforeCheckin days ahead. A cancellation inside the
// tightest bracket (including after checkin) pays that bracket's fee;
// outside every bracket the cancellation is free.
func (p *CancellationPolicy) FeeFor(total stay.Money, daysBeforeCheckin int) stay.Money {
	for _, b := range p.brackets {
		if daysBeforeCheckin <= b.DaysBefore {
			return total.PercentOf(b.FeePercent)
		}
	}
	return stay.NewMoney(0)
}
