package stay

import "errors"

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money holds an amount in integer cents. Full precision is kept
// internally; formatting to two decimals happens at the presentation edge.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// SplitEvenly divides the amount into n shares. The remainder cents go to
// the first shares so the shares always sum back to the original amount.
func (m Money) SplitEvenly(n int) []Money {
	if n <= 0 {
		return nil
	}
	base := m.cents / int64(n)
	remainder := m.cents % int64(n)

	shares := make([]Money, n)
	for i := range shares {
		shares[i] = Money{cents: base}
		if int64(i) < remainder {
			shares[i].cents++
		}
	}
	return shares
}

// TotalPrice is the stay price for a nightly rate over a number of nights.
func TotalPrice(nightly Money, nights int) Money {
	return nightly.MultiplyNights(nights)
}

// PercentOf computes a percentage of the amount, rounding down to the cent.
func (m Money) PercentOf(percent int) Money {
	return Money{cents: m.cents * int64(percent) / 100}
}
