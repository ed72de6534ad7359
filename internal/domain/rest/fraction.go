package rest

import (
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Fraction is the configured share of a pool restored by a long rest
type Fraction string

const (
	FractionNone    Fraction = "none"
	FractionQuarter Fraction = "quarter"
	FractionHalf    Fraction = "half"
	FractionFull    Fraction = "full"
)

// Multiplier maps a fraction to the number the rules multiply by.
// Anything outside the four levels is a configuration error; there is no default.
func Multiplier(f Fraction) (float64, error) {
	switch f {
	case FractionNone:
		return 0, nil
	case FractionQuarter:
		return 0.25, nil
	case FractionHalf:
		return 0.5, nil
	case FractionFull:
		return 1.0, nil
	}

	return 0, dnderr.InvalidConfigurationf("unable to parse recovery multiplier setting, got %q", string(f)).
		WithMeta("fraction", string(f))
}

// Rounding decides how a fractional hit dice count becomes whole dice
type Rounding string

const (
	RoundingDown Rounding = "down"
	RoundingUp   Rounding = "up"
)

func (r Rounding) valid() bool {
	return r == RoundingDown || r == RoundingUp
}
