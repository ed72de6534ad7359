package rest_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		fraction rest.Fraction
		want     float64
	}{
		{name: "none", fraction: rest.FractionNone, want: 0},
		{name: "quarter", fraction: rest.FractionQuarter, want: 0.25},
		{name: "half", fraction: rest.FractionHalf, want: 0.5},
		{name: "full", fraction: rest.FractionFull, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rest.Multiplier(tt.fraction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiplier_InvalidConfiguration(t *testing.T) {
	for _, value := range []rest.Fraction{"", "third", "Full", "1.0"} {
		t.Run(string(value), func(t *testing.T) {
			got, err := rest.Multiplier(value)
			require.Error(t, err)
			assert.True(t, dnderr.IsInvalidConfiguration(err))
			assert.Zero(t, got)
		})
	}
}
