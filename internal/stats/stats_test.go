package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 80.0, want: 80.25},
		{in: 80.25, want: 80.5},
		{in: 80.1, want: 80.25},
		{in: 80.3, want: 80.5},
		{in: 5, want: 5.25},
		{in: 0, want: 0.25},
		{in: 12.74, want: 12.75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUp(tt.in), "RoundUp(%v)", tt.in)
	}
}

func TestRoundUpHasNoFixedPoints(t *testing.T) {
	for i := 100; i <= 20000; i += 7 {
		x := float64(i) / 100
		got := RoundUp(x)
		assert.Greater(t, got, x)
		assert.Zero(t, math.Mod(got, Quarter), "RoundUp(%v) = %v is off the grid", x, got)
	}
}

func TestDeriveKnownValue(t *testing.T) {
	d := Derive(Variance{}, 73, Baseline{Force: 75}, nil)
	assert.Equal(t, 80.25, d.Force)

	// Zero baseline and variance still land on 5 before rounding.
	assert.Equal(t, 5.25, d.Resistance)
	assert.Equal(t, 5.25, d.Speed)
}

func TestDeriveIsPure(t *testing.T) {
	v := Variance{Force: 12, Resistance: 3, Speed: 31, MagicForce: 0, MagicResistance: 18}
	b := Baseline{Force: 60, Resistance: 80, Speed: 45, MagicForce: 30, MagicResistance: 55}
	mod := &Modifier{Force: 4}

	first := Derive(v, 20, b, mod)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Derive(v, 20, b, mod))
	}
}

func TestDeriveUsesForceModifierForEveryAttribute(t *testing.T) {
	v := Variance{}
	b := Baseline{}

	onlyForce := Derive(v, 10, b, &Modifier{Force: 10})
	onlySpeed := Derive(v, 10, b, &Modifier{Speed: 10})
	none := Derive(v, 10, b, nil)

	assert.Equal(t, onlyForce.Force, onlyForce.MagicResistance)
	assert.Equal(t, onlyForce.Force, onlyForce.Speed)
	assert.Greater(t, onlyForce.Speed, none.Speed)
	// A non-force modifier has no effect.
	assert.Equal(t, none, onlySpeed)
}

func TestDeriveAcceptsDegenerateInput(t *testing.T) {
	assert.NotPanics(t, func() {
		d := Derive(Variance{Force: -50}, 0, Baseline{}, nil)
		assert.Less(t, d.Force, 5.0)
	})
	assert.NotPanics(t, func() {
		Derive(Variance{}, -2, Baseline{Force: 10}, nil)
	})
}
