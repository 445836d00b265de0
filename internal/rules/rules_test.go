package rules

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thresholds(f, a, e, s, d float64) map[string]any {
	return map[string]any{
		"faveur": f, "avantage": a, "efficace": e, "surpuissance": s, "domination": d,
	}
}

func TestThresholdValidator(t *testing.T) {
	v, err := NewThresholdValidator()
	require.NoError(t, err)

	t.Run("ascending set", func(t *testing.T) {
		assert.NoError(t, v.Validate(thresholds(0.5, 1, 2, 4, 8)))
	})

	t.Run("equal neighbours", func(t *testing.T) {
		err := v.Validate(thresholds(0.5, 1, 1, 4, 8))
		var viol *Violation
		require.True(t, errors.As(err, &viol))
		assert.Equal(t, "avantage_efficace", viol.Check)
	})

	t.Run("descending tail", func(t *testing.T) {
		err := v.Validate(thresholds(0.5, 1, 2, 9, 8))
		var viol *Violation
		require.True(t, errors.As(err, &viol))
		assert.Equal(t, "surpuissance_domination", viol.Check)
	})

	t.Run("NaN", func(t *testing.T) {
		assert.Error(t, v.Validate(thresholds(math.NaN(), 1, 2, 4, 8)))
	})
}

func TestNewValidatorRejectsBadFormulas(t *testing.T) {
	_, err := NewValidator([]string{"x"}, []Check{{Name: "typo", Formula: "x <"}})
	assert.Error(t, err)

	_, err = NewValidator([]string{"x"}, []Check{{Name: "not_bool", Formula: "x + 1.0"}})
	assert.Error(t, err)
}

func TestValidateMissingVariable(t *testing.T) {
	v, err := NewValidator([]string{"x", "y"}, []Check{{Name: "lt", Formula: "x < y"}})
	require.NoError(t, err)
	assert.Error(t, v.Validate(map[string]any{"x": 1.0}))
}
