package gpcm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psymetrics/gpcm"
)

// TestProbability_SumsToOne verifies Σ_k P(theta, k) = 1 across a range of
// abilities and item shapes.
func TestProbability_SumsToOne(t *testing.T) {
	items := []*gpcm.Model{
		newTestItem(t),
		mustNew(t, 0.7, []float64{0, -2, -0.5, 1.3}, gpcm.WithScalingConstant(1.0)),
		mustNew(t, 2.1, []float64{0, 0.4}, gpcm.WithScalingConstant(1.7)),
	}
	for _, item := range items {
		for _, theta := range []float64{-4, -1.5, 0, 0.25, 2, 4} {
			sum := 0.0
			for k := 0; k < item.Ncat(); k++ {
				sum += item.Probability(theta, k)
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "probabilities must normalize at theta=%v", theta)
		}
	}
}

// TestProbability_KnownValues checks the closed-form scenario: ncat=3,
// a=1, steps [0,-1,1], D=1.7, theta=0 gives Z = [0, 1.7, 0], so the
// numerators are [1, e^1.7, 1] over a denominator of 2+e^1.7.
func TestProbability_KnownValues(t *testing.T) {
	item := newTestItem(t)

	e17 := math.Exp(1.7)
	denom := 2 + e17

	assert.InDelta(t, 1/denom, item.Probability(0, 0), 1e-12)
	assert.InDelta(t, e17/denom, item.Probability(0, 1), 1e-12)
	assert.InDelta(t, 1/denom, item.Probability(0, 2), 1e-12)
}

// TestProbabilityVec_MatchesStoredState verifies the two call shapes are
// one formula: the explicit vector built from the item's own state must
// reproduce the stored-state result exactly.
func TestProbabilityVec_MatchesStoredState(t *testing.T) {
	item := mustNew(t, 1.3, []float64{0, -0.8, 0.2, 1.1})
	ip := item.ParameterVector()
	d := item.ScalingConstant()

	for _, theta := range []float64{-3, -0.7, 0, 1.2, 3} {
		for k := 0; k < item.Ncat(); k++ {
			assert.Equal(t, item.Probability(theta, k), item.ProbabilityVec(theta, ip, k, d),
				"stored vs explicit at theta=%v k=%d", theta, k)
		}
	}
}

// TestProbability_ExtremeTheta verifies the shifted-exponential kernel stays
// finite where raw exponentials would overflow.
func TestProbability_ExtremeTheta(t *testing.T) {
	item := newTestItem(t)

	for _, theta := range []float64{-500, 500} {
		sum := 0.0
		for k := 0; k < item.Ncat(); k++ {
			p := item.Probability(theta, k)
			require.False(t, math.IsNaN(p), "probability must not be NaN at theta=%v", theta)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
	assert.InDelta(t, 1.0, item.Probability(500, 2), 1e-9, "highest category dominates at high ability")
	assert.InDelta(t, 1.0, item.Probability(-500, 0), 1e-9, "lowest category dominates at low ability")
}

// TestExpectedValue checks the score-weighted mean against a direct
// computation and its monotone behavior in theta.
func TestExpectedValue(t *testing.T) {
	item := newTestItem(t)

	for _, theta := range []float64{-2, 0, 1.5} {
		want := 0.0
		for k := 0; k < item.Ncat(); k++ {
			want += float64(k) * item.Probability(theta, k)
		}
		assert.InDelta(t, want, item.ExpectedValue(theta), 1e-12, "theta=%v", theta)
	}

	assert.Less(t, item.ExpectedValue(-2), item.ExpectedValue(0))
	assert.Less(t, item.ExpectedValue(0), item.ExpectedValue(2))
}

// mustNew builds an item or fails the test.
func mustNew(t *testing.T, a float64, steps []float64, opts ...gpcm.Option) *gpcm.Model {
	t.Helper()
	item, err := gpcm.New(a, steps, opts...)
	require.NoError(t, err)
	return item
}
