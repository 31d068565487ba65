package linking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psymetrics/gpcm"
	"github.com/katalvlaran/psymetrics/linking"
)

// TestMoments_MeanAndStdDev checks the accumulator against hand-computed
// sample moments.
func TestMoments_MeanAndStdDev(t *testing.T) {
	m := linking.NewMoments()
	for _, x := range []float64{1, 2, 3} {
		m.Increment(x)
	}

	assert.Equal(t, 3, m.Count())

	mean, err := m.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mean, 1e-12)

	sd, err := m.StdDev()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sd, 1e-12, "sample standard deviation of {1,2,3}")
}

// TestMoments_Empty rejects moment queries before any observation.
func TestMoments_Empty(t *testing.T) {
	m := linking.NewMoments()

	_, err := m.Mean()
	assert.ErrorIs(t, err, linking.ErrNoObservations)
	_, err = m.StdDev()
	assert.ErrorIs(t, err, linking.ErrNoObservations)
}

// TestIdentity is the do-nothing transformation.
func TestIdentity(t *testing.T) {
	c := linking.Identity()
	assert.Equal(t, 0.0, c.Intercept)
	assert.Equal(t, 1.0, c.Slope)
}

// TestMeanSigma checks the coefficient formulas and the degenerate-spread
// guard.
func TestMeanSigma(t *testing.T) {
	c, err := linking.MeanSigma(0, 1, 0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c.Slope, 1e-12, "slope = oldSD/newSD")
	assert.InDelta(t, 0.5, c.Intercept, 1e-12, "intercept aligns means")

	c, err = linking.MeanSigma(1.2, 0.8, 1.2, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Slope, 1e-12, "identical moments give the identity")
	assert.InDelta(t, 0.0, c.Intercept, 1e-12)

	_, err = linking.MeanSigma(0, 0, 0, 1)
	assert.ErrorIs(t, err, linking.ErrZeroDispersion)
}

// TestMeanMean checks the coefficient formulas and the zero-mean guard.
func TestMeanMean(t *testing.T) {
	c, err := linking.MeanMean(1.5, 1.0, 0.2, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c.Slope, 1e-12, "slope = newAMean/oldAMean")
	assert.InDelta(t, 0.8-1.5*0.2, c.Intercept, 1e-12)

	_, err = linking.MeanMean(1.5, 0, 0.2, 0.8)
	assert.ErrorIs(t, err, linking.ErrZeroDiscrimination)
}

// TestLinking_EndToEnd runs a miniature linking study: aggregate step
// moments from two forms of the same items, compute mean/sigma
// coefficients, rescale the new form, and verify its steps land on the old
// form's values.
func TestLinking_EndToEnd(t *testing.T) {
	// The old form is the new form rescaled by (intercept 0.4, slope 1.5).
	const intercept, slope = 0.4, 1.5

	newForm := []*gpcm.Model{
		mustItem(t, 1.0, []float64{0, -1, 1}),
		mustItem(t, 0.8, []float64{0, -0.4, 0.6, 1.2}),
	}
	oldForm := []*gpcm.Model{
		mustItem(t, 1.0, []float64{0, -1, 1}),
		mustItem(t, 0.8, []float64{0, -0.4, 0.6, 1.2}),
	}
	for _, item := range oldForm {
		item.Scale(intercept, slope)
	}

	newM, newS := linking.NewMoments(), linking.NewMoments()
	oldM, oldS := linking.NewMoments(), linking.NewMoments()
	for i := range newForm {
		newForm[i].IncrementMeanSigma(newM, newS)
		oldForm[i].IncrementMeanSigma(oldM, oldS)
	}

	nm, err := newM.Mean()
	require.NoError(t, err)
	ns, err := newS.StdDev()
	require.NoError(t, err)
	om, err := oldM.Mean()
	require.NoError(t, err)
	os, err := oldS.StdDev()
	require.NoError(t, err)

	c, err := linking.MeanSigma(nm, ns, om, os)
	require.NoError(t, err)
	assert.InDelta(t, slope, c.Slope, 1e-9)
	assert.InDelta(t, intercept, c.Intercept, 1e-9)

	for i := range newForm {
		newForm[i].Scale(c.Intercept, c.Slope)
		assert.InDelta(t, oldForm[i].Discrimination(), newForm[i].Discrimination(), 1e-9)
		oldSteps := oldForm[i].StepParameters()
		for k, s := range newForm[i].StepParameters() {
			assert.InDelta(t, oldSteps[k], s, 1e-9, "item %d step %d", i, k)
		}
	}
}

// mustItem builds a GPCM item or fails the test.
func mustItem(t *testing.T, a float64, steps []float64) *gpcm.Model {
	t.Helper()
	item, err := gpcm.New(a, steps)
	require.NoError(t, err)
	return item
}
