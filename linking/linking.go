package linking

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/psymetrics/irt"
)

// Sentinel errors for coefficient computation and moment retrieval.
var (
	// ErrZeroDispersion indicates a mean/sigma computation with no spread in
	// the new-form locations; the slope would be undefined.
	ErrZeroDispersion = errors.New("linking: new-form dispersion is zero")

	// ErrZeroDiscrimination indicates a mean/mean computation with a zero
	// old-form discrimination mean; the slope would be undefined.
	ErrZeroDiscrimination = errors.New("linking: old-form discrimination mean is zero")

	// ErrNoObservations indicates moments requested before any Increment.
	ErrNoObservations = errors.New("linking: no observations accumulated")
)

// Moments accumulates observed values one at a time and reports their mean
// and sample standard deviation on demand. It implements irt.Accumulator
// and is the concrete collector items feed during IncrementMeanSigma /
// IncrementMeanMean sweeps over an item pool.
type Moments struct {
	xs []float64
}

var _ irt.Accumulator = (*Moments)(nil)

// NewMoments returns an empty accumulator.
func NewMoments() *Moments {
	return &Moments{}
}

// Increment adds one observed value.
func (m *Moments) Increment(x float64) {
	m.xs = append(m.xs, x)
}

// Count returns the number of accumulated values.
func (m *Moments) Count() int { return len(m.xs) }

// Mean returns the arithmetic mean of the accumulated values.
func (m *Moments) Mean() (float64, error) {
	if len(m.xs) == 0 {
		return 0, ErrNoObservations
	}
	return stat.Mean(m.xs, nil), nil
}

// StdDev returns the sample standard deviation of the accumulated values.
func (m *Moments) StdDev() (float64, error) {
	if len(m.xs) == 0 {
		return 0, ErrNoObservations
	}
	return stat.StdDev(m.xs, nil), nil
}

// Coefficients is a linear parameter-scale transformation. Applying it to a
// new-form item maps the item onto the old form's scale (see gpcm.Scale and
// the TStar/TSharp probability transforms).
type Coefficients struct {
	Intercept float64
	Slope     float64
}

// Identity returns the transformation that leaves every parameter unchanged.
func Identity() Coefficients {
	return Coefficients{Intercept: 0, Slope: 1}
}

// MeanSigma computes coefficients by the mean/sigma method: the slope is the
// ratio of old-form to new-form location spread, the intercept aligns the
// location means after scaling.
func MeanSigma(newMean, newSD, oldMean, oldSD float64) (Coefficients, error) {
	if newSD == 0 {
		return Coefficients{}, ErrZeroDispersion
	}
	slope := oldSD / newSD
	return Coefficients{
		Intercept: oldMean - slope*newMean,
		Slope:     slope,
	}, nil
}

// MeanMean computes coefficients by the mean/mean method: the slope is the
// ratio of new-form to old-form discrimination means (discriminations scale
// inversely), the intercept aligns the location means after scaling.
func MeanMean(newAMean, oldAMean, newBMean, oldBMean float64) (Coefficients, error) {
	if oldAMean == 0 {
		return Coefficients{}, ErrZeroDiscrimination
	}
	slope := newAMean / oldAMean
	return Coefficients{
		Intercept: oldBMean - slope*newBMean,
		Slope:     slope,
	}, nil
}
