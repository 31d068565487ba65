package scoring

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// Sentinel errors for grid construction and curve summaries.
var (
	// ErrBadGrid indicates fewer than two grid points or from >= to.
	ErrBadGrid = errors.New("scoring: grid needs at least two points and from < to")

	// ErrEmptyCurve indicates a summary requested for a curve with no points.
	ErrEmptyCurve = errors.New("scoring: curve has no points")
)

// Item is the surface scoring needs from a model: the expected score and
// the Fisher information at an ability value. Every model family in
// psymetrics satisfies it.
type Item interface {
	ExpectedValue(theta float64) float64
	ItemInformationAt(theta float64) float64
}

// Curve is a function of ability sampled on a grid: Value[i] belongs to
// Theta[i].
type Curve struct {
	Theta []float64
	Value []float64
}

// Grid returns n evenly spaced ability values covering [from, to], both
// endpoints included.
func Grid(from, to float64, n int) ([]float64, error) {
	if n < 2 || from >= to {
		return nil, ErrBadGrid
	}
	step := (to - from) / float64(n-1)
	g := make([]float64, n)
	for i := range g {
		g[i] = from + float64(i)*step
	}
	g[n-1] = to // exact endpoint regardless of rounding
	return g, nil
}

// ExpectedScoreCurve samples the item's expected score on the grid — the
// item characteristic curve for a polytomous item.
func ExpectedScoreCurve(it Item, grid []float64) Curve {
	c := Curve{Theta: grid, Value: make([]float64, len(grid))}
	for i, th := range grid {
		c.Value[i] = it.ExpectedValue(th)
	}
	return c
}

// InformationCurve samples the item's Fisher information on the grid.
func InformationCurve(it Item, grid []float64) Curve {
	c := Curve{Theta: grid, Value: make([]float64, len(grid))}
	for i, th := range grid {
		c.Value[i] = it.ItemInformationAt(th)
	}
	return c
}

// TestInformation sums the information curves of a pool of items on a
// shared grid — the test information function.
func TestInformation(items []Item, grid []float64) Curve {
	c := Curve{Theta: grid, Value: make([]float64, len(grid))}
	for _, it := range items {
		for i, th := range grid {
			c.Value[i] += it.ItemInformationAt(th)
		}
	}
	return c
}

// Summary holds descriptive statistics of a sampled curve.
type Summary struct {
	Mean   float64
	Median float64
	Max    float64
}

// Summarize computes descriptive statistics of the curve's values.
func Summarize(c Curve) (Summary, error) {
	if len(c.Value) == 0 {
		return Summary{}, ErrEmptyCurve
	}
	mean, err := stats.Mean(c.Value)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(c.Value)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(c.Value)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, Median: median, Max: max}, nil
}

// PeakTheta returns the grid point at which the curve is largest — for an
// information curve, the ability the item measures best.
func PeakTheta(c Curve) (float64, error) {
	if len(c.Value) == 0 {
		return 0, ErrEmptyCurve
	}
	best := 0
	for i, v := range c.Value {
		if v > c.Value[best] {
			best = i
		}
	}
	return c.Theta[best], nil
}
