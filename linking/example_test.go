package linking_test

import (
	"fmt"

	"github.com/katalvlaran/psymetrics/linking"
)

// ExampleMeanSigma aggregates step parameters from two forms of the same
// items and derives the mean/sigma transformation that maps the new form
// onto the old form's scale.
func ExampleMeanSigma() {
	newSteps, oldSteps := linking.NewMoments(), linking.NewMoments()
	for _, b := range []float64{-1, 0, 1} {
		newSteps.Increment(b)
		oldSteps.Increment(b*2 + 0.5) // the old form sits on a stretched, shifted scale
	}

	newMean, _ := newSteps.Mean()
	newSD, _ := newSteps.StdDev()
	oldMean, _ := oldSteps.Mean()
	oldSD, _ := oldSteps.StdDev()

	c, _ := linking.MeanSigma(newMean, newSD, oldMean, oldSD)
	fmt.Printf("slope %.2f, intercept %.2f\n", c.Slope, c.Intercept)
	// Output: slope 2.00, intercept 0.50
}
