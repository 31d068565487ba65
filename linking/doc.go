// Package linking computes the linear transformation coefficients used to
// place two test forms on a common IRT scale, and provides the accumulators
// items feed their parameters into when the required moments are gathered
// across an item pool.
//
// 🚀 How linking works
//
//	Two forms of a test calibrated separately sit on arbitrary scales. A
//	linear map theta* = slope·theta + intercept aligns them; under it a
//	discrimination becomes a/slope and a location becomes b·slope +
//	intercept. The classical moment methods estimate (intercept, slope)
//	from parameter summaries of the items common to both forms:
//
//	  mean/sigma — slope from the ratio of location dispersions,
//	  mean/mean  — slope from the ratio of discrimination means.
//
// Typical flow:
//
//	newB, oldB := linking.NewMoments(), linking.NewMoments()
//	for _, item := range commonItems {
//	    item.New.IncrementMeanSigma(newB, newB)
//	    item.Old.IncrementMeanSigma(oldB, oldB)
//	}
//	newMean, err := newB.Mean()
//	newSD, err := newB.StdDev()
//	oldMean, err := oldB.Mean()
//	oldSD, err := oldB.StdDev()
//	c, err := linking.MeanSigma(newMean, newSD, oldMean, oldSD)
//	...
//	item.Scale(c.Intercept, c.Slope) // rescale the new form in place
//
// Errors:
//
//	ErrZeroDispersion     — mean/sigma with a degenerate new-form spread.
//	ErrZeroDiscrimination — mean/mean with a zero old-form discrimination mean.
//	ErrNoObservations     — moments requested from an empty accumulator.
package linking
