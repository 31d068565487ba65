package gpcm

import "github.com/katalvlaran/psymetrics/irt"

// Scale applies a linear transformation of the item parameters in place:
// the discrimination becomes a/slope, and every step from index 1 on
// becomes step·slope + intercept with its standard error scaled by slope.
// The first step stays fixed at zero.
func (m *Model) Scale(intercept, slope float64) {
	m.discrimination /= slope
	for k := 1; k < m.ncat; k++ {
		m.step[k] = m.step[k]*slope + intercept
		m.stepSE[k] = m.stepSE[k] * slope
	}
}

// tStarVector builds the parameter vector of the backward (new form to old
// form) transformation: a/slope, step·slope + intercept.
func (m *Model) tStarVector(intercept, slope float64) []float64 {
	ip := make([]float64, m.ncat+1)
	ip[0] = m.discrimination / slope
	for i := 1; i < m.ncat; i++ {
		ip[i+1] = m.step[i]*slope + intercept
	}
	return ip
}

// tSharpVector builds the parameter vector of the forward (old form to new
// form) transformation: a·slope, (step - intercept)/slope.
func (m *Model) tSharpVector(intercept, slope float64) []float64 {
	ip := make([]float64, m.ncat+1)
	ip[0] = m.discrimination * slope
	for i := 1; i < m.ncat; i++ {
		ip[i+1] = (m.step[i] - intercept) / slope
	}
	return ip
}

// TStarProbability returns the probability of a response under the backward
// (new form to old form) linear transformation of the item parameters, as
// described in Kim and Kolen. Categories outside the admissible range yield
// probability 0. The transformed vector delegates to the one probability
// code path.
func (m *Model) TStarProbability(theta float64, category int, intercept, slope float64) float64 {
	if category > m.maxCategory || category < m.minCategory {
		return 0
	}
	return m.ProbabilityVec(theta, m.tStarVector(intercept, slope), category, m.d)
}

// TStarExpectedValue returns the expected response under the backward
// (new form to old form) transformation.
func (m *Model) TStarExpectedValue(theta, intercept, slope float64) float64 {
	ev := 0.0
	for i := 0; i < m.ncat; i++ {
		ev += m.scoreWeight[i] * m.TStarProbability(theta, i, intercept, slope)
	}
	return ev
}

// TSharpProbability returns the probability of a response under the forward
// (old form to new form) linear transformation of the item parameters.
// Categories outside the admissible range yield probability 0.
func (m *Model) TSharpProbability(theta float64, category int, intercept, slope float64) float64 {
	if category > m.maxCategory || category < m.minCategory {
		return 0
	}
	return m.ProbabilityVec(theta, m.tSharpVector(intercept, slope), category, m.d)
}

// TSharpExpectedValue returns the expected response under the forward
// (old form to new form) transformation.
func (m *Model) TSharpExpectedValue(theta, intercept, slope float64) float64 {
	ev := 0.0
	for i := 0; i < m.ncat; i++ {
		ev += m.scoreWeight[i] * m.TSharpProbability(theta, i, intercept, slope)
	}
	return ev
}

// IncrementMeanSigma feeds the estimable step parameters into the supplied
// mean and dispersion accumulators, for mean/sigma linking across an item
// pool. The fixed first step is not counted.
func (m *Model) IncrementMeanSigma(mean, sd irt.Accumulator) {
	for i := 1; i < m.ncat; i++ {
		mean.Increment(m.step[i])
		sd.Increment(m.step[i])
	}
}

// IncrementMeanMean feeds the discrimination into the first accumulator and
// the estimable step parameters into the second, for mean/mean linking
// across an item pool. The fixed first step is not counted.
func (m *Model) IncrementMeanMean(meanDiscrimination, meanDifficulty irt.Accumulator) {
	meanDiscrimination.Increment(m.discrimination)
	for i := 1; i < m.ncat; i++ {
		meanDifficulty.Increment(m.step[i])
	}
}
