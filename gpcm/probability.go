package gpcm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// categoryWeights is the shared probability kernel. Given the flattened
// parameter vector iparam = [a, step_0, ..., step_{m-1}] it returns the
// unnormalized category weights w_k = exp(Z_k - max_c Z_c) and their sum,
// where Z_k = Σ_{v=0}^{k} D·a·(theta - step_v).
//
// Shifting every exponent by the largest Z keeps the weights in (0, 1] for
// any theta. The shift cancels in every ratio built from the weights —
// probabilities, both gradient quotients, and the expected-score derivative
// — so callers may treat w_k as if it were exp(Z_k).
func categoryWeights(theta float64, iparam []float64, d float64) (w []float64, sum float64) {
	ncat := len(iparam) - 1
	a := iparam[0]

	z := make([]float64, ncat)
	zk := 0.0
	for k := 0; k < ncat; k++ {
		zk += d * a * (theta - iparam[k+1])
		z[k] = zk
	}

	shift := floats.Max(z)
	w = make([]float64, ncat)
	for k := range z {
		w[k] = math.Exp(z[k] - shift)
	}
	return w, floats.Sum(w)
}

// ProbabilityVec computes the probability of responding in category k using
// the item parameters passed in iparam, NOT the parameters stored in the
// model. iparam follows the fixed layout [a, step_0 = 0, step_1, ...,
// step_{m-1}] of length ncat+1; the layout is the caller's contract and is
// not re-validated here.
func (m *Model) ProbabilityVec(theta float64, iparam []float64, category int, d float64) float64 {
	w, sum := categoryWeights(theta, iparam, d)
	return w[category] / sum
}

// Probability computes the probability of responding in category k using
// the parameters stored in the model. It is the stored-state entry point
// onto the same formula as ProbabilityVec.
func (m *Model) Probability(theta float64, category int) float64 {
	return m.ProbabilityVec(theta, m.ParameterVector(), category, m.d)
}

// ExpectedValue returns the score-weighted expected response at theta:
// Σ_k weight_k · P(k | theta).
func (m *Model) ExpectedValue(theta float64) float64 {
	w, sum := categoryWeights(theta, m.ParameterVector(), m.d)
	ev := 0.0
	for k, wk := range w {
		ev += m.scoreWeight[k] * wk / sum
	}
	return ev
}
