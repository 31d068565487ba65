package gpcm

// DerivTheta returns the derivative of the expected score with respect to
// ability, using the parameters stored in the model. The denominator
// derivative uses the theta-independent coefficient (k+1)·a per category,
// matching the ICL/jMetrik convention for this model.
func (m *Model) DerivTheta(theta float64) float64 {
	w, denom := categoryWeights(theta, m.ParameterVector(), m.d)
	denom2 := denom * denom

	denomDeriv := 0.0
	for k, wk := range w {
		denomDeriv += wk * float64(1+k) * m.discrimination
	}

	deriv := 0.0
	for k, wk := range w {
		p1 := (m.d * wk * float64(1+k) * m.discrimination) / denom
		p2 := (wk * denomDeriv) / denom2
		deriv += m.scoreWeight[k] * (p1 - p2)
	}
	return deriv
}

// ItemInformationAt returns the Fisher information of the item at theta:
// the score weights treated as a random variable distributed according to
// the current category probabilities, scaled by D²·a². Larger information
// means more measurement precision at that ability.
func (m *Model) ItemInformationAt(theta float64) float64 {
	w, denom := categoryWeights(theta, m.ParameterVector(), m.d)

	sum1 := 0.0 // E[T²]
	sum2 := 0.0 // E[T]
	for k, wk := range w {
		p := wk / denom
		t := m.scoreWeight[k]
		sum1 += t * t * p
		sum2 += t * p
	}

	a2 := m.discrimination * m.discrimination
	return m.d * m.d * a2 * (sum1 - sum2*sum2)
}
