package gpcm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GradientVec computes ∂P(theta, category)/∂param for every model parameter
// using the parameters passed in iparam, NOT those stored in the model. The
// result follows the flattened layout: index 0 is the discrimination
// component, index j+1 the component for step j; length ncat+1.
//
// Let f_k be the (shifted) category weights and g their sum. With
// dif_k = (k+1)·theta - Σ_{j<=k} step_j, the per-category numerator
// derivatives are
//
//	da_k = f_k · D · dif_k      (w.r.t. discrimination)
//	db_k = -D · a · f_k         (shared magnitude w.r.t. any step)
//
// and each gradient component is a quotient rule over g². Step components
// are assembled scanning k from ncat-1 down to 0 while accumulating the
// running sum of db — an O(ncat) replacement for the O(ncat²) double sum.
// A numerator depends on step i only when i <= k, hence the pd gate below;
// the scan direction is what keeps the running sum aligned with that gate.
func (m *Model) GradientVec(theta float64, iparam []float64, category int, d float64) []float64 {
	nPar := len(iparam)
	ncat := nPar - 1
	a := iparam[0]

	grad := make([]float64, nPar)

	// Shifted exponents: dif first, Z = D·a·dif, then shift by the max.
	dif := make([]float64, ncat)
	z := make([]float64, ncat)
	bsum := 0.0
	for kk := 0; kk < ncat; kk++ {
		bsum += iparam[kk+1]
		dif[kk] = float64(kk+1)*theta - bsum
		z[kk] = d * a * dif[kk]
	}
	shift := floats.Max(z)

	fk := make([]float64, ncat)
	da := make([]float64, ncat)
	db := make([]float64, ncat)
	g := 0.0
	for kk := 0; kk < ncat; kk++ {
		fk[kk] = math.Exp(z[kk] - shift)
		g += fk[kk]
		da[kk] = fk[kk] * d * dif[kk]
		db[kk] = -d * a * fk[kk]
	}
	g2 := g * g

	// Discrimination component.
	grad[0] = (g*da[category] - floats.Sum(da)*fk[category]) / g2

	// Step components, backward accumulation.
	gPrimeBkSum := 0.0
	for i := ncat - 1; i > -1; i-- {
		gPrimeBkSum += db[i]
		pd := 0.0
		if i <= category {
			pd = db[category]
		}
		grad[i+1] = (g*pd - gPrimeBkSum*fk[category]) / g2
	}

	return grad
}

// Gradient computes ∂P(theta, category)/∂param using the parameters stored
// in the model. It is the stored-state entry point onto GradientVec.
func (m *Model) Gradient(theta float64, category int) []float64 {
	return m.GradientVec(theta, m.ParameterVector(), category, m.d)
}
