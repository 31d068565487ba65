package gpcm

import "github.com/katalvlaran/psymetrics/irt"

// AddDiscriminationPrior registers the prior consulted for the
// discrimination parameter during penalized estimation. At most one prior
// is held; registering again replaces it.
func (m *Model) AddDiscriminationPrior(prior irt.Prior) {
	m.discriminationPrior = prior
}

// AddStepPriorAt registers the prior for step k. At most one prior is held
// per step; registering again replaces it.
func (m *Model) AddStepPriorAt(prior irt.Prior, k int) error {
	if k < 0 || k >= m.ncat {
		return ErrStepIndex
	}
	m.stepPrior[k] = prior
	return nil
}

// AddPriorsToLogLikelihoodGradient adjusts a log-likelihood gradient in
// place for every registered prior, subtracting the prior's log-density
// first derivative at the corresponding entry of iparam (the MAP-penalized
// gradient). Both slices follow the flattened [a, step...] layout. The
// adjusted slice is returned for chaining.
func (m *Model) AddPriorsToLogLikelihoodGradient(loglikegrad, iparam []float64) []float64 {
	ncat := len(iparam) - 1

	if m.discriminationPrior != nil {
		loglikegrad[0] -= m.discriminationPrior.LogDensityDeriv1(iparam[0])
	}
	for k := 0; k < ncat; k++ {
		if m.stepPrior[k] != nil {
			loglikegrad[k+1] -= m.stepPrior[k].LogDensityDeriv1(iparam[k+1])
		}
	}
	return loglikegrad
}

// AddPriorsToLogLikelihood returns ll unchanged. Prior penalties enter the
// optimization through the gradient only (AddPriorsToLogLikelihoodGradient);
// keep both call sites paired so a future penalized objective slots in here.
func (m *Model) AddPriorsToLogLikelihood(ll float64, iparam []float64) float64 {
	return ll
}
