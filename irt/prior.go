package irt

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadPrior is returned by a prior constructor when a shape or scale
// parameter is outside the distribution's valid range.
var ErrBadPrior = errors.New("irt: invalid prior parameter")

// Prior is a parameter prior consulted during penalized (MAP) estimation.
// The gradient hook of each model consumes only LogDensityDeriv1; LogDensity
// is exposed for drivers that also penalize the objective itself.
//
// Outside a prior's support both operations return the flat extension:
// LogDensity is -Inf and LogDensityDeriv1 is 0, so an out-of-support
// proposal never pulls the gradient toward undefined territory.
type Prior interface {
	// LogDensity returns log f(x).
	LogDensity(x float64) float64

	// LogDensityDeriv1 returns d/dx log f(x).
	LogDensityDeriv1(x float64) float64
}

// NormalPrior is a Gaussian prior N(mean, sd²), the usual choice for step
// (threshold) parameters.
type NormalPrior struct {
	dist distuv.Normal
}

// NewNormalPrior builds a Gaussian prior. sd must be positive.
func NewNormalPrior(mean, sd float64) (*NormalPrior, error) {
	if sd <= 0 {
		return nil, ErrBadPrior
	}
	return &NormalPrior{dist: distuv.Normal{Mu: mean, Sigma: sd}}, nil
}

// LogDensity returns log f(x) of the underlying Gaussian.
func (p *NormalPrior) LogDensity(x float64) float64 {
	return p.dist.LogProb(x)
}

// LogDensityDeriv1 returns -(x-mean)/sd².
func (p *NormalPrior) LogDensityDeriv1(x float64) float64 {
	return -(x - p.dist.Mu) / (p.dist.Sigma * p.dist.Sigma)
}

// LogNormalPrior is a log-normal prior on (0, +inf), the usual choice for
// discrimination parameters since it keeps them positive.
type LogNormalPrior struct {
	dist distuv.LogNormal
}

// NewLogNormalPrior builds a log-normal prior with log-scale location mu and
// log-scale spread sigma. sigma must be positive.
func NewLogNormalPrior(mu, sigma float64) (*LogNormalPrior, error) {
	if sigma <= 0 {
		return nil, ErrBadPrior
	}
	return &LogNormalPrior{dist: distuv.LogNormal{Mu: mu, Sigma: sigma}}, nil
}

// LogDensity returns log f(x), or -Inf for x outside (0, +inf).
func (p *LogNormalPrior) LogDensity(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return p.dist.LogProb(x)
}

// LogDensityDeriv1 returns -(1/x)·(1 + (ln x - mu)/sigma²) for x > 0,
// and 0 elsewhere.
func (p *LogNormalPrior) LogDensityDeriv1(x float64) float64 {
	if x <= 0 {
		return 0
	}
	s2 := p.dist.Sigma * p.dist.Sigma
	return -(1 + (math.Log(x)-p.dist.Mu)/s2) / x
}

// Beta4Prior is a four-parameter Beta prior: a Beta(alpha, beta) density
// rescaled from (0,1) onto the interval (lower, upper). It bounds a
// parameter on both sides, which is how guessing-style parameters are
// traditionally penalized.
type Beta4Prior struct {
	dist         distuv.Beta
	lower, upper float64
}

// NewBeta4Prior builds a four-parameter Beta prior. alpha and beta must be
// positive and lower < upper.
func NewBeta4Prior(alpha, beta, lower, upper float64) (*Beta4Prior, error) {
	if alpha <= 0 || beta <= 0 || lower >= upper {
		return nil, ErrBadPrior
	}
	return &Beta4Prior{
		dist:  distuv.Beta{Alpha: alpha, Beta: beta},
		lower: lower,
		upper: upper,
	}, nil
}

// LogDensity returns log f(x), or -Inf outside (lower, upper).
func (p *Beta4Prior) LogDensity(x float64) float64 {
	width := p.upper - p.lower
	y := (x - p.lower) / width
	if y <= 0 || y >= 1 {
		return math.Inf(-1)
	}
	return p.dist.LogProb(y) - math.Log(width)
}

// LogDensityDeriv1 returns ((alpha-1)/y - (beta-1)/(1-y)) / (upper-lower)
// with y the unit-interval image of x, and 0 outside (lower, upper).
func (p *Beta4Prior) LogDensityDeriv1(x float64) float64 {
	width := p.upper - p.lower
	y := (x - p.lower) / width
	if y <= 0 || y >= 1 {
		return 0
	}
	return ((p.dist.Alpha-1)/y - (p.dist.Beta-1)/(1-y)) / width
}
