// Package irt: shared item-model contract types and sentinel errors.
package irt

import "errors"

// ErrNotApplicable is returned (or wrapped) when a parameter family is
// queried on a model that does not carry it, e.g. asking a partial-credit
// model for its guessing parameter. It marks a model-family boundary,
// not a bug.
var ErrNotApplicable = errors.New("irt: operation not applicable to this model family")

// ModelFamily identifies an item response model family. The set is closed:
// every concrete model type in psymetrics reports exactly one family, and
// callers branch on the family (or type-assert capability interfaces)
// instead of probing for unsupported methods.
type ModelFamily int

const (
	// FamilyGPCM is the Generalized Partial Credit Model: a discrimination
	// parameter plus ordered step parameters, first step fixed to zero.
	FamilyGPCM ModelFamily = iota

	// FamilyThreePL is the three-parameter logistic model for binary items.
	FamilyThreePL

	// FamilyGradedResponse is Samejima's graded response model.
	FamilyGradedResponse
)

// String returns the conventional short name of the family.
func (f ModelFamily) String() string {
	switch f {
	case FamilyGPCM:
		return "GPCM"
	case FamilyThreePL:
		return "3PL"
	case FamilyGradedResponse:
		return "GRM"
	default:
		return "unknown"
	}
}

// Model is the minimal surface an estimation or equating driver needs from
// any item response model, regardless of family.
type Model interface {
	// Family reports which model family the item belongs to.
	Family() ModelFamily

	// Ncat returns the number of response categories (2 for binary items).
	Ncat() int

	// NumberOfParameters returns the length of the item's flattened
	// parameter vector.
	NumberOfParameters() int

	// Probability returns P(response = category | theta).
	Probability(theta float64, category int) float64

	// ExpectedValue returns the score-weighted expected response at theta.
	ExpectedValue(theta float64) float64
}

// DifficultyModel is implemented by families that carry a single difficulty
// (location) parameter, such as the 3PL. Polytomous step models do not.
type DifficultyModel interface {
	Difficulty() float64
	SetDifficulty(b float64)
}

// GuessingModel is implemented by families with a lower-asymptote
// (pseudo-guessing) parameter.
type GuessingModel interface {
	Guessing() float64
	SetGuessing(c float64)
}

// SlippingModel is implemented by families with an upper-asymptote
// (slipping) parameter.
type SlippingModel interface {
	Slipping() float64
	SetSlipping(u float64)
}

// ThresholdModel is implemented by families whose thresholds are assigned
// directly rather than derived, such as the graded response model.
type ThresholdModel interface {
	Thresholds() []float64
	SetThresholds(t []float64) error
}

// DefaultScoreWeights returns the standard category scoring for a polytomous
// item with ncat ordered categories: weight[k] = k.
func DefaultScoreWeights(ncat int) []float64 {
	w := make([]float64, ncat)
	for k := range w {
		w[k] = float64(k)
	}
	return w
}
