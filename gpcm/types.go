// Package gpcm: sentinel errors and construction options.
package gpcm

import "errors"

// Sentinel errors for GPCM construction and parameter plumbing. All are
// precondition violations and fatal to the call; the calling estimation or
// equating driver reports them as configuration errors.
var (
	// ErrTooFewCategories indicates a step vector with fewer than two
	// entries; a partial-credit item needs at least two ordered categories.
	ErrTooFewCategories = errors.New("gpcm: at least two step parameters required")

	// ErrFirstStepNotZero indicates a step vector whose first entry is not
	// exactly zero. The first step is fixed, never estimated or rescaled.
	ErrFirstStepNotZero = errors.New("gpcm: first step parameter must be zero")

	// ErrStepLength indicates a step (or step standard-error) vector that
	// exceeds the item's fixed category-count bound. State is never
	// truncated or grown to fit.
	ErrStepLength = errors.New("gpcm: step parameter array is too large")

	// ErrParamLength indicates a flattened parameter vector whose length is
	// not ncat+1 ([a, step_0, ..., step_{m-1}]).
	ErrParamLength = errors.New("gpcm: parameter vector length must be ncat+1")

	// ErrStepIndex indicates a step index outside 0..ncat-1.
	ErrStepIndex = errors.New("gpcm: step index out of range")
)

// DefaultScalingConstant is the logistic-to-normal-metric conversion used
// when no WithScalingConstant option is given.
const DefaultScalingConstant = 1.7

// Option configures a Model at construction time.
type Option func(m *Model)

// WithScalingConstant sets the scaling constant D (conventionally 1.0 for
// the logistic metric or 1.7 for the normal-ogive approximation).
func WithScalingConstant(d float64) Option {
	return func(m *Model) { m.d = d }
}

// WithName sets the display name used by String.
func WithName(name string) Option {
	return func(m *Model) { m.name = name }
}

// WithScoreWeights replaces the default category scoring (0, 1, ..., m-1).
// The slice is copied; its length must equal the number of categories, which
// New validates.
func WithScoreWeights(w []float64) Option {
	return func(m *Model) { m.scoreWeight = append([]float64(nil), w...) }
}

// Fixed marks the item's parameters as not estimated: AcceptAllProposalValues
// becomes a no-op returning zero.
func Fixed() Option {
	return func(m *Model) { m.fixed = true }
}
