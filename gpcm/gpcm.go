package gpcm

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/psymetrics/irt"
)

// Model holds the parameter state of one GPCM item: the current
// discrimination and step values read by every engine, a staged proposal
// shadow written by an external optimizer, and the standard errors carried
// alongside (never consumed by the math).
//
// Invariants, held for the life of the item:
//   - step[0] == 0, before and after every transform and commit;
//   - len(step) == ncat and never changes, only the values do;
//   - a staged proposal has no effect until AcceptAllProposalValues.
type Model struct {
	name  string
	fixed bool

	d    float64 // scaling constant, 1 or 1.7
	ncat int

	discrimination   float64
	discriminationSE float64
	step             []float64
	stepSE           []float64

	proposalDiscrimination float64
	proposalStep           []float64

	scoreWeight []float64

	minCategory int
	maxCategory int

	discriminationPrior irt.Prior
	stepPrior           []irt.Prior
}

// Model satisfies the shared item-model contract.
var _ irt.Model = (*Model)(nil)

// New builds a GPCM item from initial estimates. steps must have at least
// two entries and steps[0] must be zero; the slice is copied. The proposal
// shadow starts equal to the current values.
func New(discrimination float64, steps []float64, opts ...Option) (*Model, error) {
	if len(steps) < 2 {
		return nil, ErrTooFewCategories
	}
	if steps[0] != 0 {
		return nil, ErrFirstStepNotZero
	}

	ncat := len(steps)
	m := &Model{
		d:                      DefaultScalingConstant,
		ncat:                   ncat,
		discrimination:         discrimination,
		step:                   append([]float64(nil), steps...),
		stepSE:                 make([]float64, ncat),
		proposalDiscrimination: discrimination,
		proposalStep:           append([]float64(nil), steps...),
		minCategory:            0,
		maxCategory:            ncat - 1,
		stepPrior:              make([]irt.Prior, ncat),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scoreWeight == nil {
		m.scoreWeight = irt.DefaultScoreWeights(ncat)
	}
	if len(m.scoreWeight) != ncat {
		return nil, ErrParamLength
	}
	return m, nil
}

// Family reports irt.FamilyGPCM.
func (m *Model) Family() irt.ModelFamily { return irt.FamilyGPCM }

// Name returns the display name set at construction.
func (m *Model) Name() string { return m.name }

// IsFixed reports whether the item's parameters are excluded from estimation.
func (m *Model) IsFixed() bool { return m.fixed }

// Ncat returns the number of response categories.
func (m *Model) Ncat() int { return m.ncat }

// NumberOfParameters returns ncat+1: the discrimination plus one entry per
// step in the flattened vector layout.
func (m *Model) NumberOfParameters() int { return m.ncat + 1 }

// ScalingConstant returns D.
func (m *Model) ScalingConstant() float64 { return m.d }

// MinCategory returns the smallest admissible response category.
func (m *Model) MinCategory() int { return m.minCategory }

// MaxCategory returns the largest admissible response category.
func (m *Model) MaxCategory() int { return m.maxCategory }

// Discrimination returns the current discrimination parameter.
func (m *Model) Discrimination() float64 { return m.discrimination }

// SetDiscrimination overwrites the current discrimination parameter.
// Used by calibration bootstrapping, not by the proposal cycle.
func (m *Model) SetDiscrimination(a float64) { m.discrimination = a }

// DiscriminationStandardError returns the standard error of the
// discrimination estimate.
func (m *Model) DiscriminationStandardError() float64 { return m.discriminationSE }

// StepParameters returns a copy of the current step vector.
func (m *Model) StepParameters() []float64 {
	return append([]float64(nil), m.step...)
}

// SetStepParameters overwrites current step values in place. The supplied
// slice may cover a prefix of the steps but must not exceed ncat-1 entries,
// and when it reaches position zero the value there must stay zero. The
// stored slice is never replaced, so len(step) == ncat always holds.
func (m *Model) SetStepParameters(steps []float64) error {
	if len(steps) > m.ncat-1 {
		return ErrStepLength
	}
	if len(steps) > 0 && steps[0] != 0 {
		return ErrFirstStepNotZero
	}
	copy(m.step, steps)
	return nil
}

// StepStandardErrors returns a copy of the per-step standard errors.
func (m *Model) StepStandardErrors() []float64 {
	return append([]float64(nil), m.stepSE...)
}

// SetStepStandardErrors overwrites the per-step standard errors. The slice
// must have exactly ncat entries.
func (m *Model) SetStepStandardErrors(se []float64) error {
	if len(se) != m.ncat {
		return ErrStepLength
	}
	copy(m.stepSE, se)
	return nil
}

// ScoreWeights returns a copy of the category score weights.
func (m *Model) ScoreWeights() []float64 {
	return append([]float64(nil), m.scoreWeight...)
}

// ParameterVector returns the flattened parameter vector
// [a, step_0 = 0, step_1, ..., step_{m-1}], length ncat+1. This exact
// layout is the interop contract shared with estimation drivers; other
// collaborators build and consume such vectors positionally.
func (m *Model) ParameterVector() []float64 {
	ip := make([]float64, m.ncat+1)
	ip[0] = m.discrimination
	copy(ip[1:], m.step)
	return ip
}

// SetStandardErrors distributes a flattened standard-error vector, laid out
// like ParameterVector: x[0] is the discrimination SE, x[k+1] the SE of
// step k.
func (m *Model) SetStandardErrors(x []float64) error {
	if len(x) != m.ncat+1 {
		return ErrParamLength
	}
	m.discriminationSE = x[0]
	copy(m.stepSE, x[1:])
	return nil
}

// SetProposalDiscrimination stages a new discrimination value. It has no
// effect on any computation until AcceptAllProposalValues.
func (m *Model) SetProposalDiscrimination(a float64) {
	m.proposalDiscrimination = a
}

// SetProposalStepParameters stages new step values. The slice may cover a
// prefix of the steps but must not exceed ncat entries, and position zero
// must stay zero. No effect until AcceptAllProposalValues.
func (m *Model) SetProposalStepParameters(steps []float64) error {
	if len(steps) > m.ncat {
		return ErrStepLength
	}
	if len(steps) > 0 && steps[0] != 0 {
		return ErrFirstStepNotZero
	}
	copy(m.proposalStep, steps)
	return nil
}

// DiscardProposals resets the staged values back to the current parameters.
func (m *Model) DiscardProposals() {
	m.proposalDiscrimination = m.discrimination
	copy(m.proposalStep, m.step)
}

// AcceptAllProposalValues commits the staged discrimination and step values
// as current and returns the largest absolute change across all of them —
// the per-item convergence signal consumed by iterative estimators. On a
// fixed item it returns 0 and changes nothing.
func (m *Model) AcceptAllProposalValues() float64 {
	if m.fixed {
		return 0
	}
	max := math.Abs(m.discrimination - m.proposalDiscrimination)
	for k := 0; k < m.ncat; k++ {
		if d := math.Abs(m.step[k] - m.proposalStep[k]); d > max {
			max = d
		}
	}
	m.discrimination = m.proposalDiscrimination
	copy(m.step, m.proposalStep)
	return max
}

// String renders the item name, parameter values and standard errors, one
// line each, skipping the fixed first step.
func (m *Model) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%10s: [% .6f", m.name, m.discrimination)
	for k := 1; k < m.ncat; k++ {
		fmt.Fprintf(&sb, ", % .6f", m.step[k])
	}
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "%10s  (% .6f", "", m.discriminationSE)
	for k := 1; k < m.ncat; k++ {
		fmt.Fprintf(&sb, ", % .6f", m.stepSE[k])
	}
	sb.WriteString(")")
	return sb.String()
}
