// Package psymetrics is a toolkit for Item Response Theory (IRT) —
// polytomous item models, parameter-scale linking, and test-design
// statistics, built from small closed-form numeric engines.
//
// 🚀 What is psymetrics?
//
//	A pure-Go psychometrics library that brings together:
//		• GPCM: the Generalized Partial Credit Model — category probabilities,
//		  parameter gradients, ability derivatives and item information
//		• Linking: mean/sigma and mean/mean linear transformation coefficients
//		  for equating two test forms onto a common scale
//		• Priors: Normal, LogNormal and four-parameter Beta densities for
//		  penalized (MAP) estimation
//		• Scoring: expected-score and information curves over an ability grid
//
// ✨ Why choose psymetrics?
//
//   - Closed-form everywhere – analytic gradients, no numeric differentiation
//   - Estimation-ready – staged proposal/commit parameter updates with a
//     max-change convergence signal for iterative (EM/MMLE) drivers
//   - Stable – shifted-exponential normalization keeps extreme abilities finite
//   - Small API – plain float64 in, plain float64 out
//
// Under the hood, everything is organized under four subpackages:
//
//	irt/     — shared item-model contract: score weights, priors, accumulators
//	gpcm/    — the Generalized Partial Credit Model and its equating transforms
//	linking/ — transformation coefficients and linking-statistic aggregation
//	scoring/ — theta-grid curves and descriptive summaries
//
// Quick sketch:
//
//	item, _ := gpcm.New(1.0, []float64{0, -1, 1})
//	p := item.Probability(0, 1)        // P(category 1 | theta = 0)
//	info := item.ItemInformationAt(0)  // Fisher information at theta = 0
//
// See each package's doc.go for formulas, invariants and examples.
//
//	go get github.com/katalvlaran/psymetrics
package psymetrics
