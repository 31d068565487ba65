// Package irt defines the shared item-model contract used by every item
// response model in psymetrics: model families, score weights, prior
// densities for penalized estimation, and the accumulator contract used
// when aggregating linking statistics across an item pool.
//
// 🚀 What lives here?
//
//   - ModelFamily — the closed set of supported model families. Each family's
//     concrete type exposes only the operations that are meaningful for it;
//     cross-family access goes through the capability interfaces below.
//   - Capability interfaces (DifficultyModel, GuessingModel, SlippingModel,
//     ThresholdModel) — type-assert against these instead of calling methods
//     a family does not support.
//   - Prior — the single operation penalized (MAP) estimation consumes: the
//     first derivative of log density at a parameter value. NormalPrior,
//     LogNormalPrior and Beta4Prior are the built-in implementations, backed
//     by gonum's distuv densities.
//   - Accumulator — one-value-at-a-time aggregation, fed by every item in a
//     pool when building linking statistics (see package linking).
//
// Errors:
//
//	ErrNotApplicable — an operation was requested from a model family that
//	does not carry the parameter in question.
package irt
