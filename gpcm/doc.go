// Package gpcm implements the Generalized Partial Credit Model (GPCM), a
// polytomous item response model with one discrimination parameter and an
// ordered vector of step (threshold) parameters whose first entry is fixed
// to zero.
//
// 🚀 The model
//
//	For an item with m categories indexed k = 0..m-1, ability theta and
//	scaling constant D (1 or 1.7):
//
//	    Z_k = Σ_{v=0}^{k} D·a·(theta - step_v)
//	    P(k | theta) = exp(Z_k) / Σ_{c=0}^{m-1} exp(Z_c)
//
//	This cumulative-step parameterization is the one used by Brad Hanson's
//	ICL program and by jMetrik.
//
// ✨ What the package provides:
//
//   - Probability engine — per-category probability and expected score,
//     callable with stored parameters or with an explicit flattened
//     parameter vector [a, step_0 = 0, step_1, ..., step_{m-1}]
//   - Gradient engine — ∂P(k|theta)/∂param for every parameter, assembled
//     with an O(m) backward accumulation instead of an O(m²) double sum
//   - Derivative/information engine — d E[score]/d theta and Fisher item
//     information at a given ability
//   - Equating transforms — in-place linear rescaling (Scale) plus the
//     Kim–Kolen directional transforms (TStar*: new form to old scale,
//     TSharp*: old form to new scale)
//   - Proposal lifecycle — staged parameter updates committed atomically,
//     reporting the largest absolute change as a convergence signal
//   - Prior penalty hook — MAP adjustment of the log-likelihood gradient
//     from registered irt.Prior objects
//
// Numerics: every exponential is shifted by the largest Z before being
// taken (log-sum-exp form). The shift cancels in every ratio the model
// computes, so results match the textbook formulas while extreme abilities
// stay finite.
//
// Concurrency: a Model is a small mutable record with no internal locking.
// Computations are pure and O(m) to O(m²) per call. Drivers that fan out
// across an item pool must keep at most one goroutine per Model, or guard
// the current/proposal state with their own locking discipline; the
// proposal/commit pair exists precisely so new values can be staged without
// disturbing readers of the current parameters.
//
// Errors:
//   - ErrTooFewCategories — construction with fewer than two steps.
//   - ErrFirstStepNotZero — a step vector whose first entry is not zero.
//   - ErrStepLength       — a step or standard-error vector that exceeds
//     the item's fixed category bound.
//   - ErrParamLength      — a flattened vector whose length is not ncat+1.
package gpcm
