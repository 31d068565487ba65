// Package scoring evaluates item models over a grid of ability values and
// summarizes the resulting curves — the expected-score (characteristic) and
// information curves test designers read when assembling or reviewing a
// form.
//
// 🚀 What it provides:
//
//   - Grid          — evenly spaced theta points over an ability range
//   - ExpectedScoreCurve / InformationCurve — one item's curves on a grid
//   - TestInformation — the pool-level information curve (sum over items)
//   - Summarize / PeakTheta — descriptive statistics of a curve and the
//     ability at which information peaks
//
// Any type with ExpectedValue and ItemInformationAt methods can be graphed,
// so every model family plugs in without adapters.
//
// Errors:
//
//	ErrBadGrid    — fewer than two points or a non-increasing range.
//	ErrEmptyCurve — summary of a curve with no points.
package scoring
