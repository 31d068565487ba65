package irt

// Accumulator receives observed values one at a time. Items feed their
// parameters into accumulators when linking statistics are aggregated
// across a pool; the concrete mean / standard-deviation implementations
// live in package linking.
type Accumulator interface {
	Increment(x float64)
}
