// Package sampling plans the sample times a trajectory is evaluated at.
package sampling

import "math"

// MaxStep is the resolution ceiling: consecutive samples are never
// spaced wider than this, so every unit of t gets at least 100 samples.
const MaxStep = 1.0 / 100

// Steps returns the number of evaluation steps for the given range and
// precision, at least 1 for any positive range.
func Steps(start, end, precision float64) int {
	if end <= start {
		return 0
	}
	step := precision
	if !(step > 0) || step > MaxStep {
		step = MaxStep
	}
	n := int(math.Ceil((end - start) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// Times returns the evenly spaced sample times covering [start, end]
// inclusive: Steps+1 values, the first exactly start and the last
// exactly end. Each time is derived from the index rather than by
// repeated addition, so no drift accumulates over long ranges. A
// non-positive range, or a non-finite bound, yields nil; the caller
// treats that as a configuration error rather than substituting a
// default window.
func Times(start, end, precision float64) []float64 {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return nil
	}
	steps := Steps(start, end, precision)
	if steps == 0 {
		return nil
	}

	span := end - start
	times := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		times[i] = start + span*float64(i)/float64(steps)
	}
	times[steps] = end
	return times
}
