package numline

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/vec"
)

// rangeEpsilon compensates for floating accumulation when checking a
// generated value against the interval bounds. Deduplication uses the
// same tolerance so rounding noise never yields near-duplicate ticks.
const rangeEpsilon = 1e-6

// TickRange enumerates the tick numbers for an interval: ordered
// ascending and duplicate-free. Intervals entirely on one side of zero
// step from min; intervals that straddle (or touch) zero anchor two
// progressions at zero instead, so ticks land on step multiples of the
// origin regardless of where min sits. With includeTip set the exact
// max is the bound (no tick may overlap the arrowhead); otherwise the
// bound is stretched by epsilon so an exact-multiple max is included.
// With excludeOrigin set both zero-anchored progressions start at step,
// so zero itself is never emitted.
func TickRange(min, max, step float64, includeTip, excludeOrigin bool) []float64 {
	upper := max
	if !includeTip {
		upper += rangeEpsilon
	}

	if (min < upper && upper < 0) || (max > min && min > 0) {
		return arange(min, upper, step)
	}

	start := 0.0
	if excludeOrigin {
		start += step
	}
	var ticks []float64
	for _, v := range arange(start, math.Abs(min)+rangeEpsilon, step) {
		ticks = append(ticks, -v)
	}
	ticks = append(ticks, arange(start, upper, step)...)
	return sortedUnique(ticks)
}

// arange produces start, start+step, ... on the half-open interval
// [start, stop). Values come from step-count multiplication, never from
// repeated addition, so they cannot drift.
func arange(start, stop, step float64) []float64 {
	if stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	vals := vec.Linspace(start, start+float64(n-1)*step, n)
	for len(vals) > 0 && vals[len(vals)-1] >= stop {
		vals = vals[:len(vals)-1]
	}
	return vals
}

// sortedUnique sorts ascending and drops values within rangeEpsilon of
// their predecessor. A surviving negative zero is normalized so labels
// never read "-0".
func sortedUnique(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	slices.Sort(vals)
	out := vals[:1]
	for _, v := range vals[1:] {
		if v-out[len(out)-1] <= rangeEpsilon {
			continue
		}
		out = append(out, v)
	}
	for i, v := range out {
		if v == 0 {
			out[i] = 0
		}
	}
	return out
}
