// Package core provides the overflow-safe Inf sentinel used by every
// distance-producing algorithm in edgewise.
package core

import "math"

// infDivisor keeps Inf strictly below the type maximum divided by two,
// so the sum of two sentinel-adjacent distances cannot overflow.
// Any divisor ≥ 2 satisfies that invariant; 4 leaves extra headroom
// for a relaxation that adds an edge weight on top of a near-Inf sum.
const infDivisor = 4

// Inf returns the sentinel "unreachable" distance for weight type W:
// the largest representable value of W divided by infDivisor.
//
// Every algorithm initializes distances to Inf[W]() and leaves
// unreached vertices at exactly that value, so callers test
// reachability with dist[v] == core.Inf[W]().
// Complexity: O(log bits) for integer W, O(1) for floats.
func Inf[W Weight]() W {
	return maxOf[W]() / infDivisor
}

// maxOf computes the largest representable value of W without
// reflection. Floating-point kinds are recognized because converting
// 0.5 to them keeps the fraction, while integer conversion truncates
// it to zero; float32 is told apart from float64 because the smallest
// nonzero float64 underflows to zero in float32.
func maxOf[W Weight]() W {
	half := 0.5
	if W(half) != 0 { // floating-point kind
		tiny := math.SmallestNonzeroFloat64
		if W(tiny) != 0 { // survives conversion: W is float64-sized
			f64 := math.MaxFloat64
			return W(f64)
		}

		f32 := float32(math.MaxFloat32)
		return W(f32)
	}

	// Integer kind: climb powers of two until signed wraparound, then
	// assemble max = 2^(bits-1) - 1 from the last positive power.
	hi := W(1)
	prev := hi
	for hi > 0 {
		prev = hi
		hi *= 2
	}

	return prev - 1 + prev
}
