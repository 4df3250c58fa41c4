// SPDX-License-Identifier: MIT

package halfspace

import "github.com/katalvlaran/zonotope/exact"

// half returns 0 for directions with angle in [0, π) and 1 for [π, 2π).
// The positive x axis belongs to the first half, the negative one to the
// second. The zero vector has no angle and must not be passed.
func half[T any](f exact.Field[T], x, y T) int {
	sy := f.Sign(y)
	if sy > 0 || (sy == 0 && f.Sign(x) > 0) {
		return 0
	}

	return 1
}

// CompareByAngle orders nonzero planar directions by their polar angle in
// [0, 2π) without trigonometry: first by half-plane, then by the sign of
// the cross product. Parallel directions with the same orientation compare
// equal. It is a total preorder, so it is safe for sorting.
func CompareByAngle[T any](f exact.Field[T], ax, ay, bx, by T) int {
	ha, hb := half(f, ax, ay), half(f, bx, by)
	if ha != hb {
		return cmpInt(ha, hb)
	}
	// same half: a comes first when b is counter-clockwise of a
	cross := f.Sub(f.Mul(ax, by), f.Mul(ay, bx))

	return -f.Sign(cross)
}
