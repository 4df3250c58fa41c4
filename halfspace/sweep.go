// SPDX-License-Identifier: MIT

package halfspace

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/zonotope/combination"
	"github.com/katalvlaran/zonotope/exact"
)

// ErrNotCorankTwo is returned when Sweep is given a combination whose
// kernel is not two-dimensional.
var ErrNotCorankTwo = errors.New("halfspace: kernel is not two-dimensional")

// event is a generator direction projected onto the kernel plane. Every
// generator with a nonzero projection p yields (p, +1) and (-p, -1).
type event[T any] struct {
	i    int
	x, y T
	sign int
}

// Sweep emits the facets of the zonotope spanned by rows that contain the
// generators of c plus one more generator with a larger index.
//
// c must be a kernel-tracked combination with a two-dimensional kernel
// (c0, c1); rows may be any rescaling of the rows c was built from, as long
// as every generator keeps its direction.
//
// Implementation:
//   - Stage 1: project every generator onto (c0, c1); drop zero projections.
//   - Stage 2: acc starts as the sum of generators whose projection lies in
//     the lower half-plane, i.e. those on the negative side of the line at
//     angle zero.
//   - Stage 3: visit the 2n events by increasing angle; acc += sign·g_i.
//     For i > Back(c), emit normal = -y·c0 + x·c1 and offset = -normal·acc:
//     at that moment acc is the sum of all generators g with normal·g < 0,
//     which is where normal·x attains its minimum over the zonotope.
//
// Tied events are parallel to the current line, so their order does not
// change any emitted offset. Emitted hyperplanes are standardized and carry
// the combination c ∪ {i}. An error from emit aborts the sweep.
// Complexity: O(n·d + n log n) field operations.
func Sweep[T any](rows [][]T, c *combination.Kernel[T], emit func(Hyperplane[T]) error) error {
	f := c.Field()
	basis := c.Basis()
	if len(basis) != 2 {
		return fmt.Errorf("Sweep %v: kernel dimension %d: %w", c.Elements(), len(basis), ErrNotCorankTwo)
	}
	c0, c1 := basis[0], basis[1]
	d := len(c0)

	// 1. Project and seed the accumulator
	events := make([]event[T], 0, 2*len(rows))
	acc := exact.Zeros(f, d)
	for i, g := range rows {
		x, y := exact.Dot(f, c0, g), exact.Dot(f, c1, g)
		if f.Sign(x) == 0 && f.Sign(y) == 0 {
			continue // g lies in the span of the combination
		}
		events = append(events,
			event[T]{i: i, x: x, y: y, sign: 1},
			event[T]{i: i, x: f.Neg(x), y: f.Neg(y), sign: -1})
		if half(f, x, y) == 1 {
			exact.AddScaled(f, acc, 1, g)
		}
	}

	// 2. Angular order
	slices.SortStableFunc(events, func(a, b event[T]) int {
		return CompareByAngle(f, a.x, a.y, b.x, b.y)
	})

	// 3. Sweep
	back, elems := c.Back(), c.Elements()
	for _, e := range events {
		exact.AddScaled(f, acc, e.sign, rows[e.i])
		if e.i <= back {
			continue
		}
		normal := make([]T, d)
		for r := range normal {
			normal[r] = f.Sub(f.Mul(e.x, c1[r]), f.Mul(e.y, c0[r]))
		}
		h := Hyperplane[T]{
			Offset:      f.Neg(exact.Dot(f, normal, acc)),
			Normal:      normal,
			Combination: append(slices.Clone(elems), e.i),
		}
		Standardize(f, &h)
		if err := emit(h); err != nil {
			return err
		}
	}

	return nil
}
