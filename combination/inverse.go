// SPDX-License-Identifier: MIT

package combination

import (
	"fmt"

	"github.com/katalvlaran/zonotope/exact"
)

// Inverse is a combination that tracks a fraction-free inverse of the
// matrix whose first Size() columns are the chosen generators, together
// with the pivot D of the last step. When Size() == d, the matrix is the
// adjugate of the chosen d×d block and Determinant() is its determinant.
//
// Only the magnitude of D is used for volumes; the sign comes from a
// separate row-swap parity bit, so Determinant() is exact including sign.
type Inverse[T any] struct {
	Base
	f    exact.Field[T]
	rows [][]T
	inv  [][]T // d×d, rows never mutated after creation
	det  T     // last pivot, one for the empty combination
	odd  bool  // odd number of row swaps so far
}

var _ Container[*Inverse[int64]] = (*Inverse[int64])(nil)

// NewInverse returns an empty inverse-tracked combination over rows with
// at most k elements (k <= d). The initial state is (identity, 1).
func NewInverse[T any](f exact.Field[T], rows [][]T, k int) (*Inverse[T], error) {
	d, err := dimOf(rows)
	if err != nil {
		return nil, fmt.Errorf("NewInverse: %w", err)
	}
	if k < 0 || k > d {
		return nil, fmt.Errorf("NewInverse: k=%d d=%d: %w", k, d, ErrBadLimit)
	}
	b, err := NewBase(len(rows), k)
	if err != nil {
		return nil, fmt.Errorf("NewInverse: %w", err)
	}

	return &Inverse[T]{Base: *b, f: f, rows: rows, inv: exact.Identity(f, d), det: f.One()}, nil
}

// Extend implements Container. A generator in the span of the chosen ones
// yields a zero pivot and marks the combination invalid.
func (c *Inverse[T]) Extend(i int) {
	k := c.Size()
	c.Base.Extend(i)
	if c.degenerate {
		return
	}
	inv, pivot, swapped, ok := UpdateInverse(c.f, c.inv, c.det, k, c.rows[i])
	if !ok {
		c.degenerate = true
		c.det = c.f.Zero()
		return
	}
	c.inv, c.det = inv, pivot
	if swapped {
		c.odd = !c.odd
	}
}

// Clone implements Container.
func (c *Inverse[T]) Clone() *Inverse[T] {
	inv := make([][]T, len(c.inv))
	copy(inv, c.inv)

	return &Inverse[T]{Base: c.Base.clone(), f: c.f, rows: c.rows, inv: inv, det: c.det, odd: c.odd}
}

// Determinant returns the signed determinant of the chosen generators as
// columns. It is meaningful once Size() == d and zero for a degenerate
// combination.
func (c *Inverse[T]) Determinant() T {
	if c.odd {
		return c.f.Neg(c.det)
	}

	return c.det
}

// AbsDeterminant returns |Determinant()|.
func (c *Inverse[T]) AbsDeterminant() T { return c.f.Abs(c.det) }

// Matrix returns a copy of the tracked fraction-free inverse.
func (c *Inverse[T]) Matrix() [][]T { return exact.CloneAll(c.inv) }

// UpdateInverse performs one fraction-free (Bareiss) step, appending
// column x at position k of a d×d matrix whose inverse, scaled by the
// previous pivot prev, is inv.
//
// Implementation:
//   - Stage 1: lambda = inv·x.
//   - Stage 2: p is the first row in [k, d) with lambda_p != 0; if there is
//     none, x is dependent on the previous columns and ok is false.
//   - Stage 3: if p != k, swap rows p and k of lambda and inv (swapped).
//   - Stage 4: every row i != k becomes (lambda_k·row_i - lambda_i·row_k)/prev,
//     an exact division; row k is kept.
//   - The new pivot is lambda_k.
//
// The input matrix is never modified.
// Complexity: O(d²) field operations.
func UpdateInverse[T any](f exact.Field[T], inv [][]T, prev T, k int, x []T) (out [][]T, pivot T, swapped, ok bool) {
	// 1. lambda = inv·x
	lambda := make([]T, len(inv))
	for r := range inv {
		lambda[r] = exact.Dot(f, inv[r], x)
	}

	// 2. Pivot search
	p := -1
	for r := k; r < len(inv); r++ {
		if f.Sign(lambda[r]) != 0 {
			p = r
			break
		}
	}
	if p < 0 {
		return inv, f.Zero(), false, false
	}

	// 3. Row swap
	m := make([][]T, len(inv))
	copy(m, inv)
	if p != k {
		m[p], m[k] = m[k], m[p]
		lambda[p], lambda[k] = lambda[k], lambda[p]
		swapped = true
	}

	// 4. Fraction-free elimination
	for i := range m {
		if i == k {
			continue
		}
		row := exact.Combine(f, lambda[k], m[i], lambda[i], m[k])
		for c := range row {
			row[c] = f.Quo(row[c], prev)
		}
		m[i] = row
	}

	return m, lambda[k], swapped, true
}
