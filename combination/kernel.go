// SPDX-License-Identifier: MIT

package combination

import (
	"fmt"

	"github.com/katalvlaran/zonotope/exact"
)

// Kernel is a combination that tracks a basis of the orthogonal complement
// of its chosen generators. With d the ambient dimension, a valid Kernel
// always satisfies Size() + len(Basis()) == d; every basis vector is
// standardized.
type Kernel[T any] struct {
	Base
	f     exact.Field[T]
	rows  [][]T // generator rows, shared read-only between clones
	basis [][]T // vectors are never mutated after creation
}

var _ Container[*Kernel[int64]] = (*Kernel[int64])(nil)

// NewKernel returns an empty kernel-tracked combination over rows with at
// most k elements. The initial basis is the identity.
func NewKernel[T any](f exact.Field[T], rows [][]T, k int) (*Kernel[T], error) {
	d, err := dimOf(rows)
	if err != nil {
		return nil, fmt.Errorf("NewKernel: %w", err)
	}
	if k < 0 || k > d {
		return nil, fmt.Errorf("NewKernel: k=%d d=%d: %w", k, d, ErrBadLimit)
	}
	b, err := NewBase(len(rows), k)
	if err != nil {
		return nil, fmt.Errorf("NewKernel: %w", err)
	}

	return &Kernel[T]{Base: *b, f: f, rows: rows, basis: exact.Identity(f, d)}, nil
}

// Extend implements Container. A generator already in the span of the
// chosen ones leaves the basis untouched and marks the combination invalid.
func (c *Kernel[T]) Extend(i int) {
	c.Base.Extend(i)
	if c.degenerate {
		return
	}
	basis, ok := UpdateKernel(c.f, c.basis, c.rows[i])
	if !ok {
		c.degenerate = true
		return
	}
	c.basis = basis
}

// Clone implements Container. The basis slice is copied; the vectors it
// holds are immutable and shared.
func (c *Kernel[T]) Clone() *Kernel[T] {
	basis := make([][]T, len(c.basis))
	copy(basis, c.basis)

	return &Kernel[T]{Base: c.Base.clone(), f: c.f, rows: c.rows, basis: basis}
}

// Basis returns a copy of the current kernel basis.
func (c *Kernel[T]) Basis() [][]T { return exact.CloneAll(c.basis) }

// Field returns the arithmetic the container computes in.
func (c *Kernel[T]) Field() exact.Field[T] { return c.f }

// UpdateKernel removes the direction of v from the kernel basis.
//
// Implementation:
//   - Stage 1: x_i = dot(basis_i, v). If every x_i is zero, v is already in
//     the span of the chosen generators: report false, basis unchanged.
//   - Stage 2: take j, the last index with x_j != 0, and swap it to the end.
//   - Stage 3: basis_i <- x_last·basis_i - x_i·basis_last for every other i,
//     then standardize. Each new vector is orthogonal to v.
//   - Stage 4: drop the last vector; the dimension shrinks by exactly one.
//
// The input slice is never modified.
// Complexity: O(k·d) field operations for k basis vectors.
func UpdateKernel[T any](f exact.Field[T], basis [][]T, v []T) ([][]T, bool) {
	// 1. Project v onto the basis
	x := make([]T, len(basis))
	j := -1
	for i := range basis {
		x[i] = exact.Dot(f, basis[i], v)
		if f.Sign(x[i]) != 0 {
			j = i
		}
	}
	if j < 0 {
		return basis, false
	}

	// 2. Pivot to the end
	last := len(basis) - 1
	b := make([][]T, len(basis))
	copy(b, basis)
	b[j], b[last] = b[last], b[j]
	x[j], x[last] = x[last], x[j]

	// 3. Eliminate and standardize
	out := make([][]T, last)
	for i := 0; i < last; i++ {
		w := exact.Combine(f, x[last], b[i], x[i], b[last])
		f.Standardize(w)
		out[i] = w
	}

	// 4. The pivot vector is dropped
	return out, true
}

// dimOf validates rows and returns their common length.
func dimOf[T any](rows [][]T) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, ErrBadRows
	}
	d := len(rows[0])
	for _, row := range rows {
		if len(row) != d {
			return 0, ErrBadRows
		}
	}

	return d, nil
}

// Rank returns the dimension of the span of rows, by feeding every row
// through UpdateKernel and counting the ones that shrink the kernel.
// Complexity: O(n·d²) field operations.
func Rank[T any](f exact.Field[T], rows [][]T) (int, error) {
	d, err := dimOf(rows)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}
	basis := exact.Identity(f, d)
	rank := 0
	for _, row := range rows {
		if len(basis) == 0 {
			break
		}
		if next, ok := UpdateKernel(f, basis, row); ok {
			basis = next
			rank++
		}
	}

	return rank, nil
}
