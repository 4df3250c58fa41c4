// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Generators type and its trivial accessors.
// Construction lives in generators.go, scaling in scaling.go.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Generators is an immutable n×d matrix of exact rationals; row i is the
// i-th generator of the zonotope.
//
// The zero value is not usable; build one with New or a From* constructor.
// Complexity: accessors that return rows copy them, O(d) per row.
type Generators struct {
	dim  int          // d, the ambient dimension (> 0)
	rows [][]*big.Rat // n rows of d entries, never shared with callers
}

// Dim returns the ambient dimension d.
func (g *Generators) Dim() int { return g.dim }

// Len returns the number of generators n.
func (g *Generators) Len() int { return len(g.rows) }

// At returns a copy of coordinate r of generator i.
// Returns ErrOutOfRange for invalid indices.
func (g *Generators) At(i, r int) (*big.Rat, error) {
	if i < 0 || i >= len(g.rows) || r < 0 || r >= g.dim {
		return nil, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, r, ErrOutOfRange))
	}

	return new(big.Rat).Set(g.rows[i][r]), nil
}

// Row returns a copy of generator i.
// Returns ErrOutOfRange if i is not in [0, Len()).
func (g *Generators) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= len(g.rows) {
		return nil, matrixErrorf(opRow, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}

	return cloneRow(g.rows[i]), nil
}

// Rows returns a deep copy of all generators.
func (g *Generators) Rows() [][]*big.Rat {
	out := make([][]*big.Rat, len(g.rows))
	for i, row := range g.rows {
		out[i] = cloneRow(row)
	}

	return out
}

// IsIntegral reports whether every entry has denominator one.
func (g *Generators) IsIntegral() bool {
	for _, row := range g.rows {
		for _, x := range row {
			if !x.IsInt() {
				return false
			}
		}
	}

	return true
}

// String renders one generator per line, e.g. "[1 0]\n[1/2 3]".
func (g *Generators) String() string {
	var b strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for r, x := range row {
			if r > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(x.RatString())
		}
		b.WriteByte(']')
	}

	return b.String()
}

func cloneRow(row []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(row))
	for r, x := range row {
		out[r] = new(big.Rat).Set(x)
	}

	return out
}
