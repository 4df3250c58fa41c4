// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// New builds a Generators value from rows of exact rationals.
// The input is deep-copied; later changes to rows are not observed.
//
// Errors (wrapped with "New"): ErrEmpty, ErrBadShape, ErrDimensionMismatch,
// ErrNilEntry.
// Complexity: O(n·d).
func New(rows [][]*big.Rat) (*Generators, error) {
	if err := ValidateRats(rows); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = cloneRow(row)
	}

	return &Generators{dim: len(rows[0]), rows: out}, nil
}

// FromInt64 builds Generators from integer rows.
func FromInt64(rows [][]int64) (*Generators, error) {
	d, err := validateRowLens(rows)
	if err != nil {
		return nil, matrixErrorf(opFromInt64, err)
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, d)
		for r, v := range row {
			out[i][r] = new(big.Rat).SetInt64(v)
		}
	}

	return &Generators{dim: d, rows: out}, nil
}

// FromFloat64 builds Generators from float rows. Every finite float64 is a
// dyadic rational, so the conversion is exact: 0.1 becomes
// 3602879701896397/36028797018963968, not 1/10. Use FromStrings for
// decimal input that must be read literally.
//
// Errors (wrapped with "FromFloat64"): ErrEmpty, ErrBadShape,
// ErrDimensionMismatch, ErrNaNInf.
func FromFloat64(rows [][]float64) (*Generators, error) {
	d, err := validateRowLens(rows)
	if err != nil {
		return nil, matrixErrorf(opFromFloat64, err)
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		if err = ValidateFinite(row); err != nil {
			return nil, matrixErrorf(opFromFloat64, fmt.Errorf("generator %d: %w", i, err))
		}
		out[i] = make([]*big.Rat, d)
		for r, v := range row {
			out[i][r] = new(big.Rat).SetFloat64(v)
		}
	}

	return &Generators{dim: d, rows: out}, nil
}

// FromStrings builds Generators from textual rationals such as "3", "-1/2"
// or "0.25" (anything big.Rat.SetString accepts).
//
// Errors (wrapped with "FromStrings"): ErrEmpty, ErrBadShape,
// ErrDimensionMismatch, ErrParse.
func FromStrings(rows [][]string) (*Generators, error) {
	d, err := validateRowLens(rows)
	if err != nil {
		return nil, matrixErrorf(opFromStrings, err)
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, d)
		for r, s := range row {
			x, ok := new(big.Rat).SetString(strings.TrimSpace(s))
			if !ok {
				return nil, matrixErrorf(opFromStrings, fmt.Errorf("(%d,%d) %q: %w", i, r, s, ErrParse))
			}
			out[i][r] = x
		}
	}

	return &Generators{dim: d, rows: out}, nil
}

// FromColumnMajorInt64 reads a flat d×n buffer in column-major order:
// generator i occupies data[i*d : (i+1)*d].
//
// Errors (wrapped with "FromColumnMajor"): ErrBadShape, ErrDimensionMismatch.
func FromColumnMajorInt64(d, n int, data []int64) (*Generators, error) {
	if err := ValidateFlatLen(d, n, len(data)); err != nil {
		return nil, matrixErrorf(opColumnMajor, err)
	}
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = data[i*d : (i+1)*d]
	}

	return FromInt64(rows)
}

// FromColumnMajorFloat64 is FromColumnMajorInt64 for float input; NaN and
// ±Inf are rejected with ErrNaNInf.
func FromColumnMajorFloat64(d, n int, data []float64) (*Generators, error) {
	if err := ValidateFlatLen(d, n, len(data)); err != nil {
		return nil, matrixErrorf(opColumnMajor, err)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = data[i*d : (i+1)*d]
	}

	return FromFloat64(rows)
}

// ColumnMajor flattens the generators back into the d×n column-major
// layout read by the FromColumnMajor* constructors.
// Complexity: O(n·d).
func (g *Generators) ColumnMajor() []*big.Rat {
	out := make([]*big.Rat, 0, g.dim*len(g.rows))
	for _, row := range g.rows {
		for _, x := range row {
			out = append(out, new(big.Rat).Set(x))
		}
	}

	return out
}
