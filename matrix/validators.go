// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape and value checks run by
//    every constructor.
//  - Return plain sentinel errors (optionally with a position) so call sites
//    can wrap uniformly with matrixErrorf.
//
// Note:
//  - Composite checks follow a fixed sequence: empty → shape → ragged → values.

package matrix

import (
	"fmt"
	"math"
	"math/big"
)

// ValidateShape ensures d and n are both positive.
// Complexity: O(1).
func ValidateShape(d, n int) error {
	if d <= 0 || n <= 0 {
		return fmt.Errorf("d=%d n=%d: %w", d, n, ErrBadShape)
	}

	return nil
}

// ValidateFlatLen ensures a column-major buffer holds exactly d*n values.
// Complexity: O(1).
func ValidateFlatLen(d, n, length int) error {
	if err := ValidateShape(d, n); err != nil {
		return err
	}
	if length != d*n {
		return fmt.Errorf("len=%d, want %d: %w", length, d*n, ErrDimensionMismatch)
	}

	return nil
}

// validateRowLens runs the empty/shape/ragged sequence over any row type
// and returns the common row length d.
func validateRowLens[T any](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmpty
	}
	d := len(rows[0])
	if d == 0 {
		return 0, fmt.Errorf("generator 0 has no coordinates: %w", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != d {
			return 0, fmt.Errorf("generator %d has %d coordinates, want %d: %w", i, len(row), d, ErrDimensionMismatch)
		}
	}

	return d, nil
}

// ValidateRats checks rows for emptiness, raggedness and nil entries.
// Complexity: O(n·d).
func ValidateRats(rows [][]*big.Rat) error {
	if _, err := validateRowLens(rows); err != nil {
		return err
	}
	for i, row := range rows {
		for r, x := range row {
			if x == nil {
				return fmt.Errorf("(%d,%d): %w", i, r, ErrNilEntry)
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in vals.
// Complexity: O(len(vals)).
func ValidateFinite(vals []float64) error {
	for k, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %d (%v): %w", k, v, ErrNaNInf)
		}
	}

	return nil
}
