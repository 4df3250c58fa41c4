// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors return these sentinels wrapped with an operation tag
// and tests MUST check them via errors.Is. Nothing in this package panics on
// user-supplied data.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// empty input -> shape -> dimension mismatch -> nil entry -> NaN/Inf -> parse.

var (
	// ErrEmpty is returned when a generator set has no generators at all.
	ErrEmpty = errors.New("matrix: no generators")

	// ErrBadShape is returned when the requested shape is invalid (d<=0 or n<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates ragged rows or a flat buffer whose
	// length is not d*n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a generator or coordinate index is
	// outside valid bounds. Accessors return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilEntry signals a nil *big.Rat inside caller-supplied rows.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrNaNInf signals a NaN or ±Inf float where an exact value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrParse signals a textual entry that is not a valid rational.
	ErrParse = errors.New("matrix: cannot parse entry")
)

// Operation tags for uniform error wrapping.
const (
	opNew         = "New"
	opFromInt64   = "FromInt64"
	opFromFloat64 = "FromFloat64"
	opFromStrings = "FromStrings"
	opColumnMajor = "FromColumnMajor"
	opRow         = "Row"
	opAt          = "At"
	opInto        = "Into"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
