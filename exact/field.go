// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotIntegral is returned when a rational with a denominator other
	// than one is converted into an integer field.
	ErrNotIntegral = errors.New("exact: value is not integral")

	// ErrOverflow is returned when a value does not fit the target width.
	ErrOverflow = errors.New("exact: value overflows int64")

	// ErrNotFinite is returned when NaN or ±Inf would become a rational.
	ErrNotFinite = errors.New("exact: value is not finite")
)

// Field is the arithmetic the combination engine is generic over.
// Implementations must be stateless and safe for concurrent use.
//
// Contract:
//   - No method mutates its arguments.
//   - Quo(a, b) is only ever called when b divides a exactly (integer fields)
//     and b != 0; the engine's invariants guarantee both.
//   - Standardize rewrites v in place to its canonical positive multiple
//     and returns the divisor it used (zero for the zero vector).
type Field[T any] interface {
	// Name is a short label for logs ("int", "rat", "int64", "float64").
	Name() string

	Zero() T
	One() T
	FromInt64(x int64) T

	// FromRat converts r into the field, failing if r is not representable.
	FromRat(r *big.Rat) (T, error)

	// Rat converts a back into an exact rational.
	Rat(a T) (*big.Rat, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(a T) T
	Abs(a T) T

	// Sign returns -1, 0 or +1.
	Sign(a T) int

	// Cmp returns -1, 0 or +1 as a <, ==, > b.
	Cmp(a, b T) int

	Standardize(v []T) T

	// String formats a for keys and output; equal values format equally.
	String(a T) string
}

// Convert moves a single value between fields through an exact rational.
// The conversion is explicit and fallible: it fails when the target
// field cannot represent the value (ErrNotIntegral, ErrOverflow).
func Convert[S, T any](from Field[S], to Field[T], v S) (T, error) {
	var zero T
	r, err := from.Rat(v)
	if err != nil {
		return zero, err
	}
	out, err := to.FromRat(r)
	if err != nil {
		return zero, fmt.Errorf("%s -> %s: %w", from.Name(), to.Name(), err)
	}

	return out, nil
}

// ConvertVector applies Convert element-wise, stopping at the first failure.
func ConvertVector[S, T any](from Field[S], to Field[T], v []S) ([]T, error) {
	out := make([]T, len(v))
	var err error
	for i := range v {
		if out[i], err = Convert(from, to, v[i]); err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
	}

	return out, nil
}
