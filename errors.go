// SPDX-License-Identifier: MIT

package zonotope

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the façade. Errors from the subpackages
// (matrix, combination, exact) are wrapped and still match with errors.Is.
var (
	// ErrNilGenerators indicates a nil *matrix.Generators argument.
	ErrNilGenerators = errors.New("zonotope: generators are nil")

	// ErrTooFewGenerators indicates n < d: no d-subset exists.
	ErrTooFewGenerators = errors.New("zonotope: fewer generators than dimensions")

	// ErrDimensionTooSmall indicates d < 2, where facets are not defined
	// by the sweep.
	ErrDimensionTooSmall = errors.New("zonotope: dimension must be at least 2")

	// ErrNotFullDimensional indicates that the generators span less than
	// the whole space, so the zonotope has no facets in the usual sense.
	ErrNotFullDimensional = errors.New("zonotope: generators do not span the space")
)

// Operation tags for uniform error wrapping.
const (
	opVolume     = "Volume"
	opHalfspaces = "Halfspaces"
	opFlat       = "ColumnMajor"
)

// zonotopeErrorf wraps err with an operation tag. Call only with err != nil.
func zonotopeErrorf(tag string, err error) error {
	return fmt.Errorf("zonotope: %s: %w", tag, err)
}
