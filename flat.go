// SPDX-License-Identifier: MIT

package zonotope

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/zonotope/exact"
	"github.com/katalvlaran/zonotope/matrix"
)

// VolumeColumnMajor computes the volume of n generators of dimension d
// stored column by column in data: generator i is data[i*d : (i+1)*d].
// Floats are taken at their exact binary value.
func VolumeColumnMajor(d, n int, data []float64, opts ...Option) (*big.Rat, error) {
	g, err := matrix.FromColumnMajorFloat64(d, n, data)
	if err != nil {
		return nil, zonotopeErrorf(opFlat, err)
	}

	return Volume(g, opts...)
}

// HalfspacesColumnMajor computes the facets of n integer generators of
// dimension d stored column by column in data. The result holds d+1 values
// per facet, the offset followed by the normal, in the order of Halfspaces.
//
// Facets whose primitive coordinates do not fit into int64 fail the call
// with exact.ErrOverflow; no partial result is returned.
func HalfspacesColumnMajor(d, n int, data []int64, opts ...Option) ([]int64, error) {
	// 1. Ingest
	g, err := matrix.FromColumnMajorInt64(d, n, data)
	if err != nil {
		return nil, zonotopeErrorf(opFlat, err)
	}

	// 2. Compute
	hs, err := Halfspaces(g, opts...)
	if err != nil {
		return nil, err
	}

	// 3. Flatten with explicit narrowing
	out := make([]int64, 0, len(hs)*(d+1))
	for i, h := range hs {
		off, err := exact.Convert(exact.Int{}, exact.Int64{}, h.Offset)
		if err != nil {
			return nil, zonotopeErrorf(opFlat, fmt.Errorf("facet %d offset: %w", i, err))
		}
		normal, err := exact.ConvertVector(exact.Int{}, exact.Int64{}, h.Normal)
		if err != nil {
			return nil, zonotopeErrorf(opFlat, fmt.Errorf("facet %d normal: %w", i, err))
		}
		out = append(out, off)
		out = append(out, normal...)
	}

	return out, nil
}
