// SPDX-License-Identifier: MIT
package exact_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/zonotope/exact"
)

func TestVectorHelpers(t *testing.T) {
	f := exact.Int64{}

	assert.Equal(t, int64(32), exact.Dot[int64](f, []int64{1, 2, 3}, []int64{4, 5, 6}))
	assert.Panics(t, func() { exact.Dot[int64](f, []int64{1, 2, 3}, []int64{4, 5}) })
	assert.Equal(t, []int64{-5, -4}, exact.Combine[int64](f, 2, []int64{1, 2}, 1, []int64{7, 8}))

	acc := []int64{1, 1}
	exact.AddScaled[int64](f, acc, -1, []int64{3, 4})
	assert.Equal(t, []int64{-2, -3}, acc)

	assert.Equal(t, []int64{4, 6}, exact.Sum[int64](f, 2, [][]int64{{1, 2}, {3, 4}}))
	assert.Equal(t, []int64{0, 0, 0}, exact.Sum[int64](f, 3, nil))
	assert.True(t, exact.IsZero[int64](f, []int64{0, 0}))
	assert.False(t, exact.IsZero[int64](f, []int64{0, 1}))
	assert.Equal(t, [][]int64{{1, 0}, {0, 1}}, exact.Identity[int64](f, 2))
}

func TestClone_IsIndependent(t *testing.T) {
	f := exact.Int{}
	src := [][]*big.Int{ints(1, 2), ints(3, 4)}
	cp := exact.CloneAll(src)
	cp[0][0] = f.Add(cp[0][0], f.One())
	assert.Equal(t, int64(1), src[0][0].Int64())
	assert.Equal(t, int64(2), cp[0][0].Int64())
}
