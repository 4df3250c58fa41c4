// SPDX-License-Identifier: MIT

// Package matrix is the generator store of the zonotope engine.
//
// A zonotope Z = Σ [0, g_i] is described by n generator vectors in d-space.
// Generators keeps them as an immutable n×d matrix of exact rationals
// (*big.Rat), one row per generator, and derives every other view the
// engine needs from it:
//
//   - Integral: the uniform integral matrix s·G with s the lcm of all
//     denominators, plus s itself so results can be mapped back.
//   - PerGenerator: each row scaled by its own lcm. Directions are kept,
//     lengths are not; this is enough wherever only orthogonality matters.
//   - Into: the rows converted into any exact.Field.
//   - ColumnMajor and the FromColumnMajor* constructors: the flat d×n
//     layout used by foreign callers.
//   - Digest: a stable content hash used as a cache key.
//
// Constructors validate fail-fast and return sentinels wrapped with the
// operation name (see errors.go); accessors return copies, so a Generators
// value can be shared between goroutines without locking.
package matrix
