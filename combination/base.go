// SPDX-License-Identifier: MIT

package combination

import (
	"fmt"
	"sort"
)

// Base is a strictly increasing sequence of indices drawn from [0, n),
// holding at most k of them. It carries no linear-algebra state; the
// tracked containers embed it.
type Base struct {
	n, k       int
	idx        []int
	degenerate bool
}

var _ Container[*Base] = (*Base)(nil)

// NewBase returns an empty combination over [0, n) with at most k elements.
// Returns ErrBadLimit if n or k is negative.
func NewBase(n, k int) (*Base, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("NewBase(%d, %d): %w", n, k, ErrBadLimit)
	}

	return &Base{n: n, k: k, idx: make([]int, 0, k)}, nil
}

// Size implements Container.
func (b *Base) Size() int { return len(b.idx) }

// Limit implements Container.
func (b *Base) Limit() (n, k int) { return b.n, b.k }

// Back returns the largest chosen index, or -1 when empty.
func (b *Base) Back() int {
	if len(b.idx) == 0 {
		return -1
	}

	return b.idx[len(b.idx)-1]
}

// Begin implements Container: Back()+1.
func (b *Base) Begin() int { return b.Back() + 1 }

// End implements Container: n-(k-Size())+1, exclusive. Stopping there
// leaves enough larger indices to still reach k elements.
func (b *Base) End() int { return b.n - (b.k - len(b.idx)) + 1 }

// Extend implements Container. Indices that break strict increase or the
// [0, n) range mark the combination degenerate.
func (b *Base) Extend(i int) {
	if i <= b.Back() || i >= b.n {
		b.degenerate = true
	}
	b.idx = append(b.idx, i)
}

// Valid implements Container.
func (b *Base) Valid() bool { return !b.degenerate && len(b.idx) <= b.k }

// Contains reports whether i is one of the chosen indices.
// Complexity: O(log Size()).
func (b *Base) Contains(i int) bool {
	p := sort.SearchInts(b.idx, i)

	return p < len(b.idx) && b.idx[p] == i
}

// Elements implements Container.
func (b *Base) Elements() []int {
	out := make([]int, len(b.idx))
	copy(out, b.idx)

	return out
}

// Clone implements Container.
func (b *Base) Clone() *Base {
	c := b.clone()

	return &c
}

// clone copies b by value with its own index slice; the tracked containers
// use it to copy their embedded Base.
func (b *Base) clone() Base {
	idx := make([]int, len(b.idx), max(len(b.idx), b.k+1))
	copy(idx, b.idx)

	return Base{n: b.n, k: b.k, idx: idx, degenerate: b.degenerate}
}

// String renders the indices, e.g. "[0 2 5]".
func (b *Base) String() string { return fmt.Sprint(b.idx) }
