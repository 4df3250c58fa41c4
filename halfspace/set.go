// SPDX-License-Identifier: MIT

package halfspace

import (
	"slices"
	"sync"

	"github.com/katalvlaran/zonotope/exact"
)

// Set is a deduplicating collection of standardized hyperplanes, safe for
// concurrent use. When the same halfspace arrives with different
// combinations, the lexicographically smallest combination is kept, so the
// content of a Set does not depend on insertion order.
type Set[T any] struct {
	f  exact.Field[T]
	mu sync.Mutex
	m  map[string]Hyperplane[T]
}

// NewSet returns an empty Set over field f.
func NewSet[T any](f exact.Field[T]) *Set[T] {
	return &Set[T]{f: f, m: make(map[string]Hyperplane[T])}
}

// Insert standardizes h and adds it. It reports whether the halfspace was new.
func (s *Set[T]) Insert(h Hyperplane[T]) bool {
	Standardize(s.f, &h)
	key := Key(s.f, h)

	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.m[key]
	if !ok {
		s.m[key] = h
		return true
	}
	if h.Combination != nil && (old.Combination == nil || slices.Compare(h.Combination, old.Combination) < 0) {
		old.Combination = h.Combination
		s.m[key] = old
	}

	return false
}

// Contains reports whether a halfspace equal to h (after standardization)
// is present.
func (s *Set[T]) Contains(h Hyperplane[T]) bool {
	Standardize(s.f, &h)
	key := Key(s.f, h)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[key]

	return ok
}

// Len returns the number of distinct halfspaces.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.m)
}

// Merge inserts every element of o into s.
func (s *Set[T]) Merge(o *Set[T]) {
	for _, h := range o.Sorted() {
		s.Insert(h)
	}
}

// Sorted returns the halfspaces ordered by Compare (offset first, then
// normal). The slice is freshly allocated.
func (s *Set[T]) Sorted() []Hyperplane[T] {
	s.mu.Lock()
	out := make([]Hyperplane[T], 0, len(s.m))
	for _, h := range s.m {
		out = append(out, h)
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b Hyperplane[T]) int { return Compare(s.f, a, b) })

	return out
}
