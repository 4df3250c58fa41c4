// SPDX-License-Identifier: MIT

// Package cache memoizes zonotope results. Computations are keyed by the
// content digest of the generator matrix, so a result can be reused across
// processes whenever the same generators are seen again.
//
// The package includes a BadgerDB-backed Store for persistent use and an
// in-memory Store for tests and short-lived processes. Records are encoded
// with msgpack; every number is kept in its exact textual form.
package cache

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when a key does not exist in the store.
	ErrNotFound = errors.New("cache: not found")

	// ErrCorrupt is returned when a stored record cannot be decoded.
	ErrCorrupt = errors.New("cache: corrupt record")
)

// Namespace prefixes every key written by this package.
const Namespace = "zonotope"

// Key is a hierarchical key such as {"zonotope", "volume", "<digest>"}.
type Key []string

// String joins the segments with ':' for storage and display.
func (k Key) String() string {
	return strings.Join(k, ":")
}

// Store is the interface for a byte-oriented result store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the value for a key. Returns ErrNotFound if not present.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Set stores a key-value pair. Overwrites any existing value.
	Set(ctx context.Context, key Key, value []byte) error

	// Delete removes a key. No error if the key does not exist.
	Delete(ctx context.Context, key Key) error

	// Clear removes every key under the given prefix and returns how many
	// were removed. An empty prefix clears the whole store.
	Clear(ctx context.Context, prefix Key) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
