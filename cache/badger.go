// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"
)

// Badger is a Store implementation backed by BadgerDB v4.
type Badger struct {
	db *badger.DB
}

var _ Store = (*Badger)(nil)

// BadgerOptions configures the BadgerDB store.
type BadgerOptions struct {
	// Dir is the directory for BadgerDB data files.
	// Required unless InMemory is set.
	Dir string

	// InMemory runs BadgerDB in memory-only mode (no disk persistence).
	InMemory bool

	// Logger receives badger's warnings and errors. If nil, they are
	// discarded.
	Logger *slog.Logger
}

// NewBadger opens (or creates) a BadgerDB-backed Store.
func NewBadger(bopts BadgerOptions) (*Badger, error) {
	if !bopts.InMemory && bopts.Dir == "" {
		return nil, errors.New("cache: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(bopts.Dir)
	if bopts.InMemory {
		dbOpts = dbOpts.WithDir("").WithValueDir("").WithInMemory(true)
	}
	logger := bopts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dbOpts = dbOpts.WithLogger(slogLogger{logger.With("component", "badger")})

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger: %w", err)
	}

	return &Badger{db: db}, nil
}

// Get implements Store.
func (b *Badger) Get(_ context.Context, key Key) ([]byte, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key.String()))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}

	return val, err
}

// Set implements Store.
func (b *Badger) Set(_ context.Context, key Key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key.String()), value)
	})
}

// Delete implements Store.
func (b *Badger) Delete(_ context.Context, key Key) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key.String()))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}

	return err
}

// Clear implements Store.
func (b *Badger) Clear(ctx context.Context, prefix Key) (int, error) {
	var p []byte
	if len(prefix) > 0 {
		// trailing separator so "a:b" does not match "a:bc"
		p = []byte(prefix.String() + ":")
	}

	// 1. Collect matching keys
	var keys [][]byte
	err := b.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.PrefetchValues = false
		iterOpts.Prefix = p
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// 2. Delete them in one batch
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err = wb.Delete(k); err != nil {
			return 0, err
		}
	}
	if err = wb.Flush(); err != nil {
		return 0, err
	}

	return len(keys), nil
}

// Close implements Store.
func (b *Badger) Close() error {
	return b.db.Close()
}

// slogLogger adapts a slog.Logger to badger.Logger. Badger's info and debug
// chatter is dropped.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Errorf(f string, v ...interface{})   { s.l.Error(fmt.Sprintf(f, v...)) }
func (s slogLogger) Warningf(f string, v ...interface{}) { s.l.Warn(fmt.Sprintf(f, v...)) }
func (slogLogger) Infof(string, ...interface{})          {}
func (slogLogger) Debugf(string, ...interface{})         {}
