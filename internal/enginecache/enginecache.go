// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package enginecache implements the recommendation-result cache (spec
// §6): get/setex over opaque byte values, keyed by the full options
// payload, expiring on TTL. BadgerCache is grounded on the teacher's
// badger-backed session store, repurposed here for TTL'd
// recommendation payloads instead of session records.
package enginecache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/movierec/internal/logging"
)

// Cache is the key-value contract the engine's cache-aside path
// depends on (spec §6). Get's second return is false on both a miss
// and a read error — the caller treats both as CACHE_MISS.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	SetEX(ctx context.Context, key string, ttl time.Duration, value []byte) error
}

// BadgerCache is an embedded, on-disk Cache. Safe for concurrent use.
type BadgerCache struct {
	db *badger.DB
}

// NewBadgerCache opens (or creates) a badger database at dir.
func NewBadgerCache(dir string) (*BadgerCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}

// Get returns the cached value and true on a hit; false on a miss or
// any read error, which is logged but never surfaced (spec §7: cache
// read failures degrade to a normal miss).
func (c *BadgerCache) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = append([]byte(nil), v...)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache read failed, treating as miss")
		}
		return nil, false
	}
	return value, true
}

// SetEX writes value under key with the given TTL.
func (c *BadgerCache) SetEX(_ context.Context, key string, ttl time.Duration, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

var _ Cache = (*BadgerCache)(nil)
