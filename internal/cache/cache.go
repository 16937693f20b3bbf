// Package cache provides the TTL byte cache shared by the content
// fetcher and the knowledge client.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a TTL keyed byte store.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key derives a stable cache key from a URL or query string.
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return "truthlens:v1:" + hex.EncodeToString(hash[:])
}

// Memory is an in-process TTL cache.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

// Get retrieves a cached value.
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.c.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value under the key for the given TTL.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.c.Set(key, value, ttl)
}
