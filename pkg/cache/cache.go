// Package cache stores solved queries so repeated requests for the same graph
// and endpoints skip the search.
//
// Three backends implement [Cache]:
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for server deployments
//
// Keys come from a [Keyer] so deployments can namespace them (see
// [ScopedKeyer]).
package cache

import (
	"context"
	"time"
)

// TTLPath is the default lifetime of a cached query result.
const TTLPath = time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// PathKey identifies the result of a query against a graph.
	PathKey(graphHash, start, end string) string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PathKey hashes the graph hash and the endpoints into "path:<sha256>".
func (DefaultKeyer) PathKey(graphHash, start, end string) string {
	return hashKey("path", graphHash, start, end)
}

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can share
// one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// If inner is nil, a DefaultKeyer is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PathKey generates a prefixed path key.
func (k *ScopedKeyer) PathKey(graphHash, start, end string) string {
	return k.prefix + k.inner.PathKey(graphHash, start, end)
}
