// Package cache stores resolution results keyed by the content of the input
// matrix.
//
// A [Cache] is a plain byte store with TTLs. [FileCache] backs the CLI,
// [RedisCache] and [MongoCache] back shared deployments of the HTTP server,
// and [NullCache] disables caching. [Open] picks one from a URL.
//
// Keys are produced by a [Keyer] so that every entry point derives the same
// key for the same table and options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
//
// Get reports a miss with hit=false and a nil error; errors are reserved for
// backend failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) error
}

// TTLs for cached entries. Results are a pure function of the table, so they
// only expire to bound storage.
const (
	TTLResult   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey returns the key of a resolution result for the table with
	// the given content hash.
	ResultKey(tableHash string, opts ResultKeyOpts) string

	// ArtifactKey returns the key of a rendered artifact (e.g. a trace SVG).
	ArtifactKey(tableHash string, opts ArtifactKeyOpts) string
}

// ResultKeyOpts are the options that change a resolution result.
type ResultKeyOpts struct {
	Trace bool `json:"trace,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Kind   string `json:"kind"`
	Format string `json:"format"`
}

// DefaultKeyer produces "result:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(tableHash string, opts ResultKeyOpts) string {
	return hashKey("result", tableHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", tableHash, opts)
}
