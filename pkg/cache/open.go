package cache

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/robinson/pkg/errors"
)

// Open returns the cache named by rawURL:
//
//	""  or "none"                  NullCache
//	file:///path/to/dir            FileCache rooted at the path
//	redis://host:6379/0            RedisCache (rediss:// for TLS)
//	mongodb://host:27017/db        MongoCache (mongodb+srv:// too)
//
// Networked backends are pinged before Open returns.
func Open(ctx context.Context, rawURL string) (Cache, error) {
	if err := errors.ValidateCacheURL(rawURL); err != nil {
		return nil, err
	}

	switch {
	case rawURL == "" || rawURL == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(rawURL, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil || u.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "file cache URL needs a path: %q", rawURL)
		}
		fc, err := NewFileCache(u.Path)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		return wrapUnavailable(NewRedisCache(ctx, rawURL))
	default:
		return wrapUnavailable(NewMongoCache(ctx, rawURL))
	}
}

func wrapUnavailable[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "open cache")
	}
	return c, nil
}

// FileURL returns the file:// URL of a local cache directory.
func FileURL(dir string) string {
	return (&url.URL{Scheme: "file", Path: dir}).String()
}
