package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/robinson/pkg/cache"
	"github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/observability"
	"github.com/matzehuels/robinson/pkg/robinson"
)

// Runner encapsulates resolution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Resolve recognizes t, serving the result from the cache when possible.
//
// Cache failures are logged and otherwise ignored: a broken cache degrades
// to recomputation. The context is checked before and after the
// recognizer runs; the recognizer itself is not interruptible.
func (r *Runner) Resolve(ctx context.Context, t *robinson.Table, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	hash := TableHash(t)
	key := r.Keyer.ResultKey(hash, cache.ResultKeyOpts{Trace: opts.Trace})

	if !opts.Refresh {
		if res, ok := r.cachedResult(ctx, key, logger); ok {
			logger.Debug("result from cache", "n", t.Size(), "hash", hash[:12])
			return &Result{Result: res, TableHash: hash, Size: t.Size(), CacheHit: true}, nil
		}
	}

	observability.Resolve().OnResolveStart(ctx, t.Size())
	start := time.Now()

	var ropts []robinson.Option
	if opts.Trace {
		ropts = append(ropts, robinson.WithTrace())
	}
	res := robinson.NewResolver(t, ropts...).Resolve()

	elapsed := time.Since(start)
	err := ctx.Err()
	observability.Resolve().OnResolveComplete(ctx, t.Size(), res.Robinson, elapsed, err)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err != nil {
			logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}

	logger.Info("resolved",
		"n", t.Size(),
		"robinson", res.Robinson,
		"dropped", len(res.Dropped),
		"duration", elapsed)
	if len(res.Dropped) > 0 {
		logger.Warn("blocks could not be separated", "elements", res.Dropped)
	}

	return &Result{Result: res, TableHash: hash, Size: t.Size(), Duration: elapsed}, nil
}

func (r *Runner) cachedResult(ctx context.Context, key string, logger *log.Logger) (robinson.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "result")
		return robinson.Result{}, false
	}

	var res robinson.Result
	if err := json.Unmarshal(data, &res); err != nil {
		logger.Debug("discarding corrupt cache entry", "err", err)
		observability.Cache().OnCacheMiss(ctx, "result")
		return robinson.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, "result")
	return res, true
}

// RenderTrace resolves t with tracing and renders its decomposition tree as
// DOT or SVG. Rendered artifacts are cached separately from results since
// they depend on labels. The boolean reports a cache hit.
func (r *Runner) RenderTrace(ctx context.Context, t *robinson.Table, labels []string, format string) ([]byte, bool, error) {
	if !ValidTraceFormats[format] {
		return nil, false, errors.New(errors.ErrCodeUnsupported, "unknown trace format %q", format)
	}

	labelData, _ := json.Marshal(labels)
	key := r.Keyer.ArtifactKey(TableHash(t)+":"+cache.Hash(labelData), cache.ArtifactKeyOpts{
		Kind:   "trace",
		Format: format,
	})
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	res, err := r.Resolve(ctx, t, Options{Trace: true})
	if err != nil {
		return nil, false, err
	}

	var data []byte
	switch format {
	case FormatDOT:
		data = []byte(res.Trace.ToDOT(labels))
	case FormatSVG:
		data, err = res.Trace.RenderSVG(labels)
		if err != nil {
			return nil, false, fmt.Errorf("render trace: %w", err)
		}
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
