// Package pipeline runs resolutions with caching, hooks and logging.
//
// The CLI and the HTTP server both resolve through a [Runner] so that cache
// keys, log records and observability events are identical across entry
// points.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Resolve(ctx, table, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Robinson, res.Permutation)
//
// Many tables can be resolved concurrently with [Runner.ResolveBatch].
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/robinson/pkg/cache"
	"github.com/matzehuels/robinson/pkg/robinson"
)

// Output formats of a rendered trace.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidTraceFormats is the set of supported trace formats.
var ValidTraceFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// Options configures one resolution.
type Options struct {
	// Trace records the decomposition tree in the result.
	Trace bool `json:"trace,omitempty"`

	// Refresh ignores cached results; the fresh result replaces them.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this call.
	Logger *log.Logger `json:"-"`
}

// Result is a resolution with the bookkeeping of the run that produced it.
type Result struct {
	robinson.Result

	// TableHash is the content hash the result is cached under.
	TableHash string `json:"table_hash"`

	// Size is the number of elements of the table.
	Size int `json:"size"`

	// Duration is the time spent in the recognizer; zero on a cache hit.
	Duration time.Duration `json:"duration_ns"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit"`
}

// TableHash returns the content hash of t. Only the upper triangle takes
// part, matching what the recognizer reads, so tables that differ only
// below the diagonal share cached results.
func TableHash(t *robinson.Table) string {
	n := t.Size()
	upper := make([]int, 0, n*(n-1)/2)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			upper = append(upper, t.Lookup(i, j))
		}
	}
	data, _ := json.Marshal(struct {
		N     int   `json:"n"`
		Upper []int `json:"upper"`
	}{n, upper})
	return cache.Hash(data)
}
