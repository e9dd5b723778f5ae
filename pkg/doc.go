// Package pkg provides the libraries behind the robinson command.
//
// # Overview
//
// Robinson recognizes Robinson dissimilarities: square matrices whose entries
// never decrease when moving away from the diagonal. The pkg directory is
// organized into four areas:
//
//  1. [robinson] - Recognition (table, refinement, copoints, ordering)
//  2. [io] - Matrix files in JSON, TOML and plain text
//  3. [pipeline] - Orchestration (cache → resolve → trace rendering)
//  4. [cache], [server], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Matrix file / HTTP request
//	         ↓
//	    [io] package (decode labels + upper triangle)
//	         ↓
//	    [pipeline] package (cache lookup, batch scheduling)
//	         ↓
//	    [robinson] package (module decomposition + verification)
//	         ↓
//	    Permutation, verdict, decomposition trace (DOT/SVG)
//
// # Quick Start
//
//	m, _ := io.Import("distances.json")
//	res := robinson.Resolve(m.Table)
//	if res.Robinson {
//	    fmt.Println(m.Permuted(res.Permutation))
//	}
//
// # Main Packages
//
// [robinson] - Table storage of the upper triangle, the Robinson check,
// partition refinement around a pivot, copoint separation and the
// bipartition sort. [robinson/synth] generates random Robinson matrices
// for demos and tests.
//
// [pipeline] - A [pipeline.Runner] wraps resolution with result caching and
// observability hooks. [pipeline.Runner.ResolveBatch] resolves many
// matrices with bounded concurrency.
//
// [cache] - Cache backends selected by URL: file (CLI default), Redis and
// MongoDB for shared deployments, and a null cache.
//
// [server] - HTTP API exposing resolve, check and trace endpoints.
//
// [errors] - Error codes and input validation shared by every package.
//
// [robinson]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/robinson
// [robinson/synth]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/robinson/synth
// [io]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/pipeline#Runner
// [pipeline.Runner.ResolveBatch]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/pipeline#Runner.ResolveBatch
// [cache]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/robinson/pkg/errors
package pkg
