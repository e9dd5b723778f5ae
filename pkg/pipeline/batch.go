package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/robinson/pkg/robinson"
)

// Job is one named table of a batch.
type Job struct {
	Name  string
	Table *robinson.Table
}

// BatchResult is the outcome of one Job. Exactly one of Result and Err is
// set, except for jobs that were never started because the batch was
// cancelled, which have neither.
type BatchResult struct {
	Name   string
	Result *Result
	Err    error
}

// ResolveBatch resolves jobs with at most concurrency resolutions in flight
// (GOMAXPROCS when concurrency <= 0). Results are returned in job order.
//
// A failing job does not stop the batch; its error is recorded in its
// BatchResult. Cancelling ctx stops scheduling new jobs, and ResolveBatch
// then returns the context error along with the results gathered so far.
func (r *Runner) ResolveBatch(ctx context.Context, jobs []Job, opts Options, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	out := make([]BatchResult, len(jobs))
	for i, job := range jobs {
		out[i].Name = job.Name
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := r.Resolve(gctx, job.Table, opts)
			out[i].Result, out[i].Err = res, err
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}
