package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/errors"
	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/pipeline"
)

type resolveOpts struct {
	format      string
	output      string
	showMatrix  bool
	refresh     bool
	concurrency int
}

const (
	outputText = "text"
	outputJSON = "json"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Find a compatible order for one or more matrices",
		Long: `Resolve reads each matrix, searches for an order of its elements under which
the matrix is Robinson, and reports the order together with the verdict.

Several files are resolved concurrently. Results are cached by matrix content.`,
		Example: `  # Resolve one matrix
  robinson resolve distances.json

  # Write the reordered matrix next to the input
  robinson resolve distances.toml -o reordered.toml

  # Machine-readable output for many files
  robinson resolve --format json data/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != outputText && opts.format != outputJSON {
				return errors.New(errors.ErrCodeInvalidInput, "unknown --format %q (want text or json)", opts.format)
			}
			if opts.output != "" && len(args) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--output needs exactly one input file")
			}
			if !cmd.Flags().Changed("concurrency") {
				opts.concurrency = c.config.Concurrency
			}
			return c.runResolve(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", outputText, "output format: text or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the reordered matrix (format from extension)")
	cmd.Flags().BoolVarP(&opts.showMatrix, "show", "s", false, "print the original and reordered matrices")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "parallel resolutions (default GOMAXPROCS)")

	return cmd
}

func (c *CLI) runResolve(ctx context.Context, paths []string, opts resolveOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	matrices := make([]*mio.Matrix, len(paths))
	jobs := make([]pipeline.Job, len(paths))
	largest := 0
	for i, path := range paths {
		m, err := mio.Import(path)
		if err != nil {
			return err
		}
		logger.Debug("loaded matrix", "path", path, "n", m.Table.Size())
		matrices[i] = m
		jobs[i] = pipeline.Job{Name: path, Table: m.Table}
		largest = max(largest, m.Table.Size())
	}

	prog := newProgress(logger)
	spin := startSpinner(ctx, largest, fmt.Sprintf("Resolving %d×%d", largest, largest))
	results, err := runner.ResolveBatch(ctx, jobs, pipeline.Options{Refresh: opts.refresh}, opts.concurrency)
	spin.Stop()
	if err != nil {
		return err
	}
	if len(paths) > 1 {
		prog.done(fmt.Sprintf("Resolved %d matrices", len(paths)))
	}

	failed := 0
	for i, br := range results {
		if br.Err != nil {
			failed++
			printError("%s: %s", br.Name, errors.UserMessage(br.Err))
			continue
		}
		if err := c.reportResolve(matrices[i], br.Name, br.Result, opts); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d matrices failed", failed, len(paths))
	}
	return nil
}

func (c *CLI) reportResolve(m *mio.Matrix, name string, res *pipeline.Result, opts resolveOpts) error {
	if opts.output != "" && res.Robinson {
		reordered, err := m.Table.Reorder(res.Permutation)
		if err != nil {
			return err
		}
		out := &mio.Matrix{Labels: m.Permuted(res.Permutation), Table: reordered}
		if err := mio.Export(opts.output, out); err != nil {
			return err
		}
	}

	if opts.format == outputJSON {
		return mio.WriteResultJSON(stdout, m, res.Result)
	}

	if res.Robinson {
		printSuccess("%s is Robinson", StyleValue.Render(filepath.Base(name)))
	} else {
		printError("%s is not Robinson", StyleValue.Render(filepath.Base(name)))
	}
	printKeyValue("Order", formatSequence(m.Permuted(res.Permutation), 40))
	if len(res.Dropped) > 0 {
		printWarning("%d elements could not be placed: %s", len(res.Dropped), formatSequence(res.Dropped, 20))
	}
	printStats(res.Size, durationLabel(res), res.CacheHit)

	if opts.showMatrix {
		printMatrix("Original", m, identityOrder(m.Table.Size()), nil)
		if res.Robinson {
			printMatrix("Reordered", m, res.Permutation, nil)
		}
	}
	if opts.output != "" && res.Robinson {
		printFile(opts.output)
	}
	return nil
}

func durationLabel(res *pipeline.Result) string {
	if res.CacheHit {
		return ""
	}
	return res.Duration.String()
}

// parsePermutation parses "3,1,2" or "3 1 2".
func parsePermutation(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	perm := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPermutation, err, "entry %q", f)
		}
		perm[i] = v
	}
	return perm, nil
}
