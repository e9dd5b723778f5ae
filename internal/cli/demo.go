package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/errors"
	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/pipeline"
	"github.com/matzehuels/robinson/pkg/robinson/synth"
)

type demoOpts struct {
	size        int
	probability float64
	seed        uint64
	showMatrix  bool
	output      string
}

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var opts demoOpts

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate, shuffle and resolve a random Robinson matrix",
		Long: `Demo builds a random matrix that is Robinson by construction, shuffles its
elements, and times the recovery of a compatible order. The verdict is
always true for a correct resolver.`,
		Example: `  robinson demo
  robinson demo --size 2000 --probability 0.01 --seed 7
  robinson demo --size 8 -o shuffled.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("size") {
				opts.size = c.config.Demo.Size
			}
			if !flags.Changed("probability") {
				opts.probability = c.config.Demo.Probability
			}
			if !flags.Changed("seed") {
				opts.seed = c.config.Demo.Seed
			}
			if !flags.Changed("show") {
				opts.showMatrix = opts.size <= 12
			}
			if opts.size < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--size must not be negative")
			}
			if opts.seed == 0 {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return c.runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 5, "number of elements")
	cmd.Flags().Float64VarP(&opts.probability, "probability", "p", synth.DefaultProbability, "per-entry increase probability")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVarP(&opts.showMatrix, "show", "s", false, "print the matrices (default for n ≤ 12)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "also write the shuffled matrix to a file")

	return cmd
}

func (c *CLI) runDemo(ctx context.Context, opts demoOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debug("demo", "n", opts.size, "p", opts.probability, "seed", opts.seed)

	base := synth.Generate(opts.size, opts.probability, opts.seed)
	shuffled, perm := synth.Shuffle(base, opts.seed+1)
	m := &mio.Matrix{Labels: mio.DefaultLabels(opts.size), Table: shuffled}

	if opts.output != "" {
		if err := mio.Export(opts.output, m); err != nil {
			return err
		}
	}
	if opts.showMatrix {
		printMatrix("Shuffled", m, identityOrder(opts.size), nil)
	}

	// The demo measures the recognizer itself, so it never reads the cache.
	runner := pipeline.NewRunner(nil, nil, logger)
	spin := startSpinner(ctx, opts.size, fmt.Sprintf("Resolving %d×%d", opts.size, opts.size))
	res, err := runner.Resolve(ctx, shuffled, pipeline.Options{})
	spin.Stop()
	if err != nil {
		return err
	}

	if res.Robinson {
		printSuccess("Recovered a compatible order")
	} else {
		printError("No compatible order found")
	}
	printKeyValue("Time", fmt.Sprintf("%s for a %d×%d matrix", res.Duration, opts.size, opts.size))
	printKeyValue("Seed", fmt.Sprint(opts.seed))
	printKeyValue("Shuffle", formatSequence(perm, 20))
	printKeyValue("Order", formatSequence(res.Permutation, 20))

	if opts.showMatrix && res.Robinson {
		printMatrix("Reordered", m, res.Permutation, nil)
	}
	if opts.output != "" {
		printFile(opts.output)
		printNextStep("Resolve it again", "robinson resolve "+opts.output)
	}

	if !res.Robinson {
		return errors.New(errors.ErrCodeInternal, "generated matrix was not recognized (seed %d)", opts.seed)
	}
	return nil
}
