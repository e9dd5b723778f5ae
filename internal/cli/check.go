package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/errors"
	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/robinson"
)

// errNotRobinson makes check exit non-zero.
var errNotRobinson = errors.New(errors.ErrCodeInvalidInput, "matrix is not Robinson")

type checkOpts struct {
	perm       string
	exhaustive bool
	showMatrix bool
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Test whether a matrix is Robinson under a given order",
		Long: `Check tests the Robinson property of a matrix as stored, or under the order
given with --perm. The first violating cell is reported.

With --exhaustive, small matrices are also searched by brute force for any
compatible order, which cross-checks the resolver.`,
		Example: `  robinson check distances.json
  robinson check distances.json --perm 1,3,2
  robinson check small.txt --exhaustive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.perm, "perm", "p", "", "1-based order to check, e.g. 3,1,2")
	cmd.Flags().BoolVar(&opts.exhaustive, "exhaustive", false, fmt.Sprintf("brute-force search for a compatible order (n ≤ %d)", robinson.MaxExhaustive))
	cmd.Flags().BoolVarP(&opts.showMatrix, "show", "s", false, "print the checked matrix")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, path string, opts checkOpts) error {
	logger := loggerFromContext(ctx)

	m, err := mio.Import(path)
	if err != nil {
		return err
	}

	perm := identityOrder(m.Table.Size())
	if opts.perm != "" {
		if perm, err = parsePermutation(opts.perm); err != nil {
			return err
		}
	}
	reordered, err := m.Table.Reorder(perm)
	if err != nil {
		return err
	}

	i, j, found := reordered.Violation()
	var bad *cell
	if found {
		bad = &cell{row: i, col: j}
		printError("Not Robinson under %s", formatSequence(m.Permuted(perm), 20))
		printDetail("d(%s, %s) = %d is smaller than a neighbor closer to the diagonal",
			m.Label(perm[i-1]), m.Label(perm[j-1]), reordered.Lookup(i, j))
	} else {
		printSuccess("Robinson under %s", formatSequence(m.Permuted(perm), 20))
	}
	if opts.showMatrix {
		printMatrix("Checked order", m, perm, bad)
	}

	if opts.exhaustive {
		prog := newProgress(logger)
		order, ok, err := robinson.Exhaustive(m.Table)
		if err != nil {
			return err
		}
		logger.Debug("exhaustive search finished", "elapsed", prog.elapsed())
		if ok {
			printInfo("Exhaustive search found %s", formatSequence(m.Permuted(order), 20))
		} else {
			printInfo("Exhaustive search: no compatible order exists")
		}
	}

	if found {
		return errNotRobinson
	}
	return nil
}
