package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/errors"
	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/pipeline"
)

// traceCommand creates the trace command for rendering decomposition trees.
func (c *CLI) traceCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Render the decomposition tree of a resolution (debug tool)",
		Long: `Trace resolves a matrix while recording each level of the decomposition:
the pivot, the blocks found around it and the copoints they collapse into.
The tree is written as Graphviz DOT or rendered to SVG.`,
		Example: `  robinson trace distances.json -o tree.svg
  robinson trace distances.json --format dot | dot -Tpng > tree.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = pipeline.FormatDOT
				if ext := strings.TrimPrefix(filepath.Ext(output), "."); pipeline.ValidTraceFormats[ext] {
					format = ext
				}
			}
			if !pipeline.ValidTraceFormats[format] {
				return errors.New(errors.ErrCodeUnsupported, "unknown trace format %q (want dot or svg)", format)
			}
			return c.runTrace(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "", "dot or svg (default from --output extension, else dot)")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, path, output, format string) error {
	m, err := mio.Import(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	data, cached, err := runner.RenderTrace(ctx, m.Table, m.Labels, format)
	if err != nil {
		return err
	}
	if err := writeFile(data, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		res, err := runner.Resolve(ctx, m.Table, pipeline.Options{Trace: true})
		if err != nil {
			return err
		}
		printSuccess("Decomposition tree generated")
		printKeyValue("Levels", fmt.Sprint(res.Trace.Levels()))
		printKeyValue("Depth", fmt.Sprint(res.Trace.Depth()))
		printStats(m.Table.Size(), "", cached)
		printFile(output)
	}
	return nil
}
