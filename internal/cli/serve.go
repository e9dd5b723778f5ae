package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the resolver over HTTP:

  GET  /healthz
  POST /v1/resolve   {"labels": [...], "matrix": [[...]], "trace": false}
  POST /v1/check     {"labels": [...], "matrix": [[...]], "permutation": [...]}
  POST /v1/trace     {"labels": [...], "matrix": [[...]]}  (?format=svg|dot)

Point --cache at Redis or MongoDB to share results between replicas.`,
		Example: `  robinson serve --listen :9000
  robinson serve --cache redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("listen") {
				listen = c.config.Listen
			}
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			return server.New(runner, c.Logger.WithPrefix("http")).ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8080", "listen address")

	return cmd
}
