// Package cli implements the robinson command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/robinson/pkg/buildinfo"
	"github.com/matzehuels/robinson/pkg/cache"
	"github.com/matzehuels/robinson/pkg/observability"
	"github.com/matzehuels/robinson/pkg/pipeline"
)

const appName = "robinson"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     Config
	cacheURL   string
	noCache    bool
	maxStackMB int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level. At debug level the observability
// hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Install()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Recognize Robinson dissimilarities",
		Long: `Robinson decides whether a dissimilarity matrix can be reordered so that
values never decrease when moving away from the diagonal, and finds such an
order in quadratic time.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/robinson/config.toml)")
	pf.StringVar(&c.cacheURL, "cache", "", "cache URL: file:///dir, redis://host, mongodb://host or none")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable result caching")
	pf.IntVar(&c.maxStackMB, "max-stack", 0, "maximum goroutine stack in MiB for very deep inputs (0 keeps the runtime default)")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies it underneath explicit flags and
// attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg

	flags := cmd.Flags()
	if !flags.Changed("cache") {
		c.cacheURL = cfg.Cache
	}
	if !flags.Changed("max-stack") {
		c.maxStackMB = cfg.MaxStackMB
	}
	if c.maxStackMB > 0 {
		debug.SetMaxStack(c.maxStackMB << 20)
		c.Logger.Debug("max stack", "mib", c.maxStackMB)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// newRunner creates a pipeline runner for CLI use. Keys are scoped by
// release so a new build never serves results of an older one.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheScope())
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	url := c.cacheURL
	if url == "" {
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Debug("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		url = cache.FileURL(dir)
	}
	return cache.Open(ctx, url)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/robinson/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/robinson/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
