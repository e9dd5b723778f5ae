package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	rerrors "github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/robinson/synth"
)

const configFile = "config.toml"

// Config holds the defaults read from the config file. Command-line flags
// override every value.
type Config struct {
	// Cache is a cache URL; empty selects the file cache in the XDG cache dir.
	Cache       string     `toml:"cache"`
	MaxStackMB  int        `toml:"max_stack_mb"`
	Concurrency int        `toml:"concurrency"`
	Listen      string     `toml:"listen"`
	Demo        DemoConfig `toml:"demo"`
}

// DemoConfig configures the demo command.
type DemoConfig struct {
	Size        int     `toml:"size"`
	Probability float64 `toml:"probability"`
	Seed        uint64  `toml:"seed"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
		Demo: DemoConfig{
			Size:        5,
			Probability: synth.DefaultProbability,
		},
	}
}

// LoadConfig reads the config file at path on top of DefaultConfig. An empty
// path means the XDG location, which may be absent; an explicit path must
// exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, rerrors.Wrap(rerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, rerrors.Wrap(rerrors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, rerrors.New(rerrors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := rerrors.ValidateCacheURL(c.Cache); err != nil {
		return err
	}
	if c.MaxStackMB < 0 || c.Concurrency < 0 || c.Demo.Size < 0 {
		return rerrors.New(rerrors.ErrCodeInvalidInput, "max_stack_mb, concurrency and demo.size must not be negative")
	}
	if c.Demo.Probability < 0 || c.Demo.Probability > 1 {
		return rerrors.New(rerrors.ErrCodeInvalidInput, "demo.probability must be within [0, 1]")
	}
	return nil
}

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config
			cfg.Cache = c.cacheURL
			cfg.MaxStackMB = c.maxStackMB
			return toml.NewEncoder(os.Stdout).Encode(cfg)
		},
	}
}
