package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlgrammar/internal/config"
)

// settings is the merged view of gqlgrammar.toml and command-line flags.
type settings struct {
	cfg            config.Config
	useColor       bool
	maxDiagnostics int
}

// loadSettings reads the config file, then lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return settings{}, err
	}

	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return settings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if cfg.Output.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	return settings{
		cfg:            cfg,
		useColor:       colorEnabled(cfg.Output.Color, isTerminal(os.Stderr)),
		maxDiagnostics: cfg.Output.MaxDiagnostics,
	}, nil
}

func colorEnabled(mode string, tty bool) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return tty
	}
}
