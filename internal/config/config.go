// Package config loads the optional HCL configuration file. Flags
// always win over file values; the file just saves retyping them.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the full file layout.
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings configures the round itself.
type GameSettings struct {
	AssetsDir     string `hcl:"assets_dir,optional"`
	Seed          *int64 `hcl:"seed,optional"`
	DealerDelayMs int    `hcl:"dealer_delay_ms,optional"`
}

// UISettings configures presentation and logging.
type UISettings struct {
	TUI      bool   `hcl:"tui,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			DealerDelayMs: 0,
		},
		UI: UISettings{
			LogLevel: "info",
		},
	}
}

// Load reads an HCL config file. A missing file is not an error: the
// defaults apply. Values absent from the file fall back to defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	return &cfg, nil
}
