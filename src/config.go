package src

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Protocol-Lattice/lattice-params/src/params"
)

// Config is read from the environment; command-line flags override it.
type Config struct {
	File        string `env:"PARAMS_FILE"`
	Format      string `env:"PARAMS_FORMAT"        envDefault:"json"`
	AltScreen   bool   `env:"PARAMS_ALT_SCREEN"    envDefault:"true"`
	LogFile     string `env:"PARAMS_LOG_FILE"`
	PrintOnExit bool   `env:"PARAMS_PRINT_ON_EXIT"`
	Plain       bool   `env:"PARAMS_PLAIN"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SnapshotFormat validates the configured output format.
func (c Config) SnapshotFormat() (params.Format, error) {
	return params.ParseFormat(c.Format)
}

// Document loads the seed file, or the built-in defaults when none is set.
func (c Config) Document() (params.Document, error) {
	if c.File == "" {
		return params.DefaultDocument(), nil
	}
	return params.LoadDocument(c.File)
}
