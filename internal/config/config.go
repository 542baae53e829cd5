// Package config loads runtime defaults for the analyze CLI from the
// environment. The engine itself takes everything explicitly; this
// layer only feeds the command-line front end.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-sourced defaults. Flags override these.
type Config struct {
	Trials     int    `env:"CASELAB_TRIALS" envDefault:"10000"`
	Workers    int    `env:"CASELAB_WORKERS" envDefault:"1"`
	KeepTrials bool   `env:"CASELAB_KEEP_TRIALS" envDefault:"false"`
	LogLevel   string `env:"CASELAB_LOG_LEVEL" envDefault:"info"`
	Output     string `env:"CASELAB_OUTPUT" envDefault:"markdown"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
