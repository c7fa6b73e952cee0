package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RuntimeEnv holds process-level overrides read from the environment.
// Command line flags take precedence over these values.
type RuntimeEnv struct {
	ConfigPath string `env:"KENNEL_CONFIG"`
	StoreKind  string `env:"KENNEL_STORE" envDefault:"memory"`
	StorePath  string `env:"KENNEL_STORE_PATH"`
	OutputDir  string `env:"KENNEL_OUTPUT_DIR"`
	LogLevel   string `env:"KENNEL_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads the runtime environment.
func ParseEnv() (RuntimeEnv, error) {
	var re RuntimeEnv
	if err := env.Parse(&re); err != nil {
		return RuntimeEnv{}, fmt.Errorf("parse env: %w", err)
	}
	return re, nil
}
