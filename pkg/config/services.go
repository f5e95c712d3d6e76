package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
