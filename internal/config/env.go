package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the env layer from environ, a list of KEY=value pairs as
// returned by os.Environ. Only the given pairs are consulted, never the
// process environment.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
