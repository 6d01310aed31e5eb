// Package config provides configuration loading for the OpenAPI upgrade tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is the prefix for configuration environment variables,
// e.g. OPENAPI_UPGRADE_LOG_LEVEL.
const envPrefix = "OPENAPI_UPGRADE_"

// configFileEnv names an optional YAML configuration file to load.
const configFileEnv = "OPENAPI_UPGRADE_CONFIG"

// Config holds the application configuration.
type Config struct {
	// LogLevel sets the zerolog level for diagnostic output.
	LogLevel string `koanf:"log_level"`
	// Format is the default output format when none is given on the
	// command line and the output extension is not recognized.
	Format string `koanf:"format"`
	// MediaType is the media type used for lifted request bodies and
	// wrapped legacy response schemas.
	MediaType string `koanf:"media_type"`
	// Validate toggles the pre- and post-conversion structural checks.
	Validate bool `koanf:"validate"`
	// Strict fails the run on any conversion or validation warning.
	Strict bool `koanf:"strict"`
}

func defaults() Config {
	return Config{
		LogLevel:  "info",
		Format:    "yaml",
		MediaType: "application/json",
		Validate:  true,
	}
}

// Load builds the configuration by layering, in order of increasing
// precedence: struct defaults, an optional YAML file named by
// OPENAPI_UPGRADE_CONFIG, OPENAPI_UPGRADE_* environment variables, and
// command-line flags.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load config defaults: %w", err)
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flag config: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
