package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/folio/internal/theme"
)

// DefaultPath is the config file folio looks for in the working directory.
const DefaultPath = ".folio.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A .env file next to the config
// file is read first; it never replaces variables already set.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOLIO_OUTPUT_DIR -> output_dir,
	// FOLIO_THEME__STRATEGY -> theme.strategy.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validStores is the set of recognized theme store values.
var validStores = map[ThemeStore]bool{
	StoreLocal:  true,
	StoreServer: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if len(c.DataPaths) == 0 {
		return fmt.Errorf("data_paths must name at least one path")
	}

	if !theme.Strategy(c.Theme.Strategy).Valid() {
		return fmt.Errorf("invalid theme.strategy %q: must be one of random, weighted", c.Theme.Strategy)
	}
	if _, ok := theme.DefaultTable().Lookup(c.Theme.Default); !ok {
		return fmt.Errorf("invalid theme.default %q: must be one of %s",
			c.Theme.Default, strings.Join(theme.DefaultTable().Names(), ", "))
	}
	if c.Theme.StorageKey == "" {
		return fmt.Errorf("theme.storage_key is required")
	}
	if !validStores[c.Theme.Store] {
		return fmt.Errorf("invalid theme.store %q: must be one of local, server", c.Theme.Store)
	}

	if c.Tilt.MaxDegrees <= 0 || c.Tilt.MaxDegrees > 45 {
		return fmt.Errorf("tilt.max_degrees must be in (0, 45]")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}
