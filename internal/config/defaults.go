package config

import (
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/theme"
)

// DefaultExcludes are glob patterns never copied from the static directory.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/node_modules/**",
	"**/*.tmp",
	"**/*~",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:     "Projects",
		OutputDir: "public",
		DataFile:  "data/projects.json",
		DataPaths: append([]string(nil), project.DefaultPaths...),
		StaticDir: "static",
		Assets:    []string{"**"},
		Exclude:   append([]string(nil), DefaultExcludes...),
		WasmDir:   "wasm",
		Theme: ThemeConfig{
			Strategy:   string(theme.StrategyRandom),
			Default:    theme.DefaultName,
			StorageKey: theme.DefaultStorageKey,
			Store:      StoreLocal,
		},
		Tilt: TiltConfig{
			MaxDegrees: 2,
		},
		Server: ServerConfig{
			Port:     8080,
			Database: ".folio/folio.db",
			Reload:   true,
		},
	}
}
