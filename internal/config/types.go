package config

// ThemeStore names where the browser persists the selected palette.
type ThemeStore string

const (
	// StoreLocal keeps the palette in the browser's localStorage.
	StoreLocal ThemeStore = "local"
	// StoreServer keeps it in the dev server's preferences API.
	StoreServer ThemeStore = "server"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title       string       `yaml:"title" koanf:"title"`
	Description string       `yaml:"description" koanf:"description"`
	OutputDir   string       `yaml:"output_dir" koanf:"output_dir"`
	DataFile    string       `yaml:"data_file" koanf:"data_file"`
	DataPaths   []string     `yaml:"data_paths" koanf:"data_paths"`
	StaticDir   string       `yaml:"static_dir" koanf:"static_dir"`
	Assets      []string     `yaml:"assets" koanf:"assets"`
	Exclude     []string     `yaml:"exclude" koanf:"exclude"`
	WasmDir     string       `yaml:"wasm_dir" koanf:"wasm_dir"`
	Theme       ThemeConfig  `yaml:"theme" koanf:"theme"`
	Tilt        TiltConfig   `yaml:"tilt" koanf:"tilt"`
	Server      ServerConfig `yaml:"server" koanf:"server"`
}

// ThemeConfig holds palette selection settings.
type ThemeConfig struct {
	Strategy   string     `yaml:"strategy" koanf:"strategy"`
	Default    string     `yaml:"default" koanf:"default"`
	StorageKey string     `yaml:"storage_key" koanf:"storage_key"`
	Store      ThemeStore `yaml:"store" koanf:"store"`
}

// TiltConfig holds the card tilt settings.
type TiltConfig struct {
	MaxDegrees float64 `yaml:"max_degrees" koanf:"max_degrees"`
}

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	Database string `yaml:"database" koanf:"database"`
	AllowAll bool   `yaml:"allow_all" koanf:"allow_all"`
	Reload   bool   `yaml:"reload" koanf:"reload"`
}
