package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// MaxPresets is the number of preset queries reachable from the number keys
const MaxPresets = 9

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Endpoint EndpointSettings `toml:"endpoint"`
	UI       UISettings       `toml:"ui"`
	Log      LogSettings      `toml:"log"`
}

// EndpointSettings describes where the search service lives
type EndpointSettings struct {
	BaseURL       string   `toml:"base_url"`
	SearchPath    string   `toml:"search_path"`
	QueryParam    string   `toml:"query_param"`
	Timeout       Duration `toml:"timeout"` // zero means wait indefinitely
	RatePerSecond float64  `toml:"rate_per_second"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Presets   []string `toml:"presets"`
	AltScreen bool     `toml:"alt_screen"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string ("1.5s") in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "empsearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, or defaults if absent
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate normalizes the configuration in place and reports the first
// setting that cannot be used.
func (c *Config) Validate() error {
	base, err := url.Parse(c.Endpoint.BaseURL)
	if err != nil {
		return fmt.Errorf("endpoint.base_url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("endpoint.base_url: unsupported scheme %q", base.Scheme)
	}
	if base.Host == "" {
		return fmt.Errorf("endpoint.base_url: missing host")
	}

	c.Endpoint.QueryParam = strings.TrimSpace(c.Endpoint.QueryParam)
	if c.Endpoint.QueryParam == "" {
		return fmt.Errorf("endpoint.query_param must not be empty")
	}
	if c.Endpoint.SearchPath != "" && !strings.HasPrefix(c.Endpoint.SearchPath, "/") {
		c.Endpoint.SearchPath = "/" + c.Endpoint.SearchPath
	}
	if c.Endpoint.Timeout.Duration < 0 {
		return fmt.Errorf("endpoint.timeout must not be negative")
	}
	if c.Endpoint.RatePerSecond < 0 {
		return fmt.Errorf("endpoint.rate_per_second must not be negative")
	}

	presets := make([]string, 0, len(c.UI.Presets))
	for _, p := range c.UI.Presets {
		if p = strings.TrimSpace(p); p != "" {
			presets = append(presets, p)
		}
	}
	if len(presets) > MaxPresets {
		presets = presets[:MaxPresets]
	}
	c.UI.Presets = presets

	return nil
}

// EndpointURL returns the full search URL without the query string
func (c *Config) EndpointURL() string {
	return strings.TrimRight(c.Endpoint.BaseURL, "/") + c.Endpoint.SearchPath
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Endpoint: EndpointSettings{
			BaseURL:       "http://localhost:8080",
			SearchPath:    "/api/employees/search",
			QueryParam:    "q",
			RatePerSecond: 5,
		},
		UI: UISettings{
			Presets: []string{
				"Python developers",
				"React 5+ years",
				"Backend in Engineering",
				"Data scientists",
			},
			AltScreen: true,
		},
		Log: LogSettings{
			File:  "empsearch.log",
			Level: "info",
		},
	}
}
