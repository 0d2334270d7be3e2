package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"laydeck/internal/logging"
	"laydeck/internal/paths"
	"laydeck/internal/report"
	"laydeck/internal/services/layout"
)

// ConfigFile is the name of the configuration file inside the home directory.
const ConfigFile = "config.yaml"

// Environment variables that override the configuration file.
const (
	EnvBaseDir  = "LAYDECK_BASE_DIR"
	EnvLogLevel = "LAYDECK_LOG_LEVEL"
	EnvWorkers  = "LAYDECK_WORKERS"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-"` // config directory, e.g. $HOME/.laydeck

	Labware  LabwareConfig  `yaml:"labware"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  logging.Config `yaml:"logging"`
	Report   ReportConfig   `yaml:"report"`
	Watch    WatchConfig    `yaml:"watch"`
}

// LabwareConfig locates labware definition files.
type LabwareConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// PipelineConfig tunes layout processing.
type PipelineConfig struct {
	Workers int `yaml:"workers"`
}

// ReportConfig selects the report format and destination.
type ReportConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"` // empty: next to the layout file
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultHome returns ~/.laydeck, or .laydeck when the home directory is
// unknown.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".laydeck"
	}
	return filepath.Join(home, ".laydeck")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Home:     DefaultHome(),
		Labware:  LabwareConfig{BaseDir: paths.DefaultBaseDir},
		Pipeline: PipelineConfig{Workers: layout.DefaultWorkers},
		Logging:  logging.Config{Level: "info", Format: "console"},
		Report:   ReportConfig{Format: string(report.Markdown)},
		Watch:    WatchConfig{Debounce: "500ms"},
	}
}

// ConfigPath returns the configuration file path for home.
func ConfigPath(home string) string {
	return filepath.Join(home, ConfigFile)
}

// Load reads the configuration at path over the defaults and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvBaseDir); v != "" {
		c.Labware.BaseDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Pipeline.Workers = n
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1, got %d", c.Pipeline.Workers)
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// ReportFormat returns the parsed report format, Markdown if unset.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Report.Format)
	if err != nil {
		return report.Markdown
	}
	return f
}

// DebounceDuration parses watch.debounce. An empty value means no debounce.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("watch.debounce must not be negative, got %s", d)
	}
	return d, nil
}
