// Package config loads and saves the vermutcalc configuration file.
//
// The file lives at $VERMUTCALC_HOME/config.yaml (default ~/.vermutcalc).
// Values are resolved in order: built-in defaults, config file, environment.
// CLI flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/nosoynormal/vermutcalc/internal/blend"
)

// Environment variable names.
const (
	EnvHome         = "VERMUTCALC_HOME"
	EnvLogLevel     = "VERMUTCALC_LOG_LEVEL"
	EnvLogFormat    = "VERMUTCALC_LOG_FORMAT"
	EnvOutputFormat = "VERMUTCALC_OUTPUT_FORMAT"
	EnvUnit         = "VERMUTCALC_UNIT"
)

// Output format names.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

const (
	configFileName = "config.yaml"
	defaultDirName = ".vermutcalc"
)

// Config is the root configuration document.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Unit          string `yaml:"unit"`
	Locale        string `yaml:"locale"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: OutputFormatTable,
			Unit:          blend.Milliliters.String(),
			Locale:        "en",
		},
		Logging: LoggingConfig{
			Level:  zerolog.InfoLevel.String(),
			Format: "console",
		},
	}
}

// ResolveDir returns the configuration directory: flagValue if set, then
// $VERMUTCALC_HOME, then ~/.vermutcalc.
func ResolveDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvHome); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// Load reads dir/config.yaml over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads dir/config.yaml over the defaults without environment
// overrides. Use it when the result will be saved back to disk.
func LoadFile(dir string) (*Config, error) {
	cfg := Default()
	cfg.configPath = PathIn(dir)

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", cfg.configPath, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, err)
		}
	}
	return cfg, nil
}

// PathIn returns the config file path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, configFileName)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvUnit); v != "" {
		c.Output.Unit = v
	}
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.configPath
}

// SetConfigPath overrides where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Exists reports whether the config file is present on disk.
func (c *Config) Exists() bool {
	_, err := os.Stat(c.configPath)
	return err == nil
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat))
	}
	if _, err := c.Unit(); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: invalid level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// Unit returns the parsed output unit. An empty value means milliliters.
func (c *Config) Unit() (blend.UnitPreference, error) {
	u, err := blend.ParseUnit(c.Output.Unit)
	if err != nil {
		return blend.Milliliters, fmt.Errorf("output.unit: %w", err)
	}
	return u, nil
}

// fields maps dotted keys to their backing string fields.
func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"output.default_format": &c.Output.DefaultFormat,
		"output.unit":           &c.Output.Unit,
		"output.locale":         &c.Output.Locale,
		"logging.level":         &c.Logging.Level,
		"logging.format":        &c.Logging.Format,
		"logging.file":          &c.Logging.File,
	}
}

// Keys returns all settable dotted keys in sorted order.
func (c *Config) Keys() []string {
	fields := c.fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for a dotted key such as "output.unit".
func (c *Config) Get(key string) (string, error) {
	ptr, ok := c.fields()[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return *ptr, nil
}

// Set assigns a dotted key and validates the result. On validation failure
// the previous value is restored.
func (c *Config) Set(key, value string) error {
	ptr, ok := c.fields()[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	prev := *ptr
	*ptr = value
	if err := c.Validate(); err != nil {
		*ptr = prev
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
