package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosoynormal/vermutcalc/internal/blend"
	"github.com/nosoynormal/vermutcalc/internal/logging"
)

// clearEnv unsets every override so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvHome, EnvLogLevel, EnvLogFormat, EnvOutputFormat, EnvUnit} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, OutputFormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "ml", cfg.Output.Unit)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Path())
	assert.False(t, cfg.Exists())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `output:
  unit: l
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "l", cfg.Output.Unit)
	unit, err := cfg.Unit()
	require.NoError(t, err)
	assert.Equal(t, blend.Liters, unit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, OutputFormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: [unclosed"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvOutputFormat, "json")
	t.Setenv(EnvUnit, "litros")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, OutputFormatJSON, cfg.Output.DefaultFormat)
	unit, err := cfg.Unit()
	require.NoError(t, err)
	assert.Equal(t, blend.Liters, unit)
}

func TestConfig_UnitRejectsUnknown(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUnit, "gallons")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	_, err = cfg.Unit()
	require.ErrorIs(t, err, blend.ErrInvalidUnit)
	assert.Contains(t, err.Error(), "output.unit")
	assert.Error(t, cfg.Validate())
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutputFormat, "json")
	dir := t.TempDir()

	cfg, err := LoadFile(dir)
	require.NoError(t, err)
	assert.Equal(t, OutputFormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, PathIn(dir), cfg.Path())
}

func TestResolveDir(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "/explicit", ResolveDir("/explicit"))

	t.Setenv(EnvHome, "/from-env")
	assert.Equal(t, "/from-env", ResolveDir(""))
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("output.unit", "l"))
	require.NoError(t, cfg.Set("output.locale", "es"))
	require.NoError(t, cfg.Save())
	assert.True(t, cfg.Exists())

	info, err := os.Stat(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "l", reloaded.Output.Unit)
	assert.Equal(t, "es", reloaded.Output.Locale)
}

func TestSave_NoPath(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Save())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }, "output.default_format"},
		{"bad unit", func(c *Config) { c.Output.Unit = "gallon" }, "output.unit"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("output.default_format")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatTable, v)

	_, err = cfg.Get("nope")
	require.Error(t, err)

	err = cfg.Set("output.unit", "barrels")
	require.Error(t, err)
	assert.Equal(t, "ml", cfg.Output.Unit, "failed Set must restore the previous value")

	require.Error(t, cfg.Set("missing.key", "x"))
	assert.Contains(t, cfg.Keys(), "logging.file")
	assert.Len(t, cfg.Keys(), 6)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/vermutcalc.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/vermutcalc.log", got.File)
}
