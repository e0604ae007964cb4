package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nosoynormal/vermutcalc/internal/config"
	"github.com/nosoynormal/vermutcalc/internal/logging"
)

type configKey struct{}

// contextWithConfig stores the resolved configuration for subcommands.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromCommand returns the configuration resolved by the root command,
// loading it from --config-dir (or the default location) when the command
// runs on its own.
func configFromCommand(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg, nil
		}
	}
	return loadConfig(cmd)
}

// configDir resolves the configuration directory from --config-dir,
// $VERMUTCALC_HOME or the home directory.
func configDir(cmd *cobra.Command) string {
	var dir string
	if f := cmd.Flag("config-dir"); f != nil {
		dir = f.Value.String()
	}
	return config.ResolveDir(dir)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configDir(cmd))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// loadConfigOrDefault loads the configuration, warning and falling back to
// defaults when the file cannot be read.
func loadConfigOrDefault(cmd *cobra.Command) *config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		cmd.PrintErrf("Warning: %v, using defaults\n", err)
		cfg = config.Default()
		cfg.SetConfigPath(config.PathIn(configDir(cmd)))
	}
	return cfg
}

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = contextWithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("config_path", cfg.Path()).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
