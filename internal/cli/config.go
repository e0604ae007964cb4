package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nosoynormal/vermutcalc/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long: `Manage the vermutcalc configuration file.

Settable keys:
  output.default_format   table, json or ndjson
  output.unit             ml or l
  output.locale           BCP 47 tag used for number formatting (en, es, ...)
  logging.level           trace, debug, info, warn, error
  logging.format          console or json
  logging.file            log file path (empty for stderr)`,
	}

	cmd.AddCommand(
		NewConfigInitCmd(),
		NewConfigGetCmd(),
		NewConfigSetCmd(),
		NewConfigListCmd(),
		NewConfigValidateCmd(),
	)

	return cmd
}

// NewConfigGetCmd creates the config get command. The printed value
// includes environment overrides.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a configuration value",
		Example: `  vermutcalc config get output.unit`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. The file is re-read
// without environment overrides so they are never persisted.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  vermutcalc config set output.unit l
  vermutcalc config set logging.level debug`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadFile(filepath.Dir(current.Path()))
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Key\tValue")
			fmt.Fprintln(w, "---\t-----")
			for _, key := range cfg.Keys() {
				value, _ := cfg.Get(key)
				fmt.Fprintf(w, "%s\t%s\n", key, value)
			}
			return w.Flush()
		},
	}
}
