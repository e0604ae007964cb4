package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness,
including environment overrides: output format, unit, log level and log format.`,
		Example: `  # Validate current configuration
  vermutcalc config validate

  # Validate and show the resolved values
  vermutcalc config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Configuration is valid")

	if verbose {
		fmt.Fprintf(w, "\nFile: %s", cfg.Path())
		if !cfg.Exists() {
			fmt.Fprint(w, " (not present, using defaults)")
		}
		fmt.Fprintln(w)
		for _, key := range cfg.Keys() {
			value, _ := cfg.Get(key)
			fmt.Fprintf(w, "  %s: %s\n", key, value)
		}
	}

	return nil
}
