package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nosoynormal/vermutcalc/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the vermutcalc CLI.
// It resolves configuration, wires up logging and the per-run trace ID,
// and registers the calc, classes, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "vermutcalc",
		Short: "Vermouth blend calculator",
		Long: `vermutcalc computes the final volume, alcohol content, sweetness class and
wine share of a vermouth blend made from base wine, an herbal maceration,
a hydro-alcoholic reinforcing solution and sugar.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd, loadConfigOrDefault(cmd))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "configuration directory (default $VERMUTCALC_HOME or ~/.vermutcalc)")
	cmd.AddCommand(NewCalcCmd(), NewClassesCmd(), newConfigCmd(), newVersionCmd())

	return cmd
}

const rootCmdExample = `  # Calculate the default blend (750 mL wine, 120 mL maceration, 10 mL solution, 100 g sugar)
  vermutcalc calc

  # Calculate in liters with a sweeter recipe
  vermutcalc calc --unit l --wine-volume 0.75 --sugar 150

  # Calculate from a recipe file and recalculate on every save
  vermutcalc calc --recipe rojo.yaml --watch

  # Fill in the blend interactively
  vermutcalc calc --interactive

  # Show the sweetness classes
  vermutcalc classes

  # Set the default output format
  vermutcalc config set output.default_format json`
