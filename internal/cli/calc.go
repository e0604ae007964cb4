package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/nosoynormal/vermutcalc/internal/blend"
	"github.com/nosoynormal/vermutcalc/internal/config"
	"github.com/nosoynormal/vermutcalc/internal/logging"
	"github.com/nosoynormal/vermutcalc/internal/recipe"
	"github.com/nosoynormal/vermutcalc/internal/tui"
)

// CalcParams holds the parameters for the calc command execution.
// Exported for testing.
type CalcParams struct {
	// Component flags, volumes in the selected unit
	WineVolume       float64
	WineABV          float64
	MacerationVolume float64
	MacerationABV    float64
	SolutionVolume   float64
	SolutionABV      float64
	Sugar            float64

	Unit           string
	RecipePath     string
	SaveRecipePath string

	// Mode flags
	Watch              bool
	Interactive        bool
	Output             string
	FailBelowThreshold bool
}

// NewCalcCmd creates the "calc" subcommand.
//
// Inputs are resolved in order: the default blend (or --recipe), then
// --unit, then any component flag set explicitly on the command line.
func NewCalcCmd() *cobra.Command {
	var params CalcParams
	defaults := recipe.Defaults()

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a vermouth blend",
		Long: `Calculate the final volume, alcohol content, sweetness and wine share of a blend.

Component volumes are read in the unit given by --unit (or output.unit from the
configuration). Sugar is counted as a 2:1 syrup when computing the final volume.

Examples:
  # Default blend
  vermutcalc calc

  # Blend in liters, JSON output
  vermutcalc calc --unit l --wine-volume 0.75 --maceration-volume 0.12 \
    --solution-volume 0.01 --output json

  # Recipe file with a flag override, recalculated on every save
  vermutcalc calc --recipe rojo.yaml --sugar 150 --watch

  # Save flag overrides as a new recipe
  vermutcalc calc --sugar 150 --save-recipe dulce.yaml

  # Fail in CI when the wine share is below 75 %
  vermutcalc calc --recipe rojo.yaml --fail-below-threshold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.WineVolume, "wine-volume", defaults.Wine.Volume, "Base wine volume")
	cmd.Flags().Float64Var(&params.WineABV, "wine-abv", defaults.Wine.ABV, "Base wine ABV in % v/v (0-20)")
	cmd.Flags().Float64Var(
		&params.MacerationVolume, "maceration-volume", defaults.Maceration.Volume, "Herbal maceration volume")
	cmd.Flags().Float64Var(
		&params.MacerationABV, "maceration-abv", defaults.Maceration.ABV, "Herbal maceration ABV in % v/v (0-96)")
	cmd.Flags().Float64Var(
		&params.SolutionVolume, "solution-volume", defaults.Solution.Volume, "Reinforcing solution volume")
	cmd.Flags().Float64Var(
		&params.SolutionABV, "solution-abv", defaults.Solution.ABV, "Reinforcing solution ABV in % v/v (0-96)")
	cmd.Flags().Float64Var(&params.Sugar, "sugar", defaults.SugarGrams, "Sugar mass in grams")

	cmd.Flags().StringVar(&params.Unit, "unit", "", "Volume unit: ml or l (default from config)")
	cmd.Flags().StringVar(&params.RecipePath, "recipe", "", "Path to a YAML recipe file")
	cmd.Flags().StringVar(&params.SaveRecipePath, "save-recipe", "",
		"Write the resolved inputs to a YAML recipe file")

	cmd.Flags().BoolVar(&params.Watch, "watch", false, "Recalculate whenever the recipe file changes")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Launch interactive TUI mode")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&params.FailBelowThreshold, "fail-below-threshold", false,
		fmt.Sprintf("Exit with code %d when the wine share is below %g %%",
			ExitCodeBelowThreshold, blend.LegalWineThresholdPercent))

	return cmd
}

// ValidateCalcFlags validates that the calc command flags are consistent.
// Exported for testing.
func ValidateCalcFlags(params *CalcParams) error {
	if params.Watch && params.RecipePath == "" {
		return errors.New("--watch requires --recipe")
	}
	if params.Watch && params.Interactive {
		return errors.New("--watch and --interactive cannot be combined")
	}
	if params.Watch && params.SaveRecipePath != "" {
		return errors.New("--save-recipe cannot be used with --watch")
	}
	if params.Output != "" && !isOutputFormat(params.Output) {
		return fmt.Errorf("unsupported output format %q (want table, json or ndjson)", params.Output)
	}
	if _, err := blend.ParseUnit(params.Unit); err != nil {
		return fmt.Errorf("--unit: %w", err)
	}
	return nil
}

func isOutputFormat(format string) bool {
	switch format {
	case config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatNDJSON:
		return true
	default:
		return false
	}
}

// executeCalc runs the calc workflow: resolve inputs, then compute once,
// watch, or hand over to the interactive form.
func executeCalc(cmd *cobra.Command, params CalcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := ValidateCalcFlags(&params); err != nil {
		return err
	}

	cfg, err := configFromCommand(cmd)
	if err != nil {
		return err
	}

	format := params.Output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !isOutputFormat(format) {
		return fmt.Errorf("unsupported output format %q in configuration", format)
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calc").
		Str("recipe", params.RecipePath).
		Str("output", format).
		Bool("watch", params.Watch).
		Bool("interactive", params.Interactive).
		Msg("starting blend calculation")

	// --unit wins over the configured unit, as --output does over default_format.
	unit := blend.Milliliters
	if !cmd.Flags().Changed("unit") {
		if unit, err = cfg.Unit(); err != nil {
			return fmt.Errorf("unsupported unit in configuration: %w", err)
		}
	}

	base := recipe.Defaults().WithUnit(unit)
	if params.RecipePath != "" {
		base, err = recipe.Load(params.RecipePath)
		if err != nil {
			return err
		}
	}

	in, err := mergeInput(cmd.Flags(), params, base)
	if err != nil {
		return err
	}

	switch {
	case params.Interactive:
		err = executeInteractiveCalc(cmd, params, in, cfg, format)
	case params.Watch:
		err = executeWatchCalc(cmd, params, in, cfg, format)
	default:
		err = executeSingleCalc(cmd, params, in, cfg, format)
	}
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calc").
		Dur("duration_ms", time.Since(start)).
		Msg("blend calculation complete")

	return nil
}

// mergeInput applies --unit and every explicitly set component flag on top
// of base.
func mergeInput(flags *pflag.FlagSet, params CalcParams, base recipe.Input) (recipe.Input, error) {
	in := base
	if flags.Changed("unit") {
		u, err := blend.ParseUnit(params.Unit)
		if err != nil {
			return recipe.Input{}, fmt.Errorf("--unit: %w", err)
		}
		in = in.WithUnit(u)
	}

	overrides := []struct {
		flag  string
		dst   *float64
		value float64
	}{
		{"wine-volume", &in.Wine.Volume, params.WineVolume},
		{"wine-abv", &in.Wine.ABV, params.WineABV},
		{"maceration-volume", &in.Maceration.Volume, params.MacerationVolume},
		{"maceration-abv", &in.Maceration.ABV, params.MacerationABV},
		{"solution-volume", &in.Solution.Volume, params.SolutionVolume},
		{"solution-abv", &in.Solution.ABV, params.SolutionABV},
		{"sugar", &in.SugarGrams, params.Sugar},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.value
		}
	}
	return in, nil
}

// executeSingleCalc computes and renders one result.
func executeSingleCalc(
	cmd *cobra.Command,
	params CalcParams,
	in recipe.Input,
	cfg *config.Config,
	format string,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	res, err := in.Compute()
	if err != nil {
		return fmt.Errorf("invalid blend input: %w", err)
	}

	log.Debug().Ctx(ctx).
		Float64("total_volume_ml", res.TotalVolumeML).
		Float64("final_abv_percent", res.FinalABVPercent).
		Str("sugar_label", res.SugarLabel).
		Bool("below_threshold", res.BelowLegalWineThreshold).
		Msg("blend computed")

	if err = saveRecipe(ctx, params.SaveRecipePath, in); err != nil {
		return err
	}

	f := blend.NewFormatter(cfg.Output.Locale, in.Unit)
	if err = renderCalcResult(cmd.OutOrStdout(), format, f, newCalcOutput(ctx, in, res)); err != nil {
		return err
	}

	if params.FailBelowThreshold && res.BelowLegalWineThreshold {
		return &ExitError{
			Code: ExitCodeBelowThreshold,
			Err: fmt.Errorf("%w: %s wine, minimum %g %%",
				ErrBelowThreshold, f.WinePercent(res.WinePercent), blend.LegalWineThresholdPercent),
		}
	}
	return nil
}

// executeWatchCalc renders the current result, then re-renders every time
// the recipe file is saved until interrupted. Load and validation errors are
// reported on stderr and the previous result stays on screen.
func executeWatchCalc(
	cmd *cobra.Command,
	params CalcParams,
	in recipe.Input,
	cfg *config.Config,
	format string,
) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	render := func(cur recipe.Input) {
		res, err := cur.Compute()
		if err != nil {
			fmt.Fprintf(errOut, "Error: invalid blend input: %v\n", err)
			return
		}
		f := blend.NewFormatter(cfg.Output.Locale, cur.Unit)
		if err = renderCalcResult(out, format, f, newCalcOutput(ctx, cur, res)); err != nil {
			log.Warn().Ctx(ctx).Err(err).Msg("rendering blend result failed")
		}
	}

	render(in)
	if format == config.OutputFormatTable {
		fmt.Fprintf(errOut, "\nWatching %s for changes (Ctrl+C to stop)\n", params.RecipePath)
	}

	updates := make(chan recipe.Input)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(updates)
		return recipe.Watch(gctx, params.RecipePath, func(loaded recipe.Input, loadErr error) {
			if loadErr != nil {
				fmt.Fprintf(errOut, "Error: %v\n", loadErr)
				return
			}
			merged, err := mergeInput(cmd.Flags(), params, loaded)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return
			}
			select {
			case updates <- merged:
			case <-gctx.Done():
			}
		})
	})

	g.Go(func() error {
		for next := range updates {
			if format == config.OutputFormatTable {
				fmt.Fprintf(out, "\n--- %s reloaded at %s ---\n\n", params.RecipePath, time.Now().Format(time.TimeOnly))
			}
			render(next)
		}
		return nil
	})

	return g.Wait()
}

// executeInteractiveCalc launches the interactive form pre-filled with in.
// When the form exits after a calculation, the last result is printed in
// the selected output format.
func executeInteractiveCalc(
	cmd *cobra.Command,
	params CalcParams,
	in recipe.Input,
	cfg *config.Config,
	format string,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("interactive mode requires a terminal")
	}

	log.Debug().Ctx(ctx).Str("unit", in.Unit.String()).Msg("launching interactive TUI")

	model := tui.NewFormModel(in, cfg.Output.Locale)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}

	formModel, ok := finalModel.(*tui.FormModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.FormModel", finalModel)
	}

	result := formModel.GetResult()
	if result == nil {
		return nil
	}
	final := formModel.GetInput()
	if err = saveRecipe(ctx, params.SaveRecipePath, final); err != nil {
		return err
	}
	f := blend.NewFormatter(cfg.Output.Locale, final.Unit)
	return renderCalcResult(cmd.OutOrStdout(), format, f, newCalcOutput(ctx, final, *result))
}

// saveRecipe writes in to path when path is set.
func saveRecipe(ctx context.Context, path string, in recipe.Input) error {
	if path == "" {
		return nil
	}
	if err := recipe.Save(path, in); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Ctx(ctx).Str("path", path).Msg("recipe saved")
	return nil
}

// newCalcOutput pairs a result with the run's trace ID.
func newCalcOutput(ctx context.Context, in recipe.Input, res blend.BlendResult) CalcOutput {
	return CalcOutput{
		RunID:  logging.GetOrGenerateTraceID(ctx),
		Unit:   in.Unit,
		Input:  in,
		Result: res,
	}
}
