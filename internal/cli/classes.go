package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nosoynormal/vermutcalc/internal/blend"
	"github.com/nosoynormal/vermutcalc/internal/config"
)

const tabPadding = 2

// ClassEntry is the machine-readable form of a sweetness class. Upper
// bounds are omitted for the open-ended last class.
type ClassEntry struct {
	Label      string   `json:"label"`
	LowerGPerL float64  `json:"lower_g_per_l"`
	UpperGPerL *float64 `json:"upper_g_per_l,omitempty"`
	LowerBrix  float64  `json:"lower_brix"`
	UpperBrix  *float64 `json:"upper_brix,omitempty"`
}

// NewClassesCmd creates the "classes" subcommand listing the sweetness
// classes and their g/L and °Bx ranges.
func NewClassesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the sweetness classes",
		Long: `List the sweetness classes used to label a blend, with their half-open
ranges in g/L of sugar and in °Bx (g/L divided by 10).`,
		Example: `  # Table
  vermutcalc classes

  # JSON
  vermutcalc classes --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeClasses(cmd, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format (table, json, ndjson)")

	return cmd
}

func executeClasses(cmd *cobra.Command, output string) error {
	cfg, err := configFromCommand(cmd)
	if err != nil {
		return err
	}

	format := output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !isOutputFormat(format) {
		return fmt.Errorf("unsupported output format %q (want table, json or ndjson)", format)
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(classEntries())
	case config.OutputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, e := range classEntries() {
			if err = enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	default:
		unit, unitErr := cfg.Unit()
		if unitErr != nil {
			return fmt.Errorf("unsupported unit in configuration: %w", unitErr)
		}
		return renderClassesTable(w, blend.NewFormatter(cfg.Output.Locale, unit))
	}
}

// classEntries converts the class rules to their JSON form.
func classEntries() []ClassEntry {
	rules := blend.SugarClasses()
	entries := make([]ClassEntry, 0, len(rules))
	for _, rule := range rules {
		e := ClassEntry{
			Label:      rule.Label,
			LowerGPerL: rule.LowerGPerL,
			LowerBrix:  rule.LowerGPerL / blend.BrixDivisor,
		}
		if !math.IsInf(rule.UpperGPerL, 1) {
			upper := rule.UpperGPerL
			upperBrix := upper / blend.BrixDivisor
			e.UpperGPerL = &upper
			e.UpperBrix = &upperBrix
		}
		entries = append(entries, e)
	}
	return entries
}

func renderClassesTable(w io.Writer, f blend.Formatter) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Class\tg/L\t°Bx")
	fmt.Fprintln(tw, "-----\t---\t---")
	for _, rule := range blend.SugarClasses() {
		brix := blend.SugarClassRule{
			LowerGPerL: rule.LowerGPerL / blend.BrixDivisor,
			UpperGPerL: rule.UpperGPerL / blend.BrixDivisor,
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rule.Label, f.ClassRange(rule), f.ClassRange(brix))
	}

	return tw.Flush()
}
