package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nosoynormal/vermutcalc/internal/blend"
	"github.com/nosoynormal/vermutcalc/internal/config"
	"github.com/nosoynormal/vermutcalc/internal/recipe"
	"github.com/nosoynormal/vermutcalc/internal/tui"
)

// CalcOutput is the machine-readable calc result.
type CalcOutput struct {
	RunID  string               `json:"run_id"`
	Unit   blend.UnitPreference `json:"unit"`
	Input  recipe.Input         `json:"input"`
	Result blend.BlendResult    `json:"result"`
}

// renderCalcResult renders a calc result in the requested format.
func renderCalcResult(w io.Writer, format string, f blend.Formatter, out CalcOutput) error {
	switch format {
	case config.OutputFormatJSON:
		return renderCalcResultJSON(w, out)
	case config.OutputFormatNDJSON:
		return renderCalcResultNDJSON(w, out)
	default:
		return renderCalcResultTable(w, f, out)
	}
}

// renderCalcResultTable renders the result panel as plain text.
func renderCalcResultTable(w io.Writer, f blend.Formatter, out CalcOutput) error {
	res := out.Result

	fmt.Fprintln(w, "Vermouth Blend")
	fmt.Fprintln(w, "==============")
	if out.Input.Name != "" {
		fmt.Fprintf(w, "Recipe: %s\n", out.Input.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Final volume:   %s\n", f.Volume(res.TotalVolumeML))
	fmt.Fprintf(w, "Final ABV:      %s\n", f.ABV(res.FinalABVPercent))
	fmt.Fprintf(w, "Sugar:          %s\n", f.Sweetness(res))
	fmt.Fprintf(w, "Wine in blend:  %s\n", f.WinePercent(res.WinePercent))
	fmt.Fprintln(w)

	if res.BelowLegalWineThreshold {
		fmt.Fprintf(w, "Warning: %s\n", tui.ThresholdWarningText)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Note: %s\n", tui.SyrupModelCaption)
	return nil
}

// renderCalcResultJSON renders the result as indented JSON.
func renderCalcResultJSON(w io.Writer, out CalcOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderCalcResultNDJSON renders the result as a single JSON line.
func renderCalcResultNDJSON(w io.Writer, out CalcOutput) error {
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
