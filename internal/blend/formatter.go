package blend

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders blend values with locale-aware separators.
type Formatter struct {
	printer *message.Printer
	unit    UnitPreference
}

// NewFormatter returns a Formatter for the BCP 47 locale tag and display unit.
// An empty or unparseable tag falls back to English.
func NewFormatter(locale string, unit UnitPreference) Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return Formatter{printer: message.NewPrinter(tag), unit: unit}
}

// Unit returns the display unit.
func (f Formatter) Unit() UnitPreference {
	return f.unit
}

// Float formats v with the given number of decimals and thousand separators.
// Example (en): Float(1234.567, 2) returns "1,234.57".
func (f Formatter) Float(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// Volume formats a milliliter volume in the display unit with its suffix.
func (f Formatter) Volume(ml float64) string {
	return f.Float(f.unit.FromML(ml), VolumePrecision) + " " + f.unit.Suffix()
}

// ABV formats an alcohol percentage as "% v/v".
func (f Formatter) ABV(pct float64) string {
	return f.Float(pct, ABVPrecision) + " % v/v"
}

// Brix formats a °Bx value.
func (f Formatter) Brix(bx float64) string {
	return f.Float(bx, BrixPrecision) + " °Bx"
}

// SugarGPerL formats a sugar concentration in g/L.
func (f Formatter) SugarGPerL(gPerL float64) string {
	return f.Float(gPerL, SugarGPerLPrecision) + " g/L"
}

// WinePercent formats the wine share.
func (f Formatter) WinePercent(pct float64) string {
	return f.Float(pct, WinePercentPrecision) + " %"
}

// Sweetness formats the Brix, label and concentration line,
// e.g. "10.2 °Bx → semi-dulce (102 g/L)".
func (f Formatter) Sweetness(r BlendResult) string {
	return fmt.Sprintf("%s → %s (%s)", f.Brix(r.Brix), r.SugarLabel, f.SugarGPerL(r.SugarGPerL))
}

// ClassRange formats a classification rule bound pair, e.g. "[30, 50)" or "[180, ∞)".
func (f Formatter) ClassRange(rule SugarClassRule) string {
	upper := "∞"
	if rule.UpperGPerL < maxFiniteBound {
		upper = f.Float(rule.UpperGPerL, 0)
	}
	return fmt.Sprintf("[%s, %s)", f.Float(rule.LowerGPerL, 0), upper)
}

// maxFiniteBound separates finite upper bounds from the open-ended last rule.
const maxFiniteBound = 1e9
