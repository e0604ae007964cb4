package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/nosoynormal/vermutcalc/internal/blend"
)

// Column widths for the sugar classification table.
const (
	classLabelWidth = 14
	classRangeWidth = 14
	classBrixWidth  = 12

	// tableChromeHeight covers the header row, its border and one spare line.
	tableChromeHeight = 3
)

// ThresholdWarningText is shown when the blend holds less wine than the legal minimum.
const ThresholdWarningText = "In many jurisdictions a product is not considered vermouth " +
	"unless it contains at least 75 % wine."

// SyrupModelCaption describes the syrup approximation behind the volume figures.
const SyrupModelCaption = "Sugar assumed dissolved as 2:1 syrup (density ≈ 1.47 g/mL). " +
	"No correction for contraction or the real density of the blend."

// RenderTitle renders the application title box.
func RenderTitle(title string) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	return style.Render(title)
}

// RenderBlendResult renders the result panel: final volume, ABV, sweetness
// and wine share, followed by the threshold warning when it applies.
func RenderBlendResult(res blend.BlendResult, f blend.Formatter) string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	sb.WriteString(headerStyle.Render("Result"))
	sb.WriteString("\n")

	rows := [][2]string{
		{"Final volume:    ", f.Volume(res.TotalVolumeML)},
		{"Final ABV:       ", f.ABV(res.FinalABVPercent)},
		{"Sugar:           ", f.Sweetness(res)},
		{"Wine in blend:   ", f.WinePercent(res.WinePercent)},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Render(row[0]))
		sb.WriteString(valueStyle.Render(row[1]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(RenderThresholdStatus(res.BelowLegalWineThreshold))
	sb.WriteString("\n\n")
	sb.WriteString(RenderSyrupCaption())

	return sb.String()
}

// RenderThresholdStatus renders the wine-share warning banner, or a short
// confirmation when the blend meets the threshold.
func RenderThresholdStatus(below bool) string {
	if below {
		style := lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(0, 1)
		return style.Render(IconWarning + " " + ThresholdWarningText)
	}
	return lipgloss.NewStyle().Foreground(ColorOK).Render(IconOK + " Wine share meets the 75 % threshold")
}

// RenderSyrupCaption renders the syrup model note.
func RenderSyrupCaption() string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Render(SyrupModelCaption)
}

// NewSugarClassTable builds a table of the sweetness classes, highlighting
// the row matching current when it classifies.
func NewSugarClassTable(f blend.Formatter, current float64) table.Model {
	columns := []table.Column{
		{Title: "Class", Width: classLabelWidth},
		{Title: "g/L", Width: classRangeWidth},
		{Title: "°Bx", Width: classBrixWidth},
	}

	classes := blend.SugarClasses()
	rows := make([]table.Row, len(classes))
	cursor := 0
	for i, rule := range classes {
		brixRule := blend.SugarClassRule{
			LowerGPerL: rule.LowerGPerL / blend.BrixDivisor,
			UpperGPerL: rule.UpperGPerL / blend.BrixDivisor,
		}
		rows[i] = table.Row{rule.Label, f.ClassRange(rule), f.ClassRange(brixRule)}
		if rule.Contains(current) {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+tableChromeHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(ColorHighlight).Bold(true)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return t
}

// RenderFormHelp renders the key bindings for the input form.
func RenderFormHelp() string {
	return renderHelp([]string{
		"tab/↓: Next",
		"shift+tab/↑: Previous",
		"ctrl+t: Toggle mL/L",
		"enter on last field or ctrl+s: Calculate",
		"esc: Quit",
	})
}

// RenderResultHelp renders the key bindings for the result view.
func RenderResultHelp() string {
	return renderHelp([]string{
		"e: Edit inputs",
		"c: Sugar classes",
		"q: Quit",
	})
}

func renderHelp(shortcuts []string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Join(shortcuts, " | "))
}

// RenderError renders a validation or calculation error.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(ColorError)
	lines := strings.Split(err.Error(), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return style.Render("Invalid input:\n" + strings.Join(lines, "\n"))
}
