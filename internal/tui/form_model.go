package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nosoynormal/vermutcalc/internal/blend"
	"github.com/nosoynormal/vermutcalc/internal/recipe"
)

// FormState represents the current screen of the blend form.
type FormState int

const (
	// FormStateEditing indicates the user is entering values.
	FormStateEditing FormState = iota
	// FormStateResult indicates a result is displayed.
	FormStateResult
	// FormStateQuitting indicates the application is exiting.
	FormStateQuitting
)

// Field indexes in form order.
const (
	FieldWineVolume = iota
	FieldWineABV
	FieldMacerationVolume
	FieldMacerationABV
	FieldSolutionVolume
	FieldSolutionABV
	FieldSugar
	fieldCount
)

const (
	fieldCharLimit = 12
	fieldWidth     = 14
)

// ComputeFunc turns validated form input into a result.
type ComputeFunc func(recipe.Input) (blend.BlendResult, error)

// FormModel is the Bubble Tea model for the interactive blend calculator.
// Calculation only happens on an explicit submit, never per keystroke.
type FormModel struct {
	inputs  [fieldCount]textinput.Model
	focused int
	unit    blend.UnitPreference
	locale  string

	state     FormState
	err       error
	input     recipe.Input
	result    *blend.BlendResult
	showTable bool
	computeFn ComputeFunc
}

// NewFormModel creates a form pre-filled with initial.
func NewFormModel(initial recipe.Input, locale string) *FormModel {
	m := &FormModel{
		unit:      initial.Unit,
		locale:    locale,
		state:     FormStateEditing,
		computeFn: recipe.Input.Compute,
	}

	values := [fieldCount]float64{
		initial.Wine.Volume, initial.Wine.ABV,
		initial.Maceration.Volume, initial.Maceration.ABV,
		initial.Solution.Volume, initial.Solution.ABV,
		initial.SugarGrams,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = fieldCharLimit
		ti.Width = fieldWidth
		ti.Prompt = ""
		ti.SetValue(strconv.FormatFloat(values[i], 'f', -1, 64))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

// NewFormModelWithCompute creates a form that calls fn on submit.
func NewFormModelWithCompute(initial recipe.Input, locale string, fn ComputeFunc) *FormModel {
	m := NewFormModel(initial, locale)
	if fn != nil {
		m.computeFn = fn
	}
	return m
}

// Init starts the cursor blink.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == FormStateResult {
			return m.handleResultKey(msg)
		}
		return m.handleEditKey(msg)
	}
	return m, nil
}

func (m *FormModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.state = FormStateQuitting
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focused + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focused + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+t":
		m.ToggleUnit()
		return m, nil
	case "ctrl+s":
		m.Submit()
		return m, nil
	case "enter":
		if m.focused == fieldCount-1 {
			m.Submit()
			return m, nil
		}
		m.setFocus(m.focused + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.state = FormStateQuitting
		return m, tea.Quit
	case "e":
		m.state = FormStateEditing
		m.showTable = false
		m.setFocus(m.focused)
		return m, textinput.Blink
	case "c":
		m.showTable = !m.showTable
		return m, nil
	}
	return m, nil
}

func (m *FormModel) setFocus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focused = i
	m.inputs[i].Focus()
}

// ToggleUnit switches between milliliters and liters. Entered numbers are
// kept and reinterpreted in the new unit.
func (m *FormModel) ToggleUnit() {
	if m.unit == blend.Liters {
		m.unit = blend.Milliliters
	} else {
		m.unit = blend.Liters
	}
}

// Submit parses the fields, validates and computes. On failure the error is
// kept for display and the form stays in editing state.
func (m *FormModel) Submit() {
	in, err := m.parseInput()
	if err == nil {
		var res blend.BlendResult
		res, err = m.computeFn(in)
		if err == nil {
			m.err = nil
			m.input = in
			m.result = &res
			m.state = FormStateResult
			return
		}
	}
	m.err = err
}

func (m *FormModel) parseInput() (recipe.Input, error) {
	var values [fieldCount]float64
	var errs []string
	for i := range m.inputs {
		raw := strings.ReplaceAll(strings.TrimSpace(m.inputs[i].Value()), ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a number", fieldLabel(i, m.unit), m.inputs[i].Value()))
			continue
		}
		values[i] = v
	}
	if len(errs) > 0 {
		return recipe.Input{}, errors.New(strings.Join(errs, "\n"))
	}

	return recipe.Input{
		Unit:       m.unit,
		Wine:       recipe.Component{Volume: values[FieldWineVolume], ABV: values[FieldWineABV]},
		Maceration: recipe.Component{Volume: values[FieldMacerationVolume], ABV: values[FieldMacerationABV]},
		Solution:   recipe.Component{Volume: values[FieldSolutionVolume], ABV: values[FieldSolutionABV]},
		SugarGrams: values[FieldSugar],
	}, nil
}

// fieldLabel returns the label for field i with the volume unit suffix.
func fieldLabel(i int, u blend.UnitPreference) string {
	switch i {
	case FieldWineVolume:
		return fmt.Sprintf("Wine volume (%s)", u.Suffix())
	case FieldWineABV:
		return "Wine ABV (%)"
	case FieldMacerationVolume:
		return fmt.Sprintf("Maceration volume (%s)", u.Suffix())
	case FieldMacerationABV:
		return "Maceration ABV (%)"
	case FieldSolutionVolume:
		return fmt.Sprintf("Solution volume (%s)", u.Suffix())
	case FieldSolutionABV:
		return "Solution ABV (%)"
	case FieldSugar:
		return "Sugar (g)"
	default:
		return ""
	}
}

// fieldSection returns the section heading shown before field i, if any.
func fieldSection(i int) string {
	switch i {
	case FieldWineVolume:
		return "1) Base wine"
	case FieldMacerationVolume:
		return "2) Herbal maceration"
	case FieldSolutionVolume:
		return "3) Hydro-alcoholic reinforcing solution"
	case FieldSugar:
		return "4) Sugar (volume counted as 2:1 syrup)"
	default:
		return ""
	}
}

// View renders the current screen.
func (m *FormModel) View() string {
	if m.state == FormStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderTitle("Vermouth Blend Calculator"))
	sb.WriteString("\n\n")

	if m.state == FormStateResult && m.result != nil {
		f := blend.NewFormatter(m.locale, m.input.Unit)
		sb.WriteString(RenderBlendResult(*m.result, f))
		if m.showTable {
			sb.WriteString("\n\n")
			sb.WriteString(NewSugarClassTable(f, m.result.SugarGPerL).View())
		}
		sb.WriteString("\n\n")
		sb.WriteString(RenderResultHelp())
		return sb.String()
	}

	sb.WriteString(m.renderFields())
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(RenderError(m.err))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(RenderFormHelp())
	return sb.String()
}

func (m *FormModel) renderFields() string {
	var sb strings.Builder

	sectionStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	focusStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	sb.WriteString(labelStyle.Render("Volume unit: "))
	sb.WriteString(focusStyle.Render(m.unit.Suffix()))
	sb.WriteString("\n")

	for i := range m.inputs {
		if section := fieldSection(i); section != "" {
			sb.WriteString("\n")
			sb.WriteString(sectionStyle.Render(section))
			sb.WriteString("\n")
		}
		cursor := "  "
		style := labelStyle
		if i == m.focused {
			cursor = IconCursor + " "
			style = focusStyle
		}
		sb.WriteString(cursor)
		sb.WriteString(style.Render(fmt.Sprintf("%-26s", fieldLabel(i, m.unit))))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}
	return sb.String()
}

// State returns the current screen.
func (m *FormModel) State() FormState {
	return m.state
}

// Unit returns the selected volume unit.
func (m *FormModel) Unit() blend.UnitPreference {
	return m.unit
}

// Err returns the last submit error.
func (m *FormModel) Err() error {
	return m.err
}

// GetInput returns the input of the last successful calculation.
func (m *FormModel) GetInput() recipe.Input {
	return m.input
}

// GetResult returns the last result, or nil if none was computed.
func (m *FormModel) GetResult() *blend.BlendResult {
	return m.result
}

// SetValue replaces the text of field i.
func (m *FormModel) SetValue(i int, value string) {
	if i < 0 || i >= fieldCount {
		return
	}
	m.inputs[i].SetValue(value)
}
