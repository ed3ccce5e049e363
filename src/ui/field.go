package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Protocol-Lattice/lattice-params/src/params"
)

// Field renders one parameter as a labelled input. It keeps no value of its
// own: every edit is reported through onChange and the owner pushes its value
// back with Sync.
type Field struct {
	Label string
	Type  params.ParamType

	input    textinput.Model
	onChange func(string)
	styles   Styles
}

// NewField builds the input for typ. Types other than "string" produce a
// field that renders nothing and never calls onChange.
func NewField(label, value string, typ params.ParamType, onChange func(string)) Field {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.SetValue(value)

	return Field{
		Label:    label,
		Type:     typ,
		input:    ti,
		onChange: onChange,
		styles:   NewStyles(),
	}
}

// Renders reports whether the field has an input at all.
func (f Field) Renders() bool {
	return f.Type == params.TypeString
}

func (f Field) Focused() bool {
	return f.input.Focused()
}

func (f Field) Focus() (Field, tea.Cmd) {
	if !f.Renders() {
		return f, nil
	}
	cmd := f.input.Focus()
	return f, cmd
}

func (f Field) Blur() Field {
	f.input.Blur()
	return f
}

// SetWidth sizes the input area.
func (f Field) SetWidth(w int) Field {
	f.input.Width = max(0, w-lipgloss.Width(f.input.Prompt)-1)
	return f
}

// Value is what the input currently shows.
func (f Field) Value() string {
	return f.input.Value()
}

// Sync replaces the displayed text with value when the two differ.
func (f Field) Sync(value string) Field {
	if f.input.Value() != value {
		f.input.SetValue(value)
	}
	return f
}

// Update forwards msg to the input and reports any content change.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.Renders() {
		return f, nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before && f.onChange != nil {
		f.onChange(after)
	}
	return f, cmd
}

func (f Field) View() string {
	if !f.Renders() {
		return ""
	}
	label := f.styles.Label
	if f.input.Focused() {
		label = f.styles.LabelFocused
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render(f.Label),
		f.styles.Input.Render(f.input.View()),
	)
}
