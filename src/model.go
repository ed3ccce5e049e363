package src

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Protocol-Lattice/lattice-params/src/params"
	"github.com/Protocol-Lattice/lattice-params/src/ui"
)

type model struct {
	editor *params.Editor
	ids    []int
	fields []ui.Field

	// focus indexes fields; len(fields) is the "Show model" button.
	focus int

	showModel bool
	format    params.Format
	title     string
	source    string
	status    string
	err       error

	viewport viewport.Model
	help     help.Model
	keys     ui.KeyMap
	style    ui.Styles
	width    int
	height   int

	unsubscribe func()
}

// Option tweaks the host model.
type Option func(*model)

// WithTitle replaces the header text.
func WithTitle(title string) Option {
	return func(m *model) { m.title = title }
}

// WithSource shows where the seed came from.
func WithSource(source string) Option {
	return func(m *model) { m.source = source }
}

// WithFormat sets the initial snapshot format.
func WithFormat(f params.Format) Option {
	return func(m *model) { m.format = f }
}

// NewModel mounts editor as a form: one field per definition, in order.
// Edits flow back through editor.SetFieldValue.
func NewModel(editor *params.Editor, opts ...Option) *model {
	m := &model{
		editor:   editor,
		format:   params.FormatJSON,
		viewport: viewport.New(80, 0),
		help:     help.New(),
		keys:     ui.DefaultKeyMap(),
		style:    ui.NewStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, p := range editor.Params() {
		id := p.ID
		m.ids = append(m.ids, id)
		m.fields = append(m.fields, ui.NewField(p.Name, editor.FieldValue(id), p.Type, func(v string) {
			editor.SetFieldValue(id, v)
		}))
	}
	m.unsubscribe = editor.Subscribe(m.syncField)

	m.focus = len(m.fields)
	m.setFocus(m.focusStops()[0])
	return m
}

func (m *model) Init() tea.Cmd {
	if m.focus < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Focus()
		return cmd
	}
	return nil
}

// Close detaches the model from its editor.
func (m *model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// syncField pushes an editor value into every field bound to its id.
func (m *model) syncField(v params.ParamValue) {
	for i, id := range m.ids {
		if id == v.ParamID {
			m.fields[i] = m.fields[i].Sync(m.editor.FieldValue(id))
		}
	}
}

// focusNext moves focus dir stops (+1/-1) away, wrapping around and skipping
// fields that render nothing.
func (m *model) focusNext(dir int) tea.Cmd {
	stops := m.focusStops()
	cur := 0
	for i, s := range stops {
		if s == m.focus {
			cur = i
		}
	}
	return m.setFocus(stops[(cur+dir+len(stops))%len(stops)])
}

// focusStops lists the focusable positions; the button is always last.
func (m *model) focusStops() []int {
	var stops []int
	for i, f := range m.fields {
		if f.Renders() {
			stops = append(stops, i)
		}
	}
	return append(stops, len(m.fields))
}

func (m *model) setFocus(i int) tea.Cmd {
	if m.focus < len(m.fields) {
		m.fields[m.focus] = m.fields[m.focus].Blur()
	}
	m.focus = i
	if i < len(m.fields) {
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].Focus()
		return cmd
	}
	return nil
}

func (m *model) buttonFocused() bool {
	return m.focus == len(m.fields)
}
