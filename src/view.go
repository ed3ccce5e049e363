package src

import (
	"github.com/Protocol-Lattice/lattice-params/src/ui"
)

func (m *model) View() string {
	return m.render(m.state())
}

func (m *model) render(s ui.State) string {
	return ui.Render(s, m.style)
}

// state captures what the renderer needs from the model.
func (m *model) state() ui.State {
	return ui.State{
		Title:         m.title,
		Source:        m.source,
		Fields:        m.fields,
		ButtonFocused: m.buttonFocused(),
		ShowModel:     m.showModel,
		Format:        string(m.format),
		Dirty:         m.editor.Dirty(),
		Status:        m.status,
		Err:           m.err,
		Viewport:      m.viewport,
		Help:          m.help,
		Keys:          m.keys,
	}
}
