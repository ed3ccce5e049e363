package src

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Protocol-Lattice/lattice-params/src/params"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = m.width
		formHPadding := m.style.Form.GetHorizontalFrameSize()
		for i := range m.fields {
			m.fields[i] = m.fields[i].SetWidth(m.width - formHPadding)
		}
		m.viewport.Width = m.width - m.style.Result.GetHorizontalFrameSize()
		m.layout()
		return m, nil

	case tea.MouseMsg:
		if m.showModel {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m, m.focusNext(1)

		case key.Matches(msg, m.keys.Prev):
			return m, m.focusNext(-1)

		case key.Matches(msg, m.keys.Show):
			m.showSnapshot()
			return m, nil

		case key.Matches(msg, m.keys.Hide):
			m.showModel = false
			m.layout()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.editor.Reset()
			m.status = "Values restored"
			if m.showModel {
				m.showSnapshot()
			}
			return m, nil

		case key.Matches(msg, m.keys.Format):
			m.format = m.format.Next()
			if m.showModel {
				m.showSnapshot()
			}
			return m, nil
		}

		switch msg.String() {
		case "enter":
			if m.buttonFocused() {
				m.showSnapshot()
				return m, nil
			}
			return m, m.focusNext(1)

		case "pgup", "pgdown":
			if m.showModel {
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		m.status = ""
	}

	if m.focus < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// Snapshot is the current model of the mounted editor.
func (m *model) Snapshot() params.Model {
	return m.editor.Snapshot()
}

// showSnapshot pulls a fresh snapshot into the model panel.
func (m *model) showSnapshot() {
	text, err := params.EncodeString(m.editor.Snapshot(), m.format)
	m.err = err
	if err != nil {
		return
	}
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
	m.showModel = true
	m.layout()
}

// layout gives the model panel whatever height the rest of the view leaves.
func (m *model) layout() {
	if m.height == 0 {
		m.viewport.Height = m.viewport.TotalLineCount()
		return
	}
	state := m.state()
	state.ShowModel = false
	used := lipgloss.Height(m.render(state))
	// header line plus the result border
	chrome := 1 + m.style.Result.GetVerticalFrameSize()
	m.viewport.Height = max(3, m.height-used-chrome)
}
