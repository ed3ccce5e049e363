package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
)

// State contains all the data required to render the UI.
// This decouples the renderer from the editor and the host program.
type State struct {
	Title  string
	Source string
	Fields []Field

	// ButtonFocused is set when focus sits on the "Show model" button
	// rather than on a field.
	ButtonFocused bool

	ShowModel bool
	Format    string
	Dirty     bool
	Status    string
	Err       error

	Viewport viewport.Model
	Help     help.Model
	Keys     KeyMap
}
