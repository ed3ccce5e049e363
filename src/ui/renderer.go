package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultTitle = "Parameter editor"
	ButtonLabel  = "Show model"
)

// Render generates the full UI string based on the provided state.
func Render(s State, styles Styles) string {
	parts := []string{renderHeader(s, styles), RenderForm(s, styles), renderButton(s, styles)}
	if s.ShowModel {
		parts = append(parts, renderResult(s, styles))
	}
	parts = append(parts, renderFooter(s, styles))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(s State, styles Styles) string {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	lines := []string{styles.Header.Render(title)}
	if s.Source != "" {
		lines = append(lines, styles.Subtitle.Render(fmt.Sprintf("Source: %s", s.Source)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderForm lays out every field that has an input, in order.
func RenderForm(s State, styles Styles) string {
	var rows []string
	for _, f := range s.Fields {
		if v := f.View(); v != "" {
			rows = append(rows, v)
		}
	}
	if len(rows) == 0 {
		return styles.Form.Render(styles.Subtle.Render("No editable parameters."))
	}
	return styles.Form.Render(strings.Join(rows, "\n\n"))
}

func renderButton(s State, styles Styles) string {
	if s.ButtonFocused {
		return styles.ButtonActive.Render(ButtonLabel)
	}
	return styles.Button.Render(ButtonLabel)
}

func renderResult(s State, styles Styles) string {
	header := styles.ResultHeader.Render(fmt.Sprintf("Model (%s)", s.Format))
	return styles.Result.Render(lipgloss.JoinVertical(lipgloss.Left, header, s.Viewport.View()))
}

func renderFooter(s State, styles Styles) string {
	var status []string
	if s.Dirty {
		status = append(status, styles.Status.Render("MODIFIED"))
	}
	if s.Err != nil {
		status = append(status, styles.Error.Render(fmt.Sprintf("✗ %v", s.Err)))
	} else if s.Status != "" {
		status = append(status, styles.Success.Render(s.Status))
	}
	helpView := styles.Footer.Render(s.Help.View(s.Keys))
	if len(status) == 0 {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, status...), helpView)
}
