package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Protocol-Lattice/lattice-params/src/params"
)

func dressState() State {
	return State{
		Fields: []Field{
			NewField("Purpose", "casual", params.TypeString, nil),
			NewField("Length", "maxi", params.TypeString, nil),
		},
		Format:   string(params.FormatJSON),
		Viewport: viewport.New(80, 12),
		Help:     help.New(),
		Keys:     DefaultKeyMap(),
	}
}

func TestRenderContainsTitleAndButton(t *testing.T) {
	output := Render(dressState(), NewStyles())

	if !strings.Contains(output, DefaultTitle) {
		t.Errorf("Expected output to contain %q", DefaultTitle)
	}
	if !strings.Contains(output, ButtonLabel) {
		t.Errorf("Expected output to contain %q", ButtonLabel)
	}
}

func TestRenderCustomTitleAndSource(t *testing.T) {
	s := dressState()
	s.Title = "Dress"
	s.Source = "dress.yaml"

	output := Render(s, NewStyles())

	if !strings.Contains(output, "Dress") || !strings.Contains(output, "Source: dress.yaml") {
		t.Errorf("Expected custom title and source, got:\n%s", output)
	}
}

func TestRenderFieldsInOrder(t *testing.T) {
	output := Render(dressState(), NewStyles())

	purpose := strings.Index(output, "Purpose")
	length := strings.Index(output, "Length")
	if purpose < 0 || length < 0 || purpose > length {
		t.Fatalf("Expected Purpose before Length, got:\n%s", output)
	}
}

func TestRenderSkipsUnknownFieldTypes(t *testing.T) {
	s := dressState()
	s.Fields = append(s.Fields, NewField("Weight", "12kg", params.ParamType("number"), nil))

	output := Render(s, NewStyles())

	if strings.Contains(output, "Weight") || strings.Contains(output, "12kg") {
		t.Errorf("Expected unknown field to be hidden, got:\n%s", output)
	}
}

func TestRenderEmptyForm(t *testing.T) {
	s := dressState()
	s.Fields = nil

	if output := Render(s, NewStyles()); !strings.Contains(output, "No editable parameters.") {
		t.Errorf("Expected empty-form notice, got:\n%s", output)
	}
}

func TestRenderModelPanelOnlyWhenShown(t *testing.T) {
	s := dressState()
	s.Viewport.SetContent(`"paramId": 1`)

	if output := Render(s, NewStyles()); strings.Contains(output, "Model (json)") {
		t.Errorf("Expected hidden model panel")
	}

	s.ShowModel = true
	output := Render(s, NewStyles())
	if !strings.Contains(output, "Model (json)") || !strings.Contains(output, `"paramId": 1`) {
		t.Errorf("Expected model panel with content, got:\n%s", output)
	}
}

func TestRenderFooterContainsQuit(t *testing.T) {
	output := Render(dressState(), NewStyles())

	if !strings.Contains(output, "ctrl+c") || !strings.Contains(output, "quit") {
		t.Errorf("Expected footer to contain quit instruction")
	}
}

func TestRenderFooterStatus(t *testing.T) {
	s := dressState()
	s.Dirty = true
	s.Status = "Values restored"

	output := Render(s, NewStyles())
	if !strings.Contains(output, "MODIFIED") || !strings.Contains(output, "Values restored") {
		t.Errorf("Expected dirty marker and status, got:\n%s", output)
	}

	s.Err = errors.New("encode failed")
	if output := Render(s, NewStyles()); !strings.Contains(output, "encode failed") {
		t.Errorf("Expected error in footer, got:\n%s", output)
	}
}
