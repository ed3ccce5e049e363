// Package params holds the parameter editor: definitions, the values bound to
// them, and the pass-through colors that travel with every model snapshot.
package params

// ParamType names the kind of input a parameter is edited with.
type ParamType string

const (
	TypeString ParamType = "string"
)

// Param describes one editable field.
type Param struct {
	ID   int       `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Type ParamType `json:"type" yaml:"type"`
}

// ParamValue is the current value bound to a Param id.
type ParamValue struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Color is carried through the editor untouched.
type Color struct {
	ColorID int    `json:"colorId" yaml:"colorId"`
	Value   string `json:"value" yaml:"value"`
}

// Model is both the editor seed and the shape of its snapshots.
type Model struct {
	ParamValues []ParamValue `json:"paramValues" yaml:"paramValues"`
	Colors      []Color      `json:"colors" yaml:"colors"`
}

// withLists returns a copy of m whose nil slices are empty ones, so encoded
// models always carry both lists.
func (m Model) withLists() Model {
	return Model{
		ParamValues: append([]ParamValue{}, m.ParamValues...),
		Colors:      append([]Color{}, m.Colors...),
	}
}
