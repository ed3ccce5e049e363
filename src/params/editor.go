package params

import "slices"

// Editor owns the current parameter values. Callers mutate it only through
// SetFieldValue (and Reset) and read it through FieldValue and Snapshot; the
// backing slices are never handed out.
type Editor struct {
	params []Param
	seed   []ParamValue
	values []ParamValue
	index  map[int]int
	colors []Color

	listeners map[int]func(ParamValue)
	nextID    int
}

// NewEditor seeds an editor with a copy of model.ParamValues.
func NewEditor(params []Param, model Model) *Editor {
	e := &Editor{
		params:    append([]Param(nil), params...),
		seed:      slices.Clone(model.ParamValues),
		values:    slices.Clone(model.ParamValues),
		colors:    slices.Clone(model.Colors),
		index:     make(map[int]int, len(model.ParamValues)),
		listeners: make(map[int]func(ParamValue)),
	}
	// Later duplicates win, like any map overwrite.
	for i, v := range e.values {
		e.index[v.ParamID] = i
	}
	return e
}

// Params returns the definitions in construction order.
func (e *Editor) Params() []Param {
	return append([]Param(nil), e.params...)
}

// FieldValue returns the value for paramID, or "" when the id is not tracked.
func (e *Editor) FieldValue(paramID int) string {
	i, ok := e.index[paramID]
	if !ok {
		return ""
	}
	return e.values[i].Value
}

// SetFieldValue replaces the value bound to paramID. Unknown ids are ignored;
// no entry is ever added.
func (e *Editor) SetFieldValue(paramID int, value string) {
	if _, ok := e.index[paramID]; !ok {
		return
	}
	changed := false
	for i := range e.values {
		if e.values[i].ParamID != paramID {
			continue
		}
		if e.values[i].Value != value {
			changed = true
		}
		e.values[i] = ParamValue{ParamID: paramID, Value: value}
	}
	if changed {
		e.notify(ParamValue{ParamID: paramID, Value: value})
	}
}

// Snapshot returns copies of the current values and of the colors of the most
// recently supplied model. Nil lists in the seed stay nil.
func (e *Editor) Snapshot() Model {
	return Model{ParamValues: slices.Clone(e.values), Colors: slices.Clone(e.colors)}
}

// SetModel supplies a newer model. Only its colors are adopted: the values
// were seeded at construction and belong to the editor from then on.
func (e *Editor) SetModel(model Model) {
	e.colors = slices.Clone(model.Colors)
}

// Dirty reports whether any value differs from the seed.
func (e *Editor) Dirty() bool {
	for i := range e.values {
		if e.values[i] != e.seed[i] {
			return true
		}
	}
	return false
}

// Reset restores every value to its seed.
func (e *Editor) Reset() {
	for i := range e.values {
		if e.values[i] == e.seed[i] {
			continue
		}
		e.values[i] = e.seed[i]
		e.notify(e.seed[i])
	}
}

// Subscribe registers fn to run after every change to a value. The returned
// func removes it.
func (e *Editor) Subscribe(fn func(ParamValue)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

func (e *Editor) notify(v ParamValue) {
	for id := 0; id < e.nextID; id++ {
		if fn, ok := e.listeners[id]; ok {
			fn(v)
		}
	}
}
