package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how models and seed documents are serialized.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than JSON and YAML.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Document is the seed file: the field definitions and the initial model.
type Document struct {
	Params []Param `json:"params" yaml:"params"`
	Model  Model   `json:"model" yaml:"model"`
}

// ParseFormat maps a user supplied name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Next returns the other format, for toggling a display.
func (f Format) Next() Format {
	if f == FormatYAML {
		return FormatJSON
	}
	return FormatYAML
}

// LoadDocument reads a seed document from a .json, .yaml or .yml file.
func LoadDocument(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := DecodeDocument(bytes.NewReader(data), format)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument parses a seed document.
func DecodeDocument(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// Encode writes m in the requested format. JSON output is indented with two
// spaces.
func Encode(w io.Writer, m Model, format Format) error {
	m = m.withLists()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// EncodeString is Encode into a string.
func EncodeString(m Model, format Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}
