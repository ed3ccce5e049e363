package params

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeJSONIndented(t *testing.T) {
	got, err := EncodeString(dressDocument().Model, FormatJSON)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}

	want := `{
  "paramValues": [
    {
      "paramId": 1,
      "value": "casual"
    },
    {
      "paramId": 2,
      "value": "maxi"
    }
  ],
  "colors": [
    {
      "colorId": 1,
      "value": "red"
    }
  ]
}
`
	if got != want {
		t.Fatalf("unexpected JSON:\n%s", got)
	}
}

func TestEncodeEmptyModelKeepsLists(t *testing.T) {
	got, err := EncodeString(Model{}, FormatJSON)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if !strings.Contains(got, `"paramValues": []`) || !strings.Contains(got, `"colors": []`) {
		t.Fatalf("expected empty lists, got:\n%s", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	got, err := EncodeString(dressDocument().Model, FormatYAML)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	for _, want := range []string{"paramValues:", "paramId: 1", "value: casual", "colors:", "colorId: 1", "value: red"} {
		if !strings.Contains(got, want) {
			t.Errorf("YAML missing %q:\n%s", want, got)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := EncodeString(Model{}, Format("toml"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"json": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, " yml ": FormatYAML}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFormatNext(t *testing.T) {
	if FormatJSON.Next() != FormatYAML || FormatYAML.Next() != FormatJSON {
		t.Fatal("Next does not toggle between json and yaml")
	}
}

func TestLoadDocumentYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dress.yaml")
	src := `params:
  - id: 1
    name: Purpose
    type: string
  - id: 2
    name: Length
    type: string
model:
  paramValues:
    - paramId: 1
      value: casual
    - paramId: 2
      value: maxi
  colors:
    - colorId: 1
      value: red
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if diff := cmp.Diff(dressDocument(), got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dress.json")
	src := `{"params":[{"id":1,"name":"Purpose","type":"string"},{"id":2,"name":"Length","type":"string"}],
"model":{"paramValues":[{"paramId":1,"value":"casual"},{"paramId":2,"value":"maxi"}],"colors":[{"colorId":1,"value":"red"}]}}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if diff := cmp.Diff(dressDocument(), got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	if _, err := LoadDocument("seed.toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDefaultDocumentMatchesDress(t *testing.T) {
	if diff := cmp.Diff(dressDocument(), DefaultDocument()); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}
