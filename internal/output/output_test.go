package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Test data structure
type testReport struct {
	Number    int               `json:"number" yaml:"number"`
	Title     string            `json:"title" yaml:"title"`
	Resources map[string]string `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// --- NewWriter Factory Tests ---

func TestNewWriter_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"json", FormatJSON},
		{"jsonl", FormatJSONL},
		{"yaml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w, err := NewWriter(buf, tt.format)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if w == nil {
				t.Fatal("NewWriter() returned nil writer")
			}
		})
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := NewWriter(buf, Format("unsupported"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("error = %v, want mention of unsupported format", err)
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter_SingleItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf)

	report := testReport{Number: 42, Title: "Coded triangle numbers"}
	if err := w.Write(report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// A single item is written directly, not as an array.
	var got testReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, buf.String())
	}
	if got.Number != 42 || got.Title != "Coded triangle numbers" {
		t.Errorf("got %+v, want %+v", got, report)
	}
}

func TestJSONWriter_MultipleItems(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf)

	for i := 1; i <= 3; i++ {
		if err := w.Write(testReport{Number: i}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []testReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

// --- JSONLWriter Tests ---

func TestJSONLWriter_OneLinePerItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	for i := 1; i <= 2; i++ {
		if err := w.Write(testReport{Number: i}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	for _, line := range lines {
		var got testReport
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Errorf("line is not valid JSON: %v\n%s", err, line)
		}
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter_SingleItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	report := testReport{
		Number:    15,
		Title:     "Lattice paths",
		Resources: map[string]string{"p015.png": "https://projecteuler.net/images/p015.png"},
	}
	if err := w.Write(report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got testReport
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if got.Number != 15 || got.Resources["p015.png"] == "" {
		t.Errorf("got %+v, want %+v", got, report)
	}
}
