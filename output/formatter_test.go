package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func sampleRows() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": int64(1), "name": "alice", "score": 9.5},
		{"id": int64(2), "name": "bob", "score": 7.25},
		{"id": int64(3), "name": nil, "score": 0.5},
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	if err := formatter.Format(sampleRows()); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first["name"] != "alice" {
		t.Errorf("first name = %v, want alice", first["name"])
	}

	var third map[string]interface{}
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if third["name"] != nil {
		t.Errorf("third name = %v, want null", third["name"])
	}
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(nil); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(sampleRows()); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "id,name,score" {
		t.Errorf("header = %q, want sorted column names", lines[0])
	}
	if lines[1] != "1,alice,9.5" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[3] != "3,,0.5" {
		t.Errorf("null row = %q, want empty cell", lines[3])
	}
}

func TestCSVFormatterHeterogeneousRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"a": int64(1)},
		{"b": "two"},
	}
	if err := NewCSVFormatter(&buf).Format(rows); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "a,b" {
		t.Errorf("header = %q, want union of columns", lines[0])
	}
	if lines[1] != "1," || lines[2] != ",two" {
		t.Errorf("rows = %q, %q, want missing cells empty", lines[1], lines[2])
	}
}

func TestCSVFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(nil); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleRows()); err != nil {
		t.Fatalf("Format error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"id", "name", "score", "alice", "bob", "9.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{int64(-5), "-5"},
		{uint64(5), "5"},
		{3.5, "3.5"},
		{true, "true"},
		{[]interface{}{int64(1), int64(2)}, "[1 2]"},
	}

	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
