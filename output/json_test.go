package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	rows := []map[string]interface{}{
		{"name": "iphone 15 pro", "price": float64(999)},
		{"name": "redmi note 12", "price": float64(199)},
	}

	if err := formatter.Format([]string{"name", "price"}, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if first["name"] != "iphone 15 pro" || first["price"] != float64(999) {
		t.Errorf("line 1 = %v", first)
	}
}

func TestJSONFormatter_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	if err := formatter.Format(nil, nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty row set produced output: %q", buf.String())
	}
}
