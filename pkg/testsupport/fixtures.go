package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// MustLoadStructure reads a hierarchical structure fixture, failing the test
// on error.
func MustLoadStructure(t *testing.T, path string) *structure.Object {
	t.Helper()

	obj, err := LoadStructure(path)
	if err != nil {
		t.Fatalf("load structure: %v", err)
	}
	return obj
}

// LoadStructure reads a JSON fixture into an ordered object, returning an
// error for callers managing setup outside of *testing.T.
func LoadStructure(path string) (*structure.Object, error) {
	if path == "" {
		return nil, errors.New("testsupport: structure path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read structure: %w", err)
	}
	obj, err := structure.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse structure: %w", err)
	}
	return obj, nil
}

// MustLoadTemplate loads a JSON fixture into a Template.
func MustLoadTemplate(t *testing.T, path string) model.Template {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	var out model.Template
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal template: %v", err)
	}
	return out
}

// AssertJSONGolden compares got against the golden file at path after
// compacting both sides, so indentation in the golden does not matter but
// key order does. With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertJSONGolden(t *testing.T, path string, got []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") != "" {
		var indented bytes.Buffer
		if err := json.Indent(&indented, got, "", "  "); err != nil {
			t.Fatalf("indent golden: %v", err)
		}
		indented.WriteByte('\n')
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, indented.Bytes(), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want := MustReadGolden(t, path)
	if diff := cmp.Diff(Compact(t, want), Compact(t, got)); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// Compact strips insignificant whitespace from a JSON document.
func Compact(t *testing.T, data []byte) string {
	t.Helper()

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		t.Fatalf("compact json: %v", err)
	}
	return buf.String()
}

// MustMarshal encodes value as JSON.
func MustMarshal(t *testing.T, value any) []byte {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// SequentialIDs returns an id generator yielding id-1, id-2, ... so decoded
// templates are comparable.
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
