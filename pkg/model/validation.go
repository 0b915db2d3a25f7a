package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errFieldLabelMissing    = errors.New("field label is required")
	errConfidenceOutOfRange = errors.New("confidence must be within [0,1]")
)

// Validate checks the structural invariants of a field. The hierarchical
// encoder does not call it: it degrades silently so the editor can always
// save. Save orchestration uses it to report problems to the user.
func (f Field) Validate() error {
	if strings.TrimSpace(f.Label) == "" {
		return fmt.Errorf("model: field %q: %w", f.ID, errFieldLabelMissing)
	}
	if !f.Type.Valid() {
		return fmt.Errorf("model: field %q: unknown type %q", f.Label, f.Type)
	}
	if f.Confidence != nil && (*f.Confidence < 0 || *f.Confidence > 1) {
		return fmt.Errorf("model: field %q: %w", f.Label, errConfidenceOutOfRange)
	}
	if f.IsGroupedTable {
		if f.Type != FieldTypeTable {
			return fmt.Errorf("model: field %q: grouped headers require a table field", f.Label)
		}
		want := FlattenGroupedHeaders(f.GroupedHeaders)
		if !equalStrings(want, f.Columns) {
			return fmt.Errorf("model: field %q: columns %v do not match grouped headers %v", f.Label, f.Columns, want)
		}
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
