package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
)

func TestParseFieldType(t *testing.T) {
	cases := []struct {
		raw   string
		want  model.FieldType
		known bool
	}{
		{"email", model.FieldTypeEmail, true},
		{" Table ", model.FieldTypeTable, true},
		{"", model.FieldTypeText, false},
		{"currency", model.FieldTypeText, false},
	}
	for _, tc := range cases {
		got, known := model.ParseFieldType(tc.raw)
		if got != tc.want || known != tc.known {
			t.Fatalf("ParseFieldType(%q) = %q,%v want %q,%v", tc.raw, got, known, tc.want, tc.known)
		}
	}
}

func TestFieldSectionIDDefaultsToGeneral(t *testing.T) {
	if got := (model.Field{}).SectionID(); got != model.DefaultSectionID {
		t.Fatalf("expected %q, got %q", model.DefaultSectionID, got)
	}
	if got := (model.Field{Section: "items"}).SectionID(); got != "items" {
		t.Fatalf("expected items, got %q", got)
	}
}

func TestSortSectionsIsStable(t *testing.T) {
	sections := []model.Section{
		{ID: "c", Order: 2},
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
		{ID: "a2", Order: 0},
	}
	got := model.SortSections(sections)
	var ids []string
	for _, section := range got {
		ids = append(ids, section.ID)
	}
	if diff := cmp.Diff([]string{"a", "a2", "b", "c"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if sections[0].ID != "c" {
		t.Fatalf("input slice mutated: %#v", sections)
	}
}

func TestFlattenGroupedHeaders(t *testing.T) {
	headers := []model.GroupedHeader{
		{Name: "tax", Colspan: 2, SubHeaders: []string{"cgst", "sgst"}},
		{Name: "total", Colspan: 1},
	}
	want := []string{"tax_cgst", "tax_sgst", "total"}
	if diff := cmp.Diff(want, model.FlattenGroupedHeaders(headers)); diff != "" {
		t.Fatalf("flattened columns mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldValidate(t *testing.T) {
	bad := 1.5
	cases := map[string]struct {
		field   model.Field
		wantErr bool
	}{
		"valid text": {
			field: model.Field{Label: "Name", Type: model.FieldTypeText},
		},
		"missing label": {
			field:   model.Field{Type: model.FieldTypeText},
			wantErr: true,
		},
		"confidence out of range": {
			field:   model.Field{Label: "Name", Type: model.FieldTypeText, Confidence: &bad},
			wantErr: true,
		},
		"grouped columns mismatch": {
			field: model.Field{
				Label:          "Items",
				Type:           model.FieldTypeTable,
				IsGroupedTable: true,
				Columns:        []string{"tax"},
				GroupedHeaders: []model.GroupedHeader{{Name: "tax", Colspan: 2, SubHeaders: []string{"cgst", "sgst"}}},
			},
			wantErr: true,
		},
		"grouped columns match": {
			field: model.Field{
				Label:          "Items",
				Type:           model.FieldTypeTable,
				IsGroupedTable: true,
				Columns:        []string{"tax_cgst", "tax_sgst"},
				GroupedHeaders: []model.GroupedHeader{{Name: "tax", Colspan: 2, SubHeaders: []string{"cgst", "sgst"}}},
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.field.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFieldCloneIsDeep(t *testing.T) {
	conf := 0.9
	original := model.Field{
		Label:          "Items",
		Type:           model.FieldTypeTable,
		Confidence:     &conf,
		Columns:        []string{"a"},
		GroupedHeaders: []model.GroupedHeader{{Name: "a", Colspan: 1}},
	}
	clone := original.Clone()
	clone.Columns[0] = "changed"
	*clone.Confidence = 0.1
	clone.GroupedHeaders[0].Name = "changed"

	if original.Columns[0] != "a" || *original.Confidence != 0.9 || original.GroupedHeaders[0].Name != "a" {
		t.Fatalf("clone shares state with original: %#v", original)
	}
}
