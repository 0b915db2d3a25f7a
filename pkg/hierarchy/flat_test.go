package hierarchy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/testsupport"
)

func TestDecodeFlat(t *testing.T) {
	confidence := 0.92
	items := []hierarchy.FlatField{
		{Label: "Invoice Number", Type: "text", Required: true, Confidence: &confidence, Value: "INV-7"},
		{Name: "vendor_name_page_2", Section: "Vendor Details"},
		{Label: "Vendor VAT", Type: "unknown", Section: "Vendor Details"},
		{Label: "Items", Type: "table", Columns: []string{"sku", "qty"}},
		{Type: "text"},
	}

	got := hierarchy.DecodeFlat(items, hierarchy.WithIDGenerator(testsupport.SequentialIDs()))

	wantSections := []model.Section{
		{ID: "invoice_number", Name: "Invoice Number", Order: 0},
		{ID: "vendor_details", Name: "Vendor Details", Order: 1},
		{ID: "items", Name: "Items", Order: 2},
	}
	if diff := cmp.Diff(wantSections, got.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}

	wantFields := []model.Field{
		{ID: "id-1", Type: model.FieldTypeText, Label: "Invoice Number", Value: "INV-7", Section: "invoice_number", Required: true, Confidence: &confidence},
		{ID: "id-2", Type: model.FieldTypeText, Label: "Vendor Name", Section: "vendor_details"},
		{ID: "id-3", Type: model.FieldTypeText, Label: "Vendor VAT", Section: "vendor_details"},
		{ID: "id-4", Type: model.FieldTypeTable, Label: "Items", Section: "items", Columns: []string{"sku", "qty"}},
	}
	if diff := cmp.Diff(wantFields, got.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFlatNameOnlyLabelsMatchNestedDecode(t *testing.T) {
	flat := hierarchy.DecodeFlat([]hierarchy.FlatField{{Name: "vendor_name_page_2", Section: "vendor"}})
	nested := mustDecode(t, mustParse(t, `{"vendor":{"vendor_name_page_2":null}}`))

	if len(flat.Fields) != 1 || len(nested.Fields) != 1 {
		t.Fatalf("expected one field each, got %d flat and %d nested", len(flat.Fields), len(nested.Fields))
	}
	if flat.Fields[0].Label != nested.Fields[0].Label {
		t.Fatalf("flat label %q differs from nested label %q", flat.Fields[0].Label, nested.Fields[0].Label)
	}
}
