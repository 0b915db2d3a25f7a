package naming_test

import (
	"testing"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
)

func TestFormatDisplayName(t *testing.T) {
	cases := map[string]string{
		"issuing_authority_page_2": "Issuing Authority",
		"total_amount":             "Total Amount",
		"Invoice Page 3":           "Invoice",
		"invoice-page12":           "Invoice",
		"vendor_PAGE_1":            "Vendor",
		"gstIN_number":             "GstIN Number",
		"  spaced__out  ":          "Spaced Out",
		"page_2":                   "Page 2",
		"summary_page_1_page_2":    "Summary",
		"":                         "",
	}
	for input, want := range cases {
		if got := naming.FormatDisplayName(input); got != want {
			t.Fatalf("FormatDisplayName(%q) = %q want %q", input, got, want)
		}
	}
}

func TestStripPageSuffix(t *testing.T) {
	cases := map[string]string{
		"invoice_page_1":       "invoice",
		"Invoice Page 1":       "Invoice",
		"table_page 4":         "table",
		"header_page_1_page_2": "header",
		"_page_1":              "_page_1",
		"pages":                "pages",
		"paged_total":          "paged_total",
	}
	for input, want := range cases {
		got := naming.StripPageSuffix(input)
		if got != want {
			t.Fatalf("StripPageSuffix(%q) = %q want %q", input, got, want)
		}
		if again := naming.StripPageSuffix(got); again != got {
			t.Fatalf("StripPageSuffix not idempotent for %q: %q then %q", input, got, again)
		}
	}
}

func TestStripPageInfix(t *testing.T) {
	cases := map[string]string{
		"_items_page_1_fieldOrder":                    "_items_fieldOrder",
		"_items_page_2_line_items_page_2_columnOrder": "_items_line_items_columnOrder",
		"_a_page_1_page_2_fieldOrder":                 "_a_fieldOrder",
		"_items_page_12x_fieldOrder":                  "_items_page_12x_fieldOrder",
		"_items_fieldOrder":                           "_items_fieldOrder",
	}
	for input, want := range cases {
		if got := naming.StripPageInfix(input); got != want {
			t.Fatalf("StripPageInfix(%q) = %q want %q", input, got, want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Line Items":       "line_items",
		"Amount":           "amount",
		"  GST (18%) ":     "gst_18",
		"already_snake":    "already_snake",
		"Café Name":        "café_name",
		"---":              "field",
		"Total - Amount 2": "total_amount_2",
	}
	for input, want := range cases {
		if got := naming.NormalizeKey(input); got != want {
			t.Fatalf("NormalizeKey(%q) = %q want %q", input, got, want)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	cases := map[string]string{
		"Name":                         "Name",
		"<b>Total</b> Amount":          "Total Amount",
		"Terms & Conditions":           "Terms & Conditions",
		"<script>alert(1)</script>Tax": "Tax",
		"  padded  ":                   "padded",
	}
	for input, want := range cases {
		if got := naming.SanitizeLabel(input); got != want {
			t.Fatalf("SanitizeLabel(%q) = %q want %q", input, got, want)
		}
	}
}
