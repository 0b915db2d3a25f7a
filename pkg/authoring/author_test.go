package authoring_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/authoring"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/testsupport"
)

type stubDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	areas    []string
	infos    []string

	inputPos   int
	confirmPos int
	selectPos  int
	areaPos    int
	prompts    []string
}

func (s *stubDriver) Input(_ context.Context, cfg authoring.InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	value := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg authoring.ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirms) {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	value := s.confirms[s.confirmPos]
	s.confirmPos++
	return value, nil
}

func (s *stubDriver) Select(_ context.Context, cfg authoring.SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selects) {
		return 0, fmt.Errorf("unexpected select prompt %q", cfg.Message)
	}
	value := s.selects[s.selectPos]
	s.selectPos++
	return value, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg authoring.TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.areaPos >= len(s.areas) {
		return "", nil
	}
	value := s.areas[s.areaPos]
	s.areaPos++
	return value, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func typeIndex(t *testing.T, want model.FieldType) int {
	t.Helper()
	for i, candidate := range model.FieldTypes() {
		if candidate == want {
			return i
		}
	}
	t.Fatalf("unknown field type %q", want)
	return -1
}

func TestAuthorBuildsDraft(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"Invoice",
			"Header",
			"Invoice Number",
			"Status",
			"Paid, Unpaid ,",
			"Items",
			"Line Items",
			"Description, Unit Price",
			"Tax",
			"Rate, Amount",
			"Total",
			"",
		},
		selects: []int{
			typeIndex(t, model.FieldTypeText),
			typeIndex(t, model.FieldTypeSelect),
			typeIndex(t, model.FieldTypeTable),
			typeIndex(t, model.FieldTypeTable),
		},
		confirms: []bool{
			true,  // invoice number required
			true,  // another field in header
			false, // status required
			false, // another field in header
			true,  // another section
			false, // line items required
			false, // grouped headers
			true,  // another field in items
			false, // tax required
			true,  // grouped headers
			true,  // another header
			false, // another header
			false, // another field in items
			false, // another section
		},
		areas: []string{"  Supplier invoices  "},
	}

	author := authoring.New(
		authoring.WithPromptDriver(driver),
		authoring.WithIDGenerator(testsupport.SequentialIDs()),
	)
	got, err := author.Author(context.Background())
	if err != nil {
		t.Fatalf("author: %v", err)
	}

	wantSections := []model.Section{
		{ID: "header", Name: "Header", Order: 0},
		{ID: "items", Name: "Items", Order: 1},
	}
	wantFields := []model.Field{
		{ID: "id-1", Type: model.FieldTypeText, Label: "Invoice Number", Section: "header", Required: true},
		{ID: "id-2", Type: model.FieldTypeSelect, Label: "Status", Section: "header", Options: []string{"Paid", "Unpaid"}},
		{ID: "id-3", Type: model.FieldTypeTable, Label: "Line Items", Section: "items", Columns: []string{"description", "unit_price"}},
		{
			ID:             "id-4",
			Type:           model.FieldTypeTable,
			Label:          "Tax",
			Section:        "items",
			IsGroupedTable: true,
			GroupedHeaders: []model.GroupedHeader{
				{Name: "tax", Colspan: 2, SubHeaders: []string{"rate", "amount"}},
				{Name: "total", Colspan: 1, SubHeaders: []string{}},
			},
			Columns: []string{"tax_rate", "tax_amount", "total"},
		},
	}

	if got.Name != "Invoice" || got.Description != "Supplier invoices" {
		t.Fatalf("unexpected name/description: %q / %q", got.Name, got.Description)
	}
	if diff := cmp.Diff(wantSections, got.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantFields, got.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`Template "Invoice": 2 section(s), 4 field(s)`}, driver.infos); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorDeduplicatesSectionIDs(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"Form", "Details", "Name", "Details", "Notes"},
		selects:  []int{0, 0},
		confirms: []bool{false, false, true, false, false, false},
	}
	got, err := authoring.New(
		authoring.WithPromptDriver(driver),
		authoring.WithIDGenerator(testsupport.SequentialIDs()),
	).Author(context.Background())
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	want := []model.Section{
		{ID: "details", Name: "Details", Order: 0},
		{ID: "details_2", Name: "Details", Order: 1},
	}
	if diff := cmp.Diff(want, got.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if got.Fields[1].Section != "details_2" {
		t.Fatalf("expected second field in details_2, got %q", got.Fields[1].Section)
	}
}

func TestAuthorRejectsBlankName(t *testing.T) {
	driver := &stubDriver{inputs: []string{"   "}}
	_, err := authoring.New(authoring.WithPromptDriver(driver)).Author(context.Background())
	if err == nil {
		t.Fatal("expected error for blank template name")
	}
}

type abortingDriver struct {
	stubDriver
}

func (a *abortingDriver) Select(context.Context, authoring.SelectConfig) (int, error) {
	return 0, authoring.ErrAborted
}

func TestAuthorPropagatesAbort(t *testing.T) {
	driver := &abortingDriver{stubDriver{inputs: []string{"Form", "Details", "Name"}}}
	_, err := authoring.New(authoring.WithPromptDriver(driver)).Author(context.Background())
	if !errors.Is(err, authoring.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
