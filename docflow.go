// Package docflow converts document templates between their flat editing
// form (sections plus fields) and the hierarchical structure handed to the
// extraction collaborator and persisted with each template.
package docflow

import (
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/extraction"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/record"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// Field aliases model.Field for callers that only import the root package.
type Field = model.Field

// Section aliases model.Section.
type Section = model.Section

// Template aliases model.Template.
type Template = model.Template

// Structure aliases the ordered hierarchical object.
type Structure = structure.Object

// EncodeTemplate builds the hierarchical structure for sections and fields.
func EncodeTemplate(sections []Section, fields []Field, options ...hierarchy.EncodeOption) *Structure {
	return hierarchy.Encode(sections, fields, options...)
}

// DecodeTemplate rebuilds sections and fields from a hierarchical structure,
// accepting a *Structure, a decoded JSON map or nil.
func DecodeTemplate(value any, options ...hierarchy.DecodeOption) (Template, error) {
	return hierarchy.Decode(value, options...)
}

// DecodeTemplateJSON parses raw JSON, keeping its key order, and decodes it.
func DecodeTemplateJSON(data []byte, options ...hierarchy.DecodeOption) (Template, error) {
	obj, err := structure.Parse(data)
	if err != nil {
		return Template{}, err
	}
	return hierarchy.Decode(obj, options...)
}

// FormatDisplayName turns a snake_case key into a Title Case label.
func FormatDisplayName(key string) string {
	return naming.FormatDisplayName(key)
}

// StripPageSuffixesDeep removes page-number artifacts from every key of a
// structure, merging keys that collide afterwards.
func StripPageSuffixesDeep(obj *Structure) *Structure {
	return hierarchy.StripPageSuffixesDeep(obj)
}

// ParseExtraction decodes an extraction collaborator response.
func ParseExtraction(data []byte, options ...hierarchy.DecodeOption) (extraction.Result, error) {
	return extraction.Parse(data, options...)
}

// NewRecord validates a draft and converts it into its persisted form.
func NewRecord(d draft.Draft, options ...record.Option) (record.Record, error) {
	return record.FromDraft(d, options...)
}
