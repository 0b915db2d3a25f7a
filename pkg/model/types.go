package model

import "strings"

// FieldType enumerates the kinds of data a template field can hold.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeEmail     FieldType = "email"
	FieldTypePhone     FieldType = "phone"
	FieldTypeDate      FieldType = "date"
	FieldTypeNumber    FieldType = "number"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeTextarea  FieldType = "textarea"
	FieldTypeImage     FieldType = "image"
	FieldTypeSignature FieldType = "signature"
	FieldTypeTable     FieldType = "table"
	FieldTypeSelect    FieldType = "select"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeFile      FieldType = "file"
)

// DefaultSectionID is assigned to fields that do not name a section.
const DefaultSectionID = "general"

var knownFieldTypes = map[FieldType]struct{}{
	FieldTypeText:      {},
	FieldTypeEmail:     {},
	FieldTypePhone:     {},
	FieldTypeDate:      {},
	FieldTypeNumber:    {},
	FieldTypeCheckbox:  {},
	FieldTypeTextarea:  {},
	FieldTypeImage:     {},
	FieldTypeSignature: {},
	FieldTypeTable:     {},
	FieldTypeSelect:    {},
	FieldTypeRadio:     {},
	FieldTypeFile:      {},
}

// FieldTypes returns the supported field types in declaration order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypeDate,
		FieldTypeNumber, FieldTypeCheckbox, FieldTypeTextarea, FieldTypeImage,
		FieldTypeSignature, FieldTypeTable, FieldTypeSelect, FieldTypeRadio,
		FieldTypeFile,
	}
}

// ParseFieldType maps raw input onto a FieldType. Unknown or empty values fall
// back to FieldTypeText; the boolean reports whether the input was recognised.
func ParseFieldType(raw string) (FieldType, bool) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := knownFieldTypes[candidate]; ok {
		return candidate, true
	}
	return FieldTypeText, false
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	_, ok := knownFieldTypes[t]
	return ok
}

// HasOptions reports whether the type renders a fixed list of choices.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

// GroupedHeader describes one top-level header of a grouped table. Headers
// spanning a single column carry no SubHeaders.
type GroupedHeader struct {
	Name       string   `json:"name" yaml:"name"`
	Colspan    int      `json:"colspan" yaml:"colspan"`
	SubHeaders []string `json:"subHeaders" yaml:"subHeaders"`
}

// Field is one extractable or displayable unit of data. Labels are not
// required to be unique, even within a section.
type Field struct {
	ID             string          `json:"id" yaml:"id"`
	Type           FieldType       `json:"type" yaml:"type"`
	Label          string          `json:"label" yaml:"label"`
	Value          any             `json:"value" yaml:"value"`
	Section        string          `json:"section,omitempty" yaml:"section,omitempty"`
	Required       bool            `json:"required" yaml:"required"`
	Confidence     *float64        `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Options        []string        `json:"options,omitempty" yaml:"options,omitempty"`
	Columns        []string        `json:"columns,omitempty" yaml:"columns,omitempty"`
	IsGroupedTable bool            `json:"isGroupedTable,omitempty" yaml:"isGroupedTable,omitempty"`
	GroupedHeaders []GroupedHeader `json:"groupedHeaders,omitempty" yaml:"groupedHeaders,omitempty"`
}

// SectionID returns the owning section identifier, defaulting to "general".
func (f Field) SectionID() string {
	if id := strings.TrimSpace(f.Section); id != "" {
		return id
	}
	return DefaultSectionID
}

// IsTable reports whether the field is a table with at least one column or
// grouped header. Tables without either are treated as plain fields.
func (f Field) IsTable() bool {
	if f.Type != FieldTypeTable {
		return false
	}
	return len(f.Columns) > 0 || (f.IsGroupedTable && len(f.GroupedHeaders) > 0)
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Confidence != nil {
		c := *f.Confidence
		out.Confidence = &c
	}
	out.Options = cloneStrings(f.Options)
	out.Columns = cloneStrings(f.Columns)
	if f.GroupedHeaders != nil {
		out.GroupedHeaders = make([]GroupedHeader, len(f.GroupedHeaders))
		for i, header := range f.GroupedHeaders {
			header.SubHeaders = cloneStrings(header.SubHeaders)
			out.GroupedHeaders[i] = header
		}
	}
	return out
}

// Section is a named, ordered grouping of fields.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Order int    `json:"order" yaml:"order"`
}

// Template is the decoded form of a hierarchical structure.
type Template struct {
	Fields   []Field   `json:"fields" yaml:"fields"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	return Template{
		Fields:   CloneFields(t.Fields),
		Sections: append([]Section(nil), t.Sections...),
	}
}

// CloneFields deep-copies a field slice.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
