package hierarchy

import (
	"strings"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
)

// FlatField is one entry of a flat extraction result. Either Label or Name
// identifies the field.
type FlatField struct {
	Label      string   `json:"label,omitempty" yaml:"label,omitempty"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Section    string   `json:"section,omitempty" yaml:"section,omitempty"`
	Required   bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Confidence *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Columns    []string `json:"columns,omitempty" yaml:"columns,omitempty"`
	Options    []string `json:"options,omitempty" yaml:"options,omitempty"`
	Value      any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// DisplayLabel returns Label, falling back to Name. Fields identified only
// by Name get a formatted display label when decoded.
func (f FlatField) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return strings.TrimSpace(f.Name)
}

// DecodeFlat builds a template from a flat field list without the nested
// walk. Each field lands in its explicit section, or in a section of its own
// named after its label. Entries without a label or name are skipped.
func DecodeFlat(items []FlatField, options ...DecodeOption) model.Template {
	opts := newDecodeOptions(options)
	d := newDecoder(opts)

	for _, item := range items {
		label := item.DisplayLabel()
		if label == "" {
			continue
		}

		sectionID := naming.NormalizeKey(label)
		sectionName := naming.FormatDisplayName(opts.sanitize(label))
		if explicit := strings.TrimSpace(item.Section); explicit != "" {
			sectionID = naming.NormalizeKey(explicit)
			sectionName = naming.StripPageSuffix(opts.sanitize(explicit))
		}
		if _, exists := d.known[sectionID]; !exists {
			d.known[sectionID] = struct{}{}
			d.sections = append(d.sections, model.Section{
				ID:    sectionID,
				Name:  sectionName,
				Order: len(d.sections),
			})
		}

		fieldLabel := naming.StripPageSuffix(opts.sanitize(label))
		if strings.TrimSpace(item.Label) == "" {
			fieldLabel = naming.FormatDisplayName(opts.sanitize(label))
		}

		fieldType, _ := model.ParseFieldType(item.Type)
		field := model.Field{
			ID:       opts.newID(),
			Type:     fieldType,
			Label:    fieldLabel,
			Value:    item.Value,
			Section:  sectionID,
			Required: item.Required,
			Options:  append([]string(nil), item.Options...),
		}
		if item.Confidence != nil {
			confidence := *item.Confidence
			field.Confidence = &confidence
		}
		if fieldType == model.FieldTypeTable {
			field.Columns = append([]string(nil), item.Columns...)
		}
		d.fields = append(d.fields, field)
	}
	return d.template()
}
