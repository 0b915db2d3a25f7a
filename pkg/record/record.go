package record

import (
	"fmt"
	"strings"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// Metadata is the metadata block of a stored template.
type Metadata struct {
	TemplateStructure *structure.Object `json:"template_structure,omitempty"`
	Sections          []model.Section   `json:"sections,omitempty"`
	DocumentImage     string            `json:"document_image,omitempty"`
	Name              string            `json:"name,omitempty"`
	Description       string            `json:"description,omitempty"`
}

// Record is a template as persisted by the external store. Fields mirrors
// the flat field list for readers that predate template_structure.
type Record struct {
	ID       string        `json:"id,omitempty"`
	Metadata Metadata      `json:"metadata"`
	Fields   []model.Field `json:"fields,omitempty"`
}

// Option configures FromDraft.
type Option func(*options)

type options struct {
	stripPages bool
	encode     []hierarchy.EncodeOption
}

// WithPageStrip toggles removal of page-number artifacts from the stored
// structure. It is enabled by default.
func WithPageStrip(enabled bool) Option {
	return func(o *options) {
		o.stripPages = enabled
	}
}

// WithEncodeOptions forwards options to the hierarchical encoder.
func WithEncodeOptions(encode ...hierarchy.EncodeOption) Option {
	return func(o *options) {
		o.encode = append(o.encode, encode...)
	}
}

// FromDraft validates d and converts a snapshot of it into a record.
func FromDraft(d draft.Draft, opts ...Option) (Record, error) {
	cfg := options{stripPages: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := d.Validate(); err != nil {
		return Record{}, fmt.Errorf("record: %w", err)
	}

	snapshot := d.Snapshot()
	encoded := hierarchy.Encode(snapshot.Sections, snapshot.Fields, cfg.encode...)
	sections := model.SortSections(snapshot.Sections)
	fields := snapshot.Fields
	if cfg.stripPages {
		encoded = hierarchy.StripPageSuffixesDeep(encoded)
		sections = stripSectionIDs(sections)
		for i := range fields {
			if id := strings.TrimSpace(fields[i].Section); id != "" {
				fields[i].Section = naming.StripPageSuffix(id)
			}
		}
	}

	return Record{
		ID: snapshot.TemplateID,
		Metadata: Metadata{
			TemplateStructure: encoded,
			Sections:          sections,
			DocumentImage:     snapshot.DocumentImage,
			Name:              snapshot.Name,
			Description:       snapshot.Description,
		},
		Fields: fields,
	}, nil
}

// stripSectionIDs removes page suffixes from section ids the way the
// structure keys are stripped. Sections collapsing onto one id keep the
// first record.
func stripSectionIDs(sections []model.Section) []model.Section {
	out := make([]model.Section, len(sections))
	for i, section := range sections {
		section.ID = naming.StripPageSuffix(strings.TrimSpace(section.ID))
		out[i] = section
	}
	return dedupeSections(out)
}

// alignSections maps stored section ids onto the keys of obj. Records saved
// with unstripped section ids next to a stripped structure resolve to the
// stripped key.
func alignSections(stored []model.Section, obj *structure.Object) []model.Section {
	out := make([]model.Section, len(stored))
	for i, section := range stored {
		id := strings.TrimSpace(section.ID)
		if !obj.Has(id) {
			if stripped := naming.StripPageSuffix(id); obj.Has(stripped) {
				section.ID = stripped
			}
		}
		out[i] = section
	}
	return dedupeSections(out)
}

func dedupeSections(sections []model.Section) []model.Section {
	out := sections[:0]
	seen := make(map[string]struct{}, len(sections))
	for _, section := range sections {
		if _, exists := seen[section.ID]; exists {
			continue
		}
		seen[section.ID] = struct{}{}
		out = append(out, section)
	}
	return out
}

// ToDraft rebuilds an editable draft. The stored structure is decoded with
// the persisted section records; records without a structure fall back to
// the legacy field mirror.
func (r Record) ToDraft(options ...hierarchy.DecodeOption) (draft.Draft, error) {
	out := draft.Draft{
		TemplateID:    r.ID,
		Name:          r.Metadata.Name,
		Description:   r.Metadata.Description,
		DocumentImage: r.Metadata.DocumentImage,
	}

	if r.Metadata.TemplateStructure != nil {
		decodeOptions := append([]hierarchy.DecodeOption{hierarchy.WithSections(alignSections(r.Metadata.Sections, r.Metadata.TemplateStructure))}, options...)
		tmpl, err := hierarchy.Decode(r.Metadata.TemplateStructure, decodeOptions...)
		if err != nil {
			return draft.Draft{}, fmt.Errorf("record: decode template_structure: %w", err)
		}
		out.Sections = tmpl.Sections
		out.Fields = tmpl.Fields
		return out, nil
	}

	out.Fields = model.CloneFields(r.Fields)
	out.Sections = legacySections(r.Metadata.Sections, out.Fields)
	return out, nil
}

// legacySections keeps the stored sections and adds one for every field
// section id that has no record.
func legacySections(stored []model.Section, fields []model.Field) []model.Section {
	out := model.SortSections(stored)
	known := make(map[string]struct{}, len(out))
	for _, section := range out {
		known[section.ID] = struct{}{}
	}
	for _, field := range fields {
		id := field.SectionID()
		if _, exists := known[id]; exists {
			continue
		}
		known[id] = struct{}{}
		out = append(out, model.Section{ID: id, Name: naming.FormatDisplayName(id), Order: len(out)})
	}
	return out
}
