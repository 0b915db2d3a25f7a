package draft

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
)

var (
	// ErrEmptyName reports a draft without a template name.
	ErrEmptyName = errors.New("draft: template name is empty")
	// ErrNoFields reports a draft without any fields.
	ErrNoFields = errors.New("draft: template has no fields")
	// ErrNotFound is returned by Store lookups for unknown template ids.
	ErrNotFound = errors.New("draft: template not found")
)

// Draft is a template under construction.
type Draft struct {
	TemplateID    string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description,omitempty" yaml:"description,omitempty"`
	DocumentImage string          `json:"documentImage,omitempty" yaml:"documentImage,omitempty"`
	Sections      []model.Section `json:"sections" yaml:"sections"`
	Fields        []model.Field   `json:"fields" yaml:"fields"`
	UpdatedAt     time.Time       `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// FromTemplate wraps a decoded template in a draft.
func FromTemplate(id, name string, tmpl model.Template) Draft {
	return Draft{
		TemplateID: id,
		Name:       name,
		Sections:   append([]model.Section(nil), tmpl.Sections...),
		Fields:     model.CloneFields(tmpl.Fields),
	}
}

// Snapshot returns a deep copy of the draft.
func (d Draft) Snapshot() Draft {
	out := d
	out.Sections = append([]model.Section(nil), d.Sections...)
	out.Fields = model.CloneFields(d.Fields)
	return out
}

// Template returns the fields and sections of the draft.
func (d Draft) Template() model.Template {
	return model.Template{
		Fields:   model.CloneFields(d.Fields),
		Sections: append([]model.Section(nil), d.Sections...),
	}
}

// Validate runs the checks required before a draft is saved. Every problem
// is reported in a single *ValidationError.
func (d Draft) Validate() error {
	var issues []error
	if strings.TrimSpace(d.Name) == "" {
		issues = append(issues, ErrEmptyName)
	}
	if len(d.Fields) == 0 {
		issues = append(issues, ErrNoFields)
	}
	for i, field := range d.Fields {
		if err := field.Validate(); err != nil {
			issues = append(issues, fmt.Errorf("field %d (%q): %w", i, field.Label, err))
		}
	}
	seen := make(map[string]struct{}, len(d.Sections))
	for _, section := range d.Sections {
		id := strings.TrimSpace(section.ID)
		if id == "" {
			issues = append(issues, fmt.Errorf("section %q has an empty id", section.Name))
			continue
		}
		if _, exists := seen[id]; exists {
			issues = append(issues, fmt.Errorf("duplicate section id %q", id))
			continue
		}
		seen[id] = struct{}{}
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Issues []error
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "draft: invalid template"
	}
	messages := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		messages[i] = strings.TrimPrefix(issue.Error(), "draft: ")
	}
	return "draft: invalid template: " + strings.Join(messages, "; ")
}

// Unwrap exposes the individual issues to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Issues
}
