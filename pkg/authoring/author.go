package authoring

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
)

var errRequired = errors.New("a value is required")

// Option configures an Author.
type Option func(*Author)

// WithPromptDriver swaps the prompt driver, mainly for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(a *Author) {
		if driver != nil {
			a.driver = driver
		}
	}
}

// WithIDGenerator overrides how field ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(a *Author) {
		if fn != nil {
			a.newID = fn
		}
	}
}

// Author runs interactive template authoring sessions.
type Author struct {
	driver PromptDriver
	newID  func() string
}

// New constructs an Author backed by the survey driver unless overridden.
func New(options ...Option) *Author {
	a := &Author{
		newID: uuid.NewString,
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	if a.driver == nil {
		a.driver = NewSurveyDriver(nil)
	}
	return a
}

// Author prompts for a template name, its sections and the fields of each
// section, then returns the validated draft.
func (a *Author) Author(ctx context.Context) (draft.Draft, error) {
	name, err := a.driver.Input(ctx, InputConfig{
		Message:   "Template name",
		Validator: requireText,
	})
	if err != nil {
		return draft.Draft{}, err
	}
	description, err := a.driver.TextArea(ctx, TextAreaConfig{Message: "Description (optional)"})
	if err != nil {
		return draft.Draft{}, err
	}

	out := draft.Draft{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	ids := make(map[string]int)
	for {
		section, err := a.section(ctx, len(out.Sections), ids)
		if err != nil {
			return draft.Draft{}, err
		}
		out.Sections = append(out.Sections, section)

		fields, err := a.fields(ctx, section)
		if err != nil {
			return draft.Draft{}, err
		}
		out.Fields = append(out.Fields, fields...)

		more, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Add another section?"})
		if err != nil {
			return draft.Draft{}, err
		}
		if !more {
			break
		}
	}

	if err := out.Validate(); err != nil {
		return draft.Draft{}, fmt.Errorf("authoring: %w", err)
	}
	summary := fmt.Sprintf("Template %q: %d section(s), %d field(s)", out.Name, len(out.Sections), len(out.Fields))
	if err := a.driver.Info(ctx, summary); err != nil {
		return draft.Draft{}, err
	}
	return out, nil
}

func (a *Author) section(ctx context.Context, order int, ids map[string]int) (model.Section, error) {
	name, err := a.driver.Input(ctx, InputConfig{
		Message:   "Section name",
		Validator: requireText,
	})
	if err != nil {
		return model.Section{}, err
	}
	name = strings.TrimSpace(name)
	id := naming.NormalizeKey(name)
	ids[id]++
	if n := ids[id]; n > 1 {
		id = id + "_" + strconv.Itoa(n)
	}
	return model.Section{ID: id, Name: name, Order: order}, nil
}

func (a *Author) fields(ctx context.Context, section model.Section) ([]model.Field, error) {
	var out []model.Field
	for {
		field, err := a.field(ctx, section)
		if err != nil {
			return nil, err
		}
		out = append(out, field)

		more, err := a.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add another field to %s?", section.Name),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
	}
}

func (a *Author) field(ctx context.Context, section model.Section) (model.Field, error) {
	label, err := a.driver.Input(ctx, InputConfig{
		Message:   "Field label",
		Validator: requireText,
	})
	if err != nil {
		return model.Field{}, err
	}

	types := model.FieldTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	idx, err := a.driver.Select(ctx, SelectConfig{Message: "Field type", Options: names})
	if err != nil {
		return model.Field{}, err
	}
	fieldType := model.FieldTypeText
	if idx >= 0 && idx < len(types) {
		fieldType = types[idx]
	}

	required, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Required?"})
	if err != nil {
		return model.Field{}, err
	}

	field := model.Field{
		ID:       a.newID(),
		Type:     fieldType,
		Label:    strings.TrimSpace(label),
		Section:  section.ID,
		Required: required,
	}

	switch {
	case fieldType.HasOptions():
		raw, err := a.driver.Input(ctx, InputConfig{
			Message:   "Options (comma separated)",
			Validator: requireText,
		})
		if err != nil {
			return model.Field{}, err
		}
		field.Options = splitList(raw)
	case fieldType == model.FieldTypeTable:
		if err := a.table(ctx, &field); err != nil {
			return model.Field{}, err
		}
	}
	return field, nil
}

func (a *Author) table(ctx context.Context, field *model.Field) error {
	grouped, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Use grouped headers?"})
	if err != nil {
		return err
	}
	if !grouped {
		raw, err := a.driver.Input(ctx, InputConfig{
			Message:   "Columns (comma separated)",
			Validator: requireText,
		})
		if err != nil {
			return err
		}
		field.Columns = normalizeAll(splitList(raw))
		return nil
	}

	var headers []model.GroupedHeader
	for {
		name, err := a.driver.Input(ctx, InputConfig{
			Message:   "Header name",
			Validator: requireText,
		})
		if err != nil {
			return err
		}
		raw, err := a.driver.Input(ctx, InputConfig{
			Message: "Sub headers (comma separated, blank for a single column)",
		})
		if err != nil {
			return err
		}
		subs := normalizeAll(splitList(raw))
		header := model.GroupedHeader{
			Name:       naming.NormalizeKey(name),
			Colspan:    max(len(subs), 1),
			SubHeaders: subs,
		}
		if header.SubHeaders == nil {
			header.SubHeaders = []string{}
		}
		headers = append(headers, header)

		more, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Add another header?"})
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	field.IsGroupedTable = true
	field.GroupedHeaders = headers
	field.Columns = model.FlattenGroupedHeaders(headers)
	return nil
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errRequired
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeAll(values []string) []string {
	var out []string
	for _, value := range values {
		if key := naming.NormalizeKey(value); key != "" {
			out = append(out, key)
		}
	}
	return out
}
