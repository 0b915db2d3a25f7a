package extractschema

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// KeyOrderExtension lists the property order of an object schema.
const KeyOrderExtension = "x-key-order"

// SchemaName is the component name used by Document.
const SchemaName = "TemplateStructure"

// Build returns the schema of the structure Encode produces for sections and
// fields.
func Build(sections []model.Section, fields []model.Field) *openapi3.Schema {
	return FromStructure(hierarchy.Encode(sections, fields))
}

// FromStructure derives a schema from an encoded template structure. Sections
// become objects, fields nullable typed properties and tables arrays of row
// objects.
func FromStructure(obj *structure.Object) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	keys := hierarchy.OrderedKeys(obj, obj.Order(structure.KeyOrder()))
	for _, key := range keys {
		value, _ := obj.Get(key)
		kind := hierarchy.Classify(value)
		if kind == hierarchy.KindSection {
			root.WithProperty(key, sectionSchema(obj, key, value.(*structure.Object)))
			continue
		}
		property, required := valueSchema(kind, value, obj.Order(structure.ColumnOrder("", key)))
		root.WithProperty(key, property)
		if required {
			root.Required = append(root.Required, key)
		}
	}
	setKeyOrder(root, keys)
	return root
}

func sectionSchema(root *structure.Object, key string, obj *structure.Object) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	order := root.Order(structure.FieldOrder(key))
	if len(order) == 0 {
		order = obj.Order(structure.FieldOrder(key))
	}

	var keys []string
	for _, fieldKey := range hierarchy.OrderedKeys(obj, order) {
		value, _ := obj.Get(fieldKey)
		kind := hierarchy.Classify(value)
		switch kind {
		case hierarchy.KindLegacy:
			continue
		case hierarchy.KindSection:
			out.WithProperty(fieldKey, sectionSchema(root, fieldKey, value.(*structure.Object)))
		default:
			columnOrder := root.Order(structure.ColumnOrder(key, fieldKey))
			property, required := valueSchema(kind, value, columnOrder)
			out.WithProperty(fieldKey, property)
			if required {
				out.Required = append(out.Required, fieldKey)
			}
		}
		keys = append(keys, fieldKey)
	}
	setKeyOrder(out, keys)
	return out
}

// valueSchema returns the schema of a field value and whether the field is
// marked required.
func valueSchema(kind hierarchy.Kind, value any, columnOrder []string) (*openapi3.Schema, bool) {
	switch kind {
	case hierarchy.KindTypedLeaf:
		obj := value.(*structure.Object)
		raw, _ := obj.Get(structure.TypeKey)
		fieldType, _ := model.ParseFieldType(structure.Stringify(raw))
		required, _ := mustGet(obj, "required").(bool)
		return typeSchema(fieldType, obj.Strings("options")), required
	case hierarchy.KindTable, hierarchy.KindGroupedTable:
		rows := value.([]any)
		return tableSchema(rows[0].(*structure.Object), columnOrder), false
	case hierarchy.KindOpaque:
		return anySchema(), false
	default:
		return typeSchema(model.FieldTypeText, nil), false
	}
}

func typeSchema(fieldType model.FieldType, options []string) *openapi3.Schema {
	var out *openapi3.Schema
	switch fieldType {
	case model.FieldTypeEmail:
		out = openapi3.NewStringSchema().WithFormat("email")
	case model.FieldTypeDate:
		out = openapi3.NewStringSchema().WithFormat("date")
	case model.FieldTypeNumber:
		out = openapi3.NewFloat64Schema()
	case model.FieldTypeCheckbox:
		out = openapi3.NewBoolSchema()
	case model.FieldTypeTable:
		out = openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema())
	case model.FieldTypeSelect, model.FieldTypeRadio:
		out = openapi3.NewStringSchema()
		if len(options) > 0 {
			enum := make([]any, 0, len(options)+1)
			for _, option := range options {
				enum = append(enum, option)
			}
			out.Enum = append(enum, nil)
		}
	default:
		out = openapi3.NewStringSchema()
	}
	return out.WithNullable()
}

func tableSchema(row *structure.Object, columnOrder []string) *openapi3.Schema {
	item := openapi3.NewObjectSchema()
	keys := hierarchy.OrderedKeys(row, columnOrder)
	for _, key := range keys {
		value, _ := row.Get(key)
		nested, ok := value.(*structure.Object)
		if !ok || nested.Len() == 0 {
			item.WithProperty(key, anySchema())
			continue
		}
		group := openapi3.NewObjectSchema()
		subKeys := hierarchy.OrderedKeys(nested, nil)
		for _, sub := range subKeys {
			group.WithProperty(sub, anySchema())
		}
		setKeyOrder(group, subKeys)
		item.WithProperty(key, group.WithNullable())
	}
	setKeyOrder(item, keys)
	return openapi3.NewArraySchema().WithItems(item).WithNullable()
}

func anySchema() *openapi3.Schema {
	return &openapi3.Schema{Nullable: true}
}

func setKeyOrder(schema *openapi3.Schema, keys []string) {
	if len(keys) == 0 {
		return
	}
	if schema.Extensions == nil {
		schema.Extensions = make(map[string]any)
	}
	schema.Extensions[KeyOrderExtension] = append([]string(nil), keys...)
}

func mustGet(obj *structure.Object, key string) any {
	value, _ := obj.Get(key)
	return value
}

// Document wraps schema in an OpenAPI document under
// components.schemas.TemplateStructure and validates it.
func Document(ctx context.Context, title, version string, schema *openapi3.Schema) (*openapi3.T, error) {
	if version == "" {
		version = "1.0.0"
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: title, Version: version},
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{SchemaName: openapi3.NewSchemaRef("", schema)},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("extractschema: validate document: %w", err)
	}
	return doc, nil
}

// Validate checks an extraction result against schema. Page suffixes are
// removed from the result's keys first so multi-page answers line up with
// the template keys.
func Validate(schema *openapi3.Schema, result *structure.Object) error {
	if schema == nil {
		return fmt.Errorf("extractschema: schema is required")
	}
	value := structure.ToInterface(hierarchy.StripPageSuffixesDeep(result))
	if value == nil {
		value = map[string]any{}
	}
	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("extractschema: %w", err)
	}
	return nil
}
