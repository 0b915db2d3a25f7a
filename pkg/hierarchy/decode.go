package hierarchy

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// ErrInvalidStructure is returned when the decoder receives a top-level
// value that is neither an object nor nil.
var ErrInvalidStructure = errors.New("hierarchy: structure must be an object")

// Decode reconstructs fields and sections from a hierarchical structure.
//
// value may be a *structure.Object, a plain map[string]any (keys are walked
// in sorted order) or nil, which yields an empty template. Any other value
// returns ErrInvalidStructure. Missing order metadata is tolerated; unknown
// shapes degrade to text fields.
func Decode(value any, options ...DecodeOption) (model.Template, error) {
	opts := newDecodeOptions(options)
	d := newDecoder(opts)

	switch typed := value.(type) {
	case nil:
	case *structure.Object:
		d.decodeRoot(typed)
	case map[string]any:
		d.decodeRoot(structure.FromInterface(typed).(*structure.Object))
	default:
		return model.Template{}, fmt.Errorf("%w: got %T", ErrInvalidStructure, value)
	}
	return d.template(), nil
}

type decoder struct {
	opts     decodeOptions
	root     *structure.Object
	fields   []model.Field
	sections []model.Section
	known    map[string]struct{}
}

func newDecoder(opts decodeOptions) *decoder {
	d := &decoder{opts: opts, known: make(map[string]struct{})}
	for _, section := range opts.sections {
		id := strings.TrimSpace(section.ID)
		if id == "" {
			continue
		}
		if _, exists := d.known[id]; exists {
			continue
		}
		section.ID = id
		d.known[id] = struct{}{}
		d.sections = append(d.sections, section)
	}
	return d
}

func (d *decoder) template() model.Template {
	return model.Template{
		Fields:   d.fields,
		Sections: model.SortSections(d.sections),
	}
}

// ensureSection registers id unless it is already known. key is the
// structural key the display name is derived from.
func (d *decoder) ensureSection(id, key string) {
	if _, exists := d.known[id]; exists {
		return
	}
	d.known[id] = struct{}{}
	d.sections = append(d.sections, model.Section{
		ID:    id,
		Name:  d.displayName(key),
		Order: len(d.sections),
	})
}

func (d *decoder) displayName(key string) string {
	return naming.FormatDisplayName(d.opts.sanitize(key))
}

func (d *decoder) decodeRoot(root *structure.Object) {
	d.root = root
	for _, key := range OrderedKeys(root, root.Order(structure.KeyOrder())) {
		value, _ := root.Get(key)
		kind := Classify(value)
		if kind == KindSection {
			d.decodeSection(key, key, value.(*structure.Object))
			continue
		}
		d.ensureSection(key, key)
		d.decodeValue(key, key, kind, value, root.Order(structure.ColumnOrder("", key)))
	}
}

// decodeSection walks the fields of a section object. metaKey is the key the
// section's order metadata is addressed by.
func (d *decoder) decodeSection(id, metaKey string, obj *structure.Object) {
	d.ensureSection(id, metaKey)

	fieldOrder := firstOrder(structure.FieldOrder(metaKey), d.root, obj)
	for _, key := range OrderedKeys(obj, fieldOrder) {
		value, _ := obj.Get(key)
		switch kind := Classify(value); kind {
		case KindLegacy:
			continue
		case KindSection:
			childID := childSectionID(id, key)
			if childID == id {
				d.decodeSection(id, key, value.(*structure.Object))
				continue
			}
			d.decodeSection(childID, childID, value.(*structure.Object))
		default:
			columnOrder := firstOrder(structure.ColumnOrder(metaKey, key), d.root, obj)
			d.decodeValue(id, key, kind, value, columnOrder)
		}
	}
}

// decodeValue emits the field for a non-section value.
func (d *decoder) decodeValue(sectionID, key string, kind Kind, value any, columnOrder []string) {
	field := model.Field{
		ID:      d.opts.newID(),
		Type:    model.FieldTypeText,
		Label:   d.displayName(key),
		Section: sectionID,
	}

	switch kind {
	case KindLeaf:
		field.Value = structure.ToInterface(value)
	case KindEmpty:
	case KindTypedLeaf:
		applyTyped(&field, value.(*structure.Object))
	case KindLegacy:
		obj := value.(*structure.Object)
		raw, _ := obj.Get("type")
		field.Type, _ = model.ParseFieldType(structure.Stringify(raw))
		field.Value = structure.ToInterface(mustGet(obj, "value"))
	case KindTable, KindGroupedTable:
		rows := value.([]any)
		field.Type = model.FieldTypeTable
		first := rows[0].(*structure.Object)
		if kind == KindGroupedTable {
			field.IsGroupedTable = true
			field.GroupedHeaders = groupedHeaders(first, columnOrder)
			field.Columns = model.FlattenGroupedHeaders(field.GroupedHeaders)
		} else {
			field.Columns = reorder(dataKeys(first), columnOrder)
		}
		if hasData(rows) {
			field.Value = structure.ToInterface(rows)
		}
	case KindOpaque:
		field.Value = structure.Stringify(value)
	}

	d.fields = append(d.fields, field)
}

func applyTyped(field *model.Field, obj *structure.Object) {
	raw, _ := obj.Get(structure.TypeKey)
	field.Type, _ = model.ParseFieldType(structure.Stringify(raw))
	field.Options = obj.Strings("options")
	field.Columns = obj.Strings("columns")
	if required, ok := mustGet(obj, "required").(bool); ok {
		field.Required = required
	}
	if value, ok := obj.Get("value"); ok {
		field.Value = structure.ToInterface(value)
	}
	if confidence, ok := toFloat(mustGet(obj, "confidence")); ok {
		field.Confidence = &confidence
	}
}

func mustGet(obj *structure.Object, key string) any {
	value, _ := obj.Get(key)
	return value
}

func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case json.Number:
		f, err := typed.Float64()
		return f, err == nil
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	default:
		return 0, false
	}
}

// childSectionID joins a nested section key onto its parent id, removing
// any leading repetitions of the parent component. A key that reduces to
// nothing, or to the parent itself, merges into the parent.
func childSectionID(parent, key string) string {
	suffix := key
	prefix := parent + "_"
	for strings.HasPrefix(suffix, prefix) {
		suffix = strings.TrimPrefix(suffix, prefix)
	}
	if suffix == "" || suffix == parent {
		return parent
	}
	return parent + "_" + suffix
}

// orderedKeys returns the data keys of obj: entries of preferred that exist,
// followed by the remaining keys in document order.
func OrderedKeys(obj *structure.Object, preferred []string) []string {
	return reorder(dataKeys(obj), preferred)
}

func dataKeys(obj *structure.Object) []string {
	var keys []string
	obj.Range(func(key string, _ any) bool {
		if !structure.IsReserved(key) {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}

// reorder places the entries of preferred found in keys first, then the rest
// of keys in their original order.
func reorder(keys, preferred []string) []string {
	if len(preferred) == 0 {
		return keys
	}
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}
	out := make([]string, 0, len(keys))
	used := make(map[string]bool, len(keys))
	for _, key := range preferred {
		if present[key] && !used[key] {
			used[key] = true
			out = append(out, key)
		}
	}
	for _, key := range keys {
		if !used[key] {
			out = append(out, key)
		}
	}
	return out
}

func firstOrder(key structure.MetaKey, scopes ...*structure.Object) []string {
	for _, scope := range scopes {
		if order := scope.Order(key); len(order) > 0 {
			return order
		}
	}
	return nil
}

// groupedHeaders derives the header layout of a grouped table from its first
// row. Headers are ranked by the earliest position of their flat column
// names in columnOrder; unranked headers keep row order after them.
func groupedHeaders(row *structure.Object, columnOrder []string) []model.GroupedHeader {
	position := make(map[string]int, len(columnOrder))
	for i, column := range columnOrder {
		if _, exists := position[column]; !exists {
			position[column] = i
		}
	}

	type ranked struct {
		header model.GroupedHeader
		rank   int
	}
	var headers []ranked
	unranked := len(columnOrder)

	row.Range(func(key string, value any) bool {
		if structure.IsReserved(key) {
			return true
		}
		header := model.GroupedHeader{Name: key, Colspan: 1, SubHeaders: []string{}}
		rank := -1
		if nested, ok := value.(*structure.Object); ok && nested.Len() > 0 {
			subs := dataKeys(nested)
			sort.SliceStable(subs, func(i, j int) bool {
				return subRank(position, key, subs[i], unranked) < subRank(position, key, subs[j], unranked)
			})
			if len(subs) > 0 {
				header.SubHeaders = subs
				header.Colspan = len(subs)
			}
			for _, sub := range subs {
				if p, ok := position[key+"_"+sub]; ok && (rank < 0 || p < rank) {
					rank = p
				}
			}
		} else if p, ok := position[key]; ok {
			rank = p
		}
		if rank < 0 {
			rank = unranked
		}
		headers = append(headers, ranked{header: header, rank: rank})
		return true
	})

	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].rank < headers[j].rank
	})
	out := make([]model.GroupedHeader, len(headers))
	for i, entry := range headers {
		out[i] = entry.header
	}
	return out
}

func subRank(position map[string]int, parent, sub string, unranked int) int {
	if p, ok := position[parent+"_"+sub]; ok {
		return p
	}
	return unranked
}

// hasData reports whether any row carries a non-null leaf value.
func hasData(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case *structure.Object:
		found := false
		typed.Range(func(key string, child any) bool {
			if structure.IsReserved(key) {
				return true
			}
			found = hasData(child)
			return !found
		})
		return found
	case []any:
		for _, item := range typed {
			if hasData(item) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
