package hierarchy

import (
	"strconv"
	"strings"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// Encode builds the hierarchical structure for sections and fields.
//
// Sections are emitted in ascending Order (ties by position) and sections
// without fields are omitted. Field keys are the normalised labels; repeated
// keys within a section get `_2`, `_3`, ... suffixes in input order. Tables
// become a single all-null row and record their column order. After the
// section data the output carries every `_{section}_fieldOrder`, every
// `_{section}_{field}_columnOrder` and finally `_keyOrder`.
//
// Encode never fails: a table without columns is encoded like any other
// field. Encoding the same input twice yields identical output.
func Encode(sections []model.Section, fields []model.Field, options ...EncodeOption) *structure.Object {
	opts := defaultEncodeOptions()
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}

	out := structure.New()

	var (
		keyOrder     []string
		fieldOrders  []orderEntry
		columnOrders []orderEntry
		sectionObj   *structure.Object
	)

	for _, placement := range Layout(sections, fields) {
		sectionKey := placement.Section.ID
		if sectionObj == nil || keyOrder[len(keyOrder)-1] != sectionKey {
			sectionObj = structure.New()
			out.Set(sectionKey, sectionObj)
			keyOrder = append(keyOrder, sectionKey)
			fieldOrders = append(fieldOrders, orderEntry{key: structure.FieldOrder(sectionKey)})
		}
		current := &fieldOrders[len(fieldOrders)-1]
		current.order = append(current.order, placement.Key)

		field := placement.Field
		if !field.IsTable() {
			sectionObj.Set(placement.Key, encodeLeaf(field, opts))
			continue
		}

		row, columns := encodeTableRow(field)
		sectionObj.Set(placement.Key, []any{row})
		columnOrders = append(columnOrders, orderEntry{
			key:   structure.ColumnOrder(sectionKey, placement.Key),
			order: columns,
		})
	}

	for _, entry := range fieldOrders {
		if len(entry.order) > 0 {
			out.SetOrder(entry.key, entry.order)
		}
	}
	for _, entry := range columnOrders {
		out.SetOrder(entry.key, entry.order)
	}
	if len(keyOrder) > 0 {
		out.SetOrder(structure.KeyOrder(), keyOrder)
	}
	return out
}

// Placement records where Encode puts a field: the section key and the
// field key inside that section.
type Placement struct {
	Section model.Section
	Key     string
	Field   model.Field
}

// Layout returns the placement of every field in the order Encode emits
// them. Sections without fields do not appear.
func Layout(sections []model.Section, fields []model.Field) []Placement {
	grouped := model.FieldsBySection(fields)
	out := make([]Placement, 0, len(fields))
	for _, section := range resolveSections(sections, fields) {
		names := newNameAllocator()
		for _, field := range grouped[section.ID] {
			out = append(out, Placement{
				Section: section,
				Key:     names.allocate(naming.NormalizeKey(field.Label)),
				Field:   field,
			})
		}
	}
	return out
}

type orderEntry struct {
	key   structure.MetaKey
	order []string
}

// resolveSections sorts the declared sections, drops duplicate ids and
// appends a synthesized section for every field section id that has no
// record, in first-appearance order.
func resolveSections(sections []model.Section, fields []model.Field) []model.Section {
	sorted := model.SortSections(sections)
	out := make([]model.Section, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))

	for _, section := range sorted {
		section.ID = strings.TrimSpace(section.ID)
		if section.ID == "" {
			section.ID = model.DefaultSectionID
		}
		if _, exists := seen[section.ID]; exists {
			continue
		}
		seen[section.ID] = struct{}{}
		out = append(out, section)
	}

	next := len(out)
	for _, field := range fields {
		id := field.SectionID()
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, model.Section{
			ID:    id,
			Name:  naming.FormatDisplayName(id),
			Order: next,
		})
		next++
	}
	return out
}

func encodeLeaf(field model.Field, opts encodeOptions) any {
	if !opts.typeAnnotations || field.Type == model.FieldTypeTable {
		return nil
	}
	fieldType := field.Type
	if !fieldType.Valid() {
		fieldType = model.FieldTypeText
	}
	if fieldType == model.FieldTypeText && !field.Required && len(field.Options) == 0 {
		return nil
	}

	annotated := structure.New()
	annotated.Set(structure.TypeKey, string(fieldType))
	if len(field.Options) > 0 {
		annotated.Set("options", structure.Strings(field.Options))
	}
	if field.Required {
		annotated.Set("required", true)
	}
	return annotated
}

// encodeTableRow builds the single all-null template row of a table and the
// flat column order recorded next to it.
func encodeTableRow(field model.Field) (*structure.Object, []string) {
	row := structure.New()
	var order []string

	if !field.IsGroupedTable || len(field.GroupedHeaders) == 0 {
		for _, column := range field.Columns {
			if column == "" || row.Has(column) {
				continue
			}
			row.Set(column, nil)
			order = append(order, column)
		}
		return row, order
	}

	represented := make(map[string]struct{})
	for _, header := range field.GroupedHeaders {
		name := strings.TrimSpace(header.Name)
		if name == "" {
			continue
		}

		if len(header.SubHeaders) == 0 {
			if row.Has(name) {
				continue
			}
			row.Set(name, nil)
			order = append(order, name)
			represented[name] = struct{}{}
			continue
		}

		nested, _ := row.Get(name)
		subRow, ok := nested.(*structure.Object)
		if !ok || subRow == nil {
			subRow = structure.New()
		}
		for _, sub := range header.SubHeaders {
			if sub == "" || subRow.Has(sub) {
				continue
			}
			subRow.Set(sub, nil)
			flat := name + "_" + sub
			order = append(order, flat)
			represented[flat] = struct{}{}
			represented[sub] = struct{}{}
		}
		row.Set(name, subRow)
		represented[name] = struct{}{}
	}

	for _, column := range field.Columns {
		if column == "" {
			continue
		}
		if _, exists := represented[column]; exists {
			continue
		}
		row.Set(column, nil)
		order = append(order, column)
		represented[column] = struct{}{}
	}
	return row, order
}

// nameAllocator hands out unique field keys within one section. The first
// occurrence of a key keeps it; later ones get the next free numeric suffix
// counted per base key.
type nameAllocator struct {
	used   map[string]struct{}
	counts map[string]int
}

func newNameAllocator() *nameAllocator {
	return &nameAllocator{
		used:   make(map[string]struct{}),
		counts: make(map[string]int),
	}
}

func (a *nameAllocator) allocate(base string) string {
	for {
		a.counts[base]++
		candidate := base
		if n := a.counts[base]; n > 1 {
			candidate = base + "_" + strconv.Itoa(n)
		}
		if _, taken := a.used[candidate]; taken {
			continue
		}
		a.used[candidate] = struct{}{}
		return candidate
	}
}
