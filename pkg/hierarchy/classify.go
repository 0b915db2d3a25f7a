package hierarchy

import "github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"

// Kind is the shape of a structure value as seen by the decoder.
type Kind int

const (
	// KindLeaf is null or a scalar: a single field.
	KindLeaf Kind = iota
	// KindEmpty is an object without any data keys, decoded as a leaf.
	KindEmpty
	// KindTypedLeaf is an object carrying a `_type` override.
	KindTypedLeaf
	// KindLegacy is the `{type, value}` shape of an already handled field.
	KindLegacy
	// KindTable is an array of row objects with flat columns.
	KindTable
	// KindGroupedTable is an array of row objects whose first row nests
	// sub-columns under parent headers.
	KindGroupedTable
	// KindSection is an object holding named fields.
	KindSection
	// KindOpaque is any other array, kept as stringified text.
	KindOpaque
)

var kindNames = map[Kind]string{
	KindLeaf:         "leaf",
	KindEmpty:        "empty",
	KindTypedLeaf:    "typed-leaf",
	KindLegacy:       "legacy",
	KindTable:        "table",
	KindGroupedTable: "grouped-table",
	KindSection:      "section",
	KindOpaque:       "opaque",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classify decides how a value is decoded. It is evaluated once per key.
func Classify(value any) Kind {
	switch typed := value.(type) {
	case *structure.Object:
		return classifyObject(typed)
	case []any:
		return classifyArray(typed)
	default:
		return KindLeaf
	}
}

func classifyObject(obj *structure.Object) Kind {
	if obj == nil {
		return KindLeaf
	}
	if obj.Has(structure.TypeKey) {
		return KindTypedLeaf
	}
	if isLegacyShape(obj) {
		return KindLegacy
	}
	if hasGenuineFields(obj) {
		return KindSection
	}
	return KindEmpty
}

func classifyArray(items []any) Kind {
	if len(items) == 0 {
		return KindOpaque
	}
	first, ok := items[0].(*structure.Object)
	if !ok || first == nil {
		return KindOpaque
	}
	grouped := false
	first.Range(func(key string, value any) bool {
		if structure.IsReserved(key) {
			return true
		}
		if nested, ok := value.(*structure.Object); ok && nested != nil {
			grouped = true
			return false
		}
		return true
	})
	if grouped {
		return KindGroupedTable
	}
	return KindTable
}

func isLegacyShape(obj *structure.Object) bool {
	return obj.Len() == 2 && obj.Has("type") && obj.Has("value")
}

// hasGenuineFields reports whether obj holds at least one data key whose
// value is not a legacy `{type, value}` marker.
func hasGenuineFields(obj *structure.Object) bool {
	genuine := false
	obj.Range(func(key string, value any) bool {
		if structure.IsReserved(key) {
			return true
		}
		if nested, ok := value.(*structure.Object); ok && nested != nil && isLegacyShape(nested) {
			return true
		}
		genuine = true
		return false
	})
	return genuine
}
