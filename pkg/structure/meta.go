package structure

import "strings"

// MetaKind identifies the reserved order-metadata keys.
type MetaKind int

const (
	MetaNone MetaKind = iota
	MetaKeyOrder
	MetaFieldOrder
	MetaColumnOrder
)

const (
	// KeyOrderKey records the display order of top-level section keys.
	KeyOrderKey = "_keyOrder"
	// TypeKey carries a field type override inside a field object.
	TypeKey = "_type"

	reservedPrefix    = "_"
	fieldOrderSuffix  = "_fieldOrder"
	columnOrderSuffix = "_columnOrder"
)

// MetaKey is the structured form of an order-metadata key. Section and Field
// hold the structural keys (never display labels) so the metadata stays
// addressable after label formatting.
type MetaKey struct {
	Kind    MetaKind
	Section string
	Field   string
}

// KeyOrder addresses the top-level _keyOrder array.
func KeyOrder() MetaKey {
	return MetaKey{Kind: MetaKeyOrder}
}

// FieldOrder addresses the field order array of a section.
func FieldOrder(section string) MetaKey {
	return MetaKey{Kind: MetaFieldOrder, Section: section}
}

// ColumnOrder addresses the column order array of a table field. An empty
// section addresses a top-level table.
func ColumnOrder(section, field string) MetaKey {
	return MetaKey{Kind: MetaColumnOrder, Section: section, Field: field}
}

// String renders the wire form of the key.
func (k MetaKey) String() string {
	switch k.Kind {
	case MetaKeyOrder:
		return KeyOrderKey
	case MetaFieldOrder:
		return reservedPrefix + k.Section + fieldOrderSuffix
	case MetaColumnOrder:
		if k.Section == "" {
			return reservedPrefix + k.Field + columnOrderSuffix
		}
		return reservedPrefix + k.Section + "_" + k.Field + columnOrderSuffix
	default:
		return ""
	}
}

// IsReserved reports whether key is reserved metadata and never data.
func IsReserved(key string) bool {
	return strings.HasPrefix(key, reservedPrefix)
}

// KindOf classifies a wire key.
func KindOf(key string) MetaKind {
	if !IsReserved(key) {
		return MetaNone
	}
	switch {
	case key == KeyOrderKey:
		return MetaKeyOrder
	case strings.HasSuffix(key, fieldOrderSuffix):
		return MetaFieldOrder
	case strings.HasSuffix(key, columnOrderSuffix):
		return MetaColumnOrder
	default:
		return MetaNone
	}
}

// Order reads the order array addressed by key.
func (o *Object) Order(key MetaKey) []string {
	return o.Strings(key.String())
}

// SetOrder writes an order array addressed by key.
func (o *Object) SetOrder(key MetaKey, order []string) {
	o.Set(key.String(), Strings(order))
}
