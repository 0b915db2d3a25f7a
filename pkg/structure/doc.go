// Package structure holds the hierarchical, key-ordered JSON document that
// templates are persisted as and that extraction services return. Plain Go
// maps lose key order, so the package provides Object, an insertion-ordered
// mapping whose JSON and YAML forms keep keys in the order they were set or
// read. Values inside an Object are nil, bool, json.Number, string, *Object or
// []any.
//
// Reserved keys start with an underscore. The order metadata kinds
// (_keyOrder, _{section}_fieldOrder, _{section}_{field}_columnOrder) are
// modelled by MetaKey so encoders and decoders never build or parse those
// strings by hand.
package structure
