// Package hierarchy converts between the flat field/section model edited in
// the UI and the nested, order-annotated structure that templates are stored
// as and that extraction services return.
//
// Encode builds the structure from sections and fields, recomputing every
// order-metadata key from the in-memory order. Decode walks a structure,
// classifying each value once (see Classify) and rebuilding fields and
// sections, honouring order metadata when present and tolerating its absence.
// DecodeFlat handles extraction results that arrive as a plain field list.
// StripPageSuffixesDeep removes page-number artifacts from keys before a
// template definition is persisted.
//
// Every function in the package is pure: no I/O, no shared state, safe to
// call from any goroutine on inputs the caller is not mutating concurrently.
package hierarchy
