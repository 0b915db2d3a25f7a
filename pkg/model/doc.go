// Package model defines the in-memory template model edited by users and
// produced by the hierarchical decoder: an ordered list of typed fields, each
// tagged with the identifier of the section that owns it, plus the ordered
// section records themselves. Grouped tables keep both their multi-level
// header layout (GroupedHeaders) and the flattened `parent_sub` column names
// (Columns) so callers that only understand flat tables keep working.
package model
