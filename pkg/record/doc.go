// Package record defines the persisted template record: the hierarchical
// structure stored under metadata.template_structure, the section records
// next to it and a legacy mirror of the flat field list.
package record
