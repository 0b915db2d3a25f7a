// Package draft holds the in-memory template being edited. A Draft is a plain
// value; Store keeps drafts per template id for the duration of a session and
// hands out snapshots so encoders never see a draft that is being mutated.
package draft
