package model

import "sort"

// SortSections returns a copy of sections ordered by ascending Order. Ties keep
// their relative position.
func SortSections(sections []Section) []Section {
	out := append([]Section(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// FieldsBySection groups fields by their section id, preserving field order
// inside each group.
func FieldsBySection(fields []Field) map[string][]Field {
	out := make(map[string][]Field)
	for _, field := range fields {
		id := field.SectionID()
		out[id] = append(out[id], field)
	}
	return out
}

// FlattenGroupedHeaders returns the flat column names implied by a grouped
// header layout: `parent_sub` for every sub header, the header name itself for
// headers without sub headers.
func FlattenGroupedHeaders(headers []GroupedHeader) []string {
	var out []string
	for _, header := range headers {
		if len(header.SubHeaders) == 0 {
			out = append(out, header.Name)
			continue
		}
		for _, sub := range header.SubHeaders {
			out = append(out, header.Name+"_"+sub)
		}
	}
	return out
}
