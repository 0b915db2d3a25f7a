// Package export writes extracted documents to an XLSX workbook laid out by
// their template.
package export
