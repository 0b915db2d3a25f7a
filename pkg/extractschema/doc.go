// Package extractschema derives an OpenAPI 3 schema from a template's
// hierarchical structure. The schema tells the extraction service which shape
// to answer with and checks the answers it returns.
package extractschema
