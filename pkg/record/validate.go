package record

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/record.schema.json
var recordSchema []byte

const recordSchemaURL = "record.schema.json"

// ErrInvalidRecord is returned by Parse when the envelope does not match the
// record schema.
var ErrInvalidRecord = errors.New("record: invalid record")

// Issue is one schema violation.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult reports whether a raw record matches the record schema.
type ValidationResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(recordSchemaURL, bytes.NewReader(recordSchema)); err != nil {
			compileErr = fmt.Errorf("record: add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(recordSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("record: compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Schema returns the embedded JSON Schema describing a stored record.
func Schema() []byte {
	return append([]byte(nil), recordSchema...)
}

// Validate checks raw JSON against the record schema.
func Validate(data []byte) ValidationResult {
	compiled, err := schema()
	if err != nil {
		return ValidationResult{Issues: []Issue{{Message: err.Error()}}}
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return ValidationResult{Issues: []Issue{{Message: "invalid JSON: " + err.Error()}}}
	}

	if err := compiled.Validate(doc); err != nil {
		return ValidationResult{Issues: issuesFromError(err)}
	}
	return ValidationResult{Valid: true}
}

// Parse validates data against the record schema and decodes it.
func Parse(data []byte) (Record, error) {
	result := Validate(data)
	if !result.Valid {
		messages := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			if issue.Field != "" {
				messages[i] = issue.Field + ": " + issue.Message
				continue
			}
			messages[i] = issue.Message
		}
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(messages, "; "))
	}

	var out Record
	if err := json.Unmarshal(data, &out); err != nil {
		return Record{}, fmt.Errorf("record: decode: %w", err)
	}
	return out, nil
}

// issuesFromError flattens a schema validation error into its leaf causes.
func issuesFromError(err error) []Issue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []Issue{{Message: strings.TrimSpace(err.Error())}}
	}

	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) == 0 {
			issues = append(issues, Issue{
				Path:    ve.InstanceLocation,
				Field:   fieldPathFromPointer(ve.InstanceLocation),
				Message: strings.TrimSpace(ve.Message),
			})
			return
		}
		for _, cause := range ve.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}

// fieldPathFromPointer turns an instance pointer such as /fields/0/type into
// the dotted form fields.0.type.
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(pointer), "#"), "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
