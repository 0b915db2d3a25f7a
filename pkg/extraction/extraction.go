package extraction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// ErrNoExtractionData is returned when the envelope carries neither a
// hierarchical structure nor a field list.
var ErrNoExtractionData = errors.New("extraction: response has no hierarchical_data or fields")

// Shape names the envelope branch a result was decoded from.
type Shape string

const (
	ShapeHierarchical Shape = "hierarchical"
	ShapeFlat         Shape = "flat"
)

// Result is a decoded extraction response. Structure is only set for
// hierarchical responses and keeps its page suffixes.
type Result struct {
	Template  model.Template
	Structure *structure.Object
	Shape     Shape
}

// Parse decodes an extraction response. The `result` wrapper is optional.
// hierarchical_data wins over fields when both are present; a
// hierarchical_data value encoded as a JSON string is unwrapped first.
func Parse(data []byte, options ...hierarchy.DecodeOption) (Result, error) {
	if !gjson.ValidBytes(data) {
		return Result{}, fmt.Errorf("extraction: %w", structure.ErrInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Result{}, fmt.Errorf("extraction: envelope: %w", structure.ErrNotObject)
	}

	payload := root
	if wrapped := root.Get("result"); wrapped.IsObject() {
		payload = wrapped
	}

	if hierarchical := payload.Get("hierarchical_data"); hierarchical.Exists() && hierarchical.Type != gjson.Null {
		return parseHierarchical(hierarchical, options)
	}
	if fields := payload.Get("fields"); fields.IsArray() {
		return parseFlat(fields, options)
	}
	return Result{}, ErrNoExtractionData
}

func parseHierarchical(value gjson.Result, options []hierarchy.DecodeOption) (Result, error) {
	raw := value.Raw
	if value.Type == gjson.String {
		raw = value.String()
	}
	obj, err := structure.Parse([]byte(raw))
	if err != nil {
		return Result{}, fmt.Errorf("extraction: hierarchical_data: %w", err)
	}
	tmpl, err := hierarchy.Decode(obj, options...)
	if err != nil {
		return Result{}, fmt.Errorf("extraction: decode hierarchical_data: %w", err)
	}
	return Result{Template: tmpl, Structure: obj, Shape: ShapeHierarchical}, nil
}

func parseFlat(value gjson.Result, options []hierarchy.DecodeOption) (Result, error) {
	var items []hierarchy.FlatField
	if err := json.Unmarshal([]byte(value.Raw), &items); err != nil {
		return Result{}, fmt.Errorf("extraction: fields: %w", err)
	}
	return Result{Template: hierarchy.DecodeFlat(items, options...), Shape: ShapeFlat}, nil
}
