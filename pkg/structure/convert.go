package structure

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ToInterface converts an ordered value into plain Go values: *Object becomes
// map[string]any and json.Number becomes float64 when representable. Order
// is lost; the result is meant for validators that expect encoding/json
// shapes.
func ToInterface(value any) any {
	switch typed := value.(type) {
	case *Object:
		if typed == nil {
			return nil
		}
		out := make(map[string]any, typed.Len())
		typed.Range(func(key string, child any) bool {
			out[key] = ToInterface(child)
			return true
		})
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = ToInterface(item)
		}
		return out
	case json.Number:
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return string(typed)
	default:
		return value
	}
}

// FromInterface converts plain Go values into ordered ones. Map keys are
// sorted so the conversion is deterministic.
func FromInterface(value any) any {
	switch typed := value.(type) {
	case *Object:
		return typed
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := New()
		for _, key := range keys {
			obj.Set(key, FromInterface(typed[key]))
		}
		return obj
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = FromInterface(item)
		}
		return out
	case map[string]string:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[key] = item
		}
		return FromInterface(converted)
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = FromInterface(item)
		}
		return out
	case []string:
		return Strings(typed)
	default:
		return value
	}
}

// Stringify renders a value the way it appears in JSON, used when a value
// cannot be represented as a field and is kept as text instead.
func Stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return string(typed)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}
