package hierarchy

import (
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// StripPageSuffixesDeep returns a copy of obj with page-number artifacts
// removed from every key. It is meant for persisting template definitions;
// live extraction results keep their page numbers.
//
// Data keys lose trailing `_page_<N>` / `page <N>` suffixes and are walked
// recursively. Field and column order keys lose `_page_<N>` wherever it
// occurs. `_keyOrder` is kept with its entries stripped, `_type` annotations
// are kept, and every other reserved key is dropped. When two keys collapse
// onto one, the first position wins and nested objects are merged. The
// result is a fixed point: stripping it again changes nothing.
func StripPageSuffixesDeep(obj *structure.Object) *structure.Object {
	if obj == nil {
		return nil
	}
	out := structure.New()
	obj.Range(func(key string, value any) bool {
		switch structure.KindOf(key) {
		case structure.MetaKeyOrder:
			mergeOrder(out, key, value)
		case structure.MetaFieldOrder, structure.MetaColumnOrder:
			mergeOrder(out, naming.StripPageInfix(key), value)
		default:
			if key == structure.TypeKey {
				out.Set(key, structure.CloneValue(value))
				return true
			}
			if structure.IsReserved(key) {
				return true
			}
			mergeValue(out, naming.StripPageSuffix(key), stripValue(value))
		}
		return true
	})
	return out
}

func stripValue(value any) any {
	switch typed := value.(type) {
	case *structure.Object:
		return StripPageSuffixesDeep(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = stripValue(item)
		}
		return out
	default:
		return value
	}
}

func mergeValue(out *structure.Object, key string, value any) {
	existing, ok := out.Get(key)
	if !ok {
		out.Set(key, value)
		return
	}
	left, leftOK := existing.(*structure.Object)
	right, rightOK := value.(*structure.Object)
	if leftOK && rightOK && left != nil && right != nil {
		right.Range(func(childKey string, child any) bool {
			if structure.KindOf(childKey) != structure.MetaNone {
				mergeOrder(left, childKey, child)
				return true
			}
			mergeValue(left, childKey, child)
			return true
		})
		return
	}
	out.Set(key, value)
}

// mergeOrder strips every entry of an order array and appends the entries
// not yet present under key.
func mergeOrder(out *structure.Object, key string, value any) {
	order := out.Strings(key)
	seen := make(map[string]struct{}, len(order))
	for _, entry := range order {
		seen[entry] = struct{}{}
	}
	for _, entry := range structure.StringList(value) {
		stripped := naming.StripPageSuffix(entry)
		if _, exists := seen[stripped]; exists {
			continue
		}
		seen[stripped] = struct{}{}
		order = append(order, stripped)
	}
	out.Set(key, structure.Strings(order))
}
