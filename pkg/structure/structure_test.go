package structure_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	input := `{"zeta":null,"alpha":{"b":1,"a":[{"y":null,"x":"v"}]},"_keyOrder":["zeta","alpha"]}`
	obj, err := structure.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "_keyOrder"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != input {
		t.Fatalf("round trip mismatch:\nwant %s\ngot  %s", input, out)
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	if _, err := structure.Parse([]byte(`{"a":`)); !errors.Is(err, structure.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if _, err := structure.Parse([]byte(`[1,2]`)); !errors.Is(err, structure.ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
}

func TestParseValueKeepsNumberText(t *testing.T) {
	value, err := structure.ParseValue([]byte(`{"amount": 12.50}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	obj := value.(*structure.Object)
	got, _ := obj.Get("amount")
	if got != json.Number("12.50") {
		t.Fatalf("expected json.Number 12.50, got %#v", got)
	}
}

func TestSetKeepsFirstPosition(t *testing.T) {
	obj := structure.New()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := obj.Get("a"); v != 3 {
		t.Fatalf("expected overwritten value, got %v", v)
	}

	obj.Delete("a")
	if obj.Has("a") || obj.Len() != 1 {
		t.Fatalf("delete failed: %v", obj.Keys())
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := structure.New()
	inner.Set("x", nil)
	obj := structure.New()
	obj.Set("inner", inner)
	obj.Set("rows", []any{inner})

	clone := obj.Clone()
	inner.Set("y", nil)

	clonedInner, _ := clone.Get("inner")
	if clonedInner.(*structure.Object).Has("y") {
		t.Fatalf("clone shares nested object")
	}
}

func TestYAMLRoundTripKeepsOrder(t *testing.T) {
	src := "general:\n  name: null\n  age: 42\nitems:\n  - sku: null\n    qty: null\n_keyOrder:\n  - general\n  - items\n"
	var obj structure.Object
	if err := yaml.Unmarshal([]byte(src), &obj); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if diff := cmp.Diff([]string{"general", "items", "_keyOrder"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	general, _ := obj.Get("general")
	age, _ := general.(*structure.Object).Get("age")
	if age != json.Number("42") {
		t.Fatalf("expected numeric json.Number, got %#v", age)
	}

	out, err := yaml.Marshal(&obj)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	if !strings.HasPrefix(string(out), "general:\n") || !strings.Contains(string(out), "_keyOrder:") {
		t.Fatalf("unexpected yaml output:\n%s", out)
	}

	jsonOut, err := json.Marshal(&obj)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	want := `{"general":{"name":null,"age":42},"items":[{"sku":null,"qty":null}],"_keyOrder":["general","items"]}`
	if string(jsonOut) != want {
		t.Fatalf("json mismatch:\nwant %s\ngot  %s", want, jsonOut)
	}
}

func TestMetaKeys(t *testing.T) {
	cases := map[string]structure.MetaKey{
		"_keyOrder":                    structure.KeyOrder(),
		"_items_fieldOrder":            structure.FieldOrder("items"),
		"_items_line_items_columnOrder": structure.ColumnOrder("items", "line_items"),
		"_rows_columnOrder":            structure.ColumnOrder("", "rows"),
	}
	for want, key := range cases {
		if got := key.String(); got != want {
			t.Fatalf("MetaKey %#v: want %q got %q", key, want, got)
		}
		if structure.KindOf(want) != key.Kind {
			t.Fatalf("KindOf(%q) = %v want %v", want, structure.KindOf(want), key.Kind)
		}
	}
	if structure.KindOf("_type") != structure.MetaNone || structure.KindOf("name") != structure.MetaNone {
		t.Fatalf("unexpected metadata classification")
	}
}

func TestFromInterfaceSortsKeys(t *testing.T) {
	value := structure.FromInterface(map[string]any{"b": 1, "a": map[string]any{"d": nil, "c": nil}})
	obj := value.(*structure.Object)
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	plain := structure.ToInterface(obj).(map[string]any)
	if _, ok := plain["a"].(map[string]any); !ok {
		t.Fatalf("expected nested plain map, got %#v", plain["a"])
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{json.Number("3.5"), "3.5"},
		{[]any{[]any{"a"}}, `[["a"]]`},
	}
	for _, tc := range cases {
		if got := structure.Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q want %q", tc.in, got, tc.want)
		}
	}
}
