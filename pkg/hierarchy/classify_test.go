package hierarchy_test

import (
	"testing"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want hierarchy.Kind
	}{
		{name: "null", raw: `null`, want: hierarchy.KindLeaf},
		{name: "string", raw: `"x"`, want: hierarchy.KindLeaf},
		{name: "number", raw: `4.5`, want: hierarchy.KindLeaf},
		{name: "empty object", raw: `{}`, want: hierarchy.KindEmpty},
		{name: "metadata only", raw: `{"_a_fieldOrder":[]}`, want: hierarchy.KindEmpty},
		{name: "typed", raw: `{"_type":"date"}`, want: hierarchy.KindTypedLeaf},
		{name: "legacy", raw: `{"type":"text","value":"x"}`, want: hierarchy.KindLegacy},
		{name: "section", raw: `{"name":null}`, want: hierarchy.KindSection},
		{name: "only legacy children", raw: `{"a":{"type":"text","value":1}}`, want: hierarchy.KindEmpty},
		{name: "table", raw: `[{"a":null,"b":1}]`, want: hierarchy.KindTable},
		{name: "grouped table", raw: `[{"a":{"x":null},"b":null}]`, want: hierarchy.KindGroupedTable},
		{name: "empty array", raw: `[]`, want: hierarchy.KindOpaque},
		{name: "array of arrays", raw: `[[1]]`, want: hierarchy.KindOpaque},
		{name: "array of scalars", raw: `["a"]`, want: hierarchy.KindOpaque},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := structure.ParseValue([]byte(tc.raw))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := hierarchy.Classify(value); got != tc.want {
				t.Fatalf("Classify(%s) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}
