package jsonschema

import "testing"

func TestPrefixItems_2020(t *testing.T) {
	schema := map[string]any{
		"prefixItems": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	}
	s := mustCompile(t, schema, Options{DefaultDraft: Draft2020})
	reg := NewRegistry()
	if ok, _ := Validate(reg, s, []any{"x", 5, "anything"}, Options{DefaultDraft: Draft2020}); !ok {
		t.Errorf("expected prefixItems to only constrain the leading positions")
	}
	if ok, _ := Validate(reg, s, []any{5, "x"}, Options{DefaultDraft: Draft2020}); ok {
		t.Errorf("expected mismatched leading types to fail")
	}
}

func TestItems_SingleSchemaAppliesToEveryElement(t *testing.T) {
	schema := map[string]any{"items": map[string]any{"type": "integer"}}
	if ok, _ := validateDoc(t, schema, []any{1, 2, 3}); !ok {
		t.Errorf("expected all-integer array to satisfy items")
	}
	if ok, _ := validateDoc(t, schema, []any{1, "x"}); ok {
		t.Errorf("expected a non-integer element to fail items")
	}
}

func TestItems_TupleFormDraft7(t *testing.T) {
	schema := map[string]any{
		"items": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"additionalItems": false,
	}
	s := mustCompile(t, schema, Options{DefaultDraft: Draft7})
	reg := NewRegistry()
	if ok, _ := Validate(reg, s, []any{"x", 5}, Options{DefaultDraft: Draft7}); !ok {
		t.Errorf("expected an exact tuple match to pass")
	}
	if ok, _ := Validate(reg, s, []any{"x", 5, "extra"}, Options{DefaultDraft: Draft7}); ok {
		t.Errorf("expected additionalItems:false to reject a trailing element")
	}
}

func TestItems_ArrayFormRejectedUnder2020(t *testing.T) {
	schema := map[string]any{"items": []any{map[string]any{"type": "string"}}}
	if _, err := Compile(schema, "https://example.com/items-array-2020.json", Options{DefaultDraft: Draft2020}); err == nil {
		t.Fatalf("expected the legacy tuple-array form of items to be a compile-time error under 2020-12")
	}
}

func TestUnevaluatedItems(t *testing.T) {
	schema := map[string]any{
		"prefixItems":       []any{map[string]any{"type": "string"}},
		"unevaluatedItems": false,
	}
	s := mustCompile(t, schema, Options{DefaultDraft: Draft2020})
	reg := NewRegistry()
	if ok, _ := Validate(reg, s, []any{"x"}, Options{DefaultDraft: Draft2020}); !ok {
		t.Errorf("expected the prefix-covered element alone to pass")
	}
	if ok, _ := Validate(reg, s, []any{"x", "extra"}, Options{DefaultDraft: Draft2020}); ok {
		t.Errorf("expected an uncovered trailing element to fail unevaluatedItems")
	}
}

func TestContains_MinMax(t *testing.T) {
	schema := map[string]any{
		"contains":    map[string]any{"type": "integer"},
		"minContains": 2,
		"maxContains": 3,
	}
	s := mustCompile(t, schema, Options{DefaultDraft: Draft2019})
	reg := NewRegistry()
	if ok, _ := Validate(reg, s, []any{"a", 1}, Options{DefaultDraft: Draft2019}); ok {
		t.Errorf("expected only one matching element to fail minContains 2")
	}
	if ok, _ := Validate(reg, s, []any{1, 2, "a"}, Options{DefaultDraft: Draft2019}); !ok {
		t.Errorf("expected two matching elements to satisfy minContains 2 / maxContains 3")
	}
	if ok, _ := Validate(reg, s, []any{1, 2, 3, 4}, Options{DefaultDraft: Draft2019}); ok {
		t.Errorf("expected four matching elements to fail maxContains 3")
	}
}

func TestContains_DefaultMinIsOne(t *testing.T) {
	schema := map[string]any{"contains": map[string]any{"const": "needle"}}
	if ok, _ := validateDoc(t, schema, []any{"hay", "stack"}); ok {
		t.Errorf("expected an array with no matching element to fail contains")
	}
	if ok, _ := validateDoc(t, schema, []any{"hay", "needle"}); !ok {
		t.Errorf("expected an array with a matching element to satisfy contains")
	}
}

func TestMinItemsMaxItems(t *testing.T) {
	schema := map[string]any{"minItems": 1, "maxItems": 2}
	if ok, _ := validateDoc(t, schema, []any{}); ok {
		t.Errorf("expected empty array to fail minItems 1")
	}
	if ok, _ := validateDoc(t, schema, []any{1, 2, 3}); ok {
		t.Errorf("expected three items to fail maxItems 2")
	}
}
