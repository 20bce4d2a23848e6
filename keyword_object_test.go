package jsonschema

import "testing"

func TestProperties_OnlyAppliesToPresentKeys(t *testing.T) {
	schema := map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer"},
		},
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"name": "a"}); !ok {
		t.Errorf("expected an object missing an optional property to still validate")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"name": 5}); ok {
		t.Errorf("expected a wrong-typed present property to fail")
	}
}

func TestPatternProperties(t *testing.T) {
	schema := map[string]any{
		"patternProperties": map[string]any{"^S_": map[string]any{"type": "string"}},
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"S_a": "x"}); !ok {
		t.Errorf("expected S_a to satisfy the pattern property schema")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"S_a": 5}); ok {
		t.Errorf("expected S_a: 5 to fail the pattern property schema")
	}
}

func TestAdditionalProperties_Restricted(t *testing.T) {
	schema := map[string]any{
		"properties":           map[string]any{"a": map[string]any{"type": "string"}},
		"additionalProperties": false,
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"a": "x"}); !ok {
		t.Errorf("expected a known property to pass with additionalProperties:false")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"a": "x", "b": "y"}); ok {
		t.Errorf("expected an unknown property to fail with additionalProperties:false")
	}
}

func TestRequired(t *testing.T) {
	schema := map[string]any{"required": []any{"a", "b"}}
	if ok, _ := validateDoc(t, schema, map[string]any{"a": 1, "b": 2}); !ok {
		t.Errorf("expected all required properties present to pass")
	}
	ok, iss := validateDoc(t, schema, map[string]any{"a": 1})
	if ok || len(iss) != 1 {
		t.Errorf("expected exactly one missing-required issue, got ok=%v issues=%v", ok, iss)
	}
}

func TestMinMaxProperties(t *testing.T) {
	schema := map[string]any{"minProperties": 1, "maxProperties": 2}
	if ok, _ := validateDoc(t, schema, map[string]any{}); ok {
		t.Errorf("expected empty object to fail minProperties 1")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"a": 1, "b": 2, "c": 3}); ok {
		t.Errorf("expected three properties to fail maxProperties 2")
	}
}

func TestDependentRequired(t *testing.T) {
	schema := map[string]any{"dependentRequired": map[string]any{"credit_card": []any{"billing_address"}}}
	if ok, _ := validateDoc(t, schema, map[string]any{}); !ok {
		t.Errorf("expected dependentRequired to be a no-op when the trigger is absent")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"credit_card": "1234"}); ok {
		t.Errorf("expected dependentRequired to fail when the dependency is missing")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"credit_card": "1234", "billing_address": "x"}); !ok {
		t.Errorf("expected dependentRequired to pass once the dependency is present")
	}
}

func TestDependencies_LegacySchemaForm(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"dependencies": map[string]any{
			"credit_card": map[string]any{"required": []any{"billing_address"}},
		},
	}, Options{DefaultDraft: Draft7})
	reg := NewRegistry()
	if ok, _ := Validate(reg, s, map[string]any{"credit_card": "x"}, Options{DefaultDraft: Draft7}); ok {
		t.Errorf("expected the schema-form dependency to be applied to the whole object")
	}
	if ok, _ := Validate(reg, s, map[string]any{"credit_card": "x", "billing_address": "y"}, Options{DefaultDraft: Draft7}); !ok {
		t.Errorf("expected the schema-form dependency to pass once satisfied")
	}
}

func TestPropertyNames(t *testing.T) {
	schema := map[string]any{"propertyNames": map[string]any{"pattern": "^[a-z]+$"}}
	if ok, _ := validateDoc(t, schema, map[string]any{"abc": 1}); !ok {
		t.Errorf("expected a lowercase key to satisfy propertyNames")
	}
	if ok, _ := validateDoc(t, schema, map[string]any{"ABC": 1}); ok {
		t.Errorf("expected an uppercase key to fail propertyNames")
	}
}
