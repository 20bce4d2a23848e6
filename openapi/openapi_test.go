package openapi

import (
	"testing"

	jsonschema "github.com/dazerdude/json-everything"
)

func TestImport_PlainOpenAPISchema(t *testing.T) {
	doc := map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"note": map[string]any{"type": "string", "nullable": true},
		},
	}
	reg := jsonschema.NewRegistry()
	s, diag, err := Import(reg, "https://example.com/openapi-plain.json", doc, jsonschema.Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(diag.Warnings) != 0 {
		t.Fatalf("expected no warnings for a plain object schema, got %v", diag.Warnings)
	}
	if ok, _ := jsonschema.Validate(reg, s, map[string]any{"name": "x", "note": nil}, jsonschema.Options{DefaultDraft: jsonschema.Draft7}); !ok {
		t.Errorf("expected a nullable field to accept null once normalized")
	}
	if ok, _ := jsonschema.Validate(reg, s, map[string]any{}, jsonschema.Options{DefaultDraft: jsonschema.Draft7}); ok {
		t.Errorf("expected the required field to still be enforced")
	}
}

func TestImport_CRDEnvelope(t *testing.T) {
	crd := map[string]any{
		"spec": map[string]any{
			"versions": []any{
				map[string]any{
					"name":   "v1",
					"served": true,
					"schema": map[string]any{
						"openAPIV3Schema": map[string]any{
							"type":       "object",
							"properties": map[string]any{"replicas": map[string]any{"type": "integer"}},
						},
					},
				},
			},
		},
	}
	reg := jsonschema.NewRegistry()
	s, _, err := Import(reg, "https://example.com/crd.json", crd, jsonschema.Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if ok, _ := jsonschema.Validate(reg, s, map[string]any{"replicas": 3}, jsonschema.Options{DefaultDraft: jsonschema.Draft7}); !ok {
		t.Errorf("expected the unwrapped CRD schema to validate a matching instance")
	}
}

func TestNormalizeNullable_TypeArray(t *testing.T) {
	in := map[string]any{"type": "string", "nullable": true}
	out, ok := normalizeNullable(in).(map[string]any)
	if !ok {
		t.Fatalf("expected a map result")
	}
	types, ok := out["type"].([]any)
	if !ok || len(types) != 2 || types[0] != "string" || types[1] != "null" {
		t.Fatalf("got type=%v", out["type"])
	}
	if _, present := out["nullable"]; present {
		t.Fatalf("expected nullable to be removed after normalization")
	}
}

func TestUnwrapCRDSchema_PrefersServedVersion(t *testing.T) {
	root := map[string]any{
		"spec": map[string]any{
			"versions": []any{
				map[string]any{"served": false, "schema": map[string]any{"openAPIV3Schema": map[string]any{"title": "old"}}},
				map[string]any{"served": true, "schema": map[string]any{"openAPIV3Schema": map[string]any{"title": "new"}}},
			},
		},
	}
	got := unwrapCRDSchema(root)
	if got == nil || got["title"] != "new" {
		t.Fatalf("expected the served version's schema, got %v", got)
	}
}
