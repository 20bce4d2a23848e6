package jsonschema

import "testing"

func TestRegistry_DuplicateURIRejected(t *testing.T) {
	reg := NewRegistry()
	doc := map[string]any{"type": "string"}
	if _, err := reg.Register("https://example.com/a.json", doc, DefaultOptions()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := reg.Register("https://example.com/a.json", doc, DefaultOptions()); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistry_LookupByAnchor(t *testing.T) {
	reg := NewRegistry()
	doc := map[string]any{
		"$id": "https://example.com/root.json",
		"$defs": map[string]any{
			"pos": map[string]any{"$anchor": "positive", "type": "integer", "minimum": 0},
		},
	}
	if _, err := reg.Register("https://example.com/root.json", doc, DefaultOptions()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	target, ok := reg.Lookup("https://example.com/root.json#positive")
	if !ok || target == nil {
		t.Fatalf("expected to resolve anchor #positive")
	}
	ok2, _ := Validate(reg, target, 5, DefaultOptions())
	if !ok2 {
		t.Fatalf("expected 5 to satisfy the anchor-resolved schema")
	}
}

func TestRegistry_LookupByPointer(t *testing.T) {
	reg := NewRegistry()
	doc := map[string]any{
		"$id":   "https://example.com/root2.json",
		"$defs": map[string]any{"name": map[string]any{"type": "string"}},
	}
	if _, err := reg.Register("https://example.com/root2.json", doc, DefaultOptions()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	target, ok := reg.Lookup("https://example.com/root2.json#/$defs/name")
	if !ok || target == nil {
		t.Fatalf("expected to resolve JSON pointer fragment against the root document")
	}
	ok2, _ := Validate(reg, target, "hi", DefaultOptions())
	if !ok2 {
		t.Fatalf("expected string to satisfy the pointer-resolved schema")
	}
}

func TestRegistry_UnknownURI(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup("https://example.com/nope.json"); ok {
		t.Fatalf("expected lookup of an unregistered URI to fail")
	}
}
