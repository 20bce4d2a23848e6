package jsonschema

import "testing"

func TestResolveRef_Lexical(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("https://example.com/defs.json", map[string]any{
		"$id":   "https://example.com/defs.json",
		"$defs": map[string]any{"pos": map[string]any{"type": "integer", "minimum": 0}},
	}, DefaultOptions())

	owner := &Schema{BaseURI: "https://example.com/defs.json"}
	target, err := resolveRef(reg, owner, "#/$defs/pos")
	if err != nil {
		t.Fatalf("resolveRef: %v", err)
	}
	if ok, _ := Validate(reg, target, 5, DefaultOptions()); !ok {
		t.Fatalf("expected 5 to satisfy the resolved schema")
	}
}

func TestResolveRef_Unresolved(t *testing.T) {
	reg := NewRegistry()
	owner := &Schema{BaseURI: "https://example.com/nowhere.json"}
	if _, err := resolveRef(reg, owner, "#/$defs/missing"); err == nil {
		t.Fatalf("expected resolving against an unregistered document to fail")
	}
}

// TestResolveDynamicRef_OuterScopeWins exercises the core of the six-step
// $dynamicRef algorithm directly: a lexical target that declares
// $dynamicAnchor is overridden by the first outer dynamic-scope frame that
// declares the same anchor name.
func TestResolveDynamicRef_OuterScopeWins(t *testing.T) {
	reg := NewRegistry()
	list := reg.MustRegister("https://example.com/list.json", map[string]any{
		"$id":            "https://example.com/list.json",
		"$dynamicAnchor": "node",
		"type":           "string",
	}, Options{DefaultDraft: Draft2020})
	ext := reg.MustRegister("https://example.com/ext.json", map[string]any{
		"$id":            "https://example.com/ext.json",
		"$dynamicAnchor": "node",
		"type":           "integer",
	}, Options{DefaultDraft: Draft2020})

	owner := &Schema{BaseURI: "https://example.com/list.json"}
	ec := newEvalContext(reg, Options{DefaultDraft: Draft2020})
	ec.dynamicPath = []*Schema{ext}

	got, err := resolveDynamicRef(ec, owner, "#node")
	if err != nil {
		t.Fatalf("resolveDynamicRef: %v", err)
	}
	if got != ext {
		t.Fatalf("expected the outer dynamic scope's node to win over the lexical target")
	}

	// With no outer frame declaring the anchor, the lexical target applies.
	ec2 := newEvalContext(reg, Options{DefaultDraft: Draft2020})
	got2, err := resolveDynamicRef(ec2, owner, "#node")
	if err != nil {
		t.Fatalf("resolveDynamicRef: %v", err)
	}
	if got2 != list {
		t.Fatalf("expected the lexical target to apply absent an overriding outer scope")
	}
}

func TestResolveDynamicRef_NoDynamicAnchorBehavesLikeRef(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("https://example.com/plain.json", map[string]any{
		"$id":  "https://example.com/plain.json",
		"type": "boolean",
	}, Options{DefaultDraft: Draft2020})
	owner := &Schema{BaseURI: "https://example.com/plain.json"}
	ec := newEvalContext(reg, Options{DefaultDraft: Draft2020})
	got, err := resolveDynamicRef(ec, owner, "")
	if err != nil {
		t.Fatalf("resolveDynamicRef: %v", err)
	}
	if ok, _ := Validate(reg, got, true, Options{DefaultDraft: Draft2020}); !ok {
		t.Fatalf("expected the plain lexical target to apply")
	}
}
