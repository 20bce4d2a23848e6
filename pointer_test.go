package jsonschema

import "testing"

func TestParsePointer_RoundTrip(t *testing.T) {
	cases := []string{"", "/a/b", "/a~1b/c~0d", "/0/1"}
	for _, s := range cases {
		p := ParsePointer(s)
		if got := p.String(); got != s {
			t.Errorf("ParsePointer(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestPointer_ChildAndChildIndex(t *testing.T) {
	p := Pointer{}.Child("properties").Child("name")
	if got, want := p.String(), "/properties/name"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	p2 := Pointer{}.Child("items").ChildIndex(2)
	if got, want := p2.String(), "/items/2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPointer_Apply(t *testing.T) {
	doc := map[string]any{
		"properties": map[string]any{
			"tags": []any{"a", "b", "c"},
		},
	}
	p := ParsePointer("/properties/tags/1")
	v, ok := p.Apply(doc)
	if !ok || v != "b" {
		t.Fatalf("Apply(%v) = (%v, %v), want (\"b\", true)", p, v, ok)
	}
	if _, ok := ParsePointer("/properties/missing").Apply(doc); ok {
		t.Fatalf("expected missing key to report false")
	}
	if _, ok := ParsePointer("/properties/tags/9").Apply(doc); ok {
		t.Fatalf("expected out-of-range index to report false")
	}
}

func TestEscapeUnescapeToken(t *testing.T) {
	p := Pointer{"a/b", "c~d"}
	s := p.String()
	if got, want := s, "/a~1b/c~0d"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	back := ParsePointer(s)
	if len(back) != 2 || back[0] != "a/b" || back[1] != "c~d" {
		t.Fatalf("round trip failed: %#v", back)
	}
}
