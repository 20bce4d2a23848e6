package jsonschema

import "testing"

func TestSplitFragment(t *testing.T) {
	base, frag := SplitFragment("https://example.com/schema.json#/defs/node")
	if base != "https://example.com/schema.json" || frag != "/defs/node" {
		t.Fatalf("got (%q, %q)", base, frag)
	}
	base, frag = SplitFragment("https://example.com/schema.json")
	if base != "https://example.com/schema.json" || frag != "" {
		t.Fatalf("got (%q, %q)", base, frag)
	}
}

func TestJoinURI(t *testing.T) {
	cases := []struct{ base, ref, want string }{
		{"https://example.com/a/b.json", "c.json", "https://example.com/a/c.json"},
		{"https://example.com/a/b.json", "https://other.com/x.json", "https://other.com/x.json"},
		{"https://example.com/a/b.json", "", "https://example.com/a/b.json"},
		{"", "x.json", "x.json"},
	}
	for _, c := range cases {
		got, err := JoinURI(c.base, c.ref)
		if err != nil {
			t.Fatalf("JoinURI(%q, %q) error: %v", c.base, c.ref, err)
		}
		if got != c.want {
			t.Errorf("JoinURI(%q, %q) = %q, want %q", c.base, c.ref, got, c.want)
		}
	}
}

func TestCanonicalURI(t *testing.T) {
	if got := CanonicalURI("https://example.com/s.json#/a/b"); got != "https://example.com/s.json" {
		t.Fatalf("got %q", got)
	}
}

func TestIsPointerFragment(t *testing.T) {
	if !IsPointerFragment("") || !IsPointerFragment("/a/b") {
		t.Fatalf("expected empty and slash-prefixed fragments to be pointer fragments")
	}
	if IsPointerFragment("anchorName") {
		t.Fatalf("expected a plain name not to be a pointer fragment")
	}
}
