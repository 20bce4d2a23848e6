package jsonschema

import (
	"strings"
	"testing"
)

func TestDecodeAny_PlainDocument(t *testing.T) {
	v, err := DecodeAny(JSONReader(strings.NewReader(`{"a":[1,2,3],"b":"x"}`)), DecodeOptions{OnDuplicateKey: DuplicateKeyError})
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected a map, got %T", v)
	}
	arr, ok := m["a"].([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("got a=%v", m["a"])
	}
}

func TestDecodeAny_RejectsDuplicateKeyByDefault(t *testing.T) {
	_, err := DecodeAny(JSONReader(strings.NewReader(`{"a":1,"a":2}`)), DecodeOptions{OnDuplicateKey: DuplicateKeyError})
	if err == nil {
		t.Fatalf("expected a duplicate key to be rejected under DuplicateKeyError")
	}
	iss, ok := AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != CodeDuplicateKey {
		t.Fatalf("expected a single duplicate_key issue, got %v", err)
	}
}

func TestDecodeAny_IgnoresDuplicateKeyWhenPermitted(t *testing.T) {
	v, err := DecodeAny(JSONReader(strings.NewReader(`{"a":1,"a":2}`)), DecodeOptions{OnDuplicateKey: DuplicateKeyIgnore})
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	if _, ok := v.(map[string]any)["a"]; !ok {
		t.Fatalf("expected key %q to be present once duplicates are permitted", "a")
	}
}

func TestDecodeAny_EnforcesMaxDepth(t *testing.T) {
	deep := strings.Repeat(`{"a":`, 50) + "1" + strings.Repeat("}", 50)
	_, err := DecodeAny(JSONReader(strings.NewReader(deep)), DecodeOptions{OnDuplicateKey: DuplicateKeyError, MaxDepth: 5})
	if err == nil {
		t.Fatalf("expected exceeding MaxDepth to fail decoding")
	}
}

func TestJSONBytes_MatchesJSONReader(t *testing.T) {
	byBytes, err1 := DecodeAny(JSONBytes([]byte(`{"x":1}`)), DecodeOptions{OnDuplicateKey: DuplicateKeyError})
	byReader, err2 := DecodeAny(JSONReader(strings.NewReader(`{"x":1}`)), DecodeOptions{OnDuplicateKey: DuplicateKeyError})
	if err1 != nil || err2 != nil {
		t.Fatalf("DecodeAny errors: %v, %v", err1, err2)
	}
	m1 := byBytes.(map[string]any)
	m2 := byReader.(map[string]any)
	if len(m1) != len(m2) {
		t.Fatalf("expected equivalent decode results from bytes and reader sources")
	}
}
