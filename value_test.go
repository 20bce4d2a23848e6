package jsonschema

import (
	"encoding/json"
	"testing"
)

func TestEqual_NumericCrossRepresentation(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{1, 1.0, true},
		{json.Number("1.50"), 1.5, true},
		{json.Number("3"), int64(3), true},
		{1, 2, false},
		{"1", 1, false},
		{nil, nil, true},
		{[]any{1, 2}, []any{1.0, 2.0}, true},
		{[]any{1, 2}, []any{2, 1}, false},
		{map[string]any{"a": 1}, map[string]any{"a": 1.0}, true},
		{map[string]any{"a": 1}, map[string]any{"a": 2}, false},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"x", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
		{1, "integer"},
		{1.5, "number"},
		{json.Number("2"), "integer"},
		{json.Number("2.5"), "number"},
	}
	for _, c := range cases {
		if got := TypeOf(c.v); got != c.want {
			t.Errorf("TypeOf(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestIsInteger(t *testing.T) {
	if !IsInteger(json.Number("4.0")) {
		t.Errorf("expected 4.0 to be an integer value")
	}
	if IsInteger(json.Number("4.5")) {
		t.Errorf("expected 4.5 not to be an integer value")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	v := map[string]any{"b": 2, "a": []any{1, "x"}}
	f1 := Fingerprint(v)
	f2 := Fingerprint(v)
	if f1 != f2 {
		t.Fatalf("Fingerprint is not deterministic: %s != %s", f1, f2)
	}
	other := map[string]any{"a": []any{1, "x"}, "b": 3}
	if Fingerprint(other) == f1 {
		t.Fatalf("distinct values produced the same fingerprint")
	}
}
