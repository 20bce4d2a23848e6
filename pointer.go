package jsonschema

import (
	"strconv"
	"strings"
)

// Pointer is an RFC 6901 JSON Pointer: a sequence of unescaped reference
// tokens. An empty Pointer addresses the whole document.
type Pointer []string

// ParsePointer parses a pointer string such as "/properties/name" into its
// unescaped tokens. The empty string and "#" both denote the root, as does
// any string that does not start with "/" after an optional leading "#";
// "/" is the one-token pointer to the "" key.
func ParsePointer(s string) Pointer {
	if s == "" || s == "#" {
		return Pointer{}
	}
	s = strings.TrimPrefix(s, "#")
	if !strings.HasPrefix(s, "/") {
		return Pointer{}
	}
	parts := strings.Split(s[1:], "/")
	tok := make(Pointer, len(parts))
	for i, p := range parts {
		tok[i] = unescapeToken(p)
	}
	return tok
}

// String renders the pointer back to its RFC 6901 textual form.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, t := range p {
		b.WriteByte('/')
		b.WriteString(escapeToken(t))
	}
	return b.String()
}

// Child returns a new Pointer with an additional trailing token.
func (p Pointer) Child(tok string) Pointer {
	out := make(Pointer, len(p)+1)
	copy(out, p)
	out[len(p)] = tok
	return out
}

// ChildIndex is a convenience for appending an array-index token.
func (p Pointer) ChildIndex(i int) Pointer {
	return p.Child(strconv.Itoa(i))
}

// Apply descends into a decoded value or schema keyword map one token at a
// time, honoring JSON Schema's keyword-carrier rules: map-keyed carriers
// (properties, $defs, patternProperties, ...) are unordered key lookups,
// and array carriers (items as a tuple, allOf, anyOf, ...) are positional.
func (p Pointer) Apply(root any) (any, bool) {
	cur := root
	for _, tok := range p {
		switch v := cur.(type) {
		case map[string]any:
			nv, ok := v[tok]
			if !ok {
				return nil, false
			}
			cur = nv
		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			cur = v[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func escapeToken(t string) string {
	t = strings.ReplaceAll(t, "~", "~0")
	t = strings.ReplaceAll(t, "/", "~1")
	return t
}

func unescapeToken(t string) string {
	t = strings.ReplaceAll(t, "~1", "/")
	t = strings.ReplaceAll(t, "~0", "~")
	return t
}
