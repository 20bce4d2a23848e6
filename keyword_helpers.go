package jsonschema

import (
	"fmt"

	"github.com/dazerdude/json-everything/i18n"
)

func fail(path Pointer, code, hint string) (bool, Issues) {
	return false, Issues{{Path: path.String(), Code: code, Message: i18n.T(code, nil), Hint: hint}}
}

func failf(path Pointer, code, format string, args ...any) (bool, Issues) {
	return fail(path, code, fmt.Sprintf(format, args...))
}

func pass() (bool, Issues) { return true, nil }

// asSchemaArray compiles a JSON array of schemas found under a keyword
// (allOf/anyOf/oneOf/prefixItems/...), in document order. name is the
// owning keyword, prefixed onto each element's pointer segment so that e.g.
// element 0 of allOf lands at "/allOf/0", not "/0".
func asSchemaArray(bc *buildCtx, name string, tok func(i int) string) ([]*Schema, bool) {
	arr, ok := bc.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]*Schema, 0, len(arr))
	for i, v := range arr {
		child, err := bc.compileChildAt(v, name, tok(i))
		if err != nil {
			return nil, false
		}
		out = append(out, child)
	}
	return out, true
}

func stringSliceFrom(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toFloat(v any) (float64, bool) {
	r, ok := toRat(v)
	if !ok {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}
