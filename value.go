package jsonschema

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
)

// Equal reports whether two decoded JSON values are equal under JSON Schema
// semantics: numbers compare by mathematical value regardless of how they
// were decoded (json.Number, float64, or int), and object/array equality is
// structural and order-sensitive for arrays, order-insensitive for objects.
func Equal(a, b any) bool {
	if isNumber(a) && isNumber(b) {
		ra, ok1 := toRat(a)
		rb, ok2 := toRat(b)
		if ok1 && ok2 {
			return ra.Cmp(rb) == 0
		}
		return false
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, ok := bv[k]
			if !ok || !Equal(v, bval) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	}
	return false
}

func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(n.String())
		return r, ok
	case float64:
		// A float64 is read as its shortest round-trip decimal, so 0.29 is
		// 29/100 rather than the nearest binary fraction.
		return new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
	case float32:
		return new(big.Rat).SetString(strconv.FormatFloat(float64(n), 'g', -1, 32))
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	}
	return nil, false
}

// IsInteger reports whether a numeric value has zero fractional part.
func IsInteger(v any) bool {
	r, ok := toRat(v)
	if !ok {
		return false
	}
	return r.IsInt()
}

// TypeOf returns the JSON Schema primitive type name for a decoded value:
// "null", "boolean", "object", "array", "number", "integer", or "string".
// Per spec.md, "integer" is a structural refinement of "number" and is
// reported only when the numeric value has no fractional part.
func TypeOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	default:
		if isNumber(t) {
			if IsInteger(t) {
				return "integer"
			}
			return "number"
		}
		return "null"
	}
}

// Fingerprint produces a stable content hash for a decoded value, used as
// the instance-identity half of the reference-cycle detection key
// (absolute-reference, instance-fingerprint) described in spec.md.
func Fingerprint(v any) string {
	h := sha256.New()
	writeFingerprint(h, v, map[uintptr]bool{})
	return hex.EncodeToString(h.Sum(nil))
}

// onPath holds the containers currently being hashed; a container met again
// inside itself is hashed as a back-reference marker instead of recursing.
func writeFingerprint(h interface{ Write([]byte) (int, error) }, v any, onPath map[uintptr]bool) {
	if rv := reflect.ValueOf(v); (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.Len() > 0 {
		p := rv.Pointer()
		if onPath[p] {
			h.Write([]byte{'^'})
			return
		}
		onPath[p] = true
		defer delete(onPath, p)
	}
	switch t := v.(type) {
	case nil:
		h.Write([]byte{'n'})
	case bool:
		if t {
			h.Write([]byte{'T'})
		} else {
			h.Write([]byte{'F'})
		}
	case string:
		h.Write([]byte{'s'})
		h.Write([]byte(t))
	case []any:
		h.Write([]byte{'['})
		for _, e := range t {
			writeFingerprint(h, e, onPath)
			h.Write([]byte{','})
		}
		h.Write([]byte{']'})
	case map[string]any:
		h.Write([]byte{'{'})
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.Write([]byte(k))
			h.Write([]byte{':'})
			writeFingerprint(h, t[k], onPath)
			h.Write([]byte{','})
		}
		h.Write([]byte{'}'})
	default:
		if r, ok := toRat(t); ok {
			h.Write([]byte{'#'})
			h.Write([]byte(r.RatString()))
		} else {
			h.Write([]byte(fmt.Sprintf("%v", t)))
		}
	}
}
