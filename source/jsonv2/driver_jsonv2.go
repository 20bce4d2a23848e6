//go:build jsonv2

package jsonv2

import (
	v2json "encoding/json/v2"
	"io"
	"sort"
	"strconv"

	jsonschema "github.com/dazerdude/json-everything"
)

// Driver returns a Source driver backed by the experimental encoding/json/v2
// package. Requires building with -tags jsonv2 and GOEXPERIMENT=jsonv2.
func Driver() jsonschema.JSONDriver { return driverV2{} }

type driverV2 struct{}

func (driverV2) NewReader(r io.Reader) jsonschema.Source {
	data, _ := io.ReadAll(r)
	return newV2SourceFromBytes(data)
}

func (driverV2) NewBytes(b []byte) jsonschema.Source { return newV2SourceFromBytes(b) }
func (driverV2) Name() string                        { return "encoding/json/v2" }

// v2Source materializes tokens from a decoded any tree (non-streaming
// fallback, since v2 is used here purely for its decode correctness).
type v2Source struct {
	tokens []jsonschema.Token
	idx    int
}

func newV2SourceFromBytes(b []byte) jsonschema.Source {
	var v any
	if err := v2json.Unmarshal(b, &v); err != nil {
		return &v2Source{tokens: nil, idx: 0}
	}
	buf := make([]jsonschema.Token, 0, 64)
	buf = appendValueTokens(buf, v)
	return &v2Source{tokens: buf, idx: 0}
}

func (s *v2Source) NextToken() (jsonschema.Token, error) {
	if s.idx >= len(s.tokens) {
		return jsonschema.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

func (s *v2Source) Location() int64 { return -1 }

func appendValueTokens(out []jsonschema.Token, v any) []jsonschema.Token {
	switch x := v.(type) {
	case map[string]any:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenBeginObject, Offset: -1})
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, jsonschema.Token{Kind: jsonschema.TokenKey, String: k, Offset: -1})
			out = appendValueTokens(out, x[k])
		}
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenEndObject, Offset: -1})
	case []any:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenBeginArray, Offset: -1})
		for _, e := range x {
			out = appendValueTokens(out, e)
		}
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenEndArray, Offset: -1})
	case string:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenString, String: x, Offset: -1})
	case bool:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenBool, Bool: x, Offset: -1})
	case nil:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenNull, Offset: -1})
	case float64:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenNumber, Number: strconv.FormatFloat(x, 'g', -1, 64), Offset: -1})
	default:
		out = append(out, jsonschema.Token{Kind: jsonschema.TokenNull, Offset: -1})
	}
	return out
}
