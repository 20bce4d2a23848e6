//go:build !gojson

package gojson

import (
	"io"

	jsonschema "github.com/dazerdude/json-everything"
	jsonsrc "github.com/dazerdude/json-everything/source/json"
)

// Driver returns a stub driver that delegates to encoding/json when built
// without the gojson tag.
func Driver() jsonschema.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) jsonschema.Source {
	return jsonschema.SourceFromEngine(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) jsonschema.Source {
	return jsonschema.SourceFromEngine(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
