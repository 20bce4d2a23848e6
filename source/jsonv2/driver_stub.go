//go:build !jsonv2

package jsonv2

import (
	"io"

	jsonschema "github.com/dazerdude/json-everything"
	jsonsrc "github.com/dazerdude/json-everything/source/json"
)

// Driver returns a fallback driver when the jsonv2 build tag is not enabled.
func Driver() jsonschema.JSONDriver { return driverStub{} }

type driverStub struct{}

func (driverStub) NewReader(r io.Reader) jsonschema.Source {
	return jsonschema.SourceFromEngine(jsonsrc.NewReader(r))
}

func (driverStub) NewBytes(b []byte) jsonschema.Source {
	return jsonschema.SourceFromEngine(jsonsrc.NewBytes(b))
}

func (driverStub) Name() string { return "encoding/json (jsonv2 stub)" }
