package source

import (
	jsonschema "github.com/dazerdude/json-everything"
	drvgojson "github.com/dazerdude/json-everything/source/gojson"
)

// init lives in a separate package to avoid an import cycle in the root
// package. Importing this package for its side effect switches the global
// JSON driver to goccy/go-json (or its stub when built without -tags gojson).
func init() { jsonschema.SetJSONDriver(drvgojson.Driver()) }
