// Package openapi adapts Kubernetes CRD and OpenAPI v3 documents into
// compiled schemas, unwrapping the envelope a CRD or bundle wraps its
// schema in before handing the inner document to the draft-07-flavored
// object model OpenAPI v3 schemas use.
package openapi

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/dazerdude/json-everything"
)

// Diag collects non-fatal warnings produced while unwrapping a document.
type Diag struct {
	Warnings []string
}

func (d *Diag) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Import locates the OpenAPI v3 schema embedded in doc (a decoded
// map[string]any, raw JSON bytes, or a value encoding/json marshals to an
// object; YAML bytes are not decoded) and compiles it against reg.
// OpenAPI v3 schemas have no $schema keyword of their own, so they are
// always compiled as draft-07-flavored documents (the dialect
// kubernetes-sigs/controller-tools and the OpenAPI v3 spec itself both
// assume): "nullable" aside, their object/array/validation keyword set is
// a subset of draft 7's.
func Import(reg *jsonschema.Registry, uri string, doc any, opts jsonschema.Options) (*jsonschema.Schema, *Diag, error) {
	d := &Diag{}
	if doc == nil {
		return nil, d, errors.New("openapi: nil schema")
	}

	root, err := toMap(doc)
	if err != nil {
		return nil, d, err
	}

	if spec, ok := root["openAPIV3Schema"].(map[string]any); ok {
		root = spec
	} else if unwrapped := unwrapCRDSchema(root); unwrapped != nil {
		root = unwrapped
	}

	if t, _ := root["type"].(string); t != "" && t != "object" {
		d.warnf("non-object root schema (type=%q) imported as-is", t)
	}

	opts.DefaultDraft = jsonschema.Draft7
	s, err := reg.Register(uri, normalizeNullable(root), opts)
	return s, d, err
}

func toMap(doc any) (map[string]any, error) {
	switch t := doc.(type) {
	case map[string]any:
		return t, nil
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(t, &m); err != nil {
			return nil, fmt.Errorf("openapi: invalid JSON: %w", err)
		}
		return m, nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("openapi: cannot marshal input: %w", err)
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("openapi: invalid marshaled JSON: %w", err)
		}
		return m, nil
	}
}

// unwrapCRDSchema extracts openAPIV3Schema from a Kubernetes CRD document:
// spec.versions[].schema.openAPIV3Schema (preferring served=true), falling
// back to the legacy spec.validation.openAPIV3Schema.
func unwrapCRDSchema(root map[string]any) map[string]any {
	spec, ok := root["spec"].(map[string]any)
	if !ok {
		return nil
	}
	if vers, ok := spec["versions"].([]any); ok {
		var firstFound map[string]any
		for _, v := range vers {
			vm, _ := v.(map[string]any)
			if vm == nil {
				continue
			}
			served := true
			if sv, ok := vm["served"].(bool); ok {
				served = sv
			}
			sch, ok := vm["schema"].(map[string]any)
			if !ok {
				continue
			}
			oas, ok := sch["openAPIV3Schema"].(map[string]any)
			if !ok {
				continue
			}
			if served {
				return oas
			}
			if firstFound == nil {
				firstFound = oas
			}
		}
		if firstFound != nil {
			return firstFound
		}
	}
	if val, ok := spec["validation"].(map[string]any); ok {
		if oas, ok := val["openAPIV3Schema"].(map[string]any); ok {
			return oas
		}
	}
	return nil
}

// normalizeNullable rewrites OpenAPI v3's "nullable: true" into the
// type-array form ("type": [t, "null"]) our evaluator understands, since
// OpenAPI v3 (unlike JSON Schema draft 6+) has no native null type.
func normalizeNullable(node any) any {
	m, ok := node.(map[string]any)
	if !ok {
		if arr, ok := node.([]any); ok {
			out := make([]any, len(arr))
			for i, v := range arr {
				out[i] = normalizeNullable(v)
			}
			return out
		}
		return node
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	if nullable, _ := out["nullable"].(bool); nullable {
		delete(out, "nullable")
		switch t := out["type"].(type) {
		case string:
			out["type"] = []any{t, "null"}
		case []any:
			out["type"] = append(append([]any{}, t...), "null")
		}
	}
	for _, key := range []string{"properties", "patternProperties", "$defs", "definitions"} {
		if sub, ok := out[key].(map[string]any); ok {
			norm := make(map[string]any, len(sub))
			for k, v := range sub {
				norm[k] = normalizeNullable(v)
			}
			out[key] = norm
		}
	}
	for _, key := range []string{"items", "additionalProperties", "not", "propertyNames", "contains"} {
		if sub, ok := out[key]; ok {
			out[key] = normalizeNullable(sub)
		}
	}
	for _, key := range []string{"allOf", "anyOf", "oneOf"} {
		if sub, ok := out[key].([]any); ok {
			norm := make([]any, len(sub))
			for i, v := range sub {
				norm[i] = normalizeNullable(v)
			}
			out[key] = norm
		}
	}
	return out
}
