package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// compiler holds the mutable state accumulated while walking one registered
// document: the anchors and dynamic anchors declared anywhere in the tree
// (scoped by the nearest enclosing base URI), and a pointer-indexed map of
// every node compiled, for "#/json/pointer"-style fragment lookups.
type compiler struct {
	reg            *Registry
	opts           Options
	baseURI        string
	anchors        map[string]map[string]*Schema // baseURI -> anchor name -> schema
	dynamicAnchors map[string]map[string]*Schema
	byPointer      map[string]*Schema // root-document-relative pointer -> schema
}

// Compile parses and compiles a standalone schema document without
// registering it, using u as its base URI for relative $ref resolution.
// Most callers should use a Registry (via Register) so the result is
// addressable by other documents' $ref.
func Compile(doc any, u string, opts Options) (*Schema, error) {
	reg := NewRegistry()
	return reg.Register(u, doc, opts)
}

// CompileYAML decodes a YAML-encoded schema document (as commonly used for
// Kubernetes CRDs and OpenAPI bundles) and compiles it.
func CompileYAML(data []byte, u string, opts Options) (*Schema, error) {
	v, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Compile(v, u, opts)
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid YAML: %w", err)
	}
	return normalizeYAMLValue(v), nil
}

// normalizeYAMLValue converts the map[string]interface{} that yaml.v3
// produces for mappings into map[string]any consistently, and recurses
// into slices, so downstream code never has to special-case YAML's decoded
// shape versus encoding/json's.
func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAMLValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprintf("%v", k)] = normalizeYAMLValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeYAMLValue(vv)
		}
		return out
	case int:
		return json.Number(fmt.Sprintf("%d", t))
	case float64:
		return json.Number(fmt.Sprintf("%v", t))
	default:
		return v
	}
}

// compileDocument decodes doc if needed (raw JSON/YAML bytes, or an
// already-decoded any value) and compiles its root node.
func (c *compiler) compileDocument(doc any) (*Schema, error) {
	c.anchors = map[string]map[string]*Schema{}
	c.dynamicAnchors = map[string]map[string]*Schema{}
	c.byPointer = map[string]*Schema{}

	v, err := c.asValue(doc)
	if err != nil {
		return nil, err
	}

	draft := c.opts.DefaultDraft
	vocab := defaultVocabSet(draft)
	if m, ok := v.(map[string]any); ok {
		if sv, ok := m["$schema"].(string); ok {
			if d, ok := DraftFromMetaSchema(sv); ok {
				draft = d
				vocab = defaultVocabSet(d)
			} else {
				return nil, fmt.Errorf("jsonschema: %w: %q", errUnknownDraft, sv)
			}
		}
		if vm, ok := m["$vocabulary"].(map[string]any); ok && (draft == Draft2019 || draft == Draft2020) {
			vocab = vocabFromDeclaration(vm)
		}
	}
	if draft == DraftUnknown {
		return nil, errUnknownDraft
	}

	root, err := c.compileNode(v, Pointer{}, c.baseURI, draft, vocab)
	if err != nil {
		return nil, err
	}
	return root, nil
}

var errUnknownDraft = fmt.Errorf("jsonschema: %s", CodeUnknownDraft)

func vocabFromDeclaration(vm map[string]any) VocabSet {
	out := VocabSet{}
	for uri, reqd := range vm {
		req, _ := reqd.(bool)
		name := vocabularyShortName(uri)
		if name == "" {
			continue
		}
		out[name] = req || out[name]
	}
	return out
}

// vocabularyShortName maps a full $vocabulary URI to the short name used by
// keywordSpec.vocabulary ("core", "applicator", "validation", ...).
func vocabularyShortName(uri string) string {
	for _, name := range []string{"core", "applicator", "unevaluated", "validation", "meta-data", "format-annotation", "format-assertion", "content"} {
		if hasSuffixFold(uri, "vocab/"+name) {
			if name == "format-assertion" {
				return "format"
			}
			if name == "format-annotation" {
				return "format-annotation"
			}
			return name
		}
	}
	return ""
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

func (c *compiler) asValue(doc any) (any, error) {
	switch t := doc.(type) {
	case []byte:
		return decodeJSONOrYAML(t)
	case string:
		return decodeJSONOrYAML([]byte(t))
	default:
		return doc, nil
	}
}

func decodeJSONOrYAML(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err == nil {
		return v, nil
	}
	return decodeYAML(data)
}

// compileNode compiles a single schema node (boolean or object) found at
// ptr within the document currently being registered.
func (c *compiler) compileNode(v any, ptr Pointer, baseURI string, draft Draft, vocab VocabSet) (*Schema, error) {
	switch t := v.(type) {
	case bool:
		b := t
		s := &Schema{Bool: &b, BaseURI: baseURI, Draft: draft, Vocab: vocab, reg: c.reg}
		s.Location = baseURI + "#" + ptr.String()
		c.byPointer[ptr.String()] = s
		return s, nil
	case map[string]any:
		s := &Schema{BaseURI: baseURI, Draft: draft, Vocab: vocab, raw: t, reg: c.reg}

		if idv, ok := t["$id"].(string); ok && idv != "" {
			abs, err := JoinURI(baseURI, idv)
			if err != nil {
				return nil, fmt.Errorf("jsonschema: invalid $id %q: %w", idv, err)
			}
			s.ID = idv
			baseURI = abs
			c.reg.registerAlias(abs, s, draft)
		}
		s.BaseURI = baseURI
		s.Location = baseURI + "#" + ptr.String()
		c.byPointer[ptr.String()] = s

		if av, ok := t["$anchor"].(string); ok && av != "" {
			s.Anchor = av
			c.addAnchor(c.anchors, baseURI, av, s)
		}
		if dv, ok := t["$dynamicAnchor"].(string); ok && dv != "" {
			s.DynamicAnchor = dv
			c.addAnchor(c.dynamicAnchors, baseURI, dv, s)
		}

		bc := &buildCtx{siblings: t, c: c, ptr: ptr, baseURI: baseURI, draft: draft, vocab: vocab}
		var kws []Keyword
		for name, spec := range keywordTable {
			if !draftAllows(spec, draft) {
				continue
			}
			raw, present := t[name]
			if !present {
				continue
			}
			if spec.vocabulary != "" && (draft == Draft2019 || draft == Draft2020) && vocab != nil && !vocab[spec.vocabulary] {
				continue
			}
			bc.raw = raw
			kw, err := spec.factory(bc)
			if err != nil {
				return nil, fmt.Errorf("jsonschema: %s at %s: %w", name, ptr.String(), err)
			}
			if kw != nil {
				kws = append(kws, kw)
			}
		}
		sort.SliceStable(kws, func(i, j int) bool {
			pi, pj := keywordTable[kws[i].Name()].priority, keywordTable[kws[j].Name()].priority
			if pi != pj {
				return pi < pj
			}
			return kws[i].Name() < kws[j].Name()
		})
		s.Keywords = kws
		return s, nil
	default:
		return nil, fmt.Errorf("jsonschema: schema node must be an object or boolean, got %T", v)
	}
}

func (c *compiler) addAnchor(into map[string]map[string]*Schema, baseURI, name string, s *Schema) {
	m, ok := into[baseURI]
	if !ok {
		m = map[string]*Schema{}
		into[baseURI] = m
	}
	m[name] = s
}

// registerAlias makes a nested $id resource independently addressable by
// installing a second registry entry that shares the already-built Schema.
// Anchors declared within that nested resource are attached lazily once the
// whole document has been walked (see Registry.Register).
func (r *Registry) registerAlias(canon string, s *Schema, draft Draft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[canon]; exists {
		return
	}
	r.entries[canon] = &registryEntry{root: s, draft: draft, anchors: map[string]*Schema{}, dynamicAnchor: map[string]*Schema{}, byPointer: map[string]*Schema{}}
}
