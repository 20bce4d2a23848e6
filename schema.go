package jsonschema

import "fmt"

// Schema is a compiled JSON Schema node: either a boolean schema (Bool
// non-nil) or an object schema carrying zero or more Keywords in the
// evaluation order computed at compile time.
type Schema struct {
	Bool *bool

	ID            string // the raw $id as declared, "" if absent
	BaseURI       string // absolute URI this node's relative references resolve against
	Anchor        string // $anchor name, if any
	DynamicAnchor string // $dynamicAnchor name, if any
	Draft         Draft
	Vocab         VocabSet

	Keywords []Keyword // sorted by (priority, name) at compile time

	// Location is the canonical absolute-URI#/json-pointer identity of this
	// node, used as half of the reference-cycle detection key.
	Location string

	reg *Registry
	raw map[string]any // the decoded keyword map, read at evaluation time by additionalItems (sibling items) and $recursiveRef ($recursiveAnchor)
}

func (s *Schema) String() string {
	if s == nil {
		return "<nil schema>"
	}
	if s.Bool != nil {
		return fmt.Sprintf("<bool schema %v>", *s.Bool)
	}
	return fmt.Sprintf("<schema %s>", s.Location)
}

// Keyword is implemented by every JSON Schema keyword this validator
// understands. Evaluate reports whether the instance satisfies the
// keyword and appends any Issues on failure; it also contributes
// annotations to the shared frame for the enclosing schema object.
type Keyword interface {
	Name() string
	Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues)
}

// buildCtx bundles everything a keywordFactory needs: its own raw value,
// the full sibling keyword map (some keywords, like additionalProperties,
// need to inspect siblings such as properties/patternProperties to compute
// which keys are "statically known"), and the lexical context needed to
// recursively compile any subschemas it owns.
type buildCtx struct {
	raw      any
	siblings map[string]any
	c        *compiler
	ptr      Pointer
	baseURI  string
	draft    Draft
	vocab    VocabSet
}

func (bc *buildCtx) compileChild(v any, tok string) (*Schema, error) {
	return bc.c.compileNode(v, bc.ptr.Child(tok), bc.baseURI, bc.draft, bc.vocab)
}

// compileChildAt compiles v at a pointer nested toks deep under bc.ptr, for
// keywords whose children live under an extra carrier segment (e.g.
// "properties"/name, "$defs"/name, "allOf"/index) rather than directly under
// the keyword's own single token.
func (bc *buildCtx) compileChildAt(v any, toks ...string) (*Schema, error) {
	p := bc.ptr
	for _, t := range toks {
		p = p.Child(t)
	}
	return bc.c.compileNode(v, p, bc.baseURI, bc.draft, bc.vocab)
}

// keywordFactory builds a Keyword from a buildCtx.
type keywordFactory func(bc *buildCtx) (Keyword, error)

type keywordSpec struct {
	factory    keywordFactory
	priority   int
	vocabulary string  // "" means always active regardless of vocabulary set
	drafts     []Draft // nil means all drafts
}

func draftAllows(spec keywordSpec, d Draft) bool {
	if len(spec.drafts) == 0 {
		return true
	}
	for _, ad := range spec.drafts {
		if ad == d {
			return true
		}
	}
	return false
}
