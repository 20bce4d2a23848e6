package jsonschema

// $id/$anchor/$dynamicAnchor/$defs are all resolved at compile time (see
// compileNode's $id/$anchor/$dynamicAnchor handling, Registry.registerAlias
// and compiler.addAnchor) - they are built as noopKeyword/defsKeyword, whose
// Evaluate is a pure no-op, and they sit in the table so they still occupy a
// priority slot. compileNode skips keys that are not in the table rather than
// rejecting them.

type noopKeyword struct{ name string }

func (k *noopKeyword) Name() string { return k.name }
func (k *noopKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	return pass()
}

func buildID(bc *buildCtx) (Keyword, error)            { return &noopKeyword{name: "$id"}, nil }
func buildAnchor(bc *buildCtx) (Keyword, error)        { return &noopKeyword{name: "$anchor"}, nil }
func buildDynamicAnchor(bc *buildCtx) (Keyword, error) { return &noopKeyword{name: "$dynamicAnchor"}, nil }
func buildSchemaKeyword(bc *buildCtx) (Keyword, error) { return &noopKeyword{name: "$schema"}, nil }
func buildVocabulary(bc *buildCtx) (Keyword, error)    { return &noopKeyword{name: "$vocabulary"}, nil }

// $defs/definitions hold named subschemas that are only reachable via $ref;
// they still need to be compiled (so $ref targets and nested $id resources
// inside them get registered) even though they never run directly against
// an instance.
type defsKeyword struct {
	name    string
	schemas map[string]*Schema
}

func (k *defsKeyword) Name() string { return k.name }
func (k *defsKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	return pass()
}

func buildDefs(bc *buildCtx) (Keyword, error) {
	return buildDefsNamed(bc, "$defs")
}

func buildDefinitions(bc *buildCtx) (Keyword, error) {
	return buildDefsNamed(bc, "definitions")
}

func buildDefsNamed(bc *buildCtx, name string) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	schemas := make(map[string]*Schema, len(m))
	for k, v := range m {
		sub, err := bc.compileChildAt(v, name, k)
		if err != nil {
			return nil, err
		}
		schemas[k] = sub
	}
	return &defsKeyword{name: name, schemas: schemas}, nil
}
