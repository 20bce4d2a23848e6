package jsonschema

// ifThenElseKeyword implements if/then/else as a single combined keyword
// compiled once under the name "if", since the three only make sense
// together: "then"/"else" alone (without a sibling "if") are no-ops.
type ifThenElseKeyword struct {
	ifSchema   *Schema
	thenSchema *Schema
	elseSchema *Schema
}

func (k *ifThenElseKeyword) Name() string { return "if" }
func (k *ifThenElseKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	condFrame := newAnnotationFrame()
	condOK, _ := evaluateSchema(ec, k.ifSchema, instance, path, condFrame)
	if condOK {
		// if's own annotations are kept on a successful match, same as any
		// other branch keyword - only its assertion result is used to pick
		// then/else.
		frame.merge(condFrame)
		if k.thenSchema == nil {
			return pass()
		}
		branch := newAnnotationFrame()
		ok, issues := evaluateSchema(ec, k.thenSchema, instance, path, branch)
		if ok {
			frame.merge(branch)
		}
		return ok, issues
	}
	if k.elseSchema == nil {
		return pass()
	}
	branch := newAnnotationFrame()
	ok, issues := evaluateSchema(ec, k.elseSchema, instance, path, branch)
	if ok {
		frame.merge(branch)
	}
	return ok, issues
}

func buildIf(bc *buildCtx) (Keyword, error) {
	ifSchema, err := bc.compileChild(bc.raw, "if")
	if err != nil {
		return nil, err
	}
	k := &ifThenElseKeyword{ifSchema: ifSchema}
	if thenRaw, ok := bc.siblings["then"]; ok {
		thenSchema, err := bc.c.compileNode(thenRaw, bc.ptr.Child("then"), bc.baseURI, bc.draft, bc.vocab)
		if err != nil {
			return nil, err
		}
		k.thenSchema = thenSchema
	}
	if elseRaw, ok := bc.siblings["else"]; ok {
		elseSchema, err := bc.c.compileNode(elseRaw, bc.ptr.Child("else"), bc.baseURI, bc.draft, bc.vocab)
		if err != nil {
			return nil, err
		}
		k.elseSchema = elseSchema
	}
	return k, nil
}

// buildThen/buildElse are no-ops: they're compiled as part of buildIf above.
// A bare "then"/"else" without a sibling "if" has no effect.
func buildThen(bc *buildCtx) (Keyword, error) { return nil, nil }
func buildElse(bc *buildCtx) (Keyword, error) { return nil, nil }

type dependentSchemasKeyword struct{ schemas map[string]*Schema }

func (k *dependentSchemasKeyword) Name() string { return "dependentSchemas" }
func (k *dependentSchemasKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for trigger, sub := range k.schemas {
		if _, present := m[trigger]; !present {
			continue
		}
		branch := newAnnotationFrame()
		cOK, cIss := evaluateSchema(ec, sub, instance, path, branch)
		if cOK {
			frame.merge(branch)
		} else {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildDependentSchemas(bc *buildCtx) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	schemas := make(map[string]*Schema, len(m))
	for name, v := range m {
		sub, err := bc.compileChildAt(v, "dependentSchemas", name)
		if err != nil {
			return nil, err
		}
		schemas[name] = sub
	}
	return &dependentSchemasKeyword{schemas: schemas}, nil
}
