package jsonschema

import "github.com/dazerdude/json-everything/i18n"

// Validate evaluates instance against the compiled schema s, using reg to
// resolve any $ref/$dynamicRef encountered. It implements the evaluation
// algorithm from the ground up: boolean short-circuit, draft/vocabulary
// filtering already baked into s.Keywords by compile time, priority-then-
// name keyword ordering, a fresh annotation frame per schema object,
// AND-merge of keyword results, and flag-mode short-circuit.
func Validate(reg *Registry, s *Schema, instance any, opts Options) (bool, Issues) {
	ec := newEvalContext(reg, opts)
	ok, iss := evaluateSchema(ec, s, instance, Pointer{}, newAnnotationFrame())
	return ok, iss
}

// evaluateSchema applies s to instance at the given instance path, using
// frame as the annotation accumulator for this schema object.
func evaluateSchema(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	if s == nil {
		return true, nil
	}
	if s.Bool != nil {
		if *s.Bool {
			return true, nil
		}
		return false, Issues{{Path: path.String(), Code: CodeInvalidSchema, Message: i18n.T(CodeInvalidSchema, nil), Hint: "instance rejected by boolean schema false"}}
	}

	done, fresh := ec.enter(s.Location, instance)
	defer done()
	if !fresh {
		return false, Issues{{Path: path.String(), Code: CodeCycle, Message: i18n.T(CodeCycle, nil), Hint: "reference cycle detected"}}
	}

	ec.dynamicPath = append(ec.dynamicPath, s)
	defer func() { ec.dynamicPath = ec.dynamicPath[:len(ec.dynamicPath)-1] }()

	ok := true
	var issues Issues
	for _, kw := range s.Keywords {
		kOK, kIss := kw.Evaluate(ec, s, instance, path, frame)
		if !kOK {
			ok = false
			issues = append(issues, kIss...)
			if ec.shortCircuit {
				break
			}
		}
	}
	return ok, issues
}
