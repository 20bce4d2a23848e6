package jsonschema

import "github.com/dazerdude/json-everything/i18n"

// allOf/anyOf/oneOf apply subschemas to the SAME instance as their
// parent, so any annotations those subschemas produce (which properties or
// items they evaluated) belong to the parent's evaluation too - hence each
// branch gets its own annotationFrame that is merged into the parent frame
// on success, instead of the fresh-and-discarded frame used for per-key
// descents in keyword_object.go/keyword_array.go. not also evaluates its
// subschema in its own frame, but that frame is always discarded.

type allOfKeyword struct{ schemas []*Schema }

func (k *allOfKeyword) Name() string { return "allOf" }
func (k *allOfKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	ok := true
	var issues Issues
	for i, sub := range k.schemas {
		branch := newAnnotationFrame()
		cOK, cIss := evaluateSchema(ec, sub, instance, path, branch)
		if cOK {
			frame.merge(branch)
		} else {
			ok = false
			issues = append(issues, cIss...)
			if ec.shortCircuit {
				break
			}
		}
		_ = i
	}
	if !ok {
		return false, append(Issues{{Path: path.String(), Code: CodeAllOf, Message: i18n.T(CodeAllOf, nil), Hint: "not all schemas in allOf matched"}}, issues...)
	}
	return true, nil
}

func buildAllOf(bc *buildCtx) (Keyword, error) {
	schemas, ok := asSchemaArray(bc, "allOf", itoa)
	if !ok {
		return nil, nil
	}
	return &allOfKeyword{schemas: schemas}, nil
}

type anyOfKeyword struct{ schemas []*Schema }

func (k *anyOfKeyword) Name() string { return "anyOf" }
func (k *anyOfKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	var allIssues Issues
	matched := false
	for _, sub := range k.schemas {
		branch := newAnnotationFrame()
		cOK, cIss := evaluateSchema(ec, sub, instance, path, branch)
		if cOK {
			matched = true
			frame.merge(branch)
			if ec.shortCircuit {
				break
			}
		} else {
			allIssues = append(allIssues, cIss...)
		}
	}
	if matched {
		return true, nil
	}
	return false, append(Issues{{Path: path.String(), Code: CodeAnyOf, Message: i18n.T(CodeAnyOf, nil), Hint: "no schema in anyOf matched"}}, allIssues...)
}

func buildAnyOf(bc *buildCtx) (Keyword, error) {
	schemas, ok := asSchemaArray(bc, "anyOf", itoa)
	if !ok {
		return nil, nil
	}
	return &anyOfKeyword{schemas: schemas}, nil
}

type oneOfKeyword struct{ schemas []*Schema }

func (k *oneOfKeyword) Name() string { return "oneOf" }
func (k *oneOfKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	var allIssues Issues
	matchedCount := 0
	var matchedFrame *annotationFrame
	for _, sub := range k.schemas {
		branch := newAnnotationFrame()
		cOK, cIss := evaluateSchema(ec, sub, instance, path, branch)
		if cOK {
			matchedCount++
			matchedFrame = branch
		} else {
			allIssues = append(allIssues, cIss...)
		}
	}
	switch matchedCount {
	case 1:
		frame.merge(matchedFrame)
		return true, nil
	case 0:
		return false, append(Issues{{Path: path.String(), Code: CodeOneOf, Message: i18n.T(CodeOneOf, nil), Hint: "no schema in oneOf matched"}}, allIssues...)
	default:
		return false, Issues{{Path: path.String(), Code: CodeOneOf, Message: i18n.T(CodeOneOf, nil), Hint: "more than one schema in oneOf matched"}}
	}
}

func buildOneOf(bc *buildCtx) (Keyword, error) {
	schemas, ok := asSchemaArray(bc, "oneOf", itoa)
	if !ok {
		return nil, nil
	}
	return &oneOfKeyword{schemas: schemas}, nil
}

type notKeyword struct{ schema *Schema }

func (k *notKeyword) Name() string { return "not" }
func (k *notKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	cOK, _ := evaluateSchema(ec, k.schema, instance, path, newAnnotationFrame())
	if cOK {
		return fail(path, CodeNot, "value matched a schema under not")
	}
	return pass()
}

func buildNot(bc *buildCtx) (Keyword, error) {
	sub, err := bc.compileChild(bc.raw, "not")
	if err != nil {
		return nil, err
	}
	return &notKeyword{schema: sub}, nil
}
