package jsonschema

import (
	"fmt"
	"regexp"

	"github.com/dazerdude/json-everything/i18n"
)

func asObject(instance any) (map[string]any, bool) {
	m, ok := instance.(map[string]any)
	return m, ok
}

type propertiesKeyword struct{ props map[string]*Schema }

func (k *propertiesKeyword) Name() string { return "properties" }
func (k *propertiesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for name, sub := range k.props {
		v, present := m[name]
		if !present {
			continue
		}
		cOK, cIss := evaluateSchema(ec, sub, v, path.Child(name), newAnnotationFrame())
		if cOK {
			frame.markProp(name)
		} else {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildProperties(bc *buildCtx) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	props := make(map[string]*Schema, len(m))
	for name, v := range m {
		sub, err := bc.compileChildAt(v, "properties", name)
		if err != nil {
			return nil, err
		}
		props[name] = sub
	}
	return &propertiesKeyword{props: props}, nil
}

type patternPropEntry struct {
	re     *regexp.Regexp
	schema *Schema
}

type patternPropertiesKeyword struct{ entries []patternPropEntry }

func (k *patternPropertiesKeyword) Name() string { return "patternProperties" }
func (k *patternPropertiesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for name, v := range m {
		for _, e := range k.entries {
			if e.re == nil || !e.re.MatchString(name) {
				continue
			}
			cOK, cIss := evaluateSchema(ec, e.schema, v, path.Child(name), newAnnotationFrame())
			if cOK {
				frame.markProp(name)
			} else {
				ok = false
				issues = append(issues, cIss...)
			}
		}
	}
	return ok, issues
}

func buildPatternProperties(bc *buildCtx) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	entries := make([]patternPropEntry, 0, len(m))
	for pat, v := range m {
		sub, err := bc.compileChildAt(v, "patternProperties", pat)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("patternProperties: invalid pattern %q: %w", pat, err)
		}
		entries = append(entries, patternPropEntry{re: re, schema: sub})
	}
	return &patternPropertiesKeyword{entries: entries}, nil
}

// staticallyKnownProps reports whether name is covered by the sibling
// "properties" map or matches a sibling "patternProperties" pattern,
// without running any subschema - used by additionalProperties to find the
// "additional" keys.
func staticallyKnownProps(siblings map[string]any, name string) bool {
	if pm, ok := siblings["properties"].(map[string]any); ok {
		if _, ok := pm[name]; ok {
			return true
		}
	}
	if pp, ok := siblings["patternProperties"].(map[string]any); ok {
		for pat := range pp {
			if re, err := regexp.Compile(pat); err == nil && re.MatchString(name) {
				return true
			}
		}
	}
	return false
}

type additionalPropertiesKeyword struct {
	schema   *Schema
	siblings map[string]any
}

func (k *additionalPropertiesKeyword) Name() string { return "additionalProperties" }
func (k *additionalPropertiesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for name, v := range m {
		if staticallyKnownProps(k.siblings, name) {
			continue
		}
		cOK, cIss := evaluateSchema(ec, k.schema, v, path.Child(name), newAnnotationFrame())
		if cOK {
			frame.markProp(name)
		} else {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildAdditionalProperties(bc *buildCtx) (Keyword, error) {
	sub, err := bc.compileChild(bc.raw, "additionalProperties")
	if err != nil {
		return nil, err
	}
	return &additionalPropertiesKeyword{schema: sub, siblings: bc.siblings}, nil
}

type unevaluatedPropertiesKeyword struct{ schema *Schema }

func (k *unevaluatedPropertiesKeyword) Name() string { return "unevaluatedProperties" }
func (k *unevaluatedPropertiesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for name, v := range m {
		if frame.evaluatedProps[name] {
			continue
		}
		cOK, cIss := evaluateSchema(ec, k.schema, v, path.Child(name), newAnnotationFrame())
		if cOK {
			frame.markProp(name)
		} else {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildUnevaluatedProperties(bc *buildCtx) (Keyword, error) {
	sub, err := bc.compileChild(bc.raw, "unevaluatedProperties")
	if err != nil {
		return nil, err
	}
	return &unevaluatedPropertiesKeyword{schema: sub}, nil
}

type propertyNamesKeyword struct{ schema *Schema }

func (k *propertyNamesKeyword) Name() string { return "propertyNames" }
func (k *propertyNamesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for name := range m {
		cOK, cIss := evaluateSchema(ec, k.schema, name, path.Child(name), newAnnotationFrame())
		if !cOK {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildPropertyNames(bc *buildCtx) (Keyword, error) {
	sub, err := bc.compileChild(bc.raw, "propertyNames")
	if err != nil {
		return nil, err
	}
	return &propertyNamesKeyword{schema: sub}, nil
}

type requiredKeyword struct{ names []string }

func (k *requiredKeyword) Name() string { return "required" }
func (k *requiredKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	var issues Issues
	for _, name := range k.names {
		if _, present := m[name]; !present {
			issues = append(issues, Issue{Path: path.Child(name).String(), Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "required property missing: " + name})
		}
	}
	return len(issues) == 0, issues
}

func buildRequired(bc *buildCtx) (Keyword, error) {
	return &requiredKeyword{names: stringSliceFrom(bc.raw)}, nil
}

type propertyCountKeyword struct {
	max   bool
	limit int
}

func (k *propertyCountKeyword) Name() string {
	if k.max {
		return "maxProperties"
	}
	return "minProperties"
}
func (k *propertyCountKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	n := len(m)
	if k.max {
		if n <= k.limit {
			return pass()
		}
		return failf(path, CodeMaxProperties, "object has %d properties, more than maxProperties %d", n, k.limit)
	}
	if n >= k.limit {
		return pass()
	}
	return failf(path, CodeMinProperties, "object has %d properties, fewer than minProperties %d", n, k.limit)
}

func buildMinProperties(bc *buildCtx) (Keyword, error) {
	return &propertyCountKeyword{limit: intFromAny(bc.raw)}, nil
}
func buildMaxProperties(bc *buildCtx) (Keyword, error) {
	return &propertyCountKeyword{max: true, limit: intFromAny(bc.raw)}, nil
}

type dependentRequiredKeyword struct{ deps map[string][]string }

func (k *dependentRequiredKeyword) Name() string { return "dependentRequired" }
func (k *dependentRequiredKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	var issues Issues
	for trigger, needed := range k.deps {
		if _, present := m[trigger]; !present {
			continue
		}
		for _, n := range needed {
			if _, present := m[n]; !present {
				issues = append(issues, Issue{Path: path.String(), Code: CodeDependentRequired, Message: i18n.T(CodeDependentRequired, nil), Hint: "property " + trigger + " requires " + n})
			}
		}
	}
	return len(issues) == 0, issues
}

func buildDependentRequired(bc *buildCtx) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	deps := make(map[string][]string, len(m))
	for k, v := range m {
		deps[k] = stringSliceFrom(v)
	}
	return &dependentRequiredKeyword{deps: deps}, nil
}

// dependenciesKeyword implements the legacy draft<=7 "dependencies" keyword,
// where each entry is either an array of required property names or a
// subschema applied to the whole object.
type dependenciesKeyword struct {
	requiredDeps map[string][]string
	schemaDeps   map[string]*Schema
}

func (k *dependenciesKeyword) Name() string { return "dependencies" }
func (k *dependenciesKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	m, ok := asObject(instance)
	if !ok {
		return pass()
	}
	ok = true
	var issues Issues
	for trigger, needed := range k.requiredDeps {
		if _, present := m[trigger]; !present {
			continue
		}
		for _, n := range needed {
			if _, present := m[n]; !present {
				ok = false
				issues = append(issues, Issue{Path: path.String(), Code: CodeDependentRequired, Message: i18n.T(CodeDependentRequired, nil), Hint: "property " + trigger + " requires " + n})
			}
		}
	}
	for trigger, sub := range k.schemaDeps {
		if _, present := m[trigger]; !present {
			continue
		}
		cOK, cIss := evaluateSchema(ec, sub, instance, path, newAnnotationFrame())
		if !cOK {
			ok = false
			issues = append(issues, cIss...)
		}
	}
	return ok, issues
}

func buildDependencies(bc *buildCtx) (Keyword, error) {
	m, _ := bc.raw.(map[string]any)
	k := &dependenciesKeyword{requiredDeps: map[string][]string{}, schemaDeps: map[string]*Schema{}}
	for name, v := range m {
		switch t := v.(type) {
		case []any:
			k.requiredDeps[name] = stringSliceFrom(t)
		default:
			sub, err := bc.compileChildAt(v, "dependencies", name)
			if err != nil {
				return nil, err
			}
			k.schemaDeps[name] = sub
		}
	}
	return k, nil
}
