package jsonschema

type refKeyword struct {
	owner *Schema
	ref   string
}

func (k *refKeyword) Name() string { return "$ref" }
func (k *refKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	target, err := resolveRef(ec.reg, k.owner, k.ref)
	if err != nil && s.reg != nil && s.reg != ec.reg {
		// A schema from Compile lives in its own registry; look there too.
		target, err = resolveRef(s.reg, k.owner, k.ref)
	}
	if err != nil {
		return fail(path, CodeUnresolvedRef, err.Error())
	}
	branch := newAnnotationFrame()
	ok, issues := evaluateSchema(ec, target, instance, path, branch)
	if ok {
		frame.merge(branch)
	}
	return ok, issues
}

func buildRef(bc *buildCtx) (Keyword, error) {
	ref, _ := bc.raw.(string)
	owner := &Schema{BaseURI: bc.baseURI}
	return &refKeyword{owner: owner, ref: ref}, nil
}

type dynamicRefKeyword struct {
	owner *Schema
	ref   string
}

func (k *dynamicRefKeyword) Name() string { return "$dynamicRef" }
func (k *dynamicRefKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	target, err := resolveDynamicRef(ec, k.owner, k.ref)
	if err != nil {
		return fail(path, CodeUnresolvedRef, err.Error())
	}
	branch := newAnnotationFrame()
	ok, issues := evaluateSchema(ec, target, instance, path, branch)
	if ok {
		frame.merge(branch)
	}
	return ok, issues
}

func buildDynamicRef(bc *buildCtx) (Keyword, error) {
	ref, _ := bc.raw.(string)
	owner := &Schema{BaseURI: bc.baseURI}
	return &dynamicRefKeyword{owner: owner, ref: ref}, nil
}

// recursiveRefKeyword implements the 2019-09 predecessor of $dynamicRef:
// $recursiveRef is always "#" and $recursiveAnchor:true marks a resource as
// willing to be overridden by an outer dynamic scope. It is modeled as a
// restricted case of $dynamicRef resolution: any schema declaring
// $recursiveAnchor:true behaves as though it had $dynamicAnchor "" at its
// root, and $recursiveRef "#" behaves as $dynamicRef "#".
type recursiveRefKeyword struct {
	owner *Schema
	ref   string
}

func (k *recursiveRefKeyword) Name() string { return "$recursiveRef" }
func (k *recursiveRefKeyword) Evaluate(ec *evalContext, s *Schema, instance any, path Pointer, frame *annotationFrame) (bool, Issues) {
	lexical, err := resolveRef(ec.reg, k.owner, k.ref)
	if err != nil {
		return fail(path, CodeUnresolvedRef, err.Error())
	}
	target := lexical
	anchored, _ := lexical.raw["$recursiveAnchor"].(bool)
	for _, scope := range ec.dynamicPath {
		if anchored && scope != nil && scope.raw != nil {
			if anchor, _ := scope.raw["$recursiveAnchor"].(bool); anchor {
				target = scope
				break
			}
		}
	}
	branch := newAnnotationFrame()
	ok, issues := evaluateSchema(ec, target, instance, path, branch)
	if ok {
		frame.merge(branch)
	}
	return ok, issues
}

func buildRecursiveRef(bc *buildCtx) (Keyword, error) {
	ref, _ := bc.raw.(string)
	owner := &Schema{BaseURI: bc.baseURI}
	return &recursiveRefKeyword{owner: owner, ref: ref}, nil
}

// $recursiveAnchor itself carries no run-time behavior; it is read directly
// off the schema's raw map by $recursiveRef above.
func buildRecursiveAnchor(bc *buildCtx) (Keyword, error) { return nil, nil }
