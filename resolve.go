package jsonschema

import "fmt"

// resolveRef resolves a $ref value against s's base URI through the shared
// registry. $ref is always a static, lexical lookup: the same $ref string
// always resolves to the same schema regardless of dynamic scope.
func resolveRef(reg *Registry, s *Schema, ref string) (*Schema, error) {
	abs, err := JoinURI(s.BaseURI, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CodeUnresolvedRef, err)
	}
	target, ok := reg.Lookup(abs)
	if !ok {
		return nil, fmt.Errorf("%s: %s", CodeUnresolvedRef, abs)
	}
	return target, nil
}

// resolveDynamicRef implements the six-step $dynamicRef algorithm:
//  1. Resolve the $dynamicRef value lexically, exactly like $ref, giving a
//     "lexical target".
//  2. If the lexical target has no $dynamicAnchor, the result is just the
//     lexical target (behaves like $ref).
//  3. Otherwise walk the dynamic scope stack from the OUTERMOST frame
//     inward, looking for the first resource that declares a
//     $dynamicAnchor with the same name.
//  4. If found, that schema wins over the lexical target.
//  5. If not found, the lexical target from step 1 is used.
//  6. The winning schema is evaluated against the current instance in the
//     caller's dynamic scope (handled by the $dynamicRef keyword itself).
func resolveDynamicRef(ec *evalContext, s *Schema, ref string) (*Schema, error) {
	lexical, err := resolveRef(ec.reg, s, ref)
	if err != nil {
		return nil, err
	}
	if lexical.DynamicAnchor == "" {
		return lexical, nil
	}
	for _, frame := range ec.dynamicPath {
		if frame == nil {
			continue
		}
		if found, ok := ec.reg.LookupDynamicAnchor(frame.BaseURI, lexical.DynamicAnchor); ok {
			return found, nil
		}
	}
	return lexical, nil
}
