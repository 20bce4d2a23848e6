package jsonschema

// annotationFrame accumulates the keys/indices that applicator keywords
// (properties, items, allOf, $ref, if/then/else, ...) have evaluated for a
// single (schema object, instance) evaluation. unevaluatedProperties and
// unevaluatedItems read the frame after every earlier-priority keyword has
// run, per the consolidation rule in the evaluation algorithm: an
// evaluation frame is fresh per schema object application, and child
// frames (from allOf/$ref/if-then-else branches taken) merge their
// evaluated sets up into the parent via union, never replacement.
type annotationFrame struct {
	evaluatedProps map[string]bool
	evaluatedItems map[int]bool
	// values records the last annotation value produced per keyword name,
	// for keywords whose own value (not just a key-set) is consumed
	// elsewhere (for example "title"/"default" in a detailed report).
	values map[string]any
}

func newAnnotationFrame() *annotationFrame {
	return &annotationFrame{
		evaluatedProps: map[string]bool{},
		evaluatedItems: map[int]bool{},
		values:         map[string]any{},
	}
}

func (f *annotationFrame) markProp(k string)   { f.evaluatedProps[k] = true }
func (f *annotationFrame) markItem(i int)      { f.evaluatedItems[i] = true }
func (f *annotationFrame) setValue(k string, v any) { f.values[k] = v }

// merge unions a child frame's evaluated sets into f, implementing the
// annotation-consolidation step run after every applicator keyword.
func (f *annotationFrame) merge(child *annotationFrame) {
	if child == nil {
		return
	}
	for k := range child.evaluatedProps {
		f.evaluatedProps[k] = true
	}
	for i := range child.evaluatedItems {
		f.evaluatedItems[i] = true
	}
	for k, v := range child.values {
		f.values[k] = v
	}
}

// evalContext carries the per-Validate-call state threaded through every
// keyword's Evaluate: the registry for resolving $ref/$dynamicRef, the
// options in effect, and the dynamic scope stack and cycle-detection set,
// which are pushed and popped as evaluation descends.
type evalContext struct {
	reg         *Registry
	opts        Options
	dynamicPath []*Schema // stack of schemas entered via $ref/$dynamicRef/root, outermost first
	visiting    map[string]bool
	shortCircuit bool
}

func newEvalContext(reg *Registry, opts Options) *evalContext {
	return &evalContext{
		reg:          reg,
		opts:         opts,
		visiting:     map[string]bool{},
		shortCircuit: opts.OutputFormat == OutputFlag,
	}
}

// cycleKey is the (absolute reference, instance fingerprint) pair that
// guards against infinite recursion on recursive schemas (for example a
// "definitions/node" schema whose "children" property $refs itself).
func cycleKey(loc string, instance any) string {
	return loc + "\x00" + Fingerprint(instance)
}

func (ec *evalContext) enter(loc string, instance any) (func(), bool) {
	key := cycleKey(loc, instance)
	if ec.visiting[key] {
		return func() {}, false
	}
	ec.visiting[key] = true
	return func() { delete(ec.visiting, key) }, true
}
