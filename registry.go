package jsonschema

import (
	"fmt"
	"sync"
)

// registryEntry is everything the registry indexes for one compiled
// resource (one call to Register/Compile).
type registryEntry struct {
	root          *Schema
	draft         Draft
	baseURI       string
	anchors       map[string]*Schema
	dynamicAnchor map[string]*Schema
	byPointer     map[string]*Schema
}

// Registry holds compiled schema resources, keyed by canonical absolute
// URI (fragment stripped). Registration is single-writer; lookups may run
// concurrently with each other but not with Register, matching the
// "long-lived, append-only" resource model.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*registryEntry{}}
}

// Register compiles doc (a decoded schema document, raw JSON bytes, or raw
// YAML bytes) and indexes it under uri. It fails if uri is already
// registered, since every absolute URI must resolve to exactly one schema.
func (r *Registry) Register(uri string, doc any, opts Options) (*Schema, error) {
	canon := CanonicalURI(uri)

	r.mu.Lock()
	if _, exists := r.entries[canon]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("jsonschema: %q already registered", canon)
	}
	// Reserve the slot so a concurrent registration of the same URI fails
	// fast rather than racing the compile below.
	r.entries[canon] = &registryEntry{}
	r.mu.Unlock()

	c := &compiler{reg: r, opts: opts, baseURI: canon}
	root, err := c.compileDocument(doc)
	if err != nil {
		r.mu.Lock()
		delete(r.entries, canon)
		r.mu.Unlock()
		return nil, err
	}

	entry := &registryEntry{
		root:          root,
		draft:         root.Draft,
		baseURI:       root.BaseURI,
		anchors:       c.anchors[root.BaseURI],
		dynamicAnchor: c.dynamicAnchors[root.BaseURI],
		byPointer:     c.byPointer,
	}
	if entry.anchors == nil {
		entry.anchors = map[string]*Schema{}
	}
	if entry.dynamicAnchor == nil {
		entry.dynamicAnchor = map[string]*Schema{}
	}

	r.mu.Lock()
	r.entries[canon] = entry
	// Attach anchors to every nested-$id resource registered as an alias
	// while compiling this document (see compiler.addAnchor / registerAlias).
	for base, names := range c.anchors {
		if alias, ok := r.entries[base]; ok && alias != entry {
			alias.anchors = names
		}
	}
	for base, names := range c.dynamicAnchors {
		if alias, ok := r.entries[base]; ok && alias != entry {
			alias.dynamicAnchor = names
		}
	}
	r.mu.Unlock()
	return root, nil
}

// MustRegister is Register but panics on error; useful for static
// registrations in package init code.
func (r *Registry) MustRegister(uri string, doc any, opts Options) *Schema {
	s, err := r.Register(uri, doc, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup resolves an absolute URI (optionally with a fragment) to a
// compiled Schema: a bare URI returns the resource root, a JSON-Pointer
// fragment descends the tree, and a plain-name fragment resolves against
// that resource's anchors.
func (r *Registry) Lookup(uri string) (*Schema, bool) {
	base, fragment := SplitFragment(uri)
	canon := CanonicalURI(base)

	r.mu.RLock()
	entry, ok := r.entries[canon]
	r.mu.RUnlock()
	if !ok || entry.root == nil {
		return nil, false
	}
	if fragment == "" {
		return entry.root, true
	}
	if IsPointerFragment(fragment) {
		s, ok := entry.byPointer[fragment]
		return s, ok
	}
	if s, ok := entry.anchors[fragment]; ok {
		return s, true
	}
	if s, ok := entry.dynamicAnchor[fragment]; ok {
		return s, true
	}
	return nil, false
}

// LookupDynamicAnchor resolves a $dynamicAnchor name within a specific
// resource only; resolveDynamicRef calls it for the resource of each frame
// on the dynamic scope stack.
func (r *Registry) LookupDynamicAnchor(baseURI, anchor string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[CanonicalURI(baseURI)]
	if !ok {
		return nil, false
	}
	s, ok := entry.dynamicAnchor[anchor]
	return s, ok
}

// Draft reports the draft a registered resource was compiled under.
func (r *Registry) Draft(uri string) (Draft, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[CanonicalURI(uri)]
	if !ok {
		return DraftUnknown, false
	}
	return entry.draft, true
}
