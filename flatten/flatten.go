package flatten

import (
	"fmt"

	"github.com/erraggy/oasflat/internal/maputil"
	"github.com/erraggy/oasflat/oaserrors"
)

// Flattener walks schemas and produces parameter records.
// A Flattener holds no traversal state and is safe for concurrent use.
type Flattener struct {
	// Logger receives diagnostics about unresolved and circular references.
	// If nil, logging is disabled (default)
	Logger Logger
	// Prefix is prepended to every emitted path. Empty by default.
	Prefix string
}

// New creates a Flattener with the given options applied.
func New(opts ...Option) *Flattener {
	f := &Flattener{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// log returns the configured logger, or a no-op logger if none is set.
func (f *Flattener) log() Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return NopLogger{}
}

// Result is the outcome of one flattening walk.
type Result struct {
	// Records holds one record per reachable property path, in the order
	// the walk first reached them. Use Records.Sorted() for output.
	Records *Records
	// Warnings describes unresolved references and cycle cut-offs, in walk order.
	Warnings []string
	// UnresolvedRefs counts references that could not be resolved.
	UnresolvedRefs int
	// CircularRefs counts descents stopped because the reference was
	// already being expanded on the current branch.
	CircularRefs int
}

// Flatten walks schema, a node of doc, and returns its flattened records.
func (f *Flattener) Flatten(doc map[string]any, schema any) *Result {
	return f.FlattenAt(doc, schema, f.Prefix)
}

// FlattenAt is Flatten with an explicit path prefix for the starting schema.
func (f *Flattener) FlattenAt(doc map[string]any, schema any, prefix string) *Result {
	res := &Result{Records: NewRecords()}
	w := &walk{
		doc:    doc,
		active: make(map[string]bool),
		log:    f.log(),
		res:    res,
	}
	w.visit(schema, prefix, "")
	return res
}

// Flatten is a convenience wrapper that flattens schema with default
// settings and returns the records sorted by path.
func Flatten(doc map[string]any, schema any) []ParameterRecord {
	return New().Flatten(doc, schema).Records.Sorted()
}

// walk is the state of a single Flatten call. It is owned by that call and
// passed down the recursion by pointer.
type walk struct {
	doc map[string]any
	// active holds the references being expanded on the current branch
	active map[string]bool
	log    Logger
	res    *Result
}

// visit dispatches on the node's kind. refName names the definition the
// node was reached through, when it was reached through a reference.
func (w *walk) visit(node any, path, refName string) {
	switch Classify(node) {
	case KindReference:
		ref, _ := refOf(node.(map[string]any))
		w.follow(ref, path)
	case KindObject:
		w.object(node.(map[string]any), path, refName)
	case KindArray:
		w.array(node.(map[string]any), path)
	case KindComposition:
		merged, name, folded := w.merge(node.(map[string]any), path)
		if refName == "" {
			refName = name
		}
		// folded references stay on the chain while the merged object is walked
		for _, ref := range folded {
			w.active[ref] = true
		}
		w.object(merged, path, refName)
		for _, ref := range folded {
			delete(w.active, ref)
		}
	case KindPrimitive, KindUnknown:
		// leaves are recorded by the enclosing object's property loop
	}
}

// follow resolves ref and visits its target at the same path.
func (w *walk) follow(ref, path string) {
	if w.active[ref] {
		w.circular(ref, path)
		return
	}
	target, ok := w.resolve(ref, path)
	if !ok {
		return
	}
	w.descend(ref, target, path)
}

// descend visits the resolved target of ref with ref on the active chain.
// The chain is scoped to this branch: ref is removed again on return so a
// sibling branch may expand it too.
func (w *walk) descend(ref string, target any, path string) {
	if w.active[ref] {
		w.circular(ref, path)
		return
	}
	w.active[ref] = true
	defer delete(w.active, ref)
	w.visit(target, path, RefName(ref))
}

func (w *walk) object(schema map[string]any, path, refName string) {
	if path != "" {
		w.res.Records.setType(path, MapType(TypeInfo{Type: "object", RefName: refName}))
	}

	props := propertiesOf(schema)
	required := make(map[string]bool)
	for _, name := range requiredOf(schema) {
		required[name] = true
	}

	for _, name := range maputil.SortedKeys(props) {
		childPath := joinPath(path, name)
		prop, ok := props[name].(map[string]any)
		if !ok {
			w.log.Debug("skipping malformed property schema", "path", childPath)
			continue
		}
		w.property(prop, childPath, required[name])
	}
}

// property records one object property and descends into it.
func (w *walk) property(schema map[string]any, path string, required bool) {
	// {"allOf": [{"$ref": X}, ...]}: X alone decides the type
	if ref, ok := firstAllOfRef(schema); ok {
		target, ok := w.resolve(ref, path)
		if !ok {
			w.res.Records.set(path, LabelUnresolvedAllOfRef, required)
			return
		}
		w.res.Records.set(path, MapType(w.describe(target, RefName(ref))), required)
		w.descend(ref, target, path)
		return
	}

	if ref, ok := refOf(schema); ok {
		target, ok := w.resolve(ref, path)
		if !ok {
			w.res.Records.set(path, LabelUnresolvedRef, required)
			return
		}
		w.res.Records.set(path, MapType(w.describe(target, RefName(ref))), required)
		w.descend(ref, target, path)
		return
	}

	w.res.Records.set(path, MapType(w.describe(schema, "")), required)
	w.visit(schema, path, "")
}

func (w *walk) array(schema map[string]any, path string) {
	if path != "" {
		w.res.Records.setType(path, MapType(w.describe(schema, "")))
	}
	if items, ok := schema["items"]; ok && items != nil {
		w.visit(items, itemPath(path), "")
	}
}

// merge folds the allOf branches of schema into one object schema and
// returns it with the name of the first reference that was folded in and
// every reference folded.
func (w *walk) merge(schema map[string]any, path string) (map[string]any, string, []string) {
	c := newComposer(w.doc, w.active)
	c.fold(allOfOf(schema))
	for _, u := range c.unresolved {
		w.unresolved(u.ref, path, u.err)
	}
	for _, ref := range c.skipped {
		w.circular(ref, path)
	}
	return c.schema(), c.refName, c.refs
}

// describe builds the TypeInfo for node. References are followed so that
// array items written as {"$ref": ...} get their definition's label; the
// seen set stops item chains that refer back to themselves.
func (w *walk) describe(node any, refName string) TypeInfo {
	return w.describeSeen(node, refName, make(map[string]bool))
}

func (w *walk) describeSeen(node any, refName string, seen map[string]bool) TypeInfo {
	m, ok := node.(map[string]any)
	if !ok {
		return TypeInfo{RefName: refName}
	}

	switch Classify(m) {
	case KindReference:
		ref, _ := refOf(m)
		if seen[ref] {
			return TypeInfo{RefName: RefName(ref)}
		}
		seen[ref] = true
		target, err := ResolvePointer(w.doc, ref)
		if err != nil {
			return TypeInfo{RefName: RefName(ref)}
		}
		return w.describeSeen(target, RefName(ref), seen)

	case KindComposition:
		if refName == "" {
			c := newComposer(w.doc, seen)
			c.fold(allOfOf(m))
			refName = c.refName
		}
		return TypeInfo{Type: "object", RefName: refName}

	case KindArray:
		info := TypeInfo{Type: m["type"], RefName: refName}
		if items, ok := m["items"]; ok && items != nil {
			it := w.describeSeen(items, "", seen)
			info.Items = &it
		}
		return info
	}

	return TypeInfo{
		Type:    m["type"],
		Format:  stringOf(m, "format"),
		Enum:    enumOf(m),
		RefName: refName,
	}
}

// resolve wraps ResolvePointer, turning failures into warnings.
func (w *walk) resolve(ref, path string) (any, bool) {
	target, err := ResolvePointer(w.doc, ref)
	if err != nil {
		w.unresolved(ref, path, err)
		return nil, false
	}
	return target, true
}

func (w *walk) unresolved(ref, path string, err error) {
	w.res.UnresolvedRefs++
	w.res.Warnings = append(w.res.Warnings, fmt.Sprintf("unresolved reference %s at %q: %v", ref, path, err))
	w.log.Warn("unresolved reference", "ref", ref, "path", path, "error", err)
}

func (w *walk) circular(ref, path string) {
	err := &oaserrors.ReferenceError{Ref: ref, IsCircular: true, Message: "descent stopped"}
	w.res.CircularRefs++
	w.res.Warnings = append(w.res.Warnings, fmt.Sprintf("%v at %q", err, path))
	w.log.Debug("circular reference, descent stopped", "ref", ref, "path", path, "error", err)
}
