package flatten

// composer merges the branches of an allOf into one synthetic object schema.
type composer struct {
	doc map[string]any
	// active is the walk's reference chain; branches on it are skipped
	active map[string]bool
	// folded guards against a composition reaching itself through its branches
	folded map[string]bool

	properties map[string]any
	required   []string
	seenReq    map[string]bool
	refName    string
	// refs lists the folded references in the order they were folded
	refs []string

	unresolved []unresolvedRef
	skipped    []string
}

type unresolvedRef struct {
	ref string
	err error
}

func newComposer(doc map[string]any, active map[string]bool) *composer {
	return &composer{
		doc:        doc,
		active:     active,
		folded:     make(map[string]bool),
		properties: make(map[string]any),
		seenReq:    make(map[string]bool),
	}
}

// fold merges branches in order. Later properties overwrite earlier ones;
// required names keep their first position.
func (c *composer) fold(branches []any) {
	for _, branch := range branches {
		m, ok := branch.(map[string]any)
		if !ok {
			continue
		}
		ref, isRef := refOf(m)
		if !isRef {
			c.absorb(m)
			continue
		}
		if c.active[ref] {
			c.skipped = append(c.skipped, ref)
			continue
		}
		if c.folded[ref] {
			continue
		}
		target, err := ResolvePointer(c.doc, ref)
		if err != nil {
			c.unresolved = append(c.unresolved, unresolvedRef{ref: ref, err: err})
			continue
		}
		if c.refName == "" {
			c.refName = RefName(ref)
		}
		c.folded[ref] = true
		c.refs = append(c.refs, ref)
		if tm, ok := target.(map[string]any); ok {
			c.absorb(tm)
		}
	}
}

func (c *composer) absorb(m map[string]any) {
	if _, ok := refOf(m); ok {
		c.fold([]any{m})
		return
	}
	// nested allOf first, so the schema's own properties win
	c.fold(allOfOf(m))
	for name, prop := range propertiesOf(m) {
		c.properties[name] = prop
	}
	for _, name := range requiredOf(m) {
		if !c.seenReq[name] {
			c.seenReq[name] = true
			c.required = append(c.required, name)
		}
	}
}

// schema returns the merged object schema.
func (c *composer) schema() map[string]any {
	required := make([]any, len(c.required))
	for i, name := range c.required {
		required[i] = name
	}
	return map[string]any{
		"type":       "object",
		"properties": c.properties,
		"required":   required,
	}
}
