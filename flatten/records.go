package flatten

import (
	"slices"
	"strings"
)

// ParameterRecord is one flattened row.
type ParameterRecord struct {
	// Path is the dotted/bracketed location, e.g. "order.items[...].sku".
	Path string `json:"path" yaml:"path"`
	// Type is the label produced by MapType.
	Type string `json:"type" yaml:"type"`
	// Required is set from the required list of the directly enclosing object.
	Required bool `json:"required" yaml:"required"`
}

// Records is an insertion-ordered set of records keyed by path.
// Writing a path that already exists overwrites it in place.
type Records struct {
	order  []string
	byPath map[string]*ParameterRecord
}

// NewRecords returns an empty record set.
func NewRecords() *Records {
	return &Records{byPath: make(map[string]*ParameterRecord)}
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.order)
}

// Get returns the record at path.
func (r *Records) Get(path string) (ParameterRecord, bool) {
	rec, ok := r.byPath[path]
	if !ok {
		return ParameterRecord{}, false
	}
	return *rec, true
}

// Paths returns all paths in first-insertion order.
func (r *Records) Paths() []string {
	return slices.Clone(r.order)
}

// All returns copies of all records in first-insertion order.
func (r *Records) All() []ParameterRecord {
	out := make([]ParameterRecord, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, *r.byPath[p])
	}
	return out
}

// Sorted returns copies of all records ordered lexicographically by path.
func (r *Records) Sorted() []ParameterRecord {
	out := r.All()
	slices.SortFunc(out, func(a, b ParameterRecord) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

func (r *Records) upsert(path string) *ParameterRecord {
	rec, ok := r.byPath[path]
	if !ok {
		rec = &ParameterRecord{Path: path}
		r.byPath[path] = rec
		r.order = append(r.order, path)
	}
	return rec
}

// setType updates only the type, leaving required-ness to the enclosing
// object's property loop.
func (r *Records) setType(path, typ string) {
	r.upsert(path).Type = typ
}

func (r *Records) set(path, typ string, required bool) {
	rec := r.upsert(path)
	rec.Type = typ
	rec.Required = required
}
