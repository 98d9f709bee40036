package extract

import "github.com/hexparrot/dataprepper/internal/model"

// Registry holds the closed set of extractors in registration order.
// Registration order is load-bearing: the arbiter breaks score ties in
// favor of the first-registered extractor, so a reordering changes
// which parse wins on ambiguous documents.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make([]Extractor, 0)}
}

// Register appends an extractor. Adding a format means adding a variant
// here; the arbiter never changes.
func (r *Registry) Register(ex Extractor) {
	r.extractors = append(r.extractors, ex)
}

// ForKind returns the extractors applicable to a document kind, in
// registration order.
func (r *Registry) ForKind(kind model.Kind) []Extractor {
	var out []Extractor
	for _, ex := range r.extractors {
		for _, k := range ex.Kinds() {
			if k == kind {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

// All returns every registered extractor in registration order.
func (r *Registry) All() []Extractor {
	return r.extractors
}
