package classgraph

import (
	"io"
	"log/slog"

	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
)

// Registry is the arena owning every ClassNode of a generation run, keyed by
// canonical identifier. It is mutated in place by a single logical thread of
// control through the pipeline stages and becomes read-only before emission.
// There is no deletion; a registered class exists for the run's duration.
type Registry struct {
	logger  *slog.Logger
	classes map[string]*ClassNode
	order   []string
}

// NewRegistry creates an empty class registry. A nil logger suppresses
// diagnostics.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		logger:  logger,
		classes: make(map[string]*ClassNode),
	}
}

// Register adds a class under its canonical identifier. Registering the same
// identifier twice is a fatal error: forward declaration happens exactly
// once per subject, so a duplicate means the caller merged topics wrongly.
func (r *Registry) Register(node *ClassNode) error {
	key := node.ID.IRI
	if _, exists := r.classes[key]; exists {
		return errors.Unresolved(errors.ErrDuplicateClass, "registry", key, node.Name())
	}
	r.classes[key] = node
	r.order = append(r.order, key)
	return nil
}

// Resolve looks up a class by canonical identifier.
func (r *Registry) Resolve(iri string) (*ClassNode, bool) {
	node, ok := r.classes[iri]
	return node, ok
}

// Classes returns every registered class in registration order. Emission
// ordering is applied later by the synthesizer; this order only guarantees
// stability for iteration during resolution.
func (r *Registry) Classes() []*ClassNode {
	out := make([]*ClassNode, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.classes[key])
	}
	return out
}

// Len returns the number of registered classes.
func (r *Registry) Len() int { return len(r.order) }

// AddParent resolves a subclass-of reference and wires the edge in both
// directions. An unresolved parent is a fatal referential-integrity error.
// A cycle introduced by the edge is rejected eagerly.
func (r *Registry) AddParent(child *ClassNode, parentRef ontology.Named) error {
	parent, ok := r.Resolve(parentRef.IRI)
	if !ok {
		return errors.Unresolved(errors.ErrUnresolvedParent, "registry", child.ID.IRI, parentRef.IRI)
	}
	if parent == child || parent.hasAncestor(child) {
		return errors.Unresolved(errors.ErrInheritanceCycle, "registry", child.ID.IRI, parentRef.IRI)
	}
	child.Parents = append(child.Parents, parent)
	parent.Children = append(parent.Children, child)
	return nil
}

// AddSupersession resolves a superseded-by reference and appends it to the
// class's supersession list. An unresolved target is fatal.
func (r *Registry) AddSupersession(node *ClassNode, ref ontology.Named) error {
	target, ok := r.Resolve(ref.IRI)
	if !ok {
		return errors.Unresolved(errors.ErrUnresolvedSupersession, "registry", node.ID.IRI, ref.IRI)
	}
	node.SupersededBy = append(node.SupersededBy, target)
	return nil
}
