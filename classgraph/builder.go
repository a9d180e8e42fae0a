package classgraph

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/Eyas/schema-dts/ontology"
)

// Builder runs the resolution stages that populate the registry from merged
// Topics: the two-phase class graph build, property attachment, and
// enumeration attachment. Stages run strictly in order; each mutates the
// per-class accumulators established by the previous ones.
type Builder struct {
	registry *Registry
	logger   *slog.Logger

	// pref selects among language-tagged comment variants.
	pref language.Tag

	// verbose controls whether missing comments are logged.
	verbose bool
}

// NewBuilder creates a builder over the given registry. The preferred
// language tag selects comment variants; verbose enables missing-comment
// diagnostics.
func NewBuilder(registry *Registry, logger *slog.Logger, pref language.Tag, verbose bool) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{
		registry: registry,
		logger:   logger,
		pref:     pref,
		verbose:  verbose,
	}
}

// classTopic reports whether a topic declares a regular class: it carries a
// recognized Class type tag, is not DataType-tagged, and is not the DataType
// meta-class itself. DataType-tagged topics are the seeded builtins.
func classTopic(t *ontology.Topic) (ontology.Named, bool) {
	subject, ok := t.Subject.(ontology.Named)
	if !ok {
		return ontology.Named{}, false
	}
	if !t.HasType("Class") || t.HasType("DataType") || subject.Name == "DataType" {
		return ontology.Named{}, false
	}
	return subject, true
}

// Build performs the two-phase class graph construction.
//
// Pass 1 forward-declares a ClassNode for every qualifying topic so later
// references resolve regardless of declaration order. Pass 2 dispatches
// every non-type value of each topic in order: comment, else subclass-of
// edge, else superseded-by edge; values matching none of these are left for
// the property and enum resolvers to claim. Any unresolved parent or
// supersession reference aborts the run.
func (b *Builder) Build(topics []*ontology.Topic) error {
	// Pass 1: forward declaration.
	for _, t := range topics {
		subject, ok := classTopic(t)
		if !ok {
			continue
		}
		if err := b.registry.Register(&ClassNode{ID: subject}); err != nil {
			return err
		}
	}

	// Pass 2: edge resolution.
	for _, t := range topics {
		subject, ok := classTopic(t)
		if !ok {
			continue
		}
		node, _ := b.registry.Resolve(subject.IRI)

		if comment, ok := t.Comment(b.pref); ok {
			node.Comment = comment
		} else if b.verbose {
			b.logger.Warn("Class has no comment", "class", subject.IRI)
		}

		for _, parentRef := range t.ParentRefs() {
			if err := b.registry.AddParent(node, parentRef); err != nil {
				return err
			}
		}

		for _, ref := range t.SupersededRefs() {
			if err := b.registry.AddSupersession(node, ref); err != nil {
				return err
			}
		}
	}

	return nil
}
