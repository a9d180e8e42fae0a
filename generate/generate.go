// Package generate wires the pipeline stages into the single-run batch
// transform: facts in, abstract type declarations out.
package generate

import (
	"io"
	"log/slog"

	"github.com/Eyas/schema-dts/classgraph"
	"github.com/Eyas/schema-dts/config"
	"github.com/Eyas/schema-dts/ontology"
	"github.com/Eyas/schema-dts/typeexpr"
)

// Run executes the resolution pipeline over fully materialized input.
//
// Stages run strictly in order and to completion — fact grouping, builtin
// seeding, two-phase class graph construction, property resolution, enum
// resolution, synthesis — each mutating per-class accumulators established
// by the previous ones. There is no concurrency and no suspension point:
// the input is already in memory, and determinism is a hard requirement.
// Any referential-integrity failure aborts with no partial output.
func Run(members []ontology.GraphMember, settings *config.Settings, logger *slog.Logger) ([]typeexpr.Declaration, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pref := settings.LanguageTag()

	store := ontology.NewStore(logger)
	store.Add(members)
	topics := store.Topics()
	logger.Info("Ontology grouped", "subjects", len(topics))

	registry := classgraph.NewRegistry(logger)
	if err := classgraph.SeedBuiltins(registry); err != nil {
		return nil, err
	}

	builder := classgraph.NewBuilder(registry, logger, pref, settings.Verbose)
	if err := builder.Build(topics); err != nil {
		return nil, err
	}
	if err := builder.ResolveProperties(topics); err != nil {
		return nil, err
	}
	if err := builder.ResolveEnums(topics); err != nil {
		return nil, err
	}
	logger.Info("Class graph resolved", "classes", registry.Len())

	// The registry is read-only from here on.
	synth := typeexpr.NewSynthesizer(typeexpr.NewOrdering(pref))
	decls := synth.Declarations(registry)
	logger.Info("Declarations synthesized", "declarations", len(decls))
	return decls, nil
}
