// Package schemadts converts a semantic ontology — schema.org-style
// subject/predicate/object facts describing classes, properties,
// enumerations, and inheritance — into a closed, statically checkable
// structural type hierarchy, emitted as TypeScript type declarations.
//
// The pipeline flows strictly through six stages:
//
//	facts -> topics -> class graph -> properties -> enums -> declarations
//
// Packages:
//
//   - ontology: fact model, term union, topic merging (the fact store)
//   - classgraph: registry, two-phase graph build, property and enum
//     resolution, builtin seeding, deprecation
//   - typeexpr: type-expression algebra and the per-class synthesizer
//   - printer: TypeScript rendering of the abstract declaration stream
//   - jsonld: JSON-LD decoding and ontology fetching (input boundary)
//   - generate: pipeline orchestration
//   - config: generator settings
//
// The cmd/schema-dts-gen command ties these together as a single-run batch
// tool with no persisted state.
package schemadts
