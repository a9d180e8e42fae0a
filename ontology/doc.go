// Package ontology provides the fact model for the generator pipeline:
// subject/predicate/object Facts over a closed Term union, and the Store
// that merges raw facts into per-subject Topics.
//
// # Architecture Philosophy: Facts In, Topics Out
//
// The ontology package is the only place that understands raw graph input.
// Everything downstream (classgraph, typeexpr) consumes merged Topics and
// never sees duplicate declarations, nested sub-graphs, or provenance noise.
//
// # Term Union
//
// Terms form a closed tagged union:
//
//   - Named: IRI reference with a derived human-readable local name
//   - Blank: anonymous node reference
//   - Literal: string value with optional BCP 47 language tag
//   - Vocab: one of the fixed well-known predicates (type, subClassOf,
//     domainIncludes, rangeIncludes, comment, label, supersededBy,
//     equivalentClass, closeMatch, source, softwareVersion)
//
// Mapping predicate IRIs onto Vocab values happens once, at the input
// boundary (jsonld package). Internal code switches on concrete term types
// and never inspects IRI strings.
//
// # Merge Policy
//
// When two raw declarations share a subject:
//
//   - type tags, domain-includes, range-includes: set union keyed by IRI
//   - comment, label: singular per language tag; when both sides supply a
//     value, the most recently observed wins and an advisory diagnostic is
//     logged — never hidden, never fatal
//
// Facts whose predicate only carries provenance (source, closeMatch,
// softwareVersion) are dropped before grouping; subjects left empty after
// filtering are omitted from the topic list.
package ontology
