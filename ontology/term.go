package ontology

import (
	"fmt"
	"strings"
)

// Term is one position of a semantic fact: a named IRI reference, a blank
// node, a literal, or one of the well-known vocabulary predicates.
//
// Terms form a closed tagged union. Internal code switches on the concrete
// type rather than inspecting IRI strings; IRI-to-term mapping happens once,
// at the input boundary (see the jsonld package).
type Term interface {
	// Key returns the canonical string form of the term. For named
	// references this is the full IRI; for literals, the literal value.
	// Keys are the identity used for deduplication and tie-breaking.
	Key() string

	isTerm()
}

// Named is an IRI reference carrying a human-readable local name.
//
// The local name is the IRI fragment, or the last path segment when no
// fragment is present (e.g. "https://schema.org/Thing" -> "Thing").
type Named struct {
	IRI  string `json:"iri"`
	Name string `json:"name"`
}

// NewNamed builds a Named reference from a full IRI, deriving the local name.
func NewNamed(iri string) Named {
	return Named{IRI: iri, Name: LocalName(iri)}
}

// LocalName extracts the human-readable local name from an IRI.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(strings.TrimSuffix(iri, "/"), "/"); i >= 0 {
		return strings.TrimSuffix(iri, "/")[i+1:]
	}
	return iri
}

// Key returns the full IRI.
func (n Named) Key() string { return n.IRI }

func (Named) isTerm() {}

// Blank is an anonymous node reference (JSON-LD "_:b0" style).
type Blank struct {
	ID string `json:"id"`
}

// Key returns the blank node identifier.
func (b Blank) Key() string { return b.ID }

func (Blank) isTerm() {}

// Literal is a string value, optionally language-tagged (BCP 47).
type Literal struct {
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
}

// Key returns the literal value.
func (l Literal) Key() string { return l.Value }

func (Literal) isTerm() {}

// Vocab identifies one of the fixed well-known vocabulary terms the pipeline
// dispatches on. Anything outside this set stays a plain Named reference.
type Vocab string

// Well-known vocabulary terms.
const (
	VocabType            Vocab = "type"
	VocabSubClassOf      Vocab = "subClassOf"
	VocabDomainIncludes  Vocab = "domainIncludes"
	VocabRangeIncludes   Vocab = "rangeIncludes"
	VocabComment         Vocab = "comment"
	VocabLabel           Vocab = "label"
	VocabSupersededBy    Vocab = "supersededBy"
	VocabEquivalentClass Vocab = "equivalentClass"
	VocabCloseMatch      Vocab = "closeMatch"
	VocabSource          Vocab = "source"
	VocabSoftwareVersion Vocab = "softwareVersion"
)

// Key returns the short vocabulary name.
func (v Vocab) Key() string { return string(v) }

func (Vocab) isTerm() {}

// vocabIRIs maps full predicate IRIs onto well-known vocabulary terms.
// Both the http and https schema.org forms appear in the wild.
var vocabIRIs = map[string]Vocab{
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#type": VocabType,
	"http://www.w3.org/2000/01/rdf-schema#subClassOf": VocabSubClassOf,
	"http://www.w3.org/2000/01/rdf-schema#comment":    VocabComment,
	"http://www.w3.org/2000/01/rdf-schema#label":      VocabLabel,
	"http://www.w3.org/2002/07/owl#equivalentClass":   VocabEquivalentClass,
	"http://www.w3.org/2004/02/skos/core#closeMatch":  VocabCloseMatch,
	"http://purl.org/dc/terms/source":                 VocabSource,
	"http://schema.org/domainIncludes":                VocabDomainIncludes,
	"https://schema.org/domainIncludes":               VocabDomainIncludes,
	"http://schema.org/rangeIncludes":                 VocabRangeIncludes,
	"https://schema.org/rangeIncludes":                VocabRangeIncludes,
	"http://schema.org/supersededBy":                  VocabSupersededBy,
	"https://schema.org/supersededBy":                 VocabSupersededBy,
	"http://schema.org/source":                        VocabSource,
	"https://schema.org/source":                       VocabSource,
	"http://schema.org/softwareVersion":               VocabSoftwareVersion,
	"https://schema.org/softwareVersion":              VocabSoftwareVersion,
}

// WellKnown maps a predicate IRI onto its well-known vocabulary term.
// Returns false when the IRI is not part of the fixed vocabulary.
func WellKnown(iri string) (Vocab, bool) {
	v, ok := vocabIRIs[iri]
	return v, ok
}

// MetaClass names the three meta-types that never own enum members.
const (
	MetaClassIRI    = "http://www.w3.org/2000/01/rdf-schema#Class"
	MetaPropertyIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"
	MetaDataTypeIRI = "https://schema.org/DataType"
)

// metaTypeNames covers the local names under which the three meta-types
// appear across ontology layers and schema.org versions.
var metaTypeNames = map[string]bool{
	"Class":    true,
	"Property": true,
	"DataType": true,
}

// IsMetaType reports whether a type-tag reference names one of the
// Class/Property/DataType meta-types.
func IsMetaType(n Named) bool {
	return metaTypeNames[n.Name]
}

// TermString renders a term for diagnostics.
func TermString(t Term) string {
	switch v := t.(type) {
	case Named:
		return v.IRI
	case Blank:
		return "_:" + v.ID
	case Literal:
		if v.Language != "" {
			return fmt.Sprintf("%q@%s", v.Value, v.Language)
		}
		return fmt.Sprintf("%q", v.Value)
	case Vocab:
		return string(v)
	default:
		return fmt.Sprintf("%v", t)
	}
}
