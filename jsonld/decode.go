// Package jsonld decodes schema.org-style JSON-LD documents into ontology
// facts and fetches ontology documents over HTTP. It is the input boundary:
// the only place IRIs are inspected, expanded, and mapped onto the closed
// term union the core pipeline consumes.
package jsonld

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
)

// defaultPrefixes expands the compact prefixes schema.org layer files use.
// A document's own @context may add to or override these.
var defaultPrefixes = map[string]string{
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"dcterms": "http://purl.org/dc/terms/",
	"schema":  "https://schema.org/",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
}

// Decode reads one JSON-LD document and returns its raw graph members,
// preserving sub-graph nesting and document order.
func Decode(r io.Reader) ([]ontology.GraphMember, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapInvalid(err, "jsonld", "Decode", "read document")
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a JSON-LD document held in memory.
func DecodeBytes(data []byte) ([]ontology.GraphMember, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"jsonld", "DecodeBytes", "unmarshal document")
	}

	d := &decoder{prefixes: defaultPrefixes}
	members, err := d.decodeValue(root)
	if err != nil {
		return nil, err
	}
	if len(ontology.Flatten(members)) == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyOntology, "jsonld", "DecodeBytes", "decode document")
	}
	return members, nil
}

type decoder struct {
	prefixes map[string]string
	blankSeq int
}

// decodeValue handles a document root or nested graph value: a node object,
// or an array of them.
func (d *decoder) decodeValue(v any) ([]ontology.GraphMember, error) {
	switch node := v.(type) {
	case []any:
		var members []ontology.GraphMember
		for _, entry := range node {
			ms, err := d.decodeValue(entry)
			if err != nil {
				return nil, err
			}
			members = append(members, ms...)
		}
		return members, nil
	case map[string]any:
		return d.decodeNode(node)
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: unexpected %T at graph level", errors.ErrInvalidData, v),
			"jsonld", "decodeValue", "decode graph member")
	}
}

// decodeNode turns one JSON-LD node object into facts about its subject,
// plus a nested sub-graph member when the node carries an @graph.
func (d *decoder) decodeNode(node map[string]any) ([]ontology.GraphMember, error) {
	if ctx, ok := node["@context"].(map[string]any); ok {
		d.mergeContext(ctx)
	}

	var members []ontology.GraphMember

	if graph, ok := node["@graph"]; ok {
		sub, err := d.decodeValue(graph)
		if err != nil {
			return nil, err
		}
		members = append(members, ontology.SubGraph(sub...))
	}

	subject := d.subjectTerm(node)

	for key, value := range node {
		switch key {
		case "@context", "@graph", "@id":
			continue
		case "@type":
			for _, entry := range asSlice(value) {
				name, ok := entry.(string)
				if !ok {
					continue
				}
				members = append(members, ontology.FactMember(ontology.Fact{
					Subject:   subject,
					Predicate: ontology.VocabType,
					Object:    ontology.NewNamed(d.expand(name)),
				}))
			}
		default:
			predicate := d.predicateTerm(key)
			for _, entry := range asSlice(value) {
				object, err := d.objectTerm(entry)
				if err != nil {
					return nil, err
				}
				members = append(members, ontology.FactMember(ontology.Fact{
					Subject:   subject,
					Predicate: predicate,
					Object:    object,
				}))
			}
		}
	}
	return members, nil
}

func (d *decoder) subjectTerm(node map[string]any) ontology.Term {
	if id, ok := node["@id"].(string); ok {
		if strings.HasPrefix(id, "_:") {
			return ontology.Blank{ID: strings.TrimPrefix(id, "_:")}
		}
		return ontology.NewNamed(d.expand(id))
	}
	d.blankSeq++
	return ontology.Blank{ID: fmt.Sprintf("b%d", d.blankSeq)}
}

func (d *decoder) predicateTerm(key string) ontology.Term {
	iri := d.expand(key)
	if v, ok := ontology.WellKnown(iri); ok {
		return v
	}
	return ontology.NewNamed(iri)
}

func (d *decoder) objectTerm(v any) (ontology.Term, error) {
	switch obj := v.(type) {
	case string:
		return ontology.Literal{Value: obj}, nil
	case map[string]any:
		if id, ok := obj["@id"].(string); ok {
			if strings.HasPrefix(id, "_:") {
				return ontology.Blank{ID: strings.TrimPrefix(id, "_:")}, nil
			}
			return ontology.NewNamed(d.expand(id)), nil
		}
		if value, ok := obj["@value"].(string); ok {
			lang, _ := obj["@language"].(string)
			return ontology.Literal{Value: value, Language: lang}, nil
		}
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: object without @id or @value", errors.ErrInvalidData),
			"jsonld", "objectTerm", "decode object")
	case bool:
		return ontology.Literal{Value: fmt.Sprintf("%t", obj)}, nil
	case float64:
		return ontology.Literal{Value: fmt.Sprintf("%v", obj)}, nil
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: unexpected object %T", errors.ErrInvalidData, v),
			"jsonld", "objectTerm", "decode object")
	}
}

// mergeContext folds string prefix mappings of a document @context over the
// defaults. Non-string context entries (term definitions) are ignored; the
// pipeline only needs prefix expansion.
func (d *decoder) mergeContext(ctx map[string]any) {
	merged := make(map[string]string, len(d.prefixes)+len(ctx))
	for k, v := range d.prefixes {
		merged[k] = v
	}
	for k, v := range ctx {
		if s, ok := v.(string); ok {
			merged[k] = s
		}
	}
	d.prefixes = merged
}

// expand resolves a compact IRI against the prefix table and canonicalizes
// the schema.org base. Absolute IRIs pass through normalization only.
func (d *decoder) expand(ref string) string {
	if i := strings.Index(ref, ":"); i > 0 && !strings.HasPrefix(ref[i+1:], "//") {
		if base, ok := d.prefixes[ref[:i]]; ok {
			return normalizeIRI(base + ref[i+1:])
		}
	}
	return normalizeIRI(ref)
}

// normalizeIRI maps the legacy http schema.org base onto the canonical
// https one so registry lookups are exact across ontology layers.
func normalizeIRI(iri string) string {
	if rest, ok := strings.CutPrefix(iri, "http://schema.org/"); ok {
		return "https://schema.org/" + rest
	}
	return iri
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}
