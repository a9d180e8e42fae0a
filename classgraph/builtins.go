package classgraph

import (
	"github.com/Eyas/schema-dts/ontology"
)

// SchemaBase is the canonical IRI base for schema.org terms. The input
// boundary normalizes http/https variants onto this base so registry lookups
// are exact.
const SchemaBase = "https://schema.org/"

// builtinCatalogue is the fixed set of primitive-aliasing classes, seeded
// once per run before any ontology fact is processed. Other classes alias a
// builtin by declaring it as a parent (e.g. URL subClassOf Text), which
// marks them primitive-like through the transitive leaf rule.
var builtinCatalogue = []struct {
	name      string
	primitive string
	doc       string
}{
	{"Text", "string", "Data type: Text."},
	{"Number", "number", "Data type: Number."},
	{"Boolean", "boolean", "Data type: Boolean."},
	{"Date", "string", "A date value in ISO 8601 date format."},
	{"DateTime", "string", "A combination of date and time of day in the form [-]CCYY-MM-DDThh:mm:ss[Z|(+|-)hh:mm] (see Chapter 5.4 of ISO 8601)."},
	{"Time", "string", "A point in time recurring on multiple days in the form hh:mm:ss[Z|(+|-)hh:mm] (see XML schema for details)."},
}

// SeedBuiltins registers the builtin catalogue. Builtins participate in the
// same parent/child graph as regular classes but have no parents of their
// own and alias a named target primitive directly.
func SeedBuiltins(r *Registry) error {
	for _, b := range builtinCatalogue {
		node := &ClassNode{
			ID:      ontology.Named{IRI: SchemaBase + b.name, Name: b.name},
			Comment: b.doc,
			Builtin: &BuiltinSpec{Primitive: b.primitive, Doc: b.doc},
		}
		if err := r.Register(node); err != nil {
			return err
		}
	}
	return nil
}
