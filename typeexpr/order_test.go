package typeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Eyas/schema-dts/classgraph"
	"github.com/Eyas/schema-dts/ontology"
)

func classWithID(iri, name string) *classgraph.ClassNode {
	return &classgraph.ClassNode{ID: ontology.Named{IRI: iri, Name: name}}
}

func TestSortClassesBuiltinsFirst(t *testing.T) {
	text := classWithID("https://schema.org/Text", "Text")
	text.Builtin = &classgraph.BuiltinSpec{Primitive: "string"}
	airport := classWithID("https://schema.org/Airport", "Airport")
	zoo := classWithID("https://schema.org/Zoo", "Zoo")

	classes := []*classgraph.ClassNode{zoo, text, airport}
	NewOrdering(language.English).SortClasses(classes)

	assert.Equal(t, []*classgraph.ClassNode{text, airport, zoo}, classes)
}

func TestSortClassesTieBreaksOnID(t *testing.T) {
	a := classWithID("https://example.org/vocab/Thing", "Thing")
	b := classWithID("https://schema.org/Thing", "Thing")

	classes := []*classgraph.ClassNode{b, a}
	NewOrdering(language.English).SortClasses(classes)

	assert.Equal(t, []*classgraph.ClassNode{a, b}, classes)
}

func TestOrderingDefaultsToEnglish(t *testing.T) {
	o := NewOrdering(language.Und)
	assert.Negative(t, o.compareNames("apple", "a", "Banana", "b"))
}
