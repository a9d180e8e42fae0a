package classgraph

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
)

func typeFact(subject, tag string) ontology.GraphMember {
	return ontology.FactMember(ontology.Fact{
		Subject:   named(subject),
		Predicate: ontology.VocabType,
		Object:    named(tag),
	})
}

func TestResolveEnumsAttachesMember(t *testing.T) {
	registry := buildGraph(t, []ontology.GraphMember{
		classFact("GenderType"),
		typeFact("Female", "GenderType"),
		factOf("Female", ontology.VocabComment, ontology.Literal{Value: "The female gender."}),
	})

	owner, _ := registry.Resolve(SchemaBase + "GenderType")
	require.Len(t, owner.EnumMembers, 1)

	member := owner.EnumMembers[0]
	assert.Equal(t, SchemaBase+"Female", member.Value())
	assert.Equal(t, "The female gender.", member.Comment)
}

func TestResolveEnumsSkipsMetaTypes(t *testing.T) {
	// A topic tagged [SomeClassTag, "Class"] attaches to SomeClassTag,
	// never to the Class meta-type.
	registry := buildGraph(t, []ontology.GraphMember{
		classFact("Specialty"),
		typeFact("Cardiology", "Class"),
		typeFact("Cardiology", "Specialty"),
	})

	owner, _ := registry.Resolve(SchemaBase + "Specialty")
	require.Len(t, owner.EnumMembers, 1)
	assert.Equal(t, SchemaBase+"Cardiology", owner.EnumMembers[0].Value())
}

func TestResolveEnumsFirstMatchWins(t *testing.T) {
	// With two qualifying owner tags only the first is claimed; later
	// candidates are silently ignored.
	registry := buildGraph(t, []ontology.GraphMember{
		classFact("First"),
		classFact("Second"),
		typeFact("M", "First"),
		typeFact("M", "Second"),
	})

	first, _ := registry.Resolve(SchemaBase + "First")
	second, _ := registry.Resolve(SchemaBase + "Second")
	assert.Len(t, first.EnumMembers, 1)
	assert.Empty(t, second.EnumMembers)
}

func TestResolveEnumsUnresolvedOwnerIsFatal(t *testing.T) {
	_, err := tryBuildGraph([]ontology.GraphMember{
		typeFact("M", "MissingOwner"),
	})

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnresolvedEnumOwner))
	assert.True(t, errors.IsFatal(err))
}

func TestResolveEnumsIgnoresPlainClasses(t *testing.T) {
	registry := buildGraph(t, []ontology.GraphMember{
		classFact("A"),
		classFact("B"),
	})

	a, _ := registry.Resolve(SchemaBase + "A")
	b, _ := registry.Resolve(SchemaBase + "B")
	assert.Empty(t, a.EnumMembers)
	assert.Empty(t, b.EnumMembers)
}
