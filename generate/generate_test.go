package generate

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eyas/schema-dts/config"
	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/jsonld"
	"github.com/Eyas/schema-dts/ontology"
	"github.com/Eyas/schema-dts/printer"
	"github.com/Eyas/schema-dts/typeexpr"
)

const sampleOntology = `{
	"@context": {
		"rdf": "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#"
	},
	"@graph": [
		{
			"@id": "schema:Thing",
			"@type": "rdfs:Class",
			"rdfs:comment": "The most generic type of item."
		},
		{
			"@id": "schema:CreativeWork",
			"@type": "rdfs:Class",
			"rdfs:comment": "The most generic kind of creative work.",
			"rdfs:subClassOf": {"@id": "schema:Thing"}
		},
		{
			"@id": "schema:name",
			"@type": "rdf:Property",
			"rdfs:comment": "The name of the item.",
			"schema:domainIncludes": {"@id": "schema:Thing"},
			"schema:rangeIncludes": {"@id": "schema:Text"}
		},
		{
			"@id": "schema:GenderType",
			"@type": "rdfs:Class",
			"rdfs:comment": "An enumeration of genders."
		},
		{
			"@id": "schema:Female",
			"@type": "schema:GenderType",
			"rdfs:comment": "The female gender."
		},
		{
			"@id": "schema:Male",
			"@type": "schema:GenderType"
		}
	]
}`

func decode(t *testing.T, doc string) []ontology.GraphMember {
	t.Helper()
	members, err := jsonld.DecodeBytes([]byte(doc))
	require.NoError(t, err)
	return members
}

func renderRun(t *testing.T, members []ontology.GraphMember) string {
	t.Helper()
	decls, err := Run(members, config.Default(), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, printer.NewTypeScript(&sb).Print(decls))
	return sb.String()
}

func TestRunEndToEnd(t *testing.T) {
	out := renderRun(t, decode(t, sampleOntology))

	assert.Contains(t, out, "export type Text = string;")
	assert.Contains(t, out, "\tname?: Text | Text[];")
	assert.Contains(t, out, "type CreativeWorkBase = ThingBase & {\n\t\"@type\": \"CreativeWork\";\n};")
	assert.Contains(t, out, "export type CreativeWork = CreativeWorkBase;")
	assert.Contains(t, out, "} & ThingBase | CreativeWork;")
	assert.Contains(t, out, "\t| \"https://schema.org/Female\"")
	assert.Contains(t, out, "export type GenderType = GenderTypeEnum | GenderTypeBase;")
	assert.Contains(t, out, "/** The most generic type of item. */")
}

func TestRunDeterministic(t *testing.T) {
	first := renderRun(t, decode(t, sampleOntology))

	members := decode(t, sampleOntology)
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}
	second := renderRun(t, members)

	assert.Equal(t, first, second)
}

func TestRunAbortsOnUnresolvedParent(t *testing.T) {
	doc := `{
		"@graph": [
			{
				"@id": "schema:Orphan",
				"@type": "rdfs:Class",
				"rdfs:subClassOf": {"@id": "schema:Missing"}
			}
		]
	}`

	_, err := Run(decode(t, doc), config.Default(), nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnresolvedParent))
	assert.True(t, errors.IsFatal(err))
}

func TestRunDeclarationStream(t *testing.T) {
	decls, err := Run(decode(t, sampleOntology), config.Default(), nil)
	require.NoError(t, err)

	// Builtins lead the stream in collation order.
	require.NotEmpty(t, decls)
	first, ok := decls[0].(typeexpr.AliasDecl)
	require.True(t, ok)
	assert.Equal(t, "Boolean", first.Name)

	var names []string
	for _, d := range decls {
		names = append(names, d.DeclName())
	}
	assert.Contains(t, names, "GenderTypeEnum")
	assert.Contains(t, names, "ThingBase")
	assert.Contains(t, names, "Thing")
}
