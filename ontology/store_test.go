package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const schemaBase = "https://schema.org/"

func named(name string) Named {
	return Named{IRI: schemaBase + name, Name: name}
}

func fact(subject Term, predicate Term, object Term) Fact {
	return Fact{Subject: subject, Predicate: predicate, Object: object}
}

func TestStoreGroupsBySubject(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		FactMember(fact(named("Thing"), VocabType, named("Class"))),
		FactMember(fact(named("name"), VocabType, named("Property"))),
		FactMember(fact(named("Thing"), VocabComment, Literal{Value: "The most generic type."})),
	})

	topics := store.Topics()
	require.Len(t, topics, 2)

	thing, ok := store.Topic(schemaBase + "Thing")
	require.True(t, ok)
	assert.True(t, thing.HasType("Class"))
	comment, ok := thing.Comment(language.Und)
	require.True(t, ok)
	assert.Equal(t, "The most generic type.", comment)
}

func TestStoreFlattensNestedSubGraphs(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		SubGraph(
			FactMember(fact(named("A"), VocabType, named("Class"))),
			SubGraph(
				FactMember(fact(named("B"), VocabType, named("Class"))),
			),
		),
		FactMember(fact(named("C"), VocabType, named("Class"))),
	})

	assert.Equal(t, 3, store.Len())
}

func TestStoreMergesDomainsAsSetUnion(t *testing.T) {
	// Two raw declarations of the same property, each contributing one
	// domain, must merge into {X, Y} regardless of input order.
	declarations := [][]GraphMember{
		{
			FactMember(fact(named("p"), VocabDomainIncludes, named("X"))),
			FactMember(fact(named("p"), VocabDomainIncludes, named("Y"))),
		},
		{
			FactMember(fact(named("p"), VocabDomainIncludes, named("Y"))),
			FactMember(fact(named("p"), VocabDomainIncludes, named("X"))),
		},
	}

	for _, members := range declarations {
		store := NewStore(nil)
		store.Add(members)

		topic, ok := store.Topic(schemaBase + "p")
		require.True(t, ok)

		domains := topic.DomainRefs()
		require.Len(t, domains, 2)
		keys := []string{domains[0].Name, domains[1].Name}
		assert.ElementsMatch(t, []string{"X", "Y"}, keys)
	}
}

func TestStoreDeduplicatesRepeatedFacts(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		FactMember(fact(named("B"), VocabSubClassOf, named("A"))),
		FactMember(fact(named("B"), VocabSubClassOf, named("A"))),
		FactMember(fact(named("B"), VocabType, named("Class"))),
		FactMember(fact(named("B"), VocabType, named("Class"))),
	})

	topic, ok := store.Topic(schemaBase + "B")
	require.True(t, ok)
	assert.Len(t, topic.ParentRefs(), 1)
	assert.Len(t, topic.Types, 1)
}

func TestStoreDuplicateCommentLastWriteWins(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		FactMember(fact(named("A"), VocabType, named("Class"))),
		FactMember(fact(named("A"), VocabComment, Literal{Value: "first"})),
		FactMember(fact(named("A"), VocabComment, Literal{Value: "second"})),
	})

	topic, ok := store.Topic(schemaBase + "A")
	require.True(t, ok)
	comment, ok := topic.Comment(language.Und)
	require.True(t, ok)
	assert.Equal(t, "second", comment)
	// The replaced value must not linger as a second statement.
	assert.Len(t, topic.Statements, 1)
}

func TestStoreDropsProvenanceOnlySubjects(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		FactMember(fact(named("A"), VocabSource, named("layer"))),
		FactMember(fact(named("A"), VocabCloseMatch, named("ext"))),
		FactMember(fact(named("B"), VocabType, named("Class"))),
	})

	topics := store.Topics()
	require.Len(t, topics, 1)
	assert.Equal(t, schemaBase+"B", topics[0].Subject.Key())
}

func TestTopicCommentLanguageSelection(t *testing.T) {
	tests := []struct {
		name     string
		pref     language.Tag
		expected string
	}{
		{
			name:     "preferred language matches",
			pref:     language.French,
			expected: "bonjour",
		},
		{
			name:     "no match falls back to untagged",
			pref:     language.Japanese,
			expected: "hello",
		},
		{
			name:     "und prefers untagged",
			pref:     language.Und,
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil)
			store.Add([]GraphMember{
				FactMember(fact(named("A"), VocabComment, Literal{Value: "hello"})),
				FactMember(fact(named("A"), VocabComment, Literal{Value: "bonjour", Language: "fr"})),
				FactMember(fact(named("A"), VocabComment, Literal{Value: "hallo", Language: "de"})),
			})

			topic, ok := store.Topic(schemaBase + "A")
			require.True(t, ok)
			comment, ok := topic.Comment(tt.pref)
			require.True(t, ok)
			assert.Equal(t, tt.expected, comment)
		})
	}
}

func TestTopicUnclaimed(t *testing.T) {
	store := NewStore(nil)
	store.Add([]GraphMember{
		FactMember(fact(named("A"), VocabComment, Literal{Value: "doc"})),
		FactMember(fact(named("A"), NewNamed(schemaBase+"custom"), Literal{Value: "x"})),
	})

	topic, ok := store.Topic(schemaBase + "A")
	require.True(t, ok)

	rest := topic.Unclaimed(VocabComment)
	require.Len(t, rest, 1)
	assert.Equal(t, schemaBase+"custom", rest[0].Predicate.Key())
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		iri      string
		expected string
	}{
		{"https://schema.org/Thing", "Thing"},
		{"http://www.w3.org/2000/01/rdf-schema#Class", "Class"},
		{"https://schema.org/", "schema.org"},
		{"Thing", "Thing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LocalName(tt.iri), "iri %s", tt.iri)
	}
}
