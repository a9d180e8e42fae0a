package ontology

// Fact is one immutable subject/predicate/object assertion from the
// ontology. Facts are the unit of input; they are never mutated after
// construction.
//
// Example facts from the schema.org core layer:
//   - (schema:Thing, rdf:type, rdfs:Class)
//   - (schema:Drawing, rdfs:subClassOf, schema:CreativeWork)
//   - (schema:name, schema:domainIncludes, schema:Thing)
type Fact struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// GraphMember is one entry of a raw ontology graph: either a single fact or
// a nested sub-graph of further members. schema.org documents split the
// ontology across layered sub-graphs, so flattening is recursive.
type GraphMember struct {
	Fact  *Fact
	Graph []GraphMember
}

// FactMember wraps a fact as a graph member.
func FactMember(f Fact) GraphMember {
	return GraphMember{Fact: &f}
}

// SubGraph wraps nested members as a graph member.
func SubGraph(members ...GraphMember) GraphMember {
	return GraphMember{Graph: members}
}

// Flatten walks a nested member sequence depth-first and returns the facts
// in document order.
func Flatten(members []GraphMember) []Fact {
	var out []Fact
	var walk func(ms []GraphMember)
	walk = func(ms []GraphMember) {
		for _, m := range ms {
			if m.Fact != nil {
				out = append(out, *m.Fact)
			}
			if len(m.Graph) > 0 {
				walk(m.Graph)
			}
		}
	}
	walk(members)
	return out
}
