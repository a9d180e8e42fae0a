package typeexpr

import (
	"github.com/Eyas/schema-dts/classgraph"
)

// DiscriminantField is the reserved structural marker identifying which
// concrete variant an instance is. It is single-valued and mandatory,
// enabling exhaustive downstream pattern matching.
const DiscriminantField = "@type"

// Synthesizer computes the emitted type expressions for a frozen class
// registry: per class a base structural shape, an optional enum union, and
// the public total shape, in a deterministic total emission order.
type Synthesizer struct {
	ordering *Ordering
}

// NewSynthesizer creates a synthesizer using the given ordering.
func NewSynthesizer(ordering *Ordering) *Synthesizer {
	return &Synthesizer{ordering: ordering}
}

// Declarations synthesizes the full declaration stream for the registry.
// Builtins sort before all regular classes; within each group classes sort
// by name then canonical identifier. The registry must not be mutated after
// this call begins.
func (s *Synthesizer) Declarations(registry *classgraph.Registry) []Declaration {
	classes := registry.Classes()
	s.ordering.SortClasses(classes)

	var decls []Declaration
	for _, c := range classes {
		decls = append(decls, s.classDeclarations(c)...)
	}
	return decls
}

// classDeclarations emits the small ordered declaration set for one class:
// a single alias for builtins; otherwise zero-or-one enumeration, exactly
// one base declaration, and exactly one total declaration.
func (s *Synthesizer) classDeclarations(c *classgraph.ClassNode) []Declaration {
	if c.IsBuiltin() {
		return []Declaration{AliasDecl{
			Name:    c.Name(),
			Comment: c.Builtin.Doc,
			Target:  Reference{Name: c.Builtin.Primitive},
		}}
	}

	var decls []Declaration
	if len(c.EnumMembers) > 0 {
		decls = append(decls, s.enumDeclaration(c))
	}

	decls = append(decls, BaseDecl{
		Name: baseName(c),
		Expr: s.baseShape(c),
	})

	comment := c.Comment
	if notice := c.DeprecationNotice(); notice != "" {
		if comment != "" {
			comment += "\n"
		}
		comment += notice
	}
	decls = append(decls, TotalDecl{
		Name:    c.Name(),
		Comment: comment,
		Expr:    s.totalShape(c),
	})
	return decls
}

// baseShape computes the class's base structural shape: the intersection of
// all parents' base shapes with an object literal of the class's own
// properties. Leaf classes gain the implicit literal discriminant field.
func (s *Synthesizer) baseShape(c *classgraph.ClassNode) Expr {
	props := make([]*classgraph.PropertyNode, len(c.Properties))
	copy(props, c.Properties)
	s.ordering.SortProperties(props)

	var fields []Field
	if c.IsLeaf() && !ownsDiscriminant(props) {
		fields = append(fields, Field{
			Name: DiscriminantField,
			Type: Literal{Value: c.Name()},
		})
	}
	for _, p := range props {
		fields = append(fields, s.propertyField(p))
	}
	own := Record{Fields: fields}

	if len(c.Parents) == 0 {
		return own
	}
	parts := make([]Expr, 0, len(c.Parents)+1)
	for _, parent := range c.Parents {
		parts = append(parts, parentBaseRef(parent))
	}
	return IntersectionOf(append(parts, own)...)
}

// propertyField emits one property as a record field. The value type allows
// a single value of the range union or an array of such values; the
// reserved discriminant marker stays single-valued and mandatory. An empty
// range is the uninhabited sentinel.
func (s *Synthesizer) propertyField(p *classgraph.PropertyNode) Field {
	comment := p.Comment
	if p.Deprecated {
		if comment != "" {
			comment += "\n"
		}
		comment += "@deprecated"
	}

	field := Field{
		Name:     p.Name(),
		Optional: p.Name() != DiscriminantField,
		Comment:  comment,
	}

	if len(p.Ranges) == 0 {
		field.Type = Never{}
		return field
	}

	ranges := make([]*classgraph.ClassNode, len(p.Ranges))
	copy(ranges, p.Ranges)
	s.ordering.SortByName(ranges)

	refs := make([]Expr, 0, len(ranges))
	for _, r := range ranges {
		refs = append(refs, Reference{Name: r.Name()})
	}
	single := UnionOf(refs...)
	if p.Name() == DiscriminantField {
		field.Type = single
		return field
	}
	field.Type = UnionOf(append(refs, Array{Elem: single})...)
	return field
}

// totalShape computes the public total shape. With children, the union of
// "this class itself, not a subtype" (the discriminant-only record
// intersected with the base shape) and every child's total shape referenced
// by name; without children, the base shape referenced by name. Classes
// owning enum members prepend the generated enumeration.
func (s *Synthesizer) totalShape(c *classgraph.ClassNode) Expr {
	base := Reference{Name: baseName(c)}

	var nonEnum Expr
	if len(c.Children) == 0 {
		nonEnum = base
	} else {
		children := make([]*classgraph.ClassNode, len(c.Children))
		copy(children, c.Children)
		s.ordering.SortByName(children)

		members := make([]Expr, 0, len(children)+1)
		members = append(members, Intersection{Members: []Expr{
			Record{Fields: []Field{{
				Name: DiscriminantField,
				Type: Literal{Value: c.Name()},
			}}},
			base,
		}})
		for _, child := range children {
			members = append(members, Reference{Name: child.Name()})
		}
		nonEnum = Union{Members: members}
	}

	if len(c.EnumMembers) == 0 {
		return nonEnum
	}
	return UnionOf(Reference{Name: enumName(c)}, nonEnum)
}

// enumDeclaration emits the generated enumeration for a class owning enum
// members, sorted by literal value.
func (s *Synthesizer) enumDeclaration(c *classgraph.ClassNode) EnumDecl {
	members := make([]*classgraph.EnumMemberNode, len(c.EnumMembers))
	copy(members, c.EnumMembers)
	s.ordering.SortEnumMembers(members)

	decl := EnumDecl{Name: enumName(c)}
	for _, m := range members {
		decl.Members = append(decl.Members, EnumMember{
			Value:   m.Value(),
			Comment: m.Comment,
		})
	}
	return decl
}

// baseName is the private base declaration name for a class.
func baseName(c *classgraph.ClassNode) string { return c.Name() + "Base" }

// enumName is the generated enumeration name for a class.
func enumName(c *classgraph.ClassNode) string { return c.Name() + "Enum" }

// parentBaseRef references a parent's base shape by name. A builtin parent
// has no base declaration; referencing its alias directly is what marks the
// subclass primitive-like in the emitted output.
func parentBaseRef(parent *classgraph.ClassNode) Expr {
	if parent.IsBuiltin() {
		return Reference{Name: parent.Name()}
	}
	return Reference{Name: baseName(parent)}
}

// ownsDiscriminant reports whether an ontology-declared property already
// claims the reserved discriminant name.
func ownsDiscriminant(props []*classgraph.PropertyNode) bool {
	for _, p := range props {
		if p.Name() == DiscriminantField {
			return true
		}
	}
	return false
}
