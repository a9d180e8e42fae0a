package typeexpr

// Expr is one node of the closed type-expression language. The synthesizer
// builds expression trees; the printer renders them into concrete target
// syntax. All cross-references between classes are by name (Reference), so
// no topological emission constraint exists.
type Expr interface {
	isExpr()
}

// Reference names another declared type, or a target-language primitive for
// builtin aliases. Rendered verbatim.
type Reference struct {
	Name string
}

func (Reference) isExpr() {}

// Literal is a literal string type (e.g. the "@type" discriminant value).
type Literal struct {
	Value string
}

func (Literal) isExpr() {}

// Union is the alternation of its members, in order.
type Union struct {
	Members []Expr
}

func (Union) isExpr() {}

// Intersection is the structural combination of its members, in order. This
// is the multiple-inheritance flattening mechanism.
type Intersection struct {
	Members []Expr
}

func (Intersection) isExpr() {}

// Array is a homogeneous list of the element type.
type Array struct {
	Elem Expr
}

func (Array) isExpr() {}

// Never is the uninhabited type: the sentinel for a property whose range
// resolved to nothing.
type Never struct{}

func (Never) isExpr() {}

// Record is a structural object literal.
type Record struct {
	Fields []Field
}

func (Record) isExpr() {}

// Field is one member of a Record.
type Field struct {
	// Name is the emitted field name.
	Name string

	// Optional marks the field as omittable. The reserved discriminant
	// field is never optional.
	Optional bool

	// Comment is the field's documentation, possibly with a deprecation
	// notice appended. Empty means no comment.
	Comment string

	// Type is the field's value type.
	Type Expr
}

// UnionOf flattens members into a union, collapsing the degenerate cases.
func UnionOf(members ...Expr) Expr {
	switch len(members) {
	case 0:
		return Never{}
	case 1:
		return members[0]
	default:
		return Union{Members: members}
	}
}

// IntersectionOf flattens members into an intersection, collapsing the
// degenerate cases.
func IntersectionOf(members ...Expr) Expr {
	switch len(members) {
	case 0:
		return Record{}
	case 1:
		return members[0]
	default:
		return Intersection{Members: members}
	}
}
