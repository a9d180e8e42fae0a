package classgraph

import (
	"strings"

	"github.com/Eyas/schema-dts/ontology"
)

// ClassNode is one class of the ontology graph. Nodes are constructed once
// per generation run, mutated only during the resolution pipeline, and
// read-only once synthesis begins. The registry exclusively owns every node;
// parent/child edges are plain pointers into the same arena.
type ClassNode struct {
	// ID is the stable name-bearing identifier of the class.
	ID ontology.Named

	// Comment is the resolved documentation comment, possibly empty.
	Comment string

	// Parents holds the resolved subclass-of targets in declaration
	// order. Multiple inheritance is permitted.
	Parents []*ClassNode

	// Children is the back-reference list maintained by the registry as
	// subclass edges resolve.
	Children []*ClassNode

	// Properties accumulates the property declarations owned by this
	// class. A property with multiple domains is shared, not copied.
	Properties []*PropertyNode

	// EnumMembers accumulates the enumeration members owned by this
	// class.
	EnumMembers []*EnumMemberNode

	// SupersededBy names the replacement class(es) when this class is
	// deprecated. Deprecation only annotates; it never removes the class,
	// its properties, or its edges.
	SupersededBy []*ClassNode

	// Builtin is non-nil for seeded builtin classes and carries the
	// target primitive alias.
	Builtin *BuiltinSpec
}

// BuiltinSpec describes a primitive-aliasing builtin class.
type BuiltinSpec struct {
	// Primitive is the target-language primitive the builtin aliases,
	// e.g. "string".
	Primitive string

	// Doc is the fixed documentation string for the alias declaration.
	Doc string
}

// Name returns the human-readable class name.
func (c *ClassNode) Name() string { return c.ID.Name }

// IsBuiltin reports whether the node is a seeded builtin.
func (c *ClassNode) IsBuiltin() bool { return c.Builtin != nil }

// IsDeprecated reports whether the class has at least one supersession
// target.
func (c *ClassNode) IsDeprecated() bool { return len(c.SupersededBy) > 0 }

// IsLeaf reports whether the class is a leaf: no children and no transitive
// Builtin ancestor. Leaf classes carry the literal type discriminant in
// their base shape. The predicate recomputes on demand since parents may
// still be gaining children during resolution.
func (c *ClassNode) IsLeaf() bool {
	return len(c.Children) == 0 && !c.HasBuiltinAncestor()
}

// HasBuiltinAncestor reports whether any ancestor, through any parent
// chain, is a builtin. A class aliasing a builtin is primitive-like and is
// excluded from leaf discriminant injection.
func (c *ClassNode) HasBuiltinAncestor() bool {
	for _, p := range c.Parents {
		if p.IsBuiltin() || p.HasBuiltinAncestor() {
			return true
		}
	}
	return false
}

// hasAncestor reports whether target is reachable through any parent chain.
// Used by the registry for eager cycle rejection.
func (c *ClassNode) hasAncestor(target *ClassNode) bool {
	for _, p := range c.Parents {
		if p == target || p.hasAncestor(target) {
			return true
		}
	}
	return false
}

// DeprecationNotice renders the machine-readable deprecation notice naming
// the replacement class(es), or empty when the class is not deprecated.
func (c *ClassNode) DeprecationNotice() string {
	if !c.IsDeprecated() {
		return ""
	}
	names := make([]string, 0, len(c.SupersededBy))
	for _, r := range c.SupersededBy {
		names = append(names, r.Name())
	}
	return "@deprecated Use " + strings.Join(names, " or ") + " instead."
}

// PropertyNode is one typed property declaration attached to its owning
// class(es). A property with multiple domain references is attached to each
// owner as the same shared node.
type PropertyNode struct {
	// ID identifies the property; its local name is the emitted field
	// name.
	ID ontology.Named

	// Comment is the resolved documentation comment, possibly empty.
	Comment string

	// Deprecated is true when the property's own subject is superseded.
	Deprecated bool

	// Ranges is the resolved list of allowed value classes. An empty
	// range set is a type-system error sentinel: the property emits the
	// uninhabited never type.
	Ranges []*ClassNode
}

// Name returns the emitted field name.
func (p *PropertyNode) Name() string { return p.ID.Name }

// EnumMemberNode is one enumeration member attached to exactly one owning
// class.
type EnumMemberNode struct {
	// ID is the member's subject identifier; its canonical string form is
	// the literal value used in the generated enumeration.
	ID ontology.Named

	// Comment is the resolved documentation comment, possibly empty.
	Comment string
}

// Value returns the literal value emitted for the member.
func (m *EnumMemberNode) Value() string { return m.ID.IRI }
