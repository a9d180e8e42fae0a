// Package classgraph builds the class registry: the multi-parent
// inheritance graph of ClassNodes with their attached properties,
// enumeration members, supersessions, and the seeded builtin catalogue.
//
// # Construction Order
//
// The registry is populated by a strict stage sequence, each stage a method
// on Builder:
//
//  1. SeedBuiltins — the fixed primitive catalogue, before any fact
//  2. Build — two-phase class graph (forward declare, then resolve edges)
//  3. ResolveProperties — attach typed properties to owning classes
//  4. ResolveEnums — attach enumeration members to owning classes
//
// After the last stage the registry is read-only; the typeexpr synthesizer
// consumes it as a frozen graph.
//
// # Failure Semantics
//
// Any reference that fails to resolve against the registry (parent,
// supersession target, property domain or range, enum owner) is a fatal
// referential-integrity error: the run aborts with no partial output.
// Data-quality findings (missing comments, unconsumed values) are advisory
// log lines only.
//
// # Leaf Classes
//
// A class is a leaf iff it has no children and no ancestor, through any
// parent chain, is a builtin. Leaves carry a literal type discriminant in
// their base shape, which is what makes the emitted unions exhaustively
// discriminable. The predicate is recomputed on demand because parents may
// still be gaining children while resolution runs.
package classgraph
