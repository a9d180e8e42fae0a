// Package typeexpr models emitted types as a small closed expression
// language (Reference, Literal, Union, Intersection, Array, Record, Never)
// and synthesizes, for each class of a frozen registry, its base structural
// shape, enum union, children union, and a deterministic total emission
// order.
//
// Expressions reference other classes by name, never by declaration
// position, so the only ordering guarantee the printer relies on is the
// stable total order over the class set: builtins first, then locale-aware
// alphabetical by name with the canonical identifier as tie-break.
package typeexpr
