// Package printer renders the abstract declaration stream into concrete
// TypeScript source. The core provides declarations in their final order;
// the printer renders them verbatim without reordering.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Eyas/schema-dts/typeexpr"
)

// precedence levels for expression rendering; children below the required
// level are parenthesized.
const (
	precUnion = iota
	precIntersection
	precPostfix
)

// TypeScript renders declarations as TypeScript type declaration source.
type TypeScript struct {
	w io.Writer

	// Header is written once before the first declaration. Defaults to a
	// generated-code marker.
	Header string
}

// NewTypeScript creates a renderer writing to w.
func NewTypeScript(w io.Writer) *TypeScript {
	return &TypeScript{
		w:      w,
		Header: "// Code generated by schema-dts-gen. DO NOT EDIT.\n",
	}
}

// Print renders the declarations in the order given.
func (p *TypeScript) Print(decls []typeexpr.Declaration) error {
	var sb strings.Builder
	if p.Header != "" {
		sb.WriteString(p.Header)
	}

	for _, d := range decls {
		sb.WriteString("\n")
		switch decl := d.(type) {
		case typeexpr.AliasDecl:
			writeComment(&sb, decl.Comment, "")
			sb.WriteString("export type " + decl.Name + " = ")
			writeExpr(&sb, decl.Target, precUnion, "")
			sb.WriteString(";\n")
		case typeexpr.EnumDecl:
			writeComment(&sb, decl.Comment, "")
			sb.WriteString("type " + decl.Name + " =")
			for _, m := range decl.Members {
				sb.WriteString("\n")
				writeComment(&sb, m.Comment, "\t")
				sb.WriteString("\t| " + quote(m.Value))
			}
			sb.WriteString(";\n")
		case typeexpr.BaseDecl:
			sb.WriteString("type " + decl.Name + " = ")
			writeExpr(&sb, decl.Expr, precUnion, "")
			sb.WriteString(";\n")
		case typeexpr.TotalDecl:
			writeComment(&sb, decl.Comment, "")
			sb.WriteString("export type " + decl.Name + " = ")
			writeExpr(&sb, decl.Expr, precUnion, "")
			sb.WriteString(";\n")
		default:
			return fmt.Errorf("printer: unknown declaration %T", d)
		}
	}

	_, err := io.WriteString(p.w, sb.String())
	return err
}

// writeExpr renders an expression at the given precedence context. indent is
// the current line indentation, used by record literals.
func writeExpr(sb *strings.Builder, e typeexpr.Expr, prec int, indent string) {
	switch v := e.(type) {
	case typeexpr.Reference:
		sb.WriteString(v.Name)
	case typeexpr.Literal:
		sb.WriteString(quote(v.Value))
	case typeexpr.Never:
		sb.WriteString("never")
	case typeexpr.Union:
		if prec > precUnion {
			sb.WriteString("(")
		}
		for i, m := range v.Members {
			if i > 0 {
				sb.WriteString(" | ")
			}
			writeExpr(sb, m, precUnion+1, indent)
		}
		if prec > precUnion {
			sb.WriteString(")")
		}
	case typeexpr.Intersection:
		if prec > precIntersection {
			sb.WriteString("(")
		}
		for i, m := range v.Members {
			if i > 0 {
				sb.WriteString(" & ")
			}
			writeExpr(sb, m, precIntersection+1, indent)
		}
		if prec > precIntersection {
			sb.WriteString(")")
		}
	case typeexpr.Array:
		writeExpr(sb, v.Elem, precPostfix, indent)
		sb.WriteString("[]")
	case typeexpr.Record:
		writeRecord(sb, v, indent)
	default:
		sb.WriteString(fmt.Sprintf("/* unknown %T */", e))
	}
}

func writeRecord(sb *strings.Builder, r typeexpr.Record, indent string) {
	if len(r.Fields) == 0 {
		sb.WriteString("{}")
		return
	}
	inner := indent + "\t"
	sb.WriteString("{\n")
	for _, f := range r.Fields {
		writeComment(sb, f.Comment, inner)
		sb.WriteString(inner + fieldName(f.Name))
		if f.Optional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		writeExpr(sb, f.Type, precUnion, inner)
		sb.WriteString(";\n")
	}
	sb.WriteString(indent + "}")
}

// writeComment renders a JSDoc block, one line or many.
func writeComment(sb *strings.Builder, comment, indent string) {
	if comment == "" {
		return
	}
	lines := strings.Split(comment, "\n")
	if len(lines) == 1 {
		sb.WriteString(indent + "/** " + lines[0] + " */\n")
		return
	}
	sb.WriteString(indent + "/**\n")
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(indent+" * "+line, " ") + "\n")
	}
	sb.WriteString(indent + " */\n")
}

// fieldName quotes names that are not valid TypeScript identifiers (the
// "@type" discriminant, names with dashes).
func fieldName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return quote(name)
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteString("\"")
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString("\"")
	return sb.String()
}
