package typeexpr

// Declaration is one abstract emitted declaration. Per class the synthesizer
// emits zero-or-one EnumDecl, exactly one BaseDecl, and exactly one
// TotalDecl; builtins emit a single AliasDecl instead. The printer renders
// declarations verbatim in the order the synthesizer provides.
type Declaration interface {
	isDeclaration()

	// DeclName returns the declared type name.
	DeclName() string
}

// AliasDecl aliases a builtin class to a named target primitive.
type AliasDecl struct {
	Name    string
	Comment string
	Target  Expr
}

func (AliasDecl) isDeclaration() {}

// DeclName returns the declared type name.
func (d AliasDecl) DeclName() string { return d.Name }

// EnumMember is one member of a generated enumeration.
type EnumMember struct {
	// Value is the member's literal value: the canonical string form of
	// its subject.
	Value string

	// Comment is the member's documentation, possibly empty.
	Comment string
}

// EnumDecl is the generated enumeration for a class owning enum members.
type EnumDecl struct {
	Name    string
	Comment string
	Members []EnumMember
}

func (EnumDecl) isDeclaration() {}

// DeclName returns the declared type name.
func (d EnumDecl) DeclName() string { return d.Name }

// BaseDecl is a class's base structural shape: its own properties combined
// with the intersection of its parents' base shapes. Base declarations are
// private to the generated module.
type BaseDecl struct {
	Name string
	Expr Expr
}

func (BaseDecl) isDeclaration() {}

// DeclName returns the declared type name.
func (d BaseDecl) DeclName() string { return d.Name }

// TotalDecl is a class's public total shape, including enum and children
// unions.
type TotalDecl struct {
	Name    string
	Comment string
	Expr    Expr
}

func (TotalDecl) isDeclaration() {}

// DeclName returns the declared type name.
func (d TotalDecl) DeclName() string { return d.Name }
