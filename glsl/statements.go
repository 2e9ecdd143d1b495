package glsl

import "fmt"

// Statement is a top-level unit of a translation unit: a function
// definition, a precision declaration, or raw text.
type Statement interface {
	Node
	statement()
}

// Function is a named top-level routine. Expressions appended to the
// body render one per line, indented.
type Function struct {
	Type  Type
	Ident Identifier
	Body  Block
}

func (f Function) statement() {}

// Add appends an expression to the function body.
func (f *Function) Add(e Expr) {
	f.Body.Add(e)
}

// Build renders the function header, the indented body, and the
// closing brace.
func (f Function) Build(b *Builder) {
	f.Type.Build(b)
	b.Add(string(f.Ident))
	b.Write("()")
	b.Add("{")
	b.PushIndent()
	f.Body.Build(b)
	b.PopIndent()
	b.Newline()
	b.Add("}")
}

// PrecisionDecl is a top-level precision declaration for a type.
type PrecisionDecl struct {
	Prec Precision
	Type Type
}

func (p PrecisionDecl) statement() {}

// NewPrecisionDecl builds a precision declaration for a primitive
// type.
func NewPrecisionDecl(prec Precision, prim PrimType) PrecisionDecl {
	return PrecisionDecl{Prec: prec, Type: NewType(prim)}
}

// Build renders `precision <qualifier> <type>;`.
func (p PrecisionDecl) Build(b *Builder) {
	b.Add("precision")
	p.Prec.Build(b)
	p.Type.Build(b)
	b.Terminator()
}

// Layout is an explicit binding location for a global variable.
type Layout struct {
	Location uint32
}

// Build renders `layout(location=N)`.
func (l Layout) Build(b *Builder) {
	b.Add(fmt.Sprintf("layout(location=%d)", l.Location))
}

// Interpolation selects how an in/out variable is interpolated across
// the stage boundary.
type Interpolation uint8

const (
	// InterpolationNone omits the qualifier.
	InterpolationNone Interpolation = iota
	Smooth
	Flat
)

// Build renders the interpolation keyword, or nothing for
// InterpolationNone.
func (i Interpolation) Build(b *Builder) {
	switch i {
	case Smooth:
		b.Add("smooth")
	case Flat:
		b.Add("flat")
	}
}

// LinkageStorage holds the modifiers of in/out variables.
type LinkageStorage struct {
	Centroid      bool
	Interpolation Interpolation
}

// Build renders `[centroid] [smooth|flat]`.
func (l LinkageStorage) Build(b *Builder) {
	if l.Centroid {
		b.Add("centroid")
	}
	l.Interpolation.Build(b)
}

// GlobalVarStorage is the storage class of a global variable: const,
// in, out, or uniform. In and out carry linkage modifiers.
type GlobalVarStorage interface {
	Node
	globalVarStorage()
}

// ConstStorage marks a global constant.
type ConstStorage struct{}

func (ConstStorage) globalVarStorage() {}

// Build renders `const`.
func (ConstStorage) Build(b *Builder) {
	b.Add("const")
}

// UniformStorage marks a uniform.
type UniformStorage struct{}

func (UniformStorage) globalVarStorage() {}

// Build renders `uniform`.
func (UniformStorage) Build(b *Builder) {
	b.Add("uniform")
}

// InStorage marks a stage input.
type InStorage struct {
	Linkage LinkageStorage
}

func (InStorage) globalVarStorage() {}

// Build renders `in` with the linkage modifiers.
func (s InStorage) Build(b *Builder) {
	b.Add("in")
	s.Linkage.Build(b)
}

// OutStorage marks a stage output.
type OutStorage struct {
	Linkage LinkageStorage
}

func (OutStorage) globalVarStorage() {}

// Build renders `out` with the linkage modifiers.
func (s OutStorage) Build(b *Builder) {
	b.Add("out")
	s.Linkage.Build(b)
}

// GlobalVar is a top-level variable declaration, including attributes
// and uniforms. Layout, Storage and Prec are optional. The Module
// emits the statement terminator.
type GlobalVar struct {
	Layout  *Layout
	Storage GlobalVarStorage
	Prec    *Precision
	Type    Type
	Ident   Identifier
}

// Build renders, in order: layout, storage qualifier, precision,
// type, identifier.
func (v GlobalVar) Build(b *Builder) {
	if v.Layout != nil {
		v.Layout.Build(b)
	}
	if v.Storage != nil {
		v.Storage.Build(b)
	}
	if v.Prec != nil {
		v.Prec.Build(b)
	}
	v.Type.Build(b)
	b.Add(string(v.Ident))
}

// LocalVar is a function-local variable declaration. It renders
// without a terminator: it is an expression-building primitive, and
// the caller decides how the declaration line ends.
type LocalVar struct {
	Constant bool
	Type     Type
	Ident    Identifier
}

// Build renders `[const] <type> <identifier>`.
func (v LocalVar) Build(b *Builder) {
	if v.Constant {
		b.Add("const")
	}
	v.Type.Build(b)
	b.Add(string(v.Ident))
}
