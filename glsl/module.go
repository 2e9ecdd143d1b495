package glsl

// Module is a whole GLSL translation unit: precision declarations,
// global variable declarations, free top-level statements, and the
// mandatory entry-point function. Construct it with NewModule, append
// pieces in the order they should be declared, then render with Code.
// The module performs no reordering, deduplication or validation;
// declaration-before-use ordering is the caller's responsibility.
type Module struct {
	PrecDecls  []PrecisionDecl
	GlobalVars []GlobalVar
	Statements []Statement
	Main       Function
}

// NewModule returns an empty translation unit with a void main()
// entry point in place.
func NewModule() *Module {
	return &Module{
		Main: Function{
			Type:  NewType(Void),
			Ident: "main",
		},
	}
}

// AddPrecision appends a precision declaration.
func (m *Module) AddPrecision(p PrecisionDecl) {
	m.PrecDecls = append(m.PrecDecls, p)
}

// AddGlobal appends a global variable declaration.
func (m *Module) AddGlobal(v GlobalVar) {
	m.GlobalVars = append(m.GlobalVars, v)
}

// AddStatement appends a free top-level statement.
func (m *Module) AddStatement(s Statement) {
	m.Statements = append(m.Statements, s)
}

// AddExpr appends an expression to the main function body.
func (m *Module) AddExpr(e Expr) {
	m.Main.Add(e)
}

// Build renders the translation unit. The emission order is fixed:
// the version pragma, the precision declarations, the global variable
// declarations, the free statements, and the main function last. Each
// of the first three groups is followed by a blank line, present even
// when the group is empty.
func (m *Module) Build(b *Builder) {
	b.Add("#version 300 es")
	b.Newline()
	b.Newline()

	for _, p := range m.PrecDecls {
		p.Build(b)
		b.Newline()
	}
	b.Newline()

	for _, v := range m.GlobalVars {
		v.Build(b)
		b.Terminator()
		b.Newline()
	}
	b.Newline()

	for _, s := range m.Statements {
		s.Build(b)
		b.Newline()
	}
	m.Main.Build(b)
}

// Code renders the module to GLSL source text. Rendering is
// deterministic: the same module value always produces byte-identical
// text.
func (m *Module) Code() string {
	return Code(m)
}
