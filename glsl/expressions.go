package glsl

// Expr is any GLSL expression node. The variant set is open: a new
// expression kind only has to implement Build and the expr marker.
// Expressions are held as interface values, which gives Block and
// Assignment the indirection they need to nest expressions
// recursively.
type Expr interface {
	Node
	expr()
}

// RawCode is opaque, pre-formatted GLSL text, emitted verbatim as a
// single token. It can appear both as an expression and as a
// top-level statement. Converting a string to RawCode is the explicit
// opt-in for splicing raw text; use Identifier to reference a name.
type RawCode string

func (r RawCode) expr()      {}
func (r RawCode) statement() {}

// Build emits the raw text. The text itself is never reformatted or
// reindented.
func (r RawCode) Build(b *Builder) {
	b.Add(string(r))
}

// Identifier is a variable or type name reference, emitted as a bare
// token.
type Identifier string

func (i Identifier) expr() {}

// Build emits the identifier.
func (i Identifier) Build(b *Builder) {
	b.Add(string(i))
}

// Block is an ordered sequence of expressions, each rendered on its
// own line. A function body is a Block.
type Block struct {
	Exprs []Expr
}

func (k Block) expr() {}

// Add appends an expression to the block.
func (k *Block) Add(e Expr) {
	k.Exprs = append(k.Exprs, e)
}

// Build renders each expression on a new line, in append order.
func (k Block) Build(b *Builder) {
	for _, e := range k.Exprs {
		b.Newline()
		e.Build(b)
	}
}

// Assignment is an `a = b;` expression. It always renders its own
// statement terminator.
type Assignment struct {
	Left  Expr
	Right Expr
}

func (a Assignment) expr() {}

// Assign builds an assignment of right to left.
func Assign(left, right Expr) Assignment {
	return Assignment{Left: left, Right: right}
}

// Build renders `<left> = <right>;`.
func (a Assignment) Build(b *Builder) {
	a.Left.Build(b)
	b.Add("=")
	a.Right.Build(b)
	b.Terminator()
}
