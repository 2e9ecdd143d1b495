package glsl

import "strings"

// Node is implemented by every AST element that can render itself
// into a Builder.
type Node interface {
	Build(b *Builder)
}

// Code renders a single node into a fresh builder.
func Code(n Node) string {
	var b Builder
	n.Build(&b)
	return b.String()
}

// Builder assembles GLSL source text. Tokens written with Add are
// separated by single spaces; Write appends verbatim. Indentation is
// applied lazily at the start of each non-empty line, four spaces per
// level.
type Builder struct {
	out    strings.Builder
	indent int

	// needIndent is set after a newline; the indent is flushed by the
	// next token so blank lines carry no trailing spaces.
	needIndent bool

	// spaced is set after a token; the next Add inserts a separator.
	spaced bool
}

// String returns the text built so far.
func (b *Builder) String() string {
	return b.out.String()
}

// Add writes a space-separated token.
func (b *Builder) Add(s string) {
	if s == "" {
		return
	}
	if b.flushIndent() {
		b.spaced = false
	}
	if b.spaced {
		b.out.WriteByte(' ')
	}
	b.out.WriteString(s)
	b.spaced = true
}

// Write appends text verbatim, with no separating space.
func (b *Builder) Write(s string) {
	if s == "" {
		return
	}
	b.flushIndent()
	b.out.WriteString(s)
	b.spaced = true
}

// Terminator appends the statement terminator directly after the
// preceding token.
func (b *Builder) Terminator() {
	b.flushIndent()
	b.out.WriteByte(';')
	b.spaced = true
}

// Newline ends the current line.
func (b *Builder) Newline() {
	b.out.WriteByte('\n')
	b.needIndent = true
	b.spaced = false
}

// PushIndent increases the indentation level.
func (b *Builder) PushIndent() {
	b.indent++
}

// PopIndent decreases the indentation level.
func (b *Builder) PopIndent() {
	if b.indent > 0 {
		b.indent--
	}
}

func (b *Builder) flushIndent() bool {
	if !b.needIndent {
		return false
	}
	b.needIndent = false
	for i := 0; i < b.indent; i++ {
		b.out.WriteString("    ")
	}
	return true
}
