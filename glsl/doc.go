// Package glsl builds GLSL ES 3.00 source text from a typed AST.
//
// The package models a single translation unit as a Module: an ordered
// list of precision declarations, global variable declarations, free
// top-level statements, and the mandatory void main() entry point.
// Callers assemble the Module through append operations and render it
// once; rendering the same Module twice yields byte-identical text, so
// the output can serve as a cache key for compiled-program reuse.
//
// # Basic Usage
//
//	m := glsl.NewModule()
//	m.AddGlobal(glsl.GlobalVar{
//	    Storage: glsl.UniformStorage{},
//	    Type:    glsl.TypeOf[mgl32.Vec4](),
//	    Ident:   "color",
//	})
//	m.AddExpr(glsl.Assign(glsl.Identifier("gl_FragColor"), glsl.Identifier("color")))
//	source := m.Code()
//
// # Literals
//
// Lit converts host values into literal expressions. The supported
// host types form a closed compile-time set (the Value constraint);
// passing anything else is a compile error, not a runtime one.
//
// No validation is performed on the assembled tree: declaration order,
// identifier spelling and type correctness are the caller's concern,
// and diagnostics for malformed programs come from the downstream
// shader compiler.
package glsl
