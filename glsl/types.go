package glsl

import "fmt"

// primKind discriminates PrimType variants.
type primKind uint8

const (
	primFloat primKind = iota
	primInt
	primVoid
	primBool
	primMat2
	primMat3
	primMat4
	primMat2x2
	primMat2x3
	primMat2x4
	primMat3x2
	primMat3x3
	primMat3x4
	primMat4x2
	primMat4x3
	primMat4x4
	primVec2
	primVec3
	primVec4
	primIVec2
	primIVec3
	primIVec4
	primBVec2
	primBVec3
	primBVec4
	primUInt
	primUVec2
	primUVec3
	primUVec4
	primSampler2D
	primSampler3D
	primSamplerCube
	primSampler2DShadow
	primSamplerCubeShadow
	primSampler2DArray
	primSampler2DArrayShadow
	primISampler2D
	primISampler3D
	primISamplerCube
	primISampler2DArray
	primUSampler2D
	primUSampler3D
	primUSamplerCube
	primUSampler2DArray
	primStruct
)

// PrimType identifies a non-array GLSL type. The set of values is
// closed: the exported package variables below, plus named struct
// types created with Struct. PrimType values are comparable.
type PrimType struct {
	kind primKind

	// ident names the struct type; empty for every other variant.
	ident string
}

// The built-in GLSL ES 3.00 primitive types.
var (
	Float = PrimType{kind: primFloat}
	Int   = PrimType{kind: primInt}
	Void  = PrimType{kind: primVoid}
	Bool  = PrimType{kind: primBool}

	Mat2   = PrimType{kind: primMat2}
	Mat3   = PrimType{kind: primMat3}
	Mat4   = PrimType{kind: primMat4}
	Mat2x2 = PrimType{kind: primMat2x2}
	Mat2x3 = PrimType{kind: primMat2x3}
	Mat2x4 = PrimType{kind: primMat2x4}
	Mat3x2 = PrimType{kind: primMat3x2}
	Mat3x3 = PrimType{kind: primMat3x3}
	Mat3x4 = PrimType{kind: primMat3x4}
	Mat4x2 = PrimType{kind: primMat4x2}
	Mat4x3 = PrimType{kind: primMat4x3}
	Mat4x4 = PrimType{kind: primMat4x4}

	Vec2  = PrimType{kind: primVec2}
	Vec3  = PrimType{kind: primVec3}
	Vec4  = PrimType{kind: primVec4}
	IVec2 = PrimType{kind: primIVec2}
	IVec3 = PrimType{kind: primIVec3}
	IVec4 = PrimType{kind: primIVec4}
	BVec2 = PrimType{kind: primBVec2}
	BVec3 = PrimType{kind: primBVec3}
	BVec4 = PrimType{kind: primBVec4}

	UInt  = PrimType{kind: primUInt}
	UVec2 = PrimType{kind: primUVec2}
	UVec3 = PrimType{kind: primUVec3}
	UVec4 = PrimType{kind: primUVec4}

	Sampler2D            = PrimType{kind: primSampler2D}
	Sampler3D            = PrimType{kind: primSampler3D}
	SamplerCube          = PrimType{kind: primSamplerCube}
	Sampler2DShadow      = PrimType{kind: primSampler2DShadow}
	SamplerCubeShadow    = PrimType{kind: primSamplerCubeShadow}
	Sampler2DArray       = PrimType{kind: primSampler2DArray}
	Sampler2DArrayShadow = PrimType{kind: primSampler2DArrayShadow}
	ISampler2D           = PrimType{kind: primISampler2D}
	ISampler3D           = PrimType{kind: primISampler3D}
	ISamplerCube         = PrimType{kind: primISamplerCube}
	ISampler2DArray      = PrimType{kind: primISampler2DArray}
	USampler2D           = PrimType{kind: primUSampler2D}
	USampler3D           = PrimType{kind: primUSampler3D}
	USamplerCube         = PrimType{kind: primUSamplerCube}
	USampler2DArray      = PrimType{kind: primUSampler2DArray}
)

// Struct returns the primitive type for a named struct.
func Struct(name string) PrimType {
	return PrimType{kind: primStruct, ident: name}
}

// Keyword returns the GLSL keyword for the type. For struct types it
// returns the struct name.
func (t PrimType) Keyword() string {
	switch t.kind {
	case primFloat:
		return "float"
	case primInt:
		return "int"
	case primVoid:
		return "void"
	case primBool:
		return "bool"
	case primMat2:
		return "mat2"
	case primMat3:
		return "mat3"
	case primMat4:
		return "mat4"
	case primMat2x2:
		return "mat2x2"
	case primMat2x3:
		return "mat2x3"
	case primMat2x4:
		return "mat2x4"
	case primMat3x2:
		return "mat3x2"
	case primMat3x3:
		return "mat3x3"
	case primMat3x4:
		return "mat3x4"
	case primMat4x2:
		return "mat4x2"
	case primMat4x3:
		return "mat4x3"
	case primMat4x4:
		return "mat4x4"
	case primVec2:
		return "vec2"
	case primVec3:
		return "vec3"
	case primVec4:
		return "vec4"
	case primIVec2:
		return "ivec2"
	case primIVec3:
		return "ivec3"
	case primIVec4:
		return "ivec4"
	case primBVec2:
		return "bvec2"
	case primBVec3:
		return "bvec3"
	case primBVec4:
		return "bvec4"
	case primUInt:
		return "uint"
	case primUVec2:
		return "uvec2"
	case primUVec3:
		return "uvec3"
	case primUVec4:
		return "uvec4"
	case primSampler2D:
		return "sampler2D"
	case primSampler3D:
		return "sampler3D"
	case primSamplerCube:
		return "samplerCube"
	case primSampler2DShadow:
		return "sampler2DShadow"
	case primSamplerCubeShadow:
		return "samplerCubeShadow"
	case primSampler2DArray:
		return "sampler2DArray"
	case primSampler2DArrayShadow:
		return "sampler2DArrayShadow"
	case primISampler2D:
		return "isampler2D"
	case primISampler3D:
		return "isampler3D"
	case primISamplerCube:
		return "isamplerCube"
	case primISampler2DArray:
		return "isampler2DArray"
	case primUSampler2D:
		return "usampler2D"
	case primUSampler3D:
		return "usampler3D"
	case primUSamplerCube:
		return "usamplerCube"
	case primUSampler2DArray:
		return "usampler2DArray"
	case primStruct:
		return t.ident
	default:
		panic("glsl: unknown primitive type")
	}
}

// Build renders the type keyword.
func (t PrimType) Build(b *Builder) {
	b.Add(t.Keyword())
}

func (t PrimType) String() string {
	return t.Keyword()
}

// Type is a usage of a primitive type, optionally as a fixed-size
// array. Array is the array length; zero means the type is not an
// array, so a zero-length array type cannot be expressed.
type Type struct {
	Prim  PrimType
	Array uint32
}

// NewType wraps a primitive type as a non-array Type.
func NewType(prim PrimType) Type {
	return Type{Prim: prim}
}

// Build renders the type, with a trailing [N] for array types.
func (t Type) Build(b *Builder) {
	t.Prim.Build(b)
	if t.Array > 0 {
		b.Write(fmt.Sprintf("[%d]", t.Array))
	}
}

func (t Type) String() string {
	return Code(t)
}

// Precision is a GLSL precision qualifier.
type Precision uint8

const (
	Low Precision = iota
	Medium
	High
)

// Keyword returns the GLSL keyword for the precision qualifier.
func (p Precision) Keyword() string {
	switch p {
	case Low:
		return "lowp"
	case Medium:
		return "mediump"
	case High:
		return "highp"
	default:
		panic("glsl: unknown precision")
	}
}

// Build renders the precision keyword.
func (p Precision) Build(b *Builder) {
	b.Add(p.Keyword())
}

func (p Precision) String() string {
	return p.Keyword()
}
