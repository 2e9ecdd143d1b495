package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Value enumerates the host types that convert to GLSL literals and
// primitive types. The set is closed: float vectors and matrices come
// from mgl32, integer and boolean vectors are plain fixed-size arrays.
// Conversion of any other type is rejected at compile time.
type Value interface {
	bool | int32 | float32 |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 |
		[2]int32 | [3]int32 | [4]int32 |
		[2]bool | [3]bool | [4]bool |
		mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4 |
		mgl32.Mat2x3 | mgl32.Mat2x4 |
		mgl32.Mat3x2 | mgl32.Mat3x4 |
		mgl32.Mat4x2 | mgl32.Mat4x3
}

// PrimTypeOf returns the GLSL primitive type a host type maps to.
func PrimTypeOf[T Value]() PrimType {
	var z T
	switch any(z).(type) {
	case bool:
		return Bool
	case int32:
		return Int
	case float32:
		return Float
	case mgl32.Vec2:
		return Vec2
	case mgl32.Vec3:
		return Vec3
	case mgl32.Vec4:
		return Vec4
	case [2]int32:
		return IVec2
	case [3]int32:
		return IVec3
	case [4]int32:
		return IVec4
	case [2]bool:
		return BVec2
	case [3]bool:
		return BVec3
	case [4]bool:
		return BVec4
	case mgl32.Mat2:
		return Mat2
	case mgl32.Mat3:
		return Mat3
	case mgl32.Mat4:
		return Mat4
	case mgl32.Mat2x3:
		return Mat2x3
	case mgl32.Mat2x4:
		return Mat2x4
	case mgl32.Mat3x2:
		return Mat3x2
	case mgl32.Mat3x4:
		return Mat3x4
	case mgl32.Mat4x2:
		return Mat4x2
	case mgl32.Mat4x3:
		return Mat4x3
	default:
		// The Value constraint is closed; no other case can occur.
		panic("glsl: unreachable")
	}
}

// TypeOf returns the non-array Type a host type maps to.
func TypeOf[T Value]() Type {
	return NewType(PrimTypeOf[T]())
}

// Lit converts a host value into a GLSL literal expression. Scalars
// render as bare literals; vectors and matrices render as a
// type-constructor call over the flattened elements in the host
// library's storage order (column-major for mgl32 matrices).
func Lit[T Value](v T) RawCode {
	switch t := any(v).(type) {
	case bool:
		return RawCode(strconv.FormatBool(t))
	case int32:
		return RawCode(strconv.FormatInt(int64(t), 10))
	case float32:
		return RawCode(formatFloat(t))
	case mgl32.Vec2:
		return floatCtor(Vec2, t[:])
	case mgl32.Vec3:
		return floatCtor(Vec3, t[:])
	case mgl32.Vec4:
		return floatCtor(Vec4, t[:])
	case [2]int32:
		return intCtor(IVec2, t[:])
	case [3]int32:
		return intCtor(IVec3, t[:])
	case [4]int32:
		return intCtor(IVec4, t[:])
	case [2]bool:
		return boolCtor(BVec2, t[:])
	case [3]bool:
		return boolCtor(BVec3, t[:])
	case [4]bool:
		return boolCtor(BVec4, t[:])
	case mgl32.Mat2:
		return floatCtor(Mat2, t[:])
	case mgl32.Mat3:
		return floatCtor(Mat3, t[:])
	case mgl32.Mat4:
		return floatCtor(Mat4, t[:])
	case mgl32.Mat2x3:
		return floatCtor(Mat2x3, t[:])
	case mgl32.Mat2x4:
		return floatCtor(Mat2x4, t[:])
	case mgl32.Mat3x2:
		return floatCtor(Mat3x2, t[:])
	case mgl32.Mat3x4:
		return floatCtor(Mat3x4, t[:])
	case mgl32.Mat4x2:
		return floatCtor(Mat4x2, t[:])
	case mgl32.Mat4x3:
		return floatCtor(Mat4x3, t[:])
	default:
		panic("glsl: unreachable")
	}
}

func floatCtor(prim PrimType, elems []float32) RawCode {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = formatFloat(e)
	}
	return ctor(prim, parts)
}

func intCtor(prim PrimType, elems []int32) RawCode {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.FormatInt(int64(e), 10)
	}
	return ctor(prim, parts)
}

func boolCtor(prim PrimType, elems []bool) RawCode {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.FormatBool(e)
	}
	return ctor(prim, parts)
}

func ctor(prim PrimType, parts []string) RawCode {
	return RawCode(prim.Keyword() + "(" + strings.Join(parts, ",") + ")")
}

// formatFloat formats a float32 with the fewest digits that round-trip
// and forces a decimal point so the literal is never lexed as an
// integer.
func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
