package glsl

import "testing"

func TestPrecisionDecl_Build(t *testing.T) {
	tests := []struct {
		name string
		decl PrecisionDecl
		want string
	}{
		{"highp float", NewPrecisionDecl(High, Float), "precision highp float;"},
		{"mediump int", NewPrecisionDecl(Medium, Int), "precision mediump int;"},
		{"lowp sampler", NewPrecisionDecl(Low, Sampler2D), "precision lowp sampler2D;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.decl); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalVar_Build(t *testing.T) {
	high := High

	tests := []struct {
		name string
		v    GlobalVar
		want string
	}{
		{
			"layout uniform",
			GlobalVar{
				Layout:  &Layout{Location: 0},
				Storage: UniformStorage{},
				Type:    NewType(Vec4),
				Ident:   "color",
			},
			"layout(location=0) uniform vec4 color",
		},
		{
			"bare",
			GlobalVar{Type: NewType(Float), Ident: "zoom"},
			"float zoom",
		},
		{
			"const",
			GlobalVar{Storage: ConstStorage{}, Type: NewType(Int), Ident: "max_glyphs"},
			"const int max_glyphs",
		},
		{
			"uniform with precision",
			GlobalVar{
				Storage: UniformStorage{},
				Prec:    &high,
				Type:    NewType(Vec4),
				Ident:   "color",
			},
			"uniform highp vec4 color",
		},
		{
			"plain in",
			GlobalVar{Storage: InStorage{}, Type: NewType(Vec2), Ident: "uv"},
			"in vec2 uv",
		},
		{
			"in centroid smooth",
			GlobalVar{
				Storage: InStorage{Linkage: LinkageStorage{Centroid: true, Interpolation: Smooth}},
				Type:    NewType(Vec2),
				Ident:   "uv",
			},
			"in centroid smooth vec2 uv",
		},
		{
			"out flat",
			GlobalVar{
				Storage: OutStorage{Linkage: LinkageStorage{Interpolation: Flat}},
				Type:    NewType(IVec2),
				Ident:   "cell",
			},
			"out flat ivec2 cell",
		},
		{
			"layout in array",
			GlobalVar{
				Layout:  &Layout{Location: 2},
				Storage: InStorage{},
				Type:    Type{Prim: Vec3, Array: 4},
				Ident:   "corners",
			},
			"layout(location=2) in vec3[4] corners",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.v); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalVar_Build(t *testing.T) {
	tests := []struct {
		name string
		v    LocalVar
		want string
	}{
		{"plain", LocalVar{Type: NewType(Vec2), Ident: "pos"}, "vec2 pos"},
		{"const", LocalVar{Constant: true, Type: NewType(Float), Ident: "pi"}, "const float pi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.v); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunction_Build(t *testing.T) {
	fn := Function{Type: NewType(Void), Ident: "main"}
	fn.Add(Assign(Identifier("gl_FragColor"), Identifier("color")))
	fn.Add(RawCode("discard;"))

	want := "void main() {\n" +
		"    gl_FragColor = color;\n" +
		"    discard;\n" +
		"}"
	if got := Code(fn); got != want {
		t.Errorf("Code() = %q, want %q", got, want)
	}
}

func TestFunction_EmptyBody(t *testing.T) {
	fn := Function{Type: NewType(Void), Ident: "main"}

	want := "void main() {\n}"
	if got := Code(fn); got != want {
		t.Errorf("Code() = %q, want %q", got, want)
	}
}
