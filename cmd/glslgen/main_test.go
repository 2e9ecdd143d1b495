package main

import (
	"strings"
	"testing"
)

func TestBuildDemoShader(t *testing.T) {
	src := buildDemoShader(3)

	if !strings.HasPrefix(src, "#version 300 es\n") {
		t.Errorf("missing version pragma:\n%s", src)
	}
	for _, part := range []string{
		"precision highp float;",
		"layout(location=3) uniform vec4 color;",
		"in smooth vec2 uv;",
		"out vec4 fragColor;",
		"float checker(vec2 p)",
		"void main() {",
		"float k = checker(uv * 8.0);",
		"mix(color, vec4(1.0,1.0,1.0,1.0), k * 0.25);",
	} {
		if !strings.Contains(src, part) {
			t.Errorf("missing %q in:\n%s", part, src)
		}
	}
}

func TestBuildDemoShader_Deterministic(t *testing.T) {
	if buildDemoShader(0) != buildDemoShader(0) {
		t.Error("renders differ between runs")
	}
}
