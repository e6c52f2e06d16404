// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"strings"
	"testing"
)

const triangleVertex = `
attribute vec3 a_position;
uniform mat4 u_mvp;
varying vec2 v_uv;

void main() {
	gl_Position = u_mvp * vec4(a_position, 1.0);
	v_uv = a_position.xy;
}
`

const triangleFragment = `
precision mediump float;
uniform sampler2D u_tex;
varying vec2 v_uv;

void main() {
	gl_FragColor = texture2D(u_tex, v_uv);
}
`

func TestTranslateTriangleDraw(t *testing.T) {
	result, errs := Translate(triangleVertex, triangleFragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	if len(result.Attributes) != 1 || result.Attributes[0].Name != "a_position" || result.Attributes[0].Location != 0 {
		t.Fatalf("attributes = %#v, want a_position at location 0", result.Attributes)
	}
	if result.UniformBuffer == nil || len(result.UniformBuffer.Members) != 1 || result.UniformBuffer.Members[0].Name != "u_mvp" {
		t.Fatalf("uniform buffer = %#v", result.UniformBuffer)
	}
	if len(result.Textures) != 1 || result.Textures[0].Name != "u_tex" {
		t.Fatalf("textures = %#v, want one u_tex binding", result.Textures)
	}
	if result.Textures[0].SamplerBinding != result.Textures[0].TextureBinding+1 {
		t.Errorf("sampler binding should immediately follow texture binding: %#v", result.Textures[0])
	}
	if !strings.Contains(result.WGSL, "textureSample(u_tex, u_tex_sampler, v_uv)") {
		t.Errorf("wgsl missing textureSample rewrite:\n%s", result.WGSL)
	}
	if !strings.Contains(result.WGSL, "clip_position.z = clip_position.z * 0.5 + 0.5;") {
		t.Errorf("wgsl missing clip-space z remap:\n%s", result.WGSL)
	}
	if !strings.Contains(result.WGSL, "@vertex") || !strings.Contains(result.WGSL, "@fragment") {
		t.Errorf("wgsl missing entry point attributes:\n%s", result.WGSL)
	}
}

func TestTranslateUniformStructPacking(t *testing.T) {
	vertex := `
uniform float u_time;
uniform vec3 u_color;
uniform mat4 u_mvp;
attribute vec3 a_position;
void main() {
	gl_Position = u_mvp * vec4(a_position * u_time, 1.0);
}
`
	fragment := `
void main() {
	gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
	result, errs := Translate(vertex, fragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	members := result.UniformBuffer.Members
	want := []struct {
		name   string
		offset int
	}{
		{"u_time", 0},
		{"u_color", 16},
		{"u_mvp", 32},
	}
	if len(members) != len(want) {
		t.Fatalf("members = %#v", members)
	}
	for i, w := range want {
		if members[i].Name != w.name || members[i].Offset != w.offset {
			t.Errorf("member %d = %+v, want {%s %d}", i, members[i], w.name, w.offset)
		}
	}
	if result.UniformBuffer.Size != 96 {
		t.Errorf("uniform buffer size = %d, want 96", result.UniformBuffer.Size)
	}
}

func TestTranslateTernaryWrapsAllOnVectorCompare(t *testing.T) {
	vertex := `
attribute vec3 a_position;
void main() {
	vec3 a = a_position;
	vec3 b = a_position;
	float x = a == b ? 1.0 : 0.0;
	gl_Position = vec4(a_position, x);
}
`
	fragment := `
void main() {
	gl_FragColor = vec4(0.0, 0.0, 0.0, 1.0);
}
`
	result, errs := Translate(vertex, fragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	if !strings.Contains(result.WGSL, "select(0.0, 1.0, all((a == b)))") {
		t.Errorf("wgsl missing ternary lowering:\n%s", result.WGSL)
	}
}

func TestTranslateMat3FromMat4Helper(t *testing.T) {
	vertex := `
uniform mat4 u_model;
attribute vec3 a_normal;
varying vec3 v_normal;
void main() {
	mat3 normalMat = mat3(u_model);
	v_normal = normalMat * a_normal;
	gl_Position = vec4(a_normal, 1.0);
}
`
	fragment := `
varying vec3 v_normal;
void main() {
	gl_FragColor = vec4(v_normal, 1.0);
}
`
	result, errs := Translate(vertex, fragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	if !strings.Contains(result.WGSL, "_mat3_from_mat4(_uniforms.u_model)") {
		t.Errorf("wgsl missing mat3(mat4) helper call:\n%s", result.WGSL)
	}
	if !strings.Contains(result.WGSL, "fn _mat3_from_mat4(m: mat4x4f) -> mat3x3f {") {
		t.Errorf("wgsl missing mat3(mat4) helper definition:\n%s", result.WGSL)
	}
}

func TestTranslatePreprocessorConditional(t *testing.T) {
	vertex := `
#define USE_SCALE 1
attribute vec3 a_position;
void main() {
#if USE_SCALE
	gl_Position = vec4(a_position * 2.0, 1.0);
#else
	gl_Position = vec4(a_position, 1.0);
#endif
}
`
	fragment := `
void main() {
	gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
	result, errs := Translate(vertex, fragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	if !strings.Contains(result.WGSL, "a_position * 2.0") {
		t.Errorf("wgsl should take the #if branch:\n%s", result.WGSL)
	}
	if strings.Contains(result.WGSL, "vec4f(a_position, 1.0)") {
		t.Errorf("wgsl should not contain the #else branch:\n%s", result.WGSL)
	}
}

func TestTranslateModAndAtan(t *testing.T) {
	vertex := `
attribute vec3 a_position;
void main() {
	float m = mod(a_position.x, 1.0);
	float a = atan(a_position.y, a_position.x);
	gl_Position = vec4(a_position, m + a);
}
`
	fragment := `
void main() {
	gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
	result, errs := Translate(vertex, fragment, Options{})
	if len(errs) != 0 {
		t.Fatalf("Translate errors: %v", errs)
	}
	if !strings.Contains(result.WGSL, "a_position.x % 1.0") {
		t.Errorf("wgsl missing mod->%% lowering:\n%s", result.WGSL)
	}
	if !strings.Contains(result.WGSL, "atan2(a_position.y, a_position.x)") {
		t.Errorf("wgsl missing atan->atan2 lowering:\n%s", result.WGSL)
	}
}
