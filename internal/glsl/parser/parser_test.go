// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"testing"

	"github.com/gogpu/byegl/internal/glsl/ast"
)

func mustParse(t *testing.T, src string) *ast.Shader {
	t.Helper()
	shader, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("Parse(%q) errors: %v", src, errs)
	}
	return shader
}

func TestParseVertexShaderSkeleton(t *testing.T) {
	src := `
#version 100
attribute vec3 a_position;
uniform mat4 u_mvp;
varying vec2 v_uv;

void main() {
	gl_Position = u_mvp * vec4(a_position, 1.0);
	v_uv = a_position.xy;
}
`
	shader := mustParse(t, src)
	if len(shader.Stmts) != 5 {
		t.Fatalf("got %d top-level stmts, want 5: %#v", len(shader.Stmts), shader.Stmts)
	}

	directive, ok := shader.Stmts[0].(*ast.PreprocessorDirective)
	if !ok || directive.Kind != "version" {
		t.Fatalf("stmt 0 = %#v, want version directive", shader.Stmts[0])
	}

	attr, ok := shader.Stmts[1].(*ast.VarDecl)
	if !ok || attr.Name != "a_position" || attr.Type.Name != "vec3" {
		t.Fatalf("stmt 1 = %#v, want attribute vec3 a_position", shader.Stmts[1])
	}
	if len(attr.Qualifiers) != 1 || attr.Qualifiers[0] != ast.QualAttribute {
		t.Errorf("a_position qualifiers = %v, want [attribute]", attr.Qualifiers)
	}

	fn, ok := shader.Stmts[4].(*ast.FuncDecl)
	if !ok || fn.Name != "main" {
		t.Fatalf("stmt 4 = %#v, want func main", shader.Stmts[4])
	}
	if fn.Body == nil || len(fn.Body.Stmts) != 2 {
		t.Fatalf("main body = %#v, want 2 statements", fn.Body)
	}
}

func TestParseStructDecl(t *testing.T) {
	shader := mustParse(t, `
struct Light {
	vec3 position;
	vec3 color;
	float intensity;
};
`)
	sd, ok := shader.Stmts[0].(*ast.StructDecl)
	if !ok || sd.Name != "Light" {
		t.Fatalf("got %#v, want struct Light", shader.Stmts[0])
	}
	if len(sd.Fields) != 3 || sd.Fields[2].Name != "intensity" {
		t.Errorf("fields = %#v", sd.Fields)
	}
}

func TestParseFunctionWithInAndOutParams(t *testing.T) {
	shader := mustParse(t, `
void splitAngle(in float theta, out float s, out float c) {
	s = sin(theta);
	c = cos(theta);
}
`)
	fn := shader.Stmts[0].(*ast.FuncDecl)
	if len(fn.Params) != 3 {
		t.Fatalf("params = %#v", fn.Params)
	}
	if fn.Params[0].Direction != "" {
		t.Errorf("theta direction = %q, want \"\" (in is the default)", fn.Params[0].Direction)
	}
	if fn.Params[1].Direction != "out" || fn.Params[2].Direction != "out" {
		t.Errorf("out params = %#v", fn.Params[1:])
	}
}

func TestParseIfForAndTernary(t *testing.T) {
	shader := mustParse(t, `
void main() {
	float x = 0.0;
	for (int i = 0; i < 4; i++) {
		if (x > 1.0) {
			x = x - 1.0;
		} else {
			x = x + 0.25;
		}
	}
	float y = x > 0.5 ? 1.0 : 0.0;
}
`)
	fn := shader.Stmts[0].(*ast.FuncDecl)
	if len(fn.Body.Stmts) != 3 {
		t.Fatalf("body stmts = %d, want 3", len(fn.Body.Stmts))
	}
	forStmt, ok := fn.Body.Stmts[1].(*ast.ForStmt)
	if !ok {
		t.Fatalf("stmt 1 = %#v, want ForStmt", fn.Body.Stmts[1])
	}
	ifStmt, ok := forStmt.Body.(*ast.Block).Stmts[0].(*ast.IfStmt)
	if !ok || ifStmt.Else == nil {
		t.Fatalf("for body stmt 0 = %#v, want IfStmt with Else", forStmt.Body)
	}

	yDecl := fn.Body.Stmts[2].(*ast.VarDecl)
	cond, ok := yDecl.Init.(*ast.Conditional)
	if !ok {
		t.Fatalf("y init = %#v, want Conditional", yDecl.Init)
	}
	if _, ok := cond.Cond.(*ast.Binary); !ok {
		t.Errorf("ternary cond = %#v, want Binary", cond.Cond)
	}
}

func TestParseSwizzleAndCall(t *testing.T) {
	shader := mustParse(t, `
void main() {
	vec4 c = texture2D(u_tex, v_uv.xy);
	gl_FragColor = vec4(c.rgb, 1.0);
}
`)
	fn := shader.Stmts[0].(*ast.FuncDecl)
	cDecl := fn.Body.Stmts[0].(*ast.VarDecl)
	call, ok := cDecl.Init.(*ast.Call)
	if !ok || call.Callee != "texture2D" {
		t.Fatalf("c init = %#v, want Call(texture2D)", cDecl.Init)
	}
	member, ok := call.Args[1].(*ast.Member)
	if !ok || member.Field != "xy" {
		t.Fatalf("texture2D arg 1 = %#v, want Member(.xy)", call.Args[1])
	}
}

func TestParseDefineObjectAndFunction(t *testing.T) {
	shader := mustParse(t, `
#define PI 3.14159265
#define SQ(x) ((x) * (x))
`)
	obj, ok := shader.Stmts[0].(*ast.PreprocessorDirective)
	if !ok || obj.Kind != "define_object" || obj.Name != "PI" || obj.Body != "3.14159265" {
		t.Fatalf("got %#v", shader.Stmts[0])
	}
	fn, ok := shader.Stmts[1].(*ast.PreprocessorDirective)
	if !ok || fn.Kind != "define_function" || fn.Name != "SQ" {
		t.Fatalf("got %#v", shader.Stmts[1])
	}
	if len(fn.Params) != 1 || fn.Params[0] != "x" {
		t.Errorf("params = %#v", fn.Params)
	}
}

func TestParseIfCondition(t *testing.T) {
	shader := mustParse(t, `
#if GL_ES
precision mediump float;
#endif
`)
	ifDir, ok := shader.Stmts[0].(*ast.PreprocessorDirective)
	if !ok || ifDir.Kind != "if" || ifDir.Cond == nil {
		t.Fatalf("got %#v", shader.Stmts[0])
	}
	if _, ok := ifDir.Cond.(*ast.Ident); !ok {
		t.Errorf("if condition = %#v, want Ident", ifDir.Cond)
	}
}

func TestParseMultipleDeclarators(t *testing.T) {
	shader := mustParse(t, `uniform float a, b, c;`)
	block, ok := shader.Stmts[0].(*ast.Block)
	if !ok || len(block.Stmts) != 3 {
		t.Fatalf("got %#v, want a 3-statement synthetic block", shader.Stmts[0])
	}
	for i, name := range []string{"a", "b", "c"} {
		vd := block.Stmts[i].(*ast.VarDecl)
		if vd.Name != name {
			t.Errorf("declarator %d name = %q, want %q", i, vd.Name, name)
		}
	}
}

func TestParseArrayDeclaration(t *testing.T) {
	shader := mustParse(t, `uniform vec3 u_colors[4];`)
	vd := shader.Stmts[0].(*ast.VarDecl)
	if !vd.Type.IsArray || vd.Type.ArrayLen != 4 {
		t.Fatalf("type = %#v, want array of length 4", vd.Type)
	}
}
