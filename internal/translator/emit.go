// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"fmt"
	"strings"

	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/typesreg"
)

// ---- statement lowering ----
//
// Function bodies are lowered statement-by-statement into WGSL text.
// Unlike expr.go's exprVal results (used as subexpressions), a statement
// always produces a complete, semicolon/brace-terminated line or block.

func (c *lowerCtx) lowerBlock(b *ast.Block, indent string) string {
	c.scope.push()
	defer c.scope.pop()
	var out strings.Builder
	for _, s := range b.Stmts {
		out.WriteString(c.lowerStmt(s, indent))
	}
	return out.String()
}

func (c *lowerCtx) lowerStmt(s ast.Stmt, indent string) string {
	switch n := s.(type) {
	case *ast.VarDecl:
		return c.lowerLocalVarDecl(n, indent)
	case *ast.ExprStmt:
		return c.lowerExprStmt(n, indent)
	case *ast.ReturnStmt:
		if n.X == nil {
			return indent + "return;\n"
		}
		v := c.lowerExpr(n.X)
		return fmt.Sprintf("%sreturn %s;\n", indent, v.code)
	case *ast.IfStmt:
		return c.lowerIf(n, indent)
	case *ast.ForStmt:
		return c.lowerFor(n, indent)
	case *ast.Block:
		var out strings.Builder
		out.WriteString(indent + "{\n")
		out.WriteString(c.lowerBlock(n, indent+"\t"))
		out.WriteString(indent + "}\n")
		return out.String()
	case *ast.PrecisionStmt, *ast.StructDecl, *ast.PreprocessorDirective, *ast.FuncDecl:
		// Declarations that only matter at module scope; encountering one
		// nested inside a function body is not valid GLSL and is ignored
		// rather than failing the whole translation.
		return ""
	default:
		c.fail(s.Position(), "unsupported statement node %T", s)
		return indent + "/* unsupported statement */\n"
	}
}

func (c *lowerCtx) lowerLocalVarDecl(n *ast.VarDecl, indent string) string {
	t, ok := c.scope.resolveType(n.Type)
	if !ok {
		c.fail(n.Position(), "unresolvable local type %q", n.Type.Name)
		t = typesreg.Scalar(typesreg.KindFloat)
	}
	c.scope.declare(n.Name, t)
	keyword := "var"
	if hasQual(n, ast.QualConst) {
		keyword = "let"
	}
	if n.Init == nil {
		return fmt.Sprintf("%s%s %s: %s;\n", indent, keyword, n.Name, t.WGSLName(false))
	}
	init := c.lowerExpr(n.Init)
	return fmt.Sprintf("%s%s %s: %s = %s;\n", indent, keyword, n.Name, t.WGSLName(false), init.code)
}

func (c *lowerCtx) lowerExprStmt(n *ast.ExprStmt, indent string) string {
	if asg, ok := n.X.(*ast.Assignment); ok {
		lhs := c.lowerExpr(asg.LHS)
		rhs := c.lowerExpr(asg.RHS)
		return fmt.Sprintf("%s%s %s %s;\n", indent, lhs.code, assignOpText[asg.Op], rhs.code)
	}
	v := c.lowerExpr(n.X)
	return fmt.Sprintf("%s%s;\n", indent, v.code)
}

func (c *lowerCtx) lowerIf(n *ast.IfStmt, indent string) string {
	cond := c.lowerExpr(n.Cond)
	var out strings.Builder
	fmt.Fprintf(&out, "%sif %s {\n", indent, scalarBoolOf(cond))
	out.WriteString(c.lowerStmtAsBlockBody(n.Then, indent+"\t"))
	out.WriteString(indent + "}\n")
	if n.Else != nil {
		fmt.Fprintf(&out, "%selse {\n", indent)
		out.WriteString(c.lowerStmtAsBlockBody(n.Else, indent+"\t"))
		out.WriteString(indent + "}\n")
	}
	return out.String()
}

// lowerStmtAsBlockBody lowers a statement that sits directly under an
// if/for without its own braces (GLSL permits a single statement there)
// as if it were the sole statement of a block, so if/for bodies are
// always emitted brace-delimited in WGSL regardless of the source shape.
func (c *lowerCtx) lowerStmtAsBlockBody(s ast.Stmt, indent string) string {
	if b, ok := s.(*ast.Block); ok {
		return c.lowerBlock(b, indent)
	}
	c.scope.push()
	defer c.scope.pop()
	return c.lowerStmt(s, indent)
}

func (c *lowerCtx) lowerFor(n *ast.ForStmt, indent string) string {
	c.scope.push()
	defer c.scope.pop()

	initText := ""
	if n.Init != nil {
		initText = strings.TrimRight(strings.TrimSpace(c.lowerStmt(n.Init, "")), ";")
	}
	condText := "true"
	if n.Cond != nil {
		condText = scalarBoolOf(c.lowerExpr(n.Cond))
	}
	postText := ""
	if n.Post != nil {
		if asg, ok := n.Post.(*ast.Assignment); ok {
			lhs := c.lowerExpr(asg.LHS)
			rhs := c.lowerExpr(asg.RHS)
			postText = fmt.Sprintf("%s %s %s", lhs.code, assignOpText[asg.Op], rhs.code)
		} else {
			postText = c.lowerExpr(n.Post).code
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%sfor (%s; %s; %s) {\n", indent, initText, condText, postText)
	out.WriteString(c.lowerStmtAsBlockBody(n.Body, indent+"\t"))
	out.WriteString(indent + "}\n")
	return out.String()
}

// ---- function declaration emission ----

// emitFunctions lowers every user FuncDecl in stmts (main included, under
// its implementation-private name) and returns the WGSL text for all of
// them concatenated, in source order (spec.md §4.3.4 step 5).
func emitFunctions(stmts []ast.Stmt, mainAlias string, ctx *lowerCtx) string {
	var out strings.Builder
	for _, s := range stmts {
		fn, ok := s.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		name := fn.Name
		if name == "main" {
			name = mainAlias
		}
		out.WriteString(emitFunction(fn, name, ctx))
	}
	return out.String()
}

func emitFunction(fn *ast.FuncDecl, name string, ctx *lowerCtx) string {
	fctx := ctx.with("function " + fn.Name)
	fctx.scope.push()
	defer fctx.scope.pop()

	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		t, ok := fctx.scope.resolveType(p.Type)
		if !ok {
			fctx.fail(fn.Position(), "unresolvable parameter type %q in %s", p.Type.Name, fn.Name)
			t = typesreg.Scalar(typesreg.KindFloat)
		}
		fctx.scope.declare(p.Name, t)
		wgslType := t.WGSLName(false)
		if p.Direction == "out" || p.Direction == "inout" {
			wgslType = "ptr<function, " + wgslType + ">"
		}
		params = append(params, fmt.Sprintf("%s: %s", p.Name, wgslType))
	}

	retType := ""
	if ret, ok := fctx.scope.resolveType(fn.ReturnType); ok && ret.Kind != typesreg.KindVoid {
		retType = " -> " + ret.WGSLName(false)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "fn %s(%s)%s {\n", name, strings.Join(params, ", "), retType)
	out.WriteString(fctx.lowerBlock(fn.Body, "\t"))
	out.WriteString("}\n\n")
	return out.String()
}

// ---- module assembly ----

// emitUniformStruct emits spec.md §4.3.4 step 1: the unified uniform
// struct and its binding, with every field aligned to at least 16 bytes.
func emitUniformStruct(buf *UniformBufferLayout) string {
	if buf == nil {
		return ""
	}
	var out strings.Builder
	out.WriteString("struct _Uniforms {\n")
	for _, m := range buf.Members {
		align := typesreg.Align(m.Type)
		if align < 16 {
			align = 16
		}
		fmt.Fprintf(&out, "\t@align(%d) %s: %s,\n", align, m.Name, m.Type.WGSLName(true))
	}
	out.WriteString("}\n")
	fmt.Fprintf(&out, "@group(0) @binding(%d) var<uniform> _uniforms: _Uniforms;\n\n", buf.Binding)
	return out.String()
}

// emitTextureBindings emits spec.md §4.3.4 step 2.
func emitTextureBindings(textures []TextureUniform) string {
	var out strings.Builder
	for _, t := range textures {
		fmt.Fprintf(&out, "@group(0) @binding(%d) var %s: %s;\n", t.TextureBinding, t.Name, t.Type.WGSLName(false))
		fmt.Fprintf(&out, "@group(0) @binding(%d) var %s: sampler;\n", t.SamplerBinding, samplerName(t.Name))
	}
	if len(textures) > 0 {
		out.WriteString("\n")
	}
	return out.String()
}

// emitProxies emits spec.md §4.3.4 step 3: private module-scope variables
// standing in for every attribute, varying, fragment output and implicit
// gl_* global.
func emitProxies(attrs []Attribute, varyingOrder []string, varyingType map[string]typesreg.Type, fragOutput string, fragOutputType typesreg.Type) string {
	var out strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&out, "var<private> %s: %s;\n", a.Name, a.Type.WGSLName(false))
	}
	for _, name := range varyingOrder {
		fmt.Fprintf(&out, "var<private> %s: %s;\n", name, varyingType[name].WGSLName(false))
	}
	if fragOutput != "" {
		fmt.Fprintf(&out, "var<private> %s: %s;\n", fragOutput, fragOutputType.WGSLName(false))
	}
	out.WriteString("var<private> gl_Position: vec4f;\n")
	out.WriteString("var<private> gl_FragColor: vec4f;\n")
	out.WriteString("var<private> gl_FragDepth: f32;\n")
	out.WriteString("var<private> gl_FrontFacing: bool;\n\n")
	return out.String()
}

// emitUserStructs emits spec.md §4.3.4 step 4, in first-declared order.
func emitUserStructs(order []string, st *symtab) string {
	var out strings.Builder
	for _, name := range order {
		t, ok := st.structs[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&out, "struct %s {\n", name)
		for _, f := range t.Fields {
			fmt.Fprintf(&out, "\t%s: %s,\n", f.Name, f.Type.WGSLName(false))
		}
		out.WriteString("}\n\n")
	}
	return out.String()
}

func emitHelpers(h *helperSet) string {
	var out strings.Builder
	if h.needMat3FromMat4 {
		out.WriteString("fn _mat3_from_mat4(m: mat4x4f) -> mat3x3f {\n")
		out.WriteString("\treturn mat3x3f(m[0].xyz, m[1].xyz, m[2].xyz);\n")
		out.WriteString("}\n\n")
	}
	if h.needModf {
		out.WriteString("fn _modf_helper(x: f32, i: ptr<function, f32>) -> f32 {\n")
		out.WriteString("\tlet m = modf(x);\n")
		out.WriteString("\t*i = m.whole;\n")
		out.WriteString("\treturn m.fract;\n")
		out.WriteString("}\n\n")
	}
	return out.String()
}

// emitStageStructs emits spec.md §4.3.4 step 6: the vertex-input,
// vertex-output and fragment-input structs.
func emitStageStructs(attrs []Attribute, varyingOrder []string, varyingLoc map[string]int, varyingType map[string]typesreg.Type) string {
	var out strings.Builder

	out.WriteString("struct VertexInput {\n")
	for _, a := range attrs {
		fmt.Fprintf(&out, "\t@location(%d) %s: %s,\n", a.Location, a.Name, a.Type.WGSLName(false))
	}
	out.WriteString("}\n\n")

	out.WriteString("struct VertexOutput {\n")
	out.WriteString("\t@builtin(position) position: vec4f,\n")
	for _, name := range varyingOrder {
		fmt.Fprintf(&out, "\t@location(%d) %s: %s,\n", varyingLoc[name], name, varyingType[name].WGSLName(false))
	}
	out.WriteString("}\n\n")

	out.WriteString("struct FragmentInput {\n")
	out.WriteString("\t@builtin(front_facing) front_facing: bool,\n")
	for _, name := range varyingOrder {
		fmt.Fprintf(&out, "\t@location(%d) %s: %s,\n", varyingLoc[name], name, varyingType[name].WGSLName(false))
	}
	out.WriteString("}\n\n")

	out.WriteString("struct FragmentOutput {\n")
	out.WriteString("\t@location(0) color: vec4f,\n")
	out.WriteString("}\n\n")

	return out.String()
}

// emitEntryFunctions emits spec.md §4.3.4 step 7: the real vs_main/
// fs_main entry points, copying proxies in and out and performing the
// clip-space z remap the legacy API and the target disagree on.
func emitEntryFunctions(attrs []Attribute, varyingOrder []string, fragOutput string) string {
	var out strings.Builder

	out.WriteString("@vertex\n")
	out.WriteString("fn vs_main(input: VertexInput) -> VertexOutput {\n")
	for _, a := range attrs {
		fmt.Fprintf(&out, "\t%s = input.%s;\n", a.Name, a.Name)
	}
	out.WriteString("\t_vertex_main_impl();\n")
	out.WriteString("\tvar output: VertexOutput;\n")
	out.WriteString("\tvar clip_position = gl_Position;\n")
	out.WriteString("\tclip_position.z = clip_position.z * 0.5 + 0.5;\n")
	out.WriteString("\toutput.position = clip_position;\n")
	for _, name := range varyingOrder {
		fmt.Fprintf(&out, "\toutput.%s = %s;\n", name, name)
	}
	out.WriteString("\treturn output;\n")
	out.WriteString("}\n\n")

	out.WriteString("@fragment\n")
	out.WriteString("fn fs_main(input: FragmentInput) -> FragmentOutput {\n")
	out.WriteString("\tgl_FrontFacing = input.front_facing;\n")
	for _, name := range varyingOrder {
		fmt.Fprintf(&out, "\t%s = input.%s;\n", name, name)
	}
	out.WriteString("\t_fragment_main_impl();\n")
	out.WriteString("\tvar output: FragmentOutput;\n")
	if fragOutput != "" {
		fmt.Fprintf(&out, "\toutput.color = %s;\n", fragOutput)
	} else {
		out.WriteString("\toutput.color = gl_FragColor;\n")
	}
	out.WriteString("\treturn output;\n")
	out.WriteString("}\n")

	return out.String()
}
