// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"fmt"
	"strings"

	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/typesreg"
)

// helperSet tracks which hand-rolled WGSL helper functions an expression
// lowering pass needed, so emit.go only emits the ones actually used
// (spec.md §4.3.5: the mat3(mat4) and modf(x, out y) helpers).
type helperSet struct {
	needMat3FromMat4 bool
	needModf         bool
}

// lowerCtx is the environment an expression is lowered under: the scope
// chain for identifier types, the location/binding assignment for
// uniform-struct and sampler rewriting, the per-function parameter
// direction table for out/inout call arguments, and the shared helper/
// error accumulators for the enclosing stage.
type lowerCtx struct {
	stage   Stage
	scope   *symtab
	binds   *bindings
	dirs    funcDirTable
	helpers *helperSet
	errs    *errorLog
	// ancestors is a human-readable breadcrumb of enclosing constructs,
	// threaded into Error.Ancestors so a lowering failure reports where it
	// happened (spec.md §4.3.7).
	ancestors []string
}

func (c *lowerCtx) with(frame string) *lowerCtx {
	n := *c
	n.ancestors = append(append([]string{}, c.ancestors...), frame)
	return &n
}

func (c *lowerCtx) fail(pos ast.Pos, format string, args ...any) {
	c.errs.add(pos, c.ancestors, format, args...)
}

// exprVal is one lowered expression: its WGSL text, its inferred GLSL-side
// type, and whether a bool-kinded result came from elementwise vector
// operands (spec.md §4.3.5's "vectors of bools" case), which the if/
// ternary use sites wrap with `all(...)`.
type exprVal struct {
	code       string
	typ        typesreg.Type
	fromVector bool
}

// constructorKind reports the Kind of a GLSL type-constructor call name
// the lexer produces as a plain identifier; the emitted callee is the
// type's WGSL spelling (e.g. "vec3" source calls "vec3f" in WGSL).
func constructorKind(name string) (typesreg.Kind, bool) {
	return typesreg.LookupBuiltin(name)
}

// lowerExpr lowers e to WGSL text under ctx.
func (c *lowerCtx) lowerExpr(e ast.Expr) exprVal {
	switch n := e.(type) {
	case *ast.Ident:
		return c.lowerIdent(n)
	case *ast.Literal:
		return c.lowerLiteral(n)
	case *ast.Call:
		return c.lowerCall(n)
	case *ast.Assignment:
		return c.lowerAssignmentExpr(n)
	case *ast.Binary:
		return c.lowerBinary(n)
	case *ast.Logical:
		return c.lowerLogical(n)
	case *ast.Unary:
		return c.lowerUnary(n)
	case *ast.Update:
		return c.lowerUpdate(n)
	case *ast.Conditional:
		return c.lowerConditional(n)
	case *ast.Member:
		return c.lowerMember(n)
	case *ast.ComputedMember:
		return c.lowerComputedMember(n)
	default:
		c.fail(e.Position(), "unsupported expression node %T", e)
		return exprVal{code: "/* unsupported */", typ: typesreg.Scalar(typesreg.KindFloat)}
	}
}

func (c *lowerCtx) lowerIdent(n *ast.Ident) exprVal {
	if c.binds.isUniformMember(n.Name) {
		t, _ := c.scope.lookup(n.Name)
		return exprVal{code: "_uniforms." + n.Name, typ: t}
	}
	if t, ok := c.scope.lookup(n.Name); ok {
		return exprVal{code: n.Name, typ: t}
	}
	// Unknown identifiers (builtin constants, or names the symbol table
	// never saw declared) pass through verbatim; WGSL's own compiler would
	// reject a truly undeclared name, so this only ever happens for names
	// this translator doesn't track (e.g. gl_PointSize) which are dropped
	// at proxy-declaration time and silently pass through here.
	return exprVal{code: n.Name, typ: typesreg.Scalar(typesreg.KindFloat)}
}

func (c *lowerCtx) lowerLiteral(n *ast.Literal) exprVal {
	switch n.Kind {
	case ast.LiteralInt:
		return exprVal{code: n.Text, typ: typesreg.Scalar(typesreg.KindInt)}
	case ast.LiteralUint:
		return exprVal{code: n.Text, typ: typesreg.Scalar(typesreg.KindUint)}
	case ast.LiteralFloat:
		return exprVal{code: n.Text, typ: typesreg.Scalar(typesreg.KindFloat)}
	case ast.LiteralBool:
		return exprVal{code: n.Text, typ: typesreg.Scalar(typesreg.KindBool)}
	default:
		return exprVal{code: n.Text, typ: typesreg.Scalar(typesreg.KindFloat)}
	}
}

// builtinElementwise is the set of GLSL builtin functions whose WGSL name
// matches exactly and whose result shares its first argument's type —
// every ordinary elementwise math builtin this translator passes through
// unchanged.
var builtinElementwise = map[string]bool{
	"sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"exp": true, "log": true, "exp2": true, "log2": true,
	"sqrt": true, "inversesqrt": true, "abs": true, "sign": true,
	"floor": true, "ceil": true, "fract": true, "pow": true,
	"min": true, "max": true, "clamp": true, "mix": true,
	"step": true, "smoothstep": true, "normalize": true,
	"reflect": true, "refract": true, "transpose": true,
	"faceforward": true, "dFdx": true, "dFdy": true, "fwidth": true,
	"all": true, "any": true, "not": true,
}

func (c *lowerCtx) lowerCall(n *ast.Call) exprVal {
	if k, ok := constructorKind(n.Callee); ok {
		return c.lowerConstructorCall(n, k)
	}

	switch n.Callee {
	case "texture2D", "texture":
		return c.lowerTextureSample(n)
	case "mod":
		return c.lowerBinaryLikeCall(n, "%")
	case "atan":
		if len(n.Args) == 2 {
			y := c.lowerExpr(n.Args[0])
			x := c.lowerExpr(n.Args[1])
			return exprVal{code: fmt.Sprintf("atan2(%s, %s)", y.code, x.code), typ: y.typ}
		}
		a := c.lowerExpr(n.Args[0])
		return exprVal{code: fmt.Sprintf("atan(%s)", a.code), typ: a.typ}
	case "lessThanEqual":
		return c.lowerBinaryLikeCall(n, "<=")
	case "lessThan":
		return c.lowerBinaryLikeCall(n, "<")
	case "greaterThan":
		return c.lowerBinaryLikeCall(n, ">")
	case "greaterThanEqual":
		return c.lowerBinaryLikeCall(n, ">=")
	case "equal":
		return c.lowerBinaryLikeCall(n, "==")
	case "notEqual":
		return c.lowerBinaryLikeCall(n, "!=")
	case "modf":
		return c.lowerModf(n)
	case "dot", "length", "distance":
		args := c.lowerArgs(n.Args, n.Callee, nil)
		return exprVal{code: fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", ")), typ: typesreg.Scalar(typesreg.KindFloat)}
	case "cross":
		args := c.lowerArgs(n.Args, n.Callee, nil)
		return exprVal{code: fmt.Sprintf("cross(%s)", strings.Join(args, ", ")), typ: typesreg.Scalar(typesreg.KindVec3)}
	}

	if builtinElementwise[n.Callee] {
		var first typesreg.Type
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			v := c.lowerExpr(a)
			if i == 0 {
				first = v.typ
			}
			args[i] = v.code
		}
		resultType := first
		if n.Callee == "all" || n.Callee == "any" {
			resultType = typesreg.Scalar(typesreg.KindBool)
		}
		return exprVal{code: fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", ")), typ: resultType}
	}

	// A user function call: wrap out/inout arguments with address-of per
	// the per-function direction table (spec.md §4.3.6).
	args := c.lowerArgs(n.Args, n.Callee, c.dirs)
	return exprVal{code: fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", "))}
}

func (c *lowerCtx) lowerArgs(exprs []ast.Expr, callee string, dirs funcDirTable) []string {
	out := make([]string, len(exprs))
	for i, a := range exprs {
		v := c.lowerExpr(a)
		if dirs != nil {
			if d := dirs.dirOf(callee, i); d == "out" || d == "inout" {
				out[i] = "&" + v.code
				continue
			}
		}
		out[i] = v.code
	}
	return out
}

func (c *lowerCtx) lowerConstructorCall(n *ast.Call, k typesreg.Kind) exprVal {
	resultType := typesreg.Scalar(k)
	if k == typesreg.KindMat3 && len(n.Args) == 1 {
		arg := c.lowerExpr(n.Args[0])
		if arg.typ.Kind == typesreg.KindMat4 {
			c.helpers.needMat3FromMat4 = true
			return exprVal{code: fmt.Sprintf("_mat3_from_mat4(%s)", arg.code), typ: resultType}
		}
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = c.lowerExpr(a).code
	}
	return exprVal{code: fmt.Sprintf("%s(%s)", resultType.WGSLName(false), strings.Join(args, ", ")), typ: resultType}
}

// lowerTextureSample lowers texture2D(sampler, uv) / texture(sampler, uv)
// to textureSample(tex, companion_sampler, uv), resolving the companion
// sampler from the sampler-to-texture map (spec.md §4.3.5, §4.3.3).
func (c *lowerCtx) lowerTextureSample(n *ast.Call) exprVal {
	if len(n.Args) < 2 {
		c.fail(n.Position(), "%s requires a sampler and coordinate argument", n.Callee)
		return exprVal{code: "vec4f(0.0, 0.0, 0.0, 0.0)", typ: typesreg.Scalar(typesreg.KindVec4)}
	}
	samplerIdent, ok := n.Args[0].(*ast.Ident)
	if !ok {
		c.fail(n.Position(), "%s's first argument must be a sampler uniform", n.Callee)
		return exprVal{code: "vec4f(0.0, 0.0, 0.0, 0.0)", typ: typesreg.Scalar(typesreg.KindVec4)}
	}
	tex, ok := c.binds.textureFor(samplerIdent.Name)
	if !ok {
		c.fail(n.Position(), "%q is not a declared sampler uniform", samplerIdent.Name)
		return exprVal{code: "vec4f(0.0, 0.0, 0.0, 0.0)", typ: typesreg.Scalar(typesreg.KindVec4)}
	}
	uv := c.lowerExpr(n.Args[1])
	return exprVal{
		code: fmt.Sprintf("textureSample(%s, %s, %s)", tex.Name, samplerName(tex.Name), uv.code),
		typ:  typesreg.Scalar(typesreg.KindVec4),
	}
}

// samplerName is the companion sampler binding's WGSL identifier for a
// texture uniform named name (spec.md §4.3.4 step 2).
func samplerName(name string) string { return name + "_sampler" }

// lowerBinaryLikeCall lowers a GLSL relational/mod builtin function call
// to WGSL's native infix operator (spec.md §4.3.5): `mod(a,b)` → `a % b`,
// `lessThanEqual(a,b)` → `(a <= b)`, and so on for its siblings.
func (c *lowerCtx) lowerBinaryLikeCall(n *ast.Call, op string) exprVal {
	if len(n.Args) != 2 {
		c.fail(n.Position(), "%s requires exactly two arguments", n.Callee)
		return exprVal{code: "false", typ: typesreg.Scalar(typesreg.KindBool)}
	}
	lhs := c.lowerExpr(n.Args[0])
	rhs := c.lowerExpr(n.Args[1])
	isComparison := op != "%"
	resultType := lhs.typ
	if isComparison {
		resultType = typesreg.Scalar(typesreg.KindBool)
	}
	return exprVal{
		code:       fmt.Sprintf("(%s %s %s)", lhs.code, op, rhs.code),
		typ:        resultType,
		fromVector: isComparison && (lhs.typ.Kind.IsVector() || rhs.typ.Kind.IsVector()),
	}
}

// lowerModf lowers `modf(x, out i)` to a call to the emitted helper that
// indirects the whole-part output through a pointer (spec.md §4.3.5).
func (c *lowerCtx) lowerModf(n *ast.Call) exprVal {
	if len(n.Args) != 2 {
		c.fail(n.Position(), "modf requires exactly two arguments")
		return exprVal{code: "0.0", typ: typesreg.Scalar(typesreg.KindFloat)}
	}
	c.helpers.needModf = true
	x := c.lowerExpr(n.Args[0])
	i := c.lowerExpr(n.Args[1])
	return exprVal{code: fmt.Sprintf("_modf_helper(%s, &%s)", x.code, i.code), typ: typesreg.Scalar(typesreg.KindFloat)}
}

var assignOpText = map[ast.AssignOp]string{
	ast.AssignPlain: "=",
	ast.AssignAdd:   "+=",
	ast.AssignSub:   "-=",
	ast.AssignMul:   "*=",
	ast.AssignDiv:   "/=",
}

// lowerAssignmentExpr lowers an assignment used as an expression (e.g. a
// for-loop's post clause). GLSL permits assignment anywhere an expression
// is valid; WGSL's assignment is statement-only, so this form only
// survives lowering when the enclosing statement context accepts a bare
// assignment (the common `i = i + 1`-style for-post clause this
// translator is exercised against).
func (c *lowerCtx) lowerAssignmentExpr(n *ast.Assignment) exprVal {
	lhs := c.lowerExpr(n.LHS)
	rhs := c.lowerExpr(n.RHS)
	op := assignOpText[n.Op]
	return exprVal{code: fmt.Sprintf("%s %s %s", lhs.code, op, rhs.code), typ: lhs.typ}
}

var binaryOpText = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

func (c *lowerCtx) lowerBinary(n *ast.Binary) exprVal {
	lhs := c.lowerExpr(n.LHS)
	rhs := c.lowerExpr(n.RHS)
	isComparison := n.Op == "==" || n.Op == "!=" || n.Op == "<" || n.Op == "<=" || n.Op == ">" || n.Op == ">="
	resultType := lhs.typ
	if isComparison {
		resultType = typesreg.Scalar(typesreg.KindBool)
	}
	return exprVal{
		code:       fmt.Sprintf("(%s %s %s)", lhs.code, n.Op, rhs.code),
		typ:        resultType,
		fromVector: isComparison && (lhs.typ.Kind.IsVector() || rhs.typ.Kind.IsVector()),
	}
}

func (c *lowerCtx) lowerLogical(n *ast.Logical) exprVal {
	lhs := c.lowerExpr(n.LHS)
	rhs := c.lowerExpr(n.RHS)
	return exprVal{
		code:       fmt.Sprintf("(%s %s %s)", lhs.code, n.Op, rhs.code),
		typ:        typesreg.Scalar(typesreg.KindBool),
		fromVector: lhs.typ.Kind.IsVector() || rhs.typ.Kind.IsVector(),
	}
}

func (c *lowerCtx) lowerUnary(n *ast.Unary) exprVal {
	x := c.lowerExpr(n.X)
	resultType := x.typ
	if n.Op == "!" {
		resultType = typesreg.Scalar(typesreg.KindBool)
	}
	return exprVal{code: fmt.Sprintf("%s%s", n.Op, x.code), typ: resultType}
}

func (c *lowerCtx) lowerUpdate(n *ast.Update) exprVal {
	x := c.lowerExpr(n.X)
	if n.Prefix {
		return exprVal{code: fmt.Sprintf("%s%s", n.Op, x.code), typ: x.typ}
	}
	return exprVal{code: fmt.Sprintf("%s%s", x.code, n.Op), typ: x.typ}
}

// lowerConditional lowers the ternary `cond ? then : else_` to WGSL's
// `select(then, else_, cond)`, wrapping cond in `all(...)` if it was
// produced by an elementwise vector comparison (spec.md §4.3.5).
func (c *lowerCtx) lowerConditional(n *ast.Conditional) exprVal {
	cond := c.lowerExpr(n.Cond)
	then := c.lowerExpr(n.Then)
	els := c.lowerExpr(n.Else)
	condCode := scalarBoolOf(cond)
	return exprVal{code: fmt.Sprintf("select(%s, %s, %s)", els.code, then.code, condCode), typ: then.typ}
}

// scalarBoolOf produces a single bool from v, wrapping with `all(...)`
// when v came from an elementwise vector comparison, or with `bool(...)`
// when v isn't already a bool (spec.md §4.3.5's ternary and mat3 rules
// extend naturally to every scalar-bool use site: `if`, ternary).
func scalarBoolOf(v exprVal) string {
	if v.fromVector {
		return fmt.Sprintf("all(%s)", v.code)
	}
	if v.typ.Kind != typesreg.KindBool {
		return fmt.Sprintf("bool(%s)", v.code)
	}
	return v.code
}

func (c *lowerCtx) lowerMember(n *ast.Member) exprVal {
	x := c.lowerExpr(n.X)
	return exprVal{code: fmt.Sprintf("%s.%s", x.code, n.Field), typ: swizzleType(x.typ, n.Field)}
}

// swizzleType infers the type of a swizzle/field access. A single-letter
// swizzle on a vector yields its scalar component type; multi-letter
// swizzles keep the source vector kind (an approximation — this
// translator doesn't track swizzle-length-changing access separately from
// the source type, which only matters for further nested swizzles).
func swizzleType(base typesreg.Type, field string) typesreg.Type {
	if base.Kind.IsVector() && len(field) == 1 {
		switch base.Kind {
		case typesreg.KindIVec2, typesreg.KindIVec3, typesreg.KindIVec4:
			return typesreg.Scalar(typesreg.KindInt)
		case typesreg.KindUVec2, typesreg.KindUVec3, typesreg.KindUVec4:
			return typesreg.Scalar(typesreg.KindUint)
		default:
			return typesreg.Scalar(typesreg.KindFloat)
		}
	}
	if base.Kind == typesreg.KindStruct {
		for _, f := range base.Fields {
			if f.Name == field {
				return f.Type
			}
		}
	}
	return base
}

func (c *lowerCtx) lowerComputedMember(n *ast.ComputedMember) exprVal {
	x := c.lowerExpr(n.X)
	idx := c.lowerExpr(n.Index)
	elemType := x.typ
	if x.typ.Kind == typesreg.KindArray {
		elemType = *x.typ.Elem
	}
	return exprVal{code: fmt.Sprintf("%s[%s]", x.code, idx.code), typ: elemType}
}
