// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"fmt"

	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/glsl/parser"
)

// funcMacro is one `#define NAME(params) body` function-like macro, with
// body already parsed to an expression tree once at definition time.
type funcMacro struct {
	params []string
	body   ast.Expr
}

// preprocessor folds `#define` object/function macros by substitution and
// `#if`/`#ifdef`/`#ifndef`/`#elif`/`#else`/`#endif` by constant-folding
// their condition, per spec.md §4.3.1. `#version` is recognized and
// dropped without effect, matching the spec's "ignored" instruction.
//
// Macro substitution happens at the AST level rather than by textual
// replacement: a function macro's parsed body has its parameter
// identifiers replaced by the call site's argument expressions. This is
// semantically equivalent to cpp's textual argument binding for the
// expression-only macro bodies GLSL shaders use in practice, and avoids
// re-lexing substituted text.
type preprocessor struct {
	objects map[string]ast.Expr
	funcs   map[string]funcMacro
	errs    []error
}

// condFrame is one entry of the #if/#ifdef/.../#endif nesting stack.
type condFrame struct {
	parentActive bool // whether the enclosing scope is emitting at all
	taken        bool // whether this frame (or an earlier branch of it) has already matched
	active       bool // whether the current branch of this frame is emitting
}

// Expand runs the preprocessor over a flat statement list, returning the
// statements that survive conditional filtering with every macro reference
// substituted.
func Expand(stmts []ast.Stmt) ([]ast.Stmt, []error) {
	pp := &preprocessor{objects: map[string]ast.Expr{}, funcs: map[string]funcMacro{}}
	var stack []condFrame
	active := func() bool {
		for _, f := range stack {
			if !f.active {
				return false
			}
		}
		return true
	}

	var out []ast.Stmt
	for _, stmt := range stmts {
		dir, isDirective := stmt.(*ast.PreprocessorDirective)
		if !isDirective {
			if active() {
				out = append(out, pp.rewriteStmt(stmt))
			}
			continue
		}

		switch dir.Kind {
		case "version", "empty", "extension", "pragma":
			// ignored per spec.md §4.3.1
		case "define_object":
			if active() {
				expr, perrs := parser.ParseExprString(dir.Body)
				if len(perrs) != 0 {
					pp.errs = append(pp.errs, perrs...)
				}
				if expr != nil {
					pp.objects[dir.Name] = expr
				} else {
					// An object macro with no expression body (e.g. a bare
					// feature-flag `#define HAS_THING`) still needs to
					// satisfy `defined(HAS_THING)`; record it as the
					// literal `1`.
					pp.objects[dir.Name] = &ast.Literal{Kind: ast.LiteralInt, Text: "1"}
				}
			}
		case "define_function":
			if active() {
				expr, perrs := parser.ParseExprString(dir.Body)
				if len(perrs) != 0 {
					pp.errs = append(pp.errs, perrs...)
				}
				pp.funcs[dir.Name] = funcMacro{params: dir.Params, body: expr}
			}
		case "ifdef", "ifndef":
			parentActive := active()
			_, defined := pp.objects[dir.Name]
			if _, isFn := pp.funcs[dir.Name]; isFn {
				defined = true
			}
			cond := defined
			if dir.Kind == "ifndef" {
				cond = !defined
			}
			stack = append(stack, condFrame{parentActive: parentActive, taken: cond, active: parentActive && cond})
		case "if":
			parentActive := active()
			cond := false
			if dir.Cond != nil {
				v, err := pp.foldCond(dir.Cond)
				if err != nil {
					pp.errs = append(pp.errs, err)
				}
				cond = v
			}
			stack = append(stack, condFrame{parentActive: parentActive, taken: cond, active: parentActive && cond})
		case "elif":
			if len(stack) == 0 {
				pp.errs = append(pp.errs, fmt.Errorf("#elif without matching #if"))
				continue
			}
			top := &stack[len(stack)-1]
			cond := false
			if !top.taken && dir.Cond != nil {
				v, err := pp.foldCond(dir.Cond)
				if err != nil {
					pp.errs = append(pp.errs, err)
				}
				cond = v
			}
			top.active = top.parentActive && !top.taken && cond
			if cond {
				top.taken = true
			}
		case "else":
			if len(stack) == 0 {
				pp.errs = append(pp.errs, fmt.Errorf("#else without matching #if"))
				continue
			}
			top := &stack[len(stack)-1]
			top.active = top.parentActive && !top.taken
			top.taken = true
		case "endif":
			if len(stack) == 0 {
				pp.errs = append(pp.errs, fmt.Errorf("#endif without matching #if"))
				continue
			}
			stack = stack[:len(stack)-1]
		default:
			pp.errs = append(pp.errs, fmt.Errorf("unsupported preprocessor directive %q", dir.Kind))
		}
	}
	return out, pp.errs
}

func (pp *preprocessor) foldCond(e ast.Expr) (bool, error) {
	v, err := pp.foldNum(e)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// foldNum constant-folds a preprocessor condition expression to a number,
// per spec.md §4.3.1: literals, identifiers (from the define table),
// `defined(X)`, unary `!`, binary arithmetic, comparisons, and logical
// `&&`/`||`.
func (pp *preprocessor) foldNum(e ast.Expr) (float64, error) {
	switch n := e.(type) {
	case *ast.Literal:
		switch n.Kind {
		case ast.LiteralBool:
			if n.Text == "true" {
				return 1, nil
			}
			return 0, nil
		default:
			var v float64
			_, err := fmt.Sscanf(n.Text, "%g", &v)
			return v, err
		}
	case *ast.Ident:
		if v, ok := pp.objects[n.Name]; ok {
			return pp.foldNum(v)
		}
		// An undefined identifier in a preprocessor condition folds to 0,
		// matching the conventional C preprocessor rule.
		return 0, nil
	case *ast.Call:
		if n.Callee == "defined" && len(n.Args) == 1 {
			if id, ok := n.Args[0].(*ast.Ident); ok {
				_, isObj := pp.objects[id.Name]
				_, isFn := pp.funcs[id.Name]
				if isObj || isFn {
					return 1, nil
				}
				return 0, nil
			}
		}
		return 0, fmt.Errorf("unsupported preprocessor call %q", n.Callee)
	case *ast.Unary:
		v, err := pp.foldNum(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "!":
			if v == 0 {
				return 1, nil
			}
			return 0, nil
		case "-":
			return -v, nil
		default:
			return v, nil
		}
	case *ast.Binary:
		lhs, err := pp.foldNum(n.LHS)
		if err != nil {
			return 0, err
		}
		rhs, err := pp.foldNum(n.RHS)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return lhs + rhs, nil
		case "-":
			return lhs - rhs, nil
		case "*":
			return lhs * rhs, nil
		case "/":
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero in preprocessor condition")
			}
			return lhs / rhs, nil
		case "==":
			return boolNum(lhs == rhs), nil
		case "!=":
			return boolNum(lhs != rhs), nil
		case "<":
			return boolNum(lhs < rhs), nil
		case "<=":
			return boolNum(lhs <= rhs), nil
		case ">":
			return boolNum(lhs > rhs), nil
		case ">=":
			return boolNum(lhs >= rhs), nil
		default:
			return 0, fmt.Errorf("unsupported preprocessor operator %q", n.Op)
		}
	case *ast.Logical:
		lhs, err := pp.foldNum(n.LHS)
		if err != nil {
			return 0, err
		}
		rhs, err := pp.foldNum(n.RHS)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "&&":
			return boolNum(lhs != 0 && rhs != 0), nil
		case "||":
			return boolNum(lhs != 0 || rhs != 0), nil
		default:
			return 0, fmt.Errorf("unsupported preprocessor operator %q", n.Op)
		}
	default:
		return 0, fmt.Errorf("unsupported preprocessor condition expression")
	}
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ---- macro substitution over the surviving AST ----

func (pp *preprocessor) rewriteStmt(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case *ast.VarDecl:
		if n.Init != nil {
			n.Init = pp.rewriteExpr(n.Init)
		}
		return n
	case *ast.ExprStmt:
		n.X = pp.rewriteExpr(n.X)
		return n
	case *ast.ReturnStmt:
		if n.X != nil {
			n.X = pp.rewriteExpr(n.X)
		}
		return n
	case *ast.IfStmt:
		n.Cond = pp.rewriteExpr(n.Cond)
		n.Then = pp.rewriteStmt(n.Then)
		if n.Else != nil {
			n.Else = pp.rewriteStmt(n.Else)
		}
		return n
	case *ast.ForStmt:
		if n.Init != nil {
			n.Init = pp.rewriteStmt(n.Init)
		}
		if n.Cond != nil {
			n.Cond = pp.rewriteExpr(n.Cond)
		}
		if n.Post != nil {
			n.Post = pp.rewriteExpr(n.Post)
		}
		n.Body = pp.rewriteStmt(n.Body)
		return n
	case *ast.Block:
		for i, sub := range n.Stmts {
			n.Stmts[i] = pp.rewriteStmt(sub)
		}
		return n
	case *ast.FuncDecl:
		if n.Body != nil {
			n.Body = pp.rewriteStmt(n.Body).(*ast.Block)
		}
		return n
	default:
		return s
	}
}

func (pp *preprocessor) rewriteExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.Ident:
		if repl, ok := pp.objects[n.Name]; ok {
			return pp.rewriteExpr(repl)
		}
		return n
	case *ast.Call:
		for i, a := range n.Args {
			n.Args[i] = pp.rewriteExpr(a)
		}
		if fn, ok := pp.funcs[n.Callee]; ok {
			return pp.expandFuncMacro(fn, n.Args)
		}
		return n
	case *ast.Assignment:
		n.LHS = pp.rewriteExpr(n.LHS)
		n.RHS = pp.rewriteExpr(n.RHS)
		return n
	case *ast.Binary:
		n.LHS = pp.rewriteExpr(n.LHS)
		n.RHS = pp.rewriteExpr(n.RHS)
		return n
	case *ast.Logical:
		n.LHS = pp.rewriteExpr(n.LHS)
		n.RHS = pp.rewriteExpr(n.RHS)
		return n
	case *ast.Unary:
		n.X = pp.rewriteExpr(n.X)
		return n
	case *ast.Update:
		n.X = pp.rewriteExpr(n.X)
		return n
	case *ast.Conditional:
		n.Cond = pp.rewriteExpr(n.Cond)
		n.Then = pp.rewriteExpr(n.Then)
		n.Else = pp.rewriteExpr(n.Else)
		return n
	case *ast.Member:
		n.X = pp.rewriteExpr(n.X)
		return n
	case *ast.ComputedMember:
		n.X = pp.rewriteExpr(n.X)
		n.Index = pp.rewriteExpr(n.Index)
		return n
	case *ast.ArraySpecifier:
		for i, el := range n.Elems {
			n.Elems[i] = pp.rewriteExpr(el)
		}
		return n
	default:
		return e
	}
}

// expandFuncMacro substitutes a function macro's parameters with the call
// site's (already-rewritten) argument expressions, walking a fresh copy of
// the macro body so repeated invocations don't alias the same nodes.
func (pp *preprocessor) expandFuncMacro(fn funcMacro, args []ast.Expr) ast.Expr {
	if fn.body == nil {
		return &ast.Literal{Kind: ast.LiteralInt, Text: "0"}
	}
	bind := map[string]ast.Expr{}
	for i, name := range fn.params {
		if i < len(args) {
			bind[name] = args[i]
		}
	}
	return substituteParams(fn.body, bind)
}

func substituteParams(e ast.Expr, bind map[string]ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Ident:
		if v, ok := bind[n.Name]; ok {
			return v
		}
		return n
	case *ast.Call:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = substituteParams(a, bind)
		}
		return &ast.Call{Base: n.Base, Callee: n.Callee, Args: args}
	case *ast.Binary:
		return &ast.Binary{Base: n.Base, Op: n.Op, LHS: substituteParams(n.LHS, bind), RHS: substituteParams(n.RHS, bind)}
	case *ast.Logical:
		return &ast.Logical{Base: n.Base, Op: n.Op, LHS: substituteParams(n.LHS, bind), RHS: substituteParams(n.RHS, bind)}
	case *ast.Unary:
		return &ast.Unary{Base: n.Base, Op: n.Op, X: substituteParams(n.X, bind)}
	case *ast.Conditional:
		return &ast.Conditional{Base: n.Base, Cond: substituteParams(n.Cond, bind), Then: substituteParams(n.Then, bind), Else: substituteParams(n.Else, bind)}
	case *ast.Member:
		return &ast.Member{Base: n.Base, X: substituteParams(n.X, bind), Field: n.Field}
	case *ast.ComputedMember:
		return &ast.ComputedMember{Base: n.Base, X: substituteParams(n.X, bind), Index: substituteParams(n.Index, bind)}
	default:
		return e
	}
}
