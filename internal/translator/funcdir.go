// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import "github.com/gogpu/byegl/internal/glsl/ast"

// paramDir records one function's parameter directions, populated at
// declaration time and consulted at every call site (spec.md §4.3.6): a
// GLSL `out`/`inout` parameter becomes a pointer parameter in WGSL, and
// call sites must insert an address-of on the matching argument.
type paramDir struct {
	names []string
	dirs  []string // "", "out", "inout" per parameter
}

// funcDirTable maps a function name to its parameter directions. Built
// once per stage by scanning every FuncDecl before expression lowering
// begins, since a call site may precede its callee's declaration is never
// true in GLSL (functions must be declared before use) but a single
// top-to-bottom scan keeps the lookup available uniformly regardless.
type funcDirTable map[string]paramDir

func buildFuncDirTable(stmts []ast.Stmt) funcDirTable {
	table := funcDirTable{}
	for _, s := range stmts {
		fn, ok := s.(*ast.FuncDecl)
		if !ok {
			continue
		}
		pd := paramDir{}
		for _, p := range fn.Params {
			pd.names = append(pd.names, p.Name)
			pd.dirs = append(pd.dirs, p.Direction)
		}
		table[fn.Name] = pd
	}
	return table
}

// dirOf reports the declared direction of fn's paramIndex-th parameter, or
// "" if fn is unknown (a builtin function, which takes no out/inout
// parameters in the subset this translator lowers, modf excepted and
// handled specially in expr.go).
func (t funcDirTable) dirOf(fn string, paramIndex int) string {
	pd, ok := t[fn]
	if !ok || paramIndex >= len(pd.dirs) {
		return ""
	}
	return pd.dirs[paramIndex]
}
