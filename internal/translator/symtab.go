// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/typesreg"
)

// symtab resolves GLSL type names (including user structs) and tracks the
// type of every identifier in scope, so expression lowering (expr.go) can
// decide vector-vs-scalar boolean context and constructor/member-access
// shapes without a second AST pass.
type symtab struct {
	structs map[string]typesreg.Type
	scopes  []map[string]typesreg.Type
	// uniformNames is allocated empty and never filled; lowerIdent decides
	// the `_uniforms.<name>` rewrite through bindings.isUniformMember
	// instead (spec.md §4.3.5).
	uniformNames map[string]bool
}

func newSymtab() *symtab {
	return &symtab{
		structs:      map[string]typesreg.Type{},
		scopes:       []map[string]typesreg.Type{{}},
		uniformNames: map[string]bool{},
	}
}

func (s *symtab) push() { s.scopes = append(s.scopes, map[string]typesreg.Type{}) }
func (s *symtab) pop()  { s.scopes = s.scopes[:len(s.scopes)-1] }

func (s *symtab) declare(name string, t typesreg.Type) {
	s.scopes[len(s.scopes)-1][name] = t
}

func (s *symtab) lookup(name string) (typesreg.Type, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if t, ok := s.scopes[i][name]; ok {
			return t, true
		}
	}
	return typesreg.Type{}, false
}

// resolveType turns a parsed TypeSpec into a typesreg.Type, consulting the
// struct registry for user-declared names. ok is false for a name this
// symtab has never seen declared as a struct and isn't a builtin.
func (s *symtab) resolveType(ts ast.TypeSpec) (typesreg.Type, bool) {
	var base typesreg.Type
	if k, ok := typesreg.LookupBuiltin(ts.Name); ok {
		base = typesreg.Scalar(k)
	} else if st, ok := s.structs[ts.Name]; ok {
		base = st
	} else {
		return typesreg.Type{}, false
	}
	if ts.IsArray {
		return typesreg.Array(base, ts.ArrayLen), true
	}
	return base, true
}

// registerStruct resolves a struct declaration's fields and records the
// result under its name for later resolveType lookups.
func (s *symtab) registerStruct(decl *ast.StructDecl) {
	fields := make([]typesreg.Field, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		ft, ok := s.resolveType(f.Type)
		if !ok {
			// An unresolvable field type (forward reference or typo) is
			// not reported; it falls back to float so layout computation
			// doesn't panic on a zero Kind.
			ft = typesreg.Scalar(typesreg.KindFloat)
		}
		fields = append(fields, typesreg.Field{Name: f.Name, Type: ft})
	}
	s.structs[decl.Name] = typesreg.Struct(decl.Name, fields...)
}
