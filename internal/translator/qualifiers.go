// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import "github.com/gogpu/byegl/internal/glsl/ast"

// Role is the effective per-stage meaning of a declaration, resolved from
// its qualifier list and the stage it appears in (spec.md §4.3.2).
type Role int

// The roles spec.md §4.3.2 enumerates.
const (
	RoleVertexInput Role = iota
	RoleVarying
	RoleFragmentOutput
	RoleTextureBinding
	RoleUniformMember
	RoleConst
	RolePrivate
)

func hasQual(decl *ast.VarDecl, q ast.Qualifier) bool {
	for _, got := range decl.Qualifiers {
		if got == q {
			return true
		}
	}
	return false
}

// classify resolves decl's Role per spec.md §4.3.2's table. isSampler
// tells the uniform branch whether to route to RoleTextureBinding or
// RoleUniformMember.
func classify(decl *ast.VarDecl, stage Stage, isSampler bool) Role {
	switch {
	case hasQual(decl, ast.QualAttribute):
		return RoleVertexInput
	case hasQual(decl, ast.QualIn) && stage == StageVertex:
		return RoleVertexInput
	case hasQual(decl, ast.QualVarying):
		return RoleVarying
	case hasQual(decl, ast.QualOut) && stage == StageVertex:
		return RoleVarying
	case hasQual(decl, ast.QualIn) && stage == StageFragment:
		return RoleVarying
	case hasQual(decl, ast.QualOut) && stage == StageFragment:
		return RoleFragmentOutput
	case hasQual(decl, ast.QualUniform):
		if isSampler {
			return RoleTextureBinding
		}
		return RoleUniformMember
	case hasQual(decl, ast.QualConst):
		return RoleConst
	default:
		return RolePrivate
	}
}
