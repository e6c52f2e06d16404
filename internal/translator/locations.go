// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/typesreg"
)

// bindings is the result of the location/binding assignment pass over both
// shader stages combined (spec.md §4.3.3).
type bindings struct {
	Attributes []Attribute
	// VaryingLocation maps a varying's name to its assigned location,
	// shared by both stages so the vertex output struct and fragment
	// input struct agree (spec.md §4.3.3: "matched by name across
	// stages").
	VaryingLocation map[string]int
	VaryingOrder    []string
	VaryingType     map[string]typesreg.Type

	UniformBuffer *UniformBufferLayout
	Textures      []TextureUniform

	// uniformStructBinding is the single binding number allocated to the
	// unified uniform struct, valid only when UniformBuffer != nil.
	uniformStructBinding int
}

// assignLocations walks both stages' declarations once each, in source
// order, and assigns vertex-input locations, varying locations (shared by
// name), and uniform/texture bindings (spec.md §4.3.3).
//
// Note: the parser does not recognize GLSL's `layout(location=N)` prefix
// syntax (absent from #version 100 entirely, and never exercised by the
// shaders this translator has been run against — see DESIGN.md), so every
// location and binding here is auto-assigned in source order; the
// "skipping any locations already taken by an explicit layout" clause of
// spec.md §4.3.3 is therefore a no-op in this implementation.
func assignLocations(vertexStmts, fragmentStmts []ast.Stmt, st *symtab, errs *errorLog) *bindings {
	b := &bindings{
		VaryingLocation: map[string]int{},
		VaryingType:     map[string]typesreg.Type{},
	}

	nextAttr := 0
	nextVarying := 0
	nextBinding := 0
	haveUniformStruct := false
	seenUniform := map[string]bool{}
	var uniformMembers []UniformMember
	uniformOffset := 0

	collectVarying := func(name string, t typesreg.Type) {
		if _, ok := b.VaryingLocation[name]; ok {
			return
		}
		b.VaryingLocation[name] = nextVarying
		b.VaryingType[name] = t
		b.VaryingOrder = append(b.VaryingOrder, name)
		nextVarying++
	}

	visit := func(stmts []ast.Stmt, stage Stage) {
		for _, s := range stmts {
			decl, ok := s.(*ast.VarDecl)
			if !ok {
				continue
			}
			t, ok := st.resolveType(decl.Type)
			if !ok {
				errs.addStage(stage, decl.Position(), nil, "unresolvable type %q for %q", decl.Type.Name, decl.Name)
				continue
			}
			isSampler := t.Kind.IsSampler()
			role := classify(decl, stage, isSampler)

			switch role {
			case RoleVertexInput:
				if stage != StageVertex {
					continue
				}
				b.Attributes = append(b.Attributes, Attribute{Name: decl.Name, Location: nextAttr, Type: t})
				nextAttr++
			case RoleVarying:
				collectVarying(decl.Name, t)
			case RoleTextureBinding:
				if seenUniform[decl.Name] {
					continue
				}
				seenUniform[decl.Name] = true
				b.Textures = append(b.Textures, TextureUniform{
					Name:           decl.Name,
					TextureBinding: nextBinding,
					SamplerBinding: nextBinding + 1,
					Type:           t,
				})
				nextBinding += 2
			case RoleUniformMember:
				if seenUniform[decl.Name] {
					continue
				}
				seenUniform[decl.Name] = true
				if !haveUniformStruct {
					b.uniformStructBinding = nextBinding
					nextBinding++
					haveUniformStruct = true
				}
				align := typesreg.Align(t)
				if align < 16 {
					align = 16
				}
				uniformOffset = typesreg.RoundUp(uniformOffset, align)
				uniformMembers = append(uniformMembers, UniformMember{Name: decl.Name, Type: t, Offset: uniformOffset})
				uniformOffset += typesreg.Size(t)
			}
		}
	}

	visit(vertexStmts, StageVertex)
	visit(fragmentStmts, StageFragment)

	if haveUniformStruct {
		b.UniformBuffer = &UniformBufferLayout{
			Binding: b.uniformStructBinding,
			Size:    typesreg.RoundUp(uniformOffset, 16),
			Members: uniformMembers,
		}
	}
	return b
}

// isUniformMember reports whether name is a member of the unified uniform
// struct, used by expr.go to rewrite bare identifier references to
// `_uniforms.<name>` (spec.md §4.3.5).
func (b *bindings) isUniformMember(name string) bool {
	if b.UniformBuffer == nil {
		return false
	}
	for _, m := range b.UniformBuffer.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (b *bindings) textureFor(name string) (TextureUniform, bool) {
	for _, tx := range b.Textures {
		if tx.Name == name {
			return tx, true
		}
	}
	return TextureUniform{}, false
}
