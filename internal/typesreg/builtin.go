// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package typesreg

// builtinNames is the GLSL-spelling → Kind table from spec.md §4.1's type
// table. It covers every scalar, vector, matrix and sampler kind; struct
// and array types are resolved by the translator's own symbol table since
// their shape isn't implied by a bare name.
var builtinNames = map[string]Kind{
	"void":           KindVoid,
	"bool":           KindBool,
	"int":            KindInt,
	"uint":           KindUint,
	"float":          KindFloat,
	"vec2":           KindVec2,
	"vec3":           KindVec3,
	"vec4":           KindVec4,
	"ivec2":          KindIVec2,
	"ivec3":          KindIVec3,
	"ivec4":          KindIVec4,
	"uvec2":          KindUVec2,
	"uvec3":          KindUVec3,
	"uvec4":          KindUVec4,
	"mat2":           KindMat2,
	"mat3":           KindMat3,
	"mat4":           KindMat4,
	"sampler1D":      KindSampler1D,
	"sampler2D":      KindSampler2D,
	"sampler3D":      KindSampler3D,
	"samplerCube":    KindSamplerCube,
	"sampler2DArray": KindSampler2DArray,
	"usampler2D":     KindUSampler2D,
}

// LookupBuiltin resolves a bare GLSL type name to its Kind. ok is false for
// a user struct name, which the caller must resolve from its own symbol
// table instead.
func LookupBuiltin(name string) (Kind, bool) {
	k, ok := builtinNames[name]
	return k, ok
}

// IsMatrix reports whether k is one of the square matrix kinds.
func (k Kind) IsMatrix() bool {
	switch k {
	case KindMat2, KindMat3, KindMat4:
		return true
	default:
		return false
	}
}

// IsVector reports whether k is a float/int/uint vector kind, the set for
// which logical/comparison operators produce a per-component bool vector
// rather than a scalar bool (spec.md §4.3.5).
func (k Kind) IsVector() bool {
	switch k {
	case KindVec2, KindVec3, KindVec4, KindIVec2, KindIVec3, KindIVec4, KindUVec2, KindUVec3, KindUVec4:
		return true
	default:
		return false
	}
}
