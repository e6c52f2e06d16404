// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package typesreg is the closed set of scalar, vector, matrix, texture and
// sampler types that bridge GLSL and WGSL (spec.md §4.1), plus the
// alignment and size rules the uniform buffer cache and the translator's
// uniform-struct emission need.
package typesreg

import "fmt"

// Kind identifies one of the closed set of GLSL-bridging types.
type Kind uint8

// The closed type set from spec.md §4.1.
const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindUint
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindIVec2
	KindIVec3
	KindIVec4
	KindUVec2
	KindUVec3
	KindUVec4
	KindMat2
	KindMat3
	KindMat4
	KindSampler1D
	KindSampler2D
	KindSampler3D
	KindSamplerCube
	KindSampler2DArray
	KindUSampler2D
	// KindArray and KindStruct are composites; Type.Elem/Type.Fields carry
	// the rest of the shape.
	KindArray
	KindStruct
)

// String names the kind the way it appears in GLSL source, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindIVec2:
		return "ivec2"
	case KindIVec3:
		return "ivec3"
	case KindIVec4:
		return "ivec4"
	case KindUVec2:
		return "uvec2"
	case KindUVec3:
		return "uvec3"
	case KindUVec4:
		return "uvec4"
	case KindMat2:
		return "mat2"
	case KindMat3:
		return "mat3"
	case KindMat4:
		return "mat4"
	case KindSampler1D:
		return "sampler1D"
	case KindSampler2D:
		return "sampler2D"
	case KindSampler3D:
		return "sampler3D"
	case KindSamplerCube:
		return "samplerCube"
	case KindSampler2DArray:
		return "sampler2DArray"
	case KindUSampler2D:
		return "usampler2D"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// IsSampler reports whether k is one of the sampler/texture kinds — these
// become texture+sampler bindings rather than uniform-struct members
// (spec.md §4.3.2).
func (k Kind) IsSampler() bool {
	switch k {
	case KindSampler1D, KindSampler2D, KindSampler3D, KindSamplerCube, KindSampler2DArray, KindUSampler2D:
		return true
	default:
		return false
	}
}

// Type is a fully resolved GLSL type: a scalar/vector/matrix/sampler kind,
// or a fixed-size array, or a struct with ordered named fields.
type Type struct {
	Kind Kind

	// Elem and ArrayLen are set when Kind == KindArray.
	Elem     *Type
	ArrayLen int

	// Name and Fields are set when Kind == KindStruct.
	Name   string
	Fields []Field
}

// Field is one ordered, named member of a struct Type.
type Field struct {
	Name string
	Type Type
}

// Scalar returns the named scalar Type (void, bool, int, uint, float).
func Scalar(k Kind) Type { return Type{Kind: k} }

// Array builds a fixed-size array Type. GLSL has no dynamic arrays
// (spec.md §4.1), so ArrayLen is always > 0 for a well-formed Type.
func Array(elem Type, length int) Type {
	return Type{Kind: KindArray, Elem: &elem, ArrayLen: length}
}

// Struct builds a struct Type from ordered fields.
func Struct(name string, fields ...Field) Type {
	return Type{Kind: KindStruct, Name: name, Fields: fields}
}

// WGSLName returns the target-language spelling of t, for code emission.
// Booleans inside a uniform block are represented as u32 on the device
// (spec.md §4.1); callers translating a uniform-struct member must pass
// forUniform=true to get that substitution, and callers translating a
// plain local/varying must pass false to keep bool as bool.
func (t Type) WGSLName(forUniform bool) string {
	switch t.Kind {
	case KindVoid:
		return ""
	case KindBool:
		if forUniform {
			return "u32"
		}
		return "bool"
	case KindInt:
		return "i32"
	case KindUint:
		return "u32"
	case KindFloat:
		return "f32"
	case KindVec2:
		return "vec2f"
	case KindVec3:
		return "vec3f"
	case KindVec4:
		return "vec4f"
	case KindIVec2:
		return "vec2i"
	case KindIVec3:
		return "vec3i"
	case KindIVec4:
		return "vec4i"
	case KindUVec2:
		return "vec2u"
	case KindUVec3:
		return "vec3u"
	case KindUVec4:
		return "vec4u"
	case KindMat2:
		return "mat2x2f"
	case KindMat3:
		return "mat3x3f"
	case KindMat4:
		return "mat4x4f"
	case KindSampler1D:
		return "texture_1d<f32>"
	case KindSampler2D:
		return "texture_2d<f32>"
	case KindSampler3D:
		return "texture_3d<f32>"
	case KindSamplerCube:
		return "texture_cube<f32>"
	case KindSampler2DArray:
		return "texture_2d_array<f32>"
	case KindUSampler2D:
		return "texture_2d<u32>"
	case KindArray:
		return fmt.Sprintf("array<%s, %d>", t.Elem.WGSLName(forUniform), t.ArrayLen)
	case KindStruct:
		return t.Name
	default:
		return "invalid"
	}
}

// SampleType reports the device texture sample type a sampler Type binds
// with: u32 for usampler2D, f32 for every other sampler kind (spec.md
// §4.1). The second return is false for non-sampler types.
func (t Type) SampleType() (string, bool) {
	if !t.Kind.IsSampler() {
		return "", false
	}
	if t.Kind == KindUSampler2D {
		return "uint", true
	}
	return "float", true
}
