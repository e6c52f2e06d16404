// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package translator lowers a paired vertex/fragment GLSL ES AST to one
// WGSL module (spec.md §4.3). It is grounded on no single teacher file —
// gogpu-gg never ships a shader cross-compiler — but follows spec.md's own
// seven-step emission order and the teacher's plain-function, error-value
// style throughout (see DESIGN.md).
package translator

import "github.com/gogpu/byegl/internal/typesreg"

// Stage distinguishes the vertex and fragment halves of a program.
type Stage int

// The two shader stages a Program links.
const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// Options configures one Translate call. ValidateWGSL threads SPEC_FULL.md
// §3's naga.Compile validation pass through; it is a struct field here
// (rather than a package-level flag) so the root package's
// WithWGSLValidation setting can be passed straight through per call.
type Options struct {
	ValidateWGSL bool
}

// Attribute is one vertex-input binding: a GLSL `attribute`/`in` variable
// assigned a location per spec.md §4.3.3.
type Attribute struct {
	Name     string
	Location int
	Type     typesreg.Type
}

// Varying is one interstage value, matched by name between the vertex and
// fragment stage (spec.md §4.3.3).
type Varying struct {
	Name     string
	Location int
	Type     typesreg.Type
}

// UniformMember is one non-sampler uniform, laid out as a field of the
// single unified uniform struct (spec.md §4.3.3, §4.3.4 step 1).
type UniformMember struct {
	Name   string
	Type   typesreg.Type
	Offset int
}

// UniformBufferLayout is the unified uniform struct's shape: total byte
// size and the offset of each member (spec.md §3's "uniform-buffer
// layout").
type UniformBufferLayout struct {
	Binding int
	Size    int
	Members []UniformMember
}

// TextureUniform is one sampler-typed uniform: a sampled-texture binding
// paired with a companion sampler binding (spec.md §4.3.3).
type TextureUniform struct {
	Name           string
	TextureBinding int
	SamplerBinding int
	Type           typesreg.Type
}

// Result is everything §4.3's Translator responsibility promises: the WGSL
// module text plus the metadata a Program's compiled artifact needs to
// bind resources at draw time (spec.md §3).
type Result struct {
	WGSL          string
	Attributes    []Attribute
	UniformBuffer *UniformBufferLayout
	Textures      []TextureUniform
	// NagaDiagnostics is empty on every Result Translate returns: a
	// validation failure returns no Result, and naga.Compile's output is
	// carried in the returned error instead.
	NagaDiagnostics string
}
