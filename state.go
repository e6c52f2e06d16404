// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// vertexAttribState is one slot of the vertex-attribute-pointer table
// (spec.md §4.7).
type vertexAttribState struct {
	enabled    bool
	buffer     *Buffer
	size       int
	typ        Enum
	normalized bool
	stride     int
	offset     int
}

// textureUnit holds the texture bound to each target of one TEXTURE0+n
// unit. Only TEXTURE_2D is synthesized into draws; TEXTURE_CUBE_MAP is
// accepted and recorded (bindTexture honors it) but no component of this
// core samples a cube map yet.
type textureUnit struct {
	texture2D *Texture
	cubeMap   *Texture
}

// State is the legacy-API state machine (spec.md §4.7): capability set,
// bindings, the vertex-attribute-pointer table, bound textures per unit,
// and the parameter map governing the next draw's pipeline and render
// pass. One State belongs to exactly one Context and is never shared
// across threads (spec.md §5).
type State struct {
	capabilities map[Enum]bool

	arrayBuffer        *Buffer
	elementArrayBuffer *Buffer

	activeTexture int
	textureUnits  map[int]*textureUnit

	vertexAttribs []vertexAttribState

	currentProgram *Program
	framebuffer    *Framebuffer

	cullFaceMode Enum
	frontFace    Enum

	depthFunc    Enum
	depthMask    bool
	depthRangeN  float32
	depthRangeF  float32

	colorWriteMask [4]bool
	colorClear     [4]float32
	depthClear     float32
	stencilClear   int32
	stencilMask    uint32
	stencilMaskBack uint32

	blendColorSrc, blendColorDst Enum
	blendAlphaSrc, blendAlphaDst Enum
	blendColorEq, blendAlphaEq   Enum

	viewport   [4]int
	scissorBox [4]int

	clearLatch Enum
	errorLatch Enum

	unpackFlipY            bool
	unpackPremultiplyAlpha bool
	unpackAlignment        int
}

const maxVertexAttribs = 16

// newState builds the default state machine (spec.md §4.7): capability
// set {DITHER}, bindings and pointers zeroed, and the listed parameter
// defaults.
func newState() *State {
	s := &State{
		capabilities:  map[Enum]bool{DITHER: true},
		textureUnits:  make(map[int]*textureUnit),
		vertexAttribs: make([]vertexAttribState, maxVertexAttribs),

		cullFaceMode: BACK,
		frontFace:    CCW,

		depthFunc:   LESS,
		depthMask:   true,
		depthRangeF: 1,

		colorWriteMask: [4]bool{true, true, true, true},
		depthClear:     1,
		stencilMask:     0xFFFFFFFF,
		stencilMaskBack: 0xFFFFFFFF,

		blendColorSrc: ONE, blendColorDst: ZERO,
		blendAlphaSrc: ONE, blendAlphaDst: ZERO,
		blendColorEq: FUNC_ADD, blendAlphaEq: FUNC_ADD,

		unpackAlignment: 4,
	}
	return s
}

func (s *State) unit(n int) *textureUnit {
	u, ok := s.textureUnits[n]
	if !ok {
		u = &textureUnit{}
		s.textureUnits[n] = u
	}
	return u
}

// boundBuffer resolves ARRAY_BUFFER/ELEMENT_ARRAY_BUFFER to the currently
// bound *Buffer, or nil.
func (s *State) boundBuffer(target Enum) *Buffer {
	switch target {
	case ARRAY_BUFFER:
		return s.arrayBuffer
	case ELEMENT_ARRAY_BUFFER:
		return s.elementArrayBuffer
	default:
		return nil
	}
}
