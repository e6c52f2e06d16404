// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// Enum is a legacy GL enum value, as passed to and returned from every
// entry point in the legacy API surface (spec.md §6).
type Enum uint32

// Capability bits for Enable/Disable/IsEnabled (spec.md §4.7).
const (
	CULL_FACE                Enum = 0x0B44
	DEPTH_TEST                Enum = 0x0B71
	STENCIL_TEST              Enum = 0x0B90
	BLEND                     Enum = 0x0BE2
	DITHER                    Enum = 0x0BD0
	POLYGON_OFFSET_FILL       Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE  Enum = 0x809E
	SAMPLE_COVERAGE           Enum = 0x80A0
	SCISSOR_TEST              Enum = 0x0C11
)

// Buffer targets and usage hints.
const (
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893

	STREAM_DRAW  Enum = 0x88E0
	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	BUFFER_SIZE  Enum = 0x8764
	BUFFER_USAGE Enum = 0x8765

	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
)

// Shader object kinds and their parameter names.
const (
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31

	DELETE_STATUS     Enum = 0x8B80
	COMPILE_STATUS    Enum = 0x8B81
	LINK_STATUS       Enum = 0x8B82
	VALIDATE_STATUS   Enum = 0x8B83
	ATTACHED_SHADERS  Enum = 0x8B85
	ACTIVE_UNIFORMS   Enum = 0x8B86
	ACTIVE_ATTRIBUTES Enum = 0x8B89
	SHADER_TYPE       Enum = 0x8B4F
	CURRENT_PROGRAM   Enum = 0x8B8D
)

// Vertex/index component data types.
const (
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
)

// Vertex attrib query pnames (getVertexAttrib).
const (
	VERTEX_ATTRIB_ARRAY_ENABLED        Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE           Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           Enum = 0x8625
	CURRENT_VERTEX_ATTRIB              Enum = 0x8626
	VERTEX_ATTRIB_ARRAY_NORMALIZED     Enum = 0x886A
	VERTEX_ATTRIB_ARRAY_POINTER        Enum = 0x8645
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING Enum = 0x889F
)

// Draw primitive modes (spec.md §4.5; see device.PrimitiveTopologyGL for
// the mapping to device topologies).
const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
)

// Texture targets, units and parameter names.
const (
	TEXTURE_2D       Enum = 0x0DE1
	TEXTURE_CUBE_MAP Enum = 0x8513
	TEXTURE0         Enum = 0x84C0
	ACTIVE_TEXTURE   Enum = 0x84E0

	TEXTURE_MAG_FILTER   Enum = 0x2800
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
	TEXTURE_WRAP_R       Enum = 0x8072
	TEXTURE_BASE_LEVEL   Enum = 0x813C
	TEXTURE_MAX_LEVEL    Enum = 0x813D
	TEXTURE_MIN_LOD      Enum = 0x813A
	TEXTURE_MAX_LOD      Enum = 0x813B
	TEXTURE_COMPARE_MODE Enum = 0x884C
	TEXTURE_COMPARE_FUNC Enum = 0x884D

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703

	REPEAT          Enum = 0x2901
	CLAMP_TO_EDGE   Enum = 0x812F
	MIRRORED_REPEAT Enum = 0x8370

	COMPARE_REF_TO_TEXTURE Enum = 0x884E

	RGBA            Enum = 0x1908
	RGB             Enum = 0x1907
	ALPHA           Enum = 0x1906
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A
	DEPTH_COMPONENT Enum = 0x1902

	GENERATE_MIPMAP_HINT Enum = 0x8192
)

// hint modes (accepted and validated, not stored, inert — SPEC_FULL.md §7).
const (
	DONT_CARE Enum = 0x1100
	FASTEST   Enum = 0x1101
	NICEST    Enum = 0x1102
)

// clear() bitmask components.
const (
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000
)

// Cull/winding parameters.
const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408

	CW  Enum = 0x0900
	CCW Enum = 0x0901
)

// getParameter pnames beyond the capability/buffer/texture ones above.
const (
	CULL_FACE_MODE           Enum = 0x0B45
	FRONT_FACE               Enum = 0x0B46
	DEPTH_FUNC               Enum = 0x0B74
	DEPTH_WRITEMASK          Enum = 0x0B72
	DEPTH_RANGE              Enum = 0x0B70
	DEPTH_CLEAR_VALUE        Enum = 0x0B73
	COLOR_WRITEMASK          Enum = 0x0C23
	COLOR_CLEAR_VALUE        Enum = 0x0C22
	STENCIL_CLEAR_VALUE      Enum = 0x0B91
	STENCIL_WRITEMASK        Enum = 0x0B98
	STENCIL_BACK_WRITEMASK   Enum = 0x8CA5
	BLEND_SRC_RGB            Enum = 0x80C9
	BLEND_DST_RGB            Enum = 0x80C8
	BLEND_SRC_ALPHA          Enum = 0x80CB
	BLEND_DST_ALPHA          Enum = 0x80CA
	BLEND_EQUATION_RGB       Enum = 0x8009
	BLEND_EQUATION_ALPHA     Enum = 0x883D
	VIEWPORT                 Enum = 0x0BA2
	SCISSOR_BOX              Enum = 0x0C10
	MAX_TEXTURE_SIZE         Enum = 0x0D33
	MAX_VERTEX_ATTRIBS       Enum = 0x8869
	VERSION                  Enum = 0x1F02
	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
)

// Blend factors and equations (spec.md §6); mirrored by the typed
// device.BlendFactorGL/BlendEquationGL constants that device/wire.go maps
// to gputypes, so the numeric values here must stay in lockstep with those.
const (
	ZERO                     Enum = 0x0000
	ONE                      Enum = 0x0001
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004

	FUNC_ADD              Enum = 0x8006
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
)

// Depth/stencil comparison functions (spec.md §4.5); mirrors
// device.DepthFuncGL's numeric values.
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Framebuffer placeholder surface (SPEC_FULL.md §4: an inert placeholder,
// never functional — framebuffer objects are a named Non-goal).
const (
	FRAMEBUFFER              Enum = 0x8D40
	FRAMEBUFFER_BINDING      Enum = 0x8CA6
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5
)

// pixelStorei pnames (SPEC_FULL.md §4).
const (
	UNPACK_FLIP_Y_WEBGL            Enum = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL Enum = 0x9241
	UNPACK_ALIGNMENT               Enum = 0x0CF5
)

// GLError codes latched by the error layer (spec.md §7).
const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)
