// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "github.com/gogpu/gputypes"

// VertexSourceType identifies the legacy GL scalar type a vertex attribute
// pointer was declared with (the `type` argument of vertexAttribPointer).
type VertexSourceType uint32

// Vertex attribute pointer source types, matching the legacy GL constants.
const (
	VertexSourceFloat         VertexSourceType = 0x1406 // FLOAT
	VertexSourceUnsignedByte  VertexSourceType = 0x1401 // UNSIGNED_BYTE
	VertexSourceUnsignedShort VertexSourceType = 0x1403 // UNSIGNED_SHORT
)

// vertexFormatKey identifies a (source type, component count, normalized)
// triple for the vertex format table in spec.md §6.
type vertexFormatKey struct {
	src        VertexSourceType
	components int
	normalized bool
}

// nativeVertexFormats is the source-type/component-count -> device format
// table from spec.md §6. unorm8x3 (3-component normalized unsigned byte) is
// deliberately absent: it has no native device format and is handled by the
// shadow-buffer remap path in internal/drawsynth instead of this table.
var nativeVertexFormats = map[vertexFormatKey]gputypes.VertexFormat{
	{VertexSourceFloat, 2, false}: gputypes.VertexFormatFloat32x2,
	{VertexSourceFloat, 3, false}: gputypes.VertexFormatFloat32x3,
	{VertexSourceFloat, 4, false}: gputypes.VertexFormatFloat32x4,

	{VertexSourceUnsignedByte, 2, false}: gputypes.VertexFormatUint8x2,
	{VertexSourceUnsignedByte, 4, false}: gputypes.VertexFormatUint8x4,

	{VertexSourceUnsignedByte, 2, true}: gputypes.VertexFormatUnorm8x2,
	{VertexSourceUnsignedByte, 4, true}: gputypes.VertexFormatUnorm8x4,
}

// VertexByteSizes gives the natural byte width of one component of each
// source type, used to compute a segment's natural stride when the caller
// passes stride 0 to vertexAttribPointer.
var VertexByteSizes = map[VertexSourceType]int{
	VertexSourceFloat:         4,
	VertexSourceUnsignedByte:  1,
	VertexSourceUnsignedShort: 2,
}

// NativeVertexFormat looks up the device vertex format for a (source type,
// component count, normalized) combination. ok is false for unorm8x3, which
// has no native equivalent (see shadow buffer handling), and for any
// combination the legacy API does not expose.
func NativeVertexFormat(src VertexSourceType, components int, normalized bool) (gputypes.VertexFormat, bool) {
	f, ok := nativeVertexFormats[vertexFormatKey{src, components, normalized}]
	return f, ok
}

// IsUnorm8x3 reports whether a (source type, component count, normalized)
// combination is the synthetic 3-component normalized unsigned-byte format
// that requires the 8x3->8x4 shadow buffer remap.
func IsUnorm8x3(src VertexSourceType, components int, normalized bool) bool {
	return src == VertexSourceUnsignedByte && components == 3 && normalized
}

// BlendFactorGL identifies a legacy GL blend factor enum value.
type BlendFactorGL uint32

// Legacy GL blend factor enums, matching spec.md §6.
const (
	BlendFactorZero                  BlendFactorGL = 0x0000
	BlendFactorOne                   BlendFactorGL = 0x0001
	BlendFactorSrcColor              BlendFactorGL = 0x0300
	BlendFactorOneMinusSrcColor      BlendFactorGL = 0x0301
	BlendFactorSrcAlpha              BlendFactorGL = 0x0302
	BlendFactorOneMinusSrcAlpha      BlendFactorGL = 0x0303
	BlendFactorDstAlpha              BlendFactorGL = 0x0304
	BlendFactorOneMinusDstAlpha      BlendFactorGL = 0x0305
	BlendFactorDstColor              BlendFactorGL = 0x0306
	BlendFactorOneMinusDstColor      BlendFactorGL = 0x0307
	BlendFactorConstantColor         BlendFactorGL = 0x8001
	BlendFactorOneMinusConstantColor BlendFactorGL = 0x8002
	BlendFactorConstantAlpha         BlendFactorGL = 0x8003
	BlendFactorOneMinusConstantAlpha BlendFactorGL = 0x8004
)

// blendFactorMap is the GL -> device blend factor map from spec.md §6.
var blendFactorMap = map[BlendFactorGL]gputypes.BlendFactor{
	BlendFactorZero:                  gputypes.BlendFactorZero,
	BlendFactorOne:                   gputypes.BlendFactorOne,
	BlendFactorSrcColor:              gputypes.BlendFactorSrc,
	BlendFactorOneMinusSrcColor:      gputypes.BlendFactorOneMinusSrc,
	BlendFactorDstColor:              gputypes.BlendFactorDst,
	BlendFactorOneMinusDstColor:      gputypes.BlendFactorOneMinusDst,
	BlendFactorSrcAlpha:              gputypes.BlendFactorSrcAlpha,
	BlendFactorOneMinusSrcAlpha:      gputypes.BlendFactorOneMinusSrcAlpha,
	BlendFactorDstAlpha:              gputypes.BlendFactorDstAlpha,
	BlendFactorOneMinusDstAlpha:      gputypes.BlendFactorOneMinusDstAlpha,
	BlendFactorConstantColor:         gputypes.BlendFactorConstant,
	BlendFactorOneMinusConstantColor: gputypes.BlendFactorOneMinusConstant,
	BlendFactorConstantAlpha:         gputypes.BlendFactorConstant,
	BlendFactorOneMinusConstantAlpha: gputypes.BlendFactorOneMinusConstant,
}

// MapBlendFactor translates a legacy GL blend factor enum to the device
// BlendFactor. ok is false for an unrecognized enum value.
func MapBlendFactor(f BlendFactorGL) (gputypes.BlendFactor, bool) {
	v, ok := blendFactorMap[f]
	return v, ok
}

// BlendEquationGL identifies a legacy GL blend equation enum value.
type BlendEquationGL uint32

// Legacy GL blend equation enums, matching spec.md §6.
const (
	BlendEquationFuncAdd             BlendEquationGL = 0x8006
	BlendEquationFuncSubtract        BlendEquationGL = 0x800A
	BlendEquationFuncReverseSubtract BlendEquationGL = 0x800B
	BlendEquationMin                 BlendEquationGL = 0x8007
	BlendEquationMax                 BlendEquationGL = 0x8008
)

var blendEquationMap = map[BlendEquationGL]gputypes.BlendOperation{
	BlendEquationFuncAdd:             gputypes.BlendOperationAdd,
	BlendEquationFuncSubtract:        gputypes.BlendOperationSubtract,
	BlendEquationFuncReverseSubtract: gputypes.BlendOperationReverseSubtract,
	BlendEquationMin:                 gputypes.BlendOperationMin,
	BlendEquationMax:                 gputypes.BlendOperationMax,
}

// MapBlendEquation translates a legacy GL blend equation enum to the device
// BlendOperation. ok is false for an unrecognized enum value.
func MapBlendEquation(e BlendEquationGL) (gputypes.BlendOperation, bool) {
	v, ok := blendEquationMap[e]
	return v, ok
}

// DepthFuncGL identifies a legacy GL depth/stencil comparison function enum.
type DepthFuncGL uint32

// Legacy GL comparison function enums, matching spec.md §4.5.
const (
	DepthFuncNever    DepthFuncGL = 0x0200
	DepthFuncLess     DepthFuncGL = 0x0201
	DepthFuncEqual    DepthFuncGL = 0x0202
	DepthFuncLequal   DepthFuncGL = 0x0203
	DepthFuncGreater  DepthFuncGL = 0x0204
	DepthFuncNotequal DepthFuncGL = 0x0205
	DepthFuncGequal   DepthFuncGL = 0x0206
	DepthFuncAlways   DepthFuncGL = 0x0207
)

var compareFunctionMap = map[DepthFuncGL]gputypes.CompareFunction{
	DepthFuncNever:    gputypes.CompareFunctionNever,
	DepthFuncLess:     gputypes.CompareFunctionLess,
	DepthFuncEqual:    gputypes.CompareFunctionEqual,
	DepthFuncLequal:   gputypes.CompareFunctionLessEqual,
	DepthFuncGreater:  gputypes.CompareFunctionGreater,
	DepthFuncNotequal: gputypes.CompareFunctionNotEqual,
	DepthFuncGequal:   gputypes.CompareFunctionGreaterEqual,
	DepthFuncAlways:   gputypes.CompareFunctionAlways,
}

// MapCompareFunction translates a legacy GL depth-func enum to the device
// CompareFunction. ok is false for an unrecognized enum value.
func MapCompareFunction(f DepthFuncGL) (gputypes.CompareFunction, bool) {
	v, ok := compareFunctionMap[f]
	return v, ok
}

// PrimitiveTopologyGL identifies a legacy GL drawArrays/drawElements mode.
type PrimitiveTopologyGL uint32

// Legacy GL primitive mode enums.
const (
	PrimitivePoints        PrimitiveTopologyGL = 0x0000
	PrimitiveLines         PrimitiveTopologyGL = 0x0001
	PrimitiveLineLoop      PrimitiveTopologyGL = 0x0002
	PrimitiveLineStrip     PrimitiveTopologyGL = 0x0003
	PrimitiveTriangles     PrimitiveTopologyGL = 0x0004
	PrimitiveTriangleStrip PrimitiveTopologyGL = 0x0005
	PrimitiveTriangleFan   PrimitiveTopologyGL = 0x0006
)

var topologyMap = map[PrimitiveTopologyGL]gputypes.PrimitiveTopology{
	PrimitivePoints:        gputypes.PrimitiveTopologyPointList,
	PrimitiveLines:         gputypes.PrimitiveTopologyLineList,
	PrimitiveLineStrip:     gputypes.PrimitiveTopologyLineStrip,
	PrimitiveTriangles:     gputypes.PrimitiveTopologyTriangleList,
	PrimitiveTriangleStrip: gputypes.PrimitiveTopologyTriangleStrip,
}

// MapPrimitiveTopology translates a legacy GL draw mode to the device
// PrimitiveTopology. ok is false for LINE_LOOP, TRIANGLE_FAN (unsupported
// per spec.md §4.5/§9) and any unrecognized value.
func MapPrimitiveTopology(m PrimitiveTopologyGL) (gputypes.PrimitiveTopology, bool) {
	v, ok := topologyMap[m]
	return v, ok
}

// IndexTypeGL identifies a legacy GL drawElements index type.
type IndexTypeGL uint32

// Legacy GL index type enums.
const (
	IndexTypeUnsignedByte  IndexTypeGL = 0x1401
	IndexTypeUnsignedShort IndexTypeGL = 0x1403
	IndexTypeUnsignedInt   IndexTypeGL = 0x1405
)

var indexFormatMap = map[IndexTypeGL]gputypes.IndexFormat{
	IndexTypeUnsignedShort: gputypes.IndexFormatUint16,
	IndexTypeUnsignedInt:   gputypes.IndexFormatUint32,
}

// MapIndexFormat translates a legacy GL index type to the device
// IndexFormat. ok is false for UNSIGNED_BYTE, which spec.md §7 requires to
// raise the hard "index types other than UNSIGNED_SHORT/UNSIGNED_INT" error.
func MapIndexFormat(t IndexTypeGL) (gputypes.IndexFormat, bool) {
	v, ok := indexFormatMap[t]
	return v, ok
}
