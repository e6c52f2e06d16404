// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package typesreg

// RoundUp advances value to the next multiple of modulus. modulus must be a
// power of two; every alignment rule in this package and in
// internal/translator's uniform-struct emission goes through this one
// function, per spec.md §4.1.
func RoundUp(value, modulus int) int {
	if modulus <= 0 {
		return value
	}
	return (value + modulus - 1) &^ (modulus - 1)
}

// scalarSize is the byte size of a non-composite scalar/vector/matrix kind.
func scalarSize(k Kind) int {
	switch k {
	case KindBool, KindInt, KindUint, KindFloat:
		return 4
	case KindVec2, KindIVec2, KindUVec2:
		return 8
	case KindVec3, KindIVec3, KindUVec3:
		return 12
	case KindVec4, KindIVec4, KindUVec4:
		return 16
	case KindMat2:
		return 2 * 8 // two column vectors, each padded to vec2 size
	case KindMat3:
		return 3 * 16 // three columns, each padded to vec4 alignment
	case KindMat4:
		return 4 * 16
	default:
		return 0
	}
}

// scalarAlign is the natural alignment of a non-composite scalar/vector/
// matrix kind, per spec.md §4.1: scalars align to their size, vec3 aligns
// to 16 bytes, matrices align to their column vector's alignment.
func scalarAlign(k Kind) int {
	switch k {
	case KindBool, KindInt, KindUint, KindFloat:
		return 4
	case KindVec2, KindIVec2, KindUVec2:
		return 8
	case KindVec3, KindIVec3, KindUVec3:
		return 16
	case KindVec4, KindIVec4, KindUVec4:
		return 16
	case KindMat2:
		return 8
	case KindMat3, KindMat4:
		return 16
	default:
		return 0
	}
}

// Align returns t's natural alignment in bytes, as used when t is not an
// array element and not itself a uniform-struct member (see AlignInBlock
// for the >=16-byte array-element rule).
func Align(t Type) int {
	switch t.Kind {
	case KindArray:
		return AlignInBlock(*t.Elem)
	case KindStruct:
		align := 0
		for _, f := range t.Fields {
			if a := Align(f.Type); a > align {
				align = a
			}
		}
		if align == 0 {
			align = 4
		}
		return align
	default:
		return scalarAlign(t.Kind)
	}
}

// AlignInBlock returns the alignment a Type uses as an array element inside
// a uniform block: array elements are padded so each element's alignment is
// at least 16 bytes (spec.md §4.1).
func AlignInBlock(t Type) int {
	a := Align(t)
	if a < 16 {
		return 16
	}
	return a
}

// Size returns t's byte size including internal struct/array padding, but
// not the trailing padding a containing struct or array would add after it.
func Size(t Type) int {
	switch t.Kind {
	case KindArray:
		stride := RoundUp(Size(*t.Elem), AlignInBlock(*t.Elem))
		return stride * t.ArrayLen
	case KindStruct:
		offset := 0
		for _, f := range t.Fields {
			offset = RoundUp(offset, Align(f.Type))
			offset += Size(f.Type)
		}
		return RoundUp(offset, Align(t))
	default:
		return scalarSize(t.Kind)
	}
}

// ArrayStride returns the byte stride between consecutive elements of an
// array Type when the array sits in a uniform block: each element is
// padded so the next one starts at a multiple of its block alignment
// (spec.md §4.1, §8 nested-path invariant).
func ArrayStride(elem Type) int {
	return RoundUp(Size(elem), AlignInBlock(elem))
}

// FieldOffset computes the byte offset of a struct field, laying out fields
// in declaration order with each field padded to its own alignment
// (spec.md §4.1). The offset is relative to the start of the struct.
func FieldOffset(fields []Field, index int) int {
	offset := 0
	for i := 0; i < index; i++ {
		offset = RoundUp(offset, Align(fields[i].Type))
		offset += Size(fields[i].Type)
	}
	return RoundUp(offset, Align(fields[index].Type))
}
