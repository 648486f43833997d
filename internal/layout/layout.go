// Package layout computes struct size, alignment, and per-field offsets,
// run exactly once per struct declaration after circular-dependency
// detection passes. There is no teacher precedent for memory layout in
// sam-decook-lox (a tree-walking interpreter has no struct ABI), so this
// package is built directly from the layout algorithm rather than an
// adapted prior-art file.
package layout

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"

// primitiveSize gives each primitive's size in bytes.
func primitiveSize(p types.Primitive) int {
	switch p {
	case types.Void, types.Nil:
		return 0
	case types.Byte, types.Bool, types.Char:
		return 1
	case types.Int32, types.Uint32, types.Float:
		return 4
	case types.Int, types.Uint, types.Long, types.Double, types.String:
		return 8
	case types.Any:
		return 16
	default:
		return 0
	}
}

// primitiveAlignment gives each primitive's natural alignment.
func primitiveAlignment(p types.Primitive) int {
	switch p {
	case types.Void, types.Nil:
		return 1
	default:
		return primitiveSize(p)
	}
}

// GetTypeSize returns t's size in bytes. A struct must already be laid
// out (LaidOut == true); calling this on a struct before layout returns
// its stale (zero) size.
func GetTypeSize(t *types.Type) int {
	if t == nil {
		return 0
	}
	switch t.Kind {
	case types.KindPrimitive:
		return primitiveSize(t.Primitive)
	case types.KindPointer, types.KindArray, types.KindFunction:
		return 8
	case types.KindOpaque:
		return 8
	case types.KindStruct:
		if t.Struct == nil {
			return 0
		}
		return t.Struct.Size
	case types.KindNamed:
		return 0
	default:
		return 0
	}
}

// GetTypeAlignment returns t's natural alignment in bytes.
func GetTypeAlignment(t *types.Type) int {
	if t == nil {
		return 1
	}
	switch t.Kind {
	case types.KindPrimitive:
		return primitiveAlignment(t.Primitive)
	case types.KindPointer, types.KindArray, types.KindFunction:
		return 8
	case types.KindOpaque:
		return 8
	case types.KindStruct:
		if t.Struct == nil {
			return 1
		}
		return t.Struct.Alignment
	default:
		return 1
	}
}

func roundUp(n, a int) int {
	if a <= 1 {
		return n
	}
	return (n + a - 1) &^ (a - 1)
}

// CalculateStructLayout computes size, alignment, and field offsets for
// t in place, caching the result on t.Struct and setting LaidOut. t must
// be a struct type whose fields are already fully resolved (no Named
// variants) and must have already passed circular-dependency detection.
func CalculateStructLayout(t *types.Type) {
	if !types.AstTypeIsStruct(t) {
		return
	}
	s := t.Struct

	if len(s.Fields) == 0 {
		s.Size = 0
		s.Alignment = 1
		s.LaidOut = true
		return
	}

	if s.IsPacked {
		calculatePackedLayout(s)
	} else {
		calculateNaturalLayout(s)
	}
	s.LaidOut = true
}

func calculateNaturalLayout(s *types.Struct) {
	offset := 0
	maxAlign := 1
	for i := range s.Fields {
		f := &s.Fields[i]
		a := GetTypeAlignment(f.Type)
		offset = roundUp(offset, a)
		f.Offset = offset
		offset += GetTypeSize(f.Type)
		if a > maxAlign {
			maxAlign = a
		}
	}
	s.Size = roundUp(offset, maxAlign)
	s.Alignment = maxAlign
}

// calculatePackedLayout lays out fields consecutively with no padding.
// When driven by `#pragma pack(N)` (PackValue > 0), each field's
// effective alignment is min(natural alignment, N); PackValue == 0 means
// a bare `packed` struct with alignment forced to 1 throughout.
func calculatePackedLayout(s *types.Struct) {
	offset := 0
	for i := range s.Fields {
		f := &s.Fields[i]
		size := GetTypeSize(f.Type)
		if s.PackValue > 0 {
			a := GetTypeAlignment(f.Type)
			if s.PackValue < a {
				a = s.PackValue
			}
			offset = roundUp(offset, a)
		}
		f.Offset = offset
		offset += size
	}
	s.Size = offset
	s.Alignment = 1
}
