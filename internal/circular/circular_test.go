package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func TestDetect_DirectSelfReference(t *testing.T) {
	// struct A { next: A; value: int }
	a := types.NewStruct("A", nil, false, false, 0)
	a.Struct.Fields = []types.StructField{
		{Name: "next", Type: a},
		{Name: "value", Type: types.IntType},
	}

	cyclic, chain := Detect(a)

	assert.True(t, cyclic)
	assert.Equal(t, []string{"A", "A"}, chain)
}

func TestDetect_PointerBreaksCycle(t *testing.T) {
	// struct A { next: *A; value: int }
	a := types.NewStruct("A", nil, false, false, 0)
	a.Struct.Fields = []types.StructField{
		{Name: "next", Type: types.NewPointer(a)},
		{Name: "value", Type: types.IntType},
	}

	cyclic, chain := Detect(a)

	assert.False(t, cyclic)
	assert.Nil(t, chain)
}

func TestDetect_TwoStructCycle(t *testing.T) {
	// struct A { b: B }, struct B { a: A }
	a := types.NewStruct("A", nil, false, false, 0)
	b := types.NewStruct("B", nil, false, false, 0)
	a.Struct.Fields = []types.StructField{{Name: "b", Type: b}}
	b.Struct.Fields = []types.StructField{{Name: "a", Type: a}}

	cyclic, chain := Detect(a)

	assert.True(t, cyclic)
	assert.Equal(t, []string{"A", "B", "A"}, chain)
}

func TestDetect_ArrayOfStructStillCycles(t *testing.T) {
	// struct A { items: A[] }
	a := types.NewStruct("A", nil, false, false, 0)
	a.Struct.Fields = []types.StructField{
		{Name: "items", Type: types.NewArray(a)},
	}

	cyclic, _ := Detect(a)

	assert.True(t, cyclic)
}

func TestDetect_AcyclicGraph(t *testing.T) {
	inner := types.NewStruct("Inner", nil, false, false, 0)
	inner.Struct.Fields = []types.StructField{{Name: "value", Type: types.IntType}}

	outer := types.NewStruct("Outer", nil, false, false, 0)
	outer.Struct.Fields = []types.StructField{
		{Name: "inner", Type: inner},
		{Name: "count", Type: types.IntType},
	}

	cyclic, chain := Detect(outer)

	assert.False(t, cyclic)
	assert.Nil(t, chain)
}

func TestDetect_TerminatesOnSharedAcyclicSubstruct(t *testing.T) {
	// struct Root { b1: Shared; b2: Shared } with no cycle - Shared is repeated but not
	// self-referential, and the walk must not mistake repetition within
	// a branch for a cycle since each field visits a fresh path.
	shared := types.NewStruct("Shared", nil, false, false, 0)
	shared.Struct.Fields = []types.StructField{{Name: "n", Type: types.IntType}}

	root := types.NewStruct("Root", nil, false, false, 0)
	root.Struct.Fields = []types.StructField{
		{Name: "b1", Type: shared},
		{Name: "b2", Type: shared},
	}

	cyclic, _ := Detect(root)

	assert.False(t, cyclic)
}
