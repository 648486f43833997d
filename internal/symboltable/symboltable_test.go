package symboltable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func TestNew_StartsAtGlobalScope(t *testing.T) {
	table := New()
	assert.Equal(t, 0, table.ScopeDepth())
}

func TestPushPopScope(t *testing.T) {
	table := New()
	table.PushScope()
	assert.Equal(t, 1, table.ScopeDepth())
	table.PushScope()
	assert.Equal(t, 2, table.ScopeDepth())
	table.PopScope()
	assert.Equal(t, 1, table.ScopeDepth())
}

func TestPopScope_PanicsOnGlobalScope(t *testing.T) {
	table := New()
	assert.Panics(t, func() { table.PopScope() })
}

func TestDeclareAndLookup(t *testing.T) {
	table := New()
	err := table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.IntType})
	assert.NoError(t, err)

	sym, ok := table.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "x", sym.Name)
	assert.Equal(t, 0, sym.ScopeDepth)
}

func TestDeclare_DuplicateInSameScopeErrors(t *testing.T) {
	table := New()
	assert.NoError(t, table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.IntType}))
	err := table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.BoolType})
	assert.Error(t, err)
}

func TestDeclare_ShadowingOuterScopeIsAllowed(t *testing.T) {
	table := New()
	assert.NoError(t, table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.IntType}))

	table.PushScope()
	err := table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.BoolType})
	assert.NoError(t, err)

	sym, ok := table.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, types.BoolType, sym.Type)
	assert.Equal(t, 1, sym.ScopeDepth)
}

func TestLookup_FallsBackToOuterScope(t *testing.T) {
	table := New()
	assert.NoError(t, table.Declare(&Symbol{Name: "x", Kind: SymbolVar, Type: types.IntType}))

	table.PushScope()
	sym, ok := table.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 0, sym.ScopeDepth)
}

func TestLookup_VanishesAfterPopScope(t *testing.T) {
	table := New()
	table.PushScope()
	assert.NoError(t, table.Declare(&Symbol{Name: "y", Kind: SymbolVar, Type: types.IntType}))
	table.PopScope()

	_, ok := table.Lookup("y")
	assert.False(t, ok)
}

func TestRegisterAndLookupType(t *testing.T) {
	table := New()
	s := types.NewStruct("Point", []types.StructField{
		{Name: "x", Type: types.IntType},
		{Name: "y", Type: types.IntType},
	}, false, false, 0)

	table.RegisterType("Point", s)

	typ, ok := table.LookupType("Point")
	assert.True(t, ok)
	assert.Same(t, s, typ)
}

func TestResolveForUse_ReturnsACloneNotTheRegisteredPointer(t *testing.T) {
	table := New()
	s := types.NewStruct("Node", []types.StructField{
		{Name: "value", Type: types.IntType},
	}, false, false, 0)
	table.RegisterType("Node", s)

	resolved, ok := table.ResolveForUse("Node")
	assert.True(t, ok)
	assert.NotSame(t, s, resolved)
	assert.True(t, types.AstTypeEquals(s, resolved))
}

func TestResolveForUse_SelfReferentialStructDoesNotRecurseForever(t *testing.T) {
	table := New()
	node := types.NewStruct("Node", nil, false, false, 0)
	node.Struct.Fields = []types.StructField{
		{Name: "next", Type: node},
		{Name: "value", Type: types.IntType},
	}
	table.RegisterType("Node", node)

	resolved, ok := table.ResolveForUse("Node")
	assert.True(t, ok)
	assert.Equal(t, "Node", resolved.Struct.Name)
}

func TestLookupType_Missing(t *testing.T) {
	table := New()
	_, ok := table.LookupType("Missing")
	assert.False(t, ok)
}
