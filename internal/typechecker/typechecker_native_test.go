package typechecker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func TestNative_PointerVariableRequiresNativeContext(t *testing.T) {
	regular := fn("f", nil, types.VoidType, false, types.Default,
		varDecl("p", types.NewPointer(types.IntType), types.Default, nilLit()),
	)
	_, ok := runModule(t, regular)
	assert.False(t, ok)
}

func TestNative_PointerVariableAllowedInNativeFunction(t *testing.T) {
	native := fn("f", nil, types.VoidType, true, types.Default,
		varDecl("p", types.NewPointer(types.IntType), types.Default, nilLit()),
	)
	_, ok := runModule(t, native)
	assert.True(t, ok)
}

func TestNative_StarStructMemberOutsideNativeIsRejected(t *testing.T) {
	s := structDecl("Point", []ast.StructFieldDecl{{Name: "x", Type: types.IntType}}, true, false, 0)
	regular := fn("f", []ast.Param{{Name: "p", Type: types.NewPointer(types.NewNamed("Point"))}}, types.VoidType, false, types.Default,
		exprStmt(&ast.MemberAccessExpr{Object: variable("p"), Field: "x"}),
	)
	_, ok := runModule(t, s, regular)
	assert.False(t, ok)
}

func TestNative_NativeStructRequiresNativeContextToInstantiate(t *testing.T) {
	s := structDecl("Header", []ast.StructFieldDecl{{Name: "magic", Type: types.IntType}}, true, false, 0)
	regular := fn("f", nil, types.VoidType, false, types.Default,
		exprStmt(&ast.StructLiteralExpr{
			StructName: "Header",
			Fields:     []ast.StructFieldInit{{Name: "magic", Value: intLit(1)}},
		}),
	)
	sink, ok := runModule(t, s, regular)
	assert.False(t, ok)
	found := false
	for _, d := range sink.All() {
		if d.Kind == diagnostics.KindNativeStructInRegular {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNative_NativeStructAllowedInNativeFunction(t *testing.T) {
	s := structDecl("Header", []ast.StructFieldDecl{{Name: "magic", Type: types.IntType}}, true, false, 0)
	native := fn("f", nil, types.VoidType, true, types.Default,
		exprStmt(&ast.StructLiteralExpr{
			StructName: "Header",
			Fields:     []ast.StructFieldInit{{Name: "magic", Value: intLit(1)}},
		}),
	)
	_, ok := runModule(t, s, native)
	assert.True(t, ok)
}

func TestNative_PointerFieldRequiresNativeStruct(t *testing.T) {
	s := structDecl("Node", []ast.StructFieldDecl{
		{Name: "next", Type: types.NewPointer(types.NewNamed("Node"))},
	}, false, false, 0)
	_, ok := runModule(t, s)
	assert.False(t, ok)
}

func TestNative_PointerFieldAllowedInNativeStruct(t *testing.T) {
	s := structDecl("Node", []ast.StructFieldDecl{
		{Name: "next", Type: types.NewPointer(types.NewNamed("Node"))},
	}, true, false, 0)
	_, ok := runModule(t, s)
	assert.True(t, ok)
}
