package typechecker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/symboltable"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func TestStruct_AllFieldsProvided(t *testing.T) {
	s := structDecl("Point", []ast.StructFieldDecl{
		{Name: "x", Type: types.IntType},
		{Name: "y", Type: types.IntType},
	}, false, false, 0)
	lit := &ast.StructLiteralExpr{StructName: "Point", Fields: []ast.StructFieldInit{
		{Name: "x", Value: intLit(1)},
		{Name: "y", Value: intLit(2)},
	}}
	_, ok := runModule(t, s, exprStmt(lit))
	assert.True(t, ok)
}

func TestStruct_MissingRequiredFieldIsRejected(t *testing.T) {
	s := structDecl("Point", []ast.StructFieldDecl{
		{Name: "x", Type: types.IntType},
		{Name: "y", Type: types.IntType},
	}, false, false, 0)
	lit := &ast.StructLiteralExpr{StructName: "Point", Fields: []ast.StructFieldInit{
		{Name: "x", Value: intLit(1)},
	}}
	sink, ok := runModule(t, s, exprStmt(lit))
	assert.False(t, ok)
	assertHasKind(t, sink, diagnostics.KindMissingField)
}

func TestStruct_DefaultValueSatisfiesMissingField(t *testing.T) {
	s := structDecl("Point", []ast.StructFieldDecl{
		{Name: "x", Type: types.IntType},
		{Name: "y", Type: types.IntType, DefaultValue: intLit(0)},
	}, false, false, 0)
	lit := &ast.StructLiteralExpr{StructName: "Point", Fields: []ast.StructFieldInit{
		{Name: "x", Value: intLit(1)},
	}}
	_, ok := runModule(t, s, exprStmt(lit))
	assert.True(t, ok)
}

func TestStruct_UnknownFieldNameIsRejected(t *testing.T) {
	s := structDecl("Point", []ast.StructFieldDecl{{Name: "x", Type: types.IntType}}, false, false, 0)
	lit := &ast.StructLiteralExpr{StructName: "Point", Fields: []ast.StructFieldInit{
		{Name: "z", Value: intLit(1)},
	}}
	_, ok := runModule(t, s, exprStmt(lit))
	assert.False(t, ok)
}

func TestStruct_LayoutComputedOnDeclaration(t *testing.T) {
	s := structDecl("FileHeader", []ast.StructFieldDecl{
		{Name: "magic", Type: types.Int32Type},
		{Name: "version", Type: types.ByteType},
		{Name: "flags", Type: types.ByteType},
		{Name: "size", Type: types.Int32Type},
	}, true, true, 0)
	_, ok := runModule(t, s)
	assert.True(t, ok)

	symbols := symbolsAfter(t, s)
	structType, found := symbols.LookupType("FileHeader")
	assert.True(t, found)
	assert.True(t, structType.Struct.LaidOut)
	assert.Equal(t, 10, structType.Struct.Size)
	assert.Equal(t, 1, structType.Struct.Alignment)
}

func TestStruct_CircularDependencyIsRejected(t *testing.T) {
	// A field whose static Type is the struct's own *types.Type (the
	// shape circular.Detect walks) self-references by value.
	selfRef := types.NewStruct("A", nil, false, false, 0)
	decl := structDecl("A", []ast.StructFieldDecl{
		{Name: "next", Type: selfRef},
		{Name: "value", Type: types.IntType},
	}, false, false, 0)
	selfRef.Struct.Fields = []types.StructField{
		{Name: "next", Type: selfRef},
		{Name: "value", Type: types.IntType},
	}

	sink, ok := runModule(t, decl)
	assert.False(t, ok)
	assertHasKind(t, sink, diagnostics.KindCircularDependency)
}

func TestStruct_PointerFieldBreaksCircularDependency(t *testing.T) {
	selfRef := types.NewStruct("A", nil, true, false, 0)
	decl := structDecl("A", []ast.StructFieldDecl{
		{Name: "next", Type: types.NewPointer(selfRef)},
	}, true, false, 0)
	selfRef.Struct.Fields = []types.StructField{
		{Name: "next", Type: types.NewPointer(selfRef)},
	}

	_, ok := runModule(t, decl)
	assert.True(t, ok)
}

func assertHasKind(t *testing.T, sink *diagnostics.Sink, kind diagnostics.Kind) {
	t.Helper()
	for _, d := range sink.All() {
		if d.Kind == kind {
			return
		}
	}
	t.Fatalf("expected a diagnostic of kind %q, got %+v", kind, sink.All())
}

func symbolsAfter(t *testing.T, stmts ...ast.Stmt) *symboltable.Table {
	t.Helper()
	module := &ast.Module{Filename: "test.sn", Statements: stmts}
	symbols := symboltable.New()
	TypeCheckModule(module, symbols)
	return symbols
}
