package typechecker

import (
	"testing"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/symboltable"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func newChecker() *Checker {
	return &Checker{symbols: symboltable.New(), diags: diagnostics.NewSink(), filename: "test.sn"}
}

// runModule type-checks stmts as a module and returns the diagnostic
// sink and overall pass/fail, the way a real driver would.
func runModule(t *testing.T, stmts ...ast.Stmt) (*diagnostics.Sink, bool) {
	t.Helper()
	module := &ast.Module{Filename: "test.sn", Statements: stmts}
	return Diagnostics(module, symboltable.New())
}

func intLit(n int64) ast.Expr {
	return &ast.LiteralExpr{Token: token.Token{Kind: token.INT_LITERAL, Payload: token.Payload{IntValue: n}}}
}

func strLit(s string) ast.Expr {
	return &ast.LiteralExpr{Token: token.Token{Kind: token.STRING_LITERAL, Payload: token.Payload{StringValue: s}}}
}

func boolLit(b bool) ast.Expr {
	return &ast.LiteralExpr{Token: token.Token{Kind: token.BOOL_LITERAL, Payload: token.Payload{BoolValue: b}}}
}

func nilLit() ast.Expr {
	return &ast.LiteralExpr{Token: token.Token{Kind: token.NIL}}
}

func variable(name string) *ast.VariableExpr {
	return &ast.VariableExpr{Name: name}
}

func binary(left ast.Expr, op string, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Operator: token.Token{Lexeme: op}, Right: right}
}

func varDecl(name string, declared *types.Type, qual types.MemQual, init ast.Expr) *ast.VarDeclStmt {
	return &ast.VarDeclStmt{Name: name, DeclaredType: declared, MemQual: qual, Init: init}
}

func exprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Expr: e} }

func fn(name string, params []ast.Param, returnType *types.Type, isNative bool, qual types.MemQual, body ...ast.Stmt) *ast.FunctionStmt {
	return &ast.FunctionStmt{Name: name, Params: params, ReturnType: returnType, IsNative: isNative, MemQual: qual, Body: body}
}

func structDecl(name string, fields []ast.StructFieldDecl, isNative, isPacked bool, packValue int) *ast.StructDeclStmt {
	return &ast.StructDeclStmt{Name: name, Fields: fields, IsNative: isNative, IsPacked: isPacked, PackValue: packValue}
}
