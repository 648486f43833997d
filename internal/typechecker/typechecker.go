// Package typechecker walks an ast.Module and enforces the Language's
// type rules: the native/regular function split, memory qualifiers,
// pointer discipline, struct layout, circular-dependency detection, and
// scope-based escape analysis. It generalizes a tree-walker's Resolver,
// which performs a single pass of variable-resolution/scope-depth
// bookkeeping over an AST, into a full structural type checker for the
// Language's richer statement and expression grammar, reusing the same
// "walk in source order, mutate a scope stack, annotate AST nodes in
// place" shape.
package typechecker

import (
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/circular"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/layout"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/symboltable"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

// Checker holds the process-local state of one type-checking pass: the
// symbol table being populated, the diagnostic sink, and the context
// flags described in context.go.
type Checker struct {
	symbols  *symboltable.Table
	diags    *diagnostics.Sink
	filename string

	nativeDepth        int
	asValDepth         int
	pointerReturnDepth int

	// enclosingReturnType/enclosingMemQual describe the function whose
	// body is currently being checked, so return statements and
	// pointer-return-restriction checks have something to compare
	// against. nil/zero at module scope (a bare return there is a
	// checker bug in the caller, not a user error, so it is not
	// specially guarded).
	enclosingReturnType *types.Type
	enclosingMemQual    types.MemQual
}

// TypeCheckModule walks module, collecting every diagnostic it finds in a
// sink local to this call, and returns true iff none were found. The
// diagnostics themselves are not returned; Diagnostics returns them.
func TypeCheckModule(module *ast.Module, symbols *symboltable.Table) bool {
	c := &Checker{
		symbols:  symbols,
		diags:    diagnostics.NewSink(),
		filename: module.Filename,
	}
	for _, stmt := range module.Statements {
		c.checkStmt(stmt)
	}
	return !c.diags.HasErrors()
}

// Diagnostics runs the same pass as TypeCheckModule over module and
// returns the collected sink along with the pass/fail result; it is a
// pass of its own, not a view of an earlier TypeCheckModule call. It sits
// alongside TypeCheckModule rather than
// replacing it, since every real driver needs a way to retrieve what was
// collected, not just a pass/fail bool.
func Diagnostics(module *ast.Module, symbols *symboltable.Table) (*diagnostics.Sink, bool) {
	c := &Checker{symbols: symbols, diags: diagnostics.NewSink(), filename: module.Filename}
	for _, stmt := range module.Statements {
		c.checkStmt(stmt)
	}
	return c.diags, !c.diags.HasErrors()
}

// --- Exported utility predicates ---
//
// These re-export the structural predicates from internal/types,
// internal/layout, and internal/circular under one roof, so tests and
// a future driver can call them through a single
// package without reaching into the supporting packages directly.

func IsNumericType(t *types.Type) bool             { return types.IsNumericType(t) }
func IsPrimitiveType(t *types.Type) bool            { return types.IsPrimitiveType(t) }
func IsReferenceType(t *types.Type) bool            { return types.IsReferenceType(t) }
func IsPrintableType(t *types.Type) bool            { return types.IsPrintableType(t) }
func IsCCompatibleType(t *types.Type) bool          { return types.IsCCompatibleType(t) }
func IsVariadicCompatibleType(t *types.Type) bool   { return types.IsVariadicCompatibleType(t) }
func AstTypeEquals(a, b *types.Type) bool           { return types.AstTypeEquals(a, b) }
func AstStructGetField(t *types.Type, name string) *types.StructField {
	return types.AstStructGetField(t, name)
}
func AstStructGetFieldIndex(t *types.Type, name string) int { return types.AstStructGetFieldIndex(t, name) }
func AstTypeIsStruct(t *types.Type) bool                    { return types.AstTypeIsStruct(t) }

func CalculateStructLayout(t *types.Type) { layout.CalculateStructLayout(t) }
func GetTypeSize(t *types.Type) int       { return layout.GetTypeSize(t) }
func GetTypeAlignment(t *types.Type) int  { return layout.GetTypeAlignment(t) }

// DetectStructCircularDependency reports whether root's value-nested
// type graph contains a cycle, along with the path chain for the error
// message when it does.
func DetectStructCircularDependency(root *types.Type) (bool, []string) {
	return circular.Detect(root)
}

// IsComparisonOperator reports whether a token lexeme is a comparison
// operator.
func IsComparisonOperator(lexeme string) bool {
	switch lexeme {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	default:
		return false
	}
}

// IsArithmeticOperator reports whether a token lexeme is an arithmetic
// operator.
func IsArithmeticOperator(lexeme string) bool {
	switch lexeme {
	case "+", "-", "*", "/", "%":
		return true
	default:
		return false
	}
}

// CanEscapePrivate reports whether t may be returned from a `private`
// function. Private functions may return primitives but not heap/
// reference-shaped types (arrays, strings); `shared` lifts that
// restriction entirely, which callers check separately.
func CanEscapePrivate(t *types.Type) bool {
	return !types.IsReferenceType(t)
}

func (c *Checker) errorf(line int, kind diagnostics.Kind, format string, args ...interface{}) {
	c.diags.Errorf(c.filename, line, kind, format, args...)
}
