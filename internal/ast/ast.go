// Package ast defines the Expr/Stmt node shapes the type checker
// consumes. The parser that produces these nodes is an external
// collaborator (out of scope); ast only needs to describe the node
// shapes, their bookkeeping flags, and the resolved-type slot each
// expression carries. It mirrors a tree-walker's Expr/Stmt interfaces —
// small marker interfaces plus one struct per variant — generalized
// from a handful of statement/expression kinds to the Language's
// richer grammar.
package ast

import (
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

// Expr is satisfied by every expression node.
type Expr interface {
	exprNode()
	// ResolvedType returns the type the checker assigned this
	// expression, or nil if it hasn't been type-checked yet.
	ResolvedType() *types.Type
	SetResolvedType(*types.Type)
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	stmtNode()
}

// exprBase carries the fields common to every Expr variant: the
// resolved type slot and the escape-analysis flag set during checking.
type exprBase struct {
	exprType *types.Type
	Escapes  bool
}

func (e *exprBase) exprNode() {}
func (e *exprBase) ResolvedType() *types.Type { return e.exprType }
func (e *exprBase) SetResolvedType(t *types.Type) { e.exprType = t }

// LiteralExpr is a literal token value (number, string, char, bool, nil).
type LiteralExpr struct {
	exprBase
	Token token.Token
}

// VariableExpr references a declared name.
type VariableExpr struct {
	exprBase
	Name string
	// DeclScopeDepth is captured by the checker at resolution time from
	// the referenced symbol's ScopeDepth, and is what the escape
	// analyzer compares against the assignment target's base depth.
	DeclScopeDepth int
}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	exprBase
	Operator token.Token
	Operand  Expr
}

// AssignExpr is `lhs = rhs` where lhs is a bare variable (member-target
// assignment is MemberAssignExpr).
type AssignExpr struct {
	exprBase
	Name string
	Value Expr
}

// MemberAccessExpr is `obj.field`.
type MemberAccessExpr struct {
	exprBase
	Object Expr
	Field  string

	// ScopeDepth is the declaration scope depth of the root variable of
	// the access chain (propagated through a.b.c so every link shares
	// the same depth), set during type checking.
	ScopeDepth int
	// Escaped is set by the escape analyzer when this node sits on the
	// LHS chain of an assignment whose RHS escapes scope.
	Escaped bool
	// FieldIndex is the resolved struct field's declaration index, -1
	// until resolved.
	FieldIndex int
}

// MemberAssignExpr is `obj.field = rhs`.
type MemberAssignExpr struct {
	exprBase
	Target *MemberAccessExpr
	Value  Expr
}

// CallExpr is a function (or built-in method) invocation.
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	exprBase
	Elements []Expr
}

// ArrayAccessExpr is `x[i]`.
type ArrayAccessExpr struct {
	exprBase
	Array Expr
	Index Expr
}

// ArraySliceExpr is `x[a..b]` or `x[a..b:step]`.
type ArraySliceExpr struct {
	exprBase
	Array Expr
	Start Expr
	End   Expr
	Step  Expr // nil if absent

	// IsFromPointer is set when Array's static type is *T rather than
	// T[].
	IsFromPointer bool
}

// SizedArrayAllocExpr is `new T[n]`-shaped allocation.
type SizedArrayAllocExpr struct {
	exprBase
	ElementType *types.Type
	Size        Expr
}

// StructFieldInit is one `name: value` pair in a struct literal.
type StructFieldInit struct {
	Name  string
	Value Expr
}

// StructLiteralExpr is `StructName { field: value, ... }`.
type StructLiteralExpr struct {
	exprBase
	StructName string
	Fields     []StructFieldInit

	// FieldsInitialized tracks, by declaration index, which fields have
	// been assigned an initializer (explicit or defaulted) so far.
	FieldsInitialized []bool
	TotalFieldCount   int
}

// InterpolatedStringExpr is a `$"...{expr}..."` string; Parts alternates
// literal text chunks and embedded expressions (parsed from the raw
// brace-delimited text the lexer preserved).
type InterpolatedStringExpr struct {
	exprBase
	Parts []InterpolPart
}

// InterpolPart is one piece of an interpolated string.
type InterpolPart struct {
	Literal string // meaningful iff Expr == nil
	Expr    Expr
}

// LambdaExpr is an anonymous function; expression-bodied lambdas set
// Body == nil and Expr != nil, statement-bodied lambdas set the reverse.
type LambdaExpr struct {
	exprBase
	Params     []Param
	ReturnType *types.Type
	Expr       Expr
	Body       []Stmt
}

// AsValExpr is `e as val`.
type AsValExpr struct {
	exprBase
	Operand Expr

	// IsNoop is set when Operand's type already matches the result type
	// (no pointer to unwrap).
	IsNoop bool
	// IsCstrToStr is set for the *Char -> String conversion case.
	IsCstrToStr bool
}

// AsRefExpr is `e as ref`.
type AsRefExpr struct {
	exprBase
	Operand Expr
}

// Param is a function/lambda parameter.
type Param struct {
	Name    string
	Type    *types.Type
	MemQual types.MemQual
}

// --- Statements ---

type stmtBase struct{}

func (s stmtBase) stmtNode() {}

// VarDeclStmt is `var name: Type = init` (DeclaredType nil if elided).
type VarDeclStmt struct {
	stmtBase
	Name         string
	DeclaredType *types.Type
	MemQual      types.MemQual
	Init         Expr
}

// ExprStmt wraps an expression evaluated for effect.
type ExprStmt struct {
	stmtBase
	Expr Expr
}

// ReturnStmt is `return expr?`.
type ReturnStmt struct {
	stmtBase
	Value Expr // nil for bare `return`
}

// IfStmt is `if cond: then else: else`.
type IfStmt struct {
	stmtBase
	Condition Expr
	Then      []Stmt
	Else      []Stmt // nil if absent
}

// WhileStmt is `while cond: body`.
type WhileStmt struct {
	stmtBase
	Condition Expr
	Body      []Stmt
}

// ForStmt is `for init; cond; post: body` or `for name in iterable: body`.
type ForStmt struct {
	stmtBase
	Init      Stmt // nil for the range-for form
	Condition Expr
	Post      Stmt // nil for the range-for form

	// IteratorName/Iterable are set for the `for name in iterable` form
	// instead of Init/Condition/Post.
	IteratorName string
	Iterable     Expr

	Body []Stmt
}

// BlockStmt is a `{...}`/indented statement sequence with its own scope.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

// FunctionStmt is a top-level or nested function declaration.
type FunctionStmt struct {
	stmtBase
	Name       string
	Params     []Param
	ReturnType *types.Type
	IsNative   bool
	MemQual    types.MemQual // governs return-type restrictions (shared/private)
	Body       []Stmt
}

// StructDeclStmt declares a struct type.
type StructDeclStmt struct {
	stmtBase
	Name      string
	Fields    []StructFieldDecl
	IsNative  bool
	IsPacked  bool
	PackValue int
}

// StructFieldDecl is one field in a struct declaration, before layout.
type StructFieldDecl struct {
	Name         string
	Type         *types.Type
	DefaultValue Expr // nil if absent
	CAlias       string
}

// TypeDeclStmt is a named type alias/forward declaration.
type TypeDeclStmt struct {
	stmtBase
	Name string
	Type *types.Type
}

// ImportStmt names an external module/header dependency.
type ImportStmt struct {
	stmtBase
	Path string
}

// PragmaDirectiveStmt carries a lexer-recognized pragma through to the
// statement stream; the type checker only interprets PRAGMA_PACK
// (via Struct.IsPacked/PackValue on the following struct_decl).
type PragmaDirectiveStmt struct {
	stmtBase
	Kind  token.Kind
	Value string
}

// Module is the root of a compilation unit's statement sequence.
type Module struct {
	Filename   string
	Statements []Stmt
}
