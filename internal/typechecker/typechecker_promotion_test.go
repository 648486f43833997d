package typechecker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func TestPromotion_IntPlusLongPromotesDeclaration(t *testing.T) {
	decl := varDecl("x", types.LongType, types.Default, binary(intLit(1), "+", intLit(2)))
	_, ok := runModule(t, decl)
	assert.True(t, ok)
}

func TestPromotion_IncompatibleOperandsRejected(t *testing.T) {
	_, ok := runModule(t, exprStmt(binary(intLit(1), "+", strLit("x"))))
	assert.False(t, ok)
}

func TestPromotion_Int32PlusUintRejected(t *testing.T) {
	decl := varDecl("a", types.Int32Type, types.Default, intLit(1))
	decl2 := varDecl("b", types.UintType, types.Default, intLit(1))
	use := exprStmt(binary(variable("a"), "+", variable("b")))
	_, ok := runModule(t, decl, decl2, use)
	assert.False(t, ok)
}

func TestPromotion_ComparisonYieldsBool(t *testing.T) {
	use := exprStmt(binary(intLit(1), "<", intLit(2)))
	_, ok := runModule(t, use)
	assert.True(t, ok)
}

func TestPromotion_PointerArithmeticRejected(t *testing.T) {
	decl := varDecl("p", types.NewPointer(types.IntType), types.Default, nilLit())
	native := fn("f", nil, types.VoidType, true, types.Default,
		decl,
		exprStmt(binary(variable("p"), "+", intLit(1))),
	)
	_, ok := runModule(t, native)
	assert.False(t, ok)
}

func TestPromotion_PointerEqualityAllowed(t *testing.T) {
	decl := varDecl("p", types.NewPointer(types.IntType), types.Default, nilLit())
	native := fn("f", nil, types.VoidType, true, types.Default,
		decl,
		exprStmt(binary(variable("p"), "==", nilLit())),
	)
	_, ok := runModule(t, native)
	assert.True(t, ok)
}
