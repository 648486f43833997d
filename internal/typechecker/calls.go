package typechecker

import (
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

// checkCall resolves the callee, checks arity and pairwise argument
// types, and enforces the pointer-returning-callee
// restriction: in a regular (non-native) function, a call whose return
// type is a pointer must be the direct operand of `as val`, unless its
// result flows inline into another call's pointer-typed parameter.
func (c *Checker) checkCall(call *ast.CallExpr) *types.Type {
	calleeType := c.checkExpr(call.Callee)
	if calleeType == nil || calleeType.Kind != types.KindFunction {
		if calleeType != nil {
			c.errorf(0, diagnostics.KindTypeMismatch, "callee is not a function")
		}
		for _, arg := range call.Args {
			c.checkExpr(arg)
		}
		return nil
	}

	fn := calleeType.Function
	c.checkArgs(call.Args, fn)

	if fn.ReturnType != nil && fn.ReturnType.Kind == types.KindPointer &&
		!c.nativeContextIsActive() && !c.pointerReturnContextIsActive() {
		c.errorf(0, diagnostics.KindPointerReturnNoAsVal,
			"a pointer-returning call must be consumed by 'as val' in a regular function")
	}

	return fn.ReturnType
}

func (c *Checker) checkArgs(args []ast.Expr, fn *types.Function) {
	minArity := len(fn.Params)
	if !fn.IsVariadic && len(args) != minArity {
		c.errorf(0, diagnostics.KindArityMismatch, "expected %d argument(s), got %d", minArity, len(args))
	}
	if fn.IsVariadic && len(args) < minArity {
		c.errorf(0, diagnostics.KindArityMismatch, "expected at least %d argument(s), got %d", minArity, len(args))
	}

	for i, arg := range args {
		var paramType *types.Type
		if i < len(fn.Params) {
			paramType = fn.Params[i]
		}

		// Pointer-typed parameters legitimize a nested pointer-returning
		// call as inline pass-through.
		consumesPointer := paramType != nil && paramType.Kind == types.KindPointer
		if consumesPointer {
			c.pointerReturnContextEnter()
		}
		argType := c.checkExpr(arg)
		if consumesPointer {
			c.pointerReturnContextExit()
		}

		if paramType == nil {
			if !types.IsVariadicCompatibleType(argType) {
				c.errorf(0, diagnostics.KindIncompatibleInterop, "argument %d is not variadic-compatible", i+1)
			}
			continue
		}
		if _, ok := compatibleAssign(paramType, argType); !ok {
			c.errorf(0, diagnostics.KindTypeMismatch, "argument %d: incompatible type", i+1)
		}
	}
}
