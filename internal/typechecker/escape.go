package typechecker

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"

// applyEscapeAnalysis handles `obj.field = rhs`: if rhs is a
// variable whose declaration scope is deeper than the LHS chain's root
// variable, the assignment lets that value escape to a longer-lived
// scope, so both the variable and every member_access on the LHS chain
// are flagged for the codegen heap-promotion decision this drives.
func (c *Checker) applyEscapeAnalysis(assign *ast.MemberAssignExpr) {
	lhsBaseDepth := baseScopeDepth(assign.Target)

	rhsVar, ok := assign.Value.(*ast.VariableExpr)
	if !ok {
		return
	}
	if rhsVar.DeclScopeDepth <= lhsBaseDepth {
		return
	}

	rhsVar.Escapes = true
	markChainEscaped(assign.Target)
}

// markChainEscaped walks from the assignment's target member_access back
// to (but not including) the base variable, flagging each link.
func markChainEscaped(m *ast.MemberAccessExpr) {
	for node := m; node != nil; {
		node.Escaped = true
		next, ok := node.Object.(*ast.MemberAccessExpr)
		if !ok {
			break
		}
		node = next
	}
}
