package typechecker

import (
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/symboltable"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/token"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

// checkExpr type-checks e, sets its resolved type, and returns that type
// (nil when the expression could not be resolved, after an error was
// already reported).
func (c *Checker) checkExpr(e ast.Expr) *types.Type {
	if e == nil {
		return nil
	}
	t := c.checkExprKind(e)
	e.SetResolvedType(t)
	return t
}

func (c *Checker) checkExprKind(e ast.Expr) *types.Type {
	switch expr := e.(type) {
	case *ast.LiteralExpr:
		return literalType(expr.Token)
	case *ast.VariableExpr:
		return c.checkVariable(expr)
	case *ast.BinaryExpr:
		return c.checkBinary(expr)
	case *ast.UnaryExpr:
		return c.checkExpr(expr.Operand)
	case *ast.AssignExpr:
		return c.checkAssign(expr)
	case *ast.MemberAccessExpr:
		return c.checkMemberAccess(expr)
	case *ast.MemberAssignExpr:
		return c.checkMemberAssign(expr)
	case *ast.CallExpr:
		return c.checkCall(expr)
	case *ast.ArrayLiteralExpr:
		return c.checkArrayLiteral(expr)
	case *ast.ArrayAccessExpr:
		return c.checkArrayAccess(expr)
	case *ast.ArraySliceExpr:
		return c.checkArraySlice(expr)
	case *ast.SizedArrayAllocExpr:
		c.checkExpr(expr.Size)
		return types.NewArray(expr.ElementType)
	case *ast.StructLiteralExpr:
		return c.checkStructLiteral(expr)
	case *ast.InterpolatedStringExpr:
		for _, part := range expr.Parts {
			if part.Expr != nil {
				c.checkExpr(part.Expr)
			}
		}
		return types.StringType
	case *ast.LambdaExpr:
		return c.checkLambda(expr)
	case *ast.AsValExpr:
		return c.checkAsVal(expr)
	case *ast.AsRefExpr:
		return c.checkAsRef(expr)
	default:
		return nil
	}
}

func literalType(t token.Token) *types.Type {
	switch t.Kind {
	case token.INT_LITERAL:
		return types.IntType
	case token.LONG_LITERAL:
		return types.LongType
	case token.BYTE_LITERAL:
		return types.ByteType
	case token.UINT_LITERAL:
		return types.UintType
	case token.UINT32_LITERAL:
		return types.Uint32Type
	case token.INT32_LITERAL:
		return types.Int32Type
	case token.FLOAT_LITERAL:
		return types.FloatType
	case token.DOUBLE_LITERAL:
		return types.DoubleType
	case token.CHAR_LITERAL:
		return types.CharType
	case token.STRING_LITERAL, token.INTERPOL_STRING:
		return types.StringType
	case token.BOOL_LITERAL:
		return types.BoolType
	case token.NIL:
		return types.NilType
	default:
		return nil
	}
}

func (c *Checker) checkVariable(v *ast.VariableExpr) *types.Type {
	sym, ok := c.symbols.Lookup(v.Name)
	if !ok {
		c.errorf(0, diagnostics.KindUnboundIdentifier, "unbound identifier %q", v.Name)
		return nil
	}
	v.DeclScopeDepth = sym.ScopeDepth
	return sym.Type
}

func (c *Checker) checkBinary(b *ast.BinaryExpr) *types.Type {
	leftType := c.checkExpr(b.Left)
	rightType := c.checkExpr(b.Right)
	if leftType == nil || rightType == nil {
		return nil
	}

	op := b.Operator.Lexeme

	if (leftType.Kind == types.KindPointer || rightType.Kind == types.KindPointer) &&
		IsArithmeticOperator(op) {
		c.errorf(0, diagnostics.KindPointerArithmetic, "pointer arithmetic is not allowed")
		return nil
	}

	if op == "==" || op == "!=" {
		if leftType.Kind == types.KindPointer && rightType.Kind == types.KindPointer {
			return types.BoolType
		}
		if leftType.Kind == types.KindPointer && types.IsPrimitiveType(rightType) && rightType.Primitive == types.Nil {
			return types.BoolType
		}
		if rightType.Kind == types.KindPointer && types.IsPrimitiveType(leftType) && leftType.Primitive == types.Nil {
			return types.BoolType
		}
	}

	if leftType.Kind == types.KindPointer || rightType.Kind == types.KindPointer {
		c.errorf(0, diagnostics.KindPointerArithmetic, "pointer operands are only comparable with == or !=")
		return nil
	}

	promoted, ok := types.PromoteNumeric(leftType, rightType)
	if !ok {
		c.errorf(0, diagnostics.KindIncompatibleInterop, "incompatible operand types")
		return nil
	}

	if IsComparisonOperator(op) {
		return types.BoolType
	}
	return promoted
}

func (c *Checker) checkAssign(a *ast.AssignExpr) *types.Type {
	sym, ok := c.symbols.Lookup(a.Name)
	if !ok {
		c.errorf(0, diagnostics.KindUnboundIdentifier, "unbound identifier %q", a.Name)
		c.checkExpr(a.Value)
		return nil
	}
	valueType := c.checkExpr(a.Value)
	if _, ok := compatibleAssign(sym.Type, valueType); !ok {
		c.errorf(0, diagnostics.KindTypeMismatch, "cannot assign to %q: incompatible types", a.Name)
	}
	return sym.Type
}

// checkMemberAccess implements the obj.field rule, including the
// scope-depth propagation that lets a.b.c all share a's declaration
// scope depth.
func (c *Checker) checkMemberAccess(m *ast.MemberAccessExpr) *types.Type {
	objType := c.checkExpr(m.Object)
	m.ScopeDepth = baseScopeDepth(m.Object)
	m.FieldIndex = -1

	structType := objType
	if objType != nil && objType.Kind == types.KindPointer {
		if !c.nativeContextIsActive() {
			c.errorf(0, diagnostics.KindPointerMemberOutsideFn,
				"*struct member access is only allowed in a native function")
		}
		structType = objType.Base
	}

	if structType == nil {
		return nil
	}
	if !types.AstTypeIsStruct(structType) {
		if builtin := arrayOrStringMemberType(structType, m.Field); builtin != nil {
			return builtin
		}
		c.errorf(0, diagnostics.KindTypeMismatch, "%q is not a struct, array, or string", m.Field)
		return nil
	}

	field := types.AstStructGetField(structType, m.Field)
	if field == nil {
		c.errorf(0, diagnostics.KindTypeMismatch, "no field %q on struct %q", m.Field, structType.Struct.Name)
		return nil
	}
	m.FieldIndex = types.AstStructGetFieldIndex(structType, m.Field)
	return field.Type
}

// baseScopeDepth follows a member-access chain down to its root variable
// and returns that variable's declaration scope depth.
func baseScopeDepth(e ast.Expr) int {
	switch v := e.(type) {
	case *ast.VariableExpr:
		return v.DeclScopeDepth
	case *ast.MemberAccessExpr:
		return v.ScopeDepth
	default:
		return 0
	}
}

// arrayOrStringMemberType resolves built-in array/string members to
// synthetic function (or scalar, for `length`) types.
func arrayOrStringMemberType(t *types.Type, field string) *types.Type {
	if t.Kind == types.KindArray {
		switch field {
		case "length":
			return types.IntType
		case "push":
			return types.NewFunction(types.VoidType, []*types.Type{t.Element}, []types.MemQual{types.Default}, false, false)
		case "pop":
			return types.NewFunction(t.Element, nil, nil, false, false)
		case "clear":
			return types.NewFunction(types.VoidType, nil, nil, false, false)
		case "concat":
			return types.NewFunction(t, []*types.Type{t}, []types.MemQual{types.Default}, false, false)
		}
	}
	if types.IsPrimitiveType(t) && t.Primitive == types.String {
		switch field {
		case "length":
			return types.IntType
		case "append":
			return types.NewFunction(types.StringType, []*types.Type{types.StringType}, []types.MemQual{types.Default}, false, false)
		}
	}
	return nil
}

func (c *Checker) checkMemberAssign(m *ast.MemberAssignExpr) *types.Type {
	targetType := c.checkExpr(m.Target)
	valueType := c.checkExpr(m.Value)
	if _, ok := compatibleAssign(targetType, valueType); !ok {
		c.errorf(0, diagnostics.KindTypeMismatch, "cannot assign to field %q: incompatible types", m.Target.Field)
	}
	c.applyEscapeAnalysis(m)
	return targetType
}

func (c *Checker) checkArrayLiteral(a *ast.ArrayLiteralExpr) *types.Type {
	var elemType *types.Type
	for _, el := range a.Elements {
		t := c.checkExpr(el)
		if elemType == nil {
			elemType = t
		}
	}
	if elemType == nil {
		elemType = types.AnyType
	}
	return types.NewArray(elemType)
}

func (c *Checker) checkArrayAccess(a *ast.ArrayAccessExpr) *types.Type {
	arrType := c.checkExpr(a.Array)
	idxType := c.checkExpr(a.Index)
	if idxType != nil && !types.IsNumericType(idxType) {
		c.errorf(0, diagnostics.KindNonIntegerIndex, "array index must be numeric")
	}
	if arrType == nil {
		return nil
	}
	if arrType.Kind != types.KindArray {
		c.errorf(0, diagnostics.KindNonArrayIndexing, "cannot index a non-array type")
		return nil
	}
	return arrType.Element
}

// checkArraySlice implements the array_slice rule: pointer-based
// slices disallow the step form and require either native context or an
// enclosing `as val`.
func (c *Checker) checkArraySlice(s *ast.ArraySliceExpr) *types.Type {
	arrType := c.checkExpr(s.Array)
	c.checkExpr(s.Start)
	c.checkExpr(s.End)
	if s.Step != nil {
		c.checkExpr(s.Step)
	}
	if arrType == nil {
		return nil
	}

	if arrType.Kind == types.KindPointer {
		s.IsFromPointer = true
		if s.Step != nil {
			c.errorf(0, diagnostics.KindSliceStepOnPointer, "slicing a pointer with a step is not allowed")
		}
		if !c.nativeContextIsActive() && !c.asValContextIsActive() {
			c.errorf(0, diagnostics.KindPointerInRegularFn,
				"slicing a pointer is only allowed in native context or under 'as val'")
		}
		return types.NewArray(arrType.Base)
	}

	if arrType.Kind != types.KindArray {
		c.errorf(0, diagnostics.KindNonArrayIndexing, "cannot slice a non-array, non-pointer type")
		return nil
	}
	return arrType
}

func (c *Checker) checkStructLiteral(s *ast.StructLiteralExpr) *types.Type {
	structType, ok := c.symbols.LookupType(s.StructName)
	if !ok || !types.AstTypeIsStruct(structType) {
		c.errorf(0, diagnostics.KindUnboundIdentifier, "unknown struct type %q", s.StructName)
		return nil
	}

	if structType.Struct.IsNative && !c.nativeContextIsActive() {
		c.errorf(0, diagnostics.KindNativeStructInRegular,
			"native struct %q may only be instantiated inside a native function", s.StructName)
	}

	total := len(structType.Struct.Fields)
	s.TotalFieldCount = total
	s.FieldsInitialized = make([]bool, total)

	for _, init := range s.Fields {
		idx := types.AstStructGetFieldIndex(structType, init.Name)
		if idx < 0 {
			c.errorf(0, diagnostics.KindTypeMismatch, "no field %q on struct %q", init.Name, s.StructName)
			continue
		}
		valueType := c.checkExpr(init.Value)
		field := structType.Struct.Fields[idx]
		if _, ok := compatibleAssign(field.Type, valueType); !ok {
			c.errorf(0, diagnostics.KindTypeMismatch, "field %q: incompatible initializer type", init.Name)
		}
		s.FieldsInitialized[idx] = true
	}

	for i, field := range structType.Struct.Fields {
		if s.FieldsInitialized[i] {
			continue
		}
		if field.DefaultValue != nil {
			s.FieldsInitialized[i] = true
			continue
		}
		c.errorf(0, diagnostics.KindMissingField, "missing required field %q in %q literal", field.Name, s.StructName)
	}

	return structType
}

func (c *Checker) checkLambda(l *ast.LambdaExpr) *types.Type {
	c.symbols.PushScope()
	defer c.symbols.PopScope()

	paramTypes := make([]*types.Type, len(l.Params))
	paramQuals := make([]types.MemQual, len(l.Params))
	for i, p := range l.Params {
		paramTypes[i] = p.Type
		paramQuals[i] = p.MemQual
		_ = c.symbols.Declare(&symboltable.Symbol{
			Name: p.Name,
			Kind: symboltable.SymbolParam,
			Type: p.Type,
		})
	}

	if l.Expr != nil {
		c.checkExpr(l.Expr)
	}
	for _, s := range l.Body {
		c.checkStmt(s)
	}

	return types.NewFunction(l.ReturnType, paramTypes, paramQuals, false, false)
}

func (c *Checker) checkAsVal(a *ast.AsValExpr) *types.Type {
	c.asValContextEnter()
	c.pointerReturnContextEnter()
	operandType := c.checkExpr(a.Operand)
	c.pointerReturnContextExit()
	c.asValContextExit()

	if operandType == nil {
		return nil
	}

	if operandType.Kind == types.KindPointer {
		if types.IsOpaqueType(operandType.Base) {
			c.errorf(0, diagnostics.KindDerefOpaque, "cannot dereference a pointer to an opaque type via 'as val'")
			return nil
		}
		if types.IsPrimitiveType(operandType.Base) && operandType.Base.Primitive == types.Char {
			a.IsCstrToStr = true
			return types.StringType
		}
		return operandType.Base
	}

	if operandType.Kind == types.KindArray || types.AstTypeIsStruct(operandType) {
		a.IsNoop = true
		return operandType
	}

	c.errorf(0, diagnostics.KindAsValOnNonPointer, "'as val' requires a pointer, array, or struct operand")
	return operandType
}

func (c *Checker) checkAsRef(a *ast.AsRefExpr) *types.Type {
	operandType := c.checkExpr(a.Operand)
	if operandType != nil && !types.IsPrimitiveType(operandType) {
		c.errorf(0, diagnostics.KindAsRefOnArray, "'as ref' is only legal on primitive types")
	}
	return operandType
}
