package typechecker

import (
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/ast"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/circular"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/diagnostics"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/layout"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/symboltable"
	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

func (c *Checker) checkStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.VarDeclStmt:
		c.checkVarDecl(stmt)
	case *ast.ExprStmt:
		c.checkExpr(stmt.Expr)
	case *ast.ReturnStmt:
		c.checkReturn(stmt)
	case *ast.IfStmt:
		c.checkExpr(stmt.Condition)
		c.checkBlock(stmt.Then)
		if stmt.Else != nil {
			c.checkBlock(stmt.Else)
		}
	case *ast.WhileStmt:
		c.checkExpr(stmt.Condition)
		c.checkBlock(stmt.Body)
	case *ast.ForStmt:
		c.checkFor(stmt)
	case *ast.BlockStmt:
		c.checkBlock(stmt.Statements)
	case *ast.FunctionStmt:
		c.checkFunction(stmt)
	case *ast.StructDeclStmt:
		c.checkStructDecl(stmt)
	case *ast.TypeDeclStmt:
		c.symbols.RegisterType(stmt.Name, stmt.Type)
	case *ast.ImportStmt, *ast.PragmaDirectiveStmt:
		// External-driver concerns; nothing to type-check.
	}
}

func (c *Checker) checkBlock(stmts []ast.Stmt) {
	c.symbols.PushScope()
	defer c.symbols.PopScope()
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkVarDecl(decl *ast.VarDeclStmt) {
	var initType *types.Type
	if decl.Init != nil {
		initType = c.checkExpr(decl.Init)
	}

	declared := c.resolveNamed(decl.DeclaredType)
	if declared == nil {
		declared = initType
	}

	if declared != nil && declared.Kind == types.KindPointer && !c.nativeContextIsActive() {
		c.errorf(0, diagnostics.KindPointerInRegularFn,
			"pointer variable %q is only allowed in a native function", decl.Name)
	}

	if decl.MemQual == types.AsRef && declared != nil && !types.IsPrimitiveType(declared) {
		c.errorf(0, diagnostics.KindAsRefOnArray,
			"'as ref' on %q is only legal on primitive types", decl.Name)
	}

	if decl.Init != nil && declared != nil && initType != nil {
		if _, ok := compatibleAssign(declared, initType); !ok {
			c.errorf(0, diagnostics.KindTypeMismatch,
				"cannot initialize %q: incompatible types", decl.Name)
		}
	}

	sym := &symboltable.Symbol{
		Name:            decl.Name,
		Kind:            symboltable.SymbolVar,
		Type:            declared,
		IsNativeContext: c.nativeContextIsActive(),
	}
	if err := c.symbols.Declare(sym); err != nil {
		c.errorf(0, diagnostics.KindTypeMismatch, "%s", err.Error())
	}
}

func (c *Checker) checkReturn(stmt *ast.ReturnStmt) {
	if stmt.Value == nil {
		return
	}
	valueType := c.checkExpr(stmt.Value)
	if c.enclosingReturnType == nil || valueType == nil {
		return
	}
	if _, ok := compatibleAssign(c.enclosingReturnType, valueType); !ok {
		c.errorf(0, diagnostics.KindTypeMismatch, "return type does not match function's declared return type")
	}
	if types.IsReferenceType(valueType) && c.enclosingMemQual == types.Private {
		c.errorf(0, diagnostics.KindTypeMismatch,
			"a 'private' function may not return a reference-shaped value")
	}
}

func (c *Checker) checkFor(stmt *ast.ForStmt) {
	c.symbols.PushScope()
	defer c.symbols.PopScope()

	if stmt.Iterable != nil {
		iterType := c.checkExpr(stmt.Iterable)
		var elemType *types.Type
		if iterType != nil && iterType.Kind == types.KindArray {
			elemType = iterType.Element
		}
		_ = c.symbols.Declare(&symboltable.Symbol{
			Name: stmt.IteratorName,
			Kind: symboltable.SymbolVar,
			Type: elemType,
		})
	} else {
		if stmt.Init != nil {
			c.checkStmt(stmt.Init)
		}
		if stmt.Condition != nil {
			c.checkExpr(stmt.Condition)
		}
		if stmt.Post != nil {
			c.checkStmt(stmt.Post)
		}
	}
	for _, s := range stmt.Body {
		c.checkStmt(s)
	}
}

func (c *Checker) checkFunction(fn *ast.FunctionStmt) {
	paramTypes := make([]*types.Type, len(fn.Params))
	paramQuals := make([]types.MemQual, len(fn.Params))
	for i, p := range fn.Params {
		paramTypes[i] = p.Type
		paramQuals[i] = p.MemQual
	}
	fnType := types.NewFunction(fn.ReturnType, paramTypes, paramQuals, fn.IsNative, false)

	// Declared in the enclosing scope before the body is checked so
	// recursive calls resolve.
	_ = c.symbols.Declare(&symboltable.Symbol{
		Name: fn.Name,
		Kind: symboltable.SymbolFunction,
		Type: fnType,
	})

	for _, p := range fn.Params {
		if p.MemQual == types.AsRef && !types.IsPrimitiveType(p.Type) {
			c.errorf(0, diagnostics.KindAsRefOnArray,
				"parameter %q: 'as ref' is only legal on primitive types", p.Name)
		}
	}

	c.symbols.PushScope()
	if fn.IsNative {
		c.nativeContextEnter()
	}

	prevReturn, prevQual := c.enclosingReturnType, c.enclosingMemQual
	c.enclosingReturnType = fn.ReturnType
	c.enclosingMemQual = fn.MemQual

	for _, p := range fn.Params {
		_ = c.symbols.Declare(&symboltable.Symbol{
			Name:            p.Name,
			Kind:            symboltable.SymbolParam,
			Type:            p.Type,
			IsNativeContext: fn.IsNative,
		})
	}

	for _, s := range fn.Body {
		c.checkStmt(s)
	}

	c.enclosingReturnType, c.enclosingMemQual = prevReturn, prevQual
	if fn.IsNative {
		c.nativeContextExit()
	}
	c.symbols.PopScope()
}

func (c *Checker) checkStructDecl(decl *ast.StructDeclStmt) {
	fields := make([]types.StructField, len(decl.Fields))
	for i, f := range decl.Fields {
		if f.Type == nil {
			c.errorf(0, diagnostics.KindTypeMismatch, "field %q has no resolvable type", f.Name)
			continue
		}
		if f.Type.Kind == types.KindPointer && !decl.IsNative {
			c.errorf(0, diagnostics.KindPointerFieldNonNative,
				"field %q: pointer-typed fields are only legal in native structs", f.Name)
		}
		fieldType := c.resolveNamed(f.Type)
		if f.DefaultValue != nil {
			defaultType := c.checkExpr(f.DefaultValue)
			if _, ok := compatibleAssign(fieldType, defaultType); !ok {
				c.errorf(0, diagnostics.KindTypeMismatch,
					"field %q: default value does not match field type", f.Name)
			}
		}
		fields[i] = types.StructField{
			Name:         f.Name,
			Type:         fieldType,
			DefaultValue: f.DefaultValue,
			CAlias:       f.CAlias,
		}
	}

	structType := types.NewStruct(decl.Name, fields, decl.IsNative, decl.IsPacked, decl.PackValue)
	c.symbols.RegisterType(decl.Name, structType)

	if cyclic, chain := circular.Detect(structType); cyclic {
		c.errorf(0, diagnostics.KindCircularDependency,
			"circular struct dependency: %s", chainString(chain))
		return
	}

	layout.CalculateStructLayout(structType)
}

// resolveNamed replaces a top-level Named type with the type registered
// under that name; any other type, or a name not yet registered, is
// returned unchanged.
func (c *Checker) resolveNamed(t *types.Type) *types.Type {
	if t != nil && t.Kind == types.KindNamed {
		if resolved, ok := c.symbols.LookupType(t.NamedRef); ok {
			return resolved
		}
	}
	return t
}

func chainString(chain []string) string {
	out := ""
	for i, name := range chain {
		if i > 0 {
			out += " -> "
		}
		out += name
	}
	return out
}
