// Package symboltable implements the type checker's scope stack: scopes
// are pushed and popped in LIFO order mirroring source block structure,
// and a separate type registry maps declared type names to their
// resolved Type. It adapts a scope-chain Environment, which chains a map
// per scope via a parent pointer, into an explicit slice-of-maps stack —
// the Language's scope_depth bookkeeping (captured once at declaration
// time) is easier to express as an index into that stack than as
// parent-pointer depth.
package symboltable

import (
	"fmt"

	"github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"
)

// SymbolKind distinguishes what a Symbol names.
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolFunction
	SymbolParam
)

// Symbol is one entry in a scope.
type Symbol struct {
	Name            string
	Kind            SymbolKind
	Type            *types.Type
	ScopeDepth      int
	IsNativeContext bool
}

// Table is the scope stack plus the type registry. The zero Table is not
// usable; use New.
type Table struct {
	scopes  []map[string]*Symbol
	typeReg map[string]*types.Type
}

// New creates a Table with a single (global) scope already pushed, so
// ScopeDepth() starts at 0.
func New() *Table {
	return &Table{
		scopes:  []map[string]*Symbol{{}},
		typeReg: map[string]*types.Type{},
	}
}

// PushScope opens a new, empty scope nested inside the current one.
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, map[string]*Symbol{})
}

// PopScope closes the innermost scope. Popping the last remaining global
// scope is a programming error and panics, matching an Environment's
// Environment which never pops its global frame either.
func (t *Table) PopScope() {
	if len(t.scopes) <= 1 {
		panic("symboltable: cannot pop the global scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// ScopeDepth returns the current nesting depth; 0 is global.
func (t *Table) ScopeDepth() int {
	return len(t.scopes) - 1
}

// Declare inserts sym into the current scope, rejecting a name already
// declared in that same scope (shadowing an outer scope is allowed).
func (t *Table) Declare(sym *Symbol) error {
	current := t.scopes[len(t.scopes)-1]
	if _, exists := current[sym.Name]; exists {
		return fmt.Errorf("symbol %q already declared in this scope", sym.Name)
	}
	sym.ScopeDepth = t.ScopeDepth()
	current[sym.Name] = sym
	return nil
}

// Lookup walks scopes from innermost to outermost and returns the first
// match, or (nil, false).
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// RegisterType adds name to the type registry. It stores the Type
// pointer directly rather than cloning it, so a self-referential struct
// (whose Fields slice may itself reference a Type that eventually points
// back to this same *types.Type) is registered without ever attempting
// to copy a cyclic graph.
func (t *Table) RegisterType(name string, typ *types.Type) {
	t.typeReg[name] = typ
}

// LookupType resolves a registered type name, or (nil, false).
func (t *Table) LookupType(name string) (*types.Type, bool) {
	typ, ok := t.typeReg[name]
	return typ, ok
}

// ResolveForUse returns a clone of the registered type suitable for
// attaching to a new AST node. Clone (internal/types) stops at struct
// boundaries rather than deep-copying fields, so this is safe to call on
// self-referential struct types.
func (t *Table) ResolveForUse(name string) (*types.Type, bool) {
	typ, ok := t.typeReg[name]
	if !ok {
		return nil, false
	}
	return types.Clone(typ), true
}
