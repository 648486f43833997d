// Package types models the Language's type system: a small sum type with
// primitive, array, pointer, function, struct, opaque, and named variants,
// plus the structural predicates the type checker and layout engine need.
// It follows a preference for small, comparable value types over deep
// class hierarchies: one Go struct discriminated by a Kind field and
// switched on, the same
// pattern a dynamic runtime value representation would use, but applied
// to static types instead.
package types

// Primitive enumerates the Language's scalar kinds.
type Primitive int

const (
	Void Primitive = iota
	Nil
	Bool
	Byte
	Char
	Int
	Int32
	Uint
	Uint32
	Long
	Float
	Double
	String
	Any
)

func (p Primitive) String() string {
	switch p {
	case Void:
		return "void"
	case Nil:
		return "nil"
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Int:
		return "int"
	case Int32:
		return "int32"
	case Uint:
		return "uint"
	case Uint32:
		return "uint32"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "str"
	case Any:
		return "any"
	default:
		return "primitive(?)"
	}
}

// MemQual is the memory qualifier attached to a parameter or declaration.
type MemQual int

const (
	Default MemQual = iota
	AsVal
	AsRef
	Shared
	Private
)

// Kind discriminates the Type sum's active variant.
type Kind int

const (
	KindPrimitive Kind = iota
	KindArray
	KindPointer
	KindFunction
	KindStruct
	KindOpaque
	KindNamed
)

// StructField is one member of a Struct type. Offset is computed by the
// layout engine and is meaningless until the owning Struct's Laid out
// field is true.
type StructField struct {
	Name         string
	Type         *Type
	Offset       int
	DefaultValue Expr // nil if absent
	CAlias       string
}

// Expr is satisfied by internal/ast.Expr; types only needs an opaque
// handle to carry a default-value initializer without importing ast
// (which itself references types.Type), so it is declared as an empty
// interface here and asserted back to ast.Expr by the type checker.
type Expr interface{}

// Function describes a callable type.
type Function struct {
	ReturnType    *Type
	Params        []*Type
	ParamMemQuals []MemQual
	IsNative      bool
	IsVariadic    bool
}

// Struct describes a struct type. Name is empty for an anonymous struct
// literal type (not currently produced by the parser, but modeled for
// completeness). Size/Alignment/Laid out are populated by the layout
// engine exactly once, after circular-dependency detection passes.
type Struct struct {
	Name       string
	Fields     []StructField
	Size       int
	Alignment  int
	IsNative   bool
	IsPacked   bool
	PackValue  int // 0 means "natural" (no #pragma pack in effect)
	LaidOut    bool
}

// Type is the sum type for the Language's static types. Exactly the
// fields matching Kind are meaningful; the rest are zero values.
type Type struct {
	Kind Kind

	Primitive Primitive // KindPrimitive

	Element *Type // KindArray: element type

	Base *Type // KindPointer: pointee type

	Function *Function // KindFunction

	Struct *Struct // KindStruct

	OpaqueName string // KindOpaque

	NamedRef string // KindNamed: symbol name, resolved during type checking
}

func NewPrimitive(p Primitive) *Type { return &Type{Kind: KindPrimitive, Primitive: p} }
func NewArray(element *Type) *Type   { return &Type{Kind: KindArray, Element: element} }
func NewPointer(base *Type) *Type    { return &Type{Kind: KindPointer, Base: base} }
func NewOpaque(name string) *Type    { return &Type{Kind: KindOpaque, OpaqueName: name} }
func NewNamed(name string) *Type     { return &Type{Kind: KindNamed, NamedRef: name} }

func NewFunction(returnType *Type, params []*Type, quals []MemQual, isNative, isVariadic bool) *Type {
	return &Type{Kind: KindFunction, Function: &Function{
		ReturnType:    returnType,
		Params:        params,
		ParamMemQuals: quals,
		IsNative:      isNative,
		IsVariadic:    isVariadic,
	}}
}

func NewStruct(name string, fields []StructField, isNative, isPacked bool, packValue int) *Type {
	return &Type{Kind: KindStruct, Struct: &Struct{
		Name:      name,
		Fields:    fields,
		IsNative:  isNative,
		IsPacked:  isPacked,
		PackValue: packValue,
	}}
}

var (
	VoidType   = NewPrimitive(Void)
	NilType    = NewPrimitive(Nil)
	BoolType   = NewPrimitive(Bool)
	ByteType   = NewPrimitive(Byte)
	CharType   = NewPrimitive(Char)
	IntType    = NewPrimitive(Int)
	Int32Type  = NewPrimitive(Int32)
	UintType   = NewPrimitive(Uint)
	Uint32Type = NewPrimitive(Uint32)
	LongType   = NewPrimitive(Long)
	FloatType  = NewPrimitive(Float)
	DoubleType = NewPrimitive(Double)
	StringType = NewPrimitive(String)
	AnyType    = NewPrimitive(Any)
)

// IsPrimitiveType reports whether t is a scalar primitive.
func IsPrimitiveType(t *Type) bool {
	return t != nil && t.Kind == KindPrimitive
}

// IsNumericType reports whether t participates in arithmetic promotion.
func IsNumericType(t *Type) bool {
	if !IsPrimitiveType(t) {
		return false
	}
	switch t.Primitive {
	case Byte, Int, Int32, Uint, Uint32, Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsReferenceType reports whether t is a heap/reference-shaped type
// (array or string) that a `private` function is restricted from
// returning.
func IsReferenceType(t *Type) bool {
	if t == nil {
		return false
	}
	if t.Kind == KindArray {
		return true
	}
	return IsPrimitiveType(t) && t.Primitive == String
}

// IsPrintableType reports whether t has an intrinsic textual rendering.
func IsPrintableType(t *Type) bool {
	if !IsPrimitiveType(t) {
		return false
	}
	switch t.Primitive {
	case Void, Nil:
		return false
	default:
		return true
	}
}

// IsCCompatibleType reports whether t can cross a native ABI boundary
// directly: any primitive except Any, plus pointers and opaque handles.
func IsCCompatibleType(t *Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindPointer, KindOpaque:
		return true
	case KindPrimitive:
		return t.Primitive != Any
	case KindStruct:
		return t.Struct != nil && t.Struct.IsNative
	default:
		return false
	}
}

// IsVariadicCompatibleType reports whether t may flow into a variadic
// call's trailing arguments: primitives and string, but not Void.
func IsVariadicCompatibleType(t *Type) bool {
	if !IsPrimitiveType(t) {
		return false
	}
	return t.Primitive != Void
}

// IsOpaqueType reports whether t is an opaque handle.
func IsOpaqueType(t *Type) bool { return t != nil && t.Kind == KindOpaque }

// AstTypeIsStruct reports whether t is a struct type.
func AstTypeIsStruct(t *Type) bool { return t != nil && t.Kind == KindStruct }

// AstStructGetField finds a field by name, or nil if absent or t is not
// a struct.
func AstStructGetField(t *Type, name string) *StructField {
	if !AstTypeIsStruct(t) {
		return nil
	}
	for i := range t.Struct.Fields {
		if t.Struct.Fields[i].Name == name {
			return &t.Struct.Fields[i]
		}
	}
	return nil
}

// AstStructGetFieldIndex finds a field's declaration index by name, or -1.
func AstStructGetFieldIndex(t *Type, name string) int {
	if !AstTypeIsStruct(t) {
		return -1
	}
	for i := range t.Struct.Fields {
		if t.Struct.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// AstTypeEquals reports structural equality between two types. Struct
// equality is by name (nominal), which sidesteps infinite recursion on
// self-referential struct graphs; every other variant compares
// structurally and recurses into at most one nested type.
func AstTypeEquals(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPrimitive:
		return a.Primitive == b.Primitive
	case KindArray:
		return AstTypeEquals(a.Element, b.Element)
	case KindPointer:
		return AstTypeEquals(a.Base, b.Base)
	case KindOpaque:
		return a.OpaqueName == b.OpaqueName
	case KindNamed:
		return a.NamedRef == b.NamedRef
	case KindStruct:
		if a.Struct == nil || b.Struct == nil {
			return a.Struct == b.Struct
		}
		if a.Struct.Name != "" || b.Struct.Name != "" {
			return a.Struct.Name == b.Struct.Name
		}
		return structFieldsEqual(a.Struct.Fields, b.Struct.Fields)
	case KindFunction:
		return functionEquals(a.Function, b.Function)
	default:
		return false
	}
}

func structFieldsEqual(a, b []StructField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !AstTypeEquals(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}

func functionEquals(a, b *Function) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsNative != b.IsNative || a.IsVariadic != b.IsVariadic || len(a.Params) != len(b.Params) {
		return false
	}
	if !AstTypeEquals(a.ReturnType, b.ReturnType) {
		return false
	}
	for i := range a.Params {
		if !AstTypeEquals(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies t. Struct variants are never followed into their
// field types beyond one level of nominal reference: a struct field
// whose type is itself a named struct reference is cloned as a shallow
// pointer copy, not recursively walked, so a self-referential struct
// (Node.next: Node) cannot drive Clone into infinite recursion. Callers
// that need the full field graph should look the struct up in the type
// registry by name instead of cloning through it.
func Clone(t *Type) *Type {
	if t == nil {
		return nil
	}
	clone := *t
	switch t.Kind {
	case KindArray:
		clone.Element = Clone(t.Element)
	case KindPointer:
		clone.Base = Clone(t.Base)
	case KindFunction:
		if t.Function != nil {
			fn := *t.Function
			fn.ReturnType = Clone(t.Function.ReturnType)
			fn.Params = make([]*Type, len(t.Function.Params))
			for i, p := range t.Function.Params {
				fn.Params[i] = Clone(p)
			}
			clone.Function = &fn
		}
	case KindStruct:
		// Intentionally not deep: see doc comment above.
		clone.Struct = t.Struct
	}
	return &clone
}
