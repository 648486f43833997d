// Package circular detects circular struct dependencies by walking the
// value-nested type graph of a struct declaration. It is grounded in
// a depth-first walk with a visit-set over struct names,
// where pointer fields break cycles but array-of-struct does not. The
// walk never clones a type, so a self-referential struct (Node.next:
// Node) cannot drive it into infinite recursion.
package circular

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"

// Detect walks root's fields looking for a cycle in the value-nested
// type graph. It returns (true, chain) if one is found, where chain is
// the path of struct names forming the cycle (e.g. []string{"A", "A"}
// for a direct self-reference, or []string{"A", "B", "A"} for a
// two-struct cycle). It returns (false, nil) for an acyclic graph.
func Detect(root *types.Type) (bool, []string) {
	if !types.AstTypeIsStruct(root) || root.Struct == nil || root.Struct.Name == "" {
		return walkAnonymous(root, nil, map[*types.Struct]bool{})
	}
	visiting := map[string]bool{}
	path := []string{}
	return walk(root, visiting, path)
}

func walk(t *types.Type, visiting map[string]bool, path []string) (bool, []string) {
	if !types.AstTypeIsStruct(t) || t.Struct == nil {
		return false, nil
	}
	name := t.Struct.Name
	if name == "" {
		return walkAnonymous(t, path, map[*types.Struct]bool{})
	}

	if visiting[name] {
		return true, append(append([]string{}, path...), name)
	}

	visiting[name] = true
	path = append(path, name)
	defer delete(visiting, name)

	for _, field := range t.Struct.Fields {
		if fieldBreaksCycle(field.Type) {
			continue
		}
		fieldStruct := valueNestedStruct(field.Type)
		if fieldStruct == nil {
			continue
		}
		if cyclic, chain := walk(fieldStruct, visiting, path); cyclic {
			return true, chain
		}
	}
	return false, nil
}

// walkAnonymous handles the (rare) anonymous-struct case using pointer
// identity instead of name, since an anonymous struct has no name to key
// a visit-set on.
func walkAnonymous(t *types.Type, path []string, visiting map[*types.Struct]bool) (bool, []string) {
	if !types.AstTypeIsStruct(t) || t.Struct == nil {
		return false, nil
	}
	if visiting[t.Struct] {
		return true, append(append([]string{}, path...), "<anonymous>")
	}
	visiting[t.Struct] = true
	defer delete(visiting, t.Struct)
	path = append(path, "<anonymous>")

	for _, field := range t.Struct.Fields {
		if fieldBreaksCycle(field.Type) {
			continue
		}
		fieldStruct := valueNestedStruct(field.Type)
		if fieldStruct == nil {
			continue
		}
		if cyclic, chain := walkAnonymous(fieldStruct, path, visiting); cyclic {
			return true, chain
		}
	}
	return false, nil
}

// fieldBreaksCycle reports whether a field's type cannot participate in
// a value-nesting cycle: pointers are a cycle-breaking edge because they
// do not embed the pointee by value.
func fieldBreaksCycle(t *types.Type) bool {
	return t != nil && t.Kind == types.KindPointer
}

// valueNestedStruct returns the struct type embedded by value within t,
// following through array element types (array-of-struct still nests by
// value), or nil if t does not value-embed a struct.
func valueNestedStruct(t *types.Type) *types.Type {
	for t != nil {
		switch t.Kind {
		case types.KindStruct:
			return t
		case types.KindArray:
			t = t.Element
		default:
			return nil
		}
	}
	return nil
}
