package typechecker

import "github.com/SindarinSDK/sindarin-compiler-sub000/internal/types"

// compatibleAssign reports whether a value of type actual may be
// assigned to (or passed/returned as) a location declared as declared,
// and if so the type the value is promoted to. nil on either side is
// always treated as "already reported elsewhere" and considered
// compatible, so one missing type doesn't cascade into a second error.
func compatibleAssign(declared, actual *types.Type) (*types.Type, bool) {
	if declared == nil || actual == nil {
		return declared, true
	}
	if types.AstTypeEquals(declared, actual) {
		return declared, true
	}
	if declared.Kind == types.KindPrimitive && declared.Primitive == types.Any {
		return declared, true
	}
	if types.IsPrimitiveType(actual) && actual.Primitive == types.Nil &&
		(declared.Kind == types.KindPointer || (types.IsPrimitiveType(declared) && declared.Primitive == types.String)) {
		return declared, true
	}
	if promoted, ok := types.PromoteNumeric(declared, actual); ok {
		return promoted, true
	}
	return nil, false
}
