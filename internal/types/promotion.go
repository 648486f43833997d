package types

// numericRank orders the integer family for promotion purposes. Byte
// widens to Int32/Uint32, which widen to Int/Uint, which widen to Long.
var numericRank = map[Primitive]int{
	Byte:   0,
	Int32:  1,
	Uint32: 1,
	Int:    2,
	Uint:   2,
	Long:   3,
}

// PromoteNumeric reports whether a and b may appear together in an
// arithmetic or comparison expression and, if so, the resulting type
// after promotion: int -> long -> double; float -> double; any mix
// involving a double operand yields double. Mixing Int32 and Uint
// directly is explicitly rejected regardless of rank.
func PromoteNumeric(a, b *Type) (*Type, bool) {
	if !IsNumericType(a) || !IsNumericType(b) {
		return nil, false
	}
	ap, bp := a.Primitive, b.Primitive

	if ap == bp {
		return a, true
	}
	if ap == Double || bp == Double {
		return DoubleType, true
	}
	if ap == Float || bp == Float {
		return DoubleType, true
	}
	if (ap == Int32 && bp == Uint) || (ap == Uint && bp == Int32) {
		return nil, false
	}

	ra, raOK := numericRank[ap]
	rb, rbOK := numericRank[bp]
	if !raOK || !rbOK {
		return nil, false
	}
	if ra >= rb {
		return a, true
	}
	return b, true
}
