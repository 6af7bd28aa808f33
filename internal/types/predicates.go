package types

// AssignableTo reports whether a value of type v may be stored where type t
// is expected. Identical types are assignable; int widens to float.
func AssignableTo(v, t Type) bool {
	if v == Invalid || t == Invalid || v == Void || t == Void {
		return false
	}
	if v == t {
		return true
	}
	return v == Int && t == Float
}

// BinaryResult returns the type of x op y for arithmetic operands.
// Float wins over int; any other combination is Invalid.
func BinaryResult(x, y Type) Type {
	if !x.IsNumeric() || !y.IsNumeric() {
		return Invalid
	}
	if x == Float || y == Float {
		return Float
	}
	return Int
}

// Comparable reports whether values of type x and y may be compared with
// == and !=.
func Comparable(x, y Type) bool {
	if x.IsNumeric() && y.IsNumeric() {
		return true
	}
	return x == y && (x == Bool || x == String)
}

// Ordered reports whether values of type x and y may be compared with
// <, <=, > and >=.
func Ordered(x, y Type) bool {
	return x.IsNumeric() && y.IsNumeric()
}
