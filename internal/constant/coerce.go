package constant

// ToBool reduces a Constant to its truthiness: null is false, numbers are
// compared to zero, strings are non-empty, everything else is truthy.
func ToBool(c Constant) bool {
	switch v := c.(type) {
	case Null:
		return false
	case Int:
		return v.Value != 0
	case Float:
		return v.Value != 0
	case String:
		return v.Value != ""
	default:
		return true
	}
}

// ToFloat widens an Int or Float to float32. ok is false for any other kind.
func ToFloat(c Constant) (float32, bool) {
	switch v := c.(type) {
	case Int:
		return float32(v.Value), true
	case Float:
		return v.Value, true
	default:
		return 0, false
	}
}

// ToInt narrows an Int or truncates a Float to int32. ok is false for any
// other kind.
func ToInt(c Constant) (int32, bool) {
	switch v := c.(type) {
	case Int:
		return v.Value, true
	case Float:
		return int32(v.Value), true
	default:
		return 0, false
	}
}

// EqString reports whether c is a String equal to s.
func EqString(c Constant, s string) bool {
	v, ok := c.(String)
	return ok && v.Value == s
}

// EqResource reports whether c is a String or Resource equal to s.
func EqResource(c Constant, s string) bool {
	switch v := c.(type) {
	case String:
		return v.Value == s
	case Resource:
		return v.Value == s
	default:
		return false
	}
}

// Equal performs the structural equality List.Index/ContainsKey need to
// compare keys. It treats Int and Float as comparable by numeric value,
// exactly as DM's == does for constants of mixed numeric kind.
func Equal(a, b Constant) bool {
	if af, aok := ToFloat(a); aok {
		if bf, bok := ToFloat(b); bok {
			_, aIsInt := a.(Int)
			_, bIsInt := b.(Int)
			if aIsInt && bIsInt {
				return a.(Int).Value == b.(Int).Value
			}
			return af == bf
		}
	}
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Resource:
		bv, ok := b.(Resource)
		return ok && av.Value == bv.Value
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		return false
	}
}
