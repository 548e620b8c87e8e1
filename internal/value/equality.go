package value

// Equal implements structural, tag-sensitive equality (spec §3):
// different tags never equal; Lambda equality ignores the closure
// environment; BuiltinFunction equality compares only the name.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}

	switch av := a.(type) {
	case *Error:
		return av.Message == b.(*Error).Message
	case *Integer:
		return av.Value == b.(*Integer).Value
	case *Text:
		return av.Value == b.(*Text).Value
	case *Symbol:
		return av.Name == b.(*Symbol).Name
	case *SExpr:
		return equalChildren(av.Children, b.(*SExpr).Children)
	case *QExpr:
		return equalChildren(av.Children, b.(*QExpr).Children)
	case *BuiltinFunction:
		return av.Name == b.(*BuiltinFunction).Name
	case *Lambda:
		bv := b.(*Lambda)
		return equalStrings(av.Formals, bv.Formals) && equalChildren(av.Body, bv.Body)
	default:
		return false
	}
}

func equalChildren(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
