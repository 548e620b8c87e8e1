package value

import (
	"strconv"
	"strings"
)

// Display renders v the user-facing way (spec §4.3): Text prints its
// raw contents; everything else uses the debug form.
func Display(v Value) string {
	if t, ok := v.(*Text); ok {
		return t.Value
	}
	return Debug(v)
}

// Debug renders v in its literal, re-parseable-where-possible form.
func Debug(v Value) string {
	switch x := v.(type) {
	case *Error:
		return "Error: " + x.Message
	case *Integer:
		return strconv.FormatInt(x.Value, 10)
	case *Text:
		return quoteText(x.Value)
	case *Symbol:
		return x.Name
	case *SExpr:
		return "(" + debugJoin(x.Children) + ")"
	case *QExpr:
		return "{" + debugJoin(x.Children) + "}"
	case *BuiltinFunction:
		return x.Name
	case *Lambda:
		return debugLambda(x)
	default:
		return "<unknown>"
	}
}

func debugJoin(vs []Value) string {
	parts := make([]string, len(vs))
	for i, c := range vs {
		parts[i] = Debug(c)
	}
	return strings.Join(parts, " ")
}

func debugLambda(l *Lambda) string {
	formals := make([]string, len(l.Formals))
	copy(formals, l.Formals)
	body := make([]string, len(l.Body))
	for i, b := range l.Body {
		body[i] = Debug(b)
	}

	var sb strings.Builder
	sb.WriteString(`(\ {`)
	sb.WriteString(strings.Join(formals, " "))
	sb.WriteString("} {")
	sb.WriteString(strings.Join(body, " "))
	sb.WriteString("}")

	if l.Env != nil {
		for _, name := range l.Env.Names() {
			bound, _ := l.Env.GetLocal(name)
			sb.WriteString(" ")
			sb.WriteString(name)
			sb.WriteString("=")
			sb.WriteString(Debug(bound))
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// quoteText restores the escape sequences a Text literal's parser would
// have consumed, so Debug output round-trips through the parser.
func quoteText(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
