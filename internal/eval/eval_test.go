package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/go-lispy/internal/boot"
	"github.com/cwbudde/go-lispy/internal/builtin"
	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/value"
)

func mustEnv(t *testing.T) *value.Environment {
	t.Helper()
	env, err := boot.NewGlobalEnvironment()
	if err != nil {
		t.Fatalf("boot.NewGlobalEnvironment: %v", err)
	}
	return env
}

func evalLine(t *testing.T, env *value.Environment, src string) value.Value {
	t.Helper()
	form := parser.ParseLine(src)
	return Eval(form, env)
}

func TestEvalArithmetic(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "(+ 1 (* 2 3))")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 7 {
		t.Fatalf("got %#v, want Integer(7)", got)
	}
}

func TestEvalUnboundSymbol(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "undefined-name")
	e, ok := got.(*value.Error)
	if !ok || e.Message != "Unbound symbol: 'undefined-name'" {
		t.Fatalf("got %#v, want Unbound symbol error", got)
	}
}

func TestEvalErrorPropagatesThroughSExpr(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "(+ 1 (/ 1 0))")
	if _, ok := got.(*value.Error); !ok {
		t.Fatalf("got %#v, want Error to propagate", got)
	}
}

func TestEvalQExprSelfEvaluates(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "{+ 1 2}")
	q, ok := got.(*value.QExpr)
	if !ok || len(q.Children) != 3 {
		t.Fatalf("got %#v, want unevaluated QExpr of 3", got)
	}
}

func TestDefBindsGlobally(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(def {x} 10)")
	got := evalLine(t, env, "x")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 10 {
		t.Fatalf("got %#v, want Integer(10)", got)
	}
}

func TestLambdaFullApplication(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(def {add} (\\ {x y} {+ x y}))")
	got := evalLine(t, env, "(add 3 4)")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 7 {
		t.Fatalf("got %#v, want Integer(7)", got)
	}
}

func TestLambdaPartialApplication(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(def {add} (\\ {x y} {+ x y}))")
	got := evalLine(t, env, "(add 3)")
	l, ok := got.(*value.Lambda)
	if !ok {
		t.Fatalf("got %#v, want a partially applied Lambda", got)
	}
	if len(l.Formals) != 1 || l.Formals[0] != "y" {
		t.Fatalf("remaining formals = %v, want [y]", l.Formals)
	}

	callEnv := mustEnv(t)
	completed := Apply(l, []value.Value{&value.Integer{Value: 10}}, callEnv)
	n, ok := completed.(*value.Integer)
	if !ok || n.Value != 13 {
		t.Fatalf("completed = %#v, want Integer(13)", completed)
	}
}

func TestLambdaVariadic(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(def {pack} (\\ {f & xs} {f xs}))")
	got := evalLine(t, env, "(pack list 1 2 3)")
	q, ok := got.(*value.QExpr)
	if !ok || len(q.Children) != 1 {
		t.Fatalf("got %#v, want a single-child QExpr wrapping the rest-list", got)
	}
}

func TestLambdaBodyResolvesFreeNamesThroughTheCaller(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(fun {make-adder n} {\\ {x} {+ x n}})")
	evalLine(t, env, "(fun {use-adder n val} {((make-adder n) val)})")
	got := evalLine(t, env, "(use-adder 5 10)")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 15 {
		t.Fatalf("got %#v, want Integer(15)", got)
	}
}

func TestIfSelectsBranchWithoutEvaluatingTheOther(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, `(if 1 {1} {(error "should not run")})`)
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 1 {
		t.Fatalf("got %#v, want Integer(1)", got)
	}
}

func TestEvalPrimRunsQExprAsCode(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "(eval {+ 1 2})")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 3 {
		t.Fatalf("got %#v, want Integer(3)", got)
	}
}

func TestLoadReportsPerFormErrorsAndKeepsGoingWithEmptyResult(t *testing.T) {
	env := mustEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lispy")
	src := "(def {a} 1)\n(+ a \"x\")\n(def {b} 2)\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	old := builtin.Stdout
	builtin.Stdout = &buf
	defer func() { builtin.Stdout = old }()

	got := evalLine(t, env, `(load "`+path+`")`)
	if s, ok := got.(*value.SExpr); !ok || len(s.Children) != 0 {
		t.Fatalf("load result = %#v, want empty SExpr", got)
	}
	if !strings.Contains(buf.String(), "incorrect type for argument 2") {
		t.Fatalf("output = %q, want the form-2 error reported", buf.String())
	}

	if n, ok := evalLine(t, env, "b").(*value.Integer); !ok || n.Value != 2 {
		t.Fatalf("b = %#v, want Integer(2), load should not have stopped at form 2", evalLine(t, env, "b"))
	}
}

func TestRecursiveStdlibLen(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "(len {1 2 3 4})")
	n, ok := got.(*value.Integer)
	if !ok || n.Value != 4 {
		t.Fatalf("len = %#v, want Integer(4)", got)
	}
}

func TestStdlibSelect(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, `(fun {classify x} {select {(== x 0) "zero"} {(< x 0) "negative"} {otherwise "positive"}})`)

	cases := map[string]string{
		"0":  "zero",
		"-3": "negative",
		"7":  "positive",
	}
	for input, want := range cases {
		got := evalLine(t, env, "(classify "+input+")")
		txt, ok := got.(*value.Text)
		if !ok || txt.Value != want {
			t.Fatalf("classify(%s) = %#v, want Text(%s)", input, got, want)
		}
	}
}

func TestHelpEnvPrintsBindingsWithDocs(t *testing.T) {
	env := mustEnv(t)
	evalLine(t, env, "(def {x} 5)")
	evalLine(t, env, `(doc {x} "the x binding")`)

	var buf bytes.Buffer
	old := builtin.Stdout
	builtin.Stdout = &buf
	defer func() { builtin.Stdout = old }()

	evalLine(t, env, "(help {env})")
	if !strings.Contains(buf.String(), "x: 5 -- the x binding") {
		t.Fatalf("help env output = %q, want a line documenting x", buf.String())
	}
}

func TestStdlibReverse(t *testing.T) {
	env := mustEnv(t)
	got := evalLine(t, env, "(reverse {1 2 3})")
	q, ok := got.(*value.QExpr)
	if !ok || len(q.Children) != 3 {
		t.Fatalf("got %#v", got)
	}
	if q.Children[0].(*value.Integer).Value != 3 || q.Children[2].(*value.Integer).Value != 1 {
		t.Fatalf("reverse = %v, want {3 2 1}", q.Children)
	}
}
