// Package parser turns a token stream from internal/lexer into the
// value.Value forms the evaluator works on. The grammar is tiny: an
// s-expression is "(" form* ")", a q-expression is "{" form* "}", and
// every other token is an atom (an integer, a string, or a symbol).
package parser

import (
	"strconv"

	"github.com/cwbudde/go-lispy/internal/lexer"
	"github.com/cwbudde/go-lispy/internal/value"
)

type parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

func newParser(input string) *parser {
	p := &parser{lex: lexer.New(input)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.cur = p.lex.NextToken()
}

// ParseProgram parses file-mode input: zero or more top-level forms.
// Anything outside of a parenthesized form at the top level is skipped,
// so a file can carry shebang lines or stray prose between forms.
func ParseProgram(input string) []value.Value {
	p := newParser(input)

	var forms []value.Value
	for p.cur.Type != lexer.EOF {
		if p.cur.Type != lexer.LPAREN {
			p.advance()
			continue
		}
		forms = append(forms, p.parseForm())
	}
	return forms
}

// ParseLine parses line-mode input: a single logical form. Multiple
// top-level forms on one line are wrapped in an implicit s-expression;
// a single top-level form is returned unwrapped.
func ParseLine(input string) value.Value {
	p := newParser(input)

	var forms []value.Value
	for p.cur.Type != lexer.EOF {
		forms = append(forms, p.parseForm())
	}

	switch len(forms) {
	case 0:
		return &value.SExpr{}
	case 1:
		return forms[0]
	default:
		return &value.SExpr{Children: forms}
	}
}

func (p *parser) parseForm() value.Value {
	switch p.cur.Type {
	case lexer.LPAREN:
		p.advance()
		children, err := p.parseUntil(lexer.RPAREN, lexer.RBRACE, "Expected )", "Unexpected }")
		if err != nil {
			return err
		}
		return &value.SExpr{Children: children}

	case lexer.LBRACE:
		p.advance()
		children, err := p.parseUntil(lexer.RBRACE, lexer.RPAREN, "Expected }", "Unexpected )")
		if err != nil {
			return err
		}
		return &value.QExpr{Children: children}

	case lexer.RPAREN:
		p.advance()
		return value.NewError("Unexpected )")

	case lexer.RBRACE:
		p.advance()
		return value.NewError("Unexpected }")

	case lexer.STRING:
		lit := p.cur.Literal
		p.advance()
		return &value.Text{Value: lit}

	case lexer.ILLEGAL:
		lit := p.cur.Literal
		p.advance()
		return value.NewError("%s", lit)

	case lexer.ATOM:
		lit := p.cur.Literal
		p.advance()
		return atomValue(lit)

	default: // EOF
		return &value.SExpr{}
	}
}

// parseUntil reads forms until it sees close, returning a parse error if
// it instead hits EOF (unterminated) or mismatch (closed with the wrong
// bracket). The closing token is consumed.
func (p *parser) parseUntil(close, mismatch lexer.Type, unterminatedMsg, mismatchMsg string) ([]value.Value, *value.Error) {
	var children []value.Value
	for {
		switch p.cur.Type {
		case close:
			p.advance()
			return children, nil
		case lexer.EOF:
			return nil, value.NewError("%s", unterminatedMsg)
		case mismatch:
			p.advance()
			return nil, value.NewError("%s", mismatchMsg)
		default:
			children = append(children, p.parseForm())
		}
	}
}

func atomValue(lit string) value.Value {
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return &value.Integer{Value: n}
	}
	return &value.Symbol{Name: lit}
}
