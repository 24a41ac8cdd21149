package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bodmaslab/bodmas-master/internal/apperr"
)

type ExprTokenizer struct {
	input []rune
	pos   int
}

func NewExprTokenizer() *ExprTokenizer {
	return &ExprTokenizer{}
}

// Tokenize converts the input expression into a slice of Tokens.
// Example: Input: `(3 + 4) * 2.5`
func (t *ExprTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(strings.TrimSpace(input))
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Literal: "(", Pos: t.pos})
			t.pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Literal: ")", Pos: t.pos})
			t.pos++
		case isOperatorChar(ch):
			tokens = append(tokens, Token{Type: OPERATOR, Literal: string(ch), Pos: t.pos})
			t.pos++
		case isNumberChar(ch):
			tok, err := t.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, apperr.NewSyntax(fmt.Sprintf("invalid character %q at position %d", ch, t.pos))
		}
		t.skipWhitespace()
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(t.input)})
	return tokens, nil
}

func (t *ExprTokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *ExprTokenizer) readNumber() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isNumberChar(t.input[t.pos]) {
		t.pos++
	}

	literal := string(t.input[start:t.pos])

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Token{}, apperr.NewSyntax(fmt.Sprintf("malformed number %q at position %d", literal, start))
	}

	return Token{Type: NUMBER, Literal: literal, Value: value, Pos: start}, nil
}

func isOperatorChar(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func isNumberChar(ch rune) bool {
	return unicode.IsDigit(ch) || ch == '.'
}

// Validate checks the token sequence for structural errors before evaluation.
func (t *ExprTokenizer) Validate(tokens []Token) error {
	depth := 0
	hasNumber := false

	for i, tok := range tokens {
		if tok.Type == EOF {
			break
		}

		switch tok.Type {
		case NUMBER:
			hasNumber = true
			if i > 0 {
				prev := tokens[i-1].Type
				if prev == NUMBER || prev == RPAREN {
					return apperr.NewSyntax(fmt.Sprintf("missing operator before %q at position %d", tok.Literal, tok.Pos))
				}
			}
		case LPAREN:
			depth++
			if i > 0 {
				prev := tokens[i-1].Type
				if prev == NUMBER || prev == RPAREN {
					return apperr.NewSyntax(fmt.Sprintf("missing operator before opening parenthesis at position %d", tok.Pos))
				}
			}
			if i+1 < len(tokens) && tokens[i+1].Type == RPAREN {
				return apperr.NewSyntax("empty parentheses")
			}
		case RPAREN:
			depth--
			if depth < 0 {
				return apperr.NewSyntax(fmt.Sprintf("unexpected closing parenthesis at position %d", tok.Pos))
			}
		case OPERATOR:
			if i == 0 {
				return apperr.NewSyntax(fmt.Sprintf("expression cannot start with %s", tok.Literal))
			}
			prev := tokens[i-1].Type
			if prev != NUMBER && prev != RPAREN {
				return apperr.NewSyntax(fmt.Sprintf("unexpected operator %s at position %d", tok.Literal, tok.Pos))
			}
			if i+1 >= len(tokens) || (tokens[i+1].Type != NUMBER && tokens[i+1].Type != LPAREN) {
				return apperr.NewSyntax(fmt.Sprintf("operator %s must be followed by a number or group", tok.Literal))
			}
		default:
			return apperr.NewSyntax(fmt.Sprintf("invalid token: %s", tok.Literal))
		}
	}

	if depth != 0 {
		return apperr.NewSyntax(fmt.Sprintf("unbalanced parentheses: %d unclosed", depth))
	}

	if !hasNumber {
		return apperr.NewSyntax("expression must contain at least one number")
	}

	return nil
}
