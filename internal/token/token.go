package token

type Type int

const (
	EOF Type = iota
	NUMBER
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, literal text and position
// in the input expression. NUMBER tokens carry the parsed value.
type Token struct {
	Type    Type
	Literal string
	Value   float64
	Pos     int
}
