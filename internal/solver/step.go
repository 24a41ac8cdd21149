package solver

import (
	"strings"

	"github.com/bodmaslab/bodmas-master/internal/token"
	"github.com/bodmaslab/bodmas-master/internal/types/operator"
)

// Step records one applied operation in a walkthrough. Expression holds the
// remaining expression after the operation is collapsed into its result.
type Step struct {
	Index       int
	Op          operator.Operator
	Left        float64
	Right       float64
	Result      float64
	Description string
	Expression  string
}

// Solution is the outcome of evaluating an expression: the final value and
// the ordered steps that produce it.
type Solution struct {
	Expression string
	Value      float64
	Steps      []Step
}

// Render prints a token sequence the way a student would write it,
// e.g. "(2 + 3) * 4".
func Render(tokens []token.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok.Type != token.RPAREN && tokens[i-1].Type != token.LPAREN {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Literal)
	}
	return b.String()
}
