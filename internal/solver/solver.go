package solver

import (
	"github.com/bodmaslab/bodmas-master/internal/token"
	"github.com/bodmaslab/bodmas-master/internal/types/operator"
	"github.com/bodmaslab/bodmas-master/pkg/utils"
)

// policy selects which operator is applied next during reduction.
type policy int

const (
	// bodmas applies multiplication and division before addition and
	// subtraction, each left to right.
	bodmas policy = iota
	// leftToRight applies operators strictly in order of appearance.
	leftToRight
)

// Solver evaluates arithmetic expressions under BODMAS rules.
// The zero value is usable and safe for concurrent use.
type Solver struct{}

func New() *Solver {
	return &Solver{}
}

// Solve evaluates an expression and returns the final value together with
// the ordered operations that produce it. Parenthesized groups are resolved
// innermost first, then multiplication and division left to right, then
// addition and subtraction left to right. Dividing by zero aborts the whole
// evaluation.
func (s *Solver) Solve(expression string) (*Solution, error) {
	tokens, err := s.prepare(expression)
	if err != nil {
		return nil, err
	}

	var steps []Step
	value, err := s.reduceAll(tokens, bodmas, &steps)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Expression: expression,
		Value:      value,
		Steps:      steps,
	}, nil
}

// SolveLeftToRight evaluates an expression ignoring operator precedence:
// operations are applied strictly left to right, with parentheses still
// resolved first. It models the ignored-precedence misconception.
func (s *Solver) SolveLeftToRight(expression string) (float64, error) {
	tokens, err := s.prepare(expression)
	if err != nil {
		return 0, err
	}
	return s.reduceAll(tokens, leftToRight, nil)
}

// SolveIgnoringBrackets evaluates an expression with all parentheses
// stripped. It models the ignored-brackets misconception.
func (s *Solver) SolveIgnoringBrackets(expression string) (float64, error) {
	tokens, err := s.prepare(expression)
	if err != nil {
		return 0, err
	}

	flat := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == token.LPAREN || tok.Type == token.RPAREN {
			continue
		}
		flat = append(flat, tok)
	}
	return s.reduceAll(flat, bodmas, nil)
}

// prepare tokenizes and validates the expression, returning the token
// sequence without the trailing EOF.
func (s *Solver) prepare(expression string) ([]token.Token, error) {
	tokenizer := token.NewExprTokenizer()
	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	if err := tokenizer.Validate(tokens); err != nil {
		return nil, err
	}
	return tokens[:len(tokens)-1], nil
}

// reduceAll collapses the token sequence one operation at a time until a
// single number remains. When trace is non-nil every applied operation is
// appended to it.
func (s *Solver) reduceAll(tokens []token.Token, p policy, trace *[]Step) (float64, error) {
	work := make([]token.Token, len(tokens))
	copy(work, tokens)
	work = unwrapGroups(work)

	for {
		lo, hi := 0, len(work)
		if open, end := innermostGroup(work); open >= 0 {
			lo, hi = open+1, end
		}

		opIdx := -1
		if p == bodmas {
			for i := lo; i < hi; i++ {
				if work[i].Type != token.OPERATOR {
					continue
				}
				if op := operator.Operator(work[i].Literal); op.IsMulDiv() {
					opIdx = i
					break
				}
			}
		}
		if opIdx < 0 {
			for i := lo; i < hi; i++ {
				if work[i].Type == token.OPERATOR {
					opIdx = i
					break
				}
			}
		}
		if opIdx < 0 {
			break
		}

		var err error
		work, err = s.applyAt(work, opIdx, trace)
		if err != nil {
			return 0, err
		}
	}

	return work[0].Value, nil
}

// applyAt applies the operator at index i to its neighbouring numbers and
// splices the result back into the sequence.
func (s *Solver) applyAt(tokens []token.Token, i int, trace *[]Step) ([]token.Token, error) {
	op, err := operator.Parse(tokens[i].Literal)
	if err != nil {
		return nil, err
	}

	left, right := tokens[i-1].Value, tokens[i+1].Value
	result, err := op.Apply(left, right)
	if err != nil {
		return nil, err
	}

	collapsed := token.Token{
		Type:    token.NUMBER,
		Literal: utils.FormatNumber(result),
		Value:   result,
		Pos:     tokens[i-1].Pos,
	}

	out := make([]token.Token, 0, len(tokens)-2)
	out = append(out, tokens[:i-1]...)
	out = append(out, collapsed)
	out = append(out, tokens[i+2:]...)
	out = unwrapGroups(out)

	if trace != nil {
		*trace = append(*trace, Step{
			Index:       len(*trace) + 1,
			Op:          op,
			Left:        left,
			Right:       right,
			Result:      result,
			Description: op.Describe(left, right, result),
			Expression:  Render(out),
		})
	}

	return out, nil
}

// innermostGroup returns the bounds of the leftmost innermost parenthesized
// group, or -1, -1 when no parentheses remain. The first closing parenthesis
// always pairs with the most recently opened one.
func innermostGroup(tokens []token.Token) (int, int) {
	open := -1
	for i, tok := range tokens {
		switch tok.Type {
		case token.LPAREN:
			open = i
		case token.RPAREN:
			return open, i
		}
	}
	return -1, -1
}

// unwrapGroups removes parentheses that wrap a single number.
func unwrapGroups(tokens []token.Token) []token.Token {
	for {
		idx := -1
		for i := 0; i+2 < len(tokens); i++ {
			if tokens[i].Type == token.LPAREN && tokens[i+1].Type == token.NUMBER && tokens[i+2].Type == token.RPAREN {
				idx = i
				break
			}
		}
		if idx < 0 {
			return tokens
		}

		out := make([]token.Token, 0, len(tokens)-2)
		out = append(out, tokens[:idx]...)
		out = append(out, tokens[idx+1])
		out = append(out, tokens[idx+3:]...)
		tokens = out
	}
}
