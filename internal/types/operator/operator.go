package operator

import (
	"fmt"

	"github.com/bodmaslab/bodmas-master/internal/apperr"
	"github.com/bodmaslab/bodmas-master/pkg/utils"
)

// Operator represents a binary arithmetic operation in an expression
// Value object following DDD principles with validation and behavior
//
// Usage:
//
//	result, err := operator.Multiply.Apply(4, 2)
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

func Parse(s string) (Operator, error) {
	op := Operator(s)
	switch op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator: %q (must be one of +, -, *, /)", s)
	}
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(o)
}

// Precedence returns the binding strength under BODMAS rules.
// Multiplication and division bind tighter than addition and subtraction.
func (o Operator) Precedence() int {
	if o.IsMulDiv() {
		return 2
	}
	return 1
}

// IsMulDiv returns true if the operator is multiplication or division
func (o Operator) IsMulDiv() bool {
	return o == Multiply || o == Divide
}

// IsAddSub returns true if the operator is addition or subtraction
func (o Operator) IsAddSub() bool {
	return o == Add || o == Subtract
}

// Apply computes the result of applying the operator to two operands.
// Dividing by zero returns an apperr.DivisionByZeroError.
func (o Operator) Apply(left, right float64) (float64, error) {
	switch o {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		if right == 0 {
			return 0, apperr.NewDivisionByZero("Division by zero is not allowed")
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("invalid operator: %q", o)
	}
}

// Describe returns the plain-language sentence for one applied operation.
func (o Operator) Describe(left, right, result float64) string {
	l, r, res := utils.FormatNumber(left), utils.FormatNumber(right), utils.FormatNumber(result)

	switch o {
	case Add:
		return fmt.Sprintf("Add %s and %s to get %s", l, r, res)
	case Subtract:
		return fmt.Sprintf("Subtract %s from %s to get %s", r, l, res)
	case Multiply:
		return fmt.Sprintf("Multiply %s and %s to get %s", l, r, res)
	case Divide:
		return fmt.Sprintf("Divide %s by %s to get %s", l, r, res)
	default:
		return ""
	}
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	if o != Add && o != Subtract && o != Multiply && o != Divide {
		return fmt.Errorf("invalid operator: %q (must be one of +, -, *, /)", o)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
