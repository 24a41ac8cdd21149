package apperr

import "errors"

// Kind values are the stable, machine-readable error categories exposed
// on the wire and in CLI output.
const (
	KindSyntax         = "SyntaxError"
	KindDivisionByZero = "DivisionByZero"
)

type SyntaxError struct {
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func NewSyntax(msg string) *SyntaxError {
	return &SyntaxError{Message: msg}
}

func NewSyntaxWrap(msg string, err error) *SyntaxError {
	return &SyntaxError{Message: msg, Err: err}
}

type DivisionByZeroError struct {
	Message string
}

func (e *DivisionByZeroError) Error() string {
	return e.Message
}

func NewDivisionByZero(msg string) *DivisionByZeroError {
	return &DivisionByZeroError{Message: msg}
}

// Kind reports the taxonomy kind of err, or "" when err carries none.
func Kind(err error) string {
	var se *SyntaxError
	if errors.As(err, &se) {
		return KindSyntax
	}
	var dz *DivisionByZeroError
	if errors.As(err, &dz) {
		return KindDivisionByZero
	}
	return ""
}
