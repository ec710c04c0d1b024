package encoder

import (
	"fmt"

	"github.com/sj99642/miniasm/parser"
)

// EncodingError provides instruction context for an encoding failure: the
// line it came from and the underlying error. A *parser.Error is never
// wrapped in one (see WrapEncodingError).
type EncodingError struct {
	Line    int
	Message string
	Wrapped error
}

func (e *EncodingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

func NewEncodingError(line int, message string) *EncodingError {
	return &EncodingError{Line: line, Message: message}
}

// WrapEncodingError wraps err with instruction-line context, unless err is
// already an EncodingError or a *parser.Error (which already carries its
// own line number and renders the external-contract diagnostic directly).
func WrapEncodingError(line int, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*EncodingError); ok {
		return err
	}
	if _, ok := err.(*parser.Error); ok {
		return err
	}
	return &EncodingError{Line: line, Message: "failed to encode instruction", Wrapped: err}
}
