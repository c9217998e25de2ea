package interp

import (
	"fmt"

	"github.com/maximvlas/flsgo/pkg/token"
)

// RuntimeError is the language's single runtime-error shape: a source
// position, the offending token's lexeme (when there is one), and a
// message. Rendered as "[line L] Error" then, when the triggering token
// carries a lexeme, " at 'lexeme'", then the message.
type RuntimeError struct {
	Line    int
	Lexeme  string
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Message)
}

// newRuntimeError builds a RuntimeError anchored on tok.
func newRuntimeError(tok token.Token, format string, a ...any) *RuntimeError {
	return &RuntimeError{
		Line:    tok.Line,
		Lexeme:  tok.Lexeme,
		Message: fmt.Sprintf(format, a...),
	}
}
