// Package builtins registers the optional native-function families on
// top of the one native internal/interp wires unconditionally (clock).
// Each Register* call is independent so a driver can opt into only the
// families it wants.
package builtins

import (
	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/value"
)

// RegisterSystem wires write/writeln, variadic output natives that join
// multiple arguments with a space, the writeln variant adding a
// trailing newline. They are named write/writeln rather than
// print/println because `print` is already a statement keyword at the
// lexer level, which would make a same-named native uncallable.
func RegisterSystem(i *interp.Interpreter) {
	i.DefineNative("write", -1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		writeJoined(i, args)
		return value.NilValue
	})

	i.DefineNative("writeln", -1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		writeJoined(i, args)
		writeOut(i, "\n")
		return value.NilValue
	})
}

func writeJoined(i *interp.Interpreter, args []value.Value) {
	for idx, arg := range args {
		if idx > 0 {
			writeOut(i, " ")
		}
		writeOut(i, value.Print(arg))
	}
}

func writeOut(i *interp.Interpreter, s string) {
	_, _ = i.Output().Write([]byte(s))
}
