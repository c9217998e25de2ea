// Package interp is the tree-walking evaluator: a recursive
// expression/statement walker over the parsed syntax tree, plus the
// call protocol shared by user functions and host-provided natives.
// Interpreter state (environment, output writer, error flag) lives on
// the receiver rather than in package globals, so independent programs
// can run against independent interpreters.
package interp

import (
	"io"

	"github.com/maximvlas/flsgo/internal/ast"
	"github.com/maximvlas/flsgo/internal/runtime"
	"github.com/maximvlas/flsgo/internal/value"
)

// InterpretResult is the status an execute/interpret call reports, used
// both as ordinary control flow (OK vs RETURN, to unwind a function
// call) and as the top-level success/failure signal.
type InterpretResult int

const (
	InterpretOK InterpretResult = iota
	InterpretCompileError
	InterpretRuntimeError
	InterpretReturn
)

func (r InterpretResult) String() string {
	switch r {
	case InterpretOK:
		return "OK"
	case InterpretCompileError:
		return "COMPILE_ERROR"
	case InterpretRuntimeError:
		return "RUNTIME_ERROR"
	case InterpretReturn:
		return "RETURN"
	default:
		return "UNKNOWN"
	}
}

// Interpreter executes parsed statements and manages the runtime
// environment, string intern table, and object heap. One Interpreter
// corresponds to one program run; it is not reused across unrelated
// programs because the global environment and intern table accumulate
// state as the program runs.
type Interpreter struct {
	globals *runtime.Environment
	env     *runtime.Environment
	strings *value.Table
	heap    *runtime.Heap
	output  io.Writer

	hadRuntimeError bool
	lastError       *RuntimeError
	returnValue     value.Value
	callDepth       int
}

// maxCallDepth bounds recursive call nesting so runaway recursion fails
// with a runtime error instead of exhausting the goroutine stack.
const maxCallDepth = 255

// New creates an Interpreter that writes `print` output to w and
// registers the always-available native functions.
func New(w io.Writer) *Interpreter {
	globals := runtime.NewEnvironment()
	i := &Interpreter{
		globals: globals,
		env:     globals,
		strings: value.NewTable(),
		heap:    runtime.NewHeap(),
		output:  w,
	}
	registerNatives(i)
	return i
}

// Intern returns the canonical *value.StringObj for s. Strings live in
// the intern table, not on the object heap: the table owns the single
// canonical copy, and pointer identity is what makes string equality a
// pointer comparison everywhere else in the runtime.
func (i *Interpreter) Intern(s string) *value.StringObj {
	return i.strings.Copy([]byte(s))
}

// LiveObjects reports how many heap objects the interpreter has
// allocated so far; exposed for diagnostics and tests.
func (i *Interpreter) LiveObjects() int {
	return i.heap.Live()
}

// LastError returns the RuntimeError that stopped execution, or nil if
// the interpreter never hit one (or hasn't run yet).
func (i *Interpreter) LastError() *RuntimeError {
	return i.lastError
}

// ResetError clears the sticky runtime-error flag so a fresh Interpret
// call can run again. Error stickiness is scoped to a single program
// run; a REPL reusing one Interpreter's environment across lines calls
// this between Interpret invocations, since each line is its own
// top-level run.
func (i *Interpreter) ResetError() {
	i.hadRuntimeError = false
	i.lastError = nil
}

// Interpret runs a parsed program's statements top to bottom. A nil
// statement list (the parser's signal for "had a compile error")
// short-circuits to InterpretCompileError without evaluating anything,
// and the first runtime error stops the run at InterpretRuntimeError.
func (i *Interpreter) Interpret(statements []ast.Stmt) InterpretResult {
	if statements == nil {
		return InterpretCompileError
	}

	for _, stmt := range statements {
		i.execute(stmt)
		if i.hadRuntimeError {
			return InterpretRuntimeError
		}
	}
	return InterpretOK
}

// Close releases the resources the interpreter's run accumulated.
// Go's collector reclaims the heap-tracked objects and environments on
// its own; Close exists so callers have one symmetrical lifecycle call
// to pair with New, even though its body has nothing left to do.
func (i *Interpreter) Close() {}

// runtimeError records the first runtime error the interpreter hits.
// Once hadRuntimeError is set, evaluate/execute short-circuit on every
// subsequent call, so exactly one error is reported per run and no
// further side effects are observable.
func (i *Interpreter) runtimeError(err *RuntimeError) {
	if i.hadRuntimeError {
		return
	}
	i.hadRuntimeError = true
	i.lastError = err
}
