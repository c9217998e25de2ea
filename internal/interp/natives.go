package interp

import (
	"io"
	"time"

	"github.com/maximvlas/flsgo/internal/ast"
	"github.com/maximvlas/flsgo/internal/runtime"
	"github.com/maximvlas/flsgo/internal/value"
	"github.com/maximvlas/flsgo/pkg/token"
)

// nowSeconds reports the current time as fractional seconds, the Go
// analog of the C standard library's clock()/CLOCKS_PER_SEC.
func nowSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// call dispatches a call expression's already-evaluated callee and
// arguments to either a user *value.FunctionObj or a host
// *value.NativeObj. Arity is checked before the callee runs; calling
// anything else is a runtime error.
func (i *Interpreter) call(paren token.Token, callee value.Value, args []value.Value) value.Value {
	switch fn := callee.(type) {
	case *value.FunctionObj:
		return i.callFunction(paren, fn, args)
	case *value.NativeObj:
		return i.callNative(paren, fn, args)
	default:
		i.runtimeError(newRuntimeError(paren, "Can only call functions and classes."))
		return value.NilValue
	}
}

func (i *Interpreter) callFunction(paren token.Token, fn *value.FunctionObj, args []value.Value) value.Value {
	if len(args) != fn.Arity() {
		i.runtimeError(newRuntimeError(paren, "Expected %d arguments but got %d.", fn.Arity(), len(args)))
		return value.NilValue
	}

	i.callDepth++
	if i.callDepth > maxCallDepth {
		i.callDepth--
		i.runtimeError(newRuntimeError(paren, "Stack overflow."))
		return value.NilValue
	}
	defer func() { i.callDepth-- }()

	// A function's frame is enclosed by the caller's environment at call
	// time, not the environment the function was declared in. Functions
	// are not lexically closed; they see whatever the call site sees.
	frame := runtime.NewEnclosedEnvironment(i.env)
	for idx, param := range fn.Params {
		frame.Define(param, args[idx])
	}

	body, ok := fn.Body.(*ast.Block)
	if !ok {
		i.runtimeError(newRuntimeError(paren, "Corrupt function body."))
		return value.NilValue
	}

	previous := i.env
	i.env = frame
	result := i.executeBlockStatements(body.Statements)
	i.env = previous

	if result == InterpretReturn {
		return i.returnValue
	}
	return value.NilValue
}

func (i *Interpreter) callNative(paren token.Token, fn *value.NativeObj, args []value.Value) value.Value {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		i.runtimeError(newRuntimeError(paren, "Expected %d arguments but got %d.", fn.Arity, len(args)))
		return value.NilValue
	}
	return fn.Fn(args, func(format string, a ...any) {
		i.runtimeError(newRuntimeError(paren, format, a...))
	})
}

// DefineNative registers a native function in the interpreter's global
// scope. Exported so internal/builtins can register its function
// families without this package needing to import builtins back (which
// would cycle); cmd/fls wires New() followed by the builtins.Register*
// calls.
func (i *Interpreter) DefineNative(name string, arity int, fn value.NativeFn) {
	native := i.heap.TrackNative(&value.NativeObj{Name: name, Fn: fn, Arity: arity})
	i.globals.Define(i.Intern(name), native)
}

// Output returns the writer `print` and the IO natives write to.
func (i *Interpreter) Output() io.Writer {
	return i.output
}

// registerNatives installs the one native every interpreter carries
// unconditionally: clock(), returning elapsed seconds as a number.
// Everything else (io, math, strings) is optional standard-library
// surface that internal/builtins registers separately.
func registerNatives(i *Interpreter) {
	start := nowSeconds()
	i.DefineNative("clock", 0, func(args []value.Value, reportError func(string, ...any)) value.Value {
		return value.NumberVal(nowSeconds() - start)
	})
}
