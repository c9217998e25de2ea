package builtins

import (
	"math"

	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/value"
)

// RegisterMath wires the sqrt/sin/cos/tan/abs natives.
func RegisterMath(i *interp.Interpreter) {
	unary := func(name string, fn func(float64) float64) {
		i.DefineNative(name, 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
			if len(args) != 1 || !value.IsNumber(args[0]) {
				reportError("%s() expects one number argument.", name)
				return value.NilValue
			}
			return value.NumberVal(fn(value.AsNumber(args[0])))
		})
	}

	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("abs", math.Abs)
}
