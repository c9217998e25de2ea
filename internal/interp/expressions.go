package interp

import (
	"github.com/maximvlas/flsgo/internal/ast"
	"github.com/maximvlas/flsgo/internal/value"
	"github.com/maximvlas/flsgo/pkg/token"
)

// evaluate walks an expression node. Every branch rechecks
// i.hadRuntimeError immediately after evaluating a sub-expression, so
// an error in a subtree suppresses all further evaluation and side
// effects on the way back out.
func (i *Interpreter) evaluate(expr ast.Expr) value.Value {
	if i.hadRuntimeError {
		return value.NilValue
	}

	switch e := expr.(type) {
	case *ast.Literal:
		return i.literalValue(e)
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Variable:
		return i.evalVariable(e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Call:
		return i.evalCall(e)
	default:
		return value.NilValue
	}
}

// literalValue converts the parser's `any`-typed literal payload
// (float64, string, bool, nil) into a runtime Value, interning string
// literals so every occurrence of the same text shares one StringObj.
func (i *Interpreter) literalValue(lit *ast.Literal) value.Value {
	switch v := lit.Value.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.BoolVal(v)
	case float64:
		return value.NumberVal(v)
	case string:
		return i.Intern(v)
	default:
		return value.NilValue
	}
}

func (i *Interpreter) evalVariable(e *ast.Variable) value.Value {
	name := i.Intern(e.Name.Lexeme)
	v, ok := i.env.Get(name)
	if !ok {
		i.runtimeError(newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme))
		return value.NilValue
	}
	return v
}

func (i *Interpreter) evalAssign(e *ast.Assign) value.Value {
	v := i.evaluate(e.Value)
	if i.hadRuntimeError {
		return value.NilValue
	}
	name := i.Intern(e.Name.Lexeme)
	if err := i.env.Assign(name, v); err != nil {
		i.runtimeError(newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme))
		return value.NilValue
	}
	return v
}

func (i *Interpreter) evalLogical(e *ast.Logical) value.Value {
	left := i.evaluate(e.Left)
	if i.hadRuntimeError {
		return value.NilValue
	}

	if e.Operator.Type == token.OR {
		if value.Truthy(left) {
			return left
		}
	} else {
		if !value.Truthy(left) {
			return left
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.Unary) value.Value {
	right := i.evaluate(e.Right)
	if i.hadRuntimeError {
		return value.NilValue
	}

	switch e.Operator.Type {
	case token.BANG:
		return value.BoolVal(!value.Truthy(right))
	case token.MINUS:
		if !value.IsNumber(right) {
			i.runtimeError(newRuntimeError(e.Operator, "Operand must be a number."))
			return value.NilValue
		}
		return value.NumberVal(-value.AsNumber(right))
	default:
		return value.NilValue
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) value.Value {
	left := i.evaluate(e.Left)
	if i.hadRuntimeError {
		return value.NilValue
	}
	right := i.evaluate(e.Right)
	if i.hadRuntimeError {
		return value.NilValue
	}

	op := e.Operator
	switch op.Type {
	case token.GREATER:
		return i.numericCompare(op, left, right, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return i.numericCompare(op, left, right, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return i.numericCompare(op, left, right, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return i.numericCompare(op, left, right, func(a, b float64) bool { return a <= b })
	case token.BANG_EQUAL:
		return value.BoolVal(!value.Equals(left, right))
	case token.EQUAL_EQUAL:
		return value.BoolVal(value.Equals(left, right))
	case token.MINUS:
		return i.numericArith(op, left, right, func(a, b float64) float64 { return a - b })
	case token.PLUS:
		return i.evalPlus(op, left, right)
	case token.SLASH:
		return i.evalDivide(op, left, right)
	case token.STAR:
		return i.numericArith(op, left, right, func(a, b float64) float64 { return a * b })
	default:
		return value.NilValue
	}
}

func (i *Interpreter) numericCompare(op token.Token, left, right value.Value, cmp func(a, b float64) bool) value.Value {
	if !value.IsNumber(left) || !value.IsNumber(right) {
		i.runtimeError(newRuntimeError(op, "Operands must be numbers."))
		return value.NilValue
	}
	return value.BoolVal(cmp(value.AsNumber(left), value.AsNumber(right)))
}

func (i *Interpreter) numericArith(op token.Token, left, right value.Value, fn func(a, b float64) float64) value.Value {
	if !value.IsNumber(left) || !value.IsNumber(right) {
		i.runtimeError(newRuntimeError(op, "Operands must be numbers."))
		return value.NilValue
	}
	return value.NumberVal(fn(value.AsNumber(left), value.AsNumber(right)))
}

// evalPlus implements the overloaded + operator: numeric addition for
// two numbers, concatenation for two strings, an error for anything
// else.
func (i *Interpreter) evalPlus(op token.Token, left, right value.Value) value.Value {
	if value.IsNumber(left) && value.IsNumber(right) {
		return value.NumberVal(value.AsNumber(left) + value.AsNumber(right))
	}
	if value.IsString(left) && value.IsString(right) {
		concatenated := value.AsString(left).String() + value.AsString(right).String()
		return i.strings.Take([]byte(concatenated))
	}
	i.runtimeError(newRuntimeError(op, "Operands must be two numbers or two strings."))
	return value.NilValue
}

func (i *Interpreter) evalDivide(op token.Token, left, right value.Value) value.Value {
	if !value.IsNumber(left) || !value.IsNumber(right) {
		i.runtimeError(newRuntimeError(op, "Operands must be numbers."))
		return value.NilValue
	}
	divisor := value.AsNumber(right)
	if divisor == 0 {
		i.runtimeError(newRuntimeError(op, "Division by zero."))
		return value.NilValue
	}
	return value.NumberVal(value.AsNumber(left) / divisor)
}

func (i *Interpreter) evalCall(e *ast.Call) value.Value {
	callee := i.evaluate(e.Callee)
	if i.hadRuntimeError {
		return value.NilValue
	}

	args := make([]value.Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		args[idx] = i.evaluate(argExpr)
		if i.hadRuntimeError {
			return value.NilValue
		}
	}

	return i.call(e.Paren, callee, args)
}
