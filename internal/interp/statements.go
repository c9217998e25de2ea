package interp

import (
	"fmt"

	"github.com/maximvlas/flsgo/internal/ast"
	"github.com/maximvlas/flsgo/internal/runtime"
	"github.com/maximvlas/flsgo/internal/value"
)

// execute runs one statement. It returns InterpretReturn to unwind out
// of a function call and propagates any other non-OK result from a
// nested block/loop/if unchanged.
func (i *Interpreter) execute(stmt ast.Stmt) InterpretResult {
	if i.hadRuntimeError {
		return InterpretRuntimeError
	}

	switch s := stmt.(type) {
	case *ast.Block:
		frame := runtime.NewEnclosedEnvironment(i.env)
		return i.executeBlock(s.Statements, frame)
	case *ast.Expression:
		i.evaluate(s.Expr)
		if i.hadRuntimeError {
			return InterpretRuntimeError
		}
		return InterpretOK
	case *ast.Function:
		return i.execFunctionDecl(s)
	case *ast.If:
		return i.execIf(s)
	case *ast.Print:
		return i.execPrint(s)
	case *ast.Return:
		return i.execReturn(s)
	case *ast.Var:
		return i.execVar(s)
	case *ast.While:
		return i.execWhile(s)
	default:
		return InterpretOK
	}
}

func (i *Interpreter) execFunctionDecl(s *ast.Function) InterpretResult {
	params := make([]*value.StringObj, len(s.Params))
	for idx, p := range s.Params {
		params[idx] = i.Intern(p.Lexeme)
	}

	fn := i.heap.TrackFunction(&value.FunctionObj{
		Name:   i.Intern(s.Name.Lexeme),
		Params: params,
		Body:   s.Body,
	})
	i.env.Define(fn.Name, fn)
	return InterpretOK
}

func (i *Interpreter) execIf(s *ast.If) InterpretResult {
	cond := i.evaluate(s.Condition)
	if i.hadRuntimeError {
		return InterpretRuntimeError
	}

	if value.Truthy(cond) {
		return i.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return i.execute(s.ElseBranch)
	}
	return InterpretOK
}

func (i *Interpreter) execPrint(s *ast.Print) InterpretResult {
	v := i.evaluate(s.Expr)
	if i.hadRuntimeError {
		return InterpretRuntimeError
	}
	fmt.Fprintln(i.output, value.Print(v))
	return InterpretOK
}

func (i *Interpreter) execReturn(s *ast.Return) InterpretResult {
	if s.Value != nil {
		i.returnValue = i.evaluate(s.Value)
		if i.hadRuntimeError {
			return InterpretRuntimeError
		}
	} else {
		i.returnValue = value.NilValue
	}
	return InterpretReturn
}

func (i *Interpreter) execVar(s *ast.Var) InterpretResult {
	v := value.NilValue
	if s.Initializer != nil {
		v = i.evaluate(s.Initializer)
		if i.hadRuntimeError {
			return InterpretRuntimeError
		}
	}
	i.env.Define(i.Intern(s.Name.Lexeme), v)
	return InterpretOK
}

func (i *Interpreter) execWhile(s *ast.While) InterpretResult {
	for {
		cond := i.evaluate(s.Condition)
		if i.hadRuntimeError {
			return InterpretRuntimeError
		}
		if !value.Truthy(cond) {
			return InterpretOK
		}
		result := i.execute(s.Body)
		if result != InterpretOK {
			return result
		}
	}
}

// executeBlock runs statements under environment, restoring the
// interpreter's previous scope on the way out: swap in the block's
// environment, run until a non-OK result or the end of the list, then
// swap the previous environment back regardless of how the block ended.
func (i *Interpreter) executeBlock(statements []ast.Stmt, environment *runtime.Environment) InterpretResult {
	previous := i.env
	i.env = environment
	defer func() { i.env = previous }()

	return i.executeBlockStatements(statements)
}

// executeBlockStatements runs statements in the interpreter's *current*
// environment, assumed already swapped in by the caller (executeBlock,
// or callFunction setting up a call frame).
func (i *Interpreter) executeBlockStatements(statements []ast.Stmt) InterpretResult {
	result := InterpretOK
	for _, stmt := range statements {
		result = i.execute(stmt)
		if result != InterpretOK {
			break
		}
	}
	return result
}
