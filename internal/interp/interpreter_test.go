package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximvlas/flsgo/internal/lexer"
	"github.com/maximvlas/flsgo/internal/parser"
)

// run lexes, parses, and interprets src, returning everything written to
// the interpreter's output writer plus its final InterpretResult.
func run(t *testing.T, src string) (string, InterpretResult) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	statements := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())

	var out bytes.Buffer
	i := New(&out)
	result := i.Interpret(statements)
	return out.String(), result
}

func TestArithmeticPrecedence(t *testing.T) {
	out, result := run(t, `print 1 + 2 * 3;`)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, result := run(t, `var a = "hi"; print a + " there";`)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "hi there\n", out)
}

func TestInternedConcatenationEqualsLiteral(t *testing.T) {
	out, result := run(t, `print "ab" == "a" + "b";`)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "true\n", out)
}

func TestRecursiveFibonacci(t *testing.T) {
	src := `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);
`
	out, result := run(t, src)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "55\n", out)
}

func TestWhileLoop(t *testing.T) {
	src := `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
`
	out, result := run(t, src)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, result := run(t, `print 1 / 0;`)
	require.Equal(t, InterpretRuntimeError, result)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, result := run(t, `print nope;`)
	require.Equal(t, InterpretRuntimeError, result)
}

func TestRuntimeErrorSticksAcrossStatements(t *testing.T) {
	src := `
print 1 / 0;
print "should never print";
`
	out, result := run(t, src)
	require.Equal(t, InterpretRuntimeError, result)
	require.False(t, strings.Contains(out, "should never print"))
}

func TestLogicalOperatorsShortCircuitAndReturnOperand(t *testing.T) {
	out, result := run(t, `print nil or "fallback"; print false and "unreached";`)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "fallback\nfalse\n", out)
}

func TestBlockScopingDoesNotLeakIntoOuterScope(t *testing.T) {
	src := `
var x = "outer";
{
  var x = "inner";
  print x;
}
print x;
`
	out, result := run(t, src)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "inner\nouter\n", out)
}

func TestClockNativeIsCallableAndReturnsANumber(t *testing.T) {
	out, result := run(t, `print clock() >= 0;`)
	require.Equal(t, InterpretOK, result)
	require.Equal(t, "true\n", out)
}

func TestCallingANonCallableIsRuntimeError(t *testing.T) {
	_, result := run(t, `var x = 1; x();`)
	require.Equal(t, InterpretRuntimeError, result)
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	src := `
fun f(a, b) { return a + b; }
f(1);
`
	_, result := run(t, src)
	require.Equal(t, InterpretRuntimeError, result)
}

func TestCompileErrorStatementsAreNilIsReportedAsCompileError(t *testing.T) {
	var out bytes.Buffer
	i := New(&out)
	result := i.Interpret(nil)
	require.Equal(t, InterpretCompileError, result)
}
