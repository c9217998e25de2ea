package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunSourceScenarios exercises end-to-end programs directly against
// runSource, checking both stdout and the process exit code runScript
// would hand to os.Exit.
func TestRunSourceScenarios(t *testing.T) {
	cases := []struct {
		name       string
		source     string
		wantStdout string
		wantCode   int
	}{
		{
			name:       "OperatorPrecedence",
			source:     `print 1 + 2 * 3;`,
			wantStdout: "7\n",
			wantCode:   0,
		},
		{
			name:       "StringConcatenation",
			source:     `var a = "hi"; print a + " there";`,
			wantStdout: "hi there\n",
			wantCode:   0,
		},
		{
			name:       "RecursiveFibonacci",
			source:     `fun fib(n){ if(n<2) return n; return fib(n-1)+fib(n-2); } print fib(10);`,
			wantStdout: "55\n",
			wantCode:   0,
		},
		{
			name:       "WhileLoop",
			source:     `var i=0; while(i<3){ print i; i=i+1; }`,
			wantStdout: "0\n1\n2\n",
			wantCode:   0,
		},
		{
			name:       "DivisionByZero",
			source:     `print 1/0;`,
			wantStdout: "",
			wantCode:   70,
		},
		{
			name:       "UndefinedVariable",
			source:     `print x;`,
			wantStdout: "",
			wantCode:   70,
		},
		{
			name:       "InternedEquality",
			source:     `print "ab" == "a"+"b";`,
			wantStdout: "true\n",
			wantCode:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := runSource(&stdout, &stderr, tc.source, "<test>")
			require.Equal(t, tc.wantCode, code)
			require.Equal(t, tc.wantStdout, stdout.String())
		})
	}
}

func TestRunSourceDivisionByZeroReportsMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource(&stdout, &stderr, `print 1/0;`, "<test>")
	require.Equal(t, 70, code)
	require.Contains(t, stderr.String(), "Division by zero.")
}

func TestRunSourceUndefinedVariableReportsMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource(&stdout, &stderr, `print x;`, "<test>")
	require.Equal(t, 70, code)
	require.Contains(t, stderr.String(), "Undefined variable 'x'.")
}

func TestRunSourceCompileErrorExitsWithCode65(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runSource(&stdout, &stderr, `print 1 +;`, "<test>")
	require.Equal(t, 65, code)
	require.NotEmpty(t, stderr.String())
}
