package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maximvlas/flsgo/internal/builtins"
	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/lexer"
	"github.com/maximvlas/flsgo/internal/parser"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an fls program",
	Long: `Execute an fls program from a file or an inline expression.

Examples:
  fls run script.fls
  fls run -e 'print 1 + 2;'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
}

// runScript maps interpreter outcomes to exit codes directly (0 on
// success, 65 on compile errors, 70 on runtime errors) rather than
// letting cobra's generic error-return path collapse every failure to
// exit code 1. The actual lex/parse/interpret work lives in runSource
// so it can be exercised by run_test.go without the test process itself
// exiting.
func runScript(cmd *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	code := runSource(os.Stdout, os.Stderr, source, filename)
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// runSource lexes, parses, and interprets source, writing program output
// to out and diagnostics to errOut, and returns the process exit code
// (0 OK, 65 compile error, 70 runtime error) without touching the
// process itself.
func runSource(out, errOut io.Writer, source, filename string) int {
	l := lexer.New(source)
	p := parser.New(l)
	statements := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(errOut, e)
		}
		return 65
	}

	i := interp.New(out)
	builtins.RegisterSystem(i)
	builtins.RegisterIO(i)
	builtins.RegisterMath(i)
	builtins.RegisterStrings(i)
	defer i.Close()

	result := i.Interpret(statements)
	switch result {
	case interp.InterpretOK:
		return 0
	case interp.InterpretCompileError:
		return 65
	case interp.InterpretRuntimeError:
		if err := i.LastError(); err != nil {
			fmt.Fprintln(errOut, err.Error())
		}
		return 70
	}
	return 0
}
