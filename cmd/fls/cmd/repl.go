package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maximvlas/flsgo/internal/builtins"
	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/lexer"
	"github.com/maximvlas/flsgo/internal/parser"
)

// replCmd reuses run.go's lex/parse/interpret pipeline line by line
// against one long-lived *interp.Interpreter, so `var`/`fun`
// declarations persist across lines.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive fls session",
	Long: `Read fls statements from stdin one line at a time and execute them
against a shared interpreter, so variables and functions defined on one
line remain visible on the next.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	i := interp.New(os.Stdout)
	builtins.RegisterSystem(i)
	builtins.RegisterIO(i)
	builtins.RegisterMath(i)
	builtins.RegisterStrings(i)
	defer i.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		statements := p.ParseProgram()
		if len(p.Errors()) > 0 {
			for _, e := range p.Errors() {
				fmt.Fprintln(os.Stderr, e)
			}
			continue
		}

		if result := i.Interpret(statements); result == interp.InterpretRuntimeError {
			if err := i.LastError(); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			i.ResetError()
		}
	}
}
