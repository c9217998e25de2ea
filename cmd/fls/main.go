// Command fls is the driver binary: lexer, parser, and interpreter
// wired together through the cobra command tree in ./cmd. The runtime
// core itself (internal/interp, internal/runtime, internal/value) has
// no knowledge of cobra, files, or stdin; main and its cmd package own
// all of that.
package main

import (
	"fmt"
	"os"

	"github.com/maximvlas/flsgo/cmd/fls/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
