// Package repl implements the interactive read-eval-print loop of the
// jsexpr command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"jsexpr"
)

// Start reads expressions from in and prints each result as JSON to out.
// The prompt is only shown when in is an interactive terminal, so piped
// input produces clean output.
func Start(env jsexpr.Env, in *os.File, out io.Writer) {
	interactive := isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())
	if interactive {
		fmt.Fprintln(out, "jsexpr repl | type 'exit' to quit")
	}

	evaluator := jsexpr.New(env)
	scanner := bufio.NewScanner(in)

	for {
		if interactive {
			fmt.Fprint(out, ">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		result, err := evaluator.Evaluate(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result.String())
	}
}
