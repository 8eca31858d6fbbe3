// Command lox is the driver described in spec.md §6: no arguments opens
// an interactive prompt, one argument runs that file as a script, and
// anything else is a usage error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"golox/internal/lox"
	"golox/internal/loxerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	switch len(os.Args) {
	case 1:
		return runPrompt()
	case 2:
		return runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		return 64
	}
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}

	if err := lox.New(os.Stdout).RunFile(string(src)); err != nil {
		return exitCode(err)
	}
	return 0
}

// runPrompt drives the REPL with chzyer/readline for history and
// line editing rather than a bare bufio.Scanner loop.
func runPrompt() int {
	rl, err := readline.NewEx(&readline.Config{Prompt: "> "})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 70
	}
	defer rl.Close()

	runner := lox.New(os.Stdout)
	for {
		line, err := rl.Readline()
		if err != nil {
			if _, ok := err.(*readline.InterruptError); ok || errors.Is(err, io.EOF) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 70
		}
		runner.RunLine(line, os.Stdout)
	}
}

// exitCode maps a pipeline error onto a sysexits-style code: lex/parse
// failures are EX_DATAERR, everything else (runtime errors) is
// EX_SOFTWARE. Exact values are implementation-defined per spec.md §6;
// only zero-vs-non-zero is a contract.
func exitCode(err error) int {
	var loxErr *loxerr.Error
	if errors.As(err, &loxErr) {
		switch loxErr.Kind {
		case loxerr.LexError, loxerr.ParseError:
			return 65
		}
	}
	return 70
}
