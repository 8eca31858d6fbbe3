package lox

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"golox/internal/ast"
	"golox/internal/interpreter"
	"golox/internal/lexer"
	"golox/internal/loxerr"
	"golox/internal/parser"
)

var errColor = color.New(color.FgRed, color.Bold)

// Runner ties the lexer, parser, and interpreter together. A single
// Runner's interpreter state (globals) persists across calls, which is
// what lets a REPL session build on earlier declarations.
type Runner struct {
	interp *interpreter.Interpreter
}

// New constructs a Runner. out redirects `print` output (nil means
// os.Stdout).
func New(out io.Writer) *Runner {
	var opts []interpreter.Option
	if out != nil {
		opts = append(opts, interpreter.WithOutput(out))
	}
	return &Runner{interp: interpreter.New(opts...)}
}

// RunFile lexes, parses, and interprets src as a whole program. A lex
// or parse error is reported and returned without running anything; a
// runtime error aborts the program at the statement that raised it,
// per spec.md §7's script-mode policy.
func (r *Runner) RunFile(src string) error {
	prog, err := r.parse(src)
	if err != nil {
		fmt.Fprintln(color.Error, errColor.Sprint(err.Error()))
		return err
	}
	if err := r.interp.Interpret(prog); err != nil {
		fmt.Fprintln(color.Error, errColor.Sprint(err.Error()))
		return err
	}
	return nil
}

// RunPrompt drives an interactive session, reading from in and writing
// prompts to out. Unlike script mode, a runtime error on one line is
// reported and the session continues (spec.md §7's REPL recovery
// recommendation); a parse error behaves the same way, since each line
// is parsed independently. This is a plain bufio.Scanner loop with no
// line editing; cmd/lox uses readline instead and drives RunLine
// directly, but RunPrompt stays as a terminal-free way to exercise REPL
// semantics (tests, piped input).
func (r *Runner) RunPrompt(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		r.RunLine(scanner.Text(), out)
	}
}

// RunLine parses and executes a single REPL line, writing any error to
// out and swallowing it so the caller's read loop continues (spec.md
// §7's REPL recovery policy). Blank lines are ignored.
func (r *Runner) RunLine(line string, out io.Writer) {
	if strings.TrimSpace(line) == "" {
		return
	}

	prog, err := r.parse(line)
	if err != nil {
		fmt.Fprintln(out, errColor.Sprint(err.Error()))
		return
	}
	for _, stmt := range prog.Stmts {
		if err := r.interp.ExecStmt(stmt); err != nil {
			fmt.Fprintln(out, errColor.Sprint(err.Error()))
			return
		}
	}
}

func (r *Runner) parse(src string) (*ast.Program, error) {
	toks, lexErrs := lexer.New(src).Scan()
	if len(lexErrs) > 0 {
		return nil, loxerr.NewError(loxerr.LexError, 0, "%s", strings.Join(lexErrs, "\n"))
	}

	return parser.New(toks).Parse()
}
