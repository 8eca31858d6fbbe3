// Package interpreter implements the tree-walking evaluator:
// expression evaluation, statement execution, the value/environment
// data model, and the native function layer (SPEC_FULL.md §4.2–4.4).
//
// Dispatch is a direct type switch on the ast.Expr/ast.Stmt sum types
// rather than a visitor: the result type varies per concern (Value for
// expressions, ctrl for statements) and a new pass means a new
// function, not a new method on every node type.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"golox/internal/ast"
)

// ctrlKind is the BlockBreak signal from SPEC_FULL.md / spec.md §4.2.
type ctrlKind int

const (
	sigNone ctrlKind = iota
	// sigContinue is reserved for a future `continue` keyword; the
	// grammar never produces it (spec.md §9, Open Question 3).
	sigContinue
	sigLoopBreak
	sigReturn
)

type ctrl struct {
	kind  ctrlKind
	value Value
}

var ctrlNone = ctrl{kind: sigNone}

// Interpreter walks a Program against a mutable environment chain
// rooted at globals.
type Interpreter struct {
	globals *Environment
	// env is the "current scope" slot: the block/function driver
	// swaps it on entry and restores it on exit (spec.md §5, §9
	// "'Current scope' mutation").
	env *Environment
	out io.Writer
}

// Option configures an Interpreter at construction.
type Option func(*Interpreter)

// WithOutput redirects `print` output away from os.Stdout (used by
// tests and by cmd/loxtest).
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// New constructs an Interpreter with a globals scope pre-populated
// with native bindings.
func New(opts ...Option) *Interpreter {
	globals := NewEnvironment(nil)
	defineNatives(globals)
	interp := &Interpreter{globals: globals, env: globals, out: os.Stdout}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Interpret executes a full program. The first runtime error is fatal
// to the program, per spec.md §7; any top-level `break`/`return` is
// simply discarded (there is no enclosing loop or function to receive
// it).
func (i *Interpreter) Interpret(prog *ast.Program) error {
	for _, stmt := range prog.Stmts {
		if _, err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecStmt executes a single top-level statement. It is used by the
// REPL, where each line is parsed and run independently so that a
// runtime error on one line does not abort the session.
func (i *Interpreter) ExecStmt(stmt ast.Stmt) error {
	_, err := i.execStmt(stmt)
	return err
}

// execFunctionBody runs a function's statement list as a function
// frame: the caller already built callEnv (parented to globals, with
// parameters bound); this swaps it in as current scope for the
// duration of the call, restoring on every exit path.
func (i *Interpreter) execFunctionBody(body []ast.Stmt, callEnv *Environment) (ctrl, error) {
	saved := i.env
	i.env = callEnv
	defer func() { i.env = saved }()

	for _, stmt := range body {
		sig, err := i.execStmt(stmt)
		if err != nil {
			return ctrlNone, err
		}
		if sig.kind != sigNone {
			// The function frame is where every signal stops: Return
			// supplies the call's result, and anything else (a stray
			// break — the parser accepts it outside a loop, since there
			// is no resolver pass to reject it) just halts the body
			// early and yields Nil, matching execBlock's "propagate,
			// don't keep executing" rule one level up.
			if sig.kind == sigReturn {
				return sig, nil
			}
			return ctrlNone, nil
		}
	}
	return ctrlNone, nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) (ctrl, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.evalExpr(s.Expr)
		return ctrlNone, err

	case *ast.Print:
		v, err := i.evalExpr(s.Expr)
		if err != nil {
			return ctrlNone, err
		}
		fmt.Fprintln(i.out, stringify(v))
		return ctrlNone, nil

	case *ast.Var:
		var v Value = Nil{}
		if s.Init != nil {
			var err error
			v, err = i.evalExpr(s.Init)
			if err != nil {
				return ctrlNone, err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return ctrlNone, nil

	case *ast.Fun:
		i.env.Define(s.Name.Lexeme, &Function{decl: s})
		return ctrlNone, nil

	case *ast.Block:
		return i.execBlock(s.Stmts, NewEnvironment(i.env))

	case *ast.If:
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return ctrlNone, err
		}
		if Truthy(cond) {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return ctrlNone, nil

	case *ast.While:
		return i.execWhile(s)

	case *ast.Return:
		var v Value = Nil{}
		if s.Expr != nil {
			var err error
			v, err = i.evalExpr(s.Expr)
			if err != nil {
				return ctrlNone, err
			}
		}
		return ctrl{kind: sigReturn, value: v}, nil

	case *ast.Break:
		return ctrl{kind: sigLoopBreak}, nil

	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// execBlock runs stmts in env as the current scope, restoring the
// prior scope on every exit path (normal, signal propagation, or
// error). On the first non-None signal it stops executing further
// statements in this block and propagates the signal upward
// unchanged: only a loop frame (execWhile) or function frame
// (execFunctionBody) converts a signal into local termination.
func (i *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) (ctrl, error) {
	saved := i.env
	i.env = env
	defer func() { i.env = saved }()

	for _, stmt := range stmts {
		sig, err := i.execStmt(stmt)
		if err != nil {
			return ctrlNone, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return ctrlNone, nil
}

// execWhile evaluates cond each iteration and, while truthy, executes
// body in a fresh child scope (spec.md §4.2 "While"). A LoopBreak
// signal from the body terminates the loop and is swallowed (not
// propagated); a Return propagates to the enclosing function frame.
func (i *Interpreter) execWhile(s *ast.While) (ctrl, error) {
	for {
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return ctrlNone, err
		}
		if !Truthy(cond) {
			return ctrlNone, nil
		}
		if s.Body == nil {
			continue
		}

		sig, err := i.execBlock([]ast.Stmt{s.Body}, NewEnvironment(i.env))
		if err != nil {
			return ctrlNone, err
		}
		switch sig.kind {
		case sigLoopBreak:
			return ctrlNone, nil
		case sigReturn:
			return sig, nil
		}
	}
}

func stringify(v Value) string {
	return v.String()
}
