package interpreter

import (
	"fmt"

	"golox/internal/ast"
)

// Callable is implemented by both user-defined and native functions.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function value. It carries only the
// declaration, not a captured environment: per SPEC_FULL.md (and
// spec.md §9 "Closures"), this dialect has no lexical closures —
// every call's scope parents directly to globals.
type Function struct {
	decl *ast.Fun
}

func (*Function) valueNode() {}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }

// Arity returns the function's fixed parameter count.
func (f *Function) Arity() int { return len(f.decl.Params) }

// Call binds args to the declaration's parameters in a scope rooted at
// globals, then executes the body as a function frame: the first
// Return signal produced anywhere in the body supplies the call's
// result, and a LoopBreak must never escape this frame.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnvironment(interp.globals)
	for i, param := range f.decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	sig, err := interp.execFunctionBody(f.decl.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return Nil{}, nil
}

// Native is a host-implemented ("foreign") function exposed as a Value
// in globals, such as clock.
type Native struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

func (*Native) valueNode() {}

func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.name) }

// Arity returns the native function's fixed parameter count.
func (n *Native) Arity() int { return n.arity }

// Call invokes the host implementation directly.
func (n *Native) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
