package interpreter

import (
	"fmt"

	"golox/internal/ast"
	"golox/internal/loxerr"
	"golox/internal/token"
)

func (i *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Variable:
		return i.env.Get(e.Name.Lexeme, e.Name.Line)

	case *ast.Assign:
		v, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name.Lexeme, v, e.Name.Line); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Group:
		return i.evalExpr(e.Inner)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logic:
		return i.evalLogic(e)

	case *ast.Ternary:
		return i.evalTernary(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Comma:
		var v Value
		for _, item := range e.Items {
			var err error
			v, err = i.evalExpr(item)
			if err != nil {
				return nil, err
			}
		}
		return v, nil

	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
	}
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(val)
	case float64:
		return Number(val)
	case string:
		return String(val)
	default:
		panic(fmt.Sprintf("interpreter: unhandled literal payload %T", v))
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := i.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Bang:
		return Bool(!Truthy(right)), nil
	case token.Minus:
		n, ok := right.(Number)
		if !ok {
			return nil, loxerr.NewError(loxerr.TypeError, e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interpreter: unhandled unary operator " + e.Op.Kind.String())
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	line := e.Op.Line
	switch e.Op.Kind {
	case token.Plus:
		return evalPlus(left, right, line)

	case token.Minus:
		a, b, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return a - b, nil

	case token.Star:
		a, b, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return a * b, nil

	case token.Slash:
		a, b, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return a / b, nil

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return evalComparison(e.Op.Kind, left, right, line)

	case token.EqualEqual, token.BangEqual:
		return evalEquality(e.Op.Kind, left, right, line)

	default:
		panic("interpreter: unhandled binary operator " + e.Op.Kind.String())
	}
}

// evalPlus implements the deliberately asymmetric `+` from
// SPEC_FULL.md §9.1: Number+Number adds, String+String and
// String+Number concatenate (rendering the number), and Number+String
// is a TypeError.
func evalPlus(left, right Value, line int) (Value, error) {
	if a, ok := left.(Number); ok {
		if b, ok := right.(Number); ok {
			return a + b, nil
		}
		return nil, loxerr.NewError(loxerr.TypeError, line, "Operands must be two numbers or two strings.")
	}
	if a, ok := left.(String); ok {
		switch b := right.(type) {
		case String:
			return a + b, nil
		case Number:
			return a + String(b.String()), nil
		}
	}
	return nil, loxerr.NewError(loxerr.TypeError, line, "Operands must be two numbers or two strings.")
}

func numberOperands(left, right Value, line int) (Number, Number, error) {
	a, aok := left.(Number)
	b, bok := right.(Number)
	if !aok || !bok {
		return 0, 0, loxerr.NewError(loxerr.TypeError, line, "Operands must be numbers.")
	}
	return a, b, nil
}

func evalComparison(op token.Kind, left, right Value, line int) (Value, error) {
	switch l := left.(type) {
	case Number:
		r, ok := right.(Number)
		if !ok {
			break
		}
		return Bool(compareOrdered(op, float64(l), float64(r))), nil
	case String:
		r, ok := right.(String)
		if !ok {
			break
		}
		return Bool(compareOrdered(op, string(l), string(r))), nil
	case Bool:
		r, ok := right.(Bool)
		if !ok {
			break
		}
		return Bool(compareOrdered(op, boolRank(bool(l)), boolRank(bool(r)))), nil
	}
	return nil, loxerr.NewError(loxerr.TypeError, line, "Operands must be two numbers, two strings, or two booleans.")
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

type ordered interface {
	~float64 | ~string | ~int
}

func compareOrdered[T ordered](op token.Kind, a, b T) bool {
	switch op {
	case token.Greater:
		return a > b
	case token.GreaterEqual:
		return a >= b
	case token.Less:
		return a < b
	case token.LessEqual:
		return a <= b
	default:
		panic("interpreter: unhandled comparison operator " + op.String())
	}
}

func evalEquality(op token.Kind, left, right Value, line int) (Value, error) {
	eq, comparable := IsEqual(left, right)
	if !comparable {
		return nil, loxerr.NewError(loxerr.TypeError, line, "Cannot compare values of different types.")
	}
	if op == token.BangEqual {
		return Bool(!eq), nil
	}
	return Bool(eq), nil
}

func (i *Interpreter) evalLogic(e *ast.Logic) (Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Or:
		if Truthy(left) {
			return left, nil
		}
	case token.And:
		if !Truthy(left) {
			return left, nil
		}
	default:
		panic("interpreter: unhandled logic operator " + e.Op.Kind.String())
	}
	return i.evalExpr(e.Right)
}

// evalTernary dispatches on cond's kind: Boolean dispatches directly,
// Number dispatches on `cond > 0`, and any other kind is a TypeError
// (spec.md §4.2 "Ternary", grounded on rlox's visit_ternary). That
// TypeError carries line 0: ast.Ternary keeps no token to locate it.
func (i *Interpreter) evalTernary(e *ast.Ternary) (Value, error) {
	cond, err := i.evalExpr(e.Cond)
	if err != nil {
		return nil, err
	}

	var truthy bool
	switch c := cond.(type) {
	case Bool:
		truthy = bool(c)
	case Number:
		truthy = c > 0
	default:
		return nil, loxerr.NewError(loxerr.TypeError, 0, "Ternary condition must be a boolean or a number.")
	}

	if truthy {
		return i.evalExpr(e.Then)
	}
	return i.evalExpr(e.Else)
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewError(loxerr.NotCallableError, e.Paren.Line, "Can only call functions.")
	}

	args := make([]Value, len(e.Args))
	for idx, argExpr := range e.Args {
		v, err := i.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if len(args) != fn.Arity() {
		return nil, loxerr.NewError(loxerr.ArityError, e.Paren.Line,
			"Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	return fn.Call(i, args)
}
