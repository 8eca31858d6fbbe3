package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golox/internal/ast"
	"golox/internal/token"
)

func TestBinaryStringIsLispLike(t *testing.T) {
	expr := &ast.Binary{
		Op:    token.Token{Kind: token.Plus, Lexeme: "+"},
		Left:  &ast.Literal{Value: 1.0},
		Right: &ast.Literal{Value: 2.0},
	}
	assert.Equal(t, "(+ 1 2)", expr.String())
}

func TestTernaryString(t *testing.T) {
	expr := &ast.Ternary{
		Cond: &ast.Literal{Value: true},
		Then: &ast.Literal{Value: "yes"},
		Else: &ast.Literal{Value: "no"},
	}
	assert.Equal(t, "(true ? yes : no)", expr.String())
}

func TestVarStmtStringWithAndWithoutInit(t *testing.T) {
	noInit := &ast.Var{Name: token.Token{Lexeme: "a"}}
	assert.Equal(t, "var a;", noInit.String())

	withInit := &ast.Var{Name: token.Token{Lexeme: "a"}, Init: &ast.Literal{Value: 1.0}}
	assert.Equal(t, "var a = 1;", withInit.String())
}

func TestNilLiteralStringsAsNil(t *testing.T) {
	lit := &ast.Literal{Value: nil}
	assert.Equal(t, "nil", lit.String())
}
