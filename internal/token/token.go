// Package token defines the lexical token vocabulary consumed by the
// parser. Tokens themselves are produced by internal/lexer.
package token

import "fmt"

// Kind enumerates the distinct lexical categories a Token can carry.
type Kind int

const (
	EOF Kind = iota

	// single-character punctuators
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Question
	Colon

	// one-or-two character operators
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
	Break
)

var names = [...]string{
	EOF:           "EOF",
	LeftParen:     "LEFT_PAREN",
	RightParen:    "RIGHT_PAREN",
	LeftBrace:     "LEFT_BRACE",
	RightBrace:    "RIGHT_BRACE",
	Comma:         "COMMA",
	Dot:           "DOT",
	Minus:         "MINUS",
	Plus:          "PLUS",
	Semicolon:     "SEMICOLON",
	Slash:         "SLASH",
	Star:          "STAR",
	Question:      "QUESTION",
	Colon:         "COLON",
	Bang:          "BANG",
	BangEqual:     "BANG_EQUAL",
	Equal:         "EQUAL",
	EqualEqual:    "EQUAL_EQUAL",
	Greater:       "GREATER",
	GreaterEqual:  "GREATER_EQUAL",
	Less:          "LESS",
	LessEqual:     "LESS_EQUAL",
	Identifier:    "IDENTIFIER",
	String:        "STRING",
	Number:        "NUMBER",
	And:           "AND",
	Class:         "CLASS",
	Else:          "ELSE",
	False:         "FALSE",
	Fun:           "FUN",
	For:           "FOR",
	If:            "IF",
	Nil:           "NIL",
	Or:            "OR",
	Print:         "PRINT",
	Return:        "RETURN",
	Super:         "SUPER",
	This:          "THIS",
	True:          "TRUE",
	Var:           "VAR",
	While:         "WHILE",
	Break:         "BREAK",
}

func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifiers to their keyword Kind.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
	"break":  Break,
}

// Token is a single lexeme produced by the lexer. Literal holds the
// already-unescaped payload for STRING tokens (string) or the parsed
// value for NUMBER tokens (float64); it is nil for every other kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func (t Token) String() string {
	lit := "null"
	if t.Literal != nil {
		lit = fmt.Sprintf("%v", t.Literal)
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, lit)
}
