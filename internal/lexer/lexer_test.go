package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/lexer"
	"golox/internal/token"
)

func TestScanPunctuatorsAndOperators(t *testing.T) {
	toks, errs := lexer.New("(){},.-+;*?:!= == <= >= < >").Scan()
	require.Empty(t, errs)

	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Question, token.Colon, token.BangEqual, token.EqualEqual,
		token.LessEqual, token.GreaterEqual, token.Less, token.Greater, token.EOF,
	}, kinds)
}

func TestScanNumberLiteral(t *testing.T) {
	toks, errs := lexer.New("123.45").Scan()
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 123.45, toks[0].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	toks, errs := lexer.New(`"hello world"`).Scan()
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanMultilineStringTracksStartLine(t *testing.T) {
	toks, errs := lexer.New("\"a\nb\"\nprint;").Scan()
	require.Empty(t, errs)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, 1, toks[0].Line)
}

func TestUnterminatedStringIsCollectedNotFatal(t *testing.T) {
	toks, errs := lexer.New(`"abc`).Scan()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Unterminated string")
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestLineCommentIsSkipped(t *testing.T) {
	toks, errs := lexer.New("print 1; // trailing comment\n").Scan()
	require.Empty(t, errs)
	assert.Equal(t, token.Print, toks[0].Kind)
}

func TestNestedBlockComment(t *testing.T) {
	toks, errs := lexer.New("/* outer /* inner */ still outer */ print 1;").Scan()
	require.Empty(t, errs)
	assert.Equal(t, token.Print, toks[0].Kind)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := lexer.New("var answer = true and false or nil;").Scan()
	require.Empty(t, errs)
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.True, token.And,
		token.False, token.Or, token.Nil, token.Semicolon, token.EOF,
	}, kinds)
}

func TestReservedButUnusedKeywordsStillLex(t *testing.T) {
	toks, errs := lexer.New("class super this").Scan()
	require.Empty(t, errs)
	assert.Equal(t, token.Class, toks[0].Kind)
	assert.Equal(t, token.Super, toks[1].Kind)
	assert.Equal(t, token.This, toks[2].Kind)
}

func TestUnexpectedCharacterIsCollectedAndScanningContinues(t *testing.T) {
	toks, errs := lexer.New("@ print 1;").Scan()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Unexpected character")
	assert.Equal(t, token.Print, toks[0].Kind)
}
