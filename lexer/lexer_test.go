package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotriangle/triparse/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOT {
			return toks
		}
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "let x be begin")
	require.Len(t, toks, 5)
	assert.Equal(t, token.LET, toks[0].Kind)
	assert.Equal(t, "let", toks[0].Spelling)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Spelling)
	assert.Equal(t, token.IDENTIFIER, toks[2].Kind)
	assert.Equal(t, "be", toks[2].Spelling)
	assert.Equal(t, token.BEGIN, toks[3].Kind)
	assert.Equal(t, token.EOT, toks[4].Kind)
}

func TestScanIntegerLiteral(t *testing.T) {
	toks := scanAll(t, "12345")
	require.Len(t, toks, 2)
	assert.Equal(t, token.INTLITERAL, toks[0].Kind)
	assert.Equal(t, "12345", toks[0].Spelling)
	assert.Equal(t, 0, toks[0].Position.Start)
	assert.Equal(t, 4, toks[0].Position.Finish)
}

func TestScanCharacterLiteral(t *testing.T) {
	toks := scanAll(t, "'a'")
	require.Len(t, toks, 2)
	assert.Equal(t, token.CHARLITERAL, toks[0].Kind)
	assert.Equal(t, "'a'", toks[0].Spelling)
}

func TestScanEscapedCharacterLiteral(t *testing.T) {
	toks := scanAll(t, "'\\n'")
	require.Len(t, toks, 2)
	assert.Equal(t, token.CHARLITERAL, toks[0].Kind)
	assert.Equal(t, "'\\n'", toks[0].Spelling)
}

func TestScanColonVsBecomes(t *testing.T) {
	toks := scanAll(t, ": :=")
	require.Len(t, toks, 3)
	assert.Equal(t, token.COLON, toks[0].Kind)
	assert.Equal(t, token.BECOMES, toks[1].Kind)
	assert.Equal(t, ":=", toks[1].Spelling)
}

func TestScanOperatorRun(t *testing.T) {
	toks := scanAll(t, "<= /= >>")
	require.Len(t, toks, 4)
	assert.Equal(t, token.OPERATOR, toks[0].Kind)
	assert.Equal(t, "<=", toks[0].Spelling)
	assert.Equal(t, token.OPERATOR, toks[1].Kind)
	assert.Equal(t, "/=", toks[1].Spelling)
	assert.Equal(t, token.OPERATOR, toks[2].Kind)
	assert.Equal(t, ">>", toks[2].Spelling)
}

func TestScanPunctuation(t *testing.T) {
	toks := scanAll(t, ";,.()[]{}")
	kinds := []token.Kind{
		token.SEMICOLON, token.COMMA, token.DOT, token.LPAREN, token.RPAREN,
		token.LBRACKET, token.RBRACKET, token.LCURLY, token.RCURLY, token.EOT,
	}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equalf(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestSkipsCommentsAndWhitespace(t *testing.T) {
	toks := scanAll(t, "x ! this is a comment\n  y")
	require.Len(t, toks, 3)
	assert.Equal(t, "x", toks[0].Spelling)
	assert.Equal(t, "y", toks[1].Spelling)
}

func TestEOTIsIdempotent(t *testing.T) {
	l := New("x")
	first := l.Scan()
	require.Equal(t, token.IDENTIFIER, first.Kind)
	for i := 0; i < 3; i++ {
		tok := l.Scan()
		assert.Equal(t, token.EOT, tok.Kind)
	}
}

func TestEmptySourceScansEOT(t *testing.T) {
	toks := scanAll(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOT, toks[0].Kind)
}

func TestIllegalCharacter(t *testing.T) {
	toks := scanAll(t, "$")
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, "$", toks[0].Spelling)
}
