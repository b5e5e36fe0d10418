package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/scanner"
	"github.com/go-c0x/c0x/lang/token"
)

func allKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	toks, err := scanner.New([]byte(src)).AllTokens()
	require.Nil(t, err)
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanPunctuationAndOperators(t *testing.T) {
	kinds := allKinds(t, "+ - * / < > <= >= == != ( ) { } = ; : ,")
	want := []token.Kind{
		token.Plus, token.Minus, token.Multiply, token.Divide,
		token.Less, token.Greater, token.LessEqual, token.GreaterEqual,
		token.Equal, token.NotEqual, token.LeftParen, token.RightParen,
		token.LeftBrace, token.RightBrace, token.Assign, token.Semicolon,
		token.Colon, token.Comma,
	}
	require.Equal(t, want, kinds)
}

func TestScanIdentifiersAndReserved(t *testing.T) {
	toks, err := scanner.New([]byte("foo bar1 int const")).AllTokens()
	require.Nil(t, err)
	require.Len(t, toks, 4)
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, "foo", toks[0].Value.Str)
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Equal(t, token.Reserved, toks[2].Kind)
	require.Equal(t, "int", toks[2].Value.Str)
	require.Equal(t, token.Reserved, toks[3].Kind)
}

func TestScanIdentifierRejectsUnderscore(t *testing.T) {
	_, err := scanner.New([]byte("bar_1")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidCharacter, err.Code)
}

func TestScanIntegers(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"42", 42},
		{"0x1A", 26},
		{"0X1a", 26},
	}
	for _, c := range cases {
		toks, err := scanner.New([]byte(c.in)).AllTokens()
		require.Nil(t, err, c.in)
		require.Len(t, toks, 1)
		require.Equal(t, token.Integer, toks[0].Kind)
		require.Equal(t, c.want, toks[0].Value.Int)
	}
}

func TestScanDoubles(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3.14", 3.14},
		{".5", 0.5},
		{"1e10", 1e10},
		{"1.5e-3", 1.5e-3},
	}
	for _, c := range cases {
		toks, err := scanner.New([]byte(c.in)).AllTokens()
		require.Nil(t, err, c.in)
		require.Len(t, toks, 1)
		require.Equal(t, token.Double, toks[0].Kind)
		require.InDelta(t, c.want, toks[0].Value.Float, 1e-12)
	}
}

func TestScanCharLiteral(t *testing.T) {
	toks, err := scanner.New([]byte(`'a' '\n' '\x41'`)).AllTokens()
	require.Nil(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, int32('a'), toks[0].Value.Int)
	require.Equal(t, int32('\n'), toks[1].Value.Int)
	require.Equal(t, int32('A'), toks[2].Value.Int)
}

func TestScanCharLiteralRejectsNonPrintable(t *testing.T) {
	_, err := scanner.New([]byte("'\x01'")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidCharacter, err.Code)
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := scanner.New([]byte(`"hello\nworld"`)).AllTokens()
	require.Nil(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, token.StringLiteral, toks[0].Kind)
	require.Equal(t, "hello\nworld", toks[0].Value.Str)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.New([]byte(`"hello`)).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.MissingRightQuote, err.Code)
}

func TestScanSkipsComments(t *testing.T) {
	kinds := allKinds(t, "1 // a line comment\n+ /* a block\ncomment */ 2")
	require.Equal(t, []token.Kind{token.Integer, token.Plus, token.Integer}, kinds)
}

func TestScanDivideNotConfusedWithComment(t *testing.T) {
	kinds := allKinds(t, "a / b")
	require.Equal(t, []token.Kind{token.Identifier, token.Divide, token.Identifier}, kinds)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, err := scanner.New([]byte("/* never closes")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidInput, err.Code)
}

func TestScanBangRequiresEquals(t *testing.T) {
	_, err := scanner.New([]byte("!a")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidNotEqual, err.Code)
}

func TestScanPositionsAreZeroBased(t *testing.T) {
	toks, err := scanner.New([]byte("  int")).AllTokens()
	require.Nil(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, token.Position{Line: 0, Col: 2}, toks[0].Start)
}
