package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

func TestLexerTokenizes(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   []token.Token
		errMsg string
	}{
		{
			name:  "keywords and symbols",
			input: "class Main {}",
			want: []token.Token{
				{Lexeme: "class", Line: 1, Kind: token.Keyword},
				{Lexeme: "Main", Line: 1, Kind: token.Identifier},
				{Lexeme: "{", Line: 1, Kind: token.Symbol},
				{Lexeme: "}", Line: 1, Kind: token.Symbol},
			},
		},
		{
			name:  "line comment is stripped",
			input: "let x = 1; // trailing comment\nlet y = 2;",
			want: []token.Token{
				{Lexeme: "let", Line: 1, Kind: token.Keyword},
				{Lexeme: "x", Line: 1, Kind: token.Identifier},
				{Lexeme: "=", Line: 1, Kind: token.Symbol},
				{Lexeme: "1", Line: 1, Kind: token.IntConst},
				{Lexeme: ";", Line: 1, Kind: token.Symbol},
				{Lexeme: "let", Line: 2, Kind: token.Keyword},
				{Lexeme: "y", Line: 2, Kind: token.Identifier},
				{Lexeme: "=", Line: 2, Kind: token.Symbol},
				{Lexeme: "2", Line: 2, Kind: token.IntConst},
				{Lexeme: ";", Line: 2, Kind: token.Symbol},
			},
		},
		{
			name:  "block comment spanning lines is stripped",
			input: "/* a\nb */let z;",
			want: []token.Token{
				{Lexeme: "let", Line: 2, Kind: token.Keyword},
				{Lexeme: "z", Line: 2, Kind: token.Identifier},
				{Lexeme: ";", Line: 2, Kind: token.Symbol},
			},
		},
		{
			name:  "string constant strips quotes",
			input: `"hello, world"`,
			want: []token.Token{
				{Lexeme: "hello, world", Line: 1, Kind: token.StringConst},
			},
		},
		{
			name:   "unterminated string is an error",
			input:  `"hello`,
			errMsg: "unterminated string constant",
		},
		{
			name:   "unterminated block comment is an error",
			input:  "/* never closed",
			errMsg: "unterminated block comment",
		},
		{
			name:   "out of range integer constant is an error",
			input:  "32768",
			errMsg: "out of range",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := All(New(strings.NewReader(tc.input)))
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLexerMaxIntConstAccepted(t *testing.T) {
	got, err := All(New(strings.NewReader("32767")))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 32767, got[0].IntValue())
}
