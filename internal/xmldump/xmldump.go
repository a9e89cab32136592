// Package xmldump prints a flat XML listing of a lexed token stream.
// It is a purely lexical, optional facility: it shares no state with
// package compiler and never builds a parse tree.
package xmldump

import (
	"fmt"
	"io"
	"strings"

	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

var tagForKind = map[token.Kind]string{
	token.Keyword:     "keyword",
	token.Symbol:      "symbol",
	token.IntConst:    "integerConstant",
	token.StringConst: "stringConstant",
	token.Identifier:  "identifier",
}

var xmlEscapes = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Write prints tokens as a flat "<tokens>...</tokens>" document, one
// element per line, skipping the token.WithEOF sentinel if present.
func Write(w io.Writer, tokens []token.Token) error {
	if _, err := fmt.Fprintln(w, "<tokens>"); err != nil {
		return err
	}
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			continue
		}
		tag, ok := tagForKind[tok.Kind]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "<%s> %s </%s>\n", tag, xmlEscapes.Replace(tok.Lexeme), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</tokens>")
	return err
}
