package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

// expect matches the given terminals in sequence, checking each against
// the current token and advancing past it, failing the compilation with
// a *token.SyntaxError on the first mismatch. Called with no terminals
// it unconditionally advances one token.
func (c *Compiler) expect(terminals ...string) {
	if len(terminals) == 0 {
		c.cursor.Advance()
		return
	}
	for _, term := range terminals {
		if err := c.cursor.Expect(term); err != nil {
			c.fail(err)
		}
		c.cursor.Advance()
	}
}

// identifier requires the current token to be an Identifier, returning
// its lexeme and advancing past it.
func (c *Compiler) identifier() string {
	cur := c.cursor.Current()
	if cur.Kind != token.Identifier {
		c.fail(&token.SyntaxError{Line: cur.Line, Expected: []string{"identifier"}, Found: cur.Lexeme})
	}
	c.cursor.Advance()
	return cur.Lexeme
}

// typeName requires the current token to be a valid Jack type: one of
// the primitive keywords, or a class-name identifier.
func (c *Compiler) typeName() string {
	cur := c.cursor.Current()
	if cur.Is("int", "char", "boolean") {
		c.cursor.Advance()
		return cur.Lexeme
	}
	return c.identifier()
}

func isVarKeyword(t token.Token) bool {
	return t.Is("static", "field")
}

func isSubroutineKeyword(t token.Token) bool {
	return t.Is("constructor", "function", "method")
}
