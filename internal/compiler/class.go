package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/symbol"
)

// compileClass parses `class CN { classVarDec* subroutineDec* }`. It
// emits nothing for the header itself; class variable declarations
// populate the class scope before any subroutine is compiled.
func (c *Compiler) compileClass() {
	c.expect("class")
	c.symbols.ClearClass()

	c.className = c.identifier()

	c.expect("{")
	for isVarKeyword(c.cursor.Current()) {
		c.compileClassVarDec()
	}
	for isSubroutineKeyword(c.cursor.Current()) {
		c.compileSubroutineDec()
	}
	c.expect("}")
	if !c.cursor.AtEOF() {
		c.syntaxErrorf("unexpected token %q after class body", c.cursor.Current().Lexeme)
	}
}

// compileClassVarDec parses `('static'|'field') type name (',' name)* ';'`.
func (c *Compiler) compileClassVarDec() {
	var kind symbol.Kind
	switch {
	case c.cursor.Current().Is("static"):
		kind = symbol.Static
	case c.cursor.Current().Is("field"):
		kind = symbol.Field
	default:
		c.syntaxErrorf("expected \"static\" or \"field\", got %q", c.cursor.Current().Lexeme)
	}
	c.expect(c.cursor.Current().Lexeme)
	c.compileVarSequence(kind)
}

// compileVarSequence parses `type name (',' name)* ';'`, declaring each
// name with the given kind, and is shared by class variable and local
// variable declarations.
func (c *Compiler) compileVarSequence(kind symbol.Kind) int {
	typ := c.typeName()

	count := 0
	for {
		line := c.cursor.Current().Line
		name := c.identifier()
		if _, err := c.symbols.Define(name, typ, kind); err != nil {
			c.fail(withLine(err, line))
		}
		count++

		if c.cursor.Current().Is(",") {
			c.expect(",")
			continue
		}
		break
	}
	c.expect(";")
	return count
}

// withLine stamps a *symbol.ResolutionError raised by Define (which has
// no cursor access) with the source line of the just-consumed name.
func withLine(err error, line int) error {
	if re, ok := err.(*symbol.ResolutionError); ok {
		re.Line = line
		return re
	}
	return err
}
