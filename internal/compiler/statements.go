package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/vm"
)

// compileStatements parses a sequence of let/if/while/do/return
// statements, stopping at the next '}'.
func (c *Compiler) compileStatements() {
	for !c.cursor.Current().Is("}") {
		switch cur := c.cursor.Current(); {
		case cur.Is("let"):
			c.compileLet()
		case cur.Is("if"):
			c.compileIf()
		case cur.Is("while"):
			c.compileWhile()
		case cur.Is("do"):
			c.compileDo()
		case cur.Is("return"):
			c.compileReturn()
		default:
			c.syntaxErrorf("unexpected token %q, expected a statement", cur.Lexeme)
		}
	}
}

// compileDo parses `do subroutineCall ';'`, discarding the call's return
// value with `pop temp 0` (every do statement's
// emission ends with pop temp 0).
func (c *Compiler) compileDo() {
	c.expect("do")
	c.compileSubroutineCall("")
	c.emitter.Pop(vm.Temp, 0)
	c.expect(";")
}

// compileLet parses `let name ('[' expr ']')? '=' expr ';'`. Array
// stores use a mandatory temp-spill: the destination address is
// computed before the RHS, but the RHS may itself touch `that`, so the
// address must survive in temp 0 across the RHS evaluation.
func (c *Compiler) compileLet() {
	c.expect("let")
	name := c.identifier()

	if c.cursor.Current().Is("[") {
		c.expect("[")
		c.letArrayAddress(name)
		c.expect("]")

		c.expect("=")
		c.compileExpression()
		c.expect(";")

		c.emitter.Pop(vm.Temp, 0)
		c.emitter.Pop(vm.Pointer, 1)
		c.emitter.Push(vm.Temp, 0)
		c.emitter.Pop(vm.That, 0)
		return
	}

	c.expect("=")
	c.compileExpression()
	c.expect(";")

	seg, idx := c.resolveVariable(name)
	c.emitter.Pop(seg, idx)
}

// letArrayAddress computes the destination address for `name[expr]` on
// an assignment's left-hand side: the index expression is compiled
// first, then the base variable is pushed (the
// address is computed once, ahead of the right-hand side, and survives
// across it via the temp-spill in compileLet).
func (c *Compiler) letArrayAddress(name string) {
	c.compileExpression()
	seg, idx := c.resolveVariable(name)
	c.emitter.Push(seg, idx)
	c.emitter.Arithmetic(vm.Add)
}

// compileIf parses `if '(' expr ')' '{' stmts '}' ('else' '{' stmts '}')?`.
func (c *Compiler) compileIf() {
	c.expect("if", "(")
	id := c.nextLabelID()
	labelFalse := label("IF_FALSE", id)
	labelEnd := label("IF_END", id)

	c.compileExpression()
	c.emitter.Arithmetic(vm.Not)
	c.emitter.IfGoto(labelFalse)

	c.expect(")", "{")
	c.compileStatements()
	c.expect("}")

	c.emitter.Goto(labelEnd)
	c.emitter.Label(labelFalse)

	if c.cursor.Current().Is("else") {
		c.expect("else", "{")
		c.compileStatements()
		c.expect("}")
	}

	c.emitter.Label(labelEnd)
}

// compileWhile parses `while '(' expr ')' '{' stmts '}'`.
func (c *Compiler) compileWhile() {
	c.expect("while", "(")
	id := c.nextLabelID()
	labelExp := label("WHILE_EXP", id)
	labelEnd := label("WHILE_END", id)

	c.emitter.Label(labelExp)
	c.compileExpression()
	c.emitter.Arithmetic(vm.Not)
	c.emitter.IfGoto(labelEnd)

	c.expect(")", "{")
	c.compileStatements()
	c.expect("}")

	c.emitter.Goto(labelExp)
	c.emitter.Label(labelEnd)
}

// compileReturn parses `return expr? ';'`. Inside a constructor, the
// sole legal return expression is the bare keyword `this`: the compiler
// never silently substitutes it the way some compilers do.
func (c *Compiler) compileReturn() {
	c.expect("return")

	if c.cursor.Current().Is(";") {
		if c.currentSubroutine == Constructor {
			c.syntaxErrorf("constructor must return \"this\", got no return value")
		}
		c.emitter.Push(vm.Constant, 0)
		c.expect(";")
		c.emitter.Return()
		return
	}

	if c.currentSubroutine == Constructor && !c.cursor.Current().Is("this") {
		c.syntaxErrorf("constructor must return \"this\", got %q", c.cursor.Current().Lexeme)
	}
	if c.currentSubroutine == Constructor && c.cursor.Peek(1).Lexeme != ";" {
		c.syntaxErrorf("constructor return expression must be exactly \"this\"")
	}

	c.compileExpression()
	c.expect(";")
	c.emitter.Return()
}
