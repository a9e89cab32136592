package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/symbol"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vm"
)

// compileSubroutineDec parses `('constructor'|'function'|'method')
// (type|'void') name '(' paramList ')' body`, resetting subroutine scope
// and the label counter, then dispatching to compileSubroutineBody for
// the prologue and statement list.
func (c *Compiler) compileSubroutineDec() {
	c.symbols.StartSubroutine()
	c.labelCounter = 0

	kind := SubroutineKind(c.cursor.Current().Lexeme)
	c.currentSubroutine = kind
	c.expect(string(kind))

	if kind == Method {
		if _, err := c.symbols.Define("this", c.className, symbol.Argument); err != nil {
			c.fail(err)
		}
	}

	// return type: 'void' or a type name; neither is needed for codegen.
	if c.cursor.Current().Is("void") {
		c.expect("void")
	} else {
		c.typeName()
	}

	name := c.identifier()

	c.expect("(")
	if !c.cursor.Current().Is(")") {
		c.compileParameterList()
	}
	c.expect(")")

	c.compileSubroutineBody(name, kind)

	c.log.V(1).Info("compiled subroutine", "class", c.className, "function", name, "kind", string(kind))
}

// compileParameterList parses `(type name (',' type name)*)?`, declaring
// each pair as an argument.
func (c *Compiler) compileParameterList() {
	for {
		typ := c.typeName()
		name := c.identifier()
		if _, err := c.symbols.Define(name, typ, symbol.Argument); err != nil {
			c.fail(err)
		}
		if c.cursor.Current().Is(",") {
			c.expect(",")
			continue
		}
		break
	}
}

// compileVarDec parses a single `var type name (',' name)* ';'` and
// returns the number of locals it declared, or 0 if the current token
// does not start a var declaration.
func (c *Compiler) compileVarDec() int {
	if !c.cursor.Current().Is("var") {
		return 0
	}
	c.expect("var")
	return c.compileVarSequence(symbol.Local)
}

// compileSubroutineBody parses `'{' varDec* statements '}'`, emitting the
// function header and the constructor/method prologue before compiling
// the statement list.
func (c *Compiler) compileSubroutineBody(name string, kind SubroutineKind) {
	c.expect("{")

	nlocals := 0
	for c.cursor.Current().Is("var") {
		nlocals += c.compileVarDec()
	}

	c.writeFunction(name, nlocals)

	switch kind {
	case Constructor:
		nfields := c.symbols.Count(symbol.Field)
		c.emitter.Push(vm.Constant, nfields)
		c.emitter.Call("Memory.alloc", 1)
		c.emitter.Pop(vm.Pointer, 0)
	case Method:
		c.emitter.Push(vm.Argument, 0)
		c.emitter.Pop(vm.Pointer, 0)
	}

	c.compileStatements()
	c.expect("}")
}
