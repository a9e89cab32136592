package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vm"
)

var binaryOps = map[string]vm.Op{
	"+": vm.Add, "-": vm.Sub, "&": vm.And, "|": vm.Or,
	"<": vm.Lt, ">": vm.Gt, "=": vm.Eq,
}

// compileExpression parses `term (op term)*` left-to-right with no
// precedence, emitting each operator immediately after its right-hand
// term.
func (c *Compiler) compileExpression() {
	c.compileTerm()

	for {
		cur := c.cursor.Current()
		switch cur.Lexeme {
		case "+", "-", "&", "|", "<", ">", "=":
			c.expect(cur.Lexeme)
			c.compileTerm()
			c.emitter.Arithmetic(binaryOps[cur.Lexeme])
		case "*":
			c.expect("*")
			c.compileTerm()
			c.emitter.Call("Math.multiply", 2)
		case "/":
			c.expect("/")
			c.compileTerm()
			c.emitter.Call("Math.divide", 2)
		default:
			return
		}
	}
}

// compileExpressionList parses `(expr (',' expr)*)?` and returns the
// number of expressions compiled.
func (c *Compiler) compileExpressionList() int {
	if c.cursor.Current().Is(")") {
		return 0
	}
	n := 1
	c.compileExpression()
	for c.cursor.Current().Is(",") {
		c.expect(",")
		c.compileExpression()
		n++
	}
	return n
}

// compileTerm dispatches on the current token's kind and lexeme.
func (c *Compiler) compileTerm() {
	cur := c.cursor.Current()
	switch {
	case cur.Kind == token.IntConst:
		c.emitter.Push(vm.Constant, cur.IntValue())
		c.expect(cur.Lexeme)
	case cur.Kind == token.StringConst:
		c.emitter.StringConstant(cur.Lexeme)
		c.cursor.Advance()
	case cur.Is("true"):
		c.emitter.Push(vm.Constant, 0)
		c.emitter.Arithmetic(vm.Not)
		c.expect("true")
	case cur.Is("false"), cur.Is("null"):
		c.emitter.Push(vm.Constant, 0)
		c.expect(cur.Lexeme)
	case cur.Is("this"):
		c.emitter.Push(vm.Pointer, 0)
		c.expect("this")
	case cur.Is("("):
		c.expect("(")
		c.compileExpression()
		c.expect(")")
	case cur.Is("-"):
		c.expect("-")
		c.compileTerm()
		c.emitter.Arithmetic(vm.Neg)
	case cur.Is("~"):
		c.expect("~")
		c.compileTerm()
		c.emitter.Arithmetic(vm.Not)
	case cur.Kind == token.Identifier:
		c.compileIdentifierTerm()
	default:
		c.syntaxErrorf("unexpected token %q in expression", cur.Lexeme)
	}
}

// compileIdentifierTerm handles the three identifier-led term shapes:
// array element read, subroutine call, and plain variable read.
func (c *Compiler) compileIdentifierTerm() {
	name := c.identifier()

	switch c.cursor.Current().Lexeme {
	case "[":
		c.expect("[")
		c.termArrayAddress(name)
		c.expect("]")
		c.emitter.Pop(vm.Pointer, 1)
		c.emitter.Push(vm.That, 0)
	case "(", ".":
		c.compileSubroutineCall(name)
	default:
		seg, idx := c.resolveVariable(name)
		c.emitter.Push(seg, idx)
	}
}

// termArrayAddress computes the source address for `name[expr]` read as
// a term: the base variable is pushed first, then the index expression
// is compiled (the second address computation
// (distinct from letArrayAddress's index-first order on the assignment
// target).
func (c *Compiler) termArrayAddress(name string) {
	seg, idx := c.resolveVariable(name)
	c.emitter.Push(seg, idx)
	c.compileExpression()
	c.emitter.Arithmetic(vm.Add)
}

// compileSubroutineCall resolves and emits one of the three call shapes
// name is the leading
// identifier, already consumed by the caller; if empty (the `do`
// statement case), it is read here.
func (c *Compiler) compileSubroutineCall(name string) {
	if name == "" {
		name = c.identifier()
	}

	switch c.cursor.Current().Lexeme {
	case ".":
		c.expect(".")
		method := c.identifier()

		nargs := 0
		qualified := name + "." + method
		if sym, ok := c.symbols.Lookup(name); ok {
			seg, idx := segmentFor(sym.Kind), sym.Index
			c.emitter.Push(seg, idx)
			nargs = 1
			qualified = sym.Type + "." + method
		} else if !c.builtins[name] {
			c.log.V(1).Info("assuming external class for unqualified call", "class", name, "method", method)
		}

		c.expect("(")
		nargs += c.compileExpressionList()
		c.expect(")")

		c.emitter.Call(qualified, nargs)
	case "(":
		c.emitter.Push(vm.Pointer, 0)
		c.expect("(")
		nargs := 1 + c.compileExpressionList()
		c.expect(")")
		c.emitter.Call(c.className+"."+name, nargs)
	default:
		c.syntaxErrorf("expected \"(\" or \".\" in subroutine call, got %q", c.cursor.Current().Lexeme)
	}
}
