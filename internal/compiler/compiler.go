// Package compiler implements the single-pass recursive-descent parser
// and code generator that turns a materialized token stream into VM
// bytecode, resolving names through a two-scope symbol table as it goes.
package compiler

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/libklein/nand2tetris/jackcompiler/internal/symbol"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vm"
)

// SubroutineKind is the flavor of a Jack subroutine declaration.
type SubroutineKind string

const (
	Constructor SubroutineKind = "constructor"
	Function    SubroutineKind = "function"
	Method      SubroutineKind = "method"
)

// defaultBuiltins are the OS classes the generated code is allowed to
// reference without ever having seen a declaration for them.
var defaultBuiltins = map[string]bool{
	"Math": true, "String": true, "Array": true, "Output": true,
	"Screen": true, "Keyboard": true, "Memory": true, "Sys": true,
}

// Compiler drives one class's worth of parsing and code generation. It
// is not safe for reuse across classes or for concurrent use.
type Compiler struct {
	cursor  *token.Cursor
	symbols symbol.Table
	emitter *vm.Writer
	log     logr.Logger

	className         string
	currentSubroutine SubroutineKind
	labelCounter      int
	builtins          map[string]bool
}

// Option configures a Compiler at construction time.
type Option func(*Compiler)

// WithLogger threads a structured logger through the compiler; a
// discarding logger (logr.Discard()) is used if omitted.
func WithLogger(log logr.Logger) Option {
	return func(c *Compiler) { c.log = log }
}

// WithBuiltins adds extra class names to the set the compiler recognizes
// as built-in (purely for diagnostic logging; it never gates codegen).
func WithBuiltins(names ...string) Option {
	return func(c *Compiler) {
		for _, n := range names {
			c.builtins[n] = true
		}
	}
}

// New creates a Compiler over tokens, ready to emit into emitter.
func New(tokens []token.Token, emitter *vm.Writer, opts ...Option) *Compiler {
	builtins := make(map[string]bool, len(defaultBuiltins))
	for k := range defaultBuiltins {
		builtins[k] = true
	}
	c := &Compiler{
		cursor:   token.NewCursor(token.WithEOF(tokens)),
		emitter:  emitter,
		builtins: builtins,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses and generates code for exactly one class declaration,
// recovering any internal panic raised by the recursive-descent helpers
// below into the returned error. A non-error panic value (a genuine bug,
// not one of this package's typed failures) is re-raised.
func (c *Compiler) Compile() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
				return
			}
			panic(r)
		}
	}()

	c.compileClass()
	return nil
}

// fail aborts the current compilation by panicking with err; Compile's
// deferred recover converts it back into a normal return value.
func (c *Compiler) fail(err error) {
	panic(err)
}

func (c *Compiler) syntaxErrorf(format string, args ...interface{}) {
	c.fail(&token.SyntaxError{Line: c.cursor.Current().Line, Found: fmt.Sprintf(format, args...)})
}

// nextLabelID reserves a fresh subroutine-unique numeric id. Each
// control-flow construct (one if, one while) reserves a single id and
// derives every label it needs from it, so a statement's paired labels
// (e.g. IF_FALSE_3 / IF_END_3) always share the same suffix.
func (c *Compiler) nextLabelID() int {
	id := c.labelCounter
	c.labelCounter++
	return id
}

// label formats a tag/id pair into a label name (e.g. "IF_FALSE_3").
func label(tag string, id int) string {
	return fmt.Sprintf("%s_%d", tag, id)
}

func (c *Compiler) writeFunction(name string, nlocals int) {
	c.emitter.Function(c.className+"."+name, nlocals)
}

// segmentFor maps a symbol kind to its VM segment.
func segmentFor(kind symbol.Kind) vm.Segment {
	switch kind {
	case symbol.Static:
		return vm.Static
	case symbol.Argument:
		return vm.Argument
	case symbol.Local:
		return vm.Local
	case symbol.Field:
		return vm.This
	}
	panic(fmt.Sprintf("unreachable: unknown symbol kind %q", kind))
}

// resolveVariable looks up name and returns its VM segment/index,
// raising a *symbol.ResolutionError if it is undeclared.
func (c *Compiler) resolveVariable(name string) (vm.Segment, int) {
	sym, ok := c.symbols.Lookup(name)
	if !ok {
		c.fail(&symbol.ResolutionError{Name: name, Line: c.cursor.Current().Line, Msg: "undeclared variable"})
	}
	return segmentFor(sym.Kind), sym.Index
}
