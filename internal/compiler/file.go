package compiler

import (
	"io"

	"github.com/libklein/nand2tetris/jackcompiler/internal/lexer"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vm"
)

// Compile lexes r in full, compiles the resulting single class, and
// writes the generated VM commands to w. Nothing is written to w until
// the class has compiled successfully — the emitter buffers in memory
// and is flushed to w only once.
func Compile(r io.Reader, w io.Writer, opts ...Option) error {
	tokens, err := lexer.All(lexer.New(r))
	if err != nil {
		return err
	}
	return CompileTokens(tokens, w, opts...)
}

// CompileTokens compiles an already-lexed token stream, for callers
// (such as the CLI's --dump-tokens path) that need the same tokens for
// more than one purpose.
func CompileTokens(tokens []token.Token, w io.Writer, opts ...Option) error {
	emitter := vm.NewWriter()
	c := New(tokens, emitter, opts...)
	if err := c.Compile(); err != nil {
		return err
	}

	_, err := emitter.Flush(w)
	return err
}
