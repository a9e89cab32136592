package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEmitsCommands(t *testing.T) {
	w := NewWriter()
	w.Push(Constant, 7)
	w.Pop(Local, 0)
	w.Arithmetic(Add)
	w.Label("LOOP_0")
	w.Goto("LOOP_0")
	w.IfGoto("LOOP_END_0")
	w.Call("Math.multiply", 2)
	w.Function("Main.main", 1)
	w.Return()

	var buf bytes.Buffer
	_, err := w.Flush(&buf)
	require.NoError(t, err)

	want := "push constant 7\n" +
		"pop local 0\n" +
		"add\n" +
		"label LOOP_0\n" +
		"goto LOOP_0\n" +
		"if-goto LOOP_END_0\n" +
		"call Math.multiply 2\n" +
		"function Main.main 1\n" +
		"return\n"
	assert.Equal(t, want, buf.String())
}

func TestWriterStringConstant(t *testing.T) {
	w := NewWriter()
	w.StringConstant("Hi")

	var buf bytes.Buffer
	_, err := w.Flush(&buf)
	require.NoError(t, err)

	want := "push constant 2\n" +
		"call String.new 1\n" +
		"push constant 72\n" +
		"call String.appendChar 2\n" +
		"push constant 105\n" +
		"call String.appendChar 2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriterFlushResetsBuffer(t *testing.T) {
	w := NewWriter()
	w.Push(Constant, 1)

	var first bytes.Buffer
	_, err := w.Flush(&first)
	require.NoError(t, err)
	assert.Equal(t, "push constant 1\n", first.String())

	var second bytes.Buffer
	n, err := w.Flush(&second)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, second.String())
}
