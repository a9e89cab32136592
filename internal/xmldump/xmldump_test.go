package xmldump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/lexer"
)

func TestWriteProducesFlatTokenListing(t *testing.T) {
	tokens, err := lexer.All(lexer.New(strings.NewReader(`class A { field int x; }`)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tokens))

	want := "<tokens>\n" +
		"<keyword> class </keyword>\n" +
		"<identifier> A </identifier>\n" +
		"<symbol> { </symbol>\n" +
		"<keyword> field </keyword>\n" +
		"<keyword> int </keyword>\n" +
		"<identifier> x </identifier>\n" +
		"<symbol> ; </symbol>\n" +
		"<symbol> } </symbol>\n" +
		"</tokens>\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEscapesXMLSpecialCharacters(t *testing.T) {
	tokens, err := lexer.All(lexer.New(strings.NewReader(`let ok = a < b & c;`)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tokens))

	assert.Contains(t, buf.String(), "<symbol> &lt; </symbol>")
	assert.Contains(t, buf.String(), "<symbol> &amp; </symbol>")
}

func TestWriteOnEmptyInput(t *testing.T) {
	tokens, err := lexer.All(lexer.New(strings.NewReader(``)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tokens))
	assert.Equal(t, "<tokens>\n</tokens>\n", buf.String())
}
