package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDensePerKindIndices(t *testing.T) {
	var tbl Table
	tbl.ClearClass()

	_, err := tbl.Define("x", "int", Field)
	require.NoError(t, err)
	_, err = tbl.Define("y", "int", Field)
	require.NoError(t, err)
	_, err = tbl.Define("count", "int", Static)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Count(Field))
	assert.Equal(t, 1, tbl.Count(Static))

	y, ok := tbl.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, 1, y.Index)
	assert.Equal(t, Field, y.Kind)
}

func TestTableSubroutineShadowsClass(t *testing.T) {
	var tbl Table
	tbl.ClearClass()
	_, err := tbl.Define("x", "int", Field)
	require.NoError(t, err)

	tbl.StartSubroutine()
	_, err = tbl.Define("x", "boolean", Local)
	require.NoError(t, err)

	sym, ok := tbl.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Local, sym.Kind)
	assert.Equal(t, "boolean", sym.Type)
}

func TestTableStartSubroutineClearsOnlyLocalScope(t *testing.T) {
	var tbl Table
	tbl.ClearClass()
	_, err := tbl.Define("field1", "int", Field)
	require.NoError(t, err)

	tbl.StartSubroutine()
	_, err = tbl.Define("arg1", "int", Argument)
	require.NoError(t, err)

	tbl.StartSubroutine()

	_, ok := tbl.Lookup("arg1")
	assert.False(t, ok)

	_, ok = tbl.Lookup("field1")
	assert.True(t, ok)
}

func TestTableDuplicateDefineFails(t *testing.T) {
	var tbl Table
	tbl.ClearClass()
	_, err := tbl.Define("x", "int", Field)
	require.NoError(t, err)

	_, err = tbl.Define("x", "int", Field)
	require.Error(t, err)
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "x", resErr.Name)
}

func TestTableLookupUndeclared(t *testing.T) {
	var tbl Table
	_, ok := tbl.Lookup("missing")
	assert.False(t, ok)
}
