package interp

import (
	"testing"

	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fnDecl(name string) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, ReturnType: types.Int, Body: &ast.BlockStatement{}}
}

func TestRegisterAndFind(t *testing.T) {
	r := NewFunctionRegistry()

	require.NoError(t, r.Register(fnDecl("main")))
	require.NoError(t, r.Register(fnDecl("helper")))

	assert.NotNil(t, r.Find("main"))
	assert.NotNil(t, r.Find("helper"))
	assert.Nil(t, r.Find("missing"))
}

func TestRegisterRejectsRedefinition(t *testing.T) {
	r := NewFunctionRegistry()

	require.NoError(t, r.Register(fnDecl("f")))
	err := r.Register(fnDecl("f"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeSemantic, errors.CodeOf(err))
}

func TestBuiltinNamesAreReserved(t *testing.T) {
	r := NewFunctionRegistry()

	for _, name := range []string{"concat", "length", "substr", "find", "sort"} {
		assert.True(t, r.IsBuiltin(name), name)

		err := r.Register(fnDecl(name))
		require.Error(t, err, name)
		assert.Equal(t, errors.CodeSemantic, errors.CodeOf(err), name)
	}

	assert.False(t, r.IsBuiltin("main"))
}
