package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/interpreter"
	"golox/internal/loxerr"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := interpreter.NewEnvironment(nil)
	env.Define("x", interpreter.Number(1))

	v, err := env.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, interpreter.Number(1), v)
}

func TestEnvironmentGetSearchesParentChain(t *testing.T) {
	parent := interpreter.NewEnvironment(nil)
	parent.Define("x", interpreter.Number(1))
	child := interpreter.NewEnvironment(parent)

	v, err := child.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, interpreter.Number(1), v)
}

func TestEnvironmentGetUndefinedIsNameError(t *testing.T) {
	env := interpreter.NewEnvironment(nil)
	_, err := env.Get("missing", 7)
	require.Error(t, err)
	var loxErr *loxerr.Error
	require.ErrorAs(t, err, &loxErr)
	assert.Equal(t, loxerr.NameError, loxErr.Kind)
	assert.Equal(t, 7, loxErr.Line)
}

func TestEnvironmentAssignMutatesNearestDeclaration(t *testing.T) {
	parent := interpreter.NewEnvironment(nil)
	parent.Define("x", interpreter.Number(1))
	child := interpreter.NewEnvironment(parent)

	require.NoError(t, child.Assign("x", interpreter.Number(2), 1))

	v, err := parent.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, interpreter.Number(2), v)
}

func TestEnvironmentAssignUndefinedIsNameError(t *testing.T) {
	env := interpreter.NewEnvironment(nil)
	err := env.Assign("missing", interpreter.Number(1), 3)
	require.Error(t, err)
	var loxErr *loxerr.Error
	require.ErrorAs(t, err, &loxErr)
	assert.Equal(t, loxerr.NameError, loxErr.Kind)
}

func TestEnvironmentRedefineAllowed(t *testing.T) {
	env := interpreter.NewEnvironment(nil)
	env.Define("x", interpreter.Number(1))
	env.Define("x", interpreter.Number(2))

	v, err := env.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, interpreter.Number(2), v)
}
