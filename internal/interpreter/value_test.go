package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golox/internal/interpreter"
)

func TestTruthy(t *testing.T) {
	assert.False(t, interpreter.Truthy(interpreter.Nil{}))
	assert.False(t, interpreter.Truthy(interpreter.Bool(false)))
	assert.True(t, interpreter.Truthy(interpreter.Bool(true)))
	assert.True(t, interpreter.Truthy(interpreter.Number(0)))
	assert.True(t, interpreter.Truthy(interpreter.String("")))
}

func TestIsEqualNilOnlyEqualsNil(t *testing.T) {
	eq, comparable := interpreter.IsEqual(interpreter.Nil{}, interpreter.Nil{})
	assert.True(t, eq)
	assert.True(t, comparable)

	eq, comparable = interpreter.IsEqual(interpreter.Nil{}, interpreter.Number(0))
	assert.False(t, eq)
	assert.True(t, comparable)
}

func TestIsEqualDifferentNonNilKindsNotComparable(t *testing.T) {
	_, comparable := interpreter.IsEqual(interpreter.Number(1), interpreter.String("1"))
	assert.False(t, comparable)
}

func TestIsEqualSameKindStructural(t *testing.T) {
	eq, comparable := interpreter.IsEqual(interpreter.Number(1), interpreter.Number(1))
	assert.True(t, comparable)
	assert.True(t, eq)

	eq, comparable = interpreter.IsEqual(interpreter.String("a"), interpreter.String("b"))
	assert.True(t, comparable)
	assert.False(t, eq)
}

func TestNumberStringRendersIntegralWithoutTrailingZero(t *testing.T) {
	assert.Equal(t, "3", interpreter.Number(3).String())
	assert.Equal(t, "3.5", interpreter.Number(3.5).String())
}
