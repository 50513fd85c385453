package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Coerce_Int(t *testing.T) {
	v, err := Coerce(TypeInt, TextValue("42"))
	require.NoError(t, err)
	assert.Equal(t, IntValue(42), v)

	v, err = Coerce(TypeInt, IntValue(-7))
	require.NoError(t, err)
	assert.Equal(t, IntValue(-7), v)

	_, err = Coerce(TypeInt, TextValue("3.2"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Coerce(TypeInt, TextValue("abc"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	// Booleans are rejected outright, they do not convert to 0/1.
	_, err = Coerce(TypeInt, BoolValue(true))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func Test_Coerce_Text(t *testing.T) {
	v, err := Coerce(TypeText, IntValue(42))
	require.NoError(t, err)
	assert.Equal(t, TextValue("42"), v)

	v, err = Coerce(TypeText, BoolValue(false))
	require.NoError(t, err)
	assert.Equal(t, TextValue("false"), v)

	v, err = Coerce(TypeText, TextValue("hello"))
	require.NoError(t, err)
	assert.Equal(t, TextValue("hello"), v)
}

func Test_Coerce_Bool(t *testing.T) {
	truthy := []Value{BoolValue(true), TextValue("true"), TextValue("TRUE"), TextValue("1"), TextValue("yes"), IntValue(1)}
	for _, in := range truthy {
		v, err := Coerce(TypeBool, in)
		require.NoError(t, err, "input %v", in)
		assert.Equal(t, BoolValue(true), v, "input %v", in)
	}

	falsy := []Value{BoolValue(false), TextValue("False"), TextValue("0"), TextValue("no"), IntValue(0)}
	for _, in := range falsy {
		v, err := Coerce(TypeBool, in)
		require.NoError(t, err, "input %v", in)
		assert.Equal(t, BoolValue(false), v, "input %v", in)
	}

	_, err := Coerce(TypeBool, TextValue("maybe"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Coerce(TypeBool, IntValue(5))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func Test_Coerce_NullPassesAnyType(t *testing.T) {
	for _, dt := range []DataType{TypeInt, TypeText, TypeBool} {
		v, err := Coerce(dt, NullValue())
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	}
}
