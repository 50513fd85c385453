package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTypeMismatch is returned when a value cannot be coerced into a
// column's declared type.
var ErrTypeMismatch = errors.New("type mismatch")

// Coerce converts a raw input value into a column's declared type.
// This is the single point where untyped input becomes schema-typed: every
// value must pass through here before it reaches storage or an index.
//
// Rules:
//   - NULL coerces to NULL for any type.
//   - INT accepts an integer or an integral-looking string; a boolean is
//     rejected outright.
//   - TEXT accepts anything and renders it as text.
//   - BOOL accepts a boolean, or matches the textual form of the input
//     case-insensitively against true/1/yes and false/0/no.
func Coerce(t DataType, v Value) (Value, error) {
	if v.IsNull() {
		return NullValue(), nil
	}

	switch t {
	case TypeInt:
		switch v.Type {
		case TypeBool:
			return Value{}, fmt.Errorf("%w: BOOL cannot be used where INT is expected", ErrTypeMismatch)
		case TypeInt:
			return v, nil
		case TypeText:
			i, err := strconv.ParseInt(strings.TrimSpace(v.S), 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: invalid INT value %q", ErrTypeMismatch, v.S)
			}
			return IntValue(i), nil
		}

	case TypeText:
		return TextValue(v.String()), nil

	case TypeBool:
		if v.Type == TypeBool {
			return v, nil
		}
		switch strings.ToLower(strings.TrimSpace(v.String())) {
		case "true", "1", "yes":
			return BoolValue(true), nil
		case "false", "0", "no":
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("%w: invalid BOOL value %q", ErrTypeMismatch, v.String())
	}

	return Value{}, fmt.Errorf("%w: unknown column type %v", ErrTypeMismatch, t)
}
