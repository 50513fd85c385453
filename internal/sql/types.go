package sql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DataType represents the logical type of a value in a column.
// TypeNull is used only for values (the NULL literal and absent columns);
// a column can never be declared with it.
type DataType int

const (
	TypeNull DataType = iota
	TypeInt
	TypeText
	TypeBool
)

func (t DataType) String() string {
	switch t {
	case TypeNull:
		return "NULL"
	case TypeInt:
		return "INT"
	case TypeText:
		return "TEXT"
	case TypeBool:
		return "BOOL"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a type keyword from a column definition to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INT", "INTEGER":
		return TypeInt, nil
	case "TEXT", "STRING", "VARCHAR":
		return TypeText, nil
	case "BOOL", "BOOLEAN":
		return TypeBool, nil
	default:
		return TypeNull, fmt.Errorf("unknown column type %q", s)
	}
}

// MarshalJSON writes the type as its catalog keyword ("INT"/"TEXT"/"BOOL").
func (t DataType) MarshalJSON() ([]byte, error) {
	if t == TypeNull {
		return nil, fmt.Errorf("NULL is not a declarable column type")
	}
	return json.Marshal(t.String())
}

func (t *DataType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dt, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*t = dt
	return nil
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; other fields remain at their
// zero values, so two canonical Values can be compared with ==.
type Value struct {
	Type DataType

	I64 int64  // for TypeInt
	S   string // for TypeText
	B   bool   // for TypeBool
}

func NullValue() Value         { return Value{Type: TypeNull} }
func IntValue(i int64) Value   { return Value{Type: TypeInt, I64: i} }
func TextValue(s string) Value { return Value{Type: TypeText, S: s} }
func BoolValue(b bool) Value   { return Value{Type: TypeBool, B: b} }

func (v Value) IsNull() bool { return v.Type == TypeNull }

// String renders the value for display (REPL output, error messages).
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I64, 10)
	case TypeText:
		return v.S
	case TypeBool:
		return strconv.FormatBool(v.B)
	default:
		return "NULL"
	}
}

// MarshalJSON writes the value as the natural JSON scalar for its type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeNull:
		return []byte("null"), nil
	case TypeInt:
		return []byte(strconv.FormatInt(v.I64, 10)), nil
	case TypeText:
		return json.Marshal(v.S)
	case TypeBool:
		return []byte(strconv.FormatBool(v.B)), nil
	default:
		return nil, fmt.Errorf("cannot marshal value of type %v", v.Type)
	}
}

// UnmarshalJSON recovers a Value from a JSON scalar. The JSON kind alone
// determines the type: null, bool, string, or an integral number.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = NullValue()
	case bool:
		*v = BoolValue(x)
	case string:
		*v = TextValue(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return fmt.Errorf("non-integral number %q in row record", x.String())
		}
		*v = IntValue(i)
	default:
		return fmt.Errorf("unsupported JSON value %v in row record", raw)
	}
	return nil
}
