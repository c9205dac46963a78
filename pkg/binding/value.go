package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the kind of a host value.
type Kind int

// Kinds
const (
	KindInt Kind = iota
	KindFloat
	KindList
)

// String implements Stringer.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a primitive host value.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	List  []Value
	// Label is the enum member name of an Int, if the value is an enum.
	Label string
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// Enum creates an integer value carrying the enum member name.
func Enum(v int64, label string) Value {
	return Value{Kind: KindInt, Int: v, Label: label}
}

// Float creates a float value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// List creates a list value.
func List(vals ...Value) Value {
	return Value{Kind: KindList, List: vals}
}

// Bytes creates a list of integers from bytes.
func Bytes(data []uint8) Value {
	vals := make([]Value, len(data))
	for n, b := range data {
		vals[n] = Int(int64(b))
	}
	return List(vals...)
}

// Words creates a list of integers from words.
func Words(data []uint16) Value {
	vals := make([]Value, len(data))
	for n, w := range data {
		vals[n] = Int(int64(w))
	}
	return List(vals...)
}

// Interface converts the value to plain Go values: int64, float64 or
// []interface{}.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindList:
		vals := make([]interface{}, len(v.List))
		for n, item := range v.List {
			vals[n] = item.Interface()
		}
		return vals
	default:
		return v.Int
	}
}

// String formats the value for display. Floats use the shortest
// representation of single precision as all native floats are float32.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 32)
	case KindList:
		strs := make([]string, len(v.List))
		for n, item := range v.List {
			strs[n] = item.String()
		}
		return "[" + strings.Join(strs, ", ") + "]"
	default:
		if v.Label != "" {
			return v.Label + "(" + strconv.FormatInt(v.Int, 10) + ")"
		}
		return strconv.FormatInt(v.Int, 10)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// ValueOf converts a loosely typed host value without knowing the expected
// argument kind. Strings are parsed as integer, float or list literals.
func ValueOf(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Value{}, errors.New("unsupported value nil")
	case Value:
		return x, nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		return Float(f), err
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := x.Float64()
		return Float(f), err
	case string:
		return parseValue(strings.TrimSpace(x))
	}
	if n, err := cast.ToInt64E(v); err == nil {
		return Int(n), nil
	}
	items, err := listItems(v)
	if err != nil {
		return Value{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
	return valueList(items)
}

func parseValue(s string) (Value, error) {
	if strings.HasPrefix(s, "[") || strings.Contains(s, ",") {
		items, err := listItems(s)
		if err != nil {
			return Value{}, err
		}
		return valueList(items)
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return Int(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), nil
	}
	return Value{}, fmt.Errorf("invalid value %q", s)
}

func valueList(items []interface{}) (Value, error) {
	if len(items) == 0 {
		return List(), nil
	}
	vals := make([]Value, len(items))
	for n, item := range items {
		v, err := ValueOf(item)
		if err != nil {
			return Value{}, fmt.Errorf("item %d: %w", n, err)
		}
		vals[n] = v
	}
	return List(vals...), nil
}
