package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ArgKind is the expected kind of an argument.
type ArgKind int

// maxListLen is the longest list a single I2C transfer carries, the
// length is passed to the library as uint8_t.
const maxListLen = math.MaxUint8

// Argument kinds
const (
	// ArgInt is a C int.
	ArgInt ArgKind = iota
	// ArgFloat is a C float.
	ArgFloat
	// ArgBytes is a list of integers in 0-255.
	ArgBytes
	// ArgWords is a list of integers in 0-65535.
	ArgWords
)

// String implements Stringer.
func (k ArgKind) String() string {
	switch k {
	case ArgInt:
		return "int"
	case ArgFloat:
		return "float"
	case ArgBytes:
		return "bytes"
	case ArgWords:
		return "words"
	}
	return "argkind(" + strconv.Itoa(int(k)) + ")"
}

// Arg describes an argument of a method.
type Arg struct {
	Name string
	Kind ArgKind
	// Default makes the argument optional, only trailing arguments can be
	// optional.
	Default *Value
	// Check validates the converted value.
	Check func(Value) error
}

// String implements Stringer.
func (a Arg) String() string {
	s := a.Name + " " + a.Kind.String()
	if a.Default != nil {
		return "[" + s + "=" + a.Default.String() + "]"
	}
	return s
}

// Convert converts a loosely typed host value into a Value of this kind.
// Accepted inputs are Value, Go numbers, json.Number and strings. Lists
// are also accepted as slices or comma separated strings.
func (k ArgKind) Convert(v interface{}) (Value, error) {
	switch k {
	case ArgInt:
		n, err := toInt(v)
		if err != nil {
			return Value{}, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%d out of range of int", n)
		}
		return Int(n), nil
	case ArgFloat:
		f, err := toFloat(v)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case ArgBytes:
		return toIntList(v, math.MaxUint8)
	case ArgWords:
		return toIntList(v, math.MaxUint16)
	}
	return Value{}, fmt.Errorf("unsupported argument kind %v", k)
}

func toInt(v interface{}) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.New("must be int, not nil")
	case Value:
		switch x.Kind {
		case KindInt:
			return x.Int, nil
		case KindFloat:
			return floatToInt(x.Float)
		}
		return 0, fmt.Errorf("must be int, not %v", x.Kind)
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case string:
		return cast.ToInt64E(strings.TrimSpace(x))
	}
	return cast.ToInt64E(v)
}

func floatToInt(f float64) (int64, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f {
		return 0, fmt.Errorf("integer argument expected, got float %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v out of range of int", f)
	}
	return int64(f), nil
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.New("must be float, not nil")
	case Value:
		switch x.Kind {
		case KindInt:
			return float64(x.Int), nil
		case KindFloat:
			return x.Float, nil
		}
		return 0, fmt.Errorf("must be float, not %v", x.Kind)
	case json.Number:
		return x.Float64()
	case string:
		return cast.ToFloat64E(strings.TrimSpace(x))
	}
	return cast.ToFloat64E(v)
}

func toIntList(v interface{}, max int64) (Value, error) {
	items, err := listItems(v)
	if err != nil {
		return Value{}, err
	}
	if len(items) == 0 {
		return List(), nil
	}
	if len(items) > maxListLen {
		return Value{}, fmt.Errorf("%d items exceeds the limit of %d", len(items), maxListLen)
	}
	vals := make([]Value, len(items))
	for n, item := range items {
		i, err := toInt(item)
		if err != nil {
			return Value{}, fmt.Errorf("item %d: %w", n, err)
		}
		if i < 0 || i > max {
			return Value{}, fmt.Errorf("item %d: %d out of range 0-%d", n, i, max)
		}
		vals[n] = Int(i)
	}
	return List(vals...), nil
}

func listItems(v interface{}) ([]interface{}, error) {
	switch x := v.(type) {
	case nil:
		return nil, errors.New("must be list, not nil")
	case Value:
		if x.Kind != KindList {
			return nil, fmt.Errorf("must be list, not %v", x.Kind)
		}
		items := make([]interface{}, len(x.List))
		for n, item := range x.List {
			items[n] = item
		}
		return items, nil
	case string:
		s := strings.Trim(strings.TrimSpace(x), "[]")
		if s == "" {
			return nil, nil
		}
		strs := strings.Split(s, ",")
		items := make([]interface{}, len(strs))
		for n, str := range strs {
			items[n] = strings.TrimSpace(str)
		}
		return items, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("must be list, not %T", v)
	}
	items := make([]interface{}, rv.Len())
	for n := range items {
		items[n] = rv.Index(n).Interface()
	}
	return items, nil
}

// args is the parsed argument list passed to forwarders.
type args []Value

func (a args) Int(n int) int {
	return int(a[n].Int)
}

func (a args) Uint8(n int) uint8 {
	return uint8(a[n].Int)
}

func (a args) Uint16(n int) uint16 {
	return uint16(a[n].Int)
}

func (a args) Float(n int) float32 {
	return float32(a[n].Float)
}

func (a args) Bytes(n int) []uint8 {
	data := make([]uint8, len(a[n].List))
	for i, v := range a[n].List {
		data[i] = uint8(v.Int)
	}
	return data
}

func (a args) Words(n int) []uint16 {
	data := make([]uint16, len(a[n].List))
	for i, v := range a[n].List {
		data[i] = uint16(v.Int)
	}
	return data
}
