package binding

import (
	"strings"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Convention is the calling convention of a method.
type Convention int

// Conventions
const (
	// NoArgs methods accept no arguments.
	NoArgs Convention = iota
	// VarArgs methods accept a positional argument list.
	VarArgs
)

// String implements Stringer.
func (c Convention) String() string {
	if c == NoArgs {
		return "noargs"
	}
	return "varargs"
}

// forwarder marshals parsed arguments into one native call and the result
// back. The returned Value is what the original binding returns, the error
// is non-nil only for negative status codes.
type forwarder func(lib rc.Library, a args) (Value, error)

// Method is an entry of the method table.
type Method struct {
	Name string
	Conv Convention
	Args []Arg
	Doc  string
	// PreInit methods are valid before rcInitialize.
	PreInit bool
	// ArgDefault is returned by Module.Call instead of an argument error.
	ArgDefault *Value
	// Result is the kind of value returned on success.
	Result Kind

	fn forwarder
	// handle replaces fn for methods operating on the handle itself.
	handle func(c *rc.Cape) (Value, error)
}

// MinArgs is the number of required arguments.
func (m *Method) MinArgs() int {
	n := 0
	for _, a := range m.Args {
		if a.Default == nil {
			n++
		}
	}
	return n
}

// Usage returns the call signature, e.g. "rcSetMotor(motor int, duty float)".
func (m *Method) Usage() string {
	strs := make([]string, len(m.Args))
	for n, a := range m.Args {
		strs[n] = a.String()
	}
	return m.Name + "(" + strings.Join(strs, ", ") + ")"
}

// ParseArgs checks the arity and converts all arguments.
func (m *Method) ParseArgs(vals ...interface{}) ([]Value, error) {
	min, max := m.MinArgs(), len(m.Args)
	if len(vals) < min || len(vals) > max {
		return nil, &ArgError{Func: m.Name, Index: -1, Min: min, Max: max, Given: len(vals)}
	}
	parsed := make([]Value, max)
	for n, a := range m.Args {
		if n >= len(vals) {
			parsed[n] = *a.Default
			continue
		}
		v, err := a.Kind.Convert(vals[n])
		if err == nil && a.Check != nil {
			err = a.Check(v)
		}
		if err != nil {
			return nil, &ArgError{Func: m.Name, Index: n, Min: min, Max: max, Given: len(vals), Err: err}
		}
		parsed[n] = v
	}
	return parsed, nil
}

// failed returns the status -1 in the kind of the method result.
func (m *Method) failed() Value {
	if m.Result == KindFloat {
		return Float(-1)
	}
	return Int(-1)
}

// call forwards parsed arguments through the handle.
func (m *Method) call(c *rc.Cape, a []Value) (Value, error) {
	if m.handle != nil {
		return m.handle(c)
	}
	var (
		result Value
		err    error
	)
	run := func(lib rc.Library) { result, err = m.fn(lib, a) }
	if m.PreInit {
		c.Peek(run)
	} else if e := c.Use(run); e != nil {
		return Value{}, e
	}
	return result, err
}
