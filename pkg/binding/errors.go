package binding

import (
	"errors"
	"fmt"
)

// ErrNoSuchMethod indicates the name isn't in the method table.
var ErrNoSuchMethod = errors.New("no such method")

// ArgError is a host level argument error. It's raised before any native
// call, so the library is untouched when it's returned.
type ArgError struct {
	Func string
	Err  error
	// Index is the zero-based argument position, -1 for arity errors.
	Index int
	// Min and Max are the accepted argument counts, Given the actual one.
	Min, Max, Given int
}

// Error implements error.
func (e *ArgError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s() takes %s (%d given)", e.Func, arity(e.Min, e.Max), e.Given)
	}
	return fmt.Sprintf("%s() argument %d: %v", e.Func, e.Index+1, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ArgError) Unwrap() error {
	return e.Err
}

func arity(min, max int) string {
	plural := func(n int) string {
		if n == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", n)
	}
	switch {
	case max == 0:
		return "no arguments"
	case min == max:
		return "exactly " + plural(min)
	default:
		return fmt.Sprintf("%d to %s", min, plural(max))
	}
}

// IsArgError indicates err is caused by invalid arguments.
func IsArgError(err error) bool {
	var ae *ArgError
	return errors.As(err, &ae)
}
