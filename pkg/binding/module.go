package binding

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Module is the namespace exposing the method table over a Cape handle.
//
// Two entry points are provided. Invoke is the Go API: native failures are
// returned as *rc.StatusError. Call is the compatibility boundary used by
// host surfaces (shell, remote): status codes are returned as values exactly
// as the native library produced them.
type Module struct {
	cape      *rc.Cape
	closeOnce sync.Once
	closeErr  error
}

// New creates a Module over an uninitialized handle of lib.
func New(lib rc.Library) *Module {
	return &Module{cape: rc.NewCape(lib)}
}

// NewWithCape creates a Module over an existing handle.
func NewWithCape(c *rc.Cape) *Module {
	return &Module{cape: c}
}

// Cape returns the handle.
func (m *Module) Cape() *rc.Cape {
	return m.cape
}

// Methods returns the method table in registration order.
func (m *Module) Methods() []Method {
	return Methods()
}

// Methods returns the method table in registration order.
func Methods() []Method {
	methods := make([]Method, len(table))
	for n, meth := range table {
		methods[n] = *meth
	}
	return methods
}

// Lookup finds a method by name.
func (m *Module) Lookup(name string) (Method, bool) {
	if meth, ok := index[name]; ok {
		return *meth, true
	}
	return Method{}, false
}

func (m *Module) lookup(name string) (*Method, error) {
	if meth, ok := index[name]; ok {
		return meth, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchMethod, name)
}

// Invoke calls the named method and returns a result or an error. Errors are
// *ArgError (the library is not called), rc.ErrNotInitialized or
// *rc.StatusError.
func (m *Module) Invoke(name string, vals ...interface{}) (Value, error) {
	meth, err := m.lookup(name)
	if err != nil {
		return Value{}, err
	}
	a, err := meth.ParseArgs(vals...)
	if err != nil {
		return Value{}, err
	}
	result, err := meth.call(m.cape, a)
	glog.V(2).Infof("invoke %s%v: %v %v", name, a, result, err)
	if err != nil {
		return Value{}, err
	}
	return result, nil
}

// Call calls the named method with the conventions of the original binding:
//
//   - status codes, including negative ones, are returned as values;
//   - methods with a legacy default return it instead of an argument error;
//   - before rcInitialize succeeded, calls return -1 (-1.0 for float
//     results) without reaching the library, except methods valid before
//     initialization.
//
// The only errors returned are argument errors and ErrNoSuchMethod.
func (m *Module) Call(name string, vals ...interface{}) (Value, error) {
	meth, err := m.lookup(name)
	if err != nil {
		return Value{}, err
	}
	a, err := meth.ParseArgs(vals...)
	if err != nil {
		if meth.ArgDefault != nil {
			glog.V(2).Infof("call %s: %v, returning default", name, err)
			return *meth.ArgDefault, nil
		}
		return Value{}, err
	}
	result, err := meth.call(m.cape, a)
	glog.V(2).Infof("call %s%v: %v %v", name, a, result, err)
	var se *rc.StatusError
	switch {
	case err == nil, errors.As(err, &se):
		return result, nil
	case errors.Is(err, rc.ErrNotInitialized):
		return meth.failed(), nil
	}
	return Value{}, err
}

// Close cleans up the library if the handle is still initialized. It only
// acts once, like an exit handler.
func (m *Module) Close() error {
	m.closeOnce.Do(func() {
		if m.cape.Initialized() {
			glog.Info("cleaning up roboticscape")
			m.closeErr = m.cape.Cleanup()
		}
	})
	return m.closeErr
}
