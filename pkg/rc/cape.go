package rc

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotInitialized indicates the library hasn't been successfully
// initialized through the handle.
var ErrNotInitialized = errors.New("cape not initialized")

// StatusError wraps a negative status code returned by a native function.
type StatusError struct {
	Op   string
	Code int
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Code)
}

// Status converts a native status code into an error, nil for
// non-negative codes.
func Status(op string, code int) error {
	if code < 0 {
		return &StatusError{Op: op, Code: code}
	}
	return nil
}

// StatusCode extracts the native status code from an error returned by
// Status. nil maps to 0, other errors map to -1.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return -1
}

// Cape is the owned handle over a Library. All native calls are routed
// through it so the "initialized" precondition is checked in one place.
// The lock only guards the handle's own flag, native calls are not
// serialized.
type Cape struct {
	lib         Library
	lock        sync.RWMutex
	initialized bool
}

// NewCape creates an uninitialized handle.
func NewCape(lib Library) *Cape {
	return &Cape{lib: lib}
}

// Open creates a handle and initializes it.
func Open(lib Library) (*Cape, error) {
	c := NewCape(lib)
	if err := c.Initialize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Library returns the wrapped library.
func (c *Cape) Library() Library {
	return c.lib
}

// Initialized indicates Initialize succeeded and Cleanup hasn't been called.
func (c *Cape) Initialized() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.initialized
}

// Initialize calls the native initializer. It's always forwarded, even if the
// handle is already initialized, the library decides what a second call does.
func (c *Cape) Initialize() error {
	err := Status("rc_initialize", c.lib.Initialize())
	if err == nil {
		c.lock.Lock()
		c.initialized = true
		c.lock.Unlock()
	}
	return err
}

// Cleanup shuts the library down. The handle is uninitialized afterwards
// regardless of the status returned.
func (c *Cape) Cleanup() error {
	c.lock.Lock()
	initialized := c.initialized
	c.initialized = false
	c.lock.Unlock()
	if !initialized {
		return ErrNotInitialized
	}
	return Status("rc_cleanup", c.lib.Cleanup())
}

// Use runs fn with the library if the handle is initialized.
func (c *Cape) Use(fn func(Library)) error {
	if !c.Initialized() {
		return ErrNotInitialized
	}
	fn(c.lib)
	return nil
}

// Peek runs fn regardless of initialization, it's only for native functions
// which are valid before rc_initialize (e.g. state and model queries).
func (c *Cape) Peek(fn func(Library)) {
	fn(c.lib)
}
