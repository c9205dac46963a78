//go:build !cgo || !roboticscape
// +build !cgo !roboticscape

package native

import (
	"errors"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Available indicates the binary is linked against libroboticscape.
const Available = false

// ErrUnavailable is returned by New when built without libroboticscape.
var ErrUnavailable = errors.New("built without libroboticscape, rebuild with -tags roboticscape")

// New returns ErrUnavailable.
func New() (rc.Library, error) {
	return nil, ErrUnavailable
}
