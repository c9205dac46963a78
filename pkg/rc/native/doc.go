// Package native binds rc.Library to libroboticscape using cgo.
//
// The binding is only compiled with the "roboticscape" build tag and cgo
// enabled, e.g. on a BeagleBone:
//
//	go build -tags roboticscape ./cmd/...
//
// Otherwise New returns ErrUnavailable and programs fall back to the
// simulated library.
package native
