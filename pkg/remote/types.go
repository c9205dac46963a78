// Package remote exposes a binding.Module to other processes.
package remote

import (
	"context"

	fx "github.com/robotalks/roboticscape.go/pkg/framework"
)

// ServerRef is a reference to an rc server.
type ServerRef struct {
	// Name is the robot name.
	Name string
	// ID is unique ID of the device.
	ID string
}

// Path retrieves the topic path from ref.
func (r ServerRef) Path() string {
	return r.Name + "/" + r.ID
}

// IsValid indicates ServerRef is valid.
func (r ServerRef) IsValid() bool {
	return r.Name != "" && r.ID != ""
}

// String implements Stringer.
func (r ServerRef) String() string {
	return r.Path()
}

// ServerMeta provides metadata for an rc server.
type ServerMeta struct {
	Description string            `json:"description,omitempty"`
	Backend     string            `json:"backend,omitempty"`
	Model       string            `json:"model,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ServerInfo provides information of an rc server.
type ServerInfo struct {
	Ref  ServerRef
	Meta ServerMeta
}

// Connector is used by clients to connect to an rc server.
type Connector interface {
	// Discover enumerates registered servers.
	Discover(context.Context) ([]ServerInfo, error)
	// Connect connects to the specified server.
	Connect(context.Context, ServerRef) (Conn, error)
}

// Conn is the connection to a server.
type Conn interface {
	// DoCommand executes a command.
	DoCommand(fx.Message) CommandFuture
	// Close disconnects from the server.
	Close() error
}

// Result represents result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}

// Wait waits for the result of a command until ctx is done.
func Wait(ctx context.Context, f CommandFuture) (fx.Message, error) {
	select {
	case r, ok := <-f.ResultChan():
		if !ok {
			return nil, context.Canceled
		}
		return r.Msg, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
