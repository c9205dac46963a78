package remote

import (
	"context"
	"fmt"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	pb "github.com/robotalks/roboticscape.go/pkg/proto/rc/v1"
	"github.com/robotalks/roboticscape.go/pkg/remote/msgs"
)

// Client calls methods of a remote module.
type Client struct {
	Conn Conn
}

// NewClient creates a Client over conn.
func NewClient(conn Conn) *Client {
	return &Client{Conn: conn}
}

// Call calls the named method with the same conventions as
// binding.Module.Call: status codes are results, argument errors and unknown
// methods are errors.
func (c *Client) Call(ctx context.Context, name string, vals ...interface{}) (binding.Value, error) {
	invoke, err := msgs.NewInvokeArgs(name, vals...)
	if err != nil {
		return binding.Value{}, fmt.Errorf("%s() %w", name, err)
	}
	msg, err := Wait(ctx, c.Conn.DoCommand(invoke))
	if err != nil {
		return binding.Value{}, err
	}
	result, ok := msg.(*msgs.InvokeResult)
	if !ok {
		return binding.Value{}, fmt.Errorf("unexpected reply %T", msg)
	}
	return result.Result(), nil
}

// Methods retrieves the method table of the server.
func (c *Client) Methods(ctx context.Context) ([]*pb.MethodInfo, error) {
	msg, err := Wait(ctx, c.Conn.DoCommand(&msgs.MethodsQuery{}))
	if err != nil {
		return nil, err
	}
	list, ok := msg.(*msgs.MethodList)
	if !ok {
		return nil, fmt.Errorf("unexpected reply %T", msg)
	}
	return list.Methods, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.Conn.Close()
}
