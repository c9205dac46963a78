package stream

import (
	"context"
	"net"
	"net/url"

	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Connector connects to a single server by address.
type Connector struct {
	Addr string
}

// NewConnector creates a Connector from tcp://host:port.
func NewConnector(serverURL string) (*Connector, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	return &Connector{Addr: u.Host}, nil
}

// Discover implements Connector. The only server is the one at Addr.
func (c *Connector) Discover(ctx context.Context) ([]remote.ServerInfo, error) {
	return []remote.ServerInfo{{Ref: remote.ServerRef{Name: c.Addr}}}, nil
}

// Connect implements Connector, ref is ignored.
func (c *Connector) Connect(ctx context.Context, ref remote.ServerRef) (remote.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	return comm.NewConn(New(conn)), nil
}
