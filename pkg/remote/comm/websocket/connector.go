package websocket

import (
	"context"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Connector connects to a single server by websocket URL.
type Connector struct {
	URL    string
	Origin string
}

// NewConnector creates a Connector, the path defaults to Path.
func NewConnector(serverURL string) (*Connector, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = Path
	}
	origin := url.URL{Scheme: "http", Host: u.Host}
	if u.Scheme == "wss" {
		origin.Scheme = "https"
	}
	return &Connector{URL: u.String(), Origin: origin.String()}, nil
}

// Discover implements Connector. The only server is the one at URL.
func (c *Connector) Discover(ctx context.Context) ([]remote.ServerInfo, error) {
	return []remote.ServerInfo{{Ref: remote.ServerRef{Name: c.URL}}}, nil
}

// Connect implements Connector, ref is ignored.
func (c *Connector) Connect(ctx context.Context, ref remote.ServerRef) (remote.Conn, error) {
	conn, err := websocket.Dial(c.URL, "", c.Origin)
	if err != nil {
		return nil, err
	}
	return comm.NewConn(New(conn)), nil
}
