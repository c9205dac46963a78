package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Path is the HTTP path serving websocket connections.
const Path = "/rc"

// Server accepts websocket connections and serves commands on each.
type Server struct {
	Addr   string
	Server *comm.Server
}

// Name implements Named.
func (s *Server) Name() string {
	return "websocket"
}

// Handler creates the HTTP handler. Each connection is served until it is
// closed or ctx is done.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		glog.Infof("websocket client %s connected", conn.Request().RemoteAddr)
		err := s.Server.Serve(ctx, New(conn))
		glog.Infof("websocket client %s disconnected: %v", conn.Request().RemoteAddr, err)
	})
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(Path, s.Handler(ctx))
	srv := &http.Server{Handler: mux}
	glog.Infof("serving websocket on %s%s", ln.Addr(), Path)
	return fx.RunWithContextCloser(ctx, srv, func() error {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}
