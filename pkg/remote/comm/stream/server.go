package stream

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Server accepts TCP connections and serves commands on each.
type Server struct {
	Addr   string
	Server *comm.Server
}

// Name implements Named.
func (s *Server) Name() string {
	return "tcp"
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("serving tcp on %s", ln.Addr())
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is done, and waits for all
// connections to be closed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				glog.Infof("tcp client %s connected", conn.RemoteAddr())
				err := s.Server.Serve(ctx, New(conn))
				glog.Infof("tcp client %s disconnected: %v", conn.RemoteAddr(), err)
			}()
		}
	})
}
