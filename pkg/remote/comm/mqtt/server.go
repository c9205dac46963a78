package mqtt

import (
	"context"
	"encoding/json"

	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Server registers an rc server on an MQTT broker and serves commands.
type Server struct {
	Queue  *Queue
	Info   remote.ServerInfo
	Server *comm.Server

	metaJSON []byte
}

// NewServer creates a Server.
func NewServer(brokerURL string, info remote.ServerInfo, srv *comm.Server) (*Server, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+metaTopic(info.Ref), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("rc:" + info.Ref.Path())
	}
	s := &Server{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		Server:   srv,
		metaJSON: meta,
	}
	s.Queue.OnConnect = func(*Queue) { s.onConnected() }
	return s, nil
}

// Name implements Named.
func (s *Server) Name() string {
	return "mqtt"
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Queue.ConnectAndWait(); err != nil {
		return err
	}
	defer s.Queue.Close()
	rw := NewPacketReadWriter(s.Queue).ForServer(s.Info.Ref)
	if err := rw.Open(); err != nil {
		return err
	}
	glog.Infof("serving %s on MQTT", s.Info.Ref)
	err := s.Server.Serve(ctx, rw)
	s.Queue.PubWith(metaTopic(s.Info.Ref), nil, 1, true).Wait()
	return err
}

func (s *Server) onConnected() {
	s.Queue.PubWith(metaTopic(s.Info.Ref), s.metaJSON, 1, true)
}

func metaTopic(ref remote.ServerRef) string {
	return ref.Path() + "/meta"
}
