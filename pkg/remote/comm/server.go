package comm

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/remote/msgs"
)

// Server answers commands with a binding.Module.
//
// Commands are dispatched on the goroutine reading the connection, so each
// connection invokes one method at a time. Separate connections are served
// concurrently without further locking.
type Server struct {
	Module *binding.Module
}

// NewServer creates a Server.
func NewServer(m *binding.Module) *Server {
	return &Server{Module: m}
}

// Handle answers one command.
func (s *Server) Handle(msg fx.Message) fx.Message {
	switch m := msg.(type) {
	case *msgs.Invoke:
		v, err := s.Module.Call(m.Name, m.Values()...)
		if err != nil {
			glog.V(2).Infof("invoke %s rejected: %v", m.Name, err)
			return msgs.NewCommandErr(err)
		}
		return msgs.NewInvokeResult(v)
	case *msgs.MethodsQuery:
		return msgs.NewMethodList(s.Module.Methods())
	}
	return msgs.NewCommandErr(msgs.ErrUnsupportedCommand)
}

// HandleTypedMsg implements TypedMsgHandler.
func (s *Server) HandleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if !typed.IsCommand() || typed.IsReply() {
		return nil
	}
	return pipeFrom(ctx).SendCommandMsg(s.Handle(msg), typed.Sequence)
}

// Serve serves commands received from rw until rw fails or ctx is done.
func (s *Server) Serve(ctx context.Context, rw PacketReadWriter) error {
	p := NewPipe(rw)
	p.Handler = s
	return p.Run(withPipe(ctx, p))
}

type pipeKey struct{}

func withPipe(ctx context.Context, p *Pipe) context.Context {
	return context.WithValue(ctx, pipeKey{}, p)
}

func pipeFrom(ctx context.Context) *Pipe {
	return ctx.Value(pipeKey{}).(*Pipe)
}
