package comm

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	pb "github.com/robotalks/roboticscape.go/pkg/proto/rc/v1"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/msgs"
)

type memLink struct {
	done chan struct{}
	once sync.Once
}

type memReadWriter struct {
	link *memLink
	in   <-chan []byte
	out  chan<- []byte
}

func newMemPair() (*memReadWriter, *memReadWriter) {
	link := &memLink{done: make(chan struct{})}
	a2b, b2a := make(chan []byte), make(chan []byte)
	return &memReadWriter{link: link, in: b2a, out: a2b},
		&memReadWriter{link: link, in: a2b, out: b2a}
}

func (m *memReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-m.in:
		return pkt, nil
	case <-m.link.done:
		return nil, io.EOF
	}
}

func (m *memReadWriter) WritePacket(pkt []byte) error {
	select {
	case m.out <- pkt:
		return nil
	case <-m.link.done:
		return io.ErrClosedPipe
	}
}

func (m *memReadWriter) Close() error {
	m.link.once.Do(func() { close(m.link.done) })
	return nil
}

type serving struct {
	lib    *sim.Library
	client *remote.Client
	errCh  chan error
}

func serve(t *testing.T) *serving {
	lib := sim.New()
	lib.Out = io.Discard
	srvEnd, cliEnd := newMemPair()
	s := &serving{lib: lib, errCh: make(chan error, 1)}
	go func() {
		s.errCh <- NewServer(binding.New(lib)).Serve(context.Background(), srvEnd)
	}()
	s.client = remote.NewClient(NewConn(cliEnd))
	return s
}

func TestRemoteInvoke(t *testing.T) {
	s := serve(t)
	ctx := context.Background()

	v, err := s.client.Call(ctx, "rcSetMotor", 1, 0.5)
	require.NoError(t, err)
	require.Equal(t, binding.Int(-1), v)

	v, err = s.client.Call(ctx, "rcInitialize")
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)

	s.lib.Update(func(st *sim.State) { st.BatteryVoltage = 7.4 })
	v, err = s.client.Call(ctx, "rcBatteryVoltage")
	require.NoError(t, err)
	require.Equal(t, float32(7.4), float32(v.Float))

	v, err = s.client.Call(ctx, "rcSetEncoderPos", "2", "-42")
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)
	require.Equal(t, int64(-42), s.lib.Snapshot().Encoders[1])

	s.lib.Update(func(st *sim.State) { st.Encoders[1] = -9000000000 })
	v, err = s.client.Call(ctx, "rcGetEncoderPos", 2)
	require.NoError(t, err)
	require.Equal(t, binding.Int(-9000000000), v)

	v, err = s.client.Call(ctx, "rcGetEncoderPos")
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)

	v, err = s.client.Call(ctx, "rcGetStateAsEnum")
	require.NoError(t, err)
	require.Equal(t, binding.Enum(2, "PAUSED"), v)

	v, err = s.client.Call(ctx, "rcSetMotor", 9, 0.5)
	require.NoError(t, err)
	require.Equal(t, binding.Int(-1), v)

	require.NoError(t, s.client.Close())
	require.Error(t, <-s.errCh)
}

func TestRemoteErrors(t *testing.T) {
	s := serve(t)
	defer s.client.Close()
	ctx := context.Background()

	_, err := s.client.Call(ctx, "rcSetMotor", 1)
	require.EqualError(t, err, "rcSetMotor() takes exactly 2 arguments (1 given)")
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr))

	_, err = s.client.Call(ctx, "rcFly")
	require.EqualError(t, err, "no such method: rcFly")

	_, err = s.client.Call(ctx, "rcSetMotor", "left", 0)
	require.ErrorContains(t, err, "rcSetMotor() argument 1: ")
	require.True(t, errors.As(err, &cmdErr))

	_, err = s.client.Call(ctx, "rcSetMotor", map[string]int{}, 0)
	require.ErrorContains(t, err, "rcSetMotor() argument 1: unsupported value")
	require.False(t, errors.As(err, &cmdErr))
	require.Empty(t, s.lib.Calls())
}

func TestRemoteLegacyDefault(t *testing.T) {
	s := serve(t)
	defer s.client.Close()
	ctx := context.Background()
	_, err := s.client.Call(ctx, "rcInitialize")
	require.NoError(t, err)
	s.lib.ResetCalls()

	v, err := s.client.Call(ctx, "rcGetEncoderPos", "left")
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)
	require.Empty(t, s.lib.Calls())
}

func TestRemoteMethods(t *testing.T) {
	s := serve(t)
	defer s.client.Close()
	methods, err := s.client.Methods(context.Background())
	require.NoError(t, err)
	local := binding.New(sim.New()).Methods()
	require.Len(t, methods, len(local))
	for n, meth := range local {
		require.Equal(t, meth.Name, methods[n].Name)
		require.Equal(t, meth.Usage(), methods[n].Usage)
		require.Equal(t, meth.PreInit, methods[n].PreInit)
	}
}

type customCommand struct {
	pb.CommandOK
}

func (m *customCommand) NewMessage() fx.Message      { return &customCommand{} }
func (m *customCommand) TypeID() uint32              { return msgs.GroupCustom | 1 }
func (m *customCommand) Serializable() proto.Message { return &m.CommandOK }

func TestUnknownCommand(t *testing.T) {
	s := serve(t)
	defer s.client.Close()
	_, err := remote.Wait(context.Background(), s.client.Conn.DoCommand(&customCommand{}))
	require.EqualError(t, err, "unknown type: 7f000001")
}

func TestCommandExpiration(t *testing.T) {
	srvEnd, cliEnd := newMemPair()
	drain := make(chan struct{})
	go func() {
		defer close(drain)
		for {
			if _, err := srvEnd.ReadPacket(); err != nil {
				return
			}
		}
	}()
	c := &Conn{}
	c.Init(cliEnd)
	c.Expiration = 40 * time.Millisecond
	c.Start()
	_, err := remote.Wait(context.Background(), c.DoCommand(&msgs.MethodsQuery{}))
	require.Equal(t, context.DeadlineExceeded, err)

	require.NoError(t, c.Close())
	<-drain
	_, err = remote.Wait(context.Background(), c.DoCommand(&msgs.MethodsQuery{}))
	require.Equal(t, ErrConnClosed, err)
}
