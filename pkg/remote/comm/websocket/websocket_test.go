package websocket

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

func TestWebsocketInvoke(t *testing.T) {
	lib := sim.New()
	lib.Out = io.Discard
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &Server{Server: comm.NewServer(binding.New(lib))}
	mux := http.NewServeMux()
	mux.Handle(Path, s.Handler(ctx))
	hs := httptest.NewServer(mux)
	defer hs.Close()

	connector, err := NewConnector("ws://" + strings.TrimPrefix(hs.URL, "http://"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(connector.URL, Path))
	conn, err := connector.Connect(ctx, remote.ServerRef{})
	require.NoError(t, err)
	client := remote.NewClient(conn)
	defer client.Close()

	v, err := client.Call(ctx, "rcInitialize")
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)
	v, err = client.Call(ctx, "rcSetLED", 0, 1)
	require.NoError(t, err)
	require.Equal(t, binding.Int(0), v)
	require.Equal(t, 1, lib.Snapshot().LEDs[0])
}
