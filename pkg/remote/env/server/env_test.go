package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/mqtt"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/stream"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/websocket"
)

func TestNewEnv(t *testing.T) {
	srv := comm.NewServer(binding.New(sim.New()))
	conf := NewConfig()
	conf.Info.Ref.Name = "blue"
	conf.Info.Ref.ID = "1234"
	conf.MQTTBrokerURL = "mqtt://localhost:1883/rc/"
	conf.WebsocketAddr = ":8080"
	conf.TCPAddr = ":7001"
	e, err := conf.NewEnv(srv)
	require.NoError(t, err)
	require.Len(t, e.Servers, 3)
	require.IsType(t, &mqtt.Server{}, e.Servers[0])
	require.IsType(t, &websocket.Server{}, e.Servers[1])
	require.IsType(t, &stream.Server{}, e.Servers[2])

	conf.MQTTBrokerURL, conf.WebsocketAddr, conf.TCPAddr = "", "", ""
	_, err = conf.NewEnv(srv)
	require.Error(t, err)
}

func TestDefaultID(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref.ID = ""
	conf.TCPAddr = ":7001"
	_, err := conf.NewEnv(comm.NewServer(binding.New(sim.New())))
	require.NoError(t, err)
	require.NotEmpty(t, conf.Info.Ref.ID)
}

func TestRunStopsOnFailure(t *testing.T) {
	var stopped bool
	e := &Env{Servers: []fx.Runnable{
		fx.RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			stopped = true
			return ctx.Err()
		}),
		fx.RunFunc(func(context.Context) error { return errors.New("listen tcp :7001: address already in use") }),
	}}
	r := fx.NewRunner()
	e.Run(r)
	err := r.Wait()
	require.EqualError(t, err, "Multiple errors:\nlisten tcp :7001: address already in use")
	require.True(t, stopped)
	require.Len(t, r.Runners, 2)
	for _, runner := range r.Runners {
		require.Implements(t, (*fx.Named)(nil), runner)
	}
}
