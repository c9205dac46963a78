package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/remote/comm/mqtt"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/stream"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/websocket"
)

func TestNewConnector(t *testing.T) {
	conf := NewConfig()
	testCases := []struct {
		url    string
		direct bool
		expect interface{}
	}{
		{"mqtt://localhost:1883/rc/", false, &mqtt.Connector{}},
		{"ws://blue.local:8080", true, &websocket.Connector{}},
		{"tcp://blue.local:7001", true, &stream.Connector{}},
	}
	for _, tc := range testCases {
		conf.RegistryURL = tc.url
		require.Equal(t, tc.direct, conf.IsDirect())
		c, err := conf.NewConnector()
		require.NoError(t, err)
		require.IsType(t, tc.expect, c)
	}

	conf.RegistryURL = "udp://blue.local"
	_, err := conf.NewConnector()
	require.EqualError(t, err, `unknown registry URL scheme: "udp"`)
}

func TestConnectRequiresRef(t *testing.T) {
	conf := NewConfig()
	conf.RegistryURL = "mqtt://localhost:1883/rc/"
	conf.Ref.Name = ""
	_, err := conf.Connect(context.Background())
	require.EqualError(t, err, "robot name and id must be specified")
}
