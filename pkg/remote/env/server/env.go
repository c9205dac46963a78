// Package server configures rc servers exposing a module remotely.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang/glog"

	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/mqtt"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/stream"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/websocket"
	"github.com/robotalks/roboticscape.go/pkg/remote/env"
)

// Config provides common options to setup an rc server.
type Config struct {
	Info remote.ServerInfo

	// MQTTBrokerURL specifies the MQTT broker to register with.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// WebsocketAddr is the listen address of the websocket server.
	WebsocketAddr string
	// TCPAddr is the listen address of the stream server.
	TCPAddr string
}

var defaultConfig = Config{
	Info: remote.ServerInfo{
		Ref: remote.ServerRef{Name: "rc"},
	},
	MQTTBrokerURL: "mqtt://localhost:1883/rc/",
}

func init() {
	if val := os.Getenv("RC_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("RC_NAME"); val != "" {
		defaultConfig.Info.Ref.Name = val
	}
	if val := os.Getenv("RC_ID"); val != "" {
		defaultConfig.Info.Ref.ID = val
	}
	if val := os.Getenv("RC_WS_ADDR"); val != "" {
		defaultConfig.WebsocketAddr = val
	}
	if val := os.Getenv("RC_TCP_ADDR"); val != "" {
		defaultConfig.TCPAddr = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Name, "name", defaultConfig.Info.Ref.Name, "Robot name")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Robot ID, default is derived from machine ID")
	flag.StringVar(&defaultConfig.Info.Meta.Description, "description", defaultConfig.Info.Meta.Description, "Robot description")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	flag.StringVar(&defaultConfig.WebsocketAddr, "ws", defaultConfig.WebsocketAddr, "Websocket listen address, e.g. :8080")
	flag.StringVar(&defaultConfig.TCPAddr, "tcp", defaultConfig.TCPAddr, "TCP listen address, e.g. :7001")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is the set of servers exposing one module.
type Env struct {
	Config  *Config
	Servers []fx.Runnable
}

// NewEnv creates the servers of all configured transports.
func (c *Config) NewEnv(srv *comm.Server) (*Env, error) {
	if c.Info.Ref.ID == "" {
		c.Info.Ref.ID = env.MachineID()
	}
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("robot name and id must be specified")
	}
	e := &Env{Config: c}
	if c.MQTTBrokerURL != "" {
		s, err := mqtt.NewServer(c.MQTTBrokerURL, c.Info, srv)
		if err != nil {
			return nil, fmt.Errorf("create MQTT server error: %w", err)
		}
		e.Servers = append(e.Servers, s)
	}
	if c.WebsocketAddr != "" {
		e.Servers = append(e.Servers, &websocket.Server{Addr: c.WebsocketAddr, Server: srv})
	}
	if c.TCPAddr != "" {
		e.Servers = append(e.Servers, &stream.Server{Addr: c.TCPAddr, Server: srv})
	}
	if len(e.Servers) == 0 {
		return nil, fmt.Errorf("at least one of -mqtt, -ws, -tcp is required")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv(srv *comm.Server) *Env {
	e, err := c.NewEnv(srv)
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// Run starts all servers with the runner. A failing server stops the others.
func (e *Env) Run(r *fx.Runner) {
	ctx, cancel := context.WithCancel(r.Context)
	for n, srv := range e.Servers {
		name := strconv.Itoa(n)
		if named, ok := srv.(fx.Named); ok {
			name = named.Name()
		}
		srv := srv
		r.GoWith(ctx, fx.NamedRun(name, fx.RunFunc(func(ctx context.Context) error {
			err := srv.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				glog.Errorf("%s server stopped: %v", name, err)
				cancel()
			}
			return err
		})))
	}
}
