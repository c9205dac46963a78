// Package connector configures clients connecting to rc servers.
package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/mqtt"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/stream"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref remote.ServerRef

	// RegistryURL specifies the URL of server registry or the server itself.
	// e.g. mqtt://host:port/topic-prefix, ws://host:port, tcp://host:port
	RegistryURL string
}

var defaultConfig = Config{
	RegistryURL: "mqtt://localhost:1883/rc/",
}

func init() {
	if val := os.Getenv("RC_NAME"); val != "" {
		defaultConfig.Ref.Name = val
	}
	if val := os.Getenv("RC_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("RC_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Name, "rc-name", defaultConfig.Ref.Name, "Robot name to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "rc-id", defaultConfig.Ref.ID, "Robot ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "rc-reg", defaultConfig.RegistryURL, "Registry URL: mqtt://, ws:// or tcp://.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// IsDirect indicates the registry URL is the address of a single server.
func (c *Config) IsDirect() bool {
	u, err := url.Parse(c.RegistryURL)
	return err == nil && u.Scheme != "mqtt" && u.Scheme != "mqtts"
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (remote.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "mqtts":
		return mqtt.NewConnector(c.RegistryURL)
	case "ws", "wss":
		return websocket.NewConnector(c.RegistryURL)
	case "tcp":
		return stream.NewConnector(c.RegistryURL)
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() remote.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to the server.
func (c *Config) Connect(ctx context.Context) (remote.Conn, error) {
	if !c.IsDirect() && !c.Ref.IsValid() {
		return nil, fmt.Errorf("robot name and id must be specified")
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(ctx, c.Ref)
}

// MustConnect connects to the server and fails on error.
func (c *Config) MustConnect(ctx context.Context) remote.Conn {
	conn, err := c.Connect(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}
