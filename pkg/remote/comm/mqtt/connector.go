package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
)

// Connector implements remote.Connector using MQTT.
type Connector struct {
	DiscoverTimeout time.Duration

	options     *paho.ClientOptions
	topicPrefix string
}

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		options:         opts,
		topicPrefix:     topicPrefix,
	}, nil
}

// ParseMetaTopic extracts the server ref from a meta topic.
func ParseMetaTopic(topic string) (remote.ServerRef, bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 || items[2] != "meta" {
		return remote.ServerRef{}, false
	}
	return remote.ServerRef{Name: items[0], ID: items[1]}, true
}

// Discover implements Connector. Servers with an empty meta are
// unregistered and skipped.
func (c *Connector) Discover(ctx context.Context) (res []remote.ServerInfo, err error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err = q.ConnectAndWait(); err != nil {
		return nil, err
	}
	defer q.Close()
	resCh := make(chan remote.ServerInfo, 1)
	q.Sub("+/+/meta", Handler(func(topic string, payload []byte) {
		ref, ok := ParseMetaTopic(topic)
		if !ok || len(payload) == 0 {
			return
		}
		info := remote.ServerInfo{Ref: ref}
		if err := json.Unmarshal(payload, &info.Meta); err != nil {
			glog.Warningf("invalid meta of %s: %v", ref, err)
		}
		select {
		case resCh <- info:
		case <-time.After(time.Second):
		}
	}))

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	timeout := time.After(dur)
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-timeout:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref remote.ServerRef) (remote.Conn, error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err := q.ConnectAndWait(); err != nil {
		return nil, err
	}
	rw := NewPacketReadWriter(q).ForConnector(ref)
	if err := rw.Open(); err != nil {
		q.Close()
		return nil, err
	}
	return &Conn{Conn: comm.NewConn(rw), Queue: q}, nil
}

// Conn implements remote.Conn using MQTT.
type Conn struct {
	*comm.Conn
	Queue *Queue
}

// Close implements remote.Conn.
func (c *Conn) Close() error {
	err := c.Conn.Close()
	c.Queue.Close()
	return err
}
