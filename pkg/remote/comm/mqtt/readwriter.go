package mqtt

import (
	"io"
	"sync"

	"github.com/robotalks/roboticscape.go/pkg/remote"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	done      chan struct{}
	sub       *Subscription
	closeOnce sync.Once
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForConnector sets topics using default convention for connector:
// SubTopic = name/id/msg
// PubTopic = name/id/cmd
func (p *ReadWriter) ForConnector(ref remote.ServerRef) *ReadWriter {
	prefix := ref.Path()
	return p.WithTopics(prefix+"/msg", prefix+"/cmd")
}

// ForServer sets topics using default convention for server:
// SubTopic = name/id/cmd
// PubTopic = name/id/msg
func (p *ReadWriter) ForServer(ref remote.ServerRef) *ReadWriter {
	prefix := ref.Path()
	return p.WithTopics(prefix+"/cmd", prefix+"/msg")
}

// Open subscribes SubTopic and waits until the subscription is acknowledged.
func (p *ReadWriter) Open() error {
	p.sub = p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	if token := p.sub.Token; token != nil {
		token.Wait()
		return token.Error()
	}
	return nil
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Close stops reading and unsubscribes.
func (p *ReadWriter) Close() (err error) {
	p.closeOnce.Do(func() {
		close(p.done)
		if p.sub != nil {
			err = p.sub.Close()
		}
	})
	return
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
