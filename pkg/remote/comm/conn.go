package comm

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/remote"
	"github.com/robotalks/roboticscape.go/pkg/remote/msgs"
)

// ErrConnClosed is the result of commands pending when the connection ends.
var ErrConnClosed = errors.New("connection closed")

// Conn implements remote.Conn using Pipe.
type Conn struct {
	Expiration time.Duration
	// Events receives event messages from the server.
	Events fx.MessageHandler

	pipe     Pipe
	seq      uint32
	commands list.List
	seqMap   map[uint32]*commandFuture
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}
	lock     sync.Mutex
}

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 3 * time.Second

// NewConn creates a Conn and starts receiving replies.
func NewConn(rw PacketReadWriter) *Conn {
	c := &Conn{}
	c.Init(rw)
	c.Start()
	return c
}

// Init initializes Conn with defaults.
func (c *Conn) Init(rw PacketReadWriter) {
	c.Expiration = DefaultCommandExpiration
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	c.seqMap = make(map[uint32]*commandFuture)
	c.done = make(chan struct{})
}

// Start runs the connection in background until Close.
func (c *Conn) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.lock.Lock()
	c.cancel = cancel
	c.lock.Unlock()
	go func() {
		c.Run(ctx)
		close(c.done)
	}()
}

// Run receives replies and expires commands until ctx is done or the
// transport fails. All pending commands fail when it returns.
func (c *Conn) Run(ctx context.Context) error {
	interval := c.Expiration / 4
	if interval <= 0 {
		interval = DefaultCommandExpiration / 4
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.pipe.Run(ctx)
	}()
	for {
		select {
		case err := <-errCh:
			c.abort()
			return err
		case now := <-ticker.C:
			c.purgeExpired(now)
		}
	}
}

// DoCommand implements remote.Conn.
func (c *Conn) DoCommand(msg fx.Message) remote.CommandFuture {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	f := &commandFuture{
		seq:      c.seq,
		expireAt: time.Now().Add(c.Expiration),
		result:   make(chan remote.Result, 1),
	}
	if c.closed {
		f.resolve(remote.Result{Err: ErrConnClosed})
		return f
	}
	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		f.resolve(remote.Result{Err: err})
		return f
	}
	f.elem = c.commands.PushBack(f)
	c.seqMap[f.seq] = f
	return f
}

// Close implements remote.Conn.
func (c *Conn) Close() error {
	c.lock.Lock()
	cancel := c.cancel
	c.lock.Unlock()
	if cancel == nil {
		return c.pipe.Close()
	}
	cancel()
	<-c.done
	return nil
}

func (c *Conn) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		if h := c.Events; h != nil {
			h.HandleMessage(ctx, msg)
		}
		return nil
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	f := c.seqMap[typed.Sequence]
	if f == nil {
		return nil
	}
	c.remove(f)
	result := remote.Result{Msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		result.Err = cmdErr
	}
	f.resolve(result)
	return nil
}

func (c *Conn) purgeExpired(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for c.commands.Len() > 0 {
		f := c.commands.Front().Value.(*commandFuture)
		if f.expireAt.After(now) {
			break
		}
		c.remove(f)
		f.resolve(remote.Result{Err: context.DeadlineExceeded})
	}
}

func (c *Conn) abort() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
	for c.commands.Len() > 0 {
		f := c.commands.Front().Value.(*commandFuture)
		c.remove(f)
		f.resolve(remote.Result{Err: ErrConnClosed})
	}
}

func (c *Conn) remove(f *commandFuture) {
	c.commands.Remove(f.elem)
	delete(c.seqMap, f.seq)
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	elem     *list.Element
	result   chan remote.Result
}

func (f *commandFuture) resolve(r remote.Result) {
	f.result <- r
	close(f.result)
}

func (f *commandFuture) ResultChan() <-chan remote.Result {
	return f.result
}
