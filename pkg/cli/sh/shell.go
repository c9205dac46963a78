// Package sh provides the interactive shell where every method of the
// binding is a command.
package sh

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	"github.com/robotalks/roboticscape.go/pkg/rc/backend"
	"github.com/robotalks/roboticscape.go/pkg/remote"
	env "github.com/robotalks/roboticscape.go/pkg/remote/env/connector"
)

// Invoker calls methods by name with loosely typed arguments.
type Invoker interface {
	Call(ctx context.Context, name string, vals ...interface{}) (binding.Value, error)
}

// Local invokes methods of an in-process module.
type Local struct {
	Module *binding.Module
}

// Call implements Invoker.
func (l *Local) Call(_ context.Context, name string, vals ...interface{}) (binding.Value, error) {
	return l.Module.Call(name, vals...)
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool
	Timeout     time.Duration

	Shell  *ishell.Shell
	Config *env.Config
	// Local is used when not connected to a remote server.
	Local *Local
	// Remote is the current remote connection.
	Remote *Remote
}

// Remote is a connection to a remote server.
type Remote struct {
	Ref    remote.ServerRef
	Client *remote.Client
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
	localPrompt       = "[local] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	remoteOnly bool

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
		&MethodsCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.BoolVar(&remoteOnly, "remote", remoteOnly, "Connect to a remote server instead of using the local library.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Timeout:     3 * time.Second,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// WithLocal uses the module when not connected.
func (s *Shell) WithLocal(m *binding.Module) *Shell {
	s.Local = &Local{Module: m}
	s.updatePrompt()
	return s
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// Invoker returns the remote connection if connected, or the local module.
func (s *Shell) Invoker() Invoker {
	if s.Remote != nil {
		return s.Remote.Client
	}
	if s.Local != nil {
		return s.Local
	}
	return nil
}

// MustBeConnected wraps command func requires a remote connection or a
// local module.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Invoker() == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// FormatInfo prints ServerInfo into friendly string for display.
func FormatInfo(info remote.ServerInfo) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "%s", info.Ref.Path())
	if info.Meta.Model != "" {
		fmt.Fprintf(&w, " [%s]", info.Meta.Model)
	}
	if info.Meta.Description != "" {
		fmt.Fprintf(&w, ": %s", info.Meta.Description)
	}
	return w.String()
}

// Invoke calls a method and prints the result.
func Invoke(c *ishell.Context, name string, args ...string) error {
	s := ShellFrom(c)
	invoker := s.Invoker()
	if invoker == nil {
		err := fmt.Errorf("not connected")
		c.Err(err)
		return err
	}
	vals := make([]interface{}, len(args))
	for n, arg := range args {
		vals[n] = arg
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	v, err := invoker.Call(ctx, name, vals...)
	if err != nil {
		c.Err(err)
		return err
	}
	out, err := FormatValue(v, s.OutputJSON)
	if err != nil {
		c.Err(err)
		return err
	}
	c.Println(out)
	return nil
}

// DiscoverServers discovers servers.
func (s *Shell) DiscoverServers(filter func(remote.ServerInfo) bool) (remote.Connector, []remote.ServerInfo, error) {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return nil, nil, err
	}
	infoList, err := connector.Discover(context.TODO())
	if err != nil {
		return connector, nil, err
	}
	if filter != nil {
		items := make([]remote.ServerInfo, 0, len(infoList))
		for _, info := range infoList {
			if filter(info) {
				items = append(items, info)
			}
		}
		infoList = items
	}
	return connector, infoList, nil
}

// SelectServer discovers servers and asks for a choice.
func (s *Shell) SelectServer(filter func(remote.ServerInfo) bool) (*remote.ServerInfo, error) {
	_, infoList, err := s.DiscoverServers(filter)
	if err != nil {
		return nil, err
	}
	if len(infoList) == 0 {
		return nil, nil
	}
	var index int
	if len(infoList) > 1 {
		if !s.Interactive {
			return nil, fmt.Errorf("more than 1 servers discovered in non-interactive mode")
		}
		items := make([]string, len(infoList))
		for n, info := range infoList {
			items[n] = FormatInfo(info)
		}
		index = s.Shell.MultiChoice(items, "Which one to connect?")
	}
	return &infoList[index], nil
}

// Connect connects the server with ref.
func (s *Shell) Connect(ref remote.ServerRef) error {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return err
	}
	conn, err := connector.Connect(context.TODO(), ref)
	if err != nil {
		return err
	}
	s.Disconnect()
	s.Remote = &Remote{Ref: ref, Client: remote.NewClient(conn)}
	s.updatePrompt()
	return nil
}

// Disconnect disconnects current server and falls back to the local module.
func (s *Shell) Disconnect() {
	if s.Remote != nil {
		if err := s.Remote.Client.Close(); err != nil {
			glog.Warningf("disconnect %s: %v", s.Remote.Ref, err)
		}
		s.Remote = nil
	}
	s.updatePrompt()
}

func (s *Shell) updatePrompt() {
	switch {
	case s.Remote != nil && s.Remote.Ref.IsValid():
		s.Shell.SetPrompt(fmt.Sprintf("%s > ", s.Remote.Ref.Path()))
	case s.Remote != nil:
		s.Shell.SetPrompt(fmt.Sprintf("%s > ", s.Config.RegistryURL))
	case s.Local != nil:
		s.Shell.SetPrompt(localPrompt)
	default:
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Methods lists the methods of the local module or the remote server.
func (s *Shell) Methods() ([]MethodInfo, error) {
	if s.Remote != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()
		list, err := s.Remote.Client.Methods(ctx)
		if err != nil {
			return nil, err
		}
		methods := make([]MethodInfo, len(list))
		for n, info := range list {
			methods[n] = MethodInfo{Name: info.Name, Usage: info.Usage, Doc: info.Doc, PreInit: info.PreInit}
		}
		return methods, nil
	}
	return LocalMethods(), nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) error {
	if s.AutoConnect && (s.Config.Ref.IsValid() || s.Config.IsDirect()) {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.RegistryURL)
		}
		if err := s.Connect(s.Config.Ref); err != nil {
			return fmt.Errorf("connect %q failed: %w", s.Config.Ref.Path(), err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		return s.Shell.Process(args...)
	}
	if s.Interactive {
		s.Shell.Run()
		return nil
	}
	return fmt.Errorf("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	s := New(env.NewConfig()).WithAutoConnect(remoteOnly)
	var closer io.Closer
	if !remoteOnly {
		m := binding.New(backend.NewConfig().MustNewLibrary())
		s.WithLocal(m)
		closer = m
	}
	err := s.Run(flag.Args()...)
	if closer != nil {
		closer.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

var (
	// DiscoverCmd discovers servers.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"servers"},
		Help:    "list remote servers",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			_, infoList, err := s.DiscoverServers(nil)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if len(infoList) == 0 {
					// in case infoList is nil, make it empty slice.
					infoList = []remote.ServerInfo{}
				}
				out, err := json.Marshal(infoList)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infoList) == 0 {
				c.Println("No servers found")
				return
			}
			for _, info := range infoList {
				c.Println(FormatInfo(info))
			}
		},
	}

	// ConnectCmd connects a server.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "NAME ID",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var ref remote.ServerRef
			if len(c.Args) >= 2 {
				ref.Name, ref.ID = c.Args[0], c.Args[1]
			} else {
				var filter func(remote.ServerInfo) bool
				if len(c.Args) == 1 {
					filter = func(info remote.ServerInfo) bool {
						return info.Ref.Name == c.Args[0]
					}
				}
				info, err := s.SelectServer(filter)
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no server discovered"))
					return
				}
				ref = info.Ref
			}
			if err := s.Connect(ref); err != nil {
				c.Err(err)
				return
			}
		},
	}

	// DisconnectCmd disconnects current server.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "disconnect and use the local library if available",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}

	// MethodsCmd lists methods.
	MethodsCmd = ishell.Cmd{
		Name:    "methods",
		Aliases: []string{"ls"},
		Help:    "[PREFIX] list methods",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			methods, err := s.Methods()
			if err != nil {
				c.Err(err)
				return
			}
			if len(c.Args) > 0 {
				methods = FilterMethods(methods, c.Args[0])
			}
			if s.OutputJSON {
				out, err := json.Marshal(methods)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			c.Println(RenderMethods(methods))
		},
	}
)
