// Package rc registers one shell command per binding method.
package rc

import (
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	"github.com/robotalks/roboticscape.go/pkg/cli/sh"
)

// Commands creates the commands of methods, named as the methods.
func Commands(methods []binding.Method) []*ishell.Cmd {
	cmds := make([]*ishell.Cmd, len(methods))
	for n := range methods {
		cmds[n] = command(&methods[n])
	}
	return cmds
}

func command(meth *binding.Method) *ishell.Cmd {
	name := meth.Name
	help := strings.TrimPrefix(meth.Usage(), name)
	if meth.Doc != "" {
		help += " " + meth.Doc
	}
	return &ishell.Cmd{
		Name:     name,
		Help:     help,
		LongHelp: meth.Usage() + "\n\n" + meth.Doc,
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.Invoke(c, name, c.Args...)
		}),
	}
}

func init() {
	sh.AddCmds(Commands(binding.Methods())...)
}
