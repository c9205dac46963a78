package main

import (
	"github.com/robotalks/roboticscape.go/pkg/cli/sh"
	"github.com/robotalks/roboticscape.go/pkg/rc/backend"
	env "github.com/robotalks/roboticscape.go/pkg/remote/env/connector"

	_ "github.com/robotalks/roboticscape.go/pkg/cli/cmds/rc"
)

func init() {
	backend.SetupFlags()
	env.SetupFlags()
}

func main() {
	sh.Main()
}
