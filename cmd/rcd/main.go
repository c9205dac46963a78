package main

import (
	"flag"
	"log"

	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/rc"
	"github.com/robotalks/roboticscape.go/pkg/rc/backend"
	"github.com/robotalks/roboticscape.go/pkg/remote/comm"
	env "github.com/robotalks/roboticscape.go/pkg/remote/env/server"
)

var initialize bool

func init() {
	backend.SetupFlags()
	env.SetupFlags()
	flag.BoolVar(&initialize, "init", initialize, "Initialize the cape on start.")
}

func main() {
	flag.Parse()

	conf := backend.NewConfig()
	lib := conf.MustNewLibrary()
	var m *binding.Module
	if initialize {
		cape, err := rc.Open(lib)
		if err != nil {
			log.Fatalln(err)
		}
		m = binding.NewWithCape(cape)
	} else {
		m = binding.New(lib)
	}

	srvConf := env.NewConfig()
	srvConf.Info.Meta.Backend = conf.Backend
	if v, err := m.Invoke("rcGetBBModelEnum"); err == nil {
		srvConf.Info.Meta.Model = v.Label
	}
	e := srvConf.MustNewEnv(comm.NewServer(m))

	runner := fx.NewRunner().HandleSignals()
	e.Run(runner)
	err := runner.Wait()
	if cerr := m.Close(); cerr != nil {
		glog.Errorf("cleanup failed: %v", cerr)
	}
	glog.Flush()
	if err != nil {
		log.Fatalln(err)
	}
}
