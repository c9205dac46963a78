// Package backend selects the rc.Library a program runs against.
package backend

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/roboticscape.go/pkg/rc"
	"github.com/robotalks/roboticscape.go/pkg/rc/native"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
)

// Backend names
const (
	Native = "native"
	Sim    = "sim"
)

// Config provides options to create the library.
type Config struct {
	// Backend is either Native or Sim.
	Backend string
	// Sim configures the simulated library.
	Sim *sim.Config
}

var defaultConfig = Config{
	Backend: Sim,
	Sim:     sim.Default(),
}

func init() {
	if native.Available {
		defaultConfig.Backend = Native
	}
	if val := os.Getenv("RC_BACKEND"); val != "" {
		defaultConfig.Backend = val
	}
}

// SetupFlags sets command line flags, including the ones of the simulator.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Backend, "backend", defaultConfig.Backend, "Library backend: native or sim.")
	sim.SetupFlags()
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	conf.Sim = sim.NewConfig()
	return &conf
}

// NewLibrary creates the library of the configured backend.
func (c *Config) NewLibrary() (rc.Library, error) {
	switch c.Backend {
	case Native:
		lib, err := native.New()
		if err != nil {
			return nil, err
		}
		glog.Info("using native libroboticscape")
		return lib, nil
	case Sim:
		conf := c.Sim
		if conf == nil {
			conf = sim.NewConfig()
		}
		glog.Infof("using simulated cape %s", conf.Model)
		return conf.NewLibrary(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// MustNewLibrary creates the library and fails on error.
func (c *Config) MustNewLibrary() rc.Library {
	lib, err := c.NewLibrary()
	if err != nil {
		log.Fatalln(err)
	}
	return lib
}
