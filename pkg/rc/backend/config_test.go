package backend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/rc"
	"github.com/robotalks/roboticscape.go/pkg/rc/native"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
)

func TestNewLibrary(t *testing.T) {
	conf := NewConfig()
	conf.Backend = Sim
	conf.Sim.Model = "BB_BLUE"
	lib, err := conf.NewLibrary()
	require.NoError(t, err)
	require.IsType(t, &sim.Library{}, lib)
	require.Equal(t, rc.ModelBlue, lib.GetBBModel())

	conf.Backend = "gpio"
	_, err = conf.NewLibrary()
	require.EqualError(t, err, `unknown backend: "gpio"`)

	if !native.Available {
		conf.Backend = Native
		_, err = conf.NewLibrary()
		require.Equal(t, native.ErrUnavailable, err)
	}
}

func TestNewConfigCopiesSim(t *testing.T) {
	conf := NewConfig()
	conf.Sim.Model = "BB_GREEN"
	require.NotEqual(t, "BB_GREEN", Default().Sim.Model)
}
