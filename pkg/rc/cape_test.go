package rc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/rc"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
)

func TestStatus(t *testing.T) {
	require.NoError(t, rc.Status("rc_set_led", 0))
	require.NoError(t, rc.Status("rc_i2c_read_bytes", 3))
	err := rc.Status("rc_set_motor", -2)
	require.EqualError(t, err, "rc_set_motor failed with status -2")
	require.Equal(t, -2, rc.StatusCode(err))
	require.Equal(t, 0, rc.StatusCode(nil))
	require.Equal(t, -1, rc.StatusCode(errors.New("other")))
	require.Equal(t, -1, rc.StatusCode(rc.ErrNotInitialized))
}

func TestCapeLifecycle(t *testing.T) {
	lib := sim.New()
	c := rc.NewCape(lib)
	require.False(t, c.Initialized())
	require.Equal(t, rc.ErrNotInitialized, c.Use(func(l rc.Library) { l.EnableMotors() }))
	require.Equal(t, rc.ErrNotInitialized, c.Cleanup())
	require.Empty(t, lib.Calls())

	var model rc.BBModel
	c.Peek(func(l rc.Library) { model = l.GetBBModel() })
	require.Equal(t, rc.ModelUnknown, model)

	require.NoError(t, c.Initialize())
	require.True(t, c.Initialized())
	var code int
	require.NoError(t, c.Use(func(l rc.Library) { code = l.EnableMotors() }))
	require.Zero(t, code)
	require.True(t, lib.Snapshot().MotorsEnabled)

	require.NoError(t, c.Cleanup())
	require.False(t, c.Initialized())
	require.Equal(t, rc.ErrNotInitialized, c.Use(func(rc.Library) {}))
}

func TestOpenFailure(t *testing.T) {
	lib := sim.New()
	lib.Override("rc_initialize", -1)
	c, err := rc.Open(lib)
	require.Nil(t, c)
	require.Equal(t, -1, rc.StatusCode(err))

	lib.ClearOverrides()
	c, err = rc.Open(lib)
	require.NoError(t, err)
	require.True(t, c.Initialized())
	require.Equal(t, lib, c.Library())
}
