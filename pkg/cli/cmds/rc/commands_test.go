package rc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/binding"
)

func TestCommands(t *testing.T) {
	methods := binding.Methods()
	cmds := Commands(methods)
	require.Len(t, cmds, len(methods))
	for n, cmd := range cmds {
		require.Equal(t, methods[n].Name, cmd.Name)
		require.NotNil(t, cmd.Func)
	}
	meth, ok := binding.New(nil).Lookup("rcSetMotor")
	require.True(t, ok)
	cmd := command(&meth)
	require.Equal(t, "(motor int, duty float) "+meth.Doc, cmd.Help)
}
