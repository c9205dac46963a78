package msgs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
)

func encodeDecode(t *testing.T, msg fx.Message, seq uint32) (fx.Message, *Typed) {
	typed, err := TypedFrom(msg)
	require.NoError(t, err)
	typed.Sequence = seq
	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, seq, decoded.Sequence)
	out, err := decoded.Decode()
	require.NoError(t, err)
	return out, decoded
}

func TestInvokeEncoding(t *testing.T) {
	args := []binding.Value{
		binding.Int(-9000000000),
		binding.Float(7.4),
		binding.Bytes([]uint8{0, 255}),
		binding.List(),
	}
	out, typed := encodeDecode(t, NewInvoke("rcSendI2CBytes", args...), 3)
	require.True(t, typed.IsCommand())
	require.False(t, typed.IsReply())
	invoke, ok := out.(*Invoke)
	require.True(t, ok)
	require.Equal(t, "rcSendI2CBytes", invoke.Name)
	vals := invoke.Values()
	require.Len(t, vals, len(args))
	for n, arg := range args {
		require.Equal(t, arg, vals[n])
	}
}

func TestInvokeArgsText(t *testing.T) {
	invoke, err := NewInvokeArgs("rcGetEncoderPos", "left", "2", 0.5)
	require.NoError(t, err)
	out, _ := encodeDecode(t, invoke, 4)
	decoded, ok := out.(*Invoke)
	require.True(t, ok)
	require.Equal(t, []interface{}{"left", binding.Int(2), binding.Float(0.5)}, decoded.Values())

	_, err = NewInvokeArgs("rcGetEncoderPos", nil)
	require.EqualError(t, err, "argument 1: unsupported value nil")
}

func TestInvokeResultEncoding(t *testing.T) {
	testCases := []struct {
		name  string
		value binding.Value
	}{
		{"status", binding.Int(-1)},
		{"enum", binding.Enum(2, "PAUSED")},
		{"float", binding.Float(-0.5)},
		{"i2c read", binding.List(binding.Int(2), binding.Bytes([]uint8{0x71, 0}))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, typed := encodeDecode(t, NewInvokeResult(tc.value), 7)
			require.True(t, typed.IsReply())
			result, ok := out.(*InvokeResult)
			require.True(t, ok)
			require.Equal(t, tc.value, result.Result())
		})
	}
}

func TestCommandErrEncoding(t *testing.T) {
	out, typed := encodeDecode(t, NewCommandErr(errors.New("rcSetMotor() takes exactly 2 arguments (1 given)")), 1)
	require.True(t, typed.IsReply())
	var err error = out.(*CommandErr)
	require.EqualError(t, err, "rcSetMotor() takes exactly 2 arguments (1 given)")
}

func TestMethodListEncoding(t *testing.T) {
	methods := binding.New(sim.New()).Methods()
	out, _ := encodeDecode(t, NewMethodList(methods[:2]), 1)
	list, ok := out.(*MethodList)
	require.True(t, ok)
	require.Len(t, list.Methods, 2)
	require.Equal(t, methods[0].Name, list.Methods[0].Name)
	require.Equal(t, methods[1].Usage(), list.Methods[1].Usage)
}

func TestUnknownType(t *testing.T) {
	typed := &Typed{}
	typed.TypeId = GroupCustom | 0x42
	_, err := typed.Decode()
	require.Equal(t, &ErrUnknownType{TypeID: GroupCustom | 0x42}, err)

	typed.TypeId = TypeIDKindEvent | GroupCustom
	require.True(t, typed.IsEvent())

	_, err = TypedFrom(fx.Message(nil))
	require.Equal(t, ErrNotSerializable, err)
}

func TestValueFromNil(t *testing.T) {
	require.Equal(t, binding.Int(0), ValueFromPB(nil))
}
