package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

func TestLifecycle(t *testing.T) {
	l := New()
	require.Equal(t, rc.StateUninitialized, l.GetState())
	require.Equal(t, 0, l.Initialize())
	require.Equal(t, rc.StatePaused, l.GetState())
	require.Equal(t, 0, l.SetState(rc.StateRunning))
	require.Equal(t, -1, l.SetState(rc.State(9)))
	require.Equal(t, rc.StateRunning, l.GetState())

	var out bytes.Buffer
	l.Out = &out
	require.Equal(t, 0, l.PrintState())
	require.Equal(t, "RUNNING\n", out.String())

	l.EnableMotors()
	require.Equal(t, 0, l.Cleanup())
	s := l.Snapshot()
	require.False(t, s.Initialized)
	require.False(t, s.MotorsEnabled)
	require.Equal(t, rc.StateExiting, s.RobotState)

	require.Equal(t, []string{
		"rc_get_state", "rc_initialize", "rc_get_state", "rc_set_state",
		"rc_set_state", "rc_get_state", "rc_print_state", "rc_enable_motors",
		"rc_cleanup",
	}, funcs(l.Calls()))
	l.ResetCalls()
	require.Empty(t, l.Calls())
}

func funcs(calls []Call) []string {
	names := make([]string, len(calls))
	for n, c := range calls {
		names[n] = c.Func
	}
	return names
}

func TestOverride(t *testing.T) {
	l := New()
	l.Override("rc_initialize", -2)
	require.Equal(t, -2, l.Initialize())
	require.False(t, l.Snapshot().Initialized)
	l.ClearOverrides()
	require.Equal(t, 0, l.Initialize())
}

func TestMotors(t *testing.T) {
	l := New()
	testCases := []struct {
		name   string
		motor  int
		duty   float32
		code   int
		expect float32
	}{
		{"forward", 1, 0.5, 0, 0.5},
		{"reverse", 4, -0.25, 0, -0.25},
		{"clamped", 2, 3, 0, 1},
		{"channel 0", 0, 0.5, -1, 0},
		{"channel 5", 5, 0.5, -1, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.code, l.SetMotor(tc.motor, tc.duty))
			if tc.code == 0 {
				m := l.Snapshot().Motors[tc.motor-1]
				require.Equal(t, MotorDrive, m.Mode)
				require.Equal(t, tc.expect, m.Duty)
			}
		})
	}
	require.Equal(t, 0, l.SetMotorBrake(3))
	require.Equal(t, MotorBrake, l.Snapshot().Motors[2].Mode)
	require.Equal(t, 0, l.SetMotorFreeSpinAll())
	for _, m := range l.Snapshot().Motors {
		require.Equal(t, Motor{Mode: MotorFreeSpin}, m)
	}
	require.Equal(t, 0, l.SetMotorAll(-0.5))
	for _, m := range l.Snapshot().Motors {
		require.Equal(t, Motor{Mode: MotorDrive, Duty: -0.5}, m)
	}
}

func TestEncoders(t *testing.T) {
	l := New()
	require.Equal(t, 0, l.SetEncoderPos(2, -123456))
	require.Equal(t, int64(-123456), l.GetEncoderPos(2))
	require.Equal(t, int64(0), l.GetEncoderPos(1))
	require.Equal(t, -1, l.SetEncoderPos(5, 1))
	require.Equal(t, int64(-1), l.GetEncoderPos(0))
	l.Update(func(s *State) { s.Encoders[3] = 1 << 40 })
	require.Equal(t, int64(1<<40), l.GetEncoderPos(4))
}

func TestAnalog(t *testing.T) {
	l := New()
	l.Update(func(s *State) {
		s.BatteryVoltage = 7.4
		s.ADC[3] = 4095
	})
	require.Equal(t, float32(7.4), l.BatteryVoltage())
	require.Equal(t, 4095, l.ADCRaw(3))
	require.InDelta(t, 1.8, l.ADCVolt(3), 1e-6)
	require.Equal(t, -1, l.ADCRaw(7))
}

func TestServoPulses(t *testing.T) {
	l := New()
	require.Equal(t, 0, l.SendServoPulseUs(1, 1200))
	require.Equal(t, float32(1200), l.Snapshot().Servos[0])
	require.Equal(t, 0, l.SendServoPulseNormalized(2, 0.5))
	require.Equal(t, float32(1800), l.Snapshot().Servos[1])
	require.Equal(t, -1, l.SendServoPulseNormalized(2, 1.6))
	require.Equal(t, 0, l.SendESCPulseNormalized(3, 0.5))
	require.Equal(t, float32(1500), l.Snapshot().Servos[2])
	require.Equal(t, -1, l.SendESCPulseNormalized(3, -0.5))
	require.Equal(t, 0, l.SendOneshotPulseNormalized(4, 1))
	require.Equal(t, float32(250), l.Snapshot().Servos[3])
	require.Equal(t, -1, l.SendServoPulseUs(9, 1500))
	require.Equal(t, 0, l.SendServoPulseUsAll(1000))
	for _, us := range l.Snapshot().Servos {
		require.Equal(t, float32(1000), us)
	}
}

func TestDSM(t *testing.T) {
	l := New()
	require.Equal(t, 0, l.NumDSMChannels())
	require.Equal(t, 0, l.GetDSMResolution())
	require.Equal(t, 0, l.InitializeDSM())
	l.Update(func(s *State) {
		s.DSM.Channels = []int{1500, 2100, 900}
		s.DSM.NewData = true
		s.DSM.Active = true
		s.DSM.NanosSincePacket = 11000000
	})
	require.Equal(t, 3, l.NumDSMChannels())
	require.Equal(t, 11, l.GetDSMResolution())
	require.Equal(t, 1, l.IsNewDSMData())
	require.Equal(t, 1, l.IsDSMActive())
	require.Equal(t, uint64(11000000), l.NanosSinceLastDSMPacket())
	require.Equal(t, 2100, l.GetDSMChRaw(2))
	require.Equal(t, 0, l.IsNewDSMData())
	require.Equal(t, float32(1), l.GetDSMChNormalized(2))
	require.Equal(t, float32(-1), l.GetDSMChNormalized(3))
	require.Equal(t, float32(0), l.GetDSMChNormalized(1))
	require.Equal(t, 0, l.GetDSMChRaw(4))
	require.Equal(t, -1, l.GetDSMChRaw(10))
	require.Equal(t, 0, l.StopDSMService())
	require.Equal(t, 0, l.IsDSMActive())
	require.Equal(t, -1, l.CalibrateDSMRoutine())
}

func TestBarometer(t *testing.T) {
	l := New()
	require.Equal(t, -1, l.ReadBarometer())
	require.Equal(t, -1, l.InitializeBarometer(rc.BMPOversample(3), rc.BMPFilterOff))
	require.Equal(t, 0, l.InitializeBarometer(rc.BMPOversample16, rc.BMPFilterOff))
	require.Equal(t, 0, l.ReadBarometer())
	require.Equal(t, float32(22.5), l.BMPTemperature())
	require.Equal(t, float32(101325), l.BMPPressurePa())
	require.InDelta(t, 0, l.BMPAltitudeM(), 1e-3)

	l.Update(func(s *State) { s.Barometer.PressurePa = 89875 })
	require.Equal(t, 0, l.ReadBarometer())
	require.InDelta(t, 1000, l.BMPAltitudeM(), 5)
	require.Equal(t, -1, l.SetSeaLevelPressurePa(0))
	require.Equal(t, 0, l.PowerOffBarometer())
	require.Equal(t, -1, l.ReadBarometer())
}

func TestSystem(t *testing.T) {
	conf := NewConfig()
	conf.Model = "BB_BLACK_W"
	l := conf.NewLibrary()
	require.Equal(t, rc.ModelBlackW, l.GetBBModel())
	require.Equal(t, float32(DefaultBatteryVoltage), l.BatteryVoltage())
	require.Equal(t, 0, l.SetCPUFreq(rc.Freq600MHz))
	require.Equal(t, rc.Freq600MHz, l.GetCPUFreq())
	require.Equal(t, -1, l.SetCPUFreq(rc.CPUFreq(8)))

	conf.Model = "BB_PURPLE"
	require.Equal(t, rc.ModelUnknown, conf.NewLibrary().GetBBModel())
}

func TestI2CRegisterBus(t *testing.T) {
	l := New()
	bus := NewRegisterBus("i2c-1")
	bus.SetRegisters(0x68, 0x75, 0x71)
	l.AttachI2C(1, bus)

	_, code := l.I2CReadByte(1, 0x75)
	require.Equal(t, -1, code, "read before init")
	require.Equal(t, -1, l.I2CInit(3, 0x68))
	require.Equal(t, 0, l.I2CInit(1, 0x68))

	b, code := l.I2CReadByte(1, 0x75)
	require.Equal(t, 0, code)
	require.Equal(t, uint8(0x71), b)

	require.Equal(t, 0, l.I2CWriteBytes(1, 0x10, []uint8{1, 2, 3}))
	data, code := l.I2CReadBytes(1, 0x10, 3)
	require.Equal(t, 3, code)
	require.Equal(t, []uint8{1, 2, 3}, data)

	require.Equal(t, 0, l.I2CWriteWord(1, 0x20, 0xbeef))
	require.Equal(t, []byte{0xbe, 0xef}, bus.Registers(0x68, 0x20, 2))
	w, code := l.I2CReadWord(1, 0x20)
	require.Equal(t, 0, code)
	require.Equal(t, uint16(0xbeef), w)

	require.Equal(t, 0, l.I2CWriteWords(1, 0x30, []uint16{0x0102, 0x0304}))
	words, code := l.I2CReadWords(1, 0x30, 2)
	require.Equal(t, 2, code)
	require.Equal(t, []uint16{0x0102, 0x0304}, words)

	require.Equal(t, 0, l.I2CWriteBit(1, 0x40, 3, 1))
	require.Equal(t, []byte{0x08}, bus.Registers(0x68, 0x40, 1))
	bit, code := l.I2CReadBit(1, 0x40, 3)
	require.Equal(t, 0, code)
	require.Equal(t, uint8(1), bit)
	require.Equal(t, 0, l.I2CWriteBit(1, 0x40, 3, 0))
	require.Equal(t, []byte{0}, bus.Registers(0x68, 0x40, 1))
	_, code = l.I2CReadBit(1, 0x40, 8)
	require.Equal(t, -1, code)

	require.Equal(t, 0, l.I2CSetDeviceAddress(1, 0x77))
	_, code = l.I2CReadByte(1, 0x00)
	require.Equal(t, -1, code, "no device at 0x77")

	require.Equal(t, 0, l.I2CGetInUseState(1))
	require.Equal(t, 0, l.I2CClaimBus(1))
	require.Equal(t, 1, l.I2CGetInUseState(1))
	require.Equal(t, 0, l.I2CReleaseBus(1))
	require.Equal(t, 0, l.I2CGetInUseState(1))
	require.Equal(t, 0, l.I2CClose(1))
	require.Equal(t, -1, l.I2CSendByte(1, 0))
}

func TestI2CPlayback(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x76, W: []byte{0xd0}, R: []byte{0x58}},
			{Addr: 0x76, W: []byte{0xf4, 0x27}},
			{Addr: 0x76, W: []byte{0xfa}, R: []byte{0x12, 0x34}},
			{Addr: 0x76, W: []byte{0xe0, 0xb6}},
			{Addr: 0x76, W: []byte{0x01}},
		},
		DontPanic: true,
	}
	l := New()
	l.AttachI2C(2, bus)
	require.Equal(t, 0, l.I2CInit(2, 0x76))

	id, code := l.I2CReadByte(2, 0xd0)
	require.Equal(t, 0, code)
	require.Equal(t, uint8(0x58), id)
	require.Equal(t, 0, l.I2CWriteByte(2, 0xf4, 0x27))
	w, code := l.I2CReadWord(2, 0xfa)
	require.Equal(t, 0, code)
	require.Equal(t, uint16(0x1234), w)
	require.Equal(t, 0, l.I2CSendBytes(2, []uint8{0xe0, 0xb6}))
	require.Equal(t, 0, l.I2CSendByte(2, 0x01))
	require.NoError(t, bus.Close())

	require.Equal(t, -1, l.I2CSendByte(2, 0x02), "unexpected transaction")
}
