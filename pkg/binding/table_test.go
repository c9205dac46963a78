package binding

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboticscape.go/pkg/rc"
	"github.com/robotalks/roboticscape.go/pkg/rc/sim"
)

func newTestModule(t *testing.T) (*Module, *sim.Library) {
	lib := sim.New()
	lib.Out = io.Discard
	m := New(lib)
	_, err := m.Invoke("rcInitialize")
	require.NoError(t, err)
	lib.ResetCalls()
	return m, lib
}

type forwardCase struct {
	name   string
	args   []interface{}
	fn     string
	fnArgs []interface{}
}

func fwd(name string, args []interface{}, fn string, fnArgs ...interface{}) forwardCase {
	return forwardCase{name: name, args: args, fn: fn, fnArgs: fnArgs}
}

func in(args ...interface{}) []interface{} { return args }

// forwardCases lists one call per table entry, rcCleanup must be last.
var forwardCases = []forwardCase{
	fwd("rcInitialize", nil, "rc_initialize"),
	fwd("rcGetState", nil, "rc_get_state"),
	fwd("rcSetState", in(1), "rc_set_state", rc.StateRunning),
	fwd("rcPrintState", nil, "rc_print_state"),
	fwd("rcGetLED", in(1), "rc_get_led", rc.LEDRed),
	fwd("rcSetLED", in(0, 1), "rc_set_led", rc.LEDGreen, 1),
	fwd("rcBlinkLED", in(1, 2.5, 0.5), "rc_blink_led", rc.LEDRed, float32(2.5), float32(0.5)),
	fwd("rcGetButton", in(1), "rc_get_button", rc.ButtonMode),
	fwd("rcEnableMotors", nil, "rc_enable_motors"),
	fwd("rcDisableMotors", nil, "rc_disable_motors"),
	fwd("rcSetMotor", in(2, -0.75), "rc_set_motor", 2, float32(-0.75)),
	fwd("rcSetMotorAll", in(0.25), "rc_set_motor_all", float32(0.25)),
	fwd("rcSetMotorFreeSpin", in(3), "rc_set_motor_free_spin", 3),
	fwd("rcSetMotorFreeSpinAll", nil, "rc_set_motor_free_spin_all"),
	fwd("rcSetMotorBrake", in(4), "rc_set_motor_brake", 4),
	fwd("rcSetMotorBrakeAll", nil, "rc_set_motor_brake_all"),
	fwd("rcGetEncoderPos", in(1), "rc_get_encoder_pos", 1),
	fwd("rcSetEncoderPos", in(1, -5), "rc_set_encoder_pos", 1, -5),
	fwd("rcBatteryVoltage", nil, "rc_battery_voltage"),
	fwd("rcDCJackVoltage", nil, "rc_dc_jack_voltage"),
	fwd("rcADCRaw", in(3), "rc_adc_raw", 3),
	fwd("rcADCVolt", in(6), "rc_adc_volt", 6),
	fwd("rcEnableServoPowerRail", nil, "rc_enable_servo_power_rail"),
	fwd("rcDisableServoPowerRail", nil, "rc_disable_servo_power_rail"),
	fwd("rcSendServoPulseUs", in(1, 1500), "rc_send_servo_pulse_us", 1, 1500),
	fwd("rcSendServoPulseUsAll", in(900), "rc_send_servo_pulse_us_all", 900),
	fwd("rcSendServoPulseNormalized", in(2, 0.5), "rc_send_servo_pulse_normalized", 2, float32(0.5)),
	fwd("rcSendServoPulseNormalizedAll", in(1.5), "rc_send_servo_pulse_normalized_all", float32(1.5)),
	fwd("rcSendESCPulseNormalized", in(3, 0.1), "rc_send_esc_pulse_normalized", 3, float32(0.1)),
	fwd("rcSendESCPulseNormalizedAll", in(0), "rc_send_esc_pulse_normalized_all", float32(0)),
	fwd("rcSendOneshotPulseNormalized", in(4, 1), "rc_send_oneshot_pulse_normalized", 4, float32(1)),
	fwd("rcSendOneshotPulseNormalizedAll", in(-0.1), "rc_send_oneshot_pulse_normalized_all", float32(-0.1)),
	fwd("rcInitializeDSM", nil, "rc_initialize_dsm"),
	fwd("rcStopDSMService", nil, "rc_stop_dsm_service"),
	fwd("rcGetDSMChRaw", in(5), "rc_get_dsm_ch_raw", 5),
	fwd("rcGetDSMChNormalized", in(6), "rc_get_dsm_ch_normalized", 6),
	fwd("rcIsDSMNewData", nil, "rc_is_new_dsm_data"),
	fwd("rcIsDSMActive", nil, "rc_is_dsm_active"),
	fwd("rcNanosSinceLastDSMPacket", nil, "rc_nanos_since_last_dsm_packet"),
	fwd("rcGetDSMResolution", nil, "rc_get_dsm_resolution"),
	fwd("rcNumDSMChannels", nil, "rc_num_dsm_channels"),
	fwd("rcBindDSM", nil, "rc_bind_dsm"),
	fwd("rcCalibrateDSMRoutine", nil, "rc_calibrate_dsm_routine"),
	fwd("_rcInitializeBarometer", in(20, 4), "rc_initialize_barometer", rc.BMPOversample16, rc.BMPFilter2),
	fwd("rcPowerOffBarometer", nil, "rc_power_off_barometer"),
	fwd("rcReadBarometer", nil, "rc_read_barometer"),
	fwd("rcGetBMPTemperature", nil, "rc_bmp_get_temperature"),
	fwd("rcGetBMPPressurePa", nil, "rc_bmp_get_pressure_pa"),
	fwd("rcGetBMPAltitudeM", nil, "rc_bmp_get_altitude_m"),
	fwd("rcSetBMPSeaLevelPressurePa", in(101000), "rc_set_sea_level_pressure_pa", float32(101000)),
	fwd("rcInitializeI2C", in(1, 0x68), "rc_i2c_init", 1, uint8(0x68)),
	fwd("rcCloseI2C", in(1), "rc_i2c_close", 1),
	fwd("rcSetI2CDeviceAddress", in(1, 0x76), "rc_i2c_set_device_address", 1, uint8(0x76)),
	fwd("rcClaimI2CBus", in(1), "rc_i2c_claim_bus", 1),
	fwd("rcReleaseI2CBus", in(1), "rc_i2c_release_bus", 1),
	fwd("rcGetI2CBusInUse", in(1), "rc_i2c_get_in_use_state", 1),
	fwd("rcReadI2CByte", in(1, 0x75), "rc_i2c_read_byte", 1, uint8(0x75)),
	fwd("rcReadI2CBytes", in(1, 0x3b, 6), "rc_i2c_read_bytes", 1, uint8(0x3b), uint8(6)),
	fwd("rcReadI2CWord", in(1, 0x10), "rc_i2c_read_word", 1, uint8(0x10)),
	fwd("rcReadI2CWords", in(1, 0x10, 2), "rc_i2c_read_words", 1, uint8(0x10), uint8(2)),
	fwd("rcReadI2CBit", in(1, 0x6b, 7), "rc_i2c_read_bit", 1, uint8(0x6b), uint8(7)),
	fwd("rcWriteI2CByte", in(1, 0x6b, 0x80), "rc_i2c_write_byte", 1, uint8(0x6b), uint8(0x80)),
	fwd("rcWriteI2CBytes", in(1, 0x10, []int{1, 2, 255}), "rc_i2c_write_bytes", 1, uint8(0x10), []uint8{1, 2, 255}),
	fwd("rcWriteI2CWord", in(1, 0x20, 0xbeef), "rc_i2c_write_word", 1, uint8(0x20), uint16(0xbeef)),
	fwd("rcWriteI2CWords", in(1, 0x20, "1, 65535"), "rc_i2c_write_words", 1, uint8(0x20), []uint16{1, 65535}),
	fwd("rcWriteI2CBit", in(1, 0x6b, 3, 1), "rc_i2c_write_bit", 1, uint8(0x6b), uint8(3), uint8(1)),
	fwd("rcSendI2CByte", in(2, 0xa5), "rc_i2c_send_byte", 2, uint8(0xa5)),
	fwd("rcSendI2CBytes", in(2, []byte{1, 2}), "rc_i2c_send_bytes", 2, []uint8{1, 2}),
	fwd("rcSetCPUFreq", in(2), "rc_set_cpu_freq", rc.Freq600MHz),
	fwd("rcGetCPUFreq", nil, "rc_get_cpu_freq"),
	fwd("rcGetBBModel", nil, "rc_get_bb_model"),
	fwd("rcGetStateAsEnum", nil, "rc_get_state"),
	fwd("rcGetGreenLED", nil, "rc_get_led", rc.LEDGreen),
	fwd("rcGetRedLED", nil, "rc_get_led", rc.LEDRed),
	fwd("rcSetGreenLEDOn", nil, "rc_set_led", rc.LEDGreen, 1),
	fwd("rcSetGreenLEDOff", nil, "rc_set_led", rc.LEDGreen, 0),
	fwd("rcSetRedLEDOn", nil, "rc_set_led", rc.LEDRed, 1),
	fwd("rcSetRedLEDOff", nil, "rc_set_led", rc.LEDRed, 0),
	fwd("rcGetModeButton", nil, "rc_get_button", rc.ButtonMode),
	fwd("rcGetPauseButton", nil, "rc_get_button", rc.ButtonPause),
	fwd("rcInitializeBarometer", nil, "rc_initialize_barometer", rc.BMPOversample1, rc.BMPFilterOff),
	fwd("rcSetCPUFreqEnum", in(4), "rc_set_cpu_freq", rc.Freq1000MHz),
	fwd("rcGetCPUFreqEnum", nil, "rc_get_cpu_freq"),
	fwd("rcGetBBModelEnum", nil, "rc_get_bb_model"),
	fwd("rcCleanup", nil, "rc_cleanup"),
}

func TestForwardOnce(t *testing.T) {
	m, lib := newTestModule(t)
	for _, tc := range forwardCases {
		lib.ResetCalls()
		_, err := m.Call(tc.name, tc.args...)
		require.NoError(t, err, tc.name)
		calls := lib.Calls()
		require.Len(t, calls, 1, tc.name)
		require.Equal(t, sim.Call{Func: tc.fn, Args: tc.fnArgs}, calls[0], tc.name)
	}
}

func TestForwardCasesCoverTable(t *testing.T) {
	covered := make(map[string]bool)
	for _, tc := range forwardCases {
		covered[tc.name] = true
	}
	for _, meth := range New(sim.New()).Methods() {
		require.True(t, covered[meth.Name], meth.Name)
	}
	require.Len(t, covered, len(table))
}

func TestTableInvariants(t *testing.T) {
	names := make(map[string]bool)
	for _, meth := range New(sim.New()).Methods() {
		require.False(t, names[meth.Name], "duplicated %s", meth.Name)
		names[meth.Name] = true
		require.Equal(t, len(meth.Args) == 0, meth.Conv == NoArgs, meth.Name)
		require.NotEmpty(t, meth.Doc, meth.Name)
		require.True(t, meth.fn != nil || meth.handle != nil, meth.Name)
		optional := false
		for _, a := range meth.Args {
			if a.Default != nil {
				optional = true
			} else {
				require.False(t, optional, "%s: required argument after optional", meth.Name)
			}
		}
	}
	require.Len(t, index, len(table))
}

func TestTooFewArgs(t *testing.T) {
	m, lib := newTestModule(t)
	for _, meth := range m.Methods() {
		min := meth.MinArgs()
		if min == 0 {
			continue
		}
		t.Run(meth.Name, func(t *testing.T) {
			lib.ResetCalls()
			vals := make([]interface{}, min-1)
			for n := range vals {
				vals[n] = 1
			}
			_, err := m.Invoke(meth.Name, vals...)
			require.True(t, IsArgError(err))
			v, err := m.Call(meth.Name, vals...)
			if meth.ArgDefault != nil {
				require.NoError(t, err)
				require.Equal(t, *meth.ArgDefault, v)
			} else {
				require.True(t, IsArgError(err))
			}
			require.Empty(t, lib.Calls())
		})
	}
}

func TestTooManyArgs(t *testing.T) {
	m, lib := newTestModule(t)
	for _, meth := range m.Methods() {
		vals := make([]interface{}, len(meth.Args)+1)
		for n := range vals {
			vals[n] = 1
		}
		_, err := m.Call(meth.Name, vals...)
		if meth.ArgDefault == nil {
			require.True(t, IsArgError(err), meth.Name)
		}
	}
	require.Empty(t, lib.Calls())
}
