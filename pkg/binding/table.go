package binding

import (
	"github.com/robotalks/roboticscape.go/pkg/rc"
)

func intArg(name string) Arg   { return Arg{Name: name, Kind: ArgInt} }
func floatArg(name string) Arg { return Arg{Name: name, Kind: ArgFloat} }
func bytesArg(name string) Arg { return Arg{Name: name, Kind: ArgBytes} }
func wordsArg(name string) Arg { return Arg{Name: name, Kind: ArgWords} }

// countArg is a number of items transferred in one native call.
func countArg(name string) Arg {
	return Arg{Name: name, Kind: ArgInt, Check: checkRange(name, 0, maxListLen)}
}

func method(name, doc string, fn forwarder, argList ...Arg) *Method {
	conv := VarArgs
	if len(argList) == 0 {
		conv = NoArgs
	}
	return &Method{Name: name, Conv: conv, Args: argList, Doc: doc, fn: fn}
}

func (m *Method) preInit() *Method {
	m.PreInit = true
	return m
}

func (m *Method) returnsFloat() *Method {
	m.Result = KindFloat
	return m
}

func (m *Method) withArgDefault(v Value) *Method {
	m.ArgDefault = &v
	return m
}

func statusOf(op string, fn func(rc.Library, args) int) forwarder {
	return func(lib rc.Library, a args) (Value, error) {
		code := fn(lib, a)
		return Int(int64(code)), rc.Status(op, code)
	}
}

func intOf(fn func(rc.Library, args) int64) forwarder {
	return func(lib rc.Library, a args) (Value, error) {
		return Int(fn(lib, a)), nil
	}
}

func floatOf(fn func(rc.Library, args) float32) forwarder {
	return func(lib rc.Library, a args) (Value, error) {
		return Float(float64(fn(lib, a))), nil
	}
}

// readOf returns [status, data] of an I2C read.
func readOf(op string, fn func(rc.Library, args) (Value, int)) forwarder {
	return func(lib rc.Library, a args) (Value, error) {
		data, code := fn(lib, a)
		return List(Int(int64(code)), data), rc.Status(op, code)
	}
}

var rawMethods = []*Method{
	// Lifecycle
	{
		Name: "rcInitialize", Conv: NoArgs, PreInit: true,
		Doc: "Initialize RoboticsCape hard- and software.",
		handle: func(c *rc.Cape) (Value, error) {
			err := c.Initialize()
			return Int(int64(rc.StatusCode(err))), err
		},
	},
	{
		Name: "rcCleanup", Conv: NoArgs,
		Doc: "Shut down RoboticsCape library and functions.",
		handle: func(c *rc.Cape) (Value, error) {
			err := c.Cleanup()
			return Int(int64(rc.StatusCode(err))), err
		},
	},
	method("rcGetState", "Get high level robot state.",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetState()) })).preInit(),
	method("rcSetState", "Set high level robot state.",
		statusOf("rc_set_state", func(lib rc.Library, a args) int { return lib.SetState(rc.State(a.Int(0))) }),
		intArg("state")),
	method("rcPrintState", "Print the high level robot state.",
		statusOf("rc_print_state", func(lib rc.Library, a args) int { return lib.PrintState() })),

	// LEDs and buttons
	method("rcGetLED", "Get state of green (0) or red (1) LED (0 = off, 1 = on).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetLED(rc.LED(a.Int(0)))) }),
		intArg("led")),
	method("rcSetLED", "Turn on/off green (0) or red (1) LED (0 = off, 1 = on).",
		statusOf("rc_set_led", func(lib rc.Library, a args) int { return lib.SetLED(rc.LED(a.Int(0)), a.Int(1)) }),
		intArg("led"), intArg("state")),
	method("rcBlinkLED", "Blink green or red LED with a given frequency (Hz) for a finite period (s).",
		statusOf("rc_blink_led", func(lib rc.Library, a args) int {
			return lib.BlinkLED(rc.LED(a.Int(0)), a.Float(1), a.Float(2))
		}),
		intArg("led"), floatArg("hz"), floatArg("period")),
	method("rcGetButton", "Get state of pause (0) or mode (1) button (0 = released, 1 = pressed).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetButton(rc.Button(a.Int(0)))) }),
		intArg("button")),

	// Motors
	method("rcEnableMotors", "Enable motor controller.",
		statusOf("rc_enable_motors", func(lib rc.Library, a args) int { return lib.EnableMotors() })),
	method("rcDisableMotors", "Disable motor controller.",
		statusOf("rc_disable_motors", func(lib rc.Library, a args) int { return lib.DisableMotors() })),
	method("rcSetMotor", "Set direction and power (duty -1.0 ~ 1.0) of a single motor (1-4).",
		statusOf("rc_set_motor", func(lib rc.Library, a args) int { return lib.SetMotor(a.Int(0), a.Float(1)) }),
		intArg("motor"), floatArg("duty")),
	method("rcSetMotorAll", "Set direction and power (duty -1.0 ~ 1.0) of all motors.",
		statusOf("rc_set_motor_all", func(lib rc.Library, a args) int { return lib.SetMotorAll(a.Float(0)) }),
		floatArg("duty")),
	method("rcSetMotorFreeSpin", "Let a single motor spin freely.",
		statusOf("rc_set_motor_free_spin", func(lib rc.Library, a args) int { return lib.SetMotorFreeSpin(a.Int(0)) }),
		intArg("motor")),
	method("rcSetMotorFreeSpinAll", "Let all motors spin freely.",
		statusOf("rc_set_motor_free_spin_all", func(lib rc.Library, a args) int { return lib.SetMotorFreeSpinAll() })),
	method("rcSetMotorBrake", "Engage brake on a single motor.",
		statusOf("rc_set_motor_brake", func(lib rc.Library, a args) int { return lib.SetMotorBrake(a.Int(0)) }),
		intArg("motor")),
	method("rcSetMotorBrakeAll", "Engage brake on all motors.",
		statusOf("rc_set_motor_brake_all", func(lib rc.Library, a args) int { return lib.SetMotorBrakeAll() })),

	// Encoders
	method("rcGetEncoderPos", "Get quadrature encoder position for given channel (1-4).",
		intOf(func(lib rc.Library, a args) int64 { return lib.GetEncoderPos(a.Int(0)) }),
		intArg("channel")).withArgDefault(Int(0)),
	method("rcSetEncoderPos", "Set quadrature encoder position for given channel (1-4).",
		statusOf("rc_set_encoder_pos", func(lib rc.Library, a args) int { return lib.SetEncoderPos(a.Int(0), a.Int(1)) }),
		intArg("channel"), intArg("value")),

	// Analog
	method("rcBatteryVoltage", "Get LiPo battery voltage (V).",
		floatOf(func(lib rc.Library, a args) float32 { return lib.BatteryVoltage() })).returnsFloat(),
	method("rcDCJackVoltage", "Get DC jack voltage (V).",
		floatOf(func(lib rc.Library, a args) float32 { return lib.DCJackVoltage() })).returnsFloat(),
	method("rcADCRaw", "Get raw ADC value for given channel (0-6).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.ADCRaw(a.Int(0))) }),
		intArg("channel")),
	method("rcADCVolt", "Get ADC voltage (V) for given channel (0-6).",
		floatOf(func(lib rc.Library, a args) float32 { return lib.ADCVolt(a.Int(0)) }),
		intArg("channel")).returnsFloat(),

	// Servos and ESCs
	method("rcEnableServoPowerRail", "Enable servo 6V power rail.",
		statusOf("rc_enable_servo_power_rail", func(lib rc.Library, a args) int { return lib.EnableServoPowerRail() })),
	method("rcDisableServoPowerRail", "Disable servo 6V power rail.",
		statusOf("rc_disable_servo_power_rail", func(lib rc.Library, a args) int { return lib.DisableServoPowerRail() })),
	method("rcSendServoPulseUs", "Send a single pulse with duration in microseconds to the given servo channel (1-8).",
		statusOf("rc_send_servo_pulse_us", func(lib rc.Library, a args) int { return lib.SendServoPulseUs(a.Int(0), a.Int(1)) }),
		intArg("channel"), intArg("us")),
	method("rcSendServoPulseUsAll", "Send a single pulse with duration in microseconds to all servo channels.",
		statusOf("rc_send_servo_pulse_us_all", func(lib rc.Library, a args) int { return lib.SendServoPulseUsAll(a.Int(0)) }),
		intArg("us")),
	method("rcSendServoPulseNormalized", "Send a normalized pulse (range -1.5 ~ 1.5) to the given servo channel.",
		statusOf("rc_send_servo_pulse_normalized", func(lib rc.Library, a args) int {
			return lib.SendServoPulseNormalized(a.Int(0), a.Float(1))
		}),
		intArg("channel"), floatArg("input")),
	method("rcSendServoPulseNormalizedAll", "Send a normalized pulse (range -1.5 ~ 1.5) to all servo channels.",
		statusOf("rc_send_servo_pulse_normalized_all", func(lib rc.Library, a args) int {
			return lib.SendServoPulseNormalizedAll(a.Float(0))
		}),
		floatArg("input")),
	method("rcSendESCPulseNormalized", "Send a normalized pulse (range -0.1 ~ 1.0) to the given ESC channel.",
		statusOf("rc_send_esc_pulse_normalized", func(lib rc.Library, a args) int {
			return lib.SendESCPulseNormalized(a.Int(0), a.Float(1))
		}),
		intArg("channel"), floatArg("input")),
	method("rcSendESCPulseNormalizedAll", "Send a normalized pulse (range -0.1 ~ 1.0) to all ESC channels.",
		statusOf("rc_send_esc_pulse_normalized_all", func(lib rc.Library, a args) int {
			return lib.SendESCPulseNormalizedAll(a.Float(0))
		}),
		floatArg("input")),
	method("rcSendOneshotPulseNormalized", "Send a normalized oneshot pulse (range -0.1 ~ 1.0) to the given ESC channel.",
		statusOf("rc_send_oneshot_pulse_normalized", func(lib rc.Library, a args) int {
			return lib.SendOneshotPulseNormalized(a.Int(0), a.Float(1))
		}),
		intArg("channel"), floatArg("input")),
	method("rcSendOneshotPulseNormalizedAll", "Send a normalized oneshot pulse (range -0.1 ~ 1.0) to all ESC channels.",
		statusOf("rc_send_oneshot_pulse_normalized_all", func(lib rc.Library, a args) int {
			return lib.SendOneshotPulseNormalizedAll(a.Float(0))
		}),
		floatArg("input")),

	// DSM
	method("rcInitializeDSM", "Start the DSM reception background service.",
		statusOf("rc_initialize_dsm", func(lib rc.Library, a args) int { return lib.InitializeDSM() })),
	method("rcStopDSMService", "Stop the DSM reception background service.",
		statusOf("rc_stop_dsm_service", func(lib rc.Library, a args) int { return lib.StopDSMService() })),
	method("rcGetDSMChRaw", "Get the pulse width (us) sent by the transmitter to the given channel.",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetDSMChRaw(a.Int(0))) }),
		intArg("channel")),
	method("rcGetDSMChNormalized", "Get normalized value (range -1.0 ~ 1.0) of the given channel according to calibration.",
		floatOf(func(lib rc.Library, a args) float32 { return lib.GetDSMChNormalized(a.Int(0)) }),
		intArg("channel")).returnsFloat(),
	method("rcIsDSMNewData", "Check whether new DSM data is available (1 - true | 0 - false).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.IsNewDSMData()) })),
	method("rcIsDSMActive", "Check DSM packet health (1 - no errors | 0 - timeouts and/or packet errors).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.IsDSMActive()) })),
	method("rcNanosSinceLastDSMPacket", "Get nanoseconds since last DSM packet has been received.",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.NanosSinceLastDSMPacket()) })),
	method("rcGetDSMResolution", "Get DSM resolution (10 or 11 bits, 0 if unknown).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetDSMResolution()) })),
	method("rcNumDSMChannels", "Get number of channels currently being sent (0 if no packet received yet).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.NumDSMChannels()) })),
	method("rcBindDSM", "Put DSM receiver in bind mode.",
		statusOf("rc_bind_dsm", func(lib rc.Library, a args) int { return lib.BindDSM() })),
	method("rcCalibrateDSMRoutine", "Start DSM calibration routine.",
		statusOf("rc_calibrate_dsm_routine", func(lib rc.Library, a args) int { return lib.CalibrateDSMRoutine() })),

	// Barometer
	method("_rcInitializeBarometer", "Power on and initialize barometer with the given oversample and filter settings.",
		statusOf("rc_initialize_barometer", func(lib rc.Library, a args) int {
			return lib.InitializeBarometer(rc.BMPOversample(a.Int(0)), rc.BMPFilter(a.Int(1)))
		}),
		intArg("oversample"), intArg("filter")),
	method("rcPowerOffBarometer", "Power off barometer.",
		statusOf("rc_power_off_barometer", func(lib rc.Library, a args) int { return lib.PowerOffBarometer() })),
	method("rcReadBarometer", "Trigger reading new barometer values to be retrieved by the rcGetBMP* methods.",
		statusOf("rc_read_barometer", func(lib rc.Library, a args) int { return lib.ReadBarometer() })),
	method("rcGetBMPTemperature", "Get temperature (C) read during last rcReadBarometer call.",
		floatOf(func(lib rc.Library, a args) float32 { return lib.BMPTemperature() })).returnsFloat(),
	method("rcGetBMPPressurePa", "Get pressure (Pa) read during last rcReadBarometer call.",
		floatOf(func(lib rc.Library, a args) float32 { return lib.BMPPressurePa() })).returnsFloat(),
	method("rcGetBMPAltitudeM", "Get altitude (m) from the pressure read during last rcReadBarometer call.",
		floatOf(func(lib rc.Library, a args) float32 { return lib.BMPAltitudeM() })).returnsFloat(),
	method("rcSetBMPSeaLevelPressurePa", "Set current sea level pressure (Pa) to correct altitude reading.",
		statusOf("rc_set_sea_level_pressure_pa", func(lib rc.Library, a args) int { return lib.SetSeaLevelPressurePa(a.Float(0)) }),
		floatArg("pa")),

	// I2C
	method("rcInitializeI2C", "Initialize I2C bus with given bus number and device address.",
		statusOf("rc_i2c_init", func(lib rc.Library, a args) int { return lib.I2CInit(a.Int(0), a.Uint8(1)) }),
		intArg("bus"), intArg("address")),
	method("rcCloseI2C", "Close I2C bus with given bus number and release file descriptors.",
		statusOf("rc_i2c_close", func(lib rc.Library, a args) int { return lib.I2CClose(a.Int(0)) }),
		intArg("bus")),
	method("rcSetI2CDeviceAddress", "Switch to another device address on an initialized I2C bus.",
		statusOf("rc_i2c_set_device_address", func(lib rc.Library, a args) int {
			return lib.I2CSetDeviceAddress(a.Int(0), a.Uint8(1))
		}),
		intArg("bus"), intArg("address")),
	method("rcClaimI2CBus", "Mark I2C bus as being in use.",
		statusOf("rc_i2c_claim_bus", func(lib rc.Library, a args) int { return lib.I2CClaimBus(a.Int(0)) }),
		intArg("bus")),
	method("rcReleaseI2CBus", "Mark I2C bus as not being in use.",
		statusOf("rc_i2c_release_bus", func(lib rc.Library, a args) int { return lib.I2CReleaseBus(a.Int(0)) }),
		intArg("bus")),
	method("rcGetI2CBusInUse", "Check whether I2C bus is in use (1 - true | 0 - false).",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.I2CGetInUseState(a.Int(0))) }),
		intArg("bus")),
	method("rcReadI2CByte", "Read one byte from a particular I2C device and register, returns [status, byte].",
		readOf("rc_i2c_read_byte", func(lib rc.Library, a args) (Value, int) {
			b, code := lib.I2CReadByte(a.Int(0), a.Uint8(1))
			return Int(int64(b)), code
		}),
		intArg("bus"), intArg("register")),
	method("rcReadI2CBytes", "Read a given number of bytes from a particular I2C device and register, returns [status, bytes].",
		readOf("rc_i2c_read_bytes", func(lib rc.Library, a args) (Value, int) {
			data, code := lib.I2CReadBytes(a.Int(0), a.Uint8(1), a.Uint8(2))
			return Bytes(data), code
		}),
		intArg("bus"), intArg("register"), countArg("count")),
	method("rcReadI2CWord", "Read one word from a particular I2C device and register, returns [status, word].",
		readOf("rc_i2c_read_word", func(lib rc.Library, a args) (Value, int) {
			w, code := lib.I2CReadWord(a.Int(0), a.Uint8(1))
			return Int(int64(w)), code
		}),
		intArg("bus"), intArg("register")),
	method("rcReadI2CWords", "Read a given number of words from a particular I2C device and register, returns [status, words].",
		readOf("rc_i2c_read_words", func(lib rc.Library, a args) (Value, int) {
			data, code := lib.I2CReadWords(a.Int(0), a.Uint8(1), a.Uint8(2))
			return Words(data), code
		}),
		intArg("bus"), intArg("register"), countArg("count")),
	method("rcReadI2CBit", "Read one bit from a particular I2C device and register, returns [status, bit].",
		readOf("rc_i2c_read_bit", func(lib rc.Library, a args) (Value, int) {
			b, code := lib.I2CReadBit(a.Int(0), a.Uint8(1), a.Uint8(2))
			return Int(int64(b)), code
		}),
		intArg("bus"), intArg("register"), intArg("bit")),
	method("rcWriteI2CByte", "Write one byte to a particular I2C device and register.",
		statusOf("rc_i2c_write_byte", func(lib rc.Library, a args) int {
			return lib.I2CWriteByte(a.Int(0), a.Uint8(1), a.Uint8(2))
		}),
		intArg("bus"), intArg("register"), intArg("data")),
	method("rcWriteI2CBytes", "Write a given number of bytes to a particular I2C device and register.",
		statusOf("rc_i2c_write_bytes", func(lib rc.Library, a args) int {
			return lib.I2CWriteBytes(a.Int(0), a.Uint8(1), a.Bytes(2))
		}),
		intArg("bus"), intArg("register"), bytesArg("data")),
	method("rcWriteI2CWord", "Write one word to a particular I2C device and register.",
		statusOf("rc_i2c_write_word", func(lib rc.Library, a args) int {
			return lib.I2CWriteWord(a.Int(0), a.Uint8(1), a.Uint16(2))
		}),
		intArg("bus"), intArg("register"), intArg("data")),
	method("rcWriteI2CWords", "Write a given number of words to a particular I2C device and register.",
		statusOf("rc_i2c_write_words", func(lib rc.Library, a args) int {
			return lib.I2CWriteWords(a.Int(0), a.Uint8(1), a.Words(2))
		}),
		intArg("bus"), intArg("register"), wordsArg("data")),
	method("rcWriteI2CBit", "Write one bit to a particular I2C device and register.",
		statusOf("rc_i2c_write_bit", func(lib rc.Library, a args) int {
			return lib.I2CWriteBit(a.Int(0), a.Uint8(1), a.Uint8(2), a.Uint8(3))
		}),
		intArg("bus"), intArg("register"), intArg("bit"), intArg("data")),
	method("rcSendI2CByte", "Write one byte to the I2C bus (I2C broadcast).",
		statusOf("rc_i2c_send_byte", func(lib rc.Library, a args) int { return lib.I2CSendByte(a.Int(0), a.Uint8(1)) }),
		intArg("bus"), intArg("data")),
	method("rcSendI2CBytes", "Write a given number of bytes to the I2C bus (I2C broadcast).",
		statusOf("rc_i2c_send_bytes", func(lib rc.Library, a args) int { return lib.I2CSendBytes(a.Int(0), a.Bytes(1)) }),
		intArg("bus"), bytesArg("data")),

	// System
	method("rcSetCPUFreq", "Set CPU frequency.",
		statusOf("rc_set_cpu_freq", func(lib rc.Library, a args) int { return lib.SetCPUFreq(rc.CPUFreq(a.Int(0))) }),
		intArg("frequency")),
	method("rcGetCPUFreq", "Get CPU frequency setting.",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetCPUFreq()) })),
	method("rcGetBBModel", "Get the BeagleBone model.",
		intOf(func(lib rc.Library, a args) int64 { return int64(lib.GetBBModel()) })).preInit(),
}

// table is the complete method table, raw entries first, then helpers.
var (
	table = append(append([]*Method{}, rawMethods...), helperMethods...)
	index = indexTable(table)
)

func indexTable(methods []*Method) map[string]*Method {
	m := make(map[string]*Method, len(methods))
	for _, meth := range methods {
		if _, exists := m[meth.Name]; exists {
			panic("duplicated method " + meth.Name)
		}
		m[meth.Name] = meth
	}
	return m
}
