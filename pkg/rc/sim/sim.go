// Package sim provides a simulated libroboticscape.
//
// The simulation keeps a plain state model of the cape and records every
// call it receives, so it serves both as a stand-in on machines without the
// hardware and as the mock library in tests.
package sim

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Hardware limits of the cape.
const (
	NumMotors      = 4
	NumEncoders    = 4
	NumADCChannels = 7
	NumServos      = 8
	NumDSMChannels = 9
)

// MotorMode is the driving mode of a motor channel.
type MotorMode int

// Motor modes
const (
	MotorDrive MotorMode = iota
	MotorFreeSpin
	MotorBrake
)

// Motor is the state of a motor channel.
type Motor struct {
	Mode MotorMode
	Duty float32
}

// DSM is the state of the radio receiver.
type DSM struct {
	Running     bool
	Binding     bool
	Calibrating bool
	Resolution  int
	// Channels are raw pulse widths in microseconds, its length is the
	// number of channels in the last packet.
	Channels         []int
	NewData          bool
	Active           bool
	NanosSincePacket uint64
}

// Barometer is the state of the BMP280.
type Barometer struct {
	On              bool
	Oversample      rc.BMPOversample
	Filter          rc.BMPFilter
	TemperatureC    float32
	PressurePa      float32
	SeaLevelPa      float32
	ReadTemperature float32
	ReadPressure    float32
	Reads           int
}

// State is the complete simulated cape state.
type State struct {
	Initialized    bool
	RobotState     rc.State
	LEDs           [2]int
	Buttons        [2]rc.ButtonState
	MotorsEnabled  bool
	Motors         [NumMotors]Motor
	Encoders       [NumEncoders]int64
	BatteryVoltage float32
	DCJackVoltage  float32
	ADC            [NumADCChannels]int
	ServoRail      bool
	// Servos holds the last pulse width sent to each channel in microseconds.
	Servos    [NumServos]float32
	DSM       DSM
	Barometer Barometer
	CPUFreq   rc.CPUFreq
	Model     rc.BBModel
}

// Call is a recorded native call.
type Call struct {
	Func string
	Args []interface{}
}

// String implements Stringer.
func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Func, c.Args)
}

// Library implements rc.Library with simulated state.
type Library struct {
	// Out receives the output of rc_print_state.
	Out io.Writer

	state     State
	calls     []Call
	overrides map[string]int
	buses     map[int]*i2cBus
	lock      sync.Mutex
}

// New creates a simulated library with default state and no I2C buses.
func New() *Library {
	return &Library{
		Out: os.Stdout,
		state: State{
			Barometer: Barometer{
				TemperatureC: 22.5,
				PressurePa:   101325,
				SeaLevelPa:   101325,
			},
			DSM: DSM{Resolution: 11},
		},
		overrides: make(map[string]int),
		buses:     make(map[int]*i2cBus),
	}
}

// Update mutates the simulated state.
func (l *Library) Update(fn func(*State)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fn(&l.state)
}

// Snapshot returns a copy of the simulated state.
func (l *Library) Snapshot() State {
	l.lock.Lock()
	defer l.lock.Unlock()
	s := l.state
	s.DSM.Channels = append([]int(nil), l.state.DSM.Channels...)
	return s
}

// Calls returns the recorded calls.
func (l *Library) Calls() []Call {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]Call(nil), l.calls...)
}

// ResetCalls clears recorded calls.
func (l *Library) ResetCalls() {
	l.lock.Lock()
	l.calls = nil
	l.lock.Unlock()
}

// Override forces the status code returned by a status-returning native
// function, e.g. Override("rc_initialize", -1). Functions returning
// measurements are not affected.
func (l *Library) Override(fn string, code int) {
	l.lock.Lock()
	l.overrides[fn] = code
	l.lock.Unlock()
}

// ClearOverrides removes all overrides.
func (l *Library) ClearOverrides() {
	l.lock.Lock()
	l.overrides = make(map[string]int)
	l.lock.Unlock()
}

// record must be called with lock held.
func (l *Library) record(fn string, args ...interface{}) {
	l.calls = append(l.calls, Call{Func: fn, Args: args})
}

// status must be called with lock held.
func (l *Library) status(fn string, code int) int {
	if c, ok := l.overrides[fn]; ok {
		return c
	}
	return code
}

// Initialize implements rc.Library.
func (l *Library) Initialize() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_initialize")
	code := l.status("rc_initialize", 0)
	if code == 0 {
		l.state.Initialized = true
		l.state.RobotState = rc.StatePaused
	}
	return code
}

// Cleanup implements rc.Library.
func (l *Library) Cleanup() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_cleanup")
	l.state.Initialized = false
	l.state.RobotState = rc.StateExiting
	l.state.MotorsEnabled = false
	l.state.DSM.Running = false
	l.state.Barometer.On = false
	return l.status("rc_cleanup", 0)
}

// GetState implements rc.Library.
func (l *Library) GetState() rc.State {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_state")
	return l.state.RobotState
}

// SetState implements rc.Library.
func (l *Library) SetState(s rc.State) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_state", s)
	if !s.Valid() {
		return l.status("rc_set_state", -1)
	}
	l.state.RobotState = s
	return l.status("rc_set_state", 0)
}

// PrintState implements rc.Library.
func (l *Library) PrintState() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_print_state")
	if _, err := fmt.Fprintln(l.Out, l.state.RobotState.String()); err != nil {
		return l.status("rc_print_state", -1)
	}
	return l.status("rc_print_state", 0)
}

// GetLED implements rc.Library.
func (l *Library) GetLED(led rc.LED) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_led", led)
	if !led.Valid() {
		return -1
	}
	return l.state.LEDs[led]
}

// SetLED implements rc.Library.
func (l *Library) SetLED(led rc.LED, state int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_led", led, state)
	if !led.Valid() {
		return l.status("rc_set_led", -1)
	}
	if state != 0 {
		state = 1
	}
	l.state.LEDs[led] = state
	return l.status("rc_set_led", 0)
}

// BlinkLED implements rc.Library. The simulation doesn't block, it leaves the
// LED off as the native blink does when finished.
func (l *Library) BlinkLED(led rc.LED, hz, period float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_blink_led", led, hz, period)
	if !led.Valid() || hz <= 0 || period < 0 {
		return l.status("rc_blink_led", -1)
	}
	l.state.LEDs[led] = 0
	return l.status("rc_blink_led", 0)
}

// GetButton implements rc.Library.
func (l *Library) GetButton(button rc.Button) rc.ButtonState {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_button", button)
	if !button.Valid() {
		return rc.ButtonReleased
	}
	return l.state.Buttons[button]
}

// EnableMotors implements rc.Library.
func (l *Library) EnableMotors() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_enable_motors")
	l.state.MotorsEnabled = true
	return l.status("rc_enable_motors", 0)
}

// DisableMotors implements rc.Library.
func (l *Library) DisableMotors() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_disable_motors")
	l.state.MotorsEnabled = false
	return l.status("rc_disable_motors", 0)
}

func clampDuty(duty float32) float32 {
	if duty > 1 {
		return 1
	}
	if duty < -1 {
		return -1
	}
	return duty
}

// SetMotor implements rc.Library.
func (l *Library) SetMotor(motor int, duty float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor", motor, duty)
	if motor < 1 || motor > NumMotors {
		return l.status("rc_set_motor", -1)
	}
	l.state.Motors[motor-1] = Motor{Mode: MotorDrive, Duty: clampDuty(duty)}
	return l.status("rc_set_motor", 0)
}

// SetMotorAll implements rc.Library.
func (l *Library) SetMotorAll(duty float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor_all", duty)
	for i := range l.state.Motors {
		l.state.Motors[i] = Motor{Mode: MotorDrive, Duty: clampDuty(duty)}
	}
	return l.status("rc_set_motor_all", 0)
}

// SetMotorFreeSpin implements rc.Library.
func (l *Library) SetMotorFreeSpin(motor int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor_free_spin", motor)
	if motor < 1 || motor > NumMotors {
		return l.status("rc_set_motor_free_spin", -1)
	}
	l.state.Motors[motor-1] = Motor{Mode: MotorFreeSpin}
	return l.status("rc_set_motor_free_spin", 0)
}

// SetMotorFreeSpinAll implements rc.Library.
func (l *Library) SetMotorFreeSpinAll() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor_free_spin_all")
	for i := range l.state.Motors {
		l.state.Motors[i] = Motor{Mode: MotorFreeSpin}
	}
	return l.status("rc_set_motor_free_spin_all", 0)
}

// SetMotorBrake implements rc.Library.
func (l *Library) SetMotorBrake(motor int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor_brake", motor)
	if motor < 1 || motor > NumMotors {
		return l.status("rc_set_motor_brake", -1)
	}
	l.state.Motors[motor-1] = Motor{Mode: MotorBrake}
	return l.status("rc_set_motor_brake", 0)
}

// SetMotorBrakeAll implements rc.Library.
func (l *Library) SetMotorBrakeAll() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_motor_brake_all")
	for i := range l.state.Motors {
		l.state.Motors[i] = Motor{Mode: MotorBrake}
	}
	return l.status("rc_set_motor_brake_all", 0)
}

// GetEncoderPos implements rc.Library.
func (l *Library) GetEncoderPos(ch int) int64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_encoder_pos", ch)
	if ch < 1 || ch > NumEncoders {
		return -1
	}
	return l.state.Encoders[ch-1]
}

// SetEncoderPos implements rc.Library.
func (l *Library) SetEncoderPos(ch int, value int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_encoder_pos", ch, value)
	if ch < 1 || ch > NumEncoders {
		return l.status("rc_set_encoder_pos", -1)
	}
	l.state.Encoders[ch-1] = int64(value)
	return l.status("rc_set_encoder_pos", 0)
}

// BatteryVoltage implements rc.Library.
func (l *Library) BatteryVoltage() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_battery_voltage")
	return l.state.BatteryVoltage
}

// DCJackVoltage implements rc.Library.
func (l *Library) DCJackVoltage() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_dc_jack_voltage")
	return l.state.DCJackVoltage
}

// ADC full scale of the AM335x: 12 bits over 1.8V.
const (
	adcMaxRaw  = 4095
	adcVoltage = 1.8
)

// ADCRaw implements rc.Library.
func (l *Library) ADCRaw(ch int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_adc_raw", ch)
	if ch < 0 || ch >= NumADCChannels {
		return -1
	}
	return l.state.ADC[ch]
}

// ADCVolt implements rc.Library.
func (l *Library) ADCVolt(ch int) float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_adc_volt", ch)
	if ch < 0 || ch >= NumADCChannels {
		return -1
	}
	return float32(l.state.ADC[ch]) * adcVoltage / adcMaxRaw
}

// EnableServoPowerRail implements rc.Library.
func (l *Library) EnableServoPowerRail() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_enable_servo_power_rail")
	l.state.ServoRail = true
	return l.status("rc_enable_servo_power_rail", 0)
}

// DisableServoPowerRail implements rc.Library.
func (l *Library) DisableServoPowerRail() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_disable_servo_power_rail")
	l.state.ServoRail = false
	return l.status("rc_disable_servo_power_rail", 0)
}

// sendPulse must be called with lock held, ch 0 means all channels.
func (l *Library) sendPulse(fn string, ch int, us float32) int {
	if ch == 0 {
		for i := range l.state.Servos {
			l.state.Servos[i] = us
		}
		return l.status(fn, 0)
	}
	if ch < 1 || ch > NumServos {
		return l.status(fn, -1)
	}
	l.state.Servos[ch-1] = us
	return l.status(fn, 0)
}

// Pulse width conversions of the normalized inputs.
func servoUs(input float32) float32   { return 1500 + input*600 }
func escUs(input float32) float32     { return 1000 + input*1000 }
func oneshotUs(input float32) float32 { return 125 + input*125 }

func inRange(v, min, max float32) bool { return v >= min && v <= max }

// SendServoPulseUs implements rc.Library.
func (l *Library) SendServoPulseUs(ch, us int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_servo_pulse_us", ch, us)
	if ch == 0 || us < 0 {
		return l.status("rc_send_servo_pulse_us", -1)
	}
	return l.sendPulse("rc_send_servo_pulse_us", ch, float32(us))
}

// SendServoPulseUsAll implements rc.Library.
func (l *Library) SendServoPulseUsAll(us int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_servo_pulse_us_all", us)
	if us < 0 {
		return l.status("rc_send_servo_pulse_us_all", -1)
	}
	return l.sendPulse("rc_send_servo_pulse_us_all", 0, float32(us))
}

// SendServoPulseNormalized implements rc.Library.
func (l *Library) SendServoPulseNormalized(ch int, input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_servo_pulse_normalized", ch, input)
	if ch == 0 || !inRange(input, -1.5, 1.5) {
		return l.status("rc_send_servo_pulse_normalized", -1)
	}
	return l.sendPulse("rc_send_servo_pulse_normalized", ch, servoUs(input))
}

// SendServoPulseNormalizedAll implements rc.Library.
func (l *Library) SendServoPulseNormalizedAll(input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_servo_pulse_normalized_all", input)
	if !inRange(input, -1.5, 1.5) {
		return l.status("rc_send_servo_pulse_normalized_all", -1)
	}
	return l.sendPulse("rc_send_servo_pulse_normalized_all", 0, servoUs(input))
}

// SendESCPulseNormalized implements rc.Library.
func (l *Library) SendESCPulseNormalized(ch int, input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_esc_pulse_normalized", ch, input)
	if ch == 0 || !inRange(input, -0.1, 1) {
		return l.status("rc_send_esc_pulse_normalized", -1)
	}
	return l.sendPulse("rc_send_esc_pulse_normalized", ch, escUs(input))
}

// SendESCPulseNormalizedAll implements rc.Library.
func (l *Library) SendESCPulseNormalizedAll(input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_esc_pulse_normalized_all", input)
	if !inRange(input, -0.1, 1) {
		return l.status("rc_send_esc_pulse_normalized_all", -1)
	}
	return l.sendPulse("rc_send_esc_pulse_normalized_all", 0, escUs(input))
}

// SendOneshotPulseNormalized implements rc.Library.
func (l *Library) SendOneshotPulseNormalized(ch int, input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_oneshot_pulse_normalized", ch, input)
	if ch == 0 || !inRange(input, -0.1, 1) {
		return l.status("rc_send_oneshot_pulse_normalized", -1)
	}
	return l.sendPulse("rc_send_oneshot_pulse_normalized", ch, oneshotUs(input))
}

// SendOneshotPulseNormalizedAll implements rc.Library.
func (l *Library) SendOneshotPulseNormalizedAll(input float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_send_oneshot_pulse_normalized_all", input)
	if !inRange(input, -0.1, 1) {
		return l.status("rc_send_oneshot_pulse_normalized_all", -1)
	}
	return l.sendPulse("rc_send_oneshot_pulse_normalized_all", 0, oneshotUs(input))
}

// InitializeDSM implements rc.Library.
func (l *Library) InitializeDSM() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_initialize_dsm")
	l.state.DSM.Running = true
	return l.status("rc_initialize_dsm", 0)
}

// StopDSMService implements rc.Library.
func (l *Library) StopDSMService() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_stop_dsm_service")
	l.state.DSM.Running = false
	return l.status("rc_stop_dsm_service", 0)
}

// GetDSMChRaw implements rc.Library.
func (l *Library) GetDSMChRaw(ch int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_dsm_ch_raw", ch)
	if ch < 1 || ch > NumDSMChannels {
		return -1
	}
	if ch > len(l.state.DSM.Channels) {
		return 0
	}
	l.state.DSM.NewData = false
	return l.state.DSM.Channels[ch-1]
}

// GetDSMChNormalized implements rc.Library. Calibration is fixed to a
// 900-2100us span around 1500us.
func (l *Library) GetDSMChNormalized(ch int) float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_dsm_ch_normalized", ch)
	if ch < 1 || ch > NumDSMChannels || ch > len(l.state.DSM.Channels) {
		return 0
	}
	l.state.DSM.NewData = false
	return float32(l.state.DSM.Channels[ch-1]-1500) / 600
}

// IsNewDSMData implements rc.Library.
func (l *Library) IsNewDSMData() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_is_new_dsm_data")
	return boolInt(l.state.DSM.Running && l.state.DSM.NewData)
}

// IsDSMActive implements rc.Library.
func (l *Library) IsDSMActive() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_is_dsm_active")
	return boolInt(l.state.DSM.Running && l.state.DSM.Active)
}

// NanosSinceLastDSMPacket implements rc.Library.
func (l *Library) NanosSinceLastDSMPacket() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_nanos_since_last_dsm_packet")
	return l.state.DSM.NanosSincePacket
}

// GetDSMResolution implements rc.Library.
func (l *Library) GetDSMResolution() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_dsm_resolution")
	if len(l.state.DSM.Channels) == 0 {
		return 0
	}
	return l.state.DSM.Resolution
}

// NumDSMChannels implements rc.Library.
func (l *Library) NumDSMChannels() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_num_dsm_channels")
	return len(l.state.DSM.Channels)
}

// BindDSM implements rc.Library.
func (l *Library) BindDSM() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_bind_dsm")
	l.state.DSM.Binding = true
	return l.status("rc_bind_dsm", 0)
}

// CalibrateDSMRoutine implements rc.Library.
func (l *Library) CalibrateDSMRoutine() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_calibrate_dsm_routine")
	if !l.state.DSM.Running {
		return l.status("rc_calibrate_dsm_routine", -1)
	}
	l.state.DSM.Calibrating = true
	return l.status("rc_calibrate_dsm_routine", 0)
}

// InitializeBarometer implements rc.Library.
func (l *Library) InitializeBarometer(oversample rc.BMPOversample, filter rc.BMPFilter) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_initialize_barometer", oversample, filter)
	if !oversample.Valid() || !filter.Valid() {
		return l.status("rc_initialize_barometer", -1)
	}
	b := &l.state.Barometer
	b.On, b.Oversample, b.Filter = true, oversample, filter
	return l.status("rc_initialize_barometer", 0)
}

// PowerOffBarometer implements rc.Library.
func (l *Library) PowerOffBarometer() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_power_off_barometer")
	l.state.Barometer.On = false
	return l.status("rc_power_off_barometer", 0)
}

// ReadBarometer implements rc.Library.
func (l *Library) ReadBarometer() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_read_barometer")
	b := &l.state.Barometer
	if !b.On {
		return l.status("rc_read_barometer", -1)
	}
	b.ReadTemperature, b.ReadPressure = b.TemperatureC, b.PressurePa
	b.Reads++
	return l.status("rc_read_barometer", 0)
}

// BMPTemperature implements rc.Library.
func (l *Library) BMPTemperature() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_bmp_get_temperature")
	return l.state.Barometer.ReadTemperature
}

// BMPPressurePa implements rc.Library.
func (l *Library) BMPPressurePa() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_bmp_get_pressure_pa")
	return l.state.Barometer.ReadPressure
}

// BMPAltitudeM implements rc.Library using the international barometric
// formula against the configured sea level pressure.
func (l *Library) BMPAltitudeM() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_bmp_get_altitude_m")
	b := &l.state.Barometer
	if b.ReadPressure <= 0 || b.SeaLevelPa <= 0 {
		return 0
	}
	return float32(44330 * (1 - math.Pow(float64(b.ReadPressure/b.SeaLevelPa), 1/5.255)))
}

// SetSeaLevelPressurePa implements rc.Library.
func (l *Library) SetSeaLevelPressurePa(pa float32) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_sea_level_pressure_pa", pa)
	if pa <= 0 {
		return l.status("rc_set_sea_level_pressure_pa", -1)
	}
	l.state.Barometer.SeaLevelPa = pa
	return l.status("rc_set_sea_level_pressure_pa", 0)
}

// SetCPUFreq implements rc.Library.
func (l *Library) SetCPUFreq(freq rc.CPUFreq) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_set_cpu_freq", freq)
	if !freq.Valid() {
		return l.status("rc_set_cpu_freq", -1)
	}
	l.state.CPUFreq = freq
	return l.status("rc_set_cpu_freq", 0)
}

// GetCPUFreq implements rc.Library.
func (l *Library) GetCPUFreq() rc.CPUFreq {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_cpu_freq")
	return l.state.CPUFreq
}

// GetBBModel implements rc.Library.
func (l *Library) GetBBModel() rc.BBModel {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_get_bb_model")
	return l.state.Model
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ rc.Library = (*Library)(nil)
