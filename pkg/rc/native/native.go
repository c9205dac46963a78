//go:build cgo && roboticscape
// +build cgo,roboticscape

package native

/*
#cgo LDFLAGS: -lroboticscape
#include <stdint.h>
#include <roboticscape.h>
*/
import "C"

import (
	"unsafe"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Available indicates the binary is linked against libroboticscape.
const Available = true

// Library implements rc.Library by calling libroboticscape.
type Library struct{}

// New returns the native library. The library keeps process-wide state, all
// returned values share it.
func New() (rc.Library, error) {
	return &Library{}, nil
}

// Initialize implements rc.Library.
func (l *Library) Initialize() int { return int(C.rc_initialize()) }

// Cleanup implements rc.Library.
func (l *Library) Cleanup() int { return int(C.rc_cleanup()) }

// GetState implements rc.Library.
func (l *Library) GetState() rc.State { return rc.State(C.rc_get_state()) }

// SetState implements rc.Library.
func (l *Library) SetState(s rc.State) int { return int(C.rc_set_state(C.rc_state_t(s))) }

// PrintState implements rc.Library.
func (l *Library) PrintState() int { return int(C.rc_print_state()) }

// GetLED implements rc.Library.
func (l *Library) GetLED(led rc.LED) int { return int(C.rc_get_led(C.rc_led_t(led))) }

// SetLED implements rc.Library.
func (l *Library) SetLED(led rc.LED, state int) int {
	return int(C.rc_set_led(C.rc_led_t(led), C.int(state)))
}

// BlinkLED implements rc.Library.
func (l *Library) BlinkLED(led rc.LED, hz, period float32) int {
	return int(C.rc_blink_led(C.rc_led_t(led), C.float(hz), C.float(period)))
}

// GetButton implements rc.Library. The C library has one function per button.
func (l *Library) GetButton(button rc.Button) rc.ButtonState {
	switch button {
	case rc.ButtonPause:
		return rc.ButtonState(C.rc_get_pause_button())
	case rc.ButtonMode:
		return rc.ButtonState(C.rc_get_mode_button())
	}
	return rc.ButtonReleased
}

// EnableMotors implements rc.Library.
func (l *Library) EnableMotors() int { return int(C.rc_enable_motors()) }

// DisableMotors implements rc.Library.
func (l *Library) DisableMotors() int { return int(C.rc_disable_motors()) }

// SetMotor implements rc.Library.
func (l *Library) SetMotor(motor int, duty float32) int {
	return int(C.rc_set_motor(C.int(motor), C.float(duty)))
}

// SetMotorAll implements rc.Library.
func (l *Library) SetMotorAll(duty float32) int { return int(C.rc_set_motor_all(C.float(duty))) }

// SetMotorFreeSpin implements rc.Library.
func (l *Library) SetMotorFreeSpin(motor int) int { return int(C.rc_set_motor_free_spin(C.int(motor))) }

// SetMotorFreeSpinAll implements rc.Library.
func (l *Library) SetMotorFreeSpinAll() int { return int(C.rc_set_motor_free_spin_all()) }

// SetMotorBrake implements rc.Library.
func (l *Library) SetMotorBrake(motor int) int { return int(C.rc_set_motor_brake(C.int(motor))) }

// SetMotorBrakeAll implements rc.Library.
func (l *Library) SetMotorBrakeAll() int { return int(C.rc_set_motor_brake_all()) }

// GetEncoderPos implements rc.Library.
func (l *Library) GetEncoderPos(ch int) int64 { return int64(C.rc_get_encoder_pos(C.int(ch))) }

// SetEncoderPos implements rc.Library.
func (l *Library) SetEncoderPos(ch int, value int) int {
	return int(C.rc_set_encoder_pos(C.int(ch), C.int(value)))
}

// BatteryVoltage implements rc.Library.
func (l *Library) BatteryVoltage() float32 { return float32(C.rc_battery_voltage()) }

// DCJackVoltage implements rc.Library.
func (l *Library) DCJackVoltage() float32 { return float32(C.rc_dc_jack_voltage()) }

// ADCRaw implements rc.Library.
func (l *Library) ADCRaw(ch int) int { return int(C.rc_adc_raw(C.int(ch))) }

// ADCVolt implements rc.Library.
func (l *Library) ADCVolt(ch int) float32 { return float32(C.rc_adc_volt(C.int(ch))) }

// EnableServoPowerRail implements rc.Library.
func (l *Library) EnableServoPowerRail() int { return int(C.rc_enable_servo_power_rail()) }

// DisableServoPowerRail implements rc.Library.
func (l *Library) DisableServoPowerRail() int { return int(C.rc_disable_servo_power_rail()) }

// SendServoPulseUs implements rc.Library.
func (l *Library) SendServoPulseUs(ch, us int) int {
	return int(C.rc_send_servo_pulse_us(C.int(ch), C.int(us)))
}

// SendServoPulseUsAll implements rc.Library.
func (l *Library) SendServoPulseUsAll(us int) int { return int(C.rc_send_servo_pulse_us_all(C.int(us))) }

// SendServoPulseNormalized implements rc.Library.
func (l *Library) SendServoPulseNormalized(ch int, input float32) int {
	return int(C.rc_send_servo_pulse_normalized(C.int(ch), C.float(input)))
}

// SendServoPulseNormalizedAll implements rc.Library.
func (l *Library) SendServoPulseNormalizedAll(input float32) int {
	return int(C.rc_send_servo_pulse_normalized_all(C.float(input)))
}

// SendESCPulseNormalized implements rc.Library.
func (l *Library) SendESCPulseNormalized(ch int, input float32) int {
	return int(C.rc_send_esc_pulse_normalized(C.int(ch), C.float(input)))
}

// SendESCPulseNormalizedAll implements rc.Library.
func (l *Library) SendESCPulseNormalizedAll(input float32) int {
	return int(C.rc_send_esc_pulse_normalized_all(C.float(input)))
}

// SendOneshotPulseNormalized implements rc.Library.
func (l *Library) SendOneshotPulseNormalized(ch int, input float32) int {
	return int(C.rc_send_oneshot_pulse_normalized(C.int(ch), C.float(input)))
}

// SendOneshotPulseNormalizedAll implements rc.Library.
func (l *Library) SendOneshotPulseNormalizedAll(input float32) int {
	return int(C.rc_send_oneshot_pulse_normalized_all(C.float(input)))
}

// InitializeDSM implements rc.Library.
func (l *Library) InitializeDSM() int { return int(C.rc_initialize_dsm()) }

// StopDSMService implements rc.Library.
func (l *Library) StopDSMService() int { return int(C.rc_stop_dsm_service()) }

// GetDSMChRaw implements rc.Library.
func (l *Library) GetDSMChRaw(ch int) int { return int(C.rc_get_dsm_ch_raw(C.int(ch))) }

// GetDSMChNormalized implements rc.Library.
func (l *Library) GetDSMChNormalized(ch int) float32 {
	return float32(C.rc_get_dsm_ch_normalized(C.int(ch)))
}

// IsNewDSMData implements rc.Library.
func (l *Library) IsNewDSMData() int { return int(C.rc_is_new_dsm_data()) }

// IsDSMActive implements rc.Library.
func (l *Library) IsDSMActive() int { return int(C.rc_is_dsm_active()) }

// NanosSinceLastDSMPacket implements rc.Library.
func (l *Library) NanosSinceLastDSMPacket() uint64 {
	return uint64(C.rc_nanos_since_last_dsm_packet())
}

// GetDSMResolution implements rc.Library.
func (l *Library) GetDSMResolution() int { return int(C.rc_get_dsm_resolution()) }

// NumDSMChannels implements rc.Library.
func (l *Library) NumDSMChannels() int { return int(C.rc_num_dsm_channels()) }

// BindDSM implements rc.Library.
func (l *Library) BindDSM() int { return int(C.rc_bind_dsm()) }

// CalibrateDSMRoutine implements rc.Library.
func (l *Library) CalibrateDSMRoutine() int { return int(C.rc_calibrate_dsm_routine()) }

// InitializeBarometer implements rc.Library.
func (l *Library) InitializeBarometer(oversample rc.BMPOversample, filter rc.BMPFilter) int {
	return int(C.rc_initialize_barometer(C.rc_bmp_oversample_t(oversample), C.rc_bmp_filter_t(filter)))
}

// PowerOffBarometer implements rc.Library.
func (l *Library) PowerOffBarometer() int { return int(C.rc_power_off_barometer()) }

// ReadBarometer implements rc.Library.
func (l *Library) ReadBarometer() int { return int(C.rc_read_barometer()) }

// BMPTemperature implements rc.Library.
func (l *Library) BMPTemperature() float32 { return float32(C.rc_bmp_get_temperature()) }

// BMPPressurePa implements rc.Library.
func (l *Library) BMPPressurePa() float32 { return float32(C.rc_bmp_get_pressure_pa()) }

// BMPAltitudeM implements rc.Library.
func (l *Library) BMPAltitudeM() float32 { return float32(C.rc_bmp_get_altitude_m()) }

// SetSeaLevelPressurePa implements rc.Library.
func (l *Library) SetSeaLevelPressurePa(pa float32) int {
	return int(C.rc_set_sea_level_pressure_pa(C.float(pa)))
}

// I2CInit implements rc.Library.
func (l *Library) I2CInit(bus int, devAddr uint8) int {
	return int(C.rc_i2c_init(C.int(bus), C.uint8_t(devAddr)))
}

// I2CClose implements rc.Library.
func (l *Library) I2CClose(bus int) int { return int(C.rc_i2c_close(C.int(bus))) }

// I2CSetDeviceAddress implements rc.Library.
func (l *Library) I2CSetDeviceAddress(bus int, devAddr uint8) int {
	return int(C.rc_i2c_set_device_address(C.int(bus), C.uint8_t(devAddr)))
}

// I2CClaimBus implements rc.Library.
func (l *Library) I2CClaimBus(bus int) int { return int(C.rc_i2c_claim_bus(C.int(bus))) }

// I2CReleaseBus implements rc.Library.
func (l *Library) I2CReleaseBus(bus int) int { return int(C.rc_i2c_release_bus(C.int(bus))) }

// I2CGetInUseState implements rc.Library.
func (l *Library) I2CGetInUseState(bus int) int { return int(C.rc_i2c_get_in_use_state(C.int(bus))) }

// I2CReadByte implements rc.Library.
func (l *Library) I2CReadByte(bus int, regAddr uint8) (uint8, int) {
	var data C.uint8_t
	code := C.rc_i2c_read_byte(C.int(bus), C.uint8_t(regAddr), &data)
	return uint8(data), int(code)
}

// I2CReadBytes implements rc.Library.
func (l *Library) I2CReadBytes(bus int, regAddr uint8, count uint8) ([]uint8, int) {
	if count == 0 {
		return nil, int(C.rc_i2c_read_bytes(C.int(bus), C.uint8_t(regAddr), 0, nil))
	}
	data := make([]uint8, count)
	code := C.rc_i2c_read_bytes(C.int(bus), C.uint8_t(regAddr), C.uint8_t(count),
		(*C.uint8_t)(unsafe.Pointer(&data[0])))
	return data, int(code)
}

// I2CReadWord implements rc.Library.
func (l *Library) I2CReadWord(bus int, regAddr uint8) (uint16, int) {
	var data C.uint16_t
	code := C.rc_i2c_read_word(C.int(bus), C.uint8_t(regAddr), &data)
	return uint16(data), int(code)
}

// I2CReadWords implements rc.Library.
func (l *Library) I2CReadWords(bus int, regAddr uint8, count uint8) ([]uint16, int) {
	if count == 0 {
		return nil, int(C.rc_i2c_read_words(C.int(bus), C.uint8_t(regAddr), 0, nil))
	}
	data := make([]uint16, count)
	code := C.rc_i2c_read_words(C.int(bus), C.uint8_t(regAddr), C.uint8_t(count),
		(*C.uint16_t)(unsafe.Pointer(&data[0])))
	return data, int(code)
}

// I2CReadBit implements rc.Library.
func (l *Library) I2CReadBit(bus int, regAddr, bitNum uint8) (uint8, int) {
	var data C.uint8_t
	code := C.rc_i2c_read_bit(C.int(bus), C.uint8_t(regAddr), C.uint8_t(bitNum), &data)
	return uint8(data), int(code)
}

// I2CWriteByte implements rc.Library.
func (l *Library) I2CWriteByte(bus int, regAddr, data uint8) int {
	return int(C.rc_i2c_write_byte(C.int(bus), C.uint8_t(regAddr), C.uint8_t(data)))
}

// I2CWriteBytes implements rc.Library.
func (l *Library) I2CWriteBytes(bus int, regAddr uint8, data []uint8) int {
	if len(data) == 0 {
		return int(C.rc_i2c_write_bytes(C.int(bus), C.uint8_t(regAddr), 0, nil))
	}
	return int(C.rc_i2c_write_bytes(C.int(bus), C.uint8_t(regAddr), C.uint8_t(len(data)),
		(*C.uint8_t)(unsafe.Pointer(&data[0]))))
}

// I2CWriteWord implements rc.Library.
func (l *Library) I2CWriteWord(bus int, regAddr uint8, data uint16) int {
	return int(C.rc_i2c_write_word(C.int(bus), C.uint8_t(regAddr), C.uint16_t(data)))
}

// I2CWriteWords implements rc.Library.
func (l *Library) I2CWriteWords(bus int, regAddr uint8, data []uint16) int {
	if len(data) == 0 {
		return int(C.rc_i2c_write_words(C.int(bus), C.uint8_t(regAddr), 0, nil))
	}
	return int(C.rc_i2c_write_words(C.int(bus), C.uint8_t(regAddr), C.uint8_t(len(data)),
		(*C.uint16_t)(unsafe.Pointer(&data[0]))))
}

// I2CWriteBit implements rc.Library.
func (l *Library) I2CWriteBit(bus int, regAddr, bitNum, data uint8) int {
	return int(C.rc_i2c_write_bit(C.int(bus), C.uint8_t(regAddr), C.uint8_t(bitNum), C.uint8_t(data)))
}

// I2CSendByte implements rc.Library.
func (l *Library) I2CSendByte(bus int, data uint8) int {
	return int(C.rc_i2c_send_byte(C.int(bus), C.uint8_t(data)))
}

// I2CSendBytes implements rc.Library.
func (l *Library) I2CSendBytes(bus int, data []uint8) int {
	if len(data) == 0 {
		return int(C.rc_i2c_send_bytes(C.int(bus), 0, nil))
	}
	return int(C.rc_i2c_send_bytes(C.int(bus), C.uint8_t(len(data)), (*C.uint8_t)(unsafe.Pointer(&data[0]))))
}

// SetCPUFreq implements rc.Library.
func (l *Library) SetCPUFreq(freq rc.CPUFreq) int { return int(C.rc_set_cpu_freq(C.rc_cpu_freq_t(freq))) }

// GetCPUFreq implements rc.Library.
func (l *Library) GetCPUFreq() rc.CPUFreq { return rc.CPUFreq(C.rc_get_cpu_freq()) }

// GetBBModel implements rc.Library.
func (l *Library) GetBBModel() rc.BBModel { return rc.BBModel(C.rc_get_bb_model()) }
