// Package rc defines the contract of libroboticscape, the hardware library of
// the BeagleBone Blue and the Robotics Cape.
//
// Library mirrors the C functions one to one, keeping their C-style return
// conventions: 0 means success and a negative value means failure. Cape is the
// explicit handle every caller routes through, it converts the conventions
// into Go errors.
package rc

// Library is the set of native functions. Implementations must not add
// behavior around the native calls, in particular no locking.
type Library interface {
	// Lifecycle
	Initialize() int
	Cleanup() int
	GetState() State
	SetState(State) int
	PrintState() int

	// LEDs and buttons
	GetLED(led LED) int
	SetLED(led LED, state int) int
	BlinkLED(led LED, hz, period float32) int
	GetButton(button Button) ButtonState

	// Motors, duty ranges from -1.0 to 1.0.
	EnableMotors() int
	DisableMotors() int
	SetMotor(motor int, duty float32) int
	SetMotorAll(duty float32) int
	SetMotorFreeSpin(motor int) int
	SetMotorFreeSpinAll() int
	SetMotorBrake(motor int) int
	SetMotorBrakeAll() int

	// Quadrature encoders, channels 1-4.
	GetEncoderPos(ch int) int64
	SetEncoderPos(ch int, value int) int

	// Analog
	BatteryVoltage() float32
	DCJackVoltage() float32
	ADCRaw(ch int) int
	ADCVolt(ch int) float32

	// Servos and ESCs, channels 1-8.
	EnableServoPowerRail() int
	DisableServoPowerRail() int
	SendServoPulseUs(ch, us int) int
	SendServoPulseUsAll(us int) int
	SendServoPulseNormalized(ch int, input float32) int
	SendServoPulseNormalizedAll(input float32) int
	SendESCPulseNormalized(ch int, input float32) int
	SendESCPulseNormalizedAll(input float32) int
	SendOneshotPulseNormalized(ch int, input float32) int
	SendOneshotPulseNormalizedAll(input float32) int

	// DSM radio receiver
	InitializeDSM() int
	StopDSMService() int
	GetDSMChRaw(ch int) int
	GetDSMChNormalized(ch int) float32
	IsNewDSMData() int
	IsDSMActive() int
	NanosSinceLastDSMPacket() uint64
	GetDSMResolution() int
	NumDSMChannels() int
	BindDSM() int
	CalibrateDSMRoutine() int

	// Barometer
	InitializeBarometer(oversample BMPOversample, filter BMPFilter) int
	PowerOffBarometer() int
	ReadBarometer() int
	BMPTemperature() float32
	BMPPressurePa() float32
	BMPAltitudeM() float32
	SetSeaLevelPressurePa(pa float32) int

	// I2C, reads return the data with the status code.
	I2CInit(bus int, devAddr uint8) int
	I2CClose(bus int) int
	I2CSetDeviceAddress(bus int, devAddr uint8) int
	I2CClaimBus(bus int) int
	I2CReleaseBus(bus int) int
	I2CGetInUseState(bus int) int
	I2CReadByte(bus int, regAddr uint8) (uint8, int)
	I2CReadBytes(bus int, regAddr uint8, count uint8) ([]uint8, int)
	I2CReadWord(bus int, regAddr uint8) (uint16, int)
	I2CReadWords(bus int, regAddr uint8, count uint8) ([]uint16, int)
	I2CReadBit(bus int, regAddr, bitNum uint8) (uint8, int)
	I2CWriteByte(bus int, regAddr, data uint8) int
	I2CWriteBytes(bus int, regAddr uint8, data []uint8) int
	I2CWriteWord(bus int, regAddr uint8, data uint16) int
	I2CWriteWords(bus int, regAddr uint8, data []uint16) int
	I2CWriteBit(bus int, regAddr, bitNum, data uint8) int
	I2CSendByte(bus int, data uint8) int
	I2CSendBytes(bus int, data []uint8) int

	// System
	SetCPUFreq(freq CPUFreq) int
	GetCPUFreq() CPUFreq
	GetBBModel() BBModel
}
