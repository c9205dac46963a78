package rc

import "strconv"

// State is the high level robot state shared by all programs using the cape.
type State int

// States
const (
	StateUninitialized State = 0
	StateRunning       State = 1
	StatePaused        State = 2
	StateExiting       State = 3
)

var stateNames = map[State]string{
	StateUninitialized: "UNINITIALIZED",
	StateRunning:       "RUNNING",
	StatePaused:        "PAUSED",
	StateExiting:       "EXITING",
}

// Valid indicates s is a known state.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// String implements Stringer.
func (s State) String() string { return enumName(stateNames[s], int(s)) }

// PowerState is on/off state of an LED or power rail.
type PowerState int

// Power states
const (
	PowerOff PowerState = 0
	PowerOn  PowerState = 1
)

// Valid indicates s is a known power state.
func (s PowerState) Valid() bool { return s == PowerOff || s == PowerOn }

// String implements Stringer.
func (s PowerState) String() string {
	switch s {
	case PowerOff:
		return "OFF"
	case PowerOn:
		return "ON"
	}
	return enumName("", int(s))
}

// LED identifies one of the user LEDs.
type LED int

// LEDs
const (
	LEDGreen LED = 0
	LEDRed   LED = 1
)

// Valid indicates l is a known LED.
func (l LED) Valid() bool { return l == LEDGreen || l == LEDRed }

// String implements Stringer.
func (l LED) String() string {
	switch l {
	case LEDGreen:
		return "GREEN"
	case LEDRed:
		return "RED"
	}
	return enumName("", int(l))
}

// Button identifies one of the user buttons.
type Button int

// Buttons
const (
	ButtonPause Button = 0
	ButtonMode  Button = 1
)

// Valid indicates b is a known button.
func (b Button) Valid() bool { return b == ButtonPause || b == ButtonMode }

// String implements Stringer.
func (b Button) String() string {
	switch b {
	case ButtonPause:
		return "PAUSE"
	case ButtonMode:
		return "MODE"
	}
	return enumName("", int(b))
}

// ButtonState is the pressed/released state of a button.
type ButtonState int

// Button states
const (
	ButtonReleased ButtonState = 0
	ButtonPressed  ButtonState = 1
)

// Valid indicates s is a known button state.
func (s ButtonState) Valid() bool { return s == ButtonReleased || s == ButtonPressed }

// String implements Stringer.
func (s ButtonState) String() string {
	switch s {
	case ButtonReleased:
		return "RELEASED"
	case ButtonPressed:
		return "PRESSED"
	}
	return enumName("", int(s))
}

// BMPOversample is the BMP280 oversample setting, values match the
// register encoding used by the native library.
type BMPOversample int

// Oversample settings, with the resulting update rate.
const (
	BMPOversample1  BMPOversample = 4  // 182 Hz
	BMPOversample2  BMPOversample = 8  // 133 Hz
	BMPOversample4  BMPOversample = 12 // 87 Hz
	BMPOversample8  BMPOversample = 16 // 51 Hz
	BMPOversample16 BMPOversample = 20 // 28 Hz
)

var oversampleNames = map[BMPOversample]string{
	BMPOversample1:  "BMP_OVERSAMPLE_1",
	BMPOversample2:  "BMP_OVERSAMPLE_2",
	BMPOversample4:  "BMP_OVERSAMPLE_4",
	BMPOversample8:  "BMP_OVERSAMPLE_8",
	BMPOversample16: "BMP_OVERSAMPLE_16",
}

// Valid indicates o is an accepted oversample setting.
func (o BMPOversample) Valid() bool {
	_, ok := oversampleNames[o]
	return ok
}

// String implements Stringer.
func (o BMPOversample) String() string { return enumName(oversampleNames[o], int(o)) }

// BMPFilter is the BMP280 IIR filter setting.
type BMPFilter int

// Filter settings
const (
	BMPFilterOff BMPFilter = 0
	BMPFilter2   BMPFilter = 4
	BMPFilter4   BMPFilter = 8
	BMPFilter8   BMPFilter = 12
	BMPFilter16  BMPFilter = 16
)

var filterNames = map[BMPFilter]string{
	BMPFilterOff: "BMP_FILTER_OFF",
	BMPFilter2:   "BMP_FILTER_2",
	BMPFilter4:   "BMP_FILTER_4",
	BMPFilter8:   "BMP_FILTER_8",
	BMPFilter16:  "BMP_FILTER_16",
}

// Valid indicates f is an accepted filter setting.
func (f BMPFilter) Valid() bool {
	_, ok := filterNames[f]
	return ok
}

// String implements Stringer.
func (f BMPFilter) String() string { return enumName(filterNames[f], int(f)) }

// CPUFreq is a CPU frequency setting.
type CPUFreq int

// CPU frequencies
const (
	FreqOnDemand CPUFreq = 0
	Freq300MHz   CPUFreq = 1
	Freq600MHz   CPUFreq = 2
	Freq800MHz   CPUFreq = 3
	Freq1000MHz  CPUFreq = 4
)

var cpuFreqNames = map[CPUFreq]string{
	FreqOnDemand: "FREQ_ONDEMAND",
	Freq300MHz:   "FREQ_300MHZ",
	Freq600MHz:   "FREQ_600MHZ",
	Freq800MHz:   "FREQ_800MHZ",
	Freq1000MHz:  "FREQ_1000MHZ",
}

// Valid indicates f is a known frequency setting.
func (f CPUFreq) Valid() bool {
	_, ok := cpuFreqNames[f]
	return ok
}

// String implements Stringer.
func (f CPUFreq) String() string { return enumName(cpuFreqNames[f], int(f)) }

// BBModel identifies the BeagleBone model.
type BBModel int

// Models
const (
	ModelUnknown  BBModel = 0
	ModelBlack    BBModel = 1
	ModelBlackRC  BBModel = 2
	ModelBlackW   BBModel = 3
	ModelBlackWRC BBModel = 4
	ModelGreen    BBModel = 5
	ModelGreenW   BBModel = 6
	ModelBlue     BBModel = 7
)

var modelNames = map[BBModel]string{
	ModelUnknown:  "UNKNOWN_MODEL",
	ModelBlack:    "BB_BLACK",
	ModelBlackRC:  "BB_BLACK_RC",
	ModelBlackW:   "BB_BLACK_W",
	ModelBlackWRC: "BB_BLACK_W_RC",
	ModelGreen:    "BB_GREEN",
	ModelGreenW:   "BB_GREEN_W",
	ModelBlue:     "BB_BLUE",
}

// Valid indicates m is a known model.
func (m BBModel) Valid() bool {
	_, ok := modelNames[m]
	return ok
}

// String implements Stringer.
func (m BBModel) String() string { return enumName(modelNames[m], int(m)) }

// ParseBBModel looks up a model by its name, e.g. "BB_BLUE".
func ParseBBModel(name string) (BBModel, bool) {
	for m, n := range modelNames {
		if n == name {
			return m, true
		}
	}
	return ModelUnknown, false
}

func enumName(name string, val int) string {
	if name != "" {
		return name
	}
	return "UNKNOWN(" + strconv.Itoa(val) + ")"
}
