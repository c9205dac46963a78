package binding

import (
	"fmt"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

type enumType interface {
	Valid() bool
	String() string
}

// enum labels valid enum members, other values are returned unlabeled.
func enum(e enumType, v int64) Value {
	if e.Valid() {
		return Enum(v, e.String())
	}
	return Int(v)
}

func enumOf(fn func(rc.Library, args) (enumType, int64)) forwarder {
	return func(lib rc.Library, a args) (Value, error) {
		return enum(fn(lib, a)), nil
	}
}

func checkEnum(what string, valid func(int64) bool) func(Value) error {
	return func(v Value) error {
		if !valid(v.Int) {
			return fmt.Errorf("%s value %d not allowed", what, v.Int)
		}
		return nil
	}
}

func checkRange(what string, min, max int64) func(Value) error {
	return func(v Value) error {
		if v.Int < min || v.Int > max {
			return fmt.Errorf("%s %d out of range %d-%d", what, v.Int, min, max)
		}
		return nil
	}
}

func getLED(led rc.LED) forwarder {
	return enumOf(func(lib rc.Library, a args) (enumType, int64) {
		s := lib.GetLED(led)
		return rc.PowerState(s), int64(s)
	})
}

func setLED(led rc.LED, state rc.PowerState) forwarder {
	return statusOf("rc_set_led", func(lib rc.Library, a args) int { return lib.SetLED(led, int(state)) })
}

func getButton(button rc.Button) forwarder {
	return enumOf(func(lib rc.Library, a args) (enumType, int64) {
		s := lib.GetButton(button)
		return s, int64(s)
	})
}

var (
	defaultOversample = Int(int64(rc.BMPOversample1))
	defaultFilter     = Int(int64(rc.BMPFilterOff))
)

// helperMethods are the high level methods composed of one raw call, enum
// results carry the member name.
var helperMethods = []*Method{
	method("rcGetStateAsEnum", "Get the current robot state as State enum.",
		enumOf(func(lib rc.Library, a args) (enumType, int64) {
			s := lib.GetState()
			return s, int64(s)
		})).preInit(),
	method("rcGetGreenLED", "Get state of green LED as PowerState enum.", getLED(rc.LEDGreen)),
	method("rcGetRedLED", "Get state of red LED as PowerState enum.", getLED(rc.LEDRed)),
	method("rcSetGreenLEDOn", "Turn green LED on.", setLED(rc.LEDGreen, rc.PowerOn)),
	method("rcSetGreenLEDOff", "Turn green LED off.", setLED(rc.LEDGreen, rc.PowerOff)),
	method("rcSetRedLEDOn", "Turn red LED on.", setLED(rc.LEDRed, rc.PowerOn)),
	method("rcSetRedLEDOff", "Turn red LED off.", setLED(rc.LEDRed, rc.PowerOff)),
	method("rcGetModeButton", "Get state of mode button as ButtonState enum.", getButton(rc.ButtonMode)),
	method("rcGetPauseButton", "Get state of pause button as ButtonState enum.", getButton(rc.ButtonPause)),
	method("rcInitializeBarometer", "Initialize and power on barometer, oversample and filter must be BMPOversample and BMPFilter values.",
		statusOf("rc_initialize_barometer", func(lib rc.Library, a args) int {
			return lib.InitializeBarometer(rc.BMPOversample(a.Int(0)), rc.BMPFilter(a.Int(1)))
		}),
		Arg{
			Name: "oversample", Kind: ArgInt, Default: &defaultOversample,
			Check: checkEnum("oversample", func(v int64) bool { return rc.BMPOversample(v).Valid() }),
		},
		Arg{
			Name: "filter", Kind: ArgInt, Default: &defaultFilter,
			Check: checkEnum("filter", func(v int64) bool { return rc.BMPFilter(v).Valid() }),
		}),
	method("rcSetCPUFreqEnum", "Set the CPU frequency using a CPUFreq enum value.",
		statusOf("rc_set_cpu_freq", func(lib rc.Library, a args) int { return lib.SetCPUFreq(rc.CPUFreq(a.Int(0))) }),
		Arg{
			Name: "frequency", Kind: ArgInt,
			Check: checkEnum("frequency", func(v int64) bool { return rc.CPUFreq(v).Valid() }),
		}),
	method("rcGetCPUFreqEnum", "Get the current CPU frequency setting as CPUFreq enum.",
		enumOf(func(lib rc.Library, a args) (enumType, int64) {
			f := lib.GetCPUFreq()
			return f, int64(f)
		})),
	method("rcGetBBModelEnum", "Get the BeagleBone model as BBModel enum.",
		enumOf(func(lib rc.Library, a args) (enumType, int64) {
			m := lib.GetBBModel()
			return m, int64(m)
		})).preInit(),
}
