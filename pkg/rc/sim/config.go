package sim

import (
	"flag"
	"os"
	"strconv"

	"github.com/robotalks/roboticscape.go/pkg/rc"
)

// Config defines the initial state of a simulated cape.
type Config struct {
	Model          string
	BatteryVoltage float64
	DCJackVoltage  float64
	I2CBuses       []int
}

// Defaults
const (
	DefaultModel          = "BB_BLUE"
	DefaultBatteryVoltage = 7.4
	DefaultDCJackVoltage  = 12.0
)

var defaultConfig = Config{
	Model:          DefaultModel,
	BatteryVoltage: DefaultBatteryVoltage,
	DCJackVoltage:  DefaultDCJackVoltage,
	I2CBuses:       []int{1, 2},
}

func init() {
	if val := os.Getenv("RC_SIM_MODEL"); val != "" {
		defaultConfig.Model = val
	}
	if val := os.Getenv("RC_SIM_BATTERY"); val != "" {
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			defaultConfig.BatteryVoltage = v
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Model, "sim-model", defaultConfig.Model, "Simulated BeagleBone model, e.g. BB_BLUE.")
	flag.Float64Var(&defaultConfig.BatteryVoltage, "sim-battery", defaultConfig.BatteryVoltage, "Simulated LiPo battery voltage (V).")
	flag.Float64Var(&defaultConfig.DCJackVoltage, "sim-jack", defaultConfig.DCJackVoltage, "Simulated DC jack voltage (V).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	conf.I2CBuses = append([]int(nil), defaultConfig.I2CBuses...)
	return &conf
}

// NewLibrary creates a simulated library from the config. Each configured
// I2C bus gets an empty RegisterBus.
func (c *Config) NewLibrary() *Library {
	l := New()
	model, ok := rc.ParseBBModel(c.Model)
	if !ok {
		model = rc.ModelUnknown
	}
	l.Update(func(s *State) {
		s.Model = model
		s.BatteryVoltage = float32(c.BatteryVoltage)
		s.DCJackVoltage = float32(c.DCJackVoltage)
	})
	for _, n := range c.I2CBuses {
		l.AttachI2C(n, NewRegisterBus("i2c-"+strconv.Itoa(n)))
	}
	return l
}
