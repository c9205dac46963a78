package sim

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// i2cBus is the per-bus state kept by the library on top of the attached
// periph bus.
type i2cBus struct {
	bus   i2c.Bus
	open  bool
	addr  uint16
	inUse bool
}

// AttachI2C connects bus as the I2C bus numbered n. Any periph i2c.Bus
// works, e.g. a RegisterBus or an i2ctest.Playback.
func (l *Library) AttachI2C(n int, bus i2c.Bus) {
	l.lock.Lock()
	l.buses[n] = &i2cBus{bus: bus}
	l.lock.Unlock()
}

// openBus must be called with lock held.
func (l *Library) openBus(n int) *i2cBus {
	if b := l.buses[n]; b != nil && b.open {
		return b
	}
	return nil
}

// tx must be called with lock held.
func (l *Library) tx(n int, w, r []byte) error {
	b := l.openBus(n)
	if b == nil {
		return fmt.Errorf("i2c bus %d not initialized", n)
	}
	dev := &i2c.Dev{Bus: b.bus, Addr: b.addr}
	return dev.Tx(w, r)
}

// I2CInit implements rc.Library.
func (l *Library) I2CInit(bus int, devAddr uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_init", bus, devAddr)
	b := l.buses[bus]
	if b == nil {
		return l.status("rc_i2c_init", -1)
	}
	b.open, b.addr = true, uint16(devAddr)
	return l.status("rc_i2c_init", 0)
}

// I2CClose implements rc.Library.
func (l *Library) I2CClose(bus int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_close", bus)
	b := l.buses[bus]
	if b == nil {
		return l.status("rc_i2c_close", -1)
	}
	b.open, b.inUse = false, false
	return l.status("rc_i2c_close", 0)
}

// I2CSetDeviceAddress implements rc.Library.
func (l *Library) I2CSetDeviceAddress(bus int, devAddr uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_set_device_address", bus, devAddr)
	b := l.openBus(bus)
	if b == nil {
		return l.status("rc_i2c_set_device_address", -1)
	}
	b.addr = uint16(devAddr)
	return l.status("rc_i2c_set_device_address", 0)
}

// I2CClaimBus implements rc.Library.
func (l *Library) I2CClaimBus(bus int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_claim_bus", bus)
	b := l.buses[bus]
	if b == nil {
		return l.status("rc_i2c_claim_bus", -1)
	}
	b.inUse = true
	return l.status("rc_i2c_claim_bus", 0)
}

// I2CReleaseBus implements rc.Library.
func (l *Library) I2CReleaseBus(bus int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_release_bus", bus)
	b := l.buses[bus]
	if b == nil {
		return l.status("rc_i2c_release_bus", -1)
	}
	b.inUse = false
	return l.status("rc_i2c_release_bus", 0)
}

// I2CGetInUseState implements rc.Library.
func (l *Library) I2CGetInUseState(bus int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_get_in_use_state", bus)
	b := l.buses[bus]
	if b == nil {
		return -1
	}
	return boolInt(b.inUse)
}

// I2CReadByte implements rc.Library.
func (l *Library) I2CReadByte(bus int, regAddr uint8) (uint8, int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_read_byte", bus, regAddr)
	var r [1]byte
	if err := l.tx(bus, []byte{regAddr}, r[:]); err != nil {
		return 0, l.status("rc_i2c_read_byte", -1)
	}
	return r[0], l.status("rc_i2c_read_byte", 0)
}

// I2CReadBytes implements rc.Library, the status is the number of bytes read.
func (l *Library) I2CReadBytes(bus int, regAddr uint8, count uint8) ([]uint8, int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_read_bytes", bus, regAddr, count)
	r := make([]byte, count)
	if err := l.tx(bus, []byte{regAddr}, r); err != nil {
		return nil, l.status("rc_i2c_read_bytes", -1)
	}
	return r, l.status("rc_i2c_read_bytes", int(count))
}

// I2CReadWord implements rc.Library. Words are big endian on the wire.
func (l *Library) I2CReadWord(bus int, regAddr uint8) (uint16, int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_read_word", bus, regAddr)
	var r [2]byte
	if err := l.tx(bus, []byte{regAddr}, r[:]); err != nil {
		return 0, l.status("rc_i2c_read_word", -1)
	}
	return uint16(r[0])<<8 | uint16(r[1]), l.status("rc_i2c_read_word", 0)
}

// I2CReadWords implements rc.Library, the status is the number of words read.
func (l *Library) I2CReadWords(bus int, regAddr uint8, count uint8) ([]uint16, int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_read_words", bus, regAddr, count)
	r := make([]byte, int(count)*2)
	if err := l.tx(bus, []byte{regAddr}, r); err != nil {
		return nil, l.status("rc_i2c_read_words", -1)
	}
	words := make([]uint16, count)
	for i := range words {
		words[i] = uint16(r[i*2])<<8 | uint16(r[i*2+1])
	}
	return words, l.status("rc_i2c_read_words", int(count))
}

// I2CReadBit implements rc.Library.
func (l *Library) I2CReadBit(bus int, regAddr, bitNum uint8) (uint8, int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_read_bit", bus, regAddr, bitNum)
	if bitNum > 7 {
		return 0, l.status("rc_i2c_read_bit", -1)
	}
	var r [1]byte
	if err := l.tx(bus, []byte{regAddr}, r[:]); err != nil {
		return 0, l.status("rc_i2c_read_bit", -1)
	}
	return (r[0] >> bitNum) & 1, l.status("rc_i2c_read_bit", 0)
}

// I2CWriteByte implements rc.Library.
func (l *Library) I2CWriteByte(bus int, regAddr, data uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_write_byte", bus, regAddr, data)
	return l.txStatus("rc_i2c_write_byte", bus, []byte{regAddr, data})
}

// I2CWriteBytes implements rc.Library.
func (l *Library) I2CWriteBytes(bus int, regAddr uint8, data []uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_write_bytes", bus, regAddr, append([]uint8(nil), data...))
	return l.txStatus("rc_i2c_write_bytes", bus, append([]byte{regAddr}, data...))
}

// I2CWriteWord implements rc.Library.
func (l *Library) I2CWriteWord(bus int, regAddr uint8, data uint16) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_write_word", bus, regAddr, data)
	return l.txStatus("rc_i2c_write_word", bus, []byte{regAddr, byte(data >> 8), byte(data)})
}

// I2CWriteWords implements rc.Library.
func (l *Library) I2CWriteWords(bus int, regAddr uint8, data []uint16) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_write_words", bus, regAddr, append([]uint16(nil), data...))
	w := make([]byte, 1, 1+len(data)*2)
	w[0] = regAddr
	for _, v := range data {
		w = append(w, byte(v>>8), byte(v))
	}
	return l.txStatus("rc_i2c_write_words", bus, w)
}

// I2CWriteBit implements rc.Library by read-modify-write of the register.
func (l *Library) I2CWriteBit(bus int, regAddr, bitNum, data uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_write_bit", bus, regAddr, bitNum, data)
	if bitNum > 7 {
		return l.status("rc_i2c_write_bit", -1)
	}
	var r [1]byte
	if err := l.tx(bus, []byte{regAddr}, r[:]); err != nil {
		return l.status("rc_i2c_write_bit", -1)
	}
	val := r[0] &^ (1 << bitNum)
	if data != 0 {
		val |= 1 << bitNum
	}
	return l.txStatus("rc_i2c_write_bit", bus, []byte{regAddr, val})
}

// I2CSendByte implements rc.Library.
func (l *Library) I2CSendByte(bus int, data uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_send_byte", bus, data)
	return l.txStatus("rc_i2c_send_byte", bus, []byte{data})
}

// I2CSendBytes implements rc.Library.
func (l *Library) I2CSendBytes(bus int, data []uint8) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.record("rc_i2c_send_bytes", bus, append([]uint8(nil), data...))
	return l.txStatus("rc_i2c_send_bytes", bus, append([]byte(nil), data...))
}

// txStatus must be called with lock held.
func (l *Library) txStatus(fn string, bus int, w []byte) int {
	if err := l.tx(bus, w, nil); err != nil {
		return l.status(fn, -1)
	}
	return l.status(fn, 0)
}

// ErrNoDevice is returned by RegisterBus for an address without a device.
var ErrNoDevice = errors.New("no device at address")

// RegisterBus is an i2c.Bus of register-file devices. The first written byte
// of a transaction selects the register, following written bytes are stored
// from there and reads continue from the register after the writes, both
// auto-incrementing.
type RegisterBus struct {
	name  string
	speed physic.Frequency
	devs  map[uint16]*registerFile
	lock  sync.Mutex
}

type registerFile struct {
	regs [256]byte
	ptr  uint8
}

var _ i2c.Bus = (*RegisterBus)(nil)

// NewRegisterBus creates an empty bus.
func NewRegisterBus(name string) *RegisterBus {
	return &RegisterBus{name: name, devs: make(map[uint16]*registerFile)}
}

// String implements i2c.Bus.
func (b *RegisterBus) String() string {
	return b.name
}

// SetSpeed implements i2c.Bus.
func (b *RegisterBus) SetSpeed(f physic.Frequency) error {
	b.lock.Lock()
	b.speed = f
	b.lock.Unlock()
	return nil
}

// Speed returns the last speed set.
func (b *RegisterBus) Speed() physic.Frequency {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.speed
}

// Tx implements i2c.Bus.
func (b *RegisterBus) Tx(addr uint16, w, r []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	dev := b.devs[addr]
	if dev == nil {
		return fmt.Errorf("%s: %w 0x%02x", b.name, ErrNoDevice, addr)
	}
	if len(w) > 0 {
		dev.ptr = w[0]
		for _, v := range w[1:] {
			dev.regs[dev.ptr] = v
			dev.ptr++
		}
	}
	for i := range r {
		r[i] = dev.regs[dev.ptr]
		dev.ptr++
	}
	return nil
}

// AddDevice puts a device with zeroed registers at addr.
func (b *RegisterBus) AddDevice(addr uint16) {
	b.lock.Lock()
	if b.devs[addr] == nil {
		b.devs[addr] = &registerFile{}
	}
	b.lock.Unlock()
}

// SetRegisters stores data from register reg of the device at addr, the
// device is added if missing.
func (b *RegisterBus) SetRegisters(addr uint16, reg uint8, data ...byte) {
	b.lock.Lock()
	defer b.lock.Unlock()
	dev := b.devs[addr]
	if dev == nil {
		dev = &registerFile{}
		b.devs[addr] = dev
	}
	for _, v := range data {
		dev.regs[reg] = v
		reg++
	}
}

// Registers returns n registers starting from reg of the device at addr,
// nil if there's no such device.
func (b *RegisterBus) Registers(addr uint16, reg uint8, n int) []byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	dev := b.devs[addr]
	if dev == nil {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = dev.regs[reg]
		reg++
	}
	return out
}
