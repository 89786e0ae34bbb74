// Package vv55 implements the optional MHB 8255A expansion port.
//
// Only mode 0 is modeled: two 8-bit ports, A and B, each switched as a
// whole between input and output by a control word. The physical chip
// sits on an expansion header and may be absent; presence is probed
// once at startup and cached. An absent chip reads 0xFF and drops
// writes, so programs written for a bare board run unmodified.
package vv55

import (
	"log"

	"github.com/hexaflex/pmi80/devices"
)

// Port selects one of the two data ports.
type Port int

// Known ports.
const (
	PortA Port = iota
	PortB
)

// Direction of a whole 8-bit port.
type Direction int

// Known directions.
const (
	Output Direction = iota
	Input
)

// Mode 0 control word bits.
const (
	ctlActive = 0x80 // Control word is honored only with this bit set.
	ctlAInput = 0x10 // Port A direction: set = input.
	ctlBInput = 0x02 // Port B direction: set = input.
)

// Expander is the physical chip behind the expansion header.
type Expander interface {
	// ReadPort returns the live input latch for the given port.
	ReadPort(p Port) (byte, error)

	// WritePort sets the output latch for the given port.
	WritePort(p Port, v byte) error

	// SetDirection switches both ports at once.
	SetDirection(a, b Direction) error
}

// ProbeFunc detects the physical expander.
// It returns an error when no chip is present.
type ProbeFunc func() (Expander, error)

// Device defines the expansion port.
type Device struct {
	probe ProbeFunc
	chip  Expander // nil while absent.
}

var _ devices.Device = &Device{}

// New creates an expansion port probing for its chip with probe.
// A nil probe means no expansion header is fitted.
func New(probe ProbeFunc) *Device {
	return &Device{probe: probe}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Tesla, 0x0004)
}

// Startup probes for the physical chip. Absence is not an error; the
// device degrades to floating reads and dropped writes.
func (d *Device) Startup() error {
	d.chip = nil

	if d.probe == nil {
		log.Println(d.ID(), "expansion port not fitted")
		return nil
	}

	chip, err := d.probe()
	if err != nil {
		log.Println(d.ID(), "expander not present:", err)
		return nil
	}

	d.chip = chip
	log.Println(d.ID(), "expander present")
	return nil
}

// Shutdown cleans up internal resources.
func (d *Device) Shutdown() error {
	d.chip = nil
	return nil
}

// Present reports whether the physical expander was detected.
func (d *Device) Present() bool {
	return d.chip != nil
}

// Read returns the given port's input latch, or the floating bus value
// when the chip is absent or failing.
func (d *Device) Read(p Port) byte {
	if d.chip == nil {
		return devices.Floating
	}

	v, err := d.chip.ReadPort(p)
	if err != nil {
		log.Println(d.ID(), "read:", err)
		return devices.Floating
	}
	return v
}

// Write sets the given port's output latch. Dropped when absent.
func (d *Device) Write(p Port, v byte) {
	if d.chip == nil {
		return
	}

	if err := d.chip.WritePort(p, v); err != nil {
		log.Println(d.ID(), "write:", err)
	}
}

// Control applies a mode 0 control word. Words without the active bit
// are ignored, as are all words while the chip is absent.
func (d *Device) Control(word byte) {
	if d.chip == nil || word&ctlActive == 0 {
		return
	}

	a, b := Output, Output
	if word&ctlAInput != 0 {
		a = Input
	}
	if word&ctlBInput != 0 {
		b = Input
	}

	if err := d.chip.SetDirection(a, b); err != nil {
		log.Println(d.ID(), "control:", err)
	}
}
