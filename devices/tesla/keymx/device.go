// Package keymx implements the PMI-80 keyboard matrix encoder.
//
// The keypad is a diode matrix scanned over the same nine strobe lines
// that drive the display cathodes. Each row register holds a whole
// byte: idle rows read 0x7F and a pressed key replaces the value with
// its column code. Only one key per row is represented at a time; when
// two keys on the same row are held, the last one wins. That is how
// the board is wired, not a defect.
package keymx

import (
	"sync"

	"github.com/hexaflex/pmi80/arch"
	"github.com/hexaflex/pmi80/devices"
)

const (
	// RowCount is the number of strobed key rows.
	RowCount = 9

	// Idle is the value of a row with no key asserted.
	Idle = 0x7F
)

// Device holds the row registers.
// Key events arrive from the input front end asynchronously with
// respect to the scheduler tick, hence the lock.
type Device struct {
	m    sync.Mutex
	rows [RowCount]byte
}

var _ devices.Device = &Device{}

// New creates a new keypad with all rows idle.
func New() *Device {
	var d Device
	d.reset()
	return &d
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Tesla, 0x0001)
}

// Startup resets all rows to their idle value.
func (d *Device) Startup() error {
	d.m.Lock()
	d.reset()
	d.m.Unlock()
	return nil
}

// Shutdown cleans up internal resources.
func (d *Device) Shutdown() error {
	return nil
}

// Press asserts the matrix position bound to the given key.
// Keys outside the matrix are ignored.
func (d *Device) Press(k arch.Key) {
	row, code, ok := arch.Binding(k)
	if !ok {
		return
	}

	d.m.Lock()
	d.rows[row] = code
	d.m.Unlock()
}

// Release returns the key's row to its idle value.
func (d *Device) Release(k arch.Key) {
	row, _, ok := arch.Binding(k)
	if !ok {
		return
	}

	d.m.Lock()
	d.rows[row] = Idle
	d.m.Unlock()
}

// Row returns the row register for the given cathode index.
// Indices beyond the matrix read as an idle row.
func (d *Device) Row(cathode int) byte {
	if cathode < 0 || cathode >= RowCount {
		return Idle
	}

	d.m.Lock()
	v := d.rows[cathode]
	d.m.Unlock()
	return v
}

func (d *Device) reset() {
	for i := range d.rows {
		d.rows[i] = Idle
	}
}
