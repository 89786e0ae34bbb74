// Package segled implements the nine digit seven segment display.
//
// The monitor multiplexes the digits far faster than any digit's
// intended on-time. Instead of forcing the front end to repaint at
// multiplex rates, each digit carries an afterglow counter: a write
// rearms it, the scheduler tick ages it, and a digit goes dark only
// when the counter runs out. Segment state is pushed to the front end
// only when a digit's pattern actually changes.
package segled

import "github.com/hexaflex/pmi80/devices"

const (
	// DigitCount is the number of display positions.
	DigitCount = 9

	// SegmentCount is the number of segments per digit.
	SegmentCount = 7

	// Afterglow is the number of scheduler ticks a digit stays lit
	// after its last refresh.
	Afterglow = 50

	// Blank is the pattern selecting no segments. The bus encoding is
	// inverted: a low bit means the segment is lit.
	Blank = 0x7F
)

// SegmentFunc receives segment state changes for the rendering front
// end. Segments are numbered 0 (a) through 6 (g).
type SegmentFunc func(digit, segment int, on bool)

type digit struct {
	pattern byte // Last pattern pushed to the front end.
	decay   int  // Ticks remaining before auto blank.
}

// Device holds the digit states.
type Device struct {
	paint  SegmentFunc
	digits [DigitCount]digit
}

var _ devices.Device = &Device{}

// New creates a new display pushing segment changes to paint.
func New(paint SegmentFunc) *Device {
	if paint == nil {
		paint = func(int, int, bool) { /* nop */ }
	}

	d := &Device{paint: paint}
	for i := range d.digits {
		d.digits[i].pattern = Blank
	}
	return d
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Tesla, 0x0002)
}

// Startup forces every digit dark.
func (d *Device) Startup() error {
	for i := range d.digits {
		d.Clear(i)
	}
	return nil
}

// Shutdown cleans up internal resources.
func (d *Device) Shutdown() error {
	return nil
}

// Set writes a bus pattern to the given cathode. A blank pattern is a
// no-op: digits go dark through afterglow decay only, which keeps the
// multiplexed refresh from flickering. A non-blank pattern rearms the
// digit's afterglow and repaints its segments if the pattern differs
// from the last one pushed.
func (d *Device) Set(cathode int, value byte) {
	if cathode < 0 || cathode >= DigitCount {
		return
	}

	v := value & Blank
	if v == Blank {
		return
	}

	dig := &d.digits[cathode]
	dig.decay = Afterglow

	if v == dig.pattern {
		return
	}

	dig.pattern = v
	for s := 0; s < SegmentCount; s++ {
		d.paint(cathode, s, v&(1<<uint(s)) == 0)
	}
}

// Tick ages the afterglow counters. A digit whose counter runs out is
// blanked and its last-seen pattern reset, so that a later write of
// the same pattern repaints correctly.
func (d *Device) Tick() {
	for i := range d.digits {
		dig := &d.digits[i]
		if dig.decay == 0 {
			continue
		}
		if dig.decay--; dig.decay == 0 {
			d.blank(i)
		}
	}
}

// Clear forces the given digit dark immediately. Used at startup.
func (d *Device) Clear(cathode int) {
	if cathode < 0 || cathode >= DigitCount {
		return
	}
	d.digits[cathode].decay = 0
	d.blank(cathode)
}

func (d *Device) blank(i int) {
	for s := 0; s < SegmentCount; s++ {
		d.paint(i, s, false)
	}
	d.digits[i].pattern = Blank
}
