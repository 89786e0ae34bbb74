// Package arch defines the hardware constants of the PMI-80 board:
// I/O port assignments, the monitor ROM contract and the keyboard
// matrix layout.
package arch

// I/O port assignments. The board decodes only these addresses; every
// other port floats high on reads and swallows writes.
const (
	PortExpansionA   = 0xF4 // Expansion port A data (read/write).
	PortExpansionB   = 0xF5 // Expansion port B data (read/write).
	PortExpansionCtl = 0xF7 // Expansion direction control word (write).
	PortDisplay      = 0xF8 // Segment pattern for the selected cathode (write).
	PortKeyRow       = 0xFA // Key row at the selected cathode (read).
	PortCathode      = 0xFA // Cathode select (write).
	PortTapeSave     = 0x5A // Cassette save trigger (write).
	PortTapeLoad     = 0xAD // Cassette load trigger (write).
)

// CathodeIndex decodes a write to PortCathode into a cathode index.
// The monitor drives the strobe lines inverted.
func CathodeIndex(v byte) int {
	return int(^v & 0x0F)
}
