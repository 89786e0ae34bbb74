package arch

// Address space dimensions.
const (
	ROMSize   = 0x0400           // Monitor ROM, shadowing the bottom of the map.
	RAMWindow = 0x2000           // RAM window size. Must be a power of two.
	RAMMask   = RAMWindow - 1    // Address mask folding the map into the window.
)

// RAM cells reserved by the monitor for cassette transfers.
const (
	CellTapeLength = 0x1FF8 // One's-complement encoded length minus one.
	CellTapeStart  = 0x1FF9 // High byte of the transfer start address.
	CellTapeBlock  = 0x1FFA // Block id, used verbatim in the block name.
)

// Monitor entry points. These addresses are baked into the monitor ROM
// image; the cassette trigger resumes execution at one of them instead
// of reporting a status byte on the bus.
const (
	VectorTapeDone  = 0x0136 // Cassette transfer completed.
	VectorTapeError = 0x013C // Cassette transfer failed.
)

// VectorInterrupt is the RST vector raised by the I key.
const VectorInterrupt = 7
