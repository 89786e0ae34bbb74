package devices

// Memory defines the system address space as seen by peripherals.
type Memory interface {
	// U8 defines an unsigned 8-bit value at the given address.
	// Reads below the ROM size return monitor ROM; writes always
	// target the RAM window.
	U8(addr int) int
	SetU8(addr, value int)

	// U16 defines an unsigned 16-bit value at the given address,
	// little endian.
	U16(addr int) int
	SetU16(addr, value int)

	// Read reads len(p) bytes from the RAM window into p, starting at
	// the given address.
	Read(address int, p []byte)

	// Write writes len(p) bytes from p into the RAM window, starting
	// at the given address.
	Write(address int, p []byte)
}
