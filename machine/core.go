package machine

// Core is the CPU execution engine driving the bus. The instruction
// set lives outside this module; the peripherals only need these
// entry points. Memory and port access happen through bus callbacks
// the core is constructed with.
type Core interface {
	// Step executes a single instruction and returns its cycle cost.
	Step() int

	// Reset returns the CPU to its power-on state.
	Reset()

	// SetPC forces the program counter to the given address.
	SetPC(addr uint16)

	// Interrupt raises a hardware interrupt with the given RST
	// vector.
	Interrupt(vector byte)
}
