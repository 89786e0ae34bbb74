package devices

// Floating is the value an undriven port reads as.
const Floating = 0xFF

// ReadFunc handles a CPU read from an I/O port.
type ReadFunc func() byte

// WriteFunc handles a CPU write to an I/O port.
type WriteFunc func(byte)

// Bus dispatches 8-bit port addresses to peripheral handlers.
// Read and write handlers are independent: a port may be mapped in one
// direction only. Unmapped ports read as Floating and ignore writes.
type Bus struct {
	in  [256]ReadFunc
	out [256]WriteFunc
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// MapIn installs a read handler for the given port.
// Returns false if the port already has one.
func (b *Bus) MapIn(port byte, f ReadFunc) bool {
	if b.in[port] != nil {
		return false
	}
	b.in[port] = f
	return true
}

// MapOut installs a write handler for the given port.
// Returns false if the port already has one.
func (b *Bus) MapOut(port byte, f WriteFunc) bool {
	if b.out[port] != nil {
		return false
	}
	b.out[port] = f
	return true
}

// In performs a CPU read from the given port.
// Satisfies z80.IO.
func (b *Bus) In(port byte) byte {
	if f := b.in[port]; f != nil {
		return f()
	}
	return Floating
}

// Out performs a CPU write to the given port.
// Satisfies z80.IO.
func (b *Bus) Out(port byte, value byte) {
	if f := b.out[port]; f != nil {
		f(value)
	}
}
