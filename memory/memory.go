// Package memory implements the PMI-80 address space: a fixed monitor
// ROM shadowing the bottom of a small, power-of-two RAM window.
package memory

import "github.com/hexaflex/pmi80/arch"

// Memory models the 16-bit address space. Reads below the ROM size hit
// the monitor image; everything else folds into the RAM window. Writes
// always land in RAM, including writes below the ROM size. The RAM
// underneath the ROM shadow is therefore mutable but only readable
// through aliased addresses, which is how the board behaves.
type Memory struct {
	rom [arch.ROMSize]byte
	ram [arch.RAMWindow]byte
}

// New creates an address space holding the given monitor image.
// A short image leaves the remainder of the ROM zeroed; a long one is
// truncated to the ROM size.
func New(rom []byte) *Memory {
	var m Memory
	copy(m.rom[:], rom)
	return &m
}

// Get returns the byte at the given address.
// Satisfies z80.Memory.
func (m *Memory) Get(addr uint16) uint8 {
	return uint8(m.U8(int(addr)))
}

// Set stores the byte at the given address.
// Satisfies z80.Memory.
func (m *Memory) Set(addr uint16, v uint8) {
	m.SetU8(int(addr), int(v))
}

// U8 returns the unsigned 8-bit value at the given address.
func (m *Memory) U8(addr int) int {
	addr &= 0xffff
	if addr < arch.ROMSize {
		return int(m.rom[addr])
	}
	return int(m.ram[addr&arch.RAMMask])
}

// SetU8 sets the unsigned 8-bit value at the given address.
// The ROM is never written; the store targets the masked RAM window.
func (m *Memory) SetU8(addr, value int) {
	m.ram[addr&arch.RAMMask] = byte(value)
}

// U16 returns the unsigned 16-bit value at the given address,
// little endian. The high byte wraps at the end of the address space.
func (m *Memory) U16(addr int) int {
	return m.U8(addr) | m.U8(addr+1)<<8
}

// SetU16 sets the unsigned 16-bit value at the given address,
// little endian.
func (m *Memory) SetU16(addr, value int) {
	m.SetU8(addr, value)
	m.SetU8(addr+1, value>>8)
}

// Read reads len(p) bytes from the RAM window into p, starting at the
// given address. Addresses are masked into the window per byte.
func (m *Memory) Read(address int, p []byte) {
	for i := range p {
		p[i] = m.ram[(address+i)&arch.RAMMask]
	}
}

// Write writes len(p) bytes from p into the RAM window, starting at
// the given address. Addresses are masked into the window per byte.
func (m *Memory) Write(address int, p []byte) {
	for i := range p {
		m.ram[(address+i)&arch.RAMMask] = p[i]
	}
}
