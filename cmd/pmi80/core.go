package main

import (
	"github.com/koron-go/z80"

	"github.com/hexaflex/pmi80/devices"
	"github.com/hexaflex/pmi80/memory"
)

// stepCost approximates the cycle cost of a single instruction. The
// execution engine does not report T-states, so the scheduler budget
// is fed the board's average instruction cost instead.
const stepCost = 7

// core adapts the koron-go/z80 execution engine to the machine.Core
// contract. The PMI-80 carries an MHB 8080A; the monitor sticks to
// the 8080 subset, which the Z80 engine executes unchanged.
type core struct {
	cpu z80.CPU
	mem *memory.Memory
}

func newCore(mem *memory.Memory, bus *devices.Bus) *core {
	c := &core{mem: mem}
	c.cpu.Memory = mem
	c.cpu.IO = bus
	return c
}

// Step executes a single instruction and returns its cycle cost.
func (c *core) Step() int {
	c.cpu.Step()
	return stepCost
}

// Reset returns the CPU to its power-on state.
func (c *core) Reset() {
	c.cpu.States = z80.States{}
}

// SetPC forces the program counter to the given address.
func (c *core) SetPC(addr uint16) {
	c.cpu.PC = addr
}

// Interrupt raises a hardware interrupt: RST n semantics, the way the
// board's interrupt logic jams the vector onto the bus.
func (c *core) Interrupt(vector byte) {
	sp := c.cpu.SP - 2
	c.mem.SetU16(int(sp), int(c.cpu.PC))
	c.cpu.SP = sp
	c.cpu.PC = uint16(vector) * 8
}
