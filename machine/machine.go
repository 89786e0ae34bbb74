// Package machine assembles the PMI-80 peripheral set around an
// external CPU core: address space, port bus, keypad, display,
// cassette recorder and expansion port, plus the scheduler that drives
// them in real time.
package machine

import (
	"log"
	"sync"

	"github.com/hexaflex/pmi80/arch"
	"github.com/hexaflex/pmi80/devices"
	"github.com/hexaflex/pmi80/devices/tesla/keymx"
	"github.com/hexaflex/pmi80/devices/tesla/mgf"
	"github.com/hexaflex/pmi80/devices/tesla/segled"
	"github.com/hexaflex/pmi80/devices/tesla/vv55"
	"github.com/hexaflex/pmi80/memory"
)

// Command identifies a direct keypad command. These keys bypass the
// matrix and act on the CPU core or the run state directly.
type Command int

// Known commands.
const (
	CmdReset Command = iota
	CmdInterrupt
	CmdToggleRun
)

// Config carries the collaborators the board is built around.
type Config struct {
	ROM   []byte             // Monitor ROM image.
	Paint segled.SegmentFunc // Segment sink for the rendering front end.
	Store mgf.Store          // Tape storage; nil mounts no tape.
	Probe vv55.ProbeFunc     // Expansion chip probe; nil means not fitted.
}

// Machine owns all peripheral state. One lock serializes ticks against
// direct commands; key matrix events have their own lock inside the
// keypad and need none here.
type Machine struct {
	mu        sync.Mutex
	mem       *memory.Memory
	bus       *devices.Bus
	keypad    *keymx.Device
	display   *segled.Device
	tape      *mgf.Device
	expansion *vv55.Device
	devs      devices.Map
	core      Core
	sched     *Scheduler
	cathode   int
}

// New builds the board and wires the port map. The CPU core is
// attached separately, since it is constructed against the memory and
// bus this call creates.
func New(config Config) *Machine {
	m := &Machine{
		mem: memory.New(config.ROM),
		bus: devices.NewBus(),
	}

	m.keypad = keymx.New()
	m.display = segled.New(config.Paint)
	m.tape = mgf.New(config.Store, m.mem)
	m.expansion = vv55.New(config.Probe)

	m.devs.Connect(m.keypad)
	m.devs.Connect(m.display)
	m.devs.Connect(m.tape)
	m.devs.Connect(m.expansion)

	m.wire()
	return m
}

// wire installs the board's port decoding. The cathode select strobes
// the display and the keypad over the same lines.
func (m *Machine) wire() {
	b := m.bus

	b.MapIn(arch.PortExpansionA, func() byte { return m.expansion.Read(vv55.PortA) })
	b.MapOut(arch.PortExpansionA, func(v byte) { m.expansion.Write(vv55.PortA, v) })
	b.MapIn(arch.PortExpansionB, func() byte { return m.expansion.Read(vv55.PortB) })
	b.MapOut(arch.PortExpansionB, func(v byte) { m.expansion.Write(vv55.PortB, v) })
	b.MapOut(arch.PortExpansionCtl, func(v byte) { m.expansion.Control(v) })

	b.MapOut(arch.PortDisplay, func(v byte) { m.display.Set(m.cathode, v) })
	b.MapIn(arch.PortKeyRow, func() byte { return m.keypad.Row(m.cathode) })
	b.MapOut(arch.PortCathode, func(v byte) { m.cathode = arch.CathodeIndex(v) })

	b.MapOut(arch.PortTapeSave, func(byte) { m.tapeSave() })
	b.MapOut(arch.PortTapeLoad, func(byte) { m.tapeLoad() })
}

// Attach connects the CPU core and creates the scheduler around it.
func (m *Machine) Attach(core Core) {
	m.core = core
	m.sched = NewScheduler(core, m.display)
}

// Startup initializes all peripherals and resets the core.
func (m *Machine) Startup() error {
	if err := m.devs.Startup(); err != nil {
		return err
	}
	if m.core != nil {
		m.core.Reset()
	}
	return nil
}

// Shutdown cleans up all peripherals.
func (m *Machine) Shutdown() error {
	return m.devs.Shutdown()
}

// Memory returns the board's address space.
func (m *Machine) Memory() *memory.Memory {
	return m.mem
}

// Bus returns the board's I/O port bus.
func (m *Machine) Bus() *devices.Bus {
	return m.bus
}

// Tape returns the cassette recorder.
func (m *Machine) Tape() *mgf.Device {
	return m.tape
}

// Expansion returns the expansion port.
func (m *Machine) Expansion() *vv55.Device {
	return m.expansion
}

// Running reports whether the CPU is running.
func (m *Machine) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sched != nil && m.sched.Running()
}

// Cycles returns the total cycle cost executed so far.
func (m *Machine) Cycles() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched == nil {
		return 0
	}
	return m.sched.Cycles()
}

// Tick runs one 1 ms scheduling quantum.
func (m *Machine) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched != nil {
		m.sched.Tick()
	}
}

// Press asserts a matrix key.
func (m *Machine) Press(k arch.Key) {
	m.keypad.Press(k)
}

// Release releases a matrix key.
func (m *Machine) Release(k arch.Key) {
	m.keypad.Release(k)
}

// Command executes a direct keypad command. Reset and interrupt do not
// change the run state.
func (m *Machine) Command(c Command) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch c {
	case CmdReset:
		if m.core != nil {
			m.core.Reset()
		}
	case CmdInterrupt:
		if m.core != nil {
			m.core.Interrupt(arch.VectorInterrupt)
		}
	case CmdToggleRun:
		if m.sched != nil {
			m.sched.Toggle()
		}
	}
}

// tapeSave handles the save trigger port. The transfer parameters live
// in the reserved RAM cells; the outcome is signalled by redirecting
// the monitor, not by a status byte.
func (m *Machine) tapeSave() {
	length := (^m.mem.U8(arch.CellTapeLength) & 0xFF) + 1
	m.vector(m.tape.Save(m.mem.U8(arch.CellTapeBlock), m.transferStart(), length))
}

// tapeLoad handles the load trigger port.
func (m *Machine) tapeLoad() {
	_, err := m.tape.Load(m.mem.U8(arch.CellTapeBlock), m.transferStart())
	m.vector(err)
}

// transferStart computes the transfer start address from the reserved
// cells. The monitor reuses the length cell as the low address byte.
func (m *Machine) transferStart() int {
	return m.mem.U8(arch.CellTapeStart)<<8 | m.mem.U8(arch.CellTapeLength)
}

// vector resumes the monitor at its done or error entry point. Every
// failure, a missing tape included, takes the error vector; the
// monitor has no other way to learn the outcome.
func (m *Machine) vector(err error) {
	if m.core == nil {
		return
	}

	if err != nil {
		log.Println("tape:", err)
		m.core.SetPC(arch.VectorTapeError)
		return
	}

	m.core.SetPC(arch.VectorTapeDone)
}
