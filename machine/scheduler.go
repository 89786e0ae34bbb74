package machine

import "github.com/hexaflex/pmi80/devices/tesla/segled"

// CyclesPerTick is the cycle budget executed on each 1 ms tick. It
// governs the emulated clock speed; timing-dependent monitor routines
// rely on it.
const CyclesPerTick = 1100

// Scheduler steps the CPU core in fixed cycle quanta and ages the
// display afterglow. It starts out stopped.
type Scheduler struct {
	core    Core
	display *segled.Device
	cycles  uint64
	running bool
}

// NewScheduler creates a stopped scheduler for the given core.
func NewScheduler(core Core, display *segled.Device) *Scheduler {
	return &Scheduler{core: core, display: display}
}

// Running reports whether ticks currently execute anything.
func (s *Scheduler) Running() bool {
	return s.running
}

// Start enables execution. Idempotent.
func (s *Scheduler) Start() {
	s.running = true
}

// Stop freezes execution and display aging. Idempotent; the step in
// flight, if any, always finishes first since the budget loop only
// checks between steps.
func (s *Scheduler) Stop() {
	s.running = false
}

// Toggle flips between running and stopped.
func (s *Scheduler) Toggle() {
	s.running = !s.running
}

// Cycles returns the total cycle cost executed so far.
func (s *Scheduler) Cycles() uint64 {
	return s.cycles
}

// Tick runs one scheduling quantum: the core steps until the cycle
// budget is met, then the display decays one tick. While stopped
// nothing advances, afterglow included.
func (s *Scheduler) Tick() {
	if !s.running {
		return
	}

	for cost := 0; cost < CyclesPerTick; {
		c := s.core.Step()
		if c < 1 {
			c = 1
		}
		cost += c
		s.cycles += uint64(c)
	}

	s.display.Tick()
}
