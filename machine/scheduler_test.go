package machine

import (
	"testing"

	"github.com/hexaflex/pmi80/devices/tesla/segled"
)

// stubCore counts steps and reports a fixed cycle cost.
type stubCore struct {
	cost   int
	steps  int
	resets int
	ints   []byte
	pc     uint16
}

func (c *stubCore) Step() int {
	c.steps++
	return c.cost
}

func (c *stubCore) Reset()                { c.resets++; c.pc = 0 }
func (c *stubCore) SetPC(addr uint16)     { c.pc = addr }
func (c *stubCore) Interrupt(vector byte) { c.ints = append(c.ints, vector) }

func TestTickBudget(t *testing.T) {
	core := &stubCore{cost: 100}
	s := NewScheduler(core, segled.New(nil))

	s.Start()
	s.Tick()

	// 1100 / 100: exactly 11 steps per tick.
	if core.steps != 11 {
		t.Fatalf("steps: have %d, want 11", core.steps)
	}
	if have := s.Cycles(); have != 1100 {
		t.Fatalf("cycles: have %d, want 1100", have)
	}
}

func TestTickBudgetOvershoot(t *testing.T) {
	// A step cost that does not divide the budget still finishes the
	// instruction in flight: 4 steps of 300 cycles.
	core := &stubCore{cost: 300}
	s := NewScheduler(core, segled.New(nil))

	s.Start()
	s.Tick()

	if core.steps != 4 {
		t.Fatalf("steps: have %d, want 4", core.steps)
	}
}

func TestStoppedTickIsInert(t *testing.T) {
	core := &stubCore{cost: 100}
	s := NewScheduler(core, segled.New(nil))

	s.Tick()
	if core.steps != 0 {
		t.Fatalf("steps while stopped: have %d, want 0", core.steps)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(&stubCore{cost: 100}, segled.New(nil))

	s.Start()
	s.Start()
	if !s.Running() {
		t.Fatal("not running after Start")
	}

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatal("running after Stop")
	}

	s.Toggle()
	if !s.Running() {
		t.Fatal("not running after Toggle")
	}
}

func TestDisplayFrozenWhileStopped(t *testing.T) {
	lit := make(map[int]bool)
	disp := segled.New(func(digit, segment int, on bool) {
		if on {
			lit[digit] = true
		} else if segment == 0 {
			delete(lit, digit)
		}
	})

	core := &stubCore{cost: CyclesPerTick}
	s := NewScheduler(core, disp)

	disp.Set(0, 0x40)

	// Stopped ticks must not age the afterglow.
	for i := 0; i < segled.Afterglow*2; i++ {
		s.Tick()
	}
	if !lit[0] {
		t.Fatal("digit decayed while stopped")
	}

	s.Start()
	for i := 0; i < segled.Afterglow; i++ {
		s.Tick()
	}
	if lit[0] {
		t.Fatal("digit still lit after decay")
	}
}

func TestZeroCostStepClamped(t *testing.T) {
	core := &stubCore{cost: 0}
	s := NewScheduler(core, segled.New(nil))

	s.Start()
	s.Tick() // Must terminate.

	if core.steps != CyclesPerTick {
		t.Fatalf("steps: have %d, want %d", core.steps, CyclesPerTick)
	}
}
