package segled

import "testing"

// recorder captures segment state and paint calls per digit.
type recorder struct {
	segs   [DigitCount][SegmentCount]bool
	paints [DigitCount]int
}

func (r *recorder) paint(digit, segment int, on bool) {
	r.segs[digit][segment] = on
	r.paints[digit]++
}

func (r *recorder) lit(digit int) int {
	n := 0
	for _, on := range r.segs[digit] {
		if on {
			n++
		}
	}
	return n
}

func TestSetPaintsInvertedBits(t *testing.T) {
	var rec recorder
	d := New(rec.paint)

	// 0x40: bits 0..5 low, bit 6 high. Six segments lit.
	d.Set(3, 0x40)

	if have := rec.lit(3); have != 6 {
		t.Fatalf("lit segments: have %d, want 6", have)
	}
	if rec.segs[3][6] {
		t.Fatal("segment g lit, want dark")
	}
}

func TestBlankPatternIsNoop(t *testing.T) {
	var rec recorder
	d := New(rec.paint)

	d.Set(0, 0x40)
	before := rec.segs[0]

	d.Set(0, Blank)
	d.Set(0, 0xFF) // Only the low 7 bits count.

	if rec.segs[0] != before {
		t.Fatal("blank pattern changed visible state")
	}
}

func TestIdenticalPatternPaintsOnce(t *testing.T) {
	var rec recorder
	d := New(rec.paint)

	d.Set(1, 0x40)
	n := rec.paints[1]

	d.Set(1, 0x40)
	if rec.paints[1] != n {
		t.Fatalf("repaint on identical pattern: have %d calls, want %d", rec.paints[1], n)
	}
}

func TestAfterglowDecay(t *testing.T) {
	var rec recorder
	d := New(rec.paint)

	d.Set(2, 0x40)

	for i := 0; i < Afterglow-1; i++ {
		d.Tick()
	}
	if have := rec.lit(2); have == 0 {
		t.Fatalf("digit dark after %d ticks", Afterglow-1)
	}

	d.Tick()
	if have := rec.lit(2); have != 0 {
		t.Fatalf("digit lit after %d ticks: %d segments", Afterglow, have)
	}
}

func TestSetRearmsAfterglow(t *testing.T) {
	// An identical pattern does not repaint but still rearms the
	// decay counter.
	var rec recorder
	d := New(rec.paint)

	d.Set(2, 0x40)
	for i := 0; i < Afterglow-1; i++ {
		d.Tick()
	}

	d.Set(2, 0x40)
	for i := 0; i < Afterglow-1; i++ {
		d.Tick()
	}

	if have := rec.lit(2); have == 0 {
		t.Fatal("digit dark, afterglow not rearmed")
	}
}

func TestRepaintAfterBlank(t *testing.T) {
	// Decay resets the last-seen pattern, so writing the same value
	// after a blank paints again instead of staying desynced.
	var rec recorder
	d := New(rec.paint)

	d.Set(4, 0x40)
	for i := 0; i < Afterglow; i++ {
		d.Tick()
	}
	if have := rec.lit(4); have != 0 {
		t.Fatalf("digit lit after decay: %d segments", have)
	}

	d.Set(4, 0x40)
	if have := rec.lit(4); have != 6 {
		t.Fatalf("lit segments after rewrite: have %d, want 6", have)
	}
}

func TestClear(t *testing.T) {
	var rec recorder
	d := New(rec.paint)

	d.Set(5, 0x00)
	d.Clear(5)

	if have := rec.lit(5); have != 0 {
		t.Fatalf("digit lit after clear: %d segments", have)
	}

	// Clear must not leave the digit desynced either.
	d.Set(5, 0x00)
	if have := rec.lit(5); have != 7 {
		t.Fatalf("lit segments after rewrite: have %d, want 7", have)
	}
}
