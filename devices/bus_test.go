package devices

import "testing"

func TestBusUnmapped(t *testing.T) {
	b := NewBus()

	for port := 0; port < 256; port++ {
		if have := b.In(byte(port)); have != Floating {
			t.Fatalf("port %02x: have %02x, want %02x", port, have, Floating)
		}
		b.Out(byte(port), 0x42) // Must not panic.
	}
}

func TestBusDispatch(t *testing.T) {
	b := NewBus()

	var wrote byte
	if !b.MapIn(0xFA, func() byte { return 0x5F }) {
		t.Fatal("MapIn failed")
	}
	if !b.MapOut(0xF8, func(v byte) { wrote = v }) {
		t.Fatal("MapOut failed")
	}

	if have := b.In(0xFA); have != 0x5F {
		t.Fatalf("In: have %02x, want 5f", have)
	}

	b.Out(0xF8, 0x40)
	if wrote != 0x40 {
		t.Fatalf("Out: have %02x, want 40", wrote)
	}

	// Directions are independent maps.
	if have := b.In(0xF8); have != Floating {
		t.Fatalf("In on write-only port: have %02x, want %02x", have, Floating)
	}
}

func TestBusMapConflict(t *testing.T) {
	b := NewBus()

	b.MapIn(0x10, func() byte { return 1 })
	if b.MapIn(0x10, func() byte { return 2 }) {
		t.Fatal("duplicate MapIn accepted")
	}
	if have := b.In(0x10); have != 1 {
		t.Fatalf("handler replaced: have %02x, want 01", have)
	}

	b.MapOut(0x10, func(byte) {})
	if b.MapOut(0x10, func(byte) {}) {
		t.Fatal("duplicate MapOut accepted")
	}
}
