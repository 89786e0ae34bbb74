package memory

import (
	"testing"

	"github.com/hexaflex/pmi80/arch"
)

func testROM() []byte {
	rom := make([]byte, arch.ROMSize)
	for i := range rom {
		rom[i] = byte(i ^ 0xA5)
	}
	return rom
}

func TestROMReadOnly(t *testing.T) {
	rom := testROM()
	m := New(rom)

	for addr := 0; addr < arch.ROMSize; addr++ {
		m.SetU8(addr, 0x42)

		if have, want := m.U8(addr), int(rom[addr]); have != want {
			t.Fatalf("rom read %04x: have %02x, want %02x", addr, have, want)
		}
	}
}

func TestROMShadowsRAM(t *testing.T) {
	// A write below the ROM size lands in the masked RAM window and
	// stays invisible at that address, but readable through an alias
	// above the ROM.
	m := New(testROM())

	m.SetU8(0x0010, 0x42)

	if have := m.U8(0x0010); have == 0x42 {
		t.Fatalf("rom shadow pierced: have %02x", have)
	}
	if have := m.U8(arch.RAMWindow + 0x0010); have != 0x42 {
		t.Fatalf("ram alias: have %02x, want 42", have)
	}
}

func TestRAMMasking(t *testing.T) {
	m := New(nil)

	m.SetU8(0x4c00, 0x17)

	if have := m.U8(0x4c00 & arch.RAMMask); have != 0x17 {
		t.Fatalf("masked read: have %02x, want 17", have)
	}
	if have := m.U8(0x6c00); have != 0x17 {
		t.Fatalf("aliased read: have %02x, want 17", have)
	}
}

func TestU16LittleEndian(t *testing.T) {
	m := New(nil)

	m.SetU16(0x1000, 0xBEEF)

	if have := m.U8(0x1000); have != 0xEF {
		t.Fatalf("low byte: have %02x, want ef", have)
	}
	if have := m.U8(0x1001); have != 0xBE {
		t.Fatalf("high byte: have %02x, want be", have)
	}
	if have := m.U16(0x1000); have != 0xBEEF {
		t.Fatalf("word: have %04x, want beef", have)
	}
}

func TestU16Wrap(t *testing.T) {
	// The high byte of a word at the top of the address space wraps to
	// address 0, which reads ROM.
	rom := testROM()
	m := New(rom)

	m.SetU8(0xFFFF, 0x34)

	want := int(rom[0])<<8 | 0x34
	if have := m.U16(0xFFFF); have != want {
		t.Fatalf("wrapped word: have %04x, want %04x", have, want)
	}
}

func TestReadWriteRAM(t *testing.T) {
	m := New(testROM())

	src := []byte{1, 2, 3, 4, 5}
	m.Write(0x0010, src)

	dst := make([]byte, len(src))
	m.Read(0x0010, dst)

	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("byte %d: have %02x, want %02x", i, dst[i], src[i])
		}
	}
}
