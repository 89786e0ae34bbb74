package arch

// Key identifies a logical key on the PMI-80 keypad. Host scancode
// decoding happens in the front end; the core only sees these.
type Key int

// Matrix keys. RE and I are not listed here: they are wired directly
// to the CPU reset and interrupt lines and never appear in a row
// register.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyEX
	KeyR
	KeyBR
	KeyM
	KeyL
	KeyS

	keyCount
)

// Asserted row values per matrix column. The idle row value is 0x7F;
// a pressed key pulls one of the three column lines low.
const (
	col0 = 0x3F
	col1 = 0x5F
	col2 = 0x6F
)

// bindings maps each key to the row it sits on and the value the row
// register assumes while the key is held.
var bindings = [keyCount]struct {
	row  int
	code byte
}{
	Key0:  {0, col0},
	Key1:  {1, col0},
	Key2:  {2, col0},
	Key3:  {3, col0},
	Key4:  {4, col0},
	Key5:  {5, col0},
	Key6:  {6, col0},
	Key7:  {7, col0},
	Key8:  {8, col0},
	Key9:  {0, col1},
	KeyA:  {1, col1},
	KeyB:  {2, col1},
	KeyC:  {3, col1},
	KeyD:  {4, col1},
	KeyE:  {5, col1},
	KeyF:  {6, col1},
	KeyEX: {7, col1},
	KeyR:  {8, col1},
	KeyBR: {0, col2},
	KeyM:  {1, col2},
	KeyL:  {2, col2},
	KeyS:  {3, col2},
}

// Binding yields the matrix position asserted by the given key.
// Returns ok=false if the key is not part of the matrix.
func Binding(k Key) (row int, code byte, ok bool) {
	if k < 0 || k >= keyCount {
		return 0, 0, false
	}
	b := bindings[k]
	return b.row, b.code, true
}

// KeyName returns the keypad legend for the given key.
// Returns "" if the key is not recognized.
func KeyName(k Key) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyF:
		return string(rune('A' + k - KeyA))
	}
	switch k {
	case KeyEX:
		return "EX"
	case KeyR:
		return "R"
	case KeyBR:
		return "BR"
	case KeyM:
		return "M"
	case KeyL:
		return "L"
	case KeyS:
		return "S"
	}
	return ""
}
