package vv55

import "sync"

// loopback is an in-process expander: bytes written to one port appear
// on the other port's input latch. It stands in for real hardware in
// tests and on boards without an expansion header.
type loopback struct {
	m     sync.Mutex
	latch [2]byte
	dir   [2]Direction
}

var _ Expander = &loopback{}

// Loopback returns an expander whose ports are cross-wired: output on
// A reads back on B and vice versa.
func Loopback() Expander {
	return &loopback{latch: [2]byte{0xFF, 0xFF}}
}

func (l *loopback) ReadPort(p Port) (byte, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.latch[p&1], nil
}

func (l *loopback) WritePort(p Port, v byte) error {
	l.m.Lock()
	defer l.m.Unlock()
	l.latch[(p^1)&1] = v
	return nil
}

func (l *loopback) SetDirection(a, b Direction) error {
	l.m.Lock()
	defer l.m.Unlock()
	l.dir[PortA] = a
	l.dir[PortB] = b
	return nil
}
