// Package mgf implements the PMI-80 cassette recorder.
//
// A recording is a named block: up to 256 bytes copied between the RAM
// window and a persistent byte store. The monitor does not poll a
// status register for the outcome; the machine-level trigger resumes
// it at one of two fixed entry points instead (see the machine
// package). This package only moves bytes and reports errors.
package mgf

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/pmi80/arch"
	"github.com/hexaflex/pmi80/devices"
)

// MaxBlockSize is the largest recordable block.
const MaxBlockSize = 256

// Error conditions reported by Save and Load. Anything else coming out
// of those calls is a store I/O failure.
var (
	ErrAddressRange = errors.New("mgf: transfer exceeds the RAM window")
	ErrNotFound     = errors.New("mgf: block does not exist")
	ErrNoStore      = errors.New("mgf: no tape mounted")
)

// BlockName returns the canonical object name for the given block id.
func BlockName(id int) string {
	return fmt.Sprintf("block-%02x.mgf", id&0xff)
}

// Device defines the cassette recorder.
type Device struct {
	store Store
	mem   devices.Memory
}

var _ devices.Device = &Device{}

// New creates a recorder moving bytes between mem and store.
// A nil store mounts no tape; transfers then fail with ErrNoStore.
func New(store Store, mem devices.Memory) *Device {
	return &Device{store: store, mem: mem}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Tesla, 0x0003)
}

// Startup initializes internal resources.
func (d *Device) Startup() error {
	return nil
}

// Shutdown cleans up internal resources.
func (d *Device) Shutdown() error {
	return nil
}

// Save persists length bytes of RAM starting at start as block id.
// The persisted state is left untouched when the range is rejected.
func (d *Device) Save(id, start, length int) error {
	if length < 1 || length > MaxBlockSize || start < 0 || start+length > arch.RAMWindow {
		return ErrAddressRange
	}

	if d.store == nil {
		return ErrNoStore
	}

	p := make([]byte, length)
	d.mem.Read(start, p)

	if err := d.store.WriteAll(BlockName(id), p); err != nil {
		return errors.Wrapf(err, "mgf: save block %02x", id&0xff)
	}

	return nil
}

// Load restores block id into RAM starting at start.
// Returns the number of bytes copied.
func (d *Device) Load(id, start int) (int, error) {
	if d.store == nil {
		return 0, ErrNoStore
	}

	p, err := d.store.ReadAll(BlockName(id))
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return 0, ErrNotFound
		}
		return 0, errors.Wrapf(err, "mgf: load block %02x", id&0xff)
	}

	if start < 0 || start+len(p) > arch.RAMWindow {
		return 0, ErrAddressRange
	}

	d.mem.Write(start, p)
	return len(p), nil
}

// Blocks returns the ids of every block on the mounted tape, in
// unspecified order.
func (d *Device) Blocks() ([]int, error) {
	if d.store == nil {
		return nil, ErrNoStore
	}

	names, err := d.store.List()
	if err != nil {
		return nil, errors.Wrapf(err, "mgf: list blocks")
	}

	ids := make([]int, 0, len(names))
	for _, name := range names {
		var id int
		if n, err := fmt.Sscanf(name, "block-%02x.mgf", &id); n == 1 && err == nil {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
