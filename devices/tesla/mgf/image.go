package mgf

import (
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Image bundles every block on a tape into a single stream, so a tape
// can be exported, shared and imported as one file.
type Image struct {
	Blocks map[int][]byte
}

// NewImage creates a new, empty image.
func NewImage() *Image {
	return &Image{Blocks: make(map[int][]byte)}
}

// Load reads image data from the given stream.
func (img *Image) Load(r io.Reader) (err error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Wrapf(err, "mgf: invalid image format")
	}

	defer gz.Close()
	defer recoverOnPanic(&err)

	img.Blocks = make(map[int][]byte)

	count := int(readU16(gz))
	for i := 0; i < count; i++ {
		id := int(readU8(gz))
		img.Blocks[id] = readBytes(gz)
	}
	return
}

// Save writes image data to the given stream.
func (img *Image) Save(w io.Writer) (err error) {
	defer recoverOnPanic(&err)

	gz := gzip.NewWriter(w)
	defer gz.Close()

	writeU16(gz, uint16(len(img.Blocks)))
	for _, id := range img.ids() {
		writeU8(gz, uint8(id))
		writeBytes(gz, img.Blocks[id])
	}
	return
}

// Export fills a new image with every block in the given store.
func Export(s Store) (*Image, error) {
	names, err := s.List()
	if err != nil {
		return nil, errors.Wrapf(err, "mgf: export")
	}

	img := NewImage()
	for _, name := range names {
		var id int
		if n, err := fmt.Sscanf(name, "block-%02x.mgf", &id); n != 1 || err != nil {
			continue
		}

		p, err := s.ReadAll(name)
		if err != nil {
			return nil, errors.Wrapf(err, "mgf: export block %02x", id)
		}
		img.Blocks[id] = p
	}

	return img, nil
}

// Import writes every block in the image into the given store,
// replacing blocks with matching ids.
func Import(s Store, img *Image) error {
	for _, id := range img.ids() {
		if err := s.WriteAll(BlockName(id), img.Blocks[id]); err != nil {
			return errors.Wrapf(err, "mgf: import block %02x", id)
		}
	}
	return nil
}

// String returns a human-readable dump of the image's contents.
func (img *Image) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Blocks (%d):\n", len(img.Blocks))
	for _, id := range img.ids() {
		p := img.Blocks[id]
		fmt.Fprintf(&sb, " %02x: %d bytes\n", id, len(p))
		sb.WriteString(hex.Dump(p))
	}

	return sb.String()
}

func (img *Image) ids() []int {
	ids := make([]int, 0, len(img.Blocks))
	for id := range img.Blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func recoverOnPanic(err *error) {
	x := recover()
	if x == nil {
		return
	}

	switch tx := x.(type) {
	case runtime.Error:
		panic(tx)
	case error:
		*err = errors.Wrapf(tx, "mgf")
	default:
		*err = fmt.Errorf("mgf: %v", tx)
	}
}
