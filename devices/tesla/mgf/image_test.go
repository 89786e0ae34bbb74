package mgf

import (
	"bytes"
	"reflect"
	"testing"
)

func TestImageRoundtrip(t *testing.T) {
	img := NewImage()
	img.Blocks[0x07] = []byte{1, 2, 3, 4}
	img.Blocks[0xAB] = []byte{5, 6, 7, 8, 9}
	img.Blocks[0x00] = []byte{}

	var buf bytes.Buffer
	if err := img.Save(&buf); err != nil {
		t.Fatal(err)
	}

	br := NewImage()
	if err := br.Load(&buf); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(img, br) {
		t.Fatalf("image mismatch:\nhave: %v\nwant: %v", br, img)
	}
}

func TestImageInvalidFormat(t *testing.T) {
	img := NewImage()
	if err := img.Load(bytes.NewReader([]byte("not a tape"))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExportImport(t *testing.T) {
	src := NewMemStore()
	src.WriteAll(BlockName(0x10), []byte{1, 2, 3})
	src.WriteAll(BlockName(0x20), []byte{4, 5})
	src.WriteAll("stray.txt", []byte{9}) // Not a block; must be skipped.

	img, err := Export(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(img.Blocks) != 2 {
		t.Fatalf("exported blocks: have %d, want 2", len(img.Blocks))
	}

	dst := NewMemStore()
	if err := Import(dst, img); err != nil {
		t.Fatal(err)
	}

	p, err := dst.ReadAll(BlockName(0x10))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(p, []byte{1, 2, 3}) {
		t.Fatalf("imported block: have %x, want 010203", p)
	}
}
