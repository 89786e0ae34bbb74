package mgf

import (
	"encoding/binary"
	"io"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var endian = binary.LittleEndian

func readU8(r io.Reader) (v uint8) {
	check(binary.Read(r, endian, &v))
	return
}

func readU16(r io.Reader) (v uint16) {
	check(binary.Read(r, endian, &v))
	return
}

func readBytes(r io.Reader) []byte {
	sz := readU16(r)
	p := make([]byte, sz)
	_, err := io.ReadFull(r, p)
	check(err)
	return p
}

func writeU8(w io.Writer, v uint8) {
	check(binary.Write(w, endian, v))
}

func writeU16(w io.Writer, v uint16) {
	check(binary.Write(w, endian, v))
}

func writeBytes(w io.Writer, p []byte) {
	writeU16(w, uint16(len(p)))
	_, err := w.Write(p)
	check(err)
}
