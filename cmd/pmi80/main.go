package main

import (
	"log"
	"os"
	"runtime"

	"github.com/hexaflex/pmi80/arch"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config := parseArgs()

	rom, err := os.ReadFile(config.ROM)
	if err != nil {
		log.Fatal(err)
	}

	if len(rom) > arch.ROMSize {
		log.Fatalf("%s: image is %d bytes; the monitor ROM holds %d", config.ROM, len(rom), arch.ROMSize)
	}

	if err := NewApp(config, rom).Run(); err != nil {
		log.Fatal(err)
	}
}
