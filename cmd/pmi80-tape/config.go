package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Tape   string // Directory holding the cassette blocks.
	Export string // Image file to export the tape to.
	Import string // Image file to import onto the tape.
	Dump   int    // Block id to dump, or -1.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Tape = "tape"
	c.Dump = -1

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Tape, "tape", c.Tape, "Directory the cassette blocks live in.")
	flag.StringVar(&c.Export, "export", c.Export, "Export the whole tape to the given image file.")
	flag.StringVar(&c.Import, "import", c.Import, "Import the given image file onto the tape.")
	flag.IntVar(&c.Dump, "dump", c.Dump, "Hex dump the block with the given id.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	return &c
}
