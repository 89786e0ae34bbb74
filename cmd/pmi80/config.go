package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	ROM         string // Path to the monitor ROM image.
	Tape        string // Directory holding the cassette blocks.
	ScaleFactor int    // Amount by which the display is scaled.
	Loopback    bool   // Fit a loopback expander on the expansion header?
	Paused      bool   // Start with the CPU stopped?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Tape = "tape"
	c.ScaleFactor = 2

	flag.Usage = func() {
		fmt.Printf("%s [options] <monitor rom>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Tape, "tape", c.Tape, "Directory the cassette recorder stores its blocks in.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Scale factor for the display.")
	flag.BoolVar(&c.Loopback, "loopback", c.Loopback, "Fit a loopback expander on the expansion header.")
	flag.BoolVar(&c.Paused, "paused", c.Paused, "Start with the CPU stopped.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}
