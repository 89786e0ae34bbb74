package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/hexaflex/pmi80/devices/tesla/mgf"
)

func main() {
	config := parseArgs()
	store := mgf.NewDirStore(config.Tape)

	var err error
	switch {
	case len(config.Export) > 0:
		err = exportTape(store, config.Export)
	case len(config.Import) > 0:
		err = importTape(store, config.Import)
	case config.Dump >= 0:
		err = dumpBlock(store, config.Dump)
	default:
		err = listBlocks(store)
	}

	if err != nil {
		log.Fatal(err)
	}
}

// listBlocks prints a summary of every block on the tape.
func listBlocks(store mgf.Store) error {
	img, err := mgf.Export(store)
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(img.Blocks))
	for id := range img.Blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("%d blocks recorded, %d free\n", len(ids), 256-len(ids))
	for _, id := range ids {
		fmt.Printf(" %02x: %d bytes\n", id, len(img.Blocks[id]))
	}
	return nil
}

// dumpBlock prints a hex dump of a single block.
func dumpBlock(store mgf.Store, id int) error {
	img, err := mgf.Export(store)
	if err != nil {
		return err
	}

	p, ok := img.Blocks[id&0xff]
	if !ok {
		return fmt.Errorf("block %02x is not on the tape", id&0xff)
	}

	single := mgf.NewImage()
	single.Blocks[id&0xff] = p
	fmt.Print(single)
	return nil
}

// exportTape bundles the whole tape into a single image file.
func exportTape(store mgf.Store, file string) error {
	img, err := mgf.Export(store)
	if err != nil {
		return err
	}

	fd, err := os.Create(file)
	if err != nil {
		return err
	}
	defer fd.Close()

	if err := img.Save(fd); err != nil {
		return err
	}

	log.Println("exported", len(img.Blocks), "blocks to", file)
	return nil
}

// importTape unpacks an image file onto the tape, replacing blocks
// with matching ids.
func importTape(store mgf.Store, file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fd.Close()

	img := mgf.NewImage()
	if err := img.Load(fd); err != nil {
		return err
	}

	if err := mgf.Import(store, img); err != nil {
		return err
	}

	log.Println("imported", len(img.Blocks), "blocks from", file)
	return nil
}
