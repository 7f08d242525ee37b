// Command pmcompress compresses a file into a pymetranet LZW stream.
package main

import (
	"flag"
	"log"
	"os"

	lzw "github.com/eldesradar/pymetranet"
)

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	verbose := flag.Int("v", 0, "verbosity level")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}
	lzw.SetVerbose(*verbose)

	decoded, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal(err)
	}
	w := lzw.NewWriter(f)
	if _, err := w.Write(decoded); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
	f.Close()
}
