// Command pmexpand decompresses a pymetranet LZW stream.
package main

import (
	"flag"
	"io"
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

	fileIn, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	r, err := lzw.NewReader(fileIn)
	if err != nil {
		log.Fatal(err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	r.Close()
	fileIn.Close()

	if err := os.WriteFile(*outputFile, decoded, 0644); err != nil {
		log.Fatal(err)
	}
}
