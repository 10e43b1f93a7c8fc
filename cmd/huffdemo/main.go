// Command huffdemo Huffman-codes a sample string and decodes it again.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/huffcode"
)

func main() {
	text := flag.String("text", "abcdefg", "sample text to encode")
	dump := flag.Bool("dump", false, "print the code table")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("huffdemo: ")

	result, err := huffman.CompressString(*text)
	if err != nil {
		log.Fatal(err)
	}

	if *dump {
		table := huffman.BuildCodeTable(result.Tree())
		if _, err := table.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	decoded, err := huffman.DecompressString(result)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("encoded message: %s\n", result.Bits())
	fmt.Printf("decoded message: %s\n", decoded)
}
