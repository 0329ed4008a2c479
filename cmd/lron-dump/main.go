// Command lron-dump parses structured text files and prints the result,
// which makes it handy to check a document against the grammar.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lrcat/lrcat-go/pkg/lron"
)

func main() {
	for _, filename := range os.Args[1:] {
		if err := dumpFile(os.Stdout, filename); err != nil {
			fmt.Printf("Error dumping lron: %s %v\n", filename, err)
		}
	}
}

// dumpFile only returns read errors. Parse errors are printed.
func dumpFile(w io.Writer, filename string) error {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	root, err := lron.Parse(string(buf))
	if err != nil {
		fmt.Fprintf(w, "Error parsing file %s: %v\n", filename, err)
		return nil
	}
	fmt.Fprintf(w, "Result: %v\n", root)
	return nil
}
