// Command binetplot renders the Binet's formula plot to PNG.
//
//	binetplot render -o binet.png --keys "++>>"
//	binetplot interactive -o binet.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
