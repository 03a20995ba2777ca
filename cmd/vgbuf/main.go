// Command vgbuf computes VG-Lite buffer layouts and runs single driver
// operations against freshly allocated buffers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
