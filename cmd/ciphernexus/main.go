// Command ciphernexus runs the Caesar cipher wheel in the terminal and offers
// headless encode, decode and render commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
