// symbind resolves references to described external packages into per-module
// import tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "symbind:", err)
		os.Exit(1)
	}
}
