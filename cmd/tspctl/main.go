// Command tspctl loads delivery graphs and runs the route solvers on them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
