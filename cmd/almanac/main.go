// SPDX-License-Identifier: MIT

// Command almanac prints the lowest location reachable from an almanac's seeds.
package main

import (
	"os"

	"github.com/katalvlaran/almanac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
