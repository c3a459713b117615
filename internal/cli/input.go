// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/almanac/almanac"
	"github.com/spf13/cobra"
)

// readAlmanac parses the file named by args[0], or stdin when args is empty
// or "-".
func readAlmanac(cmd *cobra.Command, args []string) (*almanac.Almanac, error) {
	if len(args) == 0 || args[0] == "-" {
		return almanac.Parse(cmd.InOrStdin())
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	a, err := almanac.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return a, nil
}
