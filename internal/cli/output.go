// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// textRenderer is implemented by results with a human-readable form.
type textRenderer interface {
	renderText(w io.Writer) error
}

// render writes v in the configured output format.
func render(w io.Writer, format string, v textRenderer) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return v.renderText(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
