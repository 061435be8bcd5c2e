// Package format writes command results as JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formats lists the accepted output format names, default first.
var Formats = []string{"json", "edn"}

// Envelope wraps every scriptable result. Cancelled marks an interactive
// command the user left without choosing.
type Envelope struct {
	Data      any  `json:"data"`
	Cancelled bool `json:"cancelled,omitempty"`
}

// Parse normalizes a format name; "" selects json.
func Parse(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Formats[0], nil
	}
	for _, f := range Formats {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want %s)", name, strings.Join(Formats, "|"))
}

// Write writes v in the named format.
func Write(w io.Writer, v any, format string, pretty bool) error {
	f, err := Parse(format)
	if err != nil {
		return err
	}
	if f == "edn" {
		return WriteEDN(w, v, pretty)
	}
	return WriteJSON(w, v, pretty)
}

// WriteJSON writes v as one JSON document and a trailing newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
