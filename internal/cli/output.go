package cli

import (
	"encoding/json"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	warnColor   = color.New(color.FgYellow)
	headerColor = color.New(color.Bold)
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
