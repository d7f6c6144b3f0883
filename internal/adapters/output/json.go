package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONPrinter prints JSON to Out, or stdout when Out is nil.
type JSONPrinter struct {
	Out io.Writer
}

// Print renders JSON output.
func (p JSONPrinter) Print(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer(p.Out), string(payload))
	return err
}
