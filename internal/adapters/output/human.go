package output

import (
	"io"

	"github.com/WingSMC/CPP20-Modules/internal/core"
	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct {
	Out io.Writer
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	w := writer(p.Out)
	switch data := v.(type) {
	case core.SquareResult:
		return foo.Fprint(w, data.Square)
	default:
		return foo.Fprint(w, "ok")
	}
}
