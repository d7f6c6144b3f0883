package foo

import (
	"fmt"
	"io"
	"os"
)

// Print writes the default textual form of v followed by a newline to stdout.
func Print[T any](v T) error {
	return Fprint(os.Stdout, v)
}

// Fprint writes the default textual form of v followed by a newline to w.
// The line is emitted with a single Write so concurrent callers interleave
// whole lines only.
func Fprint[T any](w io.Writer, v T) error {
	line := fmt.Sprintln(v)
	_, err := io.WriteString(w, line)
	return err
}
