// internal/tui/plain.go
//
// Plain mode writes the same narration straight to a writer, without
// pacing or the alternate screen. Used when stdout is a pipe or the user
// passes --plain.

package tui

import (
	"fmt"
	"io"
)

// WritePlain dumps every frame as a line, ignoring pauses and typing.
func WritePlain(w io.Writer, frames []Frame) error {
	for _, frame := range frames {
		if _, err := fmt.Fprintln(w, frame.Text); err != nil {
			return fmt.Errorf("tui: write narration: %w", err)
		}
	}
	return nil
}
