package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of writer when it is a terminal,
// or defaultTermWidth otherwise.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// IsInteractive reports whether reader is a terminal a user can type into.
func IsInteractive(reader io.Reader) bool {
	f, ok := reader.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
