// Package term decides whether terminal output should be colored.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether output written to f should carry color.
// Color is off when disabled is set, when NO_COLOR is set to any non-empty
// value, when TERM is "dumb", or when f is not a terminal.
func ColorEnabled(f *os.File, disabled bool) bool {
	if disabled || f == nil || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
