package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var statusColor = color.New(color.FgCyan)

func init() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		statusColor.DisableColor()
	}
}

// Statusf prints a progress message to stderr so it never mixes with
// the prompt on stdout.
func Statusf(format string, args ...any) {
	statusColor.Fprintf(os.Stderr, format+"\n", args...)
}

// Errorf prints an error message to stderr.
func Errorf(format string, args ...any) {
	red := color.New(color.FgRed)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		red.DisableColor()
	}
	red.Fprintf(os.Stderr, format+"\n", args...)
}
