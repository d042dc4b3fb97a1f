// Package logging provides colored, leveled diagnostics for template-prereqs.
//
// Everything goes to stderr so stdout carries only the prerequisite report.
// Debug output is suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	verbose bool
	out     io.Writer = os.Stderr
)

var (
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
	debugPrefix = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects log output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	fmt.Fprintln(out, warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(out, errorPrefix("[ERROR]")+" "+msg)
}

// Debug prints a debug message, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(out, debugPrefix("[DEBUG]")+" "+msg)
}
