package prereq

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Footer text for the report.
const (
	AllInstalledMessage = "All prerequisites installed!"
	DegradedMessage     = "The project will work, but some automation features may not function until these are installed."
)

// Each printer resets the terminal after its segment, so color never bleeds
// into the rest of the line.
var (
	greenText  = color.New(color.FgGreen).SprintFunc()
	redText    = color.New(color.FgRed).SprintFunc()
	yellowText = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Result is the outcome of checking a single tool.
type Result struct {
	Tool  ToolSpec
	Found bool
}

// Report holds one Result per tool, in table order.
type Report struct {
	Results []Result
}

// Missing returns the tools that were not found, in table order.
func (r Report) Missing() []ToolSpec {
	var missing []ToolSpec
	for _, res := range r.Results {
		if !res.Found {
			missing = append(missing, res.Tool)
		}
	}
	return missing
}

// MissingCount returns the number of tools that were not found.
func (r Report) MissingCount() int {
	return len(r.Missing())
}

// Render writes the human-readable report for r to w.
//
// Example output:
//
//	Checking prerequisites...
//
//	✓ git        Version control
//	✗ jq         JSON processing
//	  Install: brew install jq / apt install jq
//
//	Missing 1 tool(s).
//	The project will work, but some automation features may not function until these are installed.
func Render(w io.Writer, r Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checking prerequisites...")
	fmt.Fprintln(w)

	for _, res := range r.Results {
		if res.Found {
			fmt.Fprintf(w, "%s %-10s %s\n", greenText("✓"), res.Tool.Command, res.Tool.Description)
			continue
		}
		fmt.Fprintf(w, "%s %-10s %s\n", redText("✗"), res.Tool.Command, res.Tool.Description)
		fmt.Fprintf(w, "  %s %s\n", yellowText("Install:"), res.Tool.InstallHint)
	}

	fmt.Fprintln(w)
	if n := r.MissingCount(); n == 0 {
		fmt.Fprintln(w, greenText(AllInstalledMessage))
	} else {
		fmt.Fprintln(w, yellowText(fmt.Sprintf("Missing %d tool(s).", n)))
		fmt.Fprintln(w, DegradedMessage)
	}
	fmt.Fprintln(w)
}
