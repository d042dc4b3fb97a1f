// Package exitcode defines named exit codes for the template-prereqs CLI.
package exitcode

// Exit codes.
const (
	Success      = 0 // Report printed (tools may still be missing unless --strict)
	Error        = 1 // Invalid args, unreadable config or context file
	MissingTools = 2 // --strict and at least one tool is missing
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case MissingTools:
		return "MissingTools"
	default:
		return "unknown"
	}
}

// ForMissing maps the number of missing tools to an exit code. Missing tools
// only fail the run in strict mode.
func ForMissing(missing int, strict bool) int {
	if strict && missing > 0 {
		return MissingTools
	}
	return Success
}
