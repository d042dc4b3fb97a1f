package prereq

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/CodexForgeBR/template-prereqs/internal/logging"
)

// LookupFunc reports whether command resolves to an executable.
type LookupFunc func(command string) bool

// IsAvailable reports whether command is an executable on PATH.
// Empty names, names with a path separator and any lookup error all count as
// not found. A match in a relative PATH entry counts as found, as in a shell.
func IsAvailable(command string) bool {
	if command == "" || strings.ContainsRune(command, '/') || strings.ContainsRune(command, os.PathSeparator) {
		logging.Debug(fmt.Sprintf("lookup %q: not a bare command name", command))
		return false
	}
	path, err := exec.LookPath(command)
	if errors.Is(err, exec.ErrDot) && path != "" {
		// Found through a relative PATH entry such as "." or "".
		logging.Debug(fmt.Sprintf("lookup %s: %s (relative PATH entry)", command, path))
		return true
	}
	if err != nil {
		logging.Debug(fmt.Sprintf("lookup %s: %v", command, err))
		return false
	}
	logging.Debug(fmt.Sprintf("lookup %s: %s", command, path))
	return true
}

// CheckAvailability checks each of the given tools with lookup.
// Returns a map of tool name to availability status.
func CheckAvailability(lookup LookupFunc, tools ...string) map[string]bool {
	if lookup == nil {
		lookup = IsAvailable
	}
	result := make(map[string]bool, len(tools))
	for _, tool := range tools {
		result[tool] = safeLookup(lookup, tool)
	}
	return result
}

// safeLookup runs lookup and treats a panic as "not found".
func safeLookup(lookup LookupFunc, command string) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Debug(fmt.Sprintf("lookup %s panicked: %v", command, r))
			found = false
		}
	}()
	return lookup(command)
}
