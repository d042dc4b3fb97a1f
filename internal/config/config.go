// Package config defines the template-prereqs configuration model and default
// values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigFile is the project-level config file name, looked up in the
// working directory.
const ProjectConfigFile = ".template-prereqs"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [5]string{
	"VERBOSE",
	"NO_COLOR",
	"STRICT",
	"CONTEXT_FILE",
	"OUTPUT_FILE",
}

// Config holds every configuration field for the template-prereqs CLI.
type Config struct {
	// Output.
	Verbose bool
	NoColor bool

	// Exit with a non-zero code when a tool is missing.
	Strict bool

	// Host context in ("-" is stdin, empty means no context) and the
	// contributed context out (empty means not written).
	ContextFile string
	OutputFile  string

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{}
}

// GlobalConfigPath returns the per-user config file path, or "" if the user
// config directory cannot be determined.
func GlobalConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "template-prereqs", "config")
}
