// Package cli provides flag binding and validation for the template-prereqs CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/template-prereqs/internal/config"
)

// BindFlags registers the CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.StringVar(&cfg.ContextFile, "context", "", "Host context file (YAML or JSON, - for stdin)")
	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "Write the contributed context as JSON to this file")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	flags.BoolVar(&cfg.Strict, "strict", false, "Exit 2 when any tool is missing")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log each PATH lookup to stderr")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cfg *config.Config) error {
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}
	if cfg.ContextFile != "" && cfg.ContextFile != "-" {
		if _, err := os.Stat(cfg.ContextFile); err != nil {
			return fmt.Errorf("--context: %w", err)
		}
	}
	return nil
}

// BuildOverrides creates a map of CLI flag overrides from the config.
// Only flags explicitly set by the user are included, so config file values
// are not overridden by flag defaults.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"context": {"CONTEXT_FILE", cfg.ContextFile},
		"output":  {"OUTPUT_FILE", cfg.OutputFile},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"strict":   {"STRICT", cfg.Strict},
		"no-color": {"NO_COLOR", cfg.NoColor},
		"verbose":  {"VERBOSE", cfg.Verbose},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = fmt.Sprintf("%t", mapping.val)
		}
	}

	return overrides
}
