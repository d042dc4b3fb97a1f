package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadFile parses a KEY=VALUE config file at the given path.
//
// Empty lines, # comments and lines without "=" are skipped. Keys and values
// are trimmed, and keys outside WhitelistedVars are dropped.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if whitelistSet[key] {
			result[key] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return result, nil
}

// layer is one config file in the precedence chain.
type layer struct {
	name     string
	path     string
	optional bool
}

// LoadWithPrecedence assembles a Config from, in increasing priority:
// defaults, the global file, the project file, the explicit file, and
// cliOverrides.
//
// Empty paths are skipped. A missing global or project file is ignored; a
// missing explicit file is an error.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	layers := []layer{
		{"global config", globalPath, true},
		{"project config", projectPath, true},
		{"explicit config", explicitPath, false},
	}
	for _, l := range layers {
		if l.path == "" {
			continue
		}
		m, err := LoadFile(l.path)
		if err != nil {
			if l.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", l.name, err)
		}
		ApplyMapToConfig(cfg, m)
	}

	ApplyMapToConfig(cfg, cliOverrides)
	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "STRICT").
// Unknown keys are silently ignored.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "NO_COLOR":
			cfg.NoColor = parseBool(value)
		case "STRICT":
			cfg.Strict = parseBool(value)
		case "CONTEXT_FILE":
			cfg.ContextFile = value
		case "OUTPUT_FILE":
			cfg.OutputFile = value
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
