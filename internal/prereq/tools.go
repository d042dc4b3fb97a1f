// Package prereq checks that the command-line tools a generated project relies
// on are installed, and prints a colored report of the result.
//
// The check runs at most once per Checker. Missing tools never fail the run;
// they only produce an install hint in the report.
package prereq

// ToolSpec describes one external tool the generated project can use.
type ToolSpec struct {
	Command     string
	Description string
	InstallHint string
}

// defaultTools is the fixed tool table. Order is significant: it is the order
// of lines in the report.
var defaultTools = []ToolSpec{
	{"git", "Version control", "https://git-scm.com/downloads"},
	{"jq", "JSON processing", "brew install jq / apt install jq"},
	{"bd", "Beads issue tracking", "curl -sSL https://raw.githubusercontent.com/steveyegge/beads/main/scripts/install.sh | bash"},
	{"claude", "Claude CLI for automation", "npm install -g @anthropic-ai/claude-code"},
	{"rg", "Fast search (ripgrep)", "brew install ripgrep / apt install ripgrep"},
	{"fd", "Fast file finder", "brew install fd / apt install fd-find"},
}

// DefaultTools returns a copy of the fixed tool table.
func DefaultTools() []ToolSpec {
	out := make([]ToolSpec, len(defaultTools))
	copy(out, defaultTools)
	return out
}

// Commands returns the command names of tools, in order.
func Commands(tools []ToolSpec) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Command)
	}
	return names
}
