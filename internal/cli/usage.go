package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `template-prereqs - Check the tools a generated project relies on

USAGE
  template-prereqs [flags]

Checks git, jq, bd, claude, rg and fd on PATH and prints a report.
Missing tools never block project generation; the contributed context
is always empty.

FLAGS
  Host Context:
    --context <path|->                     Host context file, YAML or JSON (- for stdin)
    -o, --output <path>                    Write the contributed context as JSON

  Behavior:
    --strict                               Exit 2 when any tool is missing
    --config <path>                        Path to additional config file

  Output:
    --no-color                             Disable colored output (also NO_COLOR=1)
    -v, --verbose                          Log each PATH lookup to stderr

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

CONFIG FILES
  ~/.config/template-prereqs/config, ./.template-prereqs, then --config.
  KEY=VALUE lines; keys: VERBOSE, NO_COLOR, STRICT, CONTEXT_FILE, OUTPUT_FILE.

EXIT CODES
  0   Success              Report printed
  1   Error                Invalid arguments, unreadable config or context
  2   MissingTools         --strict and at least one tool is missing

EXAMPLES
  # Print the report
  template-prereqs

  # Run as a template hook with the answers file as context
  template-prereqs --context .copier-answers.yml --output /dev/null

  # Fail CI when a tool is missing
  template-prereqs --strict --no-color

For more information, see: https://github.com/CodexForgeBR/template-prereqs
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
