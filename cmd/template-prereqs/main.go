package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/template-prereqs/internal/cli"
	"github.com/CodexForgeBR/template-prereqs/internal/config"
	"github.com/CodexForgeBR/template-prereqs/internal/exitcode"
	"github.com/CodexForgeBR/template-prereqs/internal/hook"
	"github.com/CodexForgeBR/template-prereqs/internal/logging"
	"github.com/CodexForgeBR/template-prereqs/internal/prereq"
	"github.com/CodexForgeBR/template-prereqs/internal/term"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "template-prereqs",
		Short:   "Check the command-line tools a generated project relies on",
		Long:    "template-prereqs reports which of git, jq, bd, claude, rg and fd are on PATH, with install hints for the missing ones.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cfg); err != nil {
				return err
			}
			var err error
			code, err = run(cmd, cfg, hook.Default(), os.Stdin)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		os.Exit(exitcode.Error)
	}
	os.Exit(code)
}

// run loads config and the host context, invokes the checker once and writes
// the contributed context. It returns the process exit code.
func run(cmd *cobra.Command, flagCfg *config.Config, checker *prereq.Checker, stdin io.Reader) (int, error) {
	cfg, err := config.LoadWithPrecedence(
		config.GlobalConfigPath(),
		config.ProjectConfigFile,
		flagCfg.ConfigFile,
		cli.BuildOverrides(cmd, flagCfg),
	)
	if err != nil {
		return exitcode.Error, fmt.Errorf("load config: %w", err)
	}

	logging.SetVerbose(cfg.Verbose)
	color.NoColor = !term.ColorEnabled(os.Stdout, cfg.NoColor)

	ctx := map[string]any{}
	if cfg.ContextFile != "" {
		ctx, err = hook.LoadContext(cfg.ContextFile, stdin)
		if err != nil {
			return exitcode.Error, err
		}
		logging.Debug(fmt.Sprintf("loaded %d context keys from %s", len(ctx), cfg.ContextFile))
	}

	contributed := hook.Invoke(checker, ctx)

	if cfg.OutputFile != "" {
		if err := writeContextFile(cfg.OutputFile, contributed); err != nil {
			return exitcode.Error, err
		}
	}

	report, _ := checker.Report()
	missing := report.MissingCount()
	code := exitcode.ForMissing(missing, cfg.Strict)
	if code != exitcode.Success {
		logging.Warn(fmt.Sprintf("%d tool(s) missing in strict mode", missing))
	}
	return code, nil
}

func writeContextFile(path string, ctx map[string]any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := hook.WriteContext(f, ctx); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
