package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/template-prereqs/internal/cli"
	"github.com/CodexForgeBR/template-prereqs/internal/config"
	"github.com/CodexForgeBR/template-prereqs/internal/exitcode"
	"github.com/CodexForgeBR/template-prereqs/internal/logging"
	"github.com/CodexForgeBR/template-prereqs/internal/prereq"
)

// setup isolates config lookup from the user's machine and parses args.
func setup(t *testing.T, args ...string) (*cobra.Command, *config.Config) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var logs bytes.Buffer
	logging.SetOutput(&logs)
	t.Cleanup(func() { logging.SetOutput(nil) })

	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "template-prereqs"}
	cli.BindFlags(cmd, cfg)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, cfg
}

func fakeChecker(out *bytes.Buffer, present ...string) *prereq.Checker {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return prereq.New(
		prereq.WithLookup(func(c string) bool { return set[c] }),
		prereq.WithOutput(out),
	)
}

func TestRun_AllPresent(t *testing.T) {
	cmd, cfg := setup(t)
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out, "git", "jq", "bd", "claude", "rg", "fd"), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out.String(), "All prerequisites installed!")
}

func TestRun_MissingIsNotAnErrorByDefault(t *testing.T) {
	cmd, cfg := setup(t)
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out.String(), "Missing 6 tool(s).")
}

func TestRun_StrictMissing(t *testing.T) {
	cmd, cfg := setup(t, "--strict")
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out, "git"), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, exitcode.MissingTools, code)
}

func TestRun_StrictFromProjectConfig(t *testing.T) {
	cmd, cfg := setup(t)
	require.NoError(t, os.WriteFile(config.ProjectConfigFile, []byte("STRICT=true\n"), 0644))
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, exitcode.MissingTools, code)
}

func TestRun_ContextInAndOut(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "context.json")
	cmd, cfg := setup(t, "--context", "-", "--output", outPath)
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out), strings.NewReader("project_name: demo\n"))

	require.NoError(t, err)
	assert.Equal(t, exitcode.Success, code)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestRun_BadContext(t *testing.T) {
	cmd, cfg := setup(t, "--context", "-")
	var out bytes.Buffer

	code, err := run(cmd, cfg, fakeChecker(&out), strings.NewReader("- not\n- a mapping\n"))

	require.Error(t, err)
	assert.Equal(t, exitcode.Error, code)
	assert.Empty(t, out.String(), "no report when the host context is unreadable")
}

func TestRun_ReportsOncePerChecker(t *testing.T) {
	var out bytes.Buffer
	checker := fakeChecker(&out, "git")

	for i := 0; i < 3; i++ {
		cmd, cfg := setup(t)
		_, err := run(cmd, cfg, checker, strings.NewReader(""))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, strings.Count(out.String(), "Checking prerequisites..."))
}
