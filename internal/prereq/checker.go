package prereq

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/CodexForgeBR/template-prereqs/internal/logging"
)

// Checker runs the prerequisite check and prints its report.
//
// A Checker reports at most once. Construct one per process (or per test) and
// call OnContextReady as often as the host likes.
type Checker struct {
	tools  []ToolSpec
	lookup LookupFunc
	out    io.Writer

	mu        sync.Mutex
	checksRun bool
	report    Report
}

// Option configures a Checker.
type Option func(*Checker)

// WithTools replaces the tool table.
func WithTools(tools []ToolSpec) Option {
	return func(c *Checker) {
		c.tools = append([]ToolSpec(nil), tools...)
	}
}

// WithLookup replaces the PATH lookup, mainly for tests.
func WithLookup(lookup LookupFunc) Option {
	return func(c *Checker) {
		if lookup != nil {
			c.lookup = lookup
		}
	}
}

// WithOutput sets where the report is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		if w != nil {
			c.out = w
		}
	}
}

// New returns a Checker for DefaultTools that looks tools up on PATH and
// writes to stdout.
func New(opts ...Option) *Checker {
	c := &Checker{
		tools:  DefaultTools(),
		lookup: IsAvailable,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnContextReady is the template-host entry point. The first call checks
// every tool and prints the report; later calls do nothing.
//
// The host context is never read, and the returned context is always a new
// empty map so the host's variables are left untouched.
func (c *Checker) OnContextReady(_ map[string]any) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checksRun {
		c.report = c.check()
		c.checksRun = true
		safeRender(c.out, c.report)
	}
	return map[string]any{}
}

// Ran reports whether the checks have run.
func (c *Checker) Ran() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checksRun
}

// Report returns the report from the first run, and false if the checks have
// not run yet.
func (c *Checker) Report() (Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report, c.checksRun
}

// safeRender writes the report and drops a panic from the writer.
func safeRender(w io.Writer, r Report) {
	defer func() {
		if p := recover(); p != nil {
			logging.Debug(fmt.Sprintf("render report: %v", p))
		}
	}()
	Render(w, r)
}

func (c *Checker) check() Report {
	found := CheckAvailability(c.lookup, Commands(c.tools)...)
	results := make([]Result, 0, len(c.tools))
	for _, t := range c.tools {
		results = append(results, Result{Tool: t, Found: found[t.Command]})
	}
	return Report{Results: results}
}
