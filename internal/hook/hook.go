// Package hook adapts a template-host invocation to the prerequisite checker.
//
// The host hands over its context mapping as a YAML or JSON document and reads
// back the context this hook contributes, which is always empty.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/CodexForgeBR/template-prereqs/internal/prereq"
)

// ContextHook is implemented by anything the host can call with its context.
type ContextHook interface {
	OnContextReady(ctx map[string]any) map[string]any
}

// Default returns the process-wide checker, so every caller in one process
// shares a single "already ran" flag.
var Default = sync.OnceValue(func() *prereq.Checker {
	return prereq.New()
})

// Invoke calls h with ctx and returns the context it contributes.
func Invoke(h ContextHook, ctx map[string]any) map[string]any {
	if ctx == nil {
		ctx = map[string]any{}
	}
	out := h.OnContextReady(ctx)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// LoadContext reads the host context from path. An empty path or "-" reads
// stdin. JSON input is accepted since it is valid YAML. An empty document
// yields an empty context.
func LoadContext(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}

	ctx := map[string]any{}
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}
	if ctx == nil {
		ctx = map[string]any{}
	}
	return ctx, nil
}

// WriteContext writes ctx to w as a single JSON object.
func WriteContext(w io.Writer, ctx map[string]any) error {
	if ctx == nil {
		ctx = map[string]any{}
	}
	if err := json.NewEncoder(w).Encode(ctx); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	return nil
}
