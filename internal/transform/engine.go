// Package transform applies text transforms to clipboard entries before
// paste-back: a few builtins plus user-supplied JavaScript files.
package transform

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/tidwall/pretty"
)

// Transform rewrites entry content.
type Transform struct {
	Name  string
	apply func(input string) (string, error)
}

// Engine holds the available transforms and runs scripts with a timeout.
type Engine struct {
	timeout    time.Duration
	transforms map[string]Transform
}

// NewEngine creates an engine with the builtin transforms registered.
func NewEngine(timeout time.Duration) *Engine {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	e := &Engine{
		timeout:    timeout,
		transforms: make(map[string]Transform),
	}
	for _, t := range builtins() {
		e.transforms[t.Name] = t
	}
	return e
}

func builtins() []Transform {
	return []Transform{
		{Name: "trim", apply: func(in string) (string, error) {
			return strings.TrimSpace(in), nil
		}},
		{Name: "uppercase", apply: func(in string) (string, error) {
			return strings.ToUpper(in), nil
		}},
		{Name: "lowercase", apply: func(in string) (string, error) {
			return strings.ToLower(in), nil
		}},
		{Name: "json-pretty", apply: func(in string) (string, error) {
			return string(pretty.Pretty([]byte(in))), nil
		}},
		{Name: "json-ugly", apply: func(in string) (string, error) {
			return string(pretty.Ugly([]byte(in))), nil
		}},
	}
}

// Names returns all transform names, sorted, for the command palette.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.transforms))
	for name := range e.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named transform on input.
func (e *Engine) Apply(name, input string) (string, error) {
	t, ok := e.transforms[name]
	if !ok {
		return "", fmt.Errorf("unknown transform %q", name)
	}
	return t.apply(input)
}

// RegisterScript adds a JavaScript transform. The script sees the entry
// content as the global `input` and its final expression value becomes the
// output text.
func (e *Engine) RegisterScript(name, script string) {
	e.transforms[name] = Transform{
		Name: name,
		apply: func(input string) (string, error) {
			return e.runScript(script, input)
		},
	}
}

func (e *Engine) runScript(script, input string) (string, error) {
	vm := goja.New()
	if err := vm.Set("input", input); err != nil {
		return "", fmt.Errorf("binding input: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	// Interrupt the VM if the script runs past the timeout.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("transform timeout exceeded")
		case <-done:
		}
	}()

	value, err := vm.RunString(script)
	close(done)

	if err != nil {
		return "", fmt.Errorf("transform script error: %w", err)
	}
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return "", fmt.Errorf("transform script produced no value")
	}
	return value.String(), nil
}
