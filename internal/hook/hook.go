// Package hook runs user-supplied Lua scripts at document boundaries. A hook
// script may define on_open(text) and on_save(text) functions; each receives
// the full document text and returns the (possibly rewritten) text. Missing
// scripts and missing functions are silent passthroughs.
package hook

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Hook function names recognized in a script.
const (
	OnOpen = "on_open"
	OnSave = "on_save"
)

// Runner executes hook functions from one script source. A nil Runner is
// valid and passes text through unchanged.
type Runner struct {
	source string
}

// Load reads a hook script from path. A missing path returns a nil Runner
// (hooks disabled), which is not an error.
func Load(path string) (*Runner, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load hook script %s: %w", path, err)
	}
	return &Runner{source: string(data)}, nil
}

// FromSource creates a Runner from an in-memory script.
func FromSource(source string) *Runner {
	return &Runner{source: source}
}

// Transform runs the named hook function with text. Each call uses a fresh
// Lua state so hooks cannot leak state between invocations. If the script
// does not define the function, or the function returns a non-string, the
// input text is returned unchanged.
func (r *Runner) Transform(name, text string) (string, error) {
	if r == nil || r.source == "" {
		return text, nil
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(r.source); err != nil {
		return text, fmt.Errorf("hook script error: %w", err)
	}

	fn := L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return text, nil
	}

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(text)); err != nil {
		return text, fmt.Errorf("hook %s failed: %w", name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	if s, ok := ret.(lua.LString); ok {
		return string(s), nil
	}
	return text, nil
}
