package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// luaSource runs a script whose place/move/left/right/report/command calls
// each append one raw command line. The lines are parsed like any text input.
type luaSource struct {
	path string
	opts LuaOptions
}

func (s luaSource) Name() string { return s.path }

// Each runs the whole script before the first line is handed on; a script
// that fails emits nothing.
func (s luaSource) Each(ctx context.Context, fn func(string) error) error {
	code, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	lines, err := RunScript(ctx, string(code), s.opts)
	if err != nil {
		return fmt.Errorf("lua %s: %w", s.path, err)
	}
	for _, line := range lines {
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

// ErrTooManyCommands is returned when a script emits more than MaxCommands lines.
var ErrTooManyCommands = errors.New("command limit exceeded")

// ErrScriptTimeout is returned when a script runs past its timeout.
var ErrScriptTimeout = errors.New("script timeout")

// RunScript executes code in a state with only the base, string, table and
// math libraries and returns the emitted command lines.
func RunScript(ctx context.Context, code string, opts LuaOptions) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	L := newSandboxState()
	defer L.Close()
	L.SetContext(ctx)

	em := &emitter{max: opts.MaxCommands}
	em.install(L)

	fn, err := L.LoadString(code)
	if err != nil {
		return nil, fmt.Errorf("%s", sanitize(err.Error()))
	}
	L.Push(fn)
	if err := L.PCall(0, 0, nil); err != nil {
		switch {
		case em.overflow:
			return nil, fmt.Errorf("%w: %d", ErrTooManyCommands, em.max)
		case ctx.Err() != nil:
			return nil, ErrScriptTimeout
		default:
			return nil, fmt.Errorf("%s", sanitize(err.Error()))
		}
	}
	return em.lines, nil
}

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.StringLibName, lua.OpenString)
	openLib(lua.TabLibName, lua.OpenTable)
	openLib(lua.MathLibName, lua.OpenMath)
	// base pulls in file loaders; scripts only emit commands.
	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

type emitter struct {
	max      int
	lines    []string
	overflow bool
}

func (e *emitter) install(L *lua.LState) {
	L.SetGlobal("place", L.NewFunction(e.place))
	L.SetGlobal("command", L.NewFunction(e.command))
	for _, kw := range []string{"MOVE", "LEFT", "RIGHT", "REPORT"} {
		L.SetGlobal(strings.ToLower(kw), L.NewFunction(e.keyword(kw)))
	}
}

func (e *emitter) emit(L *lua.LState, line string) {
	if e.max > 0 && len(e.lines) >= e.max {
		e.overflow = true
		L.RaiseError("command limit exceeded")
		return
	}
	e.lines = append(e.lines, line)
}

// place(x, y, f) emits "PLACE x,y,f". Arguments are not validated here so a
// script can exercise the same rejections as a text file.
func (e *emitter) place(L *lua.LState) int {
	parts := make([]string, 3)
	for i := range parts {
		parts[i] = L.ToString(i + 1)
	}
	e.emit(L, "PLACE "+strings.Join(parts, ","))
	return 0
}

// command(line) emits line verbatim. Embedded line terminators split it into
// several commands, as they would in a text file.
func (e *emitter) command(L *lua.LState) int {
	s := strings.ReplaceAll(L.CheckString(1), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	for _, line := range strings.Split(s, "\n") {
		e.emit(L, line)
	}
	return 0
}

func (e *emitter) keyword(kw string) lua.LGFunction {
	return func(L *lua.LState) int {
		e.emit(L, kw)
		return 0
	}
}

func sanitize(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}
