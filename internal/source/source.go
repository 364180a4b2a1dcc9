// Package source reads the ordered list of raw command lines a run executes.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const maxLineBytes = 1 << 20

// Source yields every command line of one run, in order.
type Source interface {
	Name() string
	// Each calls fn for every line as soon as it is read. It stops at the
	// first error returned by fn, by the reader, or by ctx.
	Each(ctx context.Context, fn func(line string) error) error
}

// Options configure Open.
type Options struct {
	// Stdin is read when the path is empty or "-".
	Stdin io.Reader
	Lua   LuaOptions
}

// LuaOptions bound a Lua command script.
type LuaOptions struct {
	Timeout     time.Duration
	MaxCommands int
}

// Open picks a source for path: stdin for "" or "-", a Lua script for
// *.lua, a plain text file otherwise.
func Open(path string, opts Options) (Source, error) {
	switch {
	case path == "" || path == "-":
		if opts.Stdin == nil {
			return nil, fmt.Errorf("no stdin available")
		}
		return readerSource{name: "stdin", r: opts.Stdin}, nil
	case strings.EqualFold(filepath.Ext(path), ".lua"):
		return luaSource{path: path, opts: opts.Lua}, nil
	default:
		return fileSource{path: path}, nil
	}
}

// Scan calls fn for each line of r, split on "\n" or "\r\n". A final line
// terminator does not produce an extra empty line.
func Scan(ctx context.Context, r io.Reader, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Lines reads all of r with Scan.
func Lines(r io.Reader) ([]string, error) {
	lines := []string{}
	err := Scan(context.Background(), r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// scanSource wraps reader failures with the source name and passes callback
// errors through unchanged.
func scanSource(ctx context.Context, name string, r io.Reader, fn func(string) error) error {
	var cbErr error
	err := Scan(ctx, r, func(line string) error {
		if err := fn(line); err != nil {
			cbErr = err
			return err
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case cbErr != nil:
		return cbErr
	default:
		return fmt.Errorf("read %s: %w", name, err)
	}
}

type readerSource struct {
	name string
	r    io.Reader
}

func (s readerSource) Name() string { return s.name }

func (s readerSource) Each(ctx context.Context, fn func(string) error) error {
	return scanSource(ctx, s.name, s.r, fn)
}

type fileSource struct {
	path string
}

func (s fileSource) Name() string { return s.path }

func (s fileSource) Each(ctx context.Context, fn func(string) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	defer f.Close()
	return scanSource(ctx, s.path, f, fn)
}
