// Package buildinfo exposes version metadata for the CLI. Values are set at
// build time via -ldflags; Version and Date fall back to the cli package.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/toy-robot/cli"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
	BuiltBy = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
}

// Current resolves the ldflags values and their fallbacks.
func Current() Info {
	i := Info{Version: Version, Commit: Commit, Date: Date, BuiltBy: BuiltBy}
	if i.Version == "" {
		i.Version = cli.Version
	}
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Date == "" {
		i.Date = cli.Date
	}
	return i
}

// ShortCommit returns the first 7 characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String renders e.g. "1.2.3 (commit=abcdef0, date=2026-10-17)".
func (i Info) String() string {
	parts := make([]string, 0, 2)
	if c := i.ShortCommit(); c != "" {
		parts = append(parts, "commit="+c)
	}
	if i.Date != "" {
		parts = append(parts, "date="+i.Date)
	}
	if len(parts) == 0 {
		return i.Version
	}
	return i.Version + " (" + strings.Join(parts, ", ") + ")"
}

// Summary returns a concise single-line version string.
func Summary() string {
	return Current().String()
}
