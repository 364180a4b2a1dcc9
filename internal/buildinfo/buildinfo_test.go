package buildinfo

import (
	"testing"

	"github.com/flarebyte/toy-robot/cli"
)

func TestCurrentFallsBackToCLI(t *testing.T) {
	oldV, oldD, oldCV, oldCD := Version, Date, cli.Version, cli.Date
	defer func() { Version, Date, cli.Version, cli.Date = oldV, oldD, oldCV, oldCD }()

	Version, Date = "", ""
	cli.Version, cli.Date = "0.9.0", "2026-10-01"
	got := Current()
	if got.Version != "0.9.0" || got.Date != "2026-10-01" {
		t.Fatalf("unexpected info: %+v", got)
	}

	cli.Version = ""
	if Current().Version != "dev" {
		t.Fatalf("expected dev fallback")
	}
}

func TestInfoString(t *testing.T) {
	i := Info{Version: "1.0.0", Commit: "0123456789"}
	if got := i.String(); got != "1.0.0 (commit=0123456)" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := (Info{Version: "dev"}).String(); got != "dev" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
