package e2e

import (
	"strings"
	"testing"

	"github.com/flarebyte/toy-robot/internal/testutil"
)

func TestLuaE2E_MatchesTextCommands(t *testing.T) {
	bin := buildToyRobot(t)
	script := testutil.WriteFile(t, "square.lua", `
place(0, 0, "NORTH")
for i = 1, 4 do
  move()
  right()
end
report()
`)
	r := runCmd(t, bin, "", "run", script)
	if r.code != 0 || len(r.stderr) != 0 {
		t.Fatalf("code=%d stderr=%s", r.code, string(r.stderr))
	}
	if string(r.stdout) != "REPORT: 0, 0, NORTH\n" {
		t.Fatalf("unexpected stdout: %q", string(r.stdout))
	}
}

func TestLuaE2E_InfiniteLoopTimesOut(t *testing.T) {
	bin := buildToyRobot(t)
	cfg := testutil.WriteFile(t, "robot.cue", "configVersion: \"1\"\nlua: timeoutMs: 20\n")
	script := testutil.WriteFile(t, "spin.lua", "while true do end\n")
	r := runCmd(t, bin, "", "run", "--config", cfg, script)
	if r.code != 1 || len(r.stdout) != 0 {
		t.Fatalf("code=%d stdout=%q", r.code, string(r.stdout))
	}
	if !strings.Contains(string(r.stderr), "script timeout") {
		t.Fatalf("unexpected stderr: %s", string(r.stderr))
	}
}

func TestLuaE2E_NoOSAccess(t *testing.T) {
	bin := buildToyRobot(t)
	script := testutil.WriteFile(t, "escape.lua", "os.execute(\"echo hi\")\n")
	r := runCmd(t, bin, "", "run", script)
	if r.code == 0 || len(r.stdout) != 0 {
		t.Fatalf("expected failure, code=%d stdout=%q", r.code, string(r.stdout))
	}
}
