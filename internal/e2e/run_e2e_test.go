package e2e

import (
	"strings"
	"testing"

	"github.com/flarebyte/toy-robot/internal/testutil"
)

const mixedCommands = "MOVE\nPLACE 1,2,EAST\nMOVE\nMOVE\nLEFT\nMOVE\nREPORT\nJUMP\nMOVE\nMOVE\nREPORT\n"

func TestRun_Stdin(t *testing.T) {
	bin := buildToyRobot(t)
	r := runCmd(t, bin, "PLACE 0,0,NORTH\nMOVE\nREPORT\n", "run")
	if r.code != 0 || len(r.stderr) != 0 {
		t.Fatalf("code=%d stderr=%s", r.code, string(r.stderr))
	}
	if string(r.stdout) != "REPORT: 0, 1, NORTH\n" {
		t.Fatalf("unexpected stdout: %q", string(r.stdout))
	}
}

func TestRun_FileAndStdinAgree(t *testing.T) {
	bin := buildToyRobot(t)
	p := testutil.WriteFile(t, "commands.txt", mixedCommands)
	fromFile := runCmd(t, bin, "", "run", p)
	fromStdin := runCmd(t, bin, mixedCommands, "run", "-")
	assertStable(t, []runResult{fromFile, fromStdin})
	want := `"MOVE" is IGNORED: the first command has to be a valid PLACE command` + "\n" +
		"REPORT: 3, 3, NORTH\n" +
		`"JUMP" is IGNORED: not supported command` + "\n" +
		"ERROR: can not move the robot outside the allowed boundaries\n" +
		"REPORT: 3, 4, NORTH\n"
	if string(fromFile.stdout) != want {
		t.Fatalf("unexpected stdout\nwant: %q\n got: %q", want, string(fromFile.stdout))
	}
}

func TestDeterminism_MultiRuns(t *testing.T) {
	bin := buildToyRobot(t)
	for _, format := range []string{"text", "json", "yaml"} {
		var runs []runResult
		for i := 0; i < 5; i++ {
			runs = append(runs, runCmd(t, bin, mixedCommands, "run", "--format", format))
		}
		assertStable(t, runs)
	}
}

func TestRun_FailOnErrorExitCode(t *testing.T) {
	bin := buildToyRobot(t)
	r := runCmd(t, bin, mixedCommands, "run", "--fail-on-error")
	if r.code != 2 {
		t.Fatalf("expected exit 2, got %d", r.code)
	}
	if got := string(r.stderr); got != "rejected commands: 3\n" {
		t.Fatalf("unexpected stderr: %q", got)
	}
	if !strings.HasSuffix(string(r.stdout), "REPORT: 3, 4, NORTH\n") {
		t.Fatalf("all commands must run: %q", string(r.stdout))
	}
}

func TestRun_BadConfigSingleLineError(t *testing.T) {
	bin := buildToyRobot(t)
	cfg := testutil.WriteFile(t, "robot.cue", "configVersion: \"2\"\n")
	r := runCmd(t, bin, "REPORT\n", "run", "--config", cfg)
	if r.code != 1 || len(r.stdout) != 0 {
		t.Fatalf("code=%d stdout=%q", r.code, string(r.stdout))
	}
	got := string(r.stderr)
	if strings.Count(got, "\n") != 1 || !strings.Contains(got, "unsupported configVersion") {
		t.Fatalf("unexpected stderr: %q", got)
	}
}

func TestRun_VerboseLogsToStderrOnly(t *testing.T) {
	bin := buildToyRobot(t)
	quiet := runCmd(t, bin, mixedCommands, "run")
	loud := runCmd(t, bin, mixedCommands, "run", "--verbose")
	if string(quiet.stdout) != string(loud.stdout) {
		t.Fatalf("verbose must not change stdout")
	}
	if len(quiet.stderr) != 0 || !strings.Contains(string(loud.stderr), "command") {
		t.Fatalf("unexpected stderr\nquiet: %q\nloud: %q", string(quiet.stderr), string(loud.stderr))
	}
}
