package run

import "testing"

func assertExitError(t *testing.T, err error, wantMsg string, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != wantMsg {
		t.Fatalf("unexpected error: %v", err)
	}
	ec, ok := err.(interface{ ExitCode() int })
	if !ok || ec.ExitCode() != wantCode {
		t.Fatalf("unexpected exit code")
	}
}

func TestEvaluateRunExit_DefaultIgnoresFailures(t *testing.T) {
	sum := summary{total: 3, rejected: 1, ignored: 2}
	if err := evaluateRunExit(sum, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvaluateRunExit_FailOnError_Clean(t *testing.T) {
	sum := summary{total: 2, applied: 1, reported: 1}
	if err := evaluateRunExit(sum, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvaluateRunExit_FailOnError_Rejected(t *testing.T) {
	sum := summary{total: 4, applied: 1, rejected: 2, ignored: 1}
	assertExitError(t, evaluateRunExit(sum, true), "rejected commands: 3", exitCodeRejected)
}
