package run

import "fmt"

const exitCodeRejected = 2

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }

// evaluateRunExit turns command failures into a non-zero exit only when
// --fail-on-error is set. Otherwise a run that consumed its input succeeds.
func evaluateRunExit(sum summary, failOnError bool) error {
	if !failOnError {
		return nil
	}
	if n := sum.failed(); n > 0 {
		return runExitError{code: exitCodeRejected, msg: fmt.Sprintf("rejected commands: %d", n)}
	}
	return nil
}
