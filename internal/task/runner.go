package task

import (
	"os/exec"

	"golang.org/x/xerrors"

	"github.com/ninja-extra/nex/internal/xexec"
)

// Result is the outcome of running a task's invocation sequence.
// Code mirrors the exit status of the last invocation that ran.
type Result struct {
	Code int
	Err  error
}

// Runner executes a task's invocations one at a time, in declared
// order, stopping at the first failure.
type Runner struct {
	// Exec runs a single invocation. When nil, the invocation runs
	// attached to the host's stdio.
	Exec func(Invocation) error
	// Debugf, when set, receives a line for each invocation before it
	// runs.
	Debugf func(msg string, args ...interface{})
}

// Run executes t's invocations sequentially. The first non-zero exit
// aborts the remaining invocations and its status becomes the result's
// Code. A nil Err means every invocation succeeded.
func (r Runner) Run(t Task) Result {
	for _, inv := range t.Invocations {
		if r.Debugf != nil {
			r.Debugf("+ %v", inv)
		}
		err := r.exec(inv)
		if err != nil {
			return Result{
				Code: exitCode(err),
				Err:  xerrors.Errorf("%v: %w", inv, err),
			}
		}
	}
	return Result{}
}

func (r Runner) exec(inv Invocation) error {
	if r.Exec != nil {
		return r.Exec(inv)
	}
	return xexec.Attached(inv.Prog, inv.Args...).Run()
}

// exitCode maps an invocation error to the status the wrapper should
// exit with. A tool that ran and failed keeps its own status; anything
// else (e.g. the binary wasn't found) is a plain failure.
func exitCode(err error) int {
	var ee *exec.ExitError
	if xerrors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}
