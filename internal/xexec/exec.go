// Package xexec contains extended os/exec utilities.
package xexec

import (
	"os"
	"os/exec"
)

// Attached returns a command whose stdio is wired to the host
// process's, so the tool's own output reaches the terminal unchanged.
func Attached(prog string, args ...string) *exec.Cmd {
	cmd := exec.Command(prog, args...)
	Attach(cmd)
	return cmd
}

func Attach(cmd *exec.Cmd) {
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	cmd.Stdin = os.Stdin
}
