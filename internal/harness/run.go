// Package harness runs a program over a directory of test inputs and
// compares what it prints with expected output files.
package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// Result is the outcome of one process run. ExitCode is 0 on a normal
// exit, positive on a failure exit and minus the signal number when the
// process was killed by a signal.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Signaled reports whether the process was killed by a signal.
func (r Result) Signaled() bool { return r.ExitCode < 0 }

// SignalName returns the name of the killing signal, e.g. "SIGSEGV".
func (r Result) SignalName() string {
	if !r.Signaled() {
		return ""
	}
	sig := syscall.Signal(-r.ExitCode)
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}

// Run executes command with sh -c. When stdin is non-nil it is written to
// the process's standard input. The error is non-nil only when the process
// could not be run at all.
func Run(ctx context.Context, command string, stdin *string) (Result, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		res.ExitCode = 1
		return res, fmt.Errorf("run %q: %w", command, err)
	}
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		res.ExitCode = -int(ws.Signal())
		return res, nil
	}
	res.ExitCode = ee.ExitCode()
	return res, nil
}
