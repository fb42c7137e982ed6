package shell

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the process is killed
const waitDelay = 5 * time.Second

// CommandRunner locates and runs external programs
type CommandRunner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// LookPath searches PATH for file
func (r *ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes name with args, capturing stdout and stderr separately. The
// process is killed when ctx is done.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
