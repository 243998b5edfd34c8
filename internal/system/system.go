package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) (stdout, stderr string, err error)
}

type NoopRunner struct{}

func (NoopRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	return "", "", nil
}

// ShellRunner executes commands via sudo and uses PATH to resolve scripts.
// It returns stdout, stderr, and an error if the command exits non-zero.
type ShellRunner struct {
	Logger logger
}

func (r ShellRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	fullArgs := append([]string{cmd}, args...)
	c := exec.CommandContext(ctx, "sudo", fullArgs...)
	var outBuf, errBuf bytes.Buffer
	c.Stdout = &outBuf
	c.Stderr = &errBuf
	err := c.Run()
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("system", "%s failed: %v", cmd, err)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return outBuf.String(), errBuf.String(), fmt.Errorf("exit %d: %w", exitErr.ExitCode(), err)
		}
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}
