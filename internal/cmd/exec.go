package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nharms/gitfleet/internal/log"
)

// RunContext executes a command in dir with context support and verbose
// logging. A cancelled or expired context surfaces as the context error so
// callers can distinguish timeouts from command failures.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command in dir with context support and verbose
// logging, returning stdout. Stderr is folded into the error message when the
// command fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	out, err := Output(c)
	if err != nil {
		// Prefer the context error: a killed process reports a generic
		// "signal: killed" that would otherwise mask the timeout.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return out, nil
}

// Output executes a command and returns stdout, with stderr in error if it fails.
func Output(c *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	c.Stderr = &stderr
	out, err := c.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return out, nil
}
