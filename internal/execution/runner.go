package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"goldrun/internal/domain"
)

// Runner executes the subject program for a single case input
type Runner struct {
	subject string
	stderr  io.Writer
}

// NewRunner creates a new Runner. The subject's stderr is forwarded to
// stderr; a nil writer discards it.
func NewRunner(subject string, stderr io.Writer) *Runner {
	if stderr == nil {
		stderr = io.Discard
	}
	return &Runner{subject: subject, stderr: stderr}
}

// Invoke runs "<subject> <inputPath>", waits for it to exit and returns its
// stdout with carriage returns removed. The exit status is ignored so that
// snapshots can record error output; only a failure to launch is an error.
func (r *Runner) Invoke(ctx context.Context, inputPath string) (string, error) {
	cmd := exec.CommandContext(ctx, r.subject, inputPath)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrSubjectUnavailable, r.subject, err)
		}
	}

	return Normalize(stdout.String()), nil
}

// Normalize strips every carriage return so snapshots do not depend on
// platform line endings
func Normalize(output string) string {
	return strings.ReplaceAll(output, "\r", "")
}
