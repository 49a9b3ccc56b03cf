package version

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DetectTimeout bounds how long the daemon may take to answer --version.
const DetectTimeout = 30 * time.Second

// Detect runs the binary at path with --version and returns the version
// token extracted from its output. Stdout is preferred; stderr is used when
// stdout is empty, because some daemons print their banner there. A non-zero
// exit is tolerated; only failing to start or timing out is an error.
func Detect(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DetectTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("timed out waiting for %s --version", path)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("running %s --version: %w", path, err)
		}
		// Exited non-zero: fall through and mine whatever it printed.
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		out = strings.TrimSpace(stderr.String())
	}
	// A silent binary yields an empty version; the comparison downstream
	// then reports a mismatch rather than aborting here.
	return Extract(out), nil
}
