// Package install downloads a release archive and places the daemon binary
// at its target path.
package install

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/juno-cash/junoup/internal/branding"
	"github.com/juno-cash/junoup/internal/platform"
)

// Installer fetches one release archive and installs the daemon binary
// found inside it.
type Installer struct {
	binaryName string
	httpClient *http.Client
	progress   io.Writer
}

// Option configures an Installer.
type Option func(*Installer)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ins *Installer) {
		ins.httpClient = c
	}
}

// WithProgress redirects download and status messages, which default to
// stderr so stdout stays reserved for the final comparison verdict.
func WithProgress(w io.Writer) Option {
	return func(ins *Installer) {
		ins.progress = w
	}
}

// New creates an Installer that looks for binaryName inside downloaded
// archives. Archives can be large, so the transfer client gets a generous
// timeout instead of the API client's 30 seconds.
func New(binaryName string, opts ...Option) *Installer {
	ins := &Installer{
		binaryName: binaryName,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
		progress: os.Stderr,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Install downloads the archive at url, extracts it into a scratch
// directory, locates the daemon binary, and copies it to targetPath with
// executable permissions. The scratch directory is removed before Install
// returns, on success and on every failure path.
func (ins *Installer) Install(ctx context.Context, url, targetPath string) error {
	scratch, err := os.MkdirTemp("", branding.CLIName()+"-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	archivePath, err := ins.download(ctx, url, scratch)
	if err != nil {
		return err
	}

	fmt.Fprintf(ins.progress, "Extracting to %s...\n", scratch)
	if err := extract(archivePath, scratch); err != nil {
		return err
	}

	// Remove the archive so it cannot shadow the binary search below.
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("removing archive: %w", err)
	}

	binPath, err := FindBinary(scratch, ins.binaryName)
	if err != nil {
		return err
	}
	if err := platform.Chmod(binPath, 0755); err != nil {
		return fmt.Errorf("marking binary executable: %w", err)
	}
	fmt.Fprintf(ins.progress, "Binary extracted to: %s\n", binPath)

	fmt.Fprintf(ins.progress, "Copying binary to %s...\n", targetPath)
	if dir := filepath.Dir(targetPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating target directory: %w", err)
		}
	}
	if err := copyFile(binPath, targetPath); err != nil {
		return fmt.Errorf("copying binary: %w", err)
	}
	// The scratch copy's permissions do not survive the copy.
	if err := platform.Chmod(targetPath, 0755); err != nil {
		return fmt.Errorf("marking installed binary executable: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
