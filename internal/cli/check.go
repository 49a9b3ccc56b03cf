package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juno-cash/junoup/internal/install"
	"github.com/juno-cash/junoup/internal/platform"
	"github.com/juno-cash/junoup/internal/release"
	"github.com/juno-cash/junoup/internal/version"
)

// ErrVersionMismatch reports that the local daemon and the latest release
// disagree. Both versions were determined; they just differ. main translates
// it to its own exit code so scripts can tell a mismatch from a failure.
var ErrVersionMismatch = errors.New("version mismatch")

// checkOptions carries the resolved settings for one comparison run.
type checkOptions struct {
	repo       string
	binaryName string
	binaryPath string
	mirror     string
	apiBase    string // overridden in tests
	stdout     io.Writer
	stderr     io.Writer
}

// runCheck fetches the latest release, installs the daemon when it is
// missing locally, and compares the local version against the release tag.
// Progress goes to stderr; only the final verdict lands on stdout.
func runCheck(ctx context.Context, opts checkOptions) error {
	fmt.Fprintf(opts.stderr, "Fetching latest release from GitHub (%s)...\n", opts.repo)

	var clientOpts []release.Option
	if opts.mirror != "" {
		clientOpts = append(clientOpts, release.WithMirror(opts.mirror))
	}
	if opts.apiBase != "" {
		clientOpts = append(clientOpts, release.WithAPIBase(opts.apiBase))
	}
	client := release.NewClient(opts.repo, clientOpts...)

	rel, err := client.FetchLatest(ctx)
	if err != nil {
		return fmt.Errorf("fetching release: %w", err)
	}

	remote := rel.TagName
	if remote == "" {
		remote = "unknown"
	}
	fmt.Fprintf(opts.stderr, "Latest GitHub release: %s\n", remote)

	asset, haveAsset := release.SelectLinuxAMD64(rel.Assets)
	if haveAsset {
		fmt.Fprintf(opts.stderr, "Linux amd64 asset: %s\n", asset.Name)
	}

	// Install only when the binary is absent. A release without a matching
	// asset is fatal only on this path.
	binaryPath := opts.binaryPath
	if _, err := os.Stat(binaryPath); err != nil {
		fmt.Fprintf(opts.stderr, "\nBinary not found at '%s'\n", binaryPath)

		if !haveAsset {
			return fmt.Errorf("no Linux amd64 asset found in release")
		}

		target, err := filepath.Abs(binaryPath)
		if err != nil {
			return fmt.Errorf("resolving target path: %w", err)
		}

		ins := install.New(opts.binaryName, install.WithProgress(opts.stderr))
		if err := ins.Install(ctx, asset.DownloadURL, target); err != nil {
			return err
		}
		fmt.Fprintln(opts.stderr, "Cleaned up temporary files.")
		binaryPath = target
	}

	fmt.Fprintf(opts.stderr, "\nChecking local binary: %s\n", binaryPath)
	if !platform.IsExecutable(binaryPath) {
		fmt.Fprintf(opts.stderr, "Warning: %s is not executable\n", binaryPath)
	}

	local, err := version.Detect(ctx, binaryPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.stderr, "Local version: %s\n", local)

	if !version.IsSemantic(local) || !version.IsSemantic(remote) {
		fmt.Fprintln(opts.stderr, "Note: comparing non-semantic versions by plain string equality")
	}

	fmt.Fprintln(opts.stdout, "\n"+strings.Repeat("=", 50))
	if version.Equal(local, remote) {
		fmt.Fprintln(opts.stdout, "Versions match! You are up to date.")
		return nil
	}

	fmt.Fprintln(opts.stdout, "Version mismatch!")
	fmt.Fprintf(opts.stdout, "  Local:  %s\n", local)
	fmt.Fprintf(opts.stdout, "  Remote: %s\n", remote)
	return ErrVersionMismatch
}
