package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/juno-cash/junoup/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes: 0 when versions match, 1 when they differ, 2 on any failure
// that prevented the comparison.
func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}
	if errors.Is(err, cli.ErrVersionMismatch) {
		// The comparison report is already on stdout.
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(2)
}
