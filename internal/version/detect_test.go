package version

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// writeScript creates an executable shell script that stands in for a daemon
// binary during tests.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	tmp := t.TempDir()

	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{"stdout version", `echo "junocashd v1.0.77"`, "v1.0.77"},
		{"stderr fallback", `echo "v2.0.0" >&2`, "v2.0.0"},
		{"stdout preferred over stderr", `echo "v1.1.1"; echo "v9.9.9" >&2`, "v1.1.1"},
		{"nonzero exit with output", `echo "v3.1.4"; exit 1`, "v3.1.4"},
		{"no match uses whole output", `echo "development build"`, "development build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tmp, strings.ReplaceAll(tt.name, " ", "-"), tt.script)
			got, err := Detect(context.Background(), path)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Detect = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectNoOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	path := writeScript(t, t.TempDir(), "silent", "exit 0")
	got, err := Detect(context.Background(), path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got != "" {
		t.Errorf("Detect = %q, want empty version for silent binary", got)
	}
}

func TestDetectMissingBinary(t *testing.T) {
	if _, err := Detect(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing binary, got nil")
	}
}

func TestDetectTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	path := writeScript(t, t.TempDir(), "hang", "sleep 10")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := Detect(ctx, path)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %v, want mention of timeout", err)
	}
}
