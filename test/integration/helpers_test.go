//go:build integration

package integration_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/juno-cash/junoup/internal/release"
)

// fakeDaemonScript returns a shell script that answers --version the way
// the real daemon does.
func fakeDaemonScript(version string) string {
	return "#!/bin/sh\necho \"Juno daemon version " + version + "\"\n"
}

// writeDaemon installs a fake daemon script at path.
func writeDaemon(t *testing.T, path, version string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating daemon dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(fakeDaemonScript(version)), 0755); err != nil {
		t.Fatalf("writing daemon script: %v", err)
	}
}

// buildArchive creates a tar.gz archive with the given files, keyed by path
// inside the archive.
func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		if err := tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0755,
			Size: int64(len(content)),
		}); err != nil {
			t.Fatalf("writing tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("writing tar content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// startReleaseServer serves a GitHub-shaped latest-release document for
// repo and the referenced asset archives. Asset download URLs point back
// at this server.
func startReleaseServer(t *testing.T, repo, tag string, archives map[string][]byte) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/"+repo+"/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		rel := release.Release{TagName: tag}
		for name := range archives {
			rel.Assets = append(rel.Assets, release.Asset{
				Name:        name,
				DownloadURL: srv.URL + "/dl/" + name,
			})
		}
		json.NewEncoder(w).Encode(rel)
	})
	mux.HandleFunc("/dl/", func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Base(r.URL.Path)
		data, ok := archives[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(data)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// requirePOSIX skips tests that need a shell to run fake daemon scripts.
func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake daemon scripts require a POSIX shell")
	}
}

// assertExecutable fails the test if path is missing or lacks execute bits.
func assertExecutable(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected binary to exist: %s (error: %v)", path, err)
		return
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		t.Errorf("expected %s to be executable, mode is %o", path, info.Mode().Perm())
	}
}
