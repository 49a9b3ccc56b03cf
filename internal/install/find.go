package install

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindBinary locates the daemon binary under root. Release archives differ
// in layout, so the search runs in priority order: the exact name at the
// root, the exact name anywhere, the debug-build "<name>.dbg" convention,
// and finally any file containing the name with no extension or a .dbg one.
func FindBinary(root, name string) (string, error) {
	direct := filepath.Join(root, name)
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	if p := findFile(root, func(n string) bool { return n == name }); p != "" {
		return p, nil
	}
	if p := findFile(root, func(n string) bool { return n == name+".dbg" }); p != "" {
		return p, nil
	}
	if p := findFile(root, func(n string) bool {
		if !strings.Contains(n, name) {
			return false
		}
		ext := filepath.Ext(n)
		return ext == "" || ext == ".dbg"
	}); p != "" {
		return p, nil
	}

	return "", fmt.Errorf("binary %s not found in archive", name)
}

// findFile walks root and returns the first regular file whose base name
// satisfies match, or "" if none does. Symlinks count when they resolve to
// regular files; archives sometimes ship the binary as a versioned file
// plus a convenience link.
func findFile(root string, match func(string) bool) string {
	var found string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			if d.Type()&fs.ModeSymlink == 0 {
				return nil
			}
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				return nil
			}
		}
		if match(d.Name()) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}
