package release

import "strings"

// archMarkers identify an amd64 build in an asset filename. Names are
// lowercased before matching.
var archMarkers = []string{"amd64", "x86_64", "linux64"}

// checksumSuffixes mark companion files that are never installable.
var checksumSuffixes = []string{".sha256", ".md5", ".sig", ".asc"}

// SelectLinuxAMD64 picks the installable Linux amd64 asset from a release.
// Checksum and signature companions are skipped, and a non-debug build is
// preferred when the release ships both. ok is false when no asset matches;
// callers decide whether that is fatal.
func SelectLinuxAMD64(assets []Asset) (asset *Asset, ok bool) {
	var candidates []*Asset
	for i := range assets {
		name := strings.ToLower(assets[i].Name)
		if !strings.Contains(name, "linux") || !hasArchMarker(name) {
			continue
		}
		if hasChecksumSuffix(name) {
			continue
		}
		candidates = append(candidates, &assets[i])
	}
	if len(candidates) == 0 {
		return nil, false
	}

	for _, a := range candidates {
		if !strings.Contains(strings.ToLower(a.Name), "debug") {
			return a, true
		}
	}
	// Only debug builds on offer.
	return candidates[0], true
}

func hasArchMarker(name string) bool {
	for _, m := range archMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func hasChecksumSuffix(name string) bool {
	for _, s := range checksumSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
