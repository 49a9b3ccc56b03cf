// Package version extracts daemon version strings from command output and
// compares them against release tags.
package version

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// pattern matches the first version-looking token in arbitrary output,
// with or without a leading "v" (e.g. "v1.0.77" or "2.1.0").
var pattern = regexp.MustCompile(`v?\d+\.\d+\.\d+`)

// Extract pulls the first version token out of raw command output. When
// nothing matches, the whole trimmed output is returned so that daemons
// with opaque version schemes still compare by plain equality.
func Extract(output string) string {
	output = strings.TrimSpace(output)
	if m := pattern.FindString(output); m != "" {
		return m
	}
	return output
}

// Normalize reduces a version string to its comparable form: surrounding
// whitespace is trimmed and any leading "v" runes are stripped, so "v1.2.3",
// "1.2.3" and " v1.2.3\n" all become "1.2.3". Normalizing an already
// normalized string returns it unchanged.
func Normalize(s string) string {
	// Interleaved runs like "v v1.2.3" need repeated stripping, so trim
	// until the string stops changing.
	for {
		trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "v"))
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// Equal reports whether two version strings match after Normalize. No
// ordering is implied; "1.10.0" and "1.9.0" are simply not equal.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsSemantic reports whether s parses as a semantic version after Normalize.
// Callers use this to flag comparisons that degraded to opaque strings.
func IsSemantic(s string) bool {
	_, err := semver.NewVersion(Normalize(s))
	return err == nil
}
