// Package platform provides cross-platform filesystem operations for
// permission management. On Unix systems it uses chmod directly. On Windows,
// where Unix-style permission bits do not exist, the operations degrade to
// no-ops so callers can stay platform-agnostic.
package platform
