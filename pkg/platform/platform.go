// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes OS name constants and Windows path conventions
// (drive letters) so the locator and configuration layers can reason about
// foreign path styles without scattering string literals.
package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// HasDriveLetter reports whether the path starts with a Windows drive-letter
// prefix such as "C:".
func HasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// NormalizeDriveLetter lowercases a leading Windows drive letter so that
// paths differing only in drive-letter case compare equal. Paths without a
// drive prefix are returned unchanged.
func NormalizeDriveLetter(path string) string {
	if !HasDriveLetter(path) {
		return path
	}
	c := path[0]
	if 'A' <= c && c <= 'Z' {
		return string(c-'A'+'a') + path[1:]
	}
	return path
}
