// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"path/filepath"
	"runtime"
	"strings"

	"strand-sdk/pkg/platform"
	"strand-sdk/pkg/types"
)

// Path style constants. StylePosix and StyleWindows implement their
// conventions independently of the host, which keeps path arithmetic
// testable under a simulated foreign style.
const (
	// StylePosix uses "/" separators and rooted absolute paths.
	StylePosix Style = iota
	// StyleWindows uses "\" separators (accepting "/") and drive letters.
	StyleWindows
)

// Style describes a path-separator and drive-letter convention.
type Style int

// NativeStyle returns the style matching the host platform.
func NativeStyle() Style {
	if runtime.GOOS == platform.Windows {
		return StyleWindows
	}
	return StylePosix
}

// Separator returns the style's primary path separator.
func (s Style) Separator() byte {
	if s == StyleWindows {
		return '\\'
	}
	return '/'
}

// Join joins path elements with the style's separator, skipping empties.
func (s Style) Join(elem ...string) types.FilesystemPath {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return types.FilesystemPath(strings.Join(parts, string(s.Separator())))
}

// Dir returns the directory portion of the path: everything before the final
// separator, or "." when the path has none.
func (s Style) Dir(path types.FilesystemPath) types.FilesystemPath {
	p := string(path)
	idx := strings.LastIndexByte(p, s.Separator())
	if s == StyleWindows {
		// Windows tooling accepts both separators.
		if alt := strings.LastIndexByte(p, '/'); alt > idx {
			idx = alt
		}
	}
	if idx < 0 {
		return "."
	}
	if idx == 0 {
		return types.FilesystemPath(p[:1])
	}
	return types.FilesystemPath(p[:idx])
}

// IsAbs reports whether the path is absolute under this style.
func (s Style) IsAbs(path types.FilesystemPath) bool {
	p := string(path)
	if s == StyleWindows {
		if platform.HasDriveLetter(p) {
			return len(p) > 2 && (p[2] == '\\' || p[2] == '/')
		}
		return strings.HasPrefix(p, `\\`)
	}
	return strings.HasPrefix(p, "/")
}

// Normalize canonicalizes the path for comparison: separators become the
// style's primary separator and a leading drive letter is lowercased.
func (s Style) Normalize(path types.FilesystemPath) types.FilesystemPath {
	p := string(path)
	if s == StyleWindows {
		p = strings.ReplaceAll(p, "/", `\`)
		p = platform.NormalizeDriveLetter(p)
	}
	return types.FilesystemPath(p)
}

// Resolve canonicalizes a possibly relative path against a base directory.
// Absolute paths are normalized and returned as-is; relative ones are joined
// onto base. For the native style the result additionally goes through
// filepath.Clean.
func (s Style) Resolve(base, path types.FilesystemPath) types.FilesystemPath {
	var out types.FilesystemPath
	if s.IsAbs(path) {
		out = s.Normalize(path)
	} else {
		out = s.Normalize(s.Join(string(base), string(path)))
	}
	if s == NativeStyle() {
		out = types.FilesystemPath(filepath.Clean(string(out)))
	}
	return out
}
