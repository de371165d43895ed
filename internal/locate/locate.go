// SPDX-License-Identifier: MPL-2.0

// Package locate finds a default SDK installation directory from the
// running executable's own path. This is a heuristic for the common
// distribution layouts; when it fails, callers fall back to requiring an
// explicit path.
package locate

import (
	"strand-sdk/internal/resource"
	"strand-sdk/pkg/sdkfile"
	"strand-sdk/pkg/types"
)

const (
	// maxLevels is how many directories above the executable's own the
	// search climbs.
	maxLevels = 2

	// builtOutputDirName is the sibling directory a built distribution
	// places the SDK under, next to its binaries.
	builtOutputDirName = "sdk"
)

// FindRoot derives a candidate SDK root from the executable's resolved
// path. It strips the filename, then walks upward checking two layouts at
// each level: the directory being an SDK root itself (a source checkout),
// and the directory holding an "sdk" child (a built distribution). The
// first candidate that carries the library metadata file wins. False means
// no layout matched, which is a normal outcome.
//
// Path arithmetic goes through the injected style, so the search is
// testable under a simulated foreign path convention.
func FindRoot(execPath types.FilesystemPath, style resource.Style, res resource.Access) (types.FilesystemPath, bool) {
	dir := style.Dir(style.Normalize(execPath))

	for level := 0; level <= maxLevels; level++ {
		if isRoot(dir, style, res) {
			return dir, true
		}
		built := style.Join(string(dir), builtOutputDirName)
		if isRoot(built, style, res) {
			return built, true
		}

		parent := style.Dir(dir)
		if parent == dir || parent == "." {
			break
		}
		dir = parent
	}

	return "", false
}

// isRoot reports whether dir carries the bundled library metadata file at
// its conventional location.
func isRoot(dir types.FilesystemPath, style resource.Style, res resource.Access) bool {
	return res.Exists(style.Join(string(dir), "lib", sdkfile.MetadataFileName))
}
