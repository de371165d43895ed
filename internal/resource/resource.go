// SPDX-License-Identifier: MPL-2.0

// Package resource defines the minimal file-access capability the catalog
// engine consumes, with a production implementation over the OS filesystem
// and an in-memory implementation for hermetic tests.
//
// Path arithmetic lives on Style rather than on the access implementations,
// so the locator and builders can be exercised under a simulated foreign
// path convention (e.g., Windows paths on a POSIX host).
package resource

import (
	"strand-sdk/pkg/types"
)

// Access is the read-only file capability the engine depends on but does not
// implement itself. All reads are blocking, one-shot calls; the engine never
// retries them.
type Access interface {
	// ReadFile returns the file's contents as bytes.
	ReadFile(path types.FilesystemPath) ([]byte, error)

	// ReadText returns the file's contents as a string.
	ReadText(path types.FilesystemPath) (string, error)

	// Exists reports whether a file or directory exists at the path.
	Exists(path types.FilesystemPath) bool

	// List returns the names of the direct children of a directory.
	List(dir types.FilesystemPath) ([]string, error)
}
