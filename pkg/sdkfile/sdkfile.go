// SPDX-License-Identifier: MPL-2.0

package sdkfile

import (
	"errors"
	"fmt"

	"strand-sdk/pkg/sdklib"
	"strand-sdk/pkg/types"
)

// ErrInvalidSdkfile is the sentinel error wrapped by InvalidSdkfileError.
var ErrInvalidSdkfile = errors.New("invalid library metadata")

type (
	// Sdkfile is the decoded library metadata file.
	Sdkfile struct {
		// Libraries lists every declared library in declaration order.
		Libraries []LibraryEntry `json:"libraries"`

		// FilePath is where the metadata was read from (set by Parse).
		FilePath string `json:"-"`
	}

	// LibraryEntry is one declared library.
	LibraryEntry struct {
		// URI is the scheme-prefixed identifier (e.g. "std:core").
		URI string `json:"uri"`

		// Path is the library's main source file, relative to the metadata
		// file's directory, slash-separated.
		Path string `json:"path"`

		// Category is an optional grouping tag.
		Category string `json:"category,omitempty"`

		// Platforms is an optional applicability mask.
		Platforms uint32 `json:"platforms,omitempty"`
	}

	// InvalidSdkfileError is returned when a decoded metadata file violates
	// a structural rule the CUE schema cannot express.
	InvalidSdkfileError struct {
		FilePath string
		Reason   string
	}
)

// Error implements the error interface for InvalidSdkfileError.
func (e *InvalidSdkfileError) Error() string {
	return fmt.Sprintf("invalid library metadata at %s: %s", e.FilePath, e.Reason)
}

// Unwrap returns ErrInvalidSdkfile for errors.Is() compatibility.
func (e *InvalidSdkfileError) Unwrap() error { return ErrInvalidSdkfile }

// validate applies the structural rules the schema cannot express: every
// identifier must be a bare library URI with no relative-path portion.
func (f *Sdkfile) validate() error {
	for _, entry := range f.Libraries {
		uri := types.LibraryURI(entry.URI)
		if ok, _ := uri.IsValid(); !ok {
			return &InvalidSdkfileError{
				FilePath: f.FilePath,
				Reason:   fmt.Sprintf("entry %q is not a valid library identifier", entry.URI),
			}
		}
		if uri.Name() != entry.URI {
			return &InvalidSdkfileError{
				FilePath: f.FilePath,
				Reason:   fmt.Sprintf("entry %q must name a library, not a file within one", entry.URI),
			}
		}
	}
	return nil
}

// ToLibraries converts the declared entries into catalog descriptors in
// declaration order. Paths are passed through unchanged; callers that need
// root-relative paths prepend their prefix first.
func (f *Sdkfile) ToLibraries() []*sdklib.Library {
	libs := make([]*sdklib.Library, 0, len(f.Libraries))
	for _, entry := range f.Libraries {
		libs = append(libs, &sdklib.Library{
			ShortID:   entry.URI,
			Path:      entry.Path,
			Category:  entry.Category,
			Platforms: entry.Platforms,
		})
	}
	return libs
}
