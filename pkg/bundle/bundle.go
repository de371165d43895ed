// SPDX-License-Identifier: MPL-2.0

// Package bundle loads precompiled Strand SDK bundles.
//
// A bundle is a single binary artifact shipped inside the SDK distribution
// that carries precompiled standard-library state. The engine validates the
// artifact's header and hands the payload onward as an opaque handle; it
// never interprets the payload's contents.
//
// Artifact layout:
//   - bytes 0-3: magic "SDKB"
//   - byte 4:    format version
//   - bytes 5-:  opaque payload
package bundle

import (
	"errors"
	"fmt"
)

const (
	// Magic identifies a precompiled bundle artifact.
	Magic = "SDKB"

	// FormatVersion is the artifact format this loader understands.
	FormatVersion byte = 1

	// FileName is the conventional bundle location inside a distribution,
	// relative to the SDK root in slash form.
	FileName = "lib/_internal/strand_sdk.sb"

	headerSize = len(Magic) + 1
)

// ErrMalformedBundle is the sentinel error wrapped by MalformedBundleError.
var ErrMalformedBundle = errors.New("malformed bundle")

type (
	// Bundle is an opaque handle on a loaded precompiled bundle. The
	// payload belongs to the downstream consumer; this package only
	// guarantees the header checked out.
	Bundle struct {
		// Path is where the bundle was loaded from (informational).
		Path string

		// FormatVersion is the artifact's declared format version.
		FormatVersion byte

		// Payload is the opaque precompiled state.
		Payload []byte
	}

	// MalformedBundleError is returned when artifact content fails header
	// validation. It wraps ErrMalformedBundle for errors.Is() compatibility.
	MalformedBundleError struct {
		Path   string
		Reason string
	}
)

// Error implements the error interface for MalformedBundleError.
func (e *MalformedBundleError) Error() string {
	return fmt.Sprintf("malformed bundle at %s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrMalformedBundle for errors.Is() compatibility.
func (e *MalformedBundleError) Unwrap() error { return ErrMalformedBundle }

// LoadBytes validates the artifact header and returns the opaque handle.
// path is informational only and appears in errors.
func LoadBytes(data []byte, path string) (*Bundle, error) {
	if len(data) < headerSize {
		return nil, &MalformedBundleError{Path: path, Reason: "truncated header"}
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, &MalformedBundleError{Path: path, Reason: "bad magic"}
	}
	version := data[len(Magic)]
	if version != FormatVersion {
		return nil, &MalformedBundleError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported format version %d (loader understands %d)", version, FormatVersion),
		}
	}

	return &Bundle{
		Path:          path,
		FormatVersion: version,
		Payload:       data[headerSize:],
	}, nil
}
