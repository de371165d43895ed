// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types used by multiple domain
// packages (sdklib, sdkfile, discovery). These are foundation types that carry
// semantic meaning and validation but have no domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Scheme is the URI scheme for Strand standard-library identifiers.
	Scheme = "std"

	// SchemePrefix is the scheme plus separator, as it appears at the start
	// of every standard-library identifier (e.g., "std:core").
	SchemePrefix = Scheme + ":"
)

// ErrInvalidLibraryURI is the sentinel error wrapped by InvalidLibraryURIError.
var ErrInvalidLibraryURI = errors.New("invalid library URI")

type (
	// LibraryURI represents a scheme-prefixed standard-library identifier of
	// the form "std:<name>[/<relativePath>]". The portion before the first
	// "/" (scheme included) names the library; the optional remainder
	// addresses a file within the library's directory.
	LibraryURI string

	// InvalidLibraryURIError is returned when a LibraryURI value does not
	// start with the standard-library scheme prefix or names no library.
	InvalidLibraryURIError struct {
		Value LibraryURI
	}
)

// String returns the string representation of the LibraryURI.
func (u LibraryURI) String() string { return string(u) }

// IsValid returns whether the LibraryURI is valid. A valid URI starts with
// the "std:" prefix and has a non-empty library name.
func (u LibraryURI) IsValid() (bool, []error) {
	s := string(u)
	if !strings.HasPrefix(s, SchemePrefix) || len(s) == len(SchemePrefix) {
		return false, []error{&InvalidLibraryURIError{Value: u}}
	}
	if strings.HasPrefix(s[len(SchemePrefix):], "/") {
		return false, []error{&InvalidLibraryURIError{Value: u}}
	}
	return true, nil
}

// Split divides the URI into the library name (scheme included) and the
// relative path within the library. The relative path is empty when the URI
// addresses the library itself (e.g., "std:core").
func (u LibraryURI) Split() (name, relative string) {
	s := string(u)
	if idx := strings.Index(s, "/"); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

// Name returns the library name portion of the URI, scheme included.
func (u LibraryURI) Name() string {
	name, _ := u.Split()
	return name
}

// Error implements the error interface for InvalidLibraryURIError.
func (e *InvalidLibraryURIError) Error() string {
	return fmt.Sprintf("invalid library URI %q: must have the form %q", e.Value, SchemePrefix+"<name>[/<path>]")
}

// Unwrap returns ErrInvalidLibraryURI for errors.Is() compatibility.
func (e *InvalidLibraryURIError) Unwrap() error { return ErrInvalidLibraryURI }
