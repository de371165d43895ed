// SPDX-License-Identifier: MPL-2.0

package sdklib

// Platform applicability bits for a library. A zero mask means the library
// is available everywhere.
const (
	// PlatformRuntime marks libraries usable from the native Strand runtime.
	PlatformRuntime uint32 = 1 << iota
	// PlatformWeb marks libraries usable from the web compiler backend.
	PlatformWeb
)

// Library describes one standard-library unit: a unique scheme-prefixed
// identifier and the source location it maps to, plus optional metadata.
//
// Library values are created during catalog construction and never modified
// afterwards; callers receiving a *Library from a Catalog must treat it as
// read-only.
type Library struct {
	// ShortID is the unique catalog key, scheme-prefixed (e.g. "std:core").
	ShortID string

	// Path is the library's main source location. Paths decoded from the
	// distribution metadata are catalog-relative in slash form; embedder
	// overlays register absolute paths.
	Path string

	// Category is an optional grouping tag (e.g. "Shared", "Internal").
	Category string

	// Platforms is an optional applicability mask built from the Platform*
	// bits. Zero means unrestricted.
	Platforms uint32
}

// Internal reports whether the library belongs to the distribution's
// internal category, which embedders should not map directly.
func (l *Library) Internal() bool {
	return l.Category == CategoryInternal
}

// SupportedOn reports whether the library is available for the given
// platform bit. A zero mask matches every platform.
func (l *Library) SupportedOn(platform uint32) bool {
	return l.Platforms == 0 || l.Platforms&platform != 0
}

// Library category tags, as they appear in the distribution metadata.
const (
	// CategoryShared marks libraries available to all consumers.
	CategoryShared = "Shared"
	// CategoryInternal marks implementation-detail libraries.
	CategoryInternal = "Internal"
)
