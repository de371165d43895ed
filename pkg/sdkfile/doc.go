// SPDX-License-Identifier: MPL-2.0

// Package sdkfile parses the Strand distribution's bundled library metadata
// file ("libraries.cue"). The file declares, in CUE, every standard library
// the distribution ships: its scheme-prefixed identifier, its source
// location relative to the metadata file's directory, and optional category
// and platform metadata.
//
// Declaration order in the file is preserved through decoding; catalog
// construction relies on it for deterministic iteration order.
package sdkfile
