// SPDX-License-Identifier: MPL-2.0

// Package sdklib holds the data model and resolution algorithms for the
// Strand standard-library catalog.
//
// A Catalog maps scheme-prefixed library identifiers ("std:core") to Library
// descriptors that record where each library's source lives. The Resolver
// turns identifiers into source locations (forward resolution) and source
// locations back into identifiers (reverse resolution); CachingResolver
// memoizes forward lookups.
//
// Catalogs are mutable during construction only. Once handed to a resolver
// for live use they are treated as read-only and are safe for concurrent
// reads; the caching resolver itself is not synchronized and expects
// single-threaded use.
package sdklib
