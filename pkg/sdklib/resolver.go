// SPDX-License-Identifier: MPL-2.0

package sdklib

import (
	"path/filepath"
	"strings"

	"strand-sdk/pkg/types"
)

type (
	// Source is the outcome of a successful forward resolution: the
	// identifier the result is addressed by, the source location it maps
	// to, and the library that produced it.
	Source struct {
		// URI is the identifier the result is addressed by. This is the
		// requested identifier, except when the computed location is the
		// library's own main path; then the library's canonical ShortID is
		// used instead, so two spellings of the same file share one handle.
		URI string

		// Path is the resolved source location, in the same form as the
		// descriptor path it derives from.
		Path string

		// Library is the catalog entry the resolution went through.
		Library *Library
	}

	// Resolver implements forward (identifier to path) and reverse (path to
	// identifier) resolution over one catalog. It holds no mutable state;
	// wrap it in a CachingResolver to memoize forward lookups.
	Resolver struct {
		catalog *Catalog
		sep     byte
	}
)

// NewResolver creates a resolver over the catalog using the host platform's
// path separator convention.
func NewResolver(catalog *Catalog) *Resolver {
	return NewResolverWithSeparator(catalog, filepath.Separator)
}

// NewResolverWithSeparator creates a resolver that treats sep as the primary
// path separator. This keeps resolution testable under a simulated foreign
// path style; "/" always remains a recognized fallback.
func NewResolverWithSeparator(catalog *Catalog, sep byte) *Resolver {
	return &Resolver{catalog: catalog, sep: sep}
}

// Catalog returns the catalog this resolver reads from.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve maps a library identifier to its source location. A nil result
// means the identifier is unknown or cannot be turned into a path; both are
// expected outcomes, not errors.
func (r *Resolver) Resolve(uri types.LibraryURI) *Source {
	name, relative := uri.Split()

	lib, ok := r.catalog.Get(name)
	if !ok {
		return nil
	}

	if relative == "" {
		return &Source{URI: lib.ShortID, Path: lib.Path, Library: lib}
	}

	// Replace everything after the final separator of the library's main
	// path with the requested relative portion. Primary separator first,
	// "/" as fallback for canonical catalog paths.
	idx := strings.LastIndexByte(lib.Path, r.sep)
	if idx < 0 {
		idx = strings.LastIndexByte(lib.Path, '/')
	}
	if idx < 0 {
		return nil
	}

	target := lib.Path[:idx+1] + relative
	if target == lib.Path {
		// The spelled-out URI addresses the library's own main file; hand
		// back the canonical identifier so both spellings share one handle.
		return &Source{URI: lib.ShortID, Path: lib.Path, Library: lib}
	}

	return &Source{URI: string(uri), Path: target, Library: lib}
}

// URIForPath maps a source location back to the library identifier that
// names it. The first pass looks for a library whose main path matches the
// query exactly; the second walks the catalog in insertion order and matches
// the query against each library's directory prefix, first match winning.
// False means no library covers the path, which is a normal outcome.
func (r *Resolver) URIForPath(path string) (types.LibraryURI, bool) {
	query := r.normalize(path)

	for _, lib := range r.catalog.Libraries() {
		if r.normalize(lib.Path) == query {
			return types.LibraryURI(lib.ShortID), true
		}
	}

	for _, lib := range r.catalog.Libraries() {
		libPath := r.normalize(lib.Path)
		idx := strings.LastIndexByte(libPath, '/')
		if idx < 0 {
			continue
		}
		prefix := libPath[:idx+1]
		if strings.HasPrefix(query, prefix) {
			return types.LibraryURI(lib.ShortID + "/" + query[len(prefix):]), true
		}
	}

	return "", false
}

// normalize rewrites the resolver's primary separator to the canonical "/"
// so descriptor paths and queries compare under one convention.
func (r *Resolver) normalize(path string) string {
	if r.sep == '/' {
		return path
	}
	return strings.ReplaceAll(path, string(r.sep), "/")
}
