// SPDX-License-Identifier: MPL-2.0

package sdklib

import "strand-sdk/pkg/types"

// CachingResolver wraps a Resolver and memoizes every forward resolution
// outcome, including unresolved ones, keyed by the requested identifier
// string. Repeat queries return the stored result without recomputation.
//
// The cache grows without bound and has no eviction: the key space is
// limited to the identifiers a process actually queries, which is finite in
// practice. Not safe for concurrent use without external locking.
type CachingResolver struct {
	resolver *Resolver
	cache    map[string]*Source
	computes int
}

// NewCachingResolver wraps the resolver with an empty cache.
func NewCachingResolver(resolver *Resolver) *CachingResolver {
	return &CachingResolver{
		resolver: resolver,
		cache:    make(map[string]*Source),
	}
}

// Resolve returns the memoized outcome for the identifier, computing and
// storing it on first request. A nil result means unresolved and is cached
// like any other outcome.
func (c *CachingResolver) Resolve(uri types.LibraryURI) *Source {
	key := string(uri)
	if src, ok := c.cache[key]; ok {
		return src
	}
	src := c.resolver.Resolve(uri)
	c.computes++
	c.cache[key] = src
	return src
}

// URIForPath delegates reverse resolution to the wrapped resolver.
// Reverse lookups are not memoized.
func (c *CachingResolver) URIForPath(path string) (types.LibraryURI, bool) {
	return c.resolver.URIForPath(path)
}

// Catalog returns the catalog the wrapped resolver reads from.
func (c *CachingResolver) Catalog() *Catalog {
	return c.resolver.Catalog()
}

// Computes returns how many times the underlying resolution algorithm has
// run, counting cache misses only. Useful for verifying memoization.
func (c *CachingResolver) Computes() int {
	return c.computes
}
