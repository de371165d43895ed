// SPDX-License-Identifier: MPL-2.0

// Package sdk ties a built catalog, a resolver, and runtime configuration
// into one long-lived instance. The instance is the stable identity a
// consuming toolchain holds for the lifetime of a session: configuration on
// it is mutable until the downstream context handle is first constructed,
// then frozen for good.
package sdk

import (
	"strings"

	"strand-sdk/internal/diag"
	"strand-sdk/internal/resource"
	"strand-sdk/pkg/bundle"
	"strand-sdk/pkg/sdklib"
	"strand-sdk/pkg/types"
)

// VersionFileName is the plain-text version marker at the SDK root.
const VersionFileName = "version"

type (
	// Context is the immutable handle downstream consumers bind against.
	// It snapshots the configuration that was in effect at binding time;
	// the catalog itself is shared, not copied, since catalogs never
	// shrink after construction.
	Context struct {
		// Catalog is the instance's library catalog.
		Catalog *sdklib.Catalog

		// UseBundle records whether precompiled-bundle loading was on at
		// binding time.
		UseBundle bool

		// Features are the feature flags that were enabled at binding
		// time, in sorted order.
		Features []string
	}

	// Instance aggregates everything a session needs: the file access
	// capability, the SDK root, the catalog, a memoizing resolver, and
	// the write-once options. Not safe for concurrent use.
	Instance struct {
		res     resource.Access
		style   resource.Style
		sink    diag.Sink
		root    types.FilesystemPath
		catalog *sdklib.Catalog

		resolver *sdklib.CachingResolver
		opts     *Options

		ctx *Context

		bundleLoaded bool
		bundleHandle *bundle.Bundle

		versionLoaded bool
		version       string
	}
)

// New creates an instance over an already built catalog. The resolver uses
// the style's separator so descriptor paths and queries agree on one
// convention.
func New(res resource.Access, style resource.Style, sink diag.Sink, root types.FilesystemPath, catalog *sdklib.Catalog) *Instance {
	return &Instance{
		res:      res,
		style:    style,
		sink:     sink,
		root:     root,
		catalog:  catalog,
		resolver: sdklib.NewCachingResolver(sdklib.NewResolverWithSeparator(catalog, style.Separator())),
		opts:     NewOptions(),
	}
}

// Root returns the SDK root directory the instance was constructed over.
func (i *Instance) Root() types.FilesystemPath { return i.root }

// Catalog returns the instance's library catalog.
func (i *Instance) Catalog() *sdklib.Catalog { return i.catalog }

// Options returns the instance configuration. Writes to it fail once
// Context has been called.
func (i *Instance) Options() *Options { return i.opts }

// Resolve maps a library identifier to its source location through the
// memoizing resolver. Nil means unresolved, which is a normal outcome.
func (i *Instance) Resolve(uri types.LibraryURI) *sdklib.Source {
	return i.resolver.Resolve(uri)
}

// URIForPath maps a source location back to the identifier that names it.
func (i *Instance) URIForPath(path string) (types.LibraryURI, bool) {
	return i.resolver.URIForPath(path)
}

// Context returns the downstream context handle, constructing it on first
// call. The first call freezes the options; every later call returns the
// same handle, so consumers all observe one consistent configuration.
func (i *Instance) Context() *Context {
	if i.ctx == nil {
		i.opts.freeze()
		i.ctx = &Context{
			Catalog:   i.catalog,
			UseBundle: i.opts.UseBundle(),
			Features:  i.opts.Features(),
		}
	}
	return i.ctx
}

// SourcePath turns a resolution result into an on-disk location by
// anchoring the descriptor path at the SDK root. Absolute descriptor paths
// pass through unchanged.
func (i *Instance) SourcePath(src *sdklib.Source) types.FilesystemPath {
	return i.style.Resolve(i.root, types.FilesystemPath(src.Path))
}

// ReadSource reads the source content a resolution result points at.
func (i *Instance) ReadSource(src *sdklib.Source) (string, error) {
	return i.res.ReadText(i.SourcePath(src))
}

// Bundle returns the precompiled bundle handle, loading it lazily on first
// call. False means no bundle is available: loading is disabled, the
// artifact is missing, or its header failed validation. A malformed
// artifact is reported through the sink and then treated as absent, and
// the outcome is memoized either way.
func (i *Instance) Bundle() (*bundle.Bundle, bool) {
	if !i.opts.UseBundle() {
		return nil, false
	}
	if i.bundleLoaded {
		return i.bundleHandle, i.bundleHandle != nil
	}
	i.bundleLoaded = true

	path := i.style.Resolve(i.root, types.FilesystemPath(bundle.FileName))
	if !i.res.Exists(path) {
		return nil, false
	}

	data, err := i.res.ReadFile(path)
	if err != nil {
		i.sink.Emit(diag.Record{
			Severity: diag.SeverityWarning,
			Code:     "bundle_unreadable",
			Message:  "could not read precompiled bundle",
			Path:     string(path),
			Cause:    err,
		})
		return nil, false
	}

	b, err := bundle.LoadBytes(data, string(path))
	if err != nil {
		i.sink.Emit(diag.Record{
			Severity: diag.SeverityWarning,
			Code:     "bundle_malformed",
			Message:  "precompiled bundle failed header validation",
			Path:     string(path),
			Cause:    err,
		})
		return nil, false
	}

	i.bundleHandle = b
	return b, true
}

// Version returns the SDK's version string, read lazily from the version
// marker file at the root. An absent or unreadable marker yields "" and
// the outcome is memoized.
func (i *Instance) Version() string {
	if i.versionLoaded {
		return i.version
	}
	i.versionLoaded = true

	path := i.style.Resolve(i.root, VersionFileName)
	text, err := i.res.ReadText(path)
	if err != nil {
		return ""
	}
	i.version = strings.TrimSpace(text)
	return i.version
}
