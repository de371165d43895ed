// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"strings"

	"strand-sdk/internal/diag"
	"strand-sdk/internal/resource"
	"strand-sdk/pkg/sdkfile"
	"strand-sdk/pkg/sdklib"
	"strand-sdk/pkg/types"
)

// metadataCandidates are the conventional metadata locations under an SDK
// root, in fixed priority order. Each entry is a slash-form path relative to
// the root; the first readable, decodable candidate wins.
var metadataCandidates = []string{
	"lib/" + sdkfile.MetadataFileName,
	sdkfile.MetadataFileName,
}

// Builder constructs library catalogs against one resource access and path
// style, reporting non-fatal failures to the injected sink.
type Builder struct {
	res   resource.Access
	style resource.Style
	sink  diag.Sink
}

// NewBuilder creates a Builder.
func NewBuilder(res resource.Access, style resource.Style, sink diag.Sink) *Builder {
	return &Builder{res: res, style: style, sink: sink}
}

// FromFolder builds a catalog from the distribution's bundled metadata under
// root. Candidate locations are tried in priority order; a candidate that is
// missing or fails to decode is skipped. When every candidate is exhausted
// the attempts and the last failure are aggregated into one diagnostic and
// an empty catalog is returned; construction itself never fails.
//
// Descriptor paths are stored relative to root in slash form, so reverse
// resolution sees the same prefix convention the metadata file implies.
func (b *Builder) FromFolder(root types.FilesystemPath) *sdklib.Catalog {
	var (
		attempted []string
		lastErr   error
	)

	for _, candidate := range metadataCandidates {
		path := b.candidatePath(root, candidate)
		attempted = append(attempted, string(path))

		if !b.res.Exists(path) {
			continue
		}

		data, err := b.res.ReadFile(path)
		if err != nil {
			lastErr = err
			b.sink.Emit(diag.Record{
				Severity: diag.SeverityWarning,
				Code:     "metadata_candidate_skipped",
				Message:  "library metadata candidate is unreadable",
				Path:     string(path),
				Cause:    err,
			})
			continue
		}

		file, err := sdkfile.ParseBytes(data, string(path))
		if err != nil {
			lastErr = err
			b.sink.Emit(diag.Record{
				Severity: diag.SeverityWarning,
				Code:     "metadata_candidate_skipped",
				Message:  "library metadata candidate failed to decode",
				Path:     string(path),
				Cause:    err,
			})
			continue
		}

		return b.catalogFromFile(file, candidate)
	}

	b.sink.Emit(diag.Record{
		Severity: diag.SeverityError,
		Code:     "metadata_unreadable",
		Message:  fmt.Sprintf("no readable library metadata (tried %s)", strings.Join(attempted, ", ")),
		Path:     string(root),
		Cause:    lastErr,
	})
	return sdklib.NewCatalog()
}

// candidatePath turns a slash-form candidate into a style-correct path under
// root.
func (b *Builder) candidatePath(root types.FilesystemPath, candidate string) types.FilesystemPath {
	parts := append([]string{string(root)}, strings.Split(candidate, "/")...)
	return b.style.Join(parts...)
}

// catalogFromFile converts decoded metadata into a catalog, prefixing each
// descriptor path with the metadata file's directory relative to the root.
func (b *Builder) catalogFromFile(file *sdkfile.Sdkfile, candidate string) *sdklib.Catalog {
	prefix := ""
	if idx := strings.LastIndexByte(candidate, '/'); idx >= 0 {
		prefix = candidate[:idx+1]
	}

	catalog := sdklib.NewCatalog()
	for _, lib := range file.ToLibraries() {
		lib.Path = prefix + lib.Path
		catalog.Set(lib)
	}
	return catalog
}
