// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"strand-sdk/pkg/sdklib"
	"strand-sdk/pkg/types"
)

// EmbedderFileName is the conventional name of an embedder mapping file.
const EmbedderFileName = "embedder.toml"

type (
	// EmbedderSource is one decoded embedder mapping together with the
	// directory its file was read from. Relative target paths are
	// canonicalized against that directory during the merge.
	EmbedderSource struct {
		// Dir is the directory containing the embedder file.
		Dir types.FilesystemPath

		// Mapping is the decoded embedded_libraries table: identifier to
		// target path (relative to Dir, or absolute).
		Mapping map[string]string
	}

	// embedderDoc is the on-disk shape of an embedder file. Only the
	// embedded_libraries table is read; other top-level keys belong to
	// other tools and are ignored.
	embedderDoc struct {
		EmbeddedLibraries map[string]string `toml:"embedded_libraries"`
	}
)

// DecodeEmbedder decodes embedder file content into its mapping. A file
// without an embedded_libraries table yields an empty mapping, not an error.
func DecodeEmbedder(data []byte, path string) (map[string]string, error) {
	var doc embedderDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding embedder file %s: %w", path, err)
	}
	if doc.EmbeddedLibraries == nil {
		return map[string]string{}, nil
	}
	return doc.EmbeddedLibraries, nil
}

// LoadEmbedder reads and decodes the embedder file at path into a source
// ready for merging.
func (b *Builder) LoadEmbedder(path types.FilesystemPath) (EmbedderSource, error) {
	data, err := b.res.ReadFile(path)
	if err != nil {
		return EmbedderSource{}, err
	}
	mapping, err := DecodeEmbedder(data, string(path))
	if err != nil {
		return EmbedderSource{}, err
	}
	return EmbedderSource{Dir: b.style.Dir(path), Mapping: mapping}, nil
}

// MergeEmbedders folds the sources into the catalog in the order supplied,
// so later sources override earlier ones for conflicting identifiers.
// Mapping keys without the standard-library scheme prefix are ignored
// silently; they are an expected extensibility point for other tools, not
// malformed input. Within one source, keys merge in sorted order to keep
// catalog iteration deterministic.
//
// The returned map retains the raw identifier-to-absolute-path associations
// for callers that need the unprocessed mapping.
func (b *Builder) MergeEmbedders(catalog *sdklib.Catalog, sources []EmbedderSource) map[string]types.FilesystemPath {
	raw := make(map[string]types.FilesystemPath)

	for _, src := range sources {
		for _, key := range slices.Sorted(maps.Keys(src.Mapping)) {
			if !strings.HasPrefix(key, types.SchemePrefix) {
				continue
			}
			abs := b.style.Resolve(src.Dir, types.FilesystemPath(src.Mapping[key]))
			catalog.Set(&sdklib.Library{ShortID: key, Path: string(abs)})
			raw[key] = abs
		}
	}

	return raw
}
