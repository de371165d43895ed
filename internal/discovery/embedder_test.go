// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"testing"

	"strand-sdk/internal/resource"
	"strand-sdk/pkg/sdklib"
	"strand-sdk/pkg/types"
)

func TestDecodeEmbedder(t *testing.T) {
	t.Parallel()

	data := []byte(`
[embedded_libraries]
"std:io" = "sources/io.sr"
"std:gpio" = "sources/gpio.sr"
"fs_root" = "rootfs"
`)

	mapping, err := DecodeEmbedder(data, "embedder.toml")
	if err != nil {
		t.Fatalf("DecodeEmbedder() returned error: %v", err)
	}
	if len(mapping) != 3 {
		t.Fatalf("decoded %d entries, want 3", len(mapping))
	}
	if mapping["std:io"] != "sources/io.sr" {
		t.Errorf("mapping[std:io] = %s", mapping["std:io"])
	}
}

func TestDecodeEmbedder_NoTable(t *testing.T) {
	t.Parallel()

	mapping, err := DecodeEmbedder([]byte(`other_key = "value"`), "embedder.toml")
	if err != nil {
		t.Fatalf("DecodeEmbedder() returned error: %v", err)
	}
	if len(mapping) != 0 {
		t.Errorf("decoded %d entries from a file without the table, want 0", len(mapping))
	}
}

func TestDecodeEmbedder_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeEmbedder([]byte(`[embedded_libraries`), "embedder.toml"); err == nil {
		t.Fatal("DecodeEmbedder() = nil error for malformed TOML, want error")
	}
}

func TestMergeEmbedders_CanonicalizesAndFilters(t *testing.T) {
	t.Parallel()

	mem := resource.NewMem(resource.StylePosix)
	b, _ := newTestBuilder(mem)
	catalog := sdklib.NewCatalog()

	raw := b.MergeEmbedders(catalog, []EmbedderSource{
		{
			Dir: "/embedders/one",
			Mapping: map[string]string{
				"std:io":   "sources/io.sr",
				"fs_root":  "rootfs",
				"std:gpio": "/absolute/gpio.sr",
			},
		},
	})

	if catalog.Len() != 2 {
		t.Fatalf("catalog has %d entries, want 2 (unrecognized key ignored)", catalog.Len())
	}
	if _, ok := catalog.Get("fs_root"); ok {
		t.Error("unrecognized key fs_root must not be registered")
	}

	io, _ := catalog.Get("std:io")
	if io.Path != "/embedders/one/sources/io.sr" {
		t.Errorf("std:io path = %s, want canonicalized /embedders/one/sources/io.sr", io.Path)
	}
	gpio, _ := catalog.Get("std:gpio")
	if gpio.Path != "/absolute/gpio.sr" {
		t.Errorf("std:gpio path = %s, want absolute passthrough", gpio.Path)
	}

	if len(raw) != 2 {
		t.Fatalf("raw associations = %v, want 2 entries", raw)
	}
	if raw["std:io"] != types.FilesystemPath("/embedders/one/sources/io.sr") {
		t.Errorf("raw[std:io] = %s", raw["std:io"])
	}
}

func TestMergeEmbedders_LastWriterWins(t *testing.T) {
	t.Parallel()

	mem := resource.NewMem(resource.StylePosix)
	b, _ := newTestBuilder(mem)
	catalog := sdklib.NewCatalog()

	raw := b.MergeEmbedders(catalog, []EmbedderSource{
		{Dir: "/embedders/first", Mapping: map[string]string{"std:io": "io_v1.sr"}},
		{Dir: "/embedders/second", Mapping: map[string]string{"std:io": "io_v2.sr"}},
	})

	if catalog.Len() != 1 {
		t.Fatalf("catalog has %d entries, want 1", catalog.Len())
	}
	io, _ := catalog.Get("std:io")
	if io.Path != "/embedders/second/io_v2.sr" {
		t.Errorf("std:io path = %s, want the later pair's target", io.Path)
	}
	if raw["std:io"] != types.FilesystemPath("/embedders/second/io_v2.sr") {
		t.Errorf("raw[std:io] = %s, want the later pair's target", raw["std:io"])
	}
}

func TestMergeEmbedders_OverridesFolderCatalogInPlace(t *testing.T) {
	t.Parallel()

	mem := resource.NewMem(resource.StylePosix)
	mem.WriteText("/sdk/lib/libraries.cue", testMetadata)
	b, _ := newTestBuilder(mem)

	catalog := b.FromFolder("/sdk")
	b.MergeEmbedders(catalog, []EmbedderSource{
		{Dir: "/embedders/one", Mapping: map[string]string{"std:io": "custom/io.sr"}},
	})

	// Overriding a bundled library keeps its catalog position.
	ids := catalog.IDs()
	if len(ids) != 2 || ids[0] != "std:core" || ids[1] != "std:io" {
		t.Fatalf("IDs() = %v, want [std:core std:io]", ids)
	}
	io, _ := catalog.Get("std:io")
	if io.Path != "/embedders/one/custom/io.sr" {
		t.Errorf("std:io path = %s, want the embedder override", io.Path)
	}
}

func TestLoadEmbedder(t *testing.T) {
	t.Parallel()

	mem := resource.NewMem(resource.StylePosix)
	mem.WriteText("/embedders/one/embedder.toml", `
[embedded_libraries]
"std:io" = "sources/io.sr"
`)
	b, _ := newTestBuilder(mem)

	src, err := b.LoadEmbedder("/embedders/one/embedder.toml")
	if err != nil {
		t.Fatalf("LoadEmbedder() returned error: %v", err)
	}
	if src.Dir != "/embedders/one" {
		t.Errorf("Dir = %s, want /embedders/one", src.Dir)
	}
	if src.Mapping["std:io"] != "sources/io.sr" {
		t.Errorf("Mapping[std:io] = %s", src.Mapping["std:io"])
	}

	if _, err := b.LoadEmbedder("/missing/embedder.toml"); err == nil {
		t.Error("LoadEmbedder(missing) = nil error, want error")
	}
}
