// SPDX-License-Identifier: MPL-2.0

package sdklib

import (
	"testing"

	"strand-sdk/pkg/types"
)

func testCatalog() *Catalog {
	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: "core/core.sr", Category: CategoryShared})
	c.Set(&Library{ShortID: "std:io", Path: "io/io.sr", Category: CategoryShared})
	c.Set(&Library{ShortID: "std:internal", Path: "internal/internal.sr", Category: CategoryInternal})
	return c
}

func TestResolver_Resolve_LibraryOnly(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	src := r.Resolve("std:core")
	if src == nil {
		t.Fatal("Resolve(std:core) = nil, want resolved")
	}
	if src.URI != "std:core" || src.Path != "core/core.sr" {
		t.Errorf("Resolve(std:core) = {URI: %s, Path: %s}, want {std:core, core/core.sr}", src.URI, src.Path)
	}
	if src.Library == nil || src.Library.ShortID != "std:core" {
		t.Error("Resolve(std:core) did not carry the catalog descriptor")
	}
}

func TestResolver_Resolve_RelativePath(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	src := r.Resolve("std:core/list.sr")
	if src == nil {
		t.Fatal("Resolve(std:core/list.sr) = nil, want resolved")
	}
	if src.URI != "std:core/list.sr" {
		t.Errorf("URI = %s, want the requested identifier std:core/list.sr", src.URI)
	}
	if src.Path != "core/list.sr" {
		t.Errorf("Path = %s, want core/list.sr", src.Path)
	}
}

func TestResolver_Resolve_CanonicalRewrite(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	// Spelling out the library's own main file must collapse to the
	// canonical identifier, not the literal request.
	src := r.Resolve("std:core/core.sr")
	if src == nil {
		t.Fatal("Resolve(std:core/core.sr) = nil, want resolved")
	}
	if src.URI != "std:core" {
		t.Errorf("URI = %s, want canonical std:core", src.URI)
	}
	if src.Path != "core/core.sr" {
		t.Errorf("Path = %s, want core/core.sr", src.Path)
	}
}

func TestResolver_Resolve_UnknownLibrary(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	if src := r.Resolve("std:nope"); src != nil {
		t.Errorf("Resolve(std:nope) = %+v, want nil (unresolved)", src)
	}
	if src := r.Resolve("std:nope/file.sr"); src != nil {
		t.Errorf("Resolve(std:nope/file.sr) = %+v, want nil (unresolved)", src)
	}
}

func TestResolver_Resolve_NoSeparatorInLibraryPath(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:flat", Path: "flat.sr"})
	r := NewResolverWithSeparator(c, '/')

	// The library's main path has no directory portion, so there is nowhere
	// to splice a relative path into.
	if src := r.Resolve("std:flat/other.sr"); src != nil {
		t.Errorf("Resolve(std:flat/other.sr) = %+v, want nil", src)
	}
	if src := r.Resolve("std:flat"); src == nil {
		t.Error("Resolve(std:flat) = nil, want resolved (no relative path requested)")
	}
}

func TestResolver_Resolve_WindowsStyleDescriptorPaths(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: `core\core.sr`})
	r := NewResolverWithSeparator(c, '\\')

	src := r.Resolve("std:core/list.sr")
	if src == nil {
		t.Fatal(`Resolve(std:core/list.sr) = nil, want resolved`)
	}
	if src.Path != `core\list.sr` {
		t.Errorf(`Path = %s, want core\list.sr`, src.Path)
	}
}

func TestResolver_URIForPath_ExactMatch(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	uri, ok := r.URIForPath("core/core.sr")
	if !ok {
		t.Fatal("URIForPath(core/core.sr) = absent, want std:core")
	}
	if uri != "std:core" {
		t.Errorf("URIForPath(core/core.sr) = %s, want std:core", uri)
	}
}

func TestResolver_URIForPath_PrefixMatch(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	uri, ok := r.URIForPath("core/errors.sr")
	if !ok {
		t.Fatal("URIForPath(core/errors.sr) = absent, want std:core/errors.sr")
	}
	if uri != "std:core/errors.sr" {
		t.Errorf("URIForPath(core/errors.sr) = %s, want std:core/errors.sr", uri)
	}
}

func TestResolver_URIForPath_NoMatch(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	if uri, ok := r.URIForPath("elsewhere/errors.sr"); ok {
		t.Errorf("URIForPath(elsewhere/errors.sr) = %s, want absent", uri)
	}
}

func TestResolver_URIForPath_TieBreakIsInsertionOrder(t *testing.T) {
	t.Parallel()

	// Two libraries share the directory prefix "shared/". The first one in
	// catalog insertion order must win, deterministically.
	c := NewCatalog()
	c.Set(&Library{ShortID: "std:alpha", Path: "shared/alpha.sr"})
	c.Set(&Library{ShortID: "std:beta", Path: "shared/beta.sr"})
	r := NewResolverWithSeparator(c, '/')

	for range 3 {
		uri, ok := r.URIForPath("shared/common.sr")
		if !ok {
			t.Fatal("URIForPath(shared/common.sr) = absent, want a match")
		}
		if uri != "std:alpha/common.sr" {
			t.Errorf("URIForPath(shared/common.sr) = %s, want std:alpha/common.sr (first in insertion order)", uri)
		}
	}
}

func TestResolver_URIForPath_NormalizesSeparators(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: `core\core.sr`})
	r := NewResolverWithSeparator(c, '\\')

	uri, ok := r.URIForPath(`core\errors.sr`)
	if !ok {
		t.Fatal(`URIForPath(core\errors.sr) = absent, want a match`)
	}
	// The suffix comes back slash-normalized regardless of the query style.
	if uri != "std:core/errors.sr" {
		t.Errorf(`URIForPath(core\errors.sr) = %s, want std:core/errors.sr`, uri)
	}
}

func TestResolver_RoundTrip(t *testing.T) {
	t.Parallel()

	r := NewResolverWithSeparator(testCatalog(), '/')

	// Forward then reverse returns the identifier that went in, for every
	// library and for files inside a library's directory.
	for _, lib := range r.Catalog().Libraries() {
		src := r.Resolve(types.LibraryURI(lib.ShortID))
		if src == nil {
			t.Fatalf("Resolve(%s) = nil, want resolved", lib.ShortID)
		}
		uri, ok := r.URIForPath(src.Path)
		if !ok || string(uri) != lib.ShortID {
			t.Errorf("round-trip of %s = (%s, %v), want identity", lib.ShortID, uri, ok)
		}
	}

	for _, request := range []types.LibraryURI{"std:core/list.sr", "std:io/buffer.sr"} {
		src := r.Resolve(request)
		if src == nil {
			t.Fatalf("Resolve(%s) = nil, want resolved", request)
		}
		uri, ok := r.URIForPath(src.Path)
		if !ok || uri != request {
			t.Errorf("round-trip of %s = (%s, %v), want identity", request, uri, ok)
		}
	}
}
