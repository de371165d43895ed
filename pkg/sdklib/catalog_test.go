// SPDX-License-Identifier: MPL-2.0

package sdklib

import (
	"slices"
	"testing"
)

func TestCatalog_SetGet(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	core := &Library{ShortID: "std:core", Path: "core/core.sr"}
	c.Set(core)

	got, ok := c.Get("std:core")
	if !ok {
		t.Fatal("Get(std:core) not found after Set")
	}
	if got != core {
		t.Errorf("Get(std:core) = %+v, want the descriptor passed to Set", got)
	}

	if _, ok := c.Get("std:missing"); ok {
		t.Error("Get(std:missing) = found, want absent")
	}
}

func TestCatalog_InsertionOrder(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: "core/core.sr"})
	c.Set(&Library{ShortID: "std:io", Path: "io/io.sr"})
	c.Set(&Library{ShortID: "std:math", Path: "math/math.sr"})

	want := []string{"std:core", "std:io", "std:math"}
	if got := c.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}

	libs := c.Libraries()
	if len(libs) != 3 {
		t.Fatalf("Libraries() returned %d entries, want 3", len(libs))
	}
	for i, lib := range libs {
		if lib.ShortID != want[i] {
			t.Errorf("Libraries()[%d].ShortID = %s, want %s", i, lib.ShortID, want[i])
		}
	}
}

func TestCatalog_OverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: "core/core.sr"})
	c.Set(&Library{ShortID: "std:io", Path: "io/io.sr"})

	// Overwrite the first entry; its ordering position must not move.
	c.Set(&Library{ShortID: "std:core", Path: "/embedder/core.sr"})

	want := []string{"std:core", "std:io"}
	if got := c.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() after overwrite = %v, want %v", got, want)
	}

	lib, _ := c.Get("std:core")
	if lib.Path != "/embedder/core.sr" {
		t.Errorf("Get(std:core).Path = %s, want the overwritten path", lib.Path)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCatalog_IDsReturnsCopy(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	c.Set(&Library{ShortID: "std:core", Path: "core/core.sr"})

	ids := c.IDs()
	ids[0] = "mutated"

	if got := c.IDs()[0]; got != "std:core" {
		t.Errorf("IDs()[0] = %s after caller mutation, want std:core", got)
	}
}

func TestLibrary_SupportedOn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lib      Library
		platform uint32
		want     bool
	}{
		{"zero mask matches runtime", Library{}, PlatformRuntime, true},
		{"zero mask matches web", Library{}, PlatformWeb, true},
		{"runtime-only matches runtime", Library{Platforms: PlatformRuntime}, PlatformRuntime, true},
		{"runtime-only excludes web", Library{Platforms: PlatformRuntime}, PlatformWeb, false},
		{"both bits match web", Library{Platforms: PlatformRuntime | PlatformWeb}, PlatformWeb, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.lib.SupportedOn(tt.platform); got != tt.want {
				t.Errorf("SupportedOn(%d) = %v, want %v", tt.platform, got, tt.want)
			}
		})
	}
}
