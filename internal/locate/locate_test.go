// SPDX-License-Identifier: MPL-2.0

package locate

import (
	"testing"

	"strand-sdk/internal/resource"
	"strand-sdk/pkg/types"
)

func TestFindRoot_SourceTreeLayout(t *testing.T) {
	t.Parallel()

	// bin/ sits directly under the SDK root, so the root is one level up
	// from the executable.
	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/opt/strand/lib/libraries.cue", "libraries: []")

	root, ok := FindRoot("/opt/strand/bin/strandsdk", resource.StylePosix, fs)
	if !ok {
		t.Fatal("FindRoot() = absent, want /opt/strand")
	}
	if root != "/opt/strand" {
		t.Errorf("FindRoot() = %s, want /opt/strand", root)
	}
}

func TestFindRoot_ExecutableInsideRoot(t *testing.T) {
	t.Parallel()

	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/opt/strand/lib/libraries.cue", "libraries: []")

	root, ok := FindRoot("/opt/strand/strandsdk", resource.StylePosix, fs)
	if !ok || root != "/opt/strand" {
		t.Errorf("FindRoot() = (%s, %v), want (/opt/strand, true)", root, ok)
	}
}

func TestFindRoot_BuiltOutputLayout(t *testing.T) {
	t.Parallel()

	// A built distribution keeps the SDK in an "sdk" directory next to its
	// binaries.
	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/build/out/sdk/lib/libraries.cue", "libraries: []")

	root, ok := FindRoot("/build/out/strandsdk", resource.StylePosix, fs)
	if !ok {
		t.Fatal("FindRoot() = absent, want /build/out/sdk")
	}
	if root != "/build/out/sdk" {
		t.Errorf("FindRoot() = %s, want /build/out/sdk", root)
	}
}

func TestFindRoot_BuiltOutputOneLevelUp(t *testing.T) {
	t.Parallel()

	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/build/out/sdk/lib/libraries.cue", "libraries: []")

	root, ok := FindRoot("/build/out/bin/strandsdk", resource.StylePosix, fs)
	if !ok || root != "/build/out/sdk" {
		t.Errorf("FindRoot() = (%s, %v), want (/build/out/sdk, true)", root, ok)
	}
}

func TestFindRoot_SourceTreeWinsOverSibling(t *testing.T) {
	t.Parallel()

	// When a directory both is a root and holds an sdk/ child, the
	// directory itself wins: the closer layout is checked first.
	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/opt/strand/lib/libraries.cue", "libraries: []")
	fs.WriteText("/opt/strand/sdk/lib/libraries.cue", "libraries: []")

	root, ok := FindRoot("/opt/strand/bin/strandsdk", resource.StylePosix, fs)
	if !ok || root != "/opt/strand" {
		t.Errorf("FindRoot() = (%s, %v), want (/opt/strand, true)", root, ok)
	}
}

func TestFindRoot_Absent(t *testing.T) {
	t.Parallel()

	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/elsewhere/lib/libraries.cue", "libraries: []")

	if root, ok := FindRoot("/usr/local/bin/strandsdk", resource.StylePosix, fs); ok {
		t.Errorf("FindRoot() = %s, want absent", root)
	}
}

func TestFindRoot_StopsAtLevelLimit(t *testing.T) {
	t.Parallel()

	// The metadata sits three levels above the executable's directory,
	// beyond the search limit.
	fs := resource.NewMem(resource.StylePosix)
	fs.WriteText("/a/lib/libraries.cue", "libraries: []")

	if root, ok := FindRoot("/a/b/c/d/strandsdk", resource.StylePosix, fs); ok {
		t.Errorf("FindRoot() = %s, want absent beyond the level limit", root)
	}
}

func TestFindRoot_WindowsStyle(t *testing.T) {
	t.Parallel()

	fs := resource.NewMem(resource.StyleWindows)
	fs.WriteText(`C:\Strand\lib\libraries.cue`, "libraries: []")

	tests := []struct {
		name string
		exec types.FilesystemPath
	}{
		{"backslash separators", `C:\Strand\bin\strandsdk.exe`},
		{"forward-slash separators", `C:/Strand/bin/strandsdk.exe`},
		{"lowercase drive letter", `c:\Strand\bin\strandsdk.exe`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, ok := FindRoot(tt.exec, resource.StyleWindows, fs)
			if !ok {
				t.Fatalf("FindRoot(%s) = absent, want a root", tt.exec)
			}
			// Drive letters compare lowercased.
			if root != `c:\Strand` {
				t.Errorf(`FindRoot(%s) = %s, want c:\Strand`, tt.exec, root)
			}
		})
	}
}
