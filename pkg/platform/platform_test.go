// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestHasDriveLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{`C:\sdk\bin`, true},
		{`c:/sdk/bin`, true},
		{`Z:`, true},
		{`/usr/local/sdk`, false},
		{`sdk/bin`, false},
		{`:`, false},
		{``, false},
		{`1:\sdk`, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := HasDriveLetter(tt.path); got != tt.want {
				t.Errorf("HasDriveLetter(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeDriveLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{`C:\sdk\bin`, `c:\sdk\bin`},
		{`c:\sdk\bin`, `c:\sdk\bin`},
		{`/usr/local/sdk`, `/usr/local/sdk`},
		{``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeDriveLetter(tt.path); got != tt.want {
				t.Errorf("NormalizeDriveLetter(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
