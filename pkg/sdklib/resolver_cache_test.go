// SPDX-License-Identifier: MPL-2.0

package sdklib

import "testing"

func TestCachingResolver_ComputesOnce(t *testing.T) {
	t.Parallel()

	cr := NewCachingResolver(NewResolverWithSeparator(testCatalog(), '/'))

	first := cr.Resolve("std:core")
	second := cr.Resolve("std:core")

	if first == nil || second == nil {
		t.Fatal("Resolve(std:core) = nil, want resolved")
	}
	if first != second {
		t.Error("repeat Resolve(std:core) returned a different result instance")
	}
	if got := cr.Computes(); got != 1 {
		t.Errorf("Computes() = %d after two identical queries, want 1", got)
	}
}

func TestCachingResolver_CachesUnresolved(t *testing.T) {
	t.Parallel()

	cr := NewCachingResolver(NewResolverWithSeparator(testCatalog(), '/'))

	if src := cr.Resolve("std:nope"); src != nil {
		t.Fatalf("Resolve(std:nope) = %+v, want nil", src)
	}
	if src := cr.Resolve("std:nope"); src != nil {
		t.Fatalf("repeat Resolve(std:nope) = %+v, want nil", src)
	}
	if got := cr.Computes(); got != 1 {
		t.Errorf("Computes() = %d, want 1 (unresolved outcomes are cached too)", got)
	}
}

func TestCachingResolver_DistinctKeys(t *testing.T) {
	t.Parallel()

	cr := NewCachingResolver(NewResolverWithSeparator(testCatalog(), '/'))

	cr.Resolve("std:core")
	cr.Resolve("std:core/list.sr")
	cr.Resolve("std:core/core.sr") // canonical rewrite of std:core, but a distinct cache key

	if got := cr.Computes(); got != 3 {
		t.Errorf("Computes() = %d for three distinct identifiers, want 3", got)
	}
}

func TestCachingResolver_ReversePassthrough(t *testing.T) {
	t.Parallel()

	cr := NewCachingResolver(NewResolverWithSeparator(testCatalog(), '/'))

	uri, ok := cr.URIForPath("io/io.sr")
	if !ok || uri != "std:io" {
		t.Errorf("URIForPath(io/io.sr) = (%s, %v), want (std:io, true)", uri, ok)
	}
	if got := cr.Computes(); got != 0 {
		t.Errorf("Computes() = %d after reverse lookup only, want 0", got)
	}
}
