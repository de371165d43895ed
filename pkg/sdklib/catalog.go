// SPDX-License-Identifier: MPL-2.0

package sdklib

// Catalog is an ordered mapping from library ShortID to its descriptor.
//
// Iteration order is insertion order and is deterministic; reverse
// resolution's tie-break depends on it. Overwriting an existing key replaces
// the descriptor but keeps the key's first-insertion position, so an
// embedder override does not reshuffle the tie-break order.
//
// A Catalog has no deletion operation: entries only accumulate during
// construction.
type Catalog struct {
	order []string
	byID  map[string]*Library
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*Library)}
}

// Set inserts or overwrites the descriptor under its ShortID.
// The last write for a given key wins.
func (c *Catalog) Set(lib *Library) {
	if _, exists := c.byID[lib.ShortID]; !exists {
		c.order = append(c.order, lib.ShortID)
	}
	c.byID[lib.ShortID] = lib
}

// Get returns the descriptor for the given ShortID, or false when the
// catalog has no such library. Absence is a normal outcome, not an error.
func (c *Catalog) Get(id string) (*Library, bool) {
	lib, ok := c.byID[id]
	return lib, ok
}

// IDs returns every known ShortID in insertion order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Libraries returns every descriptor in insertion order.
func (c *Catalog) Libraries() []*Library {
	libs := make([]*Library, 0, len(c.order))
	for _, id := range c.order {
		libs = append(libs, c.byID[id])
	}
	return libs
}

// Len returns the number of libraries in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
