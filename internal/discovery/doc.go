// SPDX-License-Identifier: MPL-2.0

// Package discovery builds library catalogs from a Strand SDK installation.
//
// Two construction strategies exist. The folder-based builder probes a fixed
// priority list of conventional metadata locations under an installation
// root and decodes the first readable candidate. The embedder merge folds
// auxiliary embedder mappings into a catalog with last-writer-wins
// precedence, so host applications can extend or override the bundled
// libraries.
//
// Construction never fails fatally: when no candidate is usable the builder
// reports one aggregated diagnostic through the injected sink and returns an
// empty catalog, leaving the caller with a usable, zero-library instance.
package discovery
