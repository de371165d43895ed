// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"fmt"
	"sort"
	"strings"

	"strand-sdk/pkg/types"
)

// Mem is an in-memory Access implementation for tests. Files are registered
// with Write; directories exist implicitly wherever a file lives below them.
// Paths compare under the configured style's Normalize, so tests can
// simulate Windows drive-letter semantics on any host.
type Mem struct {
	style Style
	files map[types.FilesystemPath][]byte
}

// NewMem creates an empty in-memory filesystem using the given style.
func NewMem(style Style) *Mem {
	return &Mem{
		style: style,
		files: make(map[types.FilesystemPath][]byte),
	}
}

// Write registers a file. Parent directories spring into existence.
func (m *Mem) Write(path types.FilesystemPath, data []byte) {
	m.files[m.style.Normalize(path)] = data
}

// WriteText registers a file from string content.
func (m *Mem) WriteText(path types.FilesystemPath, text string) {
	m.Write(path, []byte(text))
}

// ReadFile implements Access.
func (m *Mem) ReadFile(path types.FilesystemPath) ([]byte, error) {
	data, ok := m.files[m.style.Normalize(path)]
	if !ok {
		return nil, fmt.Errorf("reading %s: file does not exist", path)
	}
	return data, nil
}

// ReadText implements Access.
func (m *Mem) ReadText(path types.FilesystemPath) (string, error) {
	data, err := m.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists implements Access.
func (m *Mem) Exists(path types.FilesystemPath) bool {
	norm := m.style.Normalize(path)
	if _, ok := m.files[norm]; ok {
		return true
	}
	prefix := string(norm) + string(m.style.Separator())
	for p := range m.files {
		if strings.HasPrefix(string(p), prefix) {
			return true
		}
	}
	return false
}

// List implements Access.
func (m *Mem) List(dir types.FilesystemPath) ([]string, error) {
	if !m.Exists(dir) {
		return nil, fmt.Errorf("listing %s: directory does not exist", dir)
	}
	prefix := string(m.style.Normalize(dir)) + string(m.style.Separator())
	seen := make(map[string]bool)
	for p := range m.files {
		rest, ok := strings.CutPrefix(string(p), prefix)
		if !ok {
			continue
		}
		if idx := strings.IndexByte(rest, m.style.Separator()); idx >= 0 {
			rest = rest[:idx]
		}
		seen[rest] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
