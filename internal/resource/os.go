// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"fmt"
	"os"

	"strand-sdk/pkg/types"
)

// OS is the production Access implementation over the host filesystem.
type OS struct{}

// NewOS creates an OS-backed Access.
func NewOS() *OS { return &OS{} }

// ReadFile implements Access.
func (*OS) ReadFile(path types.FilesystemPath) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// ReadText implements Access.
func (o *OS) ReadText(path types.FilesystemPath) (string, error) {
	data, err := o.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists implements Access.
func (*OS) Exists(path types.FilesystemPath) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// List implements Access.
func (*OS) List(dir types.FilesystemPath) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
