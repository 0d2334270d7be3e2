package store

import (
	"fmt"
	"os"

	"laydeck/internal/domain"
)

// LayoutFileStore reads deck layout files from the local filesystem.
type LayoutFileStore struct{}

// NewLayoutFileStore returns a LayoutFileStore.
func NewLayoutFileStore() *LayoutFileStore { return &LayoutFileStore{} }

// ReadLayout returns the raw bytes of the layout at path. Unlike definition
// files a missing layout is an error.
func (s *LayoutFileStore) ReadLayout(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLayoutUnreadable, err)
	}
	return b, nil
}

// Compile-time assertion that LayoutFileStore implements domain.LayoutStore.
var _ domain.LayoutStore = (*LayoutFileStore)(nil)
