package store

import (
	"laydeck/internal/domain"
	"laydeck/internal/labware"
)

// LabwareFileStore loads labware definition files from the local filesystem.
type LabwareFileStore struct{}

// NewLabwareFileStore returns a LabwareFileStore.
func NewLabwareFileStore() *LabwareFileStore { return &LabwareFileStore{} }

// LoadLabwareProperties reads and parses the definition at path.
func (s *LabwareFileStore) LoadLabwareProperties(
	path string,
	sink domain.DiagnosticSink,
) (domain.LabwareProperties, bool, error) {
	if path == "" {
		return domain.LabwareProperties{}, false, nil
	}
	b, err := readFile(path)
	if err != nil {
		return domain.LabwareProperties{}, false, err
	}
	if b == nil {
		return domain.LabwareProperties{}, false, nil
	}
	return labware.Parse(b, path, sink), true, nil
}

// Compile-time assertion that LabwareFileStore implements domain.LabwareStore.
var _ domain.LabwareStore = (*LabwareFileStore)(nil)
