package store

import (
	"sync"

	"laydeck/internal/domain"
)

// ReportFileStore writes rendered reports to disk.
type ReportFileStore struct {
	mu sync.Mutex
}

// NewReportFileStore returns a ReportFileStore.
func NewReportFileStore() *ReportFileStore { return &ReportFileStore{} }

// SaveReport atomically replaces the file at path with data, creating parent
// directories as needed.
func (s *ReportFileStore) SaveReport(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(path, data, 0o644)
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
