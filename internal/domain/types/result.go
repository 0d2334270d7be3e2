package types

import "time"

// LayoutResult is the output of one pipeline run over a deck layout file.
type LayoutResult struct {
	RunID       string                 `json:"run_id"`
	LayoutPath  string                 `json:"layout_path"`
	Fingerprint Fingerprint            `json:"fingerprint,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
	Records     []DerivedLabwareRecord `json:"records"`
	Diagnostics []Diagnostic           `json:"diagnostics,omitempty"`
}
