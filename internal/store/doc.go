// Package store provides file-based access for laydeck's inputs and outputs.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Deck layout files (LayoutFileStore)
//   - Labware definition files (LabwareFileStore)
//   - Rendered reports (ReportFileStore)
//
// Reads treat a missing file as absence rather than failure where the
// interface allows it. Writes go through a temp file and a rename so readers
// never observe a partial report.
package store
