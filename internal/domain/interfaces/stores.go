package interfaces

import domaintypes "laydeck/internal/domain/types"

// LayoutStore reads deck layout files.
type LayoutStore interface {
	ReadLayout(path string) ([]byte, error)
}

// LabwareStore loads geometry from labware definition files.
//
// ok is false when path is empty or no file exists there; err reports a file
// that exists but could not be read. Defaulted keys are reported to sink.
type LabwareStore interface {
	LoadLabwareProperties(
		path string,
		sink domaintypes.DiagnosticSink,
	) (props domaintypes.LabwareProperties, ok bool, err error)
}

// ReportStore persists rendered reports.
type ReportStore interface {
	SaveReport(path string, data []byte) error
}
