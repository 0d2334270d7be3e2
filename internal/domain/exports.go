package domain

import (
	"errors"

	interfaces "laydeck/internal/domain/interfaces"
	types "laydeck/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Vector3              = types.Vector3
	RawLabwareRecord     = types.RawLabwareRecord
	LabwareProperties    = types.LabwareProperties
	DerivedLabwareRecord = types.DerivedLabwareRecord
	LabwareType          = types.LabwareType
	LayoutResult         = types.LayoutResult
	Fingerprint          = types.Fingerprint
	Diagnostic           = types.Diagnostic
	DiagnosticReason     = types.DiagnosticReason
	DiagnosticSink       = types.DiagnosticSink
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PathResolver  = interfaces.PathResolver
	LayoutService = interfaces.LayoutService
	LayoutStore   = interfaces.LayoutStore
	LabwareStore  = interfaces.LabwareStore
	ReportStore   = interfaces.ReportStore
)

// Labware type values.
const (
	Carrier     = types.Carrier
	RackCarrier = types.RackCarrier
	Rack        = types.Rack
	Container   = types.Container
	Unknown     = types.Unknown
)

// Diagnostic reasons.
const (
	ReasonMissing        = types.ReasonMissing
	ReasonUnparsable     = types.ReasonUnparsable
	ReasonCountMissing   = types.ReasonCountMissing
	ReasonCountClamped   = types.ReasonCountClamped
	ReasonFileMissing    = types.ReasonFileMissing
	ReasonFileUnreadable = types.ReasonFileUnreadable
)

// ErrLayoutUnreadable wraps read failures of the primary layout file.
// Process still returns an empty, usable result alongside it.
var ErrLayoutUnreadable = errors.New("layout file unreadable")
