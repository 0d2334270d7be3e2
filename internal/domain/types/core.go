package types

import "fmt"

// LabwareType classifies a labware instance by its definition file.
type LabwareType int

const (
	Carrier LabwareType = iota
	RackCarrier
	Rack
	Container
	Unknown
)

var labwareTypeNames = [...]string{"Carrier", "RackCarrier", "Rack", "Container", "Unknown"}

// String returns the display name of the type.
func (t LabwareType) String() string {
	if t >= 0 && int(t) < len(labwareTypeNames) {
		return labwareTypeNames[t]
	}
	return "Unknown"
}

// MarshalText encodes the type by name so JSON reports stay readable.
func (t LabwareType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText mirrors MarshalText.
func (t *LabwareType) UnmarshalText(b []byte) error {
	for i, name := range labwareTypeNames {
		if name == string(b) {
			*t = LabwareType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown labware type %q", b)
}

// Fingerprint is a short hex digest of a layout file's content.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
