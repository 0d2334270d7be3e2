package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laydeck/internal/domain/types"
)

func TestVector3_String(t *testing.T) {
	v := types.Vector3{X: 1.5, Y: -63.25, Z: 0}
	assert.Equal(t, "X=1.500, Y=-63.250, Z=0.000", v.String())
}

func TestLabwareType_Text(t *testing.T) {
	b, err := types.RackCarrier.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "RackCarrier", string(b))

	var lt types.LabwareType
	require.NoError(t, lt.UnmarshalText([]byte("Container")))
	assert.Equal(t, types.Container, lt)
	assert.Error(t, lt.UnmarshalText([]byte("Plate")))

	assert.Equal(t, "Unknown", types.LabwareType(42).String())
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "labware 3: ZTrans unparsable",
		types.Diagnostic{Index: 3, Field: "ZTrans", Reason: types.ReasonUnparsable}.String())
	assert.Equal(t, "labware 2: /lab/a.rck file-missing",
		types.Diagnostic{Index: 2, Path: "/lab/a.rck", Reason: types.ReasonFileMissing}.String())
	assert.Equal(t, "Labware.Cnt: count-missing",
		types.Diagnostic{Field: "Labware.Cnt", Reason: types.ReasonCountMissing}.String())
}

func TestDiagnosticSink_NilDiscards(t *testing.T) {
	var sink types.DiagnosticSink
	assert.NotPanics(t, func() { sink.Report(types.Diagnostic{}) })
}
