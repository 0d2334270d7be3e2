package deck_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laydeck/internal/deck"
	"laydeck/internal/domain"
	"laydeck/internal/paths"
	"laydeck/internal/scan"
)

// attr encodes one attribute the way layout files do: key, a short run of
// control bytes, the value, a terminator.
func attr(key, value string) string {
	return key + "\x00\x04" + value + "\x00"
}

func layout(attrs ...string) *scan.Document {
	return scan.NewString("HxCfgFile,3;\r\n" + strings.Join(attrs, ""))
}

func collect(diags *[]domain.Diagnostic) domain.DiagnosticSink {
	return func(d domain.Diagnostic) { *diags = append(*diags, d) }
}

func TestAssemble_FullRecord(t *testing.T) {
	doc := layout(
		attr("Labware.Cnt", "1"),
		attr("Labware.1.File", `ML_STAR\CORE\PLT_CAR_L5MD.tml`),
		attr("Labware.1.Id", "PLT_CAR_0001"),
		attr("Labware.1.SiteId", "1"),
		attr("Labware.1.Template", "default"),
		attr("Labware.1.ZTrans", "100.56789"),
		attr("Labware.1.ZTransValue", "-3.5"),
		attr("Labware.1.TForm.1.X", "1.0005"),
		attr("Labware.1.TForm.1.Y", "2"),
		attr("Labware.1.TForm.1.Z", "3"),
		attr("Labware.1.TForm.2.X", "4"),
		attr("Labware.1.TForm.2.Y", "5"),
		attr("Labware.1.TForm.2.Z", "6"),
		attr("Labware.1.TForm.3.X", "152.5"),
		attr("Labware.1.TForm.3.Y", "-63.25"),
		attr("Labware.1.TForm.3.Z", "0"),
	)

	var diags []domain.Diagnostic
	got := deck.Assemble(doc, paths.NewResolver(`C:\Lab\`), collect(&diags))

	want := []domain.RawLabwareRecord{{
		Index:       1,
		FilePath:    `C:\Lab\ML_STAR\CORE\PLT_CAR_L5MD.tml`,
		ID:          "PLT_CAR_0001",
		SiteID:      "1",
		Template:    "default",
		ZTrans:      100.567,
		ZTransValue: -3.5,
		TForm1:      domain.Vector3{X: 1, Y: 2, Z: 3},
		TForm2:      domain.Vector3{X: 4, Y: 5, Z: 6},
		TForm3:      domain.Vector3{X: 152.5, Y: -63.25, Z: 0},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Assemble mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, diags)
}

func TestAssemble_IndicesAreSequential(t *testing.T) {
	doc := layout(
		attr("Labware.Cnt", "3"),
		attr("Labware.3.Id", "third"),
		attr("Labware.1.Id", "first"),
	)

	got := deck.Assemble(doc, paths.NewResolver(""), nil)
	require.Len(t, got, 3)
	for i, rec := range got {
		assert.Equal(t, i+1, rec.Index)
	}
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, domain.RawLabwareRecord{Index: 2}, got[1])
	assert.Equal(t, "third", got[2].ID)
}

func TestAssemble_MissingCount(t *testing.T) {
	var diags []domain.Diagnostic
	got := deck.Assemble(layout(attr("Labware.1.Id", "x")), paths.NewResolver(""), collect(&diags))

	assert.Empty(t, got)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.ReasonCountMissing, diags[0].Reason)
}

func TestAssemble_UnparsableCount(t *testing.T) {
	got := deck.Assemble(layout(attr("Labware.Cnt", "abc")), paths.NewResolver(""), nil)
	assert.Empty(t, got)
}

func TestAssemble_ZeroCount(t *testing.T) {
	got := deck.Assemble(layout(attr("Labware.Cnt", "0")), paths.NewResolver(""), nil)
	assert.Empty(t, got)
}

func TestAssemble_HugeCountIsClamped(t *testing.T) {
	var diags []domain.Diagnostic
	got := deck.Assemble(scan.NewString("Labware.Cnt 2147483647\x00"), paths.NewResolver(""), collect(&diags))

	require.Len(t, got, deck.MaxCount)
	assert.Equal(t, deck.MaxCount, got[len(got)-1].Index)
	require.NotEmpty(t, diags)
	assert.Equal(t, domain.Diagnostic{Field: deck.CountKey, Reason: domain.ReasonCountClamped}, diags[0])
}

func TestAssemble_FieldDiagnostics(t *testing.T) {
	doc := layout(
		attr("Labware.Cnt", "1"),
		attr("Labware.1.File", "rack.rck"),
		attr("Labware.1.Id", "R1"),
		attr("Labware.1.SiteId", "2"),
		attr("Labware.1.Template", "T"),
		attr("Labware.1.ZTrans", "1.2.3"),
		attr("Labware.1.ZTransValue", "0"),
		attr("Labware.1.TForm.1.X", "0"), attr("Labware.1.TForm.1.Y", "0"), attr("Labware.1.TForm.1.Z", "0"),
		attr("Labware.1.TForm.2.X", "0"), attr("Labware.1.TForm.2.Y", "0"), attr("Labware.1.TForm.2.Z", "0"),
		attr("Labware.1.TForm.3.X", "7"), attr("Labware.1.TForm.3.Z", "0"),
	)

	var diags []domain.Diagnostic
	got := deck.Assemble(doc, paths.NewResolver("/lab"), collect(&diags))

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].ZTrans)
	assert.Equal(t, domain.Vector3{X: 7}, got[0].TForm3)
	assert.Equal(t, "/lab/rack.rck", got[0].FilePath)

	want := []domain.Diagnostic{
		{Index: 1, Field: "ZTrans", Reason: domain.ReasonUnparsable},
		{Index: 1, Field: "TForm.3.Y", Reason: domain.ReasonMissing},
	}
	if diff := cmp.Diff(want, diags); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_MissingFileStaysEmpty(t *testing.T) {
	doc := layout(attr("Labware.Cnt", "1"), attr("Labware.1.Id", "X"))
	got := deck.Assemble(doc, paths.NewResolver(`C:\Lab\`), nil)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].FilePath)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "Labware.12.TForm.3", deck.Key(12, "TForm.3"))
}
