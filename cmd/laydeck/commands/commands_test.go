package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laydeck/internal/digest"
)

func attr(key, value string) string {
	return key + "\x00\x04" + value + "\x00"
}

// run executes the CLI with an isolated home and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", t.TempDir(), "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeDeck(t *testing.T) (dir, layout string) {
	t.Helper()
	dir = t.TempDir()
	rack := filepath.Join(dir, "plate.rck")
	require.NoError(t, os.WriteFile(rack, []byte(strings.Join([]string{
		attr("Dim.Dx", "127.76"), attr("Dim.Dy", "85.48"),
		attr("Rows", "8"), attr("Columns", "12"),
	}, "")), 0o600))

	layout = filepath.Join(dir, "deck.lay")
	require.NoError(t, os.WriteFile(layout, []byte(strings.Join([]string{
		attr("Labware.Cnt", "1"),
		attr("Labware.1.File", "plate.rck"),
		attr("Labware.1.Id", "PLATE_01"),
		attr("Labware.1.SiteId", "1"),
		attr("Labware.1.Template", "PLT_CAR"),
		attr("Labware.1.TForm.3.X", "100"),
		attr("Labware.1.TForm.3.Y", "200"),
	}, "")), 0o600))
	return dir, layout
}

func TestParse_WritesMarkdownReport(t *testing.T) {
	dir, layout := writeDeck(t)

	out, err := run(t, "--base-dir", dir, "parse", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "PLATE_01")
	assert.Contains(t, out, "Report written to "+filepath.Join(dir, "deck.md"))

	md, err := os.ReadFile(filepath.Join(dir, "deck.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "**Total Labware Instances:** 1")
	assert.Contains(t, string(md), "| 1 | `PLATE_01` | Rack | PLT_CAR |")
}

func TestParse_FormatAndOut(t *testing.T) {
	dir, layout := writeDeck(t)
	outDir := filepath.Join(dir, "reports")

	_, err := run(t, "--base-dir", dir, "parse", "--format", "csv", "--out", outDir, layout)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "deck.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "deck.md"))
}

func TestParse_Diagnostics(t *testing.T) {
	dir, layout := writeDeck(t)

	out, err := run(t, "--base-dir", dir, "parse", "--no-report", "-d", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "labware 1: ZTrans missing")
	assert.NoFileExists(t, filepath.Join(dir, "deck.md"))
}

func TestParse_RejectsOtherExtensions(t *testing.T) {
	dir, layout := writeDeck(t)
	other := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.Rename(layout, other))

	_, err := run(t, "parse", "--no-report", other)
	assert.ErrorContains(t, err, "not a deck layout file")

	_, err = run(t, "--base-dir", dir, "parse", "--no-report", "--any", other)
	assert.NoError(t, err)
}

func TestParse_UnreadableLayoutWritesEmptyReportAndContinues(t *testing.T) {
	dir, layout := writeDeck(t)
	missing := filepath.Join(dir, "missing.lay")

	out, err := run(t, "--base-dir", dir, "parse", missing, layout)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+filepath.Join(dir, "missing.md"))
	assert.Contains(t, out, "Report written to "+filepath.Join(dir, "deck.md"))

	empty, err := os.ReadFile(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	assert.Contains(t, string(empty), "No labware information could be processed from the file.")

	md, err := os.ReadFile(filepath.Join(dir, "deck.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "`PLATE_01`")
}

func TestFingerprint(t *testing.T) {
	_, layout := writeDeck(t)
	content, err := os.ReadFile(layout)
	require.NoError(t, err)

	out, err := run(t, "fingerprint", layout)
	require.NoError(t, err)
	assert.Equal(t, string(digest.Fingerprint(content))+"  "+layout+"\n", out)
}

func TestInit_WritesConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := run(t, "--config", path, "--workers", "3", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "workers: 3")

	_, err = run(t, "--config", path, "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "--config", path, "init", "--force")
	assert.NoError(t, err)
}
