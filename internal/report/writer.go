package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"laydeck/internal/domain"
	"laydeck/internal/paths"
)

// Writer saves rendered reports through a ReportStore.
type Writer struct {
	store  domain.ReportStore
	format Format
	dir    string
}

// NewWriter returns a Writer for format f. An empty dir writes each report
// next to its layout file.
func NewWriter(store domain.ReportStore, f Format, dir string) *Writer {
	if f == "" {
		f = Markdown
	}
	return &Writer{store: store, format: f, dir: dir}
}

// Format returns the writer's report format.
func (w *Writer) Format() Format { return w.format }

// Path returns where the report for layoutPath is written: the layout path
// with the format's extension, moved under the writer's dir if it has one.
func (w *Writer) Path(layoutPath string) string {
	p := paths.ChangeExt(layoutPath, w.format.Ext())
	if w.dir == "" {
		return p
	}
	name := p
	if i := strings.LastIndexAny(name, `/\:`); i >= 0 {
		name = name[i+1:]
	}
	return filepath.Join(w.dir, name)
}

// Write renders result and saves it, returning the report path.
func (w *Writer) Write(result domain.LayoutResult) (string, error) {
	data, err := Render(w.format, result)
	if err != nil {
		return "", fmt.Errorf("render %s report: %w", w.format, err)
	}
	path := w.Path(result.LayoutPath)
	if err := w.store.SaveReport(path, data); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
