package report

import (
	"fmt"
	"strings"

	"laydeck/internal/domain"
)

// Format is a report encoding.
type Format string

const (
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
)

// ParseFormat accepts a format name (or its file extension), case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "markdown", "md":
		return Markdown, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown report format %q (want markdown, csv or json)", s)
}

// Ext returns the file extension used for the format.
func (f Format) Ext() string {
	switch f {
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	}
	return ".md"
}

// Render encodes result in format f.
func Render(f Format, result domain.LayoutResult) ([]byte, error) {
	switch f {
	case Markdown, "":
		return []byte(MarkdownReport(result)), nil
	case CSV:
		return CSVReport(result)
	case JSON:
		return JSONReport(result)
	}
	return nil, fmt.Errorf("unknown report format %q", f)
}
