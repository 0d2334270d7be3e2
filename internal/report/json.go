package report

import (
	"encoding/json"

	"laydeck/internal/domain"
)

// JSONReport renders the whole result, diagnostics included.
func JSONReport(result domain.LayoutResult) ([]byte, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
