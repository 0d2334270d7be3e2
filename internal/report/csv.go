package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"laydeck/internal/domain"
)

var csvHeader = []string{
	"index", "id", "file_path", "labware_type", "template",
	"final_x", "final_y", "final_z", "dx", "dy",
	"column", "row", "loadable", "tip_rack", "alpha_index",
}

// CSVReport renders one row per labware record.
func CSVReport(result domain.LayoutResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range result.Records {
		row := []string{
			strconv.Itoa(r.Index),
			r.ID,
			r.FilePath,
			r.LabwareType.String(),
			r.Template,
			formatFloat(r.FinalX),
			formatFloat(r.FinalY),
			formatFloat(r.FinalZ),
			formatFloat(r.Dx),
			formatFloat(r.Dy),
			strconv.Itoa(r.Column),
			strconv.Itoa(r.Row),
			strconv.FormatBool(r.Loadable),
			strconv.FormatBool(r.TipRack),
			strconv.FormatBool(r.AlphaIndex),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
