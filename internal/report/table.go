package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"laydeck/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var tableHeaders = []string{
	"#", "ID", "Type", "Template", "X", "Y", "Dx", "Dy", "Column", "Row", "TipRack", "AlphaIndex",
}

// numeric columns are right-aligned
var numericColumn = map[int]bool{0: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true}

// Table renders the labware records as a bordered terminal table.
func Table(records []domain.DerivedLabwareRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			r.ID,
			r.LabwareType.String(),
			r.Template,
			fmt.Sprintf("%.3f", r.FinalX),
			fmt.Sprintf("%.3f", r.FinalY),
			fmt.Sprintf("%.3f", r.Dx),
			fmt.Sprintf("%.3f", r.Dy),
			strconv.Itoa(r.Column),
			strconv.Itoa(r.Row),
			yesNo(r.TipRack),
			yesNo(r.AlphaIndex),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numericColumn[col]:
				return numStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}
