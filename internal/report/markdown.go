package report

import (
	"fmt"
	"strings"

	"laydeck/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// MarkdownReport renders the deck layout report.
func MarkdownReport(result domain.LayoutResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Deck Layout Report for %s\n\n", result.LayoutPath)
	fmt.Fprintf(&sb, "**Generated on:** %s\n\n", result.GeneratedAt.Format(timeLayout))
	if result.Fingerprint != "" {
		fmt.Fprintf(&sb, "**Fingerprint:** `%s`\n\n", result.Fingerprint)
	}
	sb.WriteString("## Processed Labware Information\n\n")

	if len(result.Records) == 0 {
		sb.WriteString("No labware information could be processed from the file.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "**Total Labware Instances:** %d\n\n", len(result.Records))
	sb.WriteString("| # | ID | Type | Template | X | Y | Dx | Dy | Column | Row | TipRack | AlphaIndex |\n")
	sb.WriteString("|---|----|------|----------|---|---|----|----|--------|-----|---------|------------|\n")
	for _, r := range result.Records {
		fmt.Fprintf(&sb, "| %d | `%s` | %s | %s | %.3f | %.3f | %.3f | %.3f | %d | %d | %s | %s |\n",
			r.Index, r.ID, r.LabwareType, r.Template,
			r.FinalX, r.FinalY, r.Dx, r.Dy,
			r.Column, r.Row, yesNo(r.TipRack), yesNo(r.AlphaIndex))
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
