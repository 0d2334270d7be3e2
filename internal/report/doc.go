// Package report renders pipeline results for people and tools.
//
// Formats
//
//   - markdown  The deck layout report: header, totals and one table row per
//     labware. This is the default and what the desktop tool produced.
//   - csv       One row per labware with every derived field.
//   - json      The full LayoutResult including diagnostics.
//
// Table renders the same rows for a terminal with lipgloss, and Terminal
// styles a markdown report with glamour. Writer picks the output path next
// to the layout (or under a configured directory) and saves through a
// domain.ReportStore.
package report
