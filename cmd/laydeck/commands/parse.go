package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"laydeck/internal/domain"
	"laydeck/internal/report"
	"laydeck/internal/watch"
)

type parseOptions struct {
	format      string
	out         string
	render      bool
	any         bool
	noReport    bool
	diagnostics bool
}

func parseCmd() *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse <layout.lay>...",
		Short: "Extract labware from deck layouts and write reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := appCtx.Reports
			if opts.format != "" || opts.out != "" {
				f := appCtx.Reports.Format()
				if opts.format != "" {
					parsed, err := report.ParseFormat(opts.format)
					if err != nil {
						return err
					}
					f = parsed
				}
				dir := cfg.Report.Dir
				if opts.out != "" {
					dir = opts.out
				}
				writer = report.NewWriter(appCtx.ReportStore, f, dir)
			}

			for _, path := range args {
				if !opts.any && !watch.IsLayout(path) {
					return fmt.Errorf("%s: not a deck layout file (%s); use --any to parse it anyway", path, watch.LayoutExt)
				}
				if err := parseOne(cmd.Context(), cmd.OutOrStdout(), path, writer, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "", "report format: markdown, csv or json (default from config)")
	f.StringVar(&opts.out, "out", "", "directory for report files (default next to the layout)")
	f.BoolVar(&opts.render, "render", false, "print the styled markdown report instead of a table")
	f.BoolVar(&opts.any, "any", false, "accept files without the .lay extension")
	f.BoolVar(&opts.noReport, "no-report", false, "do not write a report file")
	f.BoolVarP(&opts.diagnostics, "diagnostics", "d", false, "list every default substitution")
	return cmd
}

func parseOne(ctx context.Context, out io.Writer, path string, writer *report.Writer, opts parseOptions) error {
	result, err := appCtx.Layouts.Process(ctx, path)
	switch {
	case errors.Is(err, domain.ErrLayoutUnreadable):
		appCtx.Log.Warn("Layout unreadable, reporting it empty", zap.String("layout", path), zap.Error(err))
	case err != nil:
		return err
	}

	if opts.render {
		styled, err := report.Terminal(report.MarkdownReport(result), 0)
		if err != nil {
			return err
		}
		fmt.Fprint(out, styled)
	} else {
		fmt.Fprintf(out, "%s (%d labware, fingerprint %s)\n", path, len(result.Records), result.Fingerprint)
		if len(result.Records) > 0 {
			fmt.Fprintln(out, report.Table(result.Records))
		}
	}

	printDiagnostics(out, result.Diagnostics, opts.diagnostics)

	if opts.noReport {
		return nil
	}
	reportPath, err := writer.Write(result)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Report written to %s\n", reportPath)
	return nil
}

func printDiagnostics(out io.Writer, diags []domain.Diagnostic, all bool) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintf(out, "%d value(s) defaulted\n", len(diags))
	if !all {
		return
	}
	for _, d := range diags {
		fmt.Fprintf(out, "  %s\n", d)
	}
}
