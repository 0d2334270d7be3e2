package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"laydeck/internal/domain"
	"laydeck/internal/watch"
)

func watchCmd() *cobra.Command {
	var existing bool
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Process deck layouts as they are written to a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			debounce, err := cfg.DebounceDuration()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := appCtx.Log
			handle := func(ctx context.Context, path string) {
				result, err := appCtx.Layouts.Process(ctx, path)
				switch {
				case errors.Is(err, domain.ErrLayoutUnreadable):
					log.Warn("layout unreadable, reporting it empty", zap.String("layout", path), zap.Error(err))
				case err != nil:
					log.Error("process layout", zap.String("layout", path), zap.Error(err))
					return
				}
				reportPath, err := appCtx.Reports.Write(result)
				if err != nil {
					log.Error("write report", zap.String("layout", path), zap.Error(err))
					return
				}
				log.Info("report written",
					zap.String("layout", path),
					zap.String("report", reportPath),
					zap.Int("labware", len(result.Records)),
					zap.Int("diagnostics", len(result.Diagnostics)))
			}

			w := watch.New(dir, debounce, handle, log)
			if existing {
				paths, err := watch.Existing(dir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					handle(ctx, p)
				}
			}
			return w.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&existing, "existing", false, "process layouts already in the directory first")
	return cmd
}
