package commands

import (
	"github.com/spf13/cobra"

	"laydeck/internal/app"
)

const skipWire = "skip-wire"

var (
	home       string
	configPath string
	baseDir    string
	logLevel   string
	workers    int

	cfg    *app.Config
	appCtx *app.App
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	appCtx, cfg = nil, nil

	root := &cobra.Command{
		Use:           "laydeck",
		Short:         "Extract labware placement from deck layout files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = app.DefaultHome()
			}
			path := configPath
			if path == "" {
				path = app.ConfigPath(home)
			}

			loaded, err := app.Load(path)
			if err != nil {
				return err
			}
			loaded.Home = home

			flags := cmd.Flags()
			if flags.Changed("base-dir") {
				loaded.Labware.BaseDir = baseDir
			}
			if flags.Changed("log-level") {
				loaded.Logging.Level = logLevel
			}
			if flags.Changed("workers") {
				loaded.Pipeline.Workers = workers
			}
			cfg = loaded

			if cmd.Annotations[skipWire] != "" {
				return nil
			}
			appCtx, err = app.New(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			appCtx.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default ~/.laydeck)")
	pf.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	pf.StringVar(&baseDir, "base-dir", "", "labware base directory for relative references")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.IntVar(&workers, "workers", 0, "concurrent labware definition reads")

	root.AddCommand(parseCmd(), watchCmd(), initCmd(), fingerprintCmd())
	return root
}
