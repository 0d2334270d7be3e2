package app

import (
	"fmt"

	"go.uber.org/zap"

	"laydeck/internal/domain"
	"laydeck/internal/logging"
	"laydeck/internal/paths"
	"laydeck/internal/report"
	layoutsvc "laydeck/internal/services/layout"
	"laydeck/internal/store"
)

// Wire bundles the stores, services and writers used by the CLI.
type Wire struct {
	Log         *zap.Logger
	Resolver    *paths.Resolver
	Layouts     domain.LayoutService
	Layout      domain.LayoutStore
	ReportStore domain.ReportStore
	Reports     *report.Writer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		// fall back to stderr when the log file cannot be opened
		fallback := cfg.Logging
		fallback.OutputPath = ""
		log = logging.NewOrNop(fallback)
		log.Warn("Log file unavailable, logging to stderr",
			zap.String("file", cfg.Logging.OutputPath), zap.Error(err))
	}

	// File-based stores
	layoutStore := store.NewLayoutFileStore()
	labwareStore := store.NewLabwareFileStore()
	reportStore := store.NewReportFileStore()

	resolver := paths.NewResolver(cfg.Labware.BaseDir)

	log.Debug("Wired",
		zap.String("base_dir", resolver.Base()),
		zap.Int("workers", cfg.Pipeline.Workers),
		zap.String("report_format", string(cfg.ReportFormat())))

	layouts := layoutsvc.New(layoutStore, labwareStore, resolver, log,
		layoutsvc.WithWorkers(cfg.Pipeline.Workers))

	return &Wire{
		Log:         log,
		Resolver:    resolver,
		Layouts:     layouts,
		Layout:      layoutStore,
		ReportStore: reportStore,
		Reports:     report.NewWriter(reportStore, cfg.ReportFormat(), cfg.Report.Dir),
	}, nil
}
