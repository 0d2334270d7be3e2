package layout

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"laydeck/internal/deck"
	"laydeck/internal/derive"
	"laydeck/internal/digest"
	"laydeck/internal/domain"
	"laydeck/internal/scan"
)

// DefaultWorkers bounds concurrent definition reads when none is configured.
const DefaultWorkers = 4

// Option customises a Service.
type Option func(*Service)

// WithWorkers sets the worker pool size. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithClock overrides the time source used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service runs the pipeline.
type Service struct {
	layouts  domain.LayoutStore
	labware  domain.LabwareStore
	resolver domain.PathResolver
	log      *zap.Logger
	workers  int
	now      func() time.Time
}

// New returns a layout service backed by the given stores and resolver.
func New(
	layouts domain.LayoutStore,
	labware domain.LabwareStore,
	resolver domain.PathResolver,
	log *zap.Logger,
	opts ...Option,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		layouts:  layouts,
		labware:  labware,
		resolver: resolver,
		log:      log,
		workers:  DefaultWorkers,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process extracts and derives every labware record of the layout at
// layoutPath.
//
// An unreadable layout yields an empty result together with an error wrapping
// domain.ErrLayoutUnreadable. The only other error is ctx's.
func (s *Service) Process(ctx context.Context, layoutPath string) (domain.LayoutResult, error) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("layout", layoutPath))

	result := domain.LayoutResult{
		RunID:       runID,
		LayoutPath:  layoutPath,
		GeneratedAt: s.now(),
		Records:     []domain.DerivedLabwareRecord{},
	}
	diags := &collector{log: log}

	content, err := s.layouts.ReadLayout(layoutPath)
	if err != nil {
		if !errors.Is(err, domain.ErrLayoutUnreadable) {
			err = fmt.Errorf("%w: %w", domain.ErrLayoutUnreadable, err)
		}
		log.Warn("Layout unreadable", zap.Error(err))
		diags.add(domain.Diagnostic{Path: layoutPath, Reason: domain.ReasonFileUnreadable})
		result.Diagnostics = diags.sorted()
		return result, err
	}
	result.Fingerprint = digest.Fingerprint(content)

	raws := deck.Assemble(scan.New(content), s.resolver, diags.add)
	log.Debug("Layout assembled", zap.Int("records", len(raws)), zap.String("fingerprint", result.Fingerprint.String()))

	records, err := s.deriveAll(ctx, raws, diags, log)
	if err != nil {
		return result, err
	}
	result.Records = records
	result.Diagnostics = diags.sorted()

	log.Info("Layout processed",
		zap.Int("records", len(records)),
		zap.Int("diagnostics", len(result.Diagnostics)))
	return result, nil
}

func (s *Service) deriveAll(
	ctx context.Context,
	raws []domain.RawLabwareRecord,
	diags *collector,
	log *zap.Logger,
) ([]domain.DerivedLabwareRecord, error) {
	out := make([]domain.DerivedLabwareRecord, len(raws))
	cache := newPropertyCache(s.labware, diags.add, log)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			props, reason := cache.load(raw.FilePath)
			if reason != "" {
				diags.add(domain.Diagnostic{Index: raw.Index, Path: raw.FilePath, Reason: reason})
			}
			out[i] = derive.Derive(raw, props)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// collector gathers diagnostics from concurrent workers.
type collector struct {
	mu    sync.Mutex
	log   *zap.Logger
	items []domain.Diagnostic
}

func (c *collector) add(d domain.Diagnostic) {
	c.log.Debug("Default substituted", zap.Stringer("diagnostic", d))
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// sorted returns the diagnostics ordered by record, then field, then path.
func (c *collector) sorted() []domain.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := slices.Clone(c.items)
	slices.SortStableFunc(out, func(a, b domain.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Index, b.Index),
			cmp.Compare(a.Field, b.Field),
			cmp.Compare(a.Path, b.Path),
		)
	})
	return out
}

// Compile-time assertion that Service implements domain.LayoutService.
var _ domain.LayoutService = (*Service)(nil)
