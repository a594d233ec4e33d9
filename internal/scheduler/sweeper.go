package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

var sweptDocumentsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storefront_swept_documents_total",
	Help: "Total number of expired checkout drafts and carts removed by the sweeper",
})

// Store deletes documents last written before cutoff.
type Store interface {
	Sweep(cutoff time.Time) (int, error)
}

// DraftSweeper periodically expires checkout drafts and carts kept by a
// backend without native TTLs.
type DraftSweeper struct {
	cron   *cron.Cron
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewDraftSweeper creates a sweeper removing documents older than ttl.
func NewDraftSweeper(store Store, ttl time.Duration, logger *slog.Logger) *DraftSweeper {
	return &DraftSweeper{
		cron:   cron.New(),
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Start schedules the sweep with a cron spec (e.g. "@hourly", "0 * * * *")
// and starts the scheduler in the background.
func (s *DraftSweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.RunOnce() }); err != nil {
		return fmt.Errorf("schedule draft sweep %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("draft sweeper started",
		slog.String("schedule", schedule),
		slog.Duration("ttl", s.ttl),
	)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish or ctx
// to end.
func (s *DraftSweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	s.logger.Info("draft sweeper stopped")
}

// RunOnce removes every document untouched for longer than the TTL.
func (s *DraftSweeper) RunOnce() (int, error) {
	removed, err := s.store.Sweep(s.now().Add(-s.ttl))
	sweptDocumentsTotal.Add(float64(removed))
	if err != nil {
		s.logger.Error("draft sweep failed",
			slog.Int("removed", removed),
			slog.String("error", err.Error()),
		)
		return removed, err
	}
	if removed > 0 {
		s.logger.Info("expired drafts removed", slog.Int("removed", removed))
	}
	return removed, nil
}
