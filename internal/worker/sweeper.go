// Package worker runs the periodic maintenance sweep.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lending-core/internal/domain/user"
	"lending-core/internal/infra/lease"
	"lending-core/internal/pkg/config"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/commands"
)

type RunSummary struct {
	// Skipped is set when another instance held the lease.
	Skipped        bool
	Expired        int
	LoansRefreshed int
	Corrections    int
	Failed         int
}

// Sweeper expires lapsed reservations, stores date-derived loan statuses and
// reconciles item statuses, in that order, under a shared lease.
type Sweeper struct {
	maintenance commands.MaintenanceCommands
	locker      lease.Locker
	cfg         config.SweepConfig
	logger      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(maintenance commands.MaintenanceCommands, locker lease.Locker, cfg config.SweepConfig, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		maintenance: maintenance,
		locker:      locker,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) (*RunSummary, error) {
	acquired, err := s.locker.TryAcquire(ctx, s.cfg.LeaseKey, s.cfg.LeaseTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		s.logger.Debug("sweep skipped, lease held elsewhere", "key", s.cfg.LeaseKey)
		return &RunSummary{Skipped: true}, nil
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), s.cfg.LeaseKey); err != nil {
			s.logger.Warn("failed to release sweep lease", "key", s.cfg.LeaseKey, "error", err.Error())
		}
	}()

	system := user.Actor{}
	summary := &RunSummary{}

	expired, err := s.maintenance.ExpireReservations(ctx, system)
	if err != nil {
		return summary, errs.Wrap(err, "expire reservations")
	}
	summary.Expired = len(expired.Expired)
	summary.Failed += expired.Failed

	refreshed, err := s.maintenance.RefreshLoanStatuses(ctx)
	if err != nil {
		return summary, errs.Wrap(err, "refresh loan statuses")
	}
	summary.LoansRefreshed = len(refreshed.Refreshed)
	summary.Failed += refreshed.Failed

	reconciled, err := s.maintenance.ReconcileItemStatuses(ctx, system)
	if err != nil {
		return summary, errs.Wrap(err, "reconcile item statuses")
	}
	summary.Corrections = len(reconciled.Corrections)
	summary.Failed += reconciled.Failed

	s.logger.Info("sweep finished",
		"expired", summary.Expired,
		"loans_refreshed", summary.LoansRefreshed,
		"corrections", summary.Corrections,
		"failed", summary.Failed)
	return summary, nil
}

// Start runs the sweep every cfg.Interval until Stop. A non-positive
// interval leaves the sweeper idle.
func (s *Sweeper) Start(_ context.Context) error {
	if s.cfg.Interval <= 0 {
		s.logger.Info("sweeper disabled")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)
	s.logger.Info("sweeper started", "interval", s.cfg.Interval.String())
	return nil
}

func (s *Sweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("sweep failed", "error", err.Error())
			}
		}
	}
}

// Stop cancels the loop and waits for an in-flight sweep, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
