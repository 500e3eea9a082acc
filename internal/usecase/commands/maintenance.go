package commands

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExpirySummary struct {
	Expired []uuid.UUID
	Failed  int
}

type ReconcileSummary struct {
	Corrections []item.Correction
	Failed      int
}

type LoanRefreshSummary struct {
	Refreshed []uuid.UUID
	Failed    int
}

// MaintenanceCommands are the sweeps. Each record is handled in its own
// transaction; a failing record is logged, counted and skipped. A zero
// Actor means the system ran the sweep.
type MaintenanceCommands interface {
	ExpireReservations(ctx context.Context, actor user.Actor) (*ExpirySummary, error)
	ReconcileItemStatuses(ctx context.Context, actor user.Actor) (*ReconcileSummary, error)
	RefreshLoanStatuses(ctx context.Context) (*LoanRefreshSummary, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (c *maintenanceCommandsImpl) ExpireReservations(ctx context.Context, actor user.Actor) (*ExpirySummary, error) {
	now := c.clock.Now()
	lapsed, err := c.uow.CommandReads().Reservations(ctx, shared.ReservationFilter{
		Statuses:     []reservation.Status{reservation.StatusConfirmed},
		EndingBefore: &now,
	})
	if err != nil {
		return nil, errs.Wrap(err, "list lapsed reservations")
	}

	summary := &ExpirySummary{Expired: []uuid.UUID{}}
	for _, candidate := range lapsed {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		expired := false
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			expired = false
			if _, err := tx.Items().LockByID(ctx, candidate.ItemID()); err != nil {
				return err
			}
			r, err := tx.Reads().ReservationByID(ctx, candidate.ID())
			if err != nil {
				return err
			}
			// Cancelled, rescheduled or already expired since the scan.
			if !r.HasLapsed(now) {
				return nil
			}
			if err := r.Expire(now); err != nil {
				return err
			}
			if err := tx.Reservations().Update(ctx, r); err != nil {
				return err
			}
			entry, err := history.NewReservationEntry(r.ID(), r.ItemID(), actor.IDPtr(), history.ReservationExpire, "",
				periodDetails(r.Period()), now)
			if err != nil {
				return err
			}
			expired = true
			return tx.History().AppendReservation(ctx, entry)
		})
		if err != nil {
			summary.Failed++
			slog.Warn("failed to expire reservation", "reservation_id", candidate.ID(), "error", err.Error())
			continue
		}
		if expired {
			summary.Expired = append(summary.Expired, candidate.ID())
		}
	}

	if len(summary.Expired) > 0 {
		slog.Info("reservations expired", "count", len(summary.Expired))
	}
	return summary, nil
}

// ReconcileItemStatuses repairs items stored BORROWED without a live loan,
// items stored AVAILABLE with one, and PENDING items whose reservations no
// longer hold them. Running it twice changes nothing the second time.
func (c *maintenanceCommandsImpl) ReconcileItemStatuses(ctx context.Context, actor user.Actor) (*ReconcileSummary, error) {
	now := c.clock.Now()

	var candidates []*item.Item
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		candidates, err = tx.Items().ListByStatus(ctx, item.StatusBorrowed, item.StatusAvailable, item.StatusPending)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "list items to reconcile")
	}

	summary := &ReconcileSummary{Corrections: []item.Correction{}}
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var correction item.Correction
		var changed bool
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			changed = false
			it, err := tx.Items().LockByID(ctx, candidate.ID())
			if err != nil {
				return err
			}
			loans, reservations, err := liveHoldings(ctx, tx.Reads(), it.ID(), now)
			if err != nil {
				return err
			}
			correction, changed = item.PlanCorrection(it, loans, reservations, now)
			if !changed {
				return nil
			}
			if err := tx.Items().UpdateStatus(ctx, it.ID(), correction.To, now); err != nil {
				return err
			}
			itemID := it.ID()
			entry, err := history.NewUserActionEntry(actor.IDPtr(), &itemID, history.ActionStatusReconciled, "",
				history.StatusChangeDetails{From: correction.From.String(), To: correction.To.String()}, now)
			if err != nil {
				return err
			}
			return tx.History().AppendUserAction(ctx, entry)
		})
		if err != nil {
			summary.Failed++
			slog.Warn("failed to reconcile item status", "item_id", candidate.ID(), "error", err.Error())
			continue
		}
		if changed {
			summary.Corrections = append(summary.Corrections, correction)
			slog.Info("item status reconciled", "item_id", correction.ItemID,
				"from", correction.From.String(), "to", correction.To.String())
		}
	}
	return summary, nil
}

// RefreshLoanStatuses stores the date-derived status of open loans so that
// SCHEDULED loans become ACTIVE and late ones OVERDUE.
func (c *maintenanceCommandsImpl) RefreshLoanStatuses(ctx context.Context) (*LoanRefreshSummary, error) {
	now := c.clock.Now()
	open, err := c.uow.CommandReads().Loans(ctx, shared.LoanFilter{
		Statuses: loan.OpenStatuses,
		OpenOnly: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "list open loans")
	}

	summary := &LoanRefreshSummary{Refreshed: []uuid.UUID{}}
	for _, candidate := range open {
		if candidate.EffectiveStatus(now) == candidate.Status() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		changed := false
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			changed = false
			// Returns and lost reports hold the same lock while they write.
			if _, err := tx.Items().LockByID(ctx, candidate.ItemID()); err != nil {
				return err
			}
			l, err := tx.Reads().LoanByID(ctx, candidate.ID())
			if err != nil {
				return err
			}
			from := l.Status()
			if changed = l.RefreshStatus(now); !changed {
				return nil
			}
			if err := tx.Loans().Update(ctx, l); err != nil {
				return err
			}
			entry := history.NewLoanEntry(l.ID(), l.ItemID(), nil, history.LoanStatusRefresh,
				string(from)+" -> "+string(l.Status()), now)
			return tx.History().AppendLoan(ctx, entry)
		})
		if err != nil {
			summary.Failed++
			slog.Warn("failed to refresh loan status", "loan_id", candidate.ID(), "error", err.Error())
			continue
		}
		if changed {
			summary.Refreshed = append(summary.Refreshed, candidate.ID())
		}
	}
	return summary, nil
}
