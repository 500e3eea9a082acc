package commands

import (
	"context"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// recomputeItemStatus locks the item, derives its status from live holdings
// and stores the result. honourFlag=false derives as if the item were in
// service, which is how the out-of-order flag is lifted.
func recomputeItemStatus(ctx context.Context, tx shared.Tx, itemID uuid.UUID, honourFlag bool, now time.Time) (from, to item.Status, err error) {
	it, err := tx.Items().LockByID(ctx, itemID)
	if err != nil {
		return "", "", notFound(err, ErrItemNotFound, itemID)
	}

	loans, reservations, err := liveHoldings(ctx, tx.Reads(), itemID, now)
	if err != nil {
		return "", "", err
	}

	to = item.DeriveStatus(honourFlag && it.IsOutOfOrder(), loans, reservations, now)
	if to != it.Status() {
		if err := tx.Items().UpdateStatus(ctx, itemID, to, now); err != nil {
			return "", "", errs.Wrap(err, "update item status")
		}
	}
	return it.Status(), to, nil
}

// liveHoldings loads what status derivation looks at: open loans and
// confirmed reservations that have not ended.
func liveHoldings(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID, now time.Time) ([]*loan.Loan, []*reservation.Reservation, error) {
	loans, err := reads.Loans(ctx, shared.LoanFilter{
		ItemID:   &itemID,
		Statuses: loan.OpenStatuses,
		OpenOnly: true,
	})
	if err != nil {
		return nil, nil, errs.Wrap(err, "list open loans")
	}
	reservations, err := reads.Reservations(ctx, shared.ReservationFilter{
		ItemID:     &itemID,
		Statuses:   []reservation.Status{reservation.StatusConfirmed},
		EndingFrom: &now,
	})
	if err != nil {
		return nil, nil, errs.Wrap(err, "list live reservations")
	}
	return loans, reservations, nil
}

func checkLoanConflicts(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID, p availability.Period) error {
	conflicts, err := shared.LoanConflicts(ctx, reads, itemID, p)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return availability.NewConflictError(conflicts)
	}
	return nil
}

func checkReservationConflicts(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID, p availability.Period, exclude *uuid.UUID) error {
	conflicts, err := shared.ReservationConflicts(ctx, reads, itemID, p, exclude)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return availability.NewConflictError(conflicts)
	}
	return nil
}

// asConflict turns an exclusion-constraint violation into a ConflictError,
// re-running check against committed state to describe what won the race.
func asConflict(ctx context.Context, err error, check func(ctx context.Context) error) error {
	if !infra.IsKind(err, infra.KindConflict) {
		return err
	}
	var conflictErr *availability.ConflictError
	if cerr := check(ctx); errs.As(cerr, &conflictErr) {
		return conflictErr
	}
	return availability.NewConflictError(nil)
}
