package shared

import (
	"context"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// LoanConflicts lists what blocks a loan of itemID over p: open loans and
// confirmed reservations whose periods overlap it.
func LoanConflicts(ctx context.Context, reads CommandReads, itemID uuid.UUID, p availability.Period) ([]availability.Holding, error) {
	loans, err := reads.LoanHoldings(ctx, LoanFilter{
		ItemID:      &itemID,
		Statuses:    loan.OpenStatuses,
		OpenOnly:    true,
		Overlapping: &p,
	})
	if err != nil {
		return nil, errs.Wrap(err, "query overlapping loans")
	}

	reservations, err := reads.ReservationHoldings(ctx, ReservationFilter{
		ItemID:      &itemID,
		Statuses:    []reservation.Status{reservation.StatusConfirmed},
		Overlapping: &p,
	})
	if err != nil {
		return nil, errs.Wrap(err, "query overlapping reservations")
	}

	return availability.FindConflicts(p, append(loans, reservations...)), nil
}

// ReservationConflicts lists confirmed reservations overlapping p, skipping
// exclude. Loans are not consulted for reservations.
func ReservationConflicts(ctx context.Context, reads CommandReads, itemID uuid.UUID, p availability.Period, exclude *uuid.UUID) ([]availability.Holding, error) {
	reservations, err := reads.ReservationHoldings(ctx, ReservationFilter{
		ItemID:      &itemID,
		Statuses:    []reservation.Status{reservation.StatusConfirmed},
		Overlapping: &p,
		ExcludeID:   exclude,
	})
	if err != nil {
		return nil, errs.Wrap(err, "query overlapping reservations")
	}
	return availability.FindConflicts(p, reservations), nil
}
