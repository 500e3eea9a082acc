package queries

import (
	"context"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.NewKind(errs.ErrNotFound, "item not found")

type AvailabilityQueries interface {
	GetItemAvailability(ctx context.Context, itemID uuid.UUID) (*ItemAvailabilityView, error)
	// CheckLoan answers whether a loan over [start, end) would be accepted right now.
	CheckLoan(ctx context.Context, itemID uuid.UUID, start, end time.Time) (*ConflictCheckView, error)
	CheckReservation(ctx context.Context, itemID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*ConflictCheckView, error)
}

type availabilityQueriesImpl struct {
	reads shared.CommandReads
	clock clock.Clock
}

func NewAvailabilityQueries(reads shared.CommandReads, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, clock: clk}
}

func (q *availabilityQueriesImpl) GetItemAvailability(ctx context.Context, itemID uuid.UUID) (*ItemAvailabilityView, error) {
	it, err := q.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()

	loans, err := q.reads.Loans(ctx, shared.LoanFilter{
		ItemID:   &itemID,
		Statuses: loan.OpenStatuses,
		OpenOnly: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "list open loans")
	}
	reservations, err := q.reads.Reservations(ctx, shared.ReservationFilter{
		ItemID:     &itemID,
		Statuses:   []reservation.Status{reservation.StatusConfirmed},
		EndingFrom: &now,
	})
	if err != nil {
		return nil, errs.Wrap(err, "list live reservations")
	}

	derived := item.DeriveStatus(it.IsOutOfOrder(), loans, reservations, now)

	view := &ItemAvailabilityView{
		Item:          NewItemView(it),
		DerivedStatus: derived.String(),
		Consistent:    derived == it.Status(),
		Loans:         make([]LoanView, 0, len(loans)),
		Reservations:  make([]ReservationView, 0, len(reservations)),
	}
	for _, l := range loans {
		view.Loans = append(view.Loans, NewLoanView(l, now))
	}
	for _, r := range reservations {
		view.Reservations = append(view.Reservations, NewReservationView(r))
	}
	return view, nil
}

func (q *availabilityQueriesImpl) CheckLoan(ctx context.Context, itemID uuid.UUID, start, end time.Time) (*ConflictCheckView, error) {
	period, err := availability.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	if _, err := q.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	conflicts, err := shared.LoanConflicts(ctx, q.reads, itemID, period)
	if err != nil {
		return nil, err
	}
	return newConflictCheckView(conflicts), nil
}

func (q *availabilityQueriesImpl) CheckReservation(ctx context.Context, itemID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*ConflictCheckView, error) {
	period, err := availability.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	if _, err := q.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	conflicts, err := shared.ReservationConflicts(ctx, q.reads, itemID, period, exclude)
	if err != nil {
		return nil, err
	}
	return newConflictCheckView(conflicts), nil
}

func (q *availabilityQueriesImpl) findItem(ctx context.Context, itemID uuid.UUID) (*item.Item, error) {
	it, err := q.reads.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrItemNotFound, "id %s", itemID)
		}
		return nil, err
	}
	return it, nil
}

func newConflictCheckView(conflicts []availability.Holding) *ConflictCheckView {
	return &ConflictCheckView{
		Available: len(conflicts) == 0,
		Conflicts: NewConflictViews(conflicts),
	}
}
