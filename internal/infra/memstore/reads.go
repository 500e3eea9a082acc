package memstore

import (
	"context"
	"sort"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// stateReads answers CommandReads from one state snapshot without locking.
type stateReads struct {
	st *state
}

func (r stateReads) ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	rec, ok := r.st.items[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "item not found", nil)
	}
	return rec.toDomain(), nil
}

func (r stateReads) LoanByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	rec, ok := r.st.loans[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "loan not found", nil)
	}
	return rec.toDomain(), nil
}

func (r stateReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.st.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return rec.toDomain(), nil
}

func (r stateReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	rec, ok := r.st.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return &shared.UserSnapshot{
		ID:       rec.id,
		Name:     rec.name,
		Email:    rec.email,
		Role:     rec.role,
		IsActive: rec.isActive,
	}, nil
}

func (r stateReads) Loans(ctx context.Context, f shared.LoanFilter) ([]*loan.Loan, error) {
	var out []*loan.Loan
	for _, rec := range r.st.loans {
		if l := rec.toDomain(); f.Matches(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BorrowedAt().Equal(out[j].BorrowedAt()) {
			return out[i].BorrowedAt().Before(out[j].BorrowedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

func (r stateReads) Reservations(ctx context.Context, f shared.ReservationFilter) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, rec := range r.st.reservations {
		if res := rec.toDomain(); f.Matches(res) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate().Equal(out[j].StartDate()) {
			return out[i].StartDate().Before(out[j].StartDate())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

func (r stateReads) LoanHoldings(ctx context.Context, f shared.LoanFilter) ([]availability.Holding, error) {
	loans, err := r.Loans(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]availability.Holding, 0, len(loans))
	for _, l := range loans {
		out = append(out, l.Holding(r.st.users[l.BorrowerID()].name))
	}
	return out, nil
}

func (r stateReads) ReservationHoldings(ctx context.Context, f shared.ReservationFilter) ([]availability.Holding, error) {
	reservations, err := r.Reservations(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]availability.Holding, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, res.Holding(r.st.users[res.UserID()].name))
	}
	return out, nil
}

// lockedReads serves committed state to callers outside a transaction.
type lockedReads struct {
	store *Store
}

func (r *lockedReads) ItemByID(ctx context.Context, id uuid.UUID) (it *item.Item, err error) {
	r.store.view(func(st *state) { it, err = stateReads{st}.ItemByID(ctx, id) })
	return it, err
}

func (r *lockedReads) LoanByID(ctx context.Context, id uuid.UUID) (l *loan.Loan, err error) {
	r.store.view(func(st *state) { l, err = stateReads{st}.LoanByID(ctx, id) })
	return l, err
}

func (r *lockedReads) ReservationByID(ctx context.Context, id uuid.UUID) (res *reservation.Reservation, err error) {
	r.store.view(func(st *state) { res, err = stateReads{st}.ReservationByID(ctx, id) })
	return res, err
}

func (r *lockedReads) UserByID(ctx context.Context, id uuid.UUID) (u *shared.UserSnapshot, err error) {
	r.store.view(func(st *state) { u, err = stateReads{st}.UserByID(ctx, id) })
	return u, err
}

func (r *lockedReads) Loans(ctx context.Context, f shared.LoanFilter) (out []*loan.Loan, err error) {
	r.store.view(func(st *state) { out, err = stateReads{st}.Loans(ctx, f) })
	return out, err
}

func (r *lockedReads) Reservations(ctx context.Context, f shared.ReservationFilter) (out []*reservation.Reservation, err error) {
	r.store.view(func(st *state) { out, err = stateReads{st}.Reservations(ctx, f) })
	return out, err
}

func (r *lockedReads) LoanHoldings(ctx context.Context, f shared.LoanFilter) (out []availability.Holding, err error) {
	r.store.view(func(st *state) { out, err = stateReads{st}.LoanHoldings(ctx, f) })
	return out, err
}

func (r *lockedReads) ReservationHoldings(ctx context.Context, f shared.ReservationFilter) (out []availability.Holding, err error) {
	r.store.view(func(st *state) { out, err = stateReads{st}.ReservationHoldings(ctx, f) })
	return out, err
}
