package memstore

import (
	"context"
	"sort"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"

	"github.com/google/uuid"
)

// Writes enforce the same constraints as the SQL schema: foreign keys and
// the no-overlap exclusions on open loans and confirmed reservations.

type itemRepo struct{ st *state }

func (r itemRepo) Create(ctx context.Context, it *item.Item) error {
	if _, ok := r.st.items[it.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "item already exists", nil)
	}
	r.st.items[it.ID()] = itemToRecord(it)
	return nil
}

func (r itemRepo) LockByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return stateReads{r.st}.ItemByID(ctx, id)
}

func (r itemRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status item.Status, now time.Time) error {
	rec, ok := r.st.items[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "item not found", nil)
	}
	rec.status = status
	rec.updatedAt = now
	r.st.items[id] = rec
	return nil
}

func (r itemRepo) ListByStatus(ctx context.Context, statuses ...item.Status) ([]*item.Item, error) {
	var out []*item.Item
	for _, rec := range r.st.items {
		for _, s := range statuses {
			if rec.status == s {
				out = append(out, rec.toDomain())
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

type loanRepo struct{ st *state }

func (r loanRepo) Create(ctx context.Context, l *loan.Loan) error {
	if _, ok := r.st.loans[l.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "loan already exists", nil)
	}
	if _, ok := r.st.items[l.ItemID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "loan item does not exist", nil)
	}
	if _, ok := r.st.users[l.BorrowerID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "loan borrower does not exist", nil)
	}
	rec := loanToRecord(l)
	if r.overlapsOpenLoan(rec) {
		return infra.NewRepoErr(infra.KindConflict, "loan overlaps an open loan", nil)
	}
	r.st.loans[l.ID()] = rec
	return nil
}

func (r loanRepo) Update(ctx context.Context, l *loan.Loan) error {
	if _, ok := r.st.loans[l.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "loan not found", nil)
	}
	rec := loanToRecord(l)
	if r.overlapsOpenLoan(rec) {
		return infra.NewRepoErr(infra.KindConflict, "loan overlaps an open loan", nil)
	}
	r.st.loans[l.ID()] = rec
	return nil
}

func (r loanRepo) overlapsOpenLoan(rec loanRecord) bool {
	if !rec.isOpen() {
		return false
	}
	p := availability.ReconstructPeriod(rec.borrowedAt, rec.dueAt)
	for id, other := range r.st.loans {
		if id == rec.id || other.itemID != rec.itemID || !other.isOpen() {
			continue
		}
		if availability.Overlaps(p, availability.ReconstructPeriod(other.borrowedAt, other.dueAt)) {
			return true
		}
	}
	return false
}

func (rec loanRecord) isOpen() bool {
	return rec.returnedAt == nil && rec.status.IsOpen()
}

type reservationRepo struct{ st *state }

func (r reservationRepo) Create(ctx context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.reservations[res.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists", nil)
	}
	if _, ok := r.st.items[res.ItemID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "reservation item does not exist", nil)
	}
	if _, ok := r.st.users[res.UserID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "reservation user does not exist", nil)
	}
	rec := reservationToRecord(res)
	if r.overlapsConfirmed(rec) {
		return infra.NewRepoErr(infra.KindConflict, "reservation overlaps a confirmed reservation", nil)
	}
	r.st.reservations[res.ID()] = rec
	return nil
}

func (r reservationRepo) Update(ctx context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.reservations[res.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	rec := reservationToRecord(res)
	if r.overlapsConfirmed(rec) {
		return infra.NewRepoErr(infra.KindConflict, "reservation overlaps a confirmed reservation", nil)
	}
	r.st.reservations[res.ID()] = rec
	return nil
}

func (r reservationRepo) overlapsConfirmed(rec reservationRecord) bool {
	if rec.status != reservation.StatusConfirmed {
		return false
	}
	p := availability.ReconstructPeriod(rec.startDate, rec.endDate)
	for id, other := range r.st.reservations {
		if id == rec.id || other.itemID != rec.itemID || other.status != reservation.StatusConfirmed {
			continue
		}
		if availability.Overlaps(p, availability.ReconstructPeriod(other.startDate, other.endDate)) {
			return true
		}
	}
	return false
}

type historyRepo struct{ st *state }

// knownActor mirrors the actor_id foreign key of the history tables.
func (r historyRepo) knownActor(actorID *uuid.UUID) error {
	if actorID == nil {
		return nil
	}
	if _, ok := r.st.users[*actorID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "history actor does not exist", nil)
	}
	return nil
}

func (r historyRepo) AppendLoan(ctx context.Context, e history.LoanEntry) error {
	if err := r.knownActor(e.ActorID); err != nil {
		return err
	}
	r.st.loanHistory = append(r.st.loanHistory, e)
	return nil
}

func (r historyRepo) AppendReservation(ctx context.Context, e history.ReservationEntry) error {
	if err := r.knownActor(e.ActorID); err != nil {
		return err
	}
	r.st.reservationHistory = append(r.st.reservationHistory, e)
	return nil
}

func (r historyRepo) AppendUserAction(ctx context.Context, e history.UserActionEntry) error {
	if err := r.knownActor(e.ActorID); err != nil {
		return err
	}
	r.st.userActions = append(r.st.userActions, e)
	return nil
}
