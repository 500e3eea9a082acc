//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"
	"lending-core/internal/infra/memstore"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/testutil/builder"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	store        *memstore.Store
	clock        *clock.MockClock
	uow          shared.UnitOfWork
	loans        commands.LoanCommands
	reservations commands.ReservationCommands
	maintenance  commands.MaintenanceCommands
	items        commands.ItemCommands

	admin     *user.User
	librarian *user.User
	alice     *user.User
	bob       *user.User
	item      *item.Item
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	store := memstore.New()
	f := &fixture{
		store:     store,
		clock:     clock.NewMockClock(now),
		admin:     builder.NewUserBuilder().WithName("Ada Admin").WithEmail("admin@example.com").WithRole(user.RoleAdmin).Build(),
		librarian: builder.NewUserBuilder().WithName("Lena Librarian").WithEmail("lena@example.com").WithRole(user.RoleLibrarian).Build(),
		alice:     builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").Build(),
		bob:       builder.NewUserBuilder().WithName("Bob").WithEmail("bob@example.com").Build(),
		item:      builder.NewItemBuilder().Build(),
	}
	for _, u := range []*user.User{f.admin, f.librarian, f.alice, f.bob} {
		store.PutUser(u)
	}
	store.PutItem(f.item)
	f.wire(store)
	return f
}

// wire rebuilds the commands over uow, e.g. to inject failures.
func (f *fixture) wire(uow shared.UnitOfWork) {
	f.uow = uow
	f.loans = commands.NewLoanCommands(uow, f.clock)
	f.reservations = commands.NewReservationCommands(uow, f.clock)
	f.maintenance = commands.NewMaintenanceCommands(uow, f.clock)
	f.items = commands.NewItemCommands(uow, f.clock)
}

func (f *fixture) itemStatus(t *testing.T) item.Status {
	t.Helper()
	it, err := f.store.CommandReads().ItemByID(context.Background(), f.item.ID())
	require.NoError(t, err)
	return it.Status()
}

func (f *fixture) loan(t *testing.T, id uuid.UUID) *loan.Loan {
	t.Helper()
	l, err := f.store.CommandReads().LoanByID(context.Background(), id)
	require.NoError(t, err)
	return l
}

func (f *fixture) reservation(t *testing.T, id uuid.UUID) *reservation.Reservation {
	t.Helper()
	r, err := f.store.CommandReads().ReservationByID(context.Background(), id)
	require.NoError(t, err)
	return r
}

func (f *fixture) putLoan(from, to time.Time, borrower *user.User) *loan.Loan {
	l := builder.NewLoanBuilder().WithItem(f.item.ID()).WithBorrower(borrower.ID()).WithPeriod(from, to).Build()
	f.store.PutLoan(l)
	return l
}

func (f *fixture) putReservation(from, to time.Time, owner *user.User) *reservation.Reservation {
	r := builder.NewReservationBuilder().WithItem(f.item.ID()).WithUser(owner.ID()).WithPeriod(from, to).Build()
	f.store.PutReservation(r)
	return r
}

func (f *fixture) setItemStatus(s item.Status) {
	f.store.PutItem(item.ReconstructItem(f.item.ID(), f.item.Name(), f.item.Category(), s, f.item.CreatedAt(), f.item.UpdatedAt()))
}

func loanActions(entries []history.LoanEntry, loanID uuid.UUID) []history.LoanAction {
	var out []history.LoanAction
	for _, e := range entries {
		if e.LoanID == loanID {
			out = append(out, e.Action)
		}
	}
	return out
}

func reservationActions(entries []history.ReservationEntry, reservationID uuid.UUID) []history.ReservationAction {
	var out []history.ReservationAction
	for _, e := range entries {
		if e.ReservationID == reservationID {
			out = append(out, e.Action)
		}
	}
	return out
}

var errInjected = errors.New("injected failure")

// flakyUoW fails the Nth call to Within and delegates every other call.
type flakyUoW struct {
	shared.UnitOfWork
	failOn int
	calls  int
}

func (u *flakyUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	if u.calls == u.failOn {
		return errInjected
	}
	return u.UnitOfWork.Within(ctx, fn)
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// recordingUoW logs, per transaction, when the item lock is taken and when
// loans or reservations are read.
type recordingUoW struct {
	shared.UnitOfWork
	calls []string
}

func (u *recordingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, recordingTx{Tx: tx, u: u})
	})
}

type recordingTx struct {
	shared.Tx
	u *recordingUoW
}

func (t recordingTx) Items() shared.ItemRepository { return recordingItems{t.Tx.Items(), t.u} }
func (t recordingTx) Reads() shared.CommandReads   { return recordingReads{t.Tx.Reads(), t.u} }

type recordingItems struct {
	shared.ItemRepository
	u *recordingUoW
}

func (r recordingItems) LockByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	r.u.calls = append(r.u.calls, "lock item")
	return r.ItemRepository.LockByID(ctx, id)
}

type recordingReads struct {
	shared.CommandReads
	u *recordingUoW
}

func (r recordingReads) LoanByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	r.u.calls = append(r.u.calls, "read loan")
	return r.CommandReads.LoanByID(ctx, id)
}

func (r recordingReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.u.calls = append(r.u.calls, "read reservation")
	return r.CommandReads.ReservationByID(ctx, id)
}
