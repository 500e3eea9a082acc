//go:build integration

package uow_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"
	"lending-core/internal/infra"
	"lending-core/internal/infra/readstore"
	"lending-core/internal/infra/repository"
	"lending-core/internal/infra/uow"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/testutil/builder"
	"lending-core/internal/testutil/pgtest"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgFixture struct {
	uow       *uow.PostgresUoW
	clock     *clock.MockClock
	history   *readstore.HistoryReadStore
	librarian *user.User
	alice     *user.User
	bob       *user.User
	item      *item.Item
}

func newPgFixture(t *testing.T) *pgFixture {
	t.Helper()
	pool := pgtest.NewPool(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	f := &pgFixture{
		uow:       uow.NewPostgresUoW(pool, logger),
		clock:     clock.NewMockClock(time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)),
		history:   readstore.NewHistoryReadStore(pool, logger),
		librarian: builder.NewUserBuilder().WithName("Lena").WithEmail("lena@example.com").WithRole(user.RoleLibrarian).Build(),
		alice:     builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").Build(),
		bob:       builder.NewUserBuilder().WithName("Bob").WithEmail("bob@example.com").Build(),
		item:      builder.NewItemBuilder().Build(),
	}
	users := repository.NewUserRepository(pool, logger)
	for _, u := range []*user.User{f.librarian, f.alice, f.bob} {
		require.NoError(t, users.Create(ctx, u))
	}
	require.NoError(t, repository.NewItemRepository(pool, logger).Create(ctx, f.item))
	return f
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestReservationConflictAgainstPostgres(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()
	reservations := commands.NewReservationCommands(f.uow, f.clock)

	first, err := reservations.CreateReservation(ctx, commands.CreateReservationInput{
		ItemID: f.item.ID(), StartDate: day(20), EndDate: day(22),
	}, f.alice.Actor())
	require.NoError(t, err)

	_, err = reservations.CreateReservation(ctx, commands.CreateReservationInput{
		ItemID: f.item.ID(), StartDate: day(21), EndDate: day(23),
	}, f.bob.Actor())
	require.ErrorIs(t, err, errs.ErrConflict)
	var conflict *availability.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, first.Reservation.ID(), conflict.Conflicts[0].ID)
	assert.Equal(t, "Alice", conflict.Conflicts[0].HolderName)

	// Touching periods share no instant.
	_, err = reservations.CreateReservation(ctx, commands.CreateReservationInput{
		ItemID: f.item.ID(), StartDate: day(22), EndDate: day(24),
	}, f.bob.Actor())
	require.NoError(t, err)
}

func TestExclusionConstraintReportsConflict(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	period, err := availability.NewPeriod(day(20), day(22))
	require.NoError(t, err)
	a, err := reservation.NewReservation(f.item.ID(), f.alice.ID(), period, f.clock.Now())
	require.NoError(t, err)
	b, err := reservation.NewReservation(f.item.ID(), f.bob.ID(), period, f.clock.Now())
	require.NoError(t, err)

	require.NoError(t, f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, a)
	}))
	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, b)
	})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func TestRollbackLeavesNothingBehind(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	period, err := availability.NewPeriod(day(20), day(22))
	require.NoError(t, err)
	r, err := reservation.NewReservation(f.item.ID(), f.alice.ID(), period, f.clock.Now())
	require.NoError(t, err)

	boom := errs.New("boom")
	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = f.uow.CommandReads().ReservationByID(ctx, r.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestLoanLifecycleAgainstPostgres(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()
	loans := commands.NewLoanCommands(f.uow, f.clock)

	created, err := loans.CreateLoan(ctx, commands.CreateLoanInput{
		ItemID: f.item.ID(), BorrowerID: f.alice.ID(),
		BorrowedAt: day(8), DueAt: day(15), Tags: []string{"course"},
	}, f.librarian.Actor())
	require.NoError(t, err)
	assert.Equal(t, item.StatusBorrowed, created.ItemStatus)

	_, err = loans.CreateLoan(ctx, commands.CreateLoanInput{
		ItemID: f.item.ID(), BorrowerID: f.bob.ID(), BorrowedAt: day(10), DueAt: day(12),
	}, f.librarian.Actor())
	require.ErrorIs(t, err, errs.ErrConflict)

	stored, err := f.uow.CommandReads().LoanByID(ctx, created.Loan.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"course"}, stored.Tags())

	returned, err := loans.ReturnLoan(ctx, created.Loan.ID(), f.librarian.Actor())
	require.NoError(t, err)
	assert.Empty(t, returned.Warnings)
	assert.Equal(t, item.StatusAvailable, returned.ItemStatus)

	entries, err := f.history.FindByItemFirstPage(ctx, f.item.ID(), 10)
	require.NoError(t, err)
	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.ElementsMatch(t, []string{string(history.LoanCreation), string(history.LoanReturn)}, actions)
}

func TestExpireAgainstPostgres(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()
	reservations := commands.NewReservationCommands(f.uow, f.clock)

	res, err := reservations.CreateReservation(ctx, commands.CreateReservationInput{
		ItemID: f.item.ID(), StartDate: day(9), EndDate: day(10),
	}, f.alice.Actor())
	require.NoError(t, err)

	f.clock.Set(day(11))
	summary, err := commands.NewMaintenanceCommands(f.uow, f.clock).ExpireReservations(ctx, user.Actor{})
	require.NoError(t, err)
	assert.Equal(t, 1, len(summary.Expired))

	got, err := f.uow.CommandReads().ReservationByID(ctx, res.Reservation.ID())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusExpired, got.Status())
}

// holdItemLock runs write inside a transaction that holds the fixture item's
// lock and keeps it open until the returned release is called.
func (f *pgFixture) holdItemLock(t *testing.T, write func(ctx context.Context, tx shared.Tx) error) (release func() error) {
	t.Helper()
	locked := make(chan struct{})
	proceed := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- f.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Items().LockByID(ctx, f.item.ID()); err != nil {
				return err
			}
			if err := write(ctx, tx); err != nil {
				return err
			}
			close(locked)
			<-proceed
			return nil
		})
	}()

	select {
	case <-locked:
	case err := <-done:
		t.Fatalf("locked write finished early: %v", err)
	}
	return func() error {
		close(proceed)
		return <-done
	}
}

func TestRefreshWaitsForConcurrentReturn(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	f.clock.Set(day(1))
	created, err := commands.NewLoanCommands(f.uow, f.clock).CreateLoan(ctx, commands.CreateLoanInput{
		ItemID: f.item.ID(), BorrowerID: f.alice.ID(), BorrowedAt: day(1), DueAt: day(5),
	}, f.librarian.Actor())
	require.NoError(t, err)
	loanID := created.Loan.ID()
	f.clock.Set(day(8))

	release := f.holdItemLock(t, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().LoanByID(ctx, loanID)
		if err != nil {
			return err
		}
		if err := l.Return(day(8)); err != nil {
			return err
		}
		return tx.Loans().Update(ctx, l)
	})

	type result struct {
		summary *commands.LoanRefreshSummary
		err     error
	}
	swept := make(chan result, 1)
	go func() {
		s, err := commands.NewMaintenanceCommands(f.uow, f.clock).RefreshLoanStatuses(ctx)
		swept <- result{s, err}
	}()
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, release())

	r := <-swept
	require.NoError(t, r.err)
	assert.Empty(t, r.summary.Refreshed)
	assert.Zero(t, r.summary.Failed)

	got, err := f.uow.CommandReads().LoanByID(ctx, loanID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusReturned, got.Status())
	assert.NotNil(t, got.ReturnedAt())
}

func TestExpireWaitsForConcurrentReschedule(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	res, err := commands.NewReservationCommands(f.uow, f.clock).CreateReservation(ctx, commands.CreateReservationInput{
		ItemID: f.item.ID(), StartDate: day(9), EndDate: day(10),
	}, f.alice.Actor())
	require.NoError(t, err)
	reservationID := res.Reservation.ID()
	f.clock.Set(day(11))

	moved, err := availability.NewPeriod(day(20), day(22))
	require.NoError(t, err)
	release := f.holdItemLock(t, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := r.Reschedule(moved, day(11)); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})

	type result struct {
		summary *commands.ExpirySummary
		err     error
	}
	swept := make(chan result, 1)
	go func() {
		s, err := commands.NewMaintenanceCommands(f.uow, f.clock).ExpireReservations(ctx, user.Actor{})
		swept <- result{s, err}
	}()
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, release())

	r := <-swept
	require.NoError(t, r.err)
	assert.Empty(t, r.summary.Expired)
	assert.Zero(t, r.summary.Failed)

	got, err := f.uow.CommandReads().ReservationByID(ctx, reservationID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, got.Status())
	assert.True(t, got.Period().Start().Equal(day(20)))
	assert.True(t, got.Period().End().Equal(day(22)))
}

func TestRefreshRecordsHistoryAgainstPostgres(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	f.clock.Set(day(1))
	created, err := commands.NewLoanCommands(f.uow, f.clock).CreateLoan(ctx, commands.CreateLoanInput{
		ItemID: f.item.ID(), BorrowerID: f.alice.ID(), BorrowedAt: day(1), DueAt: day(5),
	}, f.librarian.Actor())
	require.NoError(t, err)
	f.clock.Set(day(8))

	summary, err := commands.NewMaintenanceCommands(f.uow, f.clock).RefreshLoanStatuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.Loan.ID()}, summary.Refreshed)

	entries, err := f.history.FindByItemFirstPage(ctx, f.item.ID(), 10)
	require.NoError(t, err)
	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.ElementsMatch(t, []string{string(history.LoanCreation), string(history.LoanStatusRefresh)}, actions)
}
