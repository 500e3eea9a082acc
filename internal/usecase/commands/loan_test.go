//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLoan_BlockedByConfirmedReservation(t *testing.T) {
	f := newFixture(t, at(2024, 5, 1))
	res := f.putReservation(at(2024, 6, 1), at(2024, 6, 10), f.alice)

	_, err := f.loans.CreateLoan(context.Background(), commands.CreateLoanInput{
		ItemID:     f.item.ID(),
		BorrowerID: f.bob.ID(),
		BorrowedAt: at(2024, 6, 5),
		DueAt:      at(2024, 6, 7),
	}, f.librarian.Actor())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrConflict))
	var conflictErr *availability.ConflictError
	require.True(t, errs.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, availability.HoldingReservation, conflictErr.Conflicts[0].Kind)
	assert.Equal(t, res.ID(), conflictErr.Conflicts[0].ID)
	assert.Equal(t, "Alice", conflictErr.Conflicts[0].HolderName)

	assert.Equal(t, item.StatusAvailable, f.itemStatus(t))
	assert.Empty(t, f.store.LoanHistory())
}

func TestLoanLifecycle_CreateThenReturn(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))
	ctx := context.Background()

	created, err := f.loans.CreateLoan(ctx, commands.CreateLoanInput{
		ItemID:     f.item.ID(),
		BorrowerID: f.bob.ID(),
		BorrowedAt: at(2024, 1, 1),
		DueAt:      at(2024, 1, 14),
		Tags:       []string{"camera", "Camera", " "},
	}, f.librarian.Actor())
	require.NoError(t, err)
	assert.Equal(t, loan.StatusActive, created.Loan.Status())
	assert.Equal(t, []string{"camera"}, created.Loan.Tags())
	assert.Equal(t, item.StatusBorrowed, f.itemStatus(t))
	assert.Equal(t, []history.LoanAction{history.LoanCreation}, loanActions(f.store.LoanHistory(), created.Loan.ID()))

	f.clock.Set(at(2024, 1, 10))
	returned, err := f.loans.ReturnLoan(ctx, created.Loan.ID(), f.librarian.Actor())
	require.NoError(t, err)
	assert.Empty(t, returned.Warnings)
	assert.Equal(t, item.StatusAvailable, returned.ItemStatus)

	stored := f.loan(t, created.Loan.ID())
	require.NotNil(t, stored.ReturnedAt())
	assert.Equal(t, at(2024, 1, 10), *stored.ReturnedAt())
	assert.Equal(t, loan.StatusReturned, stored.Status())
	assert.Equal(t, item.StatusAvailable, f.itemStatus(t))
	assert.Equal(t,
		[]history.LoanAction{history.LoanCreation, history.LoanReturn},
		loanActions(f.store.LoanHistory(), created.Loan.ID()))
}

func TestReturnLoan_KeepsBorrowedWhileAnotherLoanIsLive(t *testing.T) {
	f := newFixture(t, at(2024, 3, 8))
	l1 := f.putLoan(at(2024, 3, 1), at(2024, 3, 10), f.alice)
	f.putLoan(at(2024, 3, 5), at(2024, 3, 15), f.bob)
	f.setItemStatus(item.StatusBorrowed)

	result, err := f.loans.ReturnLoan(context.Background(), l1.ID(), f.librarian.Actor())
	require.NoError(t, err)
	assert.Equal(t, item.StatusBorrowed, result.ItemStatus)
	assert.Equal(t, item.StatusBorrowed, f.itemStatus(t))
}

func TestReturnLoan_FallsBackThroughDerivation(t *testing.T) {
	cases := []struct {
		name    string
		arrange func(f *fixture)
		want    item.Status
	}{
		{
			name:    "confirmed reservation ahead makes the item pending",
			arrange: func(f *fixture) { f.putReservation(at(2024, 3, 20), at(2024, 3, 25), f.alice) },
			want:    item.StatusPending,
		},
		{
			name:    "scheduled loan keeps the item borrowed",
			arrange: func(f *fixture) { f.putLoan(at(2024, 3, 20), at(2024, 3, 25), f.alice) },
			want:    item.StatusBorrowed,
		},
		{
			name:    "nothing left makes the item available",
			arrange: func(f *fixture) {},
			want:    item.StatusAvailable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, at(2024, 3, 8))
			l := f.putLoan(at(2024, 3, 1), at(2024, 3, 10), f.bob)
			f.setItemStatus(item.StatusBorrowed)
			c.arrange(f)

			result, err := f.loans.ReturnLoan(context.Background(), l.ID(), f.librarian.Actor())
			require.NoError(t, err)
			assert.Equal(t, c.want, result.ItemStatus)
			assert.Equal(t, c.want, f.itemStatus(t))
		})
	}
}

func TestReturnLoan_StatusRefreshFailureIsOnlyAWarning(t *testing.T) {
	f := newFixture(t, at(2024, 3, 8))
	l := f.putLoan(at(2024, 3, 1), at(2024, 3, 10), f.bob)
	f.setItemStatus(item.StatusBorrowed)
	f.wire(&flakyUoW{UnitOfWork: f.store, failOn: 2})

	result, err := f.loans.ReturnLoan(context.Background(), l.ID(), f.librarian.Actor())
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.True(t, errs.Is(result.Warnings[0], errs.ErrInconsistency))

	assert.Equal(t, loan.StatusReturned, f.loan(t, l.ID()).Status(), "the return must stand")
	assert.Equal(t, item.StatusBorrowed, f.itemStatus(t), "status stays stale until reconciled")

	f.wire(f.store)
	summary, err := f.maintenance.ReconcileItemStatuses(context.Background(), f.admin.Actor())
	require.NoError(t, err)
	require.Len(t, summary.Corrections, 1)
	assert.Equal(t, item.StatusAvailable, f.itemStatus(t))
}

func TestReturnLoan_Rejections(t *testing.T) {
	f := newFixture(t, at(2024, 3, 8))
	l := f.putLoan(at(2024, 3, 1), at(2024, 3, 10), f.bob)
	ctx := context.Background()

	_, err := f.loans.ReturnLoan(ctx, l.ID(), f.alice.Actor())
	assert.ErrorIs(t, err, commands.ErrStaffRequired)

	_, err = f.loans.ReturnLoan(ctx, uuid.New(), f.librarian.Actor())
	assert.ErrorIs(t, err, commands.ErrLoanNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	_, err = f.loans.ReturnLoan(ctx, l.ID(), f.librarian.Actor())
	require.NoError(t, err)
	_, err = f.loans.ReturnLoan(ctx, l.ID(), f.librarian.Actor())
	assert.ErrorIs(t, err, loan.ErrAlreadyReturned)
	assert.Len(t, loanActions(f.store.LoanHistory(), l.ID()), 1)
}

func TestCreateLoan_Validation(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))
	ctx := context.Background()
	valid := commands.CreateLoanInput{
		ItemID:     f.item.ID(),
		BorrowerID: f.bob.ID(),
		BorrowedAt: at(2024, 1, 1),
		DueAt:      at(2024, 1, 14),
	}

	cases := []struct {
		name   string
		mutate func(in *commands.CreateLoanInput)
		want   error
		kind   error
	}{
		{name: "missing dates", mutate: func(in *commands.CreateLoanInput) { in.DueAt = time.Time{} }, want: availability.ErrMissingDate, kind: errs.ErrValidation},
		{name: "end before start", mutate: func(in *commands.CreateLoanInput) { in.DueAt = at(2023, 12, 20) }, want: availability.ErrInvalidPeriod, kind: errs.ErrValidation},
		{name: "due in the past", mutate: func(in *commands.CreateLoanInput) { in.BorrowedAt, in.DueAt = at(2023, 12, 1), at(2023, 12, 20) }, want: loan.ErrDueInPast, kind: errs.ErrValidation},
		{name: "unknown item", mutate: func(in *commands.CreateLoanInput) { in.ItemID = uuid.New() }, want: commands.ErrItemNotFound, kind: errs.ErrNotFound},
		{name: "unknown borrower", mutate: func(in *commands.CreateLoanInput) { in.BorrowerID = uuid.New() }, want: commands.ErrUserNotFound, kind: errs.ErrNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid
			c.mutate(&in)
			_, err := f.loans.CreateLoan(ctx, in, f.librarian.Actor())
			require.Error(t, err)
			if c.want != nil {
				assert.ErrorIs(t, err, c.want)
			}
			assert.True(t, errs.Is(err, c.kind), "got %v", err)
		})
	}
	assert.Empty(t, f.store.LoanHistory())
}

func TestCreateLoan_OutOfOrderItem(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))
	f.setItemStatus(item.StatusOutOfOrder)

	_, err := f.loans.CreateLoan(context.Background(), commands.CreateLoanInput{
		ItemID:     f.item.ID(),
		BorrowerID: f.bob.ID(),
		BorrowedAt: at(2024, 1, 1),
		DueAt:      at(2024, 1, 14),
	}, f.librarian.Actor())
	assert.ErrorIs(t, err, commands.ErrItemOutOfOrder)
}

func TestCreateLoan_FutureStartIsScheduled(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))

	result, err := f.loans.CreateLoan(context.Background(), commands.CreateLoanInput{
		ItemID:     f.item.ID(),
		BorrowerID: f.bob.ID(),
		BorrowedAt: at(2024, 2, 1),
		DueAt:      at(2024, 2, 14),
	}, f.librarian.Actor())
	require.NoError(t, err)
	assert.Equal(t, loan.StatusScheduled, result.Loan.Status())
	assert.Equal(t, item.StatusBorrowed, f.itemStatus(t))
}

func TestCreateLoan_AdjacentPeriodsDoNotConflict(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))
	ctx := context.Background()
	in := commands.CreateLoanInput{ItemID: f.item.ID(), BorrowerID: f.bob.ID(), BorrowedAt: at(2024, 1, 1), DueAt: at(2024, 1, 14)}

	_, err := f.loans.CreateLoan(ctx, in, f.librarian.Actor())
	require.NoError(t, err)

	in.BorrowedAt, in.DueAt, in.BorrowerID = at(2024, 1, 14), at(2024, 1, 20), f.alice.ID()
	_, err = f.loans.CreateLoan(ctx, in, f.librarian.Actor())
	require.NoError(t, err)

	in.BorrowedAt, in.DueAt = at(2024, 1, 13), at(2024, 1, 15)
	_, err = f.loans.CreateLoan(ctx, in, f.librarian.Actor())
	assert.True(t, errs.Is(err, errs.ErrConflict))
}

func TestCreateLoan_ConcurrentRequestsNeverDoubleBook(t *testing.T) {
	f := newFixture(t, at(2024, 1, 1))
	const callers = 16

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.loans.CreateLoan(context.Background(), commands.CreateLoanInput{
				ItemID:     f.item.ID(),
				BorrowerID: f.bob.ID(),
				BorrowedAt: at(2024, 1, 2),
				DueAt:      at(2024, 1, 9),
			}, f.librarian.Actor())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, conflicted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.Is(err, errs.ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicted)
	assert.Len(t, f.store.LoanHistory(), 1)
}

func TestReportLost(t *testing.T) {
	f := newFixture(t, at(2024, 3, 8))
	l := f.putLoan(at(2024, 3, 1), at(2024, 3, 10), f.bob)
	f.setItemStatus(item.StatusBorrowed)
	ctx := context.Background()

	_, err := f.loans.ReportLost(ctx, l.ID(), f.librarian.Actor())
	assert.ErrorIs(t, err, commands.ErrAdminRequired)

	result, err := f.loans.ReportLost(ctx, l.ID(), f.admin.Actor())
	require.NoError(t, err)
	assert.Equal(t, loan.StatusOutOfOrder, result.Loan.Status())
	assert.False(t, f.loan(t, l.ID()).IsOpen())
	assert.Equal(t, item.StatusOutOfOrder, f.itemStatus(t))
	assert.Equal(t, []history.LoanAction{history.LoanLost}, loanActions(f.store.LoanHistory(), l.ID()))

	_, err = f.loans.ReportLost(ctx, l.ID(), f.admin.Actor())
	assert.ErrorIs(t, err, loan.ErrNotOpen)
}
