package commands

import (
	"context"
	"log/slog"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/user"
	"lending-core/internal/infra"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateLoanInput struct {
	ItemID     uuid.UUID
	BorrowerID uuid.UUID
	BorrowedAt time.Time
	DueAt      time.Time
	Notes      string
	Tags       []string
}

// LoanResult reports the loan after the operation and the item status it
// left behind. Warnings never mean the operation failed.
type LoanResult struct {
	Loan       *loan.Loan
	ItemStatus item.Status
	Warnings   []error
}

type LoanCommands interface {
	CreateLoan(ctx context.Context, in CreateLoanInput, actor user.Actor) (*LoanResult, error)
	ReturnLoan(ctx context.Context, loanID uuid.UUID, actor user.Actor) (*LoanResult, error)
	ReportLost(ctx context.Context, loanID uuid.UUID, actor user.Actor) (*LoanResult, error)
}

type loanCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLoanCommands(uow shared.UnitOfWork, clk clock.Clock) LoanCommands {
	return &loanCommandsImpl{uow: uow, clock: clk}
}

func (c *loanCommandsImpl) CreateLoan(ctx context.Context, in CreateLoanInput, actor user.Actor) (*LoanResult, error) {
	if !actor.IsStaff() {
		return nil, ErrStaffRequired
	}
	now := c.clock.Now()

	period, err := availability.NewPeriod(in.BorrowedAt, in.DueAt)
	if err != nil {
		return nil, err
	}
	candidate, err := loan.NewLoan(in.ItemID, in.BorrowerID, period, in.Notes, in.Tags, now)
	if err != nil {
		return nil, err
	}

	reads := c.uow.CommandReads()
	if err := c.checkTargets(ctx, reads, in.ItemID, in.BorrowerID); err != nil {
		return nil, err
	}
	if err := checkLoanConflicts(ctx, reads, in.ItemID, period); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().LockByID(ctx, in.ItemID)
		if err != nil {
			return notFound(err, ErrItemNotFound, in.ItemID)
		}
		if it.IsOutOfOrder() {
			return ErrItemOutOfOrder
		}
		if err := checkLoanConflicts(ctx, tx.Reads(), in.ItemID, period); err != nil {
			return err
		}

		if err := tx.Loans().Create(ctx, candidate); err != nil {
			return err
		}
		entry := history.NewLoanEntry(candidate.ID(), in.ItemID, actor.IDPtr(), history.LoanCreation, candidate.Notes(), now)
		if err := tx.History().AppendLoan(ctx, entry); err != nil {
			return errs.Wrap(err, "append loan history")
		}
		return tx.Items().UpdateStatus(ctx, in.ItemID, item.StatusBorrowed, now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrUserNotFound
		}
		return nil, asConflict(ctx, err, func(ctx context.Context) error {
			return checkLoanConflicts(ctx, c.uow.CommandReads(), in.ItemID, period)
		})
	}

	slog.Info("loan created", "loan_id", candidate.ID(), "item_id", in.ItemID, "status", candidate.Status())
	return &LoanResult{Loan: candidate, ItemStatus: item.StatusBorrowed}, nil
}

func (c *loanCommandsImpl) checkTargets(ctx context.Context, reads shared.CommandReads, itemID, borrowerID uuid.UUID) error {
	it, err := reads.ItemByID(ctx, itemID)
	if err != nil {
		return notFound(err, ErrItemNotFound, itemID)
	}
	if it.IsOutOfOrder() {
		return ErrItemOutOfOrder
	}

	borrower, err := reads.UserByID(ctx, borrowerID)
	if err != nil {
		return notFound(err, ErrUserNotFound, borrowerID)
	}
	if !borrower.IsActive {
		return ErrUserInactive
	}
	return nil
}

// ReturnLoan commits the return first. Refreshing the item status runs in a
// second transaction; if it fails the return stands and a warning is added.
func (c *loanCommandsImpl) ReturnLoan(ctx context.Context, loanID uuid.UUID, actor user.Actor) (*LoanResult, error) {
	if !actor.IsStaff() {
		return nil, ErrStaffRequired
	}
	now := c.clock.Now()

	var returned *loan.Loan
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.lockLoan(ctx, tx, loanID)
		if err != nil {
			return err
		}
		if err := l.Return(now); err != nil {
			return err
		}
		if err := tx.Loans().Update(ctx, l); err != nil {
			return errs.Wrap(err, "update loan")
		}
		entry := history.NewLoanEntry(l.ID(), l.ItemID(), actor.IDPtr(), history.LoanReturn, "", now)
		if err := tx.History().AppendLoan(ctx, entry); err != nil {
			return errs.Wrap(err, "append loan history")
		}
		returned = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &LoanResult{Loan: returned}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, to, err := recomputeItemStatus(ctx, tx, returned.ItemID(), true, now)
		result.ItemStatus = to
		return err
	})
	if err != nil {
		slog.Warn("failed to refresh item status after return",
			"loan_id", returned.ID(), "item_id", returned.ItemID(), "error", err.Error())
		result.ItemStatus = ""
		result.Warnings = append(result.Warnings, errs.Wrapf(ErrStatusRefresh, "item %s", returned.ItemID()))
	}
	return result, nil
}

// ReportLost closes the loan as lost and takes the item out of service.
func (c *loanCommandsImpl) ReportLost(ctx context.Context, loanID uuid.UUID, actor user.Actor) (*LoanResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	now := c.clock.Now()

	var lost *loan.Loan
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := c.lockLoan(ctx, tx, loanID)
		if err != nil {
			return err
		}
		if err := l.MarkLost(now); err != nil {
			return err
		}
		if err := tx.Loans().Update(ctx, l); err != nil {
			return errs.Wrap(err, "update loan")
		}
		entry := history.NewLoanEntry(l.ID(), l.ItemID(), actor.IDPtr(), history.LoanLost, "", now)
		if err := tx.History().AppendLoan(ctx, entry); err != nil {
			return errs.Wrap(err, "append loan history")
		}
		lost = l
		return tx.Items().UpdateStatus(ctx, l.ItemID(), item.StatusOutOfOrder, now)
	})
	if err != nil {
		return nil, err
	}
	return &LoanResult{Loan: lost, ItemStatus: item.StatusOutOfOrder}, nil
}

// lockLoan takes the item lock before reading the loan it serves, so the
// loan row cannot change between the read and the write.
func (c *loanCommandsImpl) lockLoan(ctx context.Context, tx shared.Tx, loanID uuid.UUID) (*loan.Loan, error) {
	l, err := tx.Reads().LoanByID(ctx, loanID)
	if err != nil {
		return nil, notFound(err, ErrLoanNotFound, loanID)
	}
	if _, err := tx.Items().LockByID(ctx, l.ItemID()); err != nil {
		return nil, notFound(err, ErrItemNotFound, l.ItemID())
	}
	l, err = tx.Reads().LoanByID(ctx, loanID)
	if err != nil {
		return nil, notFound(err, ErrLoanNotFound, loanID)
	}
	return l, nil
}
