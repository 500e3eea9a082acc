package repository

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/loan"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
)

// LoanRepository relies on the loans_no_overlap exclusion constraint as the
// last line against double-booking; its violation surfaces as KindConflict.
type LoanRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewLoanRepository(db DBTX, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{db: db, logger: logger}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	if _, err := execute(ctx, r.db, insertInto(tableLoans).Rows(converter.LoanToRecord(l))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create loan", err)
	}
	return nil
}

func (r *LoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	tag, err := execute(ctx, r.db, update(tableLoans).
		Set(converter.LoanUpdateRecord(l)).
		Where(goqu.C("id").Eq(l.ID())))
	if err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update loan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "loan not found", nil)
	}
	return nil
}
