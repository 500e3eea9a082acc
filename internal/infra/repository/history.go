package repository

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/history"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"
)

type HistoryRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewHistoryRepository(db DBTX, logger *slog.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, logger: logger}
}

func (r *HistoryRepository) AppendLoan(ctx context.Context, e history.LoanEntry) error {
	if _, err := execute(ctx, r.db, insertInto(tableLoanHistory).Rows(converter.LoanEntryToRecord(e))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to append loan history", err)
	}
	return nil
}

func (r *HistoryRepository) AppendReservation(ctx context.Context, e history.ReservationEntry) error {
	if _, err := execute(ctx, r.db, insertInto(tableReservationHistory).Rows(converter.ReservationEntryToRecord(e))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to append reservation history", err)
	}
	return nil
}

func (r *HistoryRepository) AppendUserAction(ctx context.Context, e history.UserActionEntry) error {
	if _, err := execute(ctx, r.db, insertInto(tableUserActionHistory).Rows(converter.UserActionEntryToRecord(e))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to append user action history", err)
	}
	return nil
}
