package converter

import (
	"time"

	"lending-core/internal/domain/loan"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lib/pq"
)

type LoanRow struct {
	ID         uuid.UUID          `db:"id"`
	ItemID     uuid.UUID          `db:"item_id"`
	BorrowerID uuid.UUID          `db:"borrower_id"`
	BorrowedAt time.Time          `db:"borrowed_at"`
	DueAt      time.Time          `db:"due_at"`
	ReturnedAt pgtype.Timestamptz `db:"returned_at"`
	Status     string             `db:"status"`
	Notes      string             `db:"notes"`
	Tags       []string           `db:"tags"`
	CreatedAt  time.Time          `db:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at"`
}

type LoanHoldingRow struct {
	LoanRow
	HolderName string `db:"holder_name"`
}

func LoanToRecord(l *loan.Loan) goqu.Record {
	return goqu.Record{
		"id":          l.ID(),
		"item_id":     l.ItemID(),
		"borrower_id": l.BorrowerID(),
		"borrowed_at": l.BorrowedAt(),
		"due_at":      l.DueAt(),
		"returned_at": pgconv.TimePtrToPgtype(l.ReturnedAt()),
		"status":      l.Status().String(),
		"notes":       l.Notes(),
		"tags":        tagsArray(l.Tags()),
		"created_at":  l.CreatedAt(),
		"updated_at":  l.UpdatedAt(),
	}
}

// LoanUpdateRecord holds the columns a return, status refresh or loss may change.
func LoanUpdateRecord(l *loan.Loan) goqu.Record {
	return goqu.Record{
		"returned_at": pgconv.TimePtrToPgtype(l.ReturnedAt()),
		"status":      l.Status().String(),
		"updated_at":  l.UpdatedAt(),
	}
}

func LoanFromRow(row LoanRow) (*loan.Loan, error) {
	status, ok := loan.ParseStatus(row.Status)
	if !ok {
		return nil, errs.Newf("unknown loan status %q", row.Status)
	}
	return loan.ReconstructLoan(
		row.ID, row.ItemID, row.BorrowerID,
		row.BorrowedAt.UTC(), row.DueAt.UTC(),
		pgconv.TimePtrFromPgtype(row.ReturnedAt),
		status,
		row.Notes,
		row.Tags,
		row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	), nil
}

// tagsArray never yields NULL; the column is NOT NULL DEFAULT '{}'.
func tagsArray(tags []string) pq.StringArray {
	if tags == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(tags)
}
