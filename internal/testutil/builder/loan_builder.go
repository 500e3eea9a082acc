//go:build unit || integration

package builder

import (
	"time"

	"lending-core/internal/domain/loan"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	id         uuid.UUID
	itemID     uuid.UUID
	borrowerID uuid.UUID
	borrowedAt time.Time
	dueAt      time.Time
	returnedAt *time.Time
	status     loan.Status
	notes      string
	tags       []string
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		id:         uuid.New(),
		itemID:     uuid.New(),
		borrowerID: uuid.New(),
		borrowedAt: Day(0),
		dueAt:      Day(14),
		status:     loan.StatusActive,
		notes:      "front desk",
		tags:       []string{"standard"},
	}
}

func (b *LoanBuilder) With(mutate func(*LoanBuilder)) *LoanBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *LoanBuilder) WithItem(id uuid.UUID) *LoanBuilder {
	b.itemID = id
	return b
}

func (b *LoanBuilder) WithBorrower(id uuid.UUID) *LoanBuilder {
	b.borrowerID = id
	return b
}

func (b *LoanBuilder) WithPeriod(from, to time.Time) *LoanBuilder {
	b.borrowedAt, b.dueAt = from, to
	return b
}

func (b *LoanBuilder) WithStatus(s loan.Status) *LoanBuilder {
	b.status = s
	return b
}

func (b *LoanBuilder) ReturnedAt(t time.Time) *LoanBuilder {
	b.returnedAt = &t
	b.status = loan.StatusReturned
	return b
}

func (b *LoanBuilder) Build() *loan.Loan {
	return loan.ReconstructLoan(b.id, b.itemID, b.borrowerID, b.borrowedAt, b.dueAt, b.returnedAt, b.status, b.notes, b.tags, b.borrowedAt, b.borrowedAt)
}
