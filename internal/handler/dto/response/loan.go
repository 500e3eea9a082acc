package response

import (
	"time"

	"lending-core/internal/handler/httperr"
	"lending-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoanResponse struct {
	ID              uuid.UUID  `json:"id"`
	ItemID          uuid.UUID  `json:"itemId"`
	BorrowerID      uuid.UUID  `json:"borrowerId"`
	BorrowedAt      time.Time  `json:"borrowedAt"`
	DueAt           time.Time  `json:"dueAt"`
	ReturnedAt      *time.Time `json:"returnedAt,omitempty"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effectiveStatus,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
}

// LoanResultResponse reports the item status the operation left behind.
// An empty ItemStatus with warnings means the status refresh failed.
type LoanResultResponse struct {
	Loan       LoanResponse `json:"loan"`
	ItemStatus string       `json:"itemStatus,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
}

func FromLoanResult(r *commands.LoanResult) *LoanResultResponse {
	res := &LoanResultResponse{
		ItemStatus: r.ItemStatus.String(),
		Warnings:   httperr.Warnings(r.Warnings),
	}
	fill(&res.Loan, r.Loan)
	return res
}
