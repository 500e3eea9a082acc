package request

import (
	"time"

	"lending-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateLoanRequest struct {
	ItemID     uuid.UUID `json:"item_id" binding:"required"`
	BorrowerID uuid.UUID `json:"borrower_id" binding:"required"`
	BorrowedAt time.Time `json:"borrowed_at" binding:"required"`
	DueAt      time.Time `json:"due_at" binding:"required"`
	Notes      string    `json:"notes" binding:"max=1000"`
	Tags       []string  `json:"tags" binding:"max=20,dive,max=50"`
}

func (r CreateLoanRequest) ToInput() commands.CreateLoanInput {
	return commands.CreateLoanInput{
		ItemID:     r.ItemID,
		BorrowerID: r.BorrowerID,
		BorrowedAt: r.BorrowedAt,
		DueAt:      r.DueAt,
		Notes:      r.Notes,
		Tags:       r.Tags,
	}
}
