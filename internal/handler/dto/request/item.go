package request

import (
	"time"

	"lending-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Category string `json:"category" binding:"required,oneof=BOOK EQUIPMENT"`
}

func (r CreateItemRequest) ToInput() commands.CreateItemInput {
	return commands.CreateItemInput{Name: r.Name, Category: r.Category}
}

type SetOutOfOrderRequest struct {
	OutOfOrder *bool `json:"out_of_order" binding:"required"`
}

const (
	ConflictKindLoan        = "loan"
	ConflictKindReservation = "reservation"
)

// ConflictQuery asks whether a prospective loan or reservation would be
// accepted. Exclude only applies to reservations.
type ConflictQuery struct {
	Kind    string    `form:"kind" binding:"required,oneof=loan reservation"`
	Start   time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End     time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Exclude string    `form:"exclude" binding:"omitempty,uuid"`
}

func (q ConflictQuery) ExcludeID() *uuid.UUID {
	if q.Exclude == "" {
		return nil
	}
	id, err := uuid.Parse(q.Exclude)
	if err != nil {
		return nil
	}
	return &id
}

type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
