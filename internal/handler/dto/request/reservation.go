package request

import (
	"time"

	"lending-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ItemID    uuid.UUID  `json:"item_id" binding:"required"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   time.Time  `json:"end_date" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	in := commands.CreateReservationInput{
		ItemID:    r.ItemID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if r.UserID != nil {
		in.UserID = *r.UserID
	}
	return in
}

type ModifyReservationRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

func (r ModifyReservationRequest) ToInput(reservationID uuid.UUID) commands.ModifyReservationInput {
	return commands.ModifyReservationInput{
		ReservationID: reservationID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}
