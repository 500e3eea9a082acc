package response

import (
	"time"

	"lending-core/internal/usecase/commands"
	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"itemId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"itemId"`
	ItemName  string    `json:"itemName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []ReservationListResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResponse {
	var res ReservationResponse
	fill(&res, r.Reservation)
	return &res
}

func FromReservationPage(rows []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	res := &ReservationPageResponse{Items: fillSlice[ReservationListResponse](rows)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
